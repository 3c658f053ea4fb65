package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Video is the only persisted entity. PublicID joins the local record to the
// remote asset; the two are deleted together through the two-phase delete.
type Video struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title          string    `gorm:"type:varchar(255);not null"`
	Description    string    `gorm:"type:text"`
	PublicID       string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	OriginalSize   int64     `gorm:"not null"`
	CompressedSize int64     `gorm:"not null"`
	Duration       float64   `gorm:"not null;default:0"` // seconds, 0 when the media service omits it
	Status         string    `gorm:"type:varchar(20);not null;default:active"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (v *Video) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return
}
