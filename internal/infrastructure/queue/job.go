package queue

import (
	"encoding/json"
	"time"
)

type JobType string

const (
	// JobDestroyRemote compensates an orphaned remote asset: the media
	// service accepted the upload but the local insert failed.
	JobDestroyRemote JobType = "destroy_remote"
	// JobFinishDelete completes a two-phase delete that failed after the
	// record was marked pending_delete.
	JobFinishDelete JobType = "finish_delete"
)

type Job struct {
	Type         JobType   `json:"type"`
	PublicID     string    `json:"public_id"`
	ResourceType string    `json:"resource_type"`
	EnqueuedAt   time.Time `json:"enqueued_at"`
}

func DeserializeJob(raw string) (*Job, error) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		return nil, err
	}
	return &job, nil
}
