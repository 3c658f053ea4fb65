package usecases

import (
	"context"
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"video-gallery/internal/domain/dto"
	"video-gallery/internal/domain/entities"
	"video-gallery/internal/domain/repositories"
	"video-gallery/internal/infrastructure/queue"
	"video-gallery/pkg/constants"
	apperrors "video-gallery/pkg/errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ReconcileEnqueuer records side effects that need a second attempt.
type ReconcileEnqueuer interface {
	Enqueue(ctx context.Context, job queue.Job) error
}

type VideoService interface {
	UploadVideo(ctx context.Context, req *dto.UploadVideoRequestDTO, file multipart.File, filename string) (*dto.VideoDTO, error)
	UploadImage(ctx context.Context, file multipart.File, filename string) (*dto.UploadImageResponse, error)
	ListVideos(ctx context.Context) ([]dto.VideoDTO, error)
	DeleteVideo(ctx context.Context, publicID string) error
}

type videoService struct {
	repo      repositories.VideoRepository
	gateway   repositories.MediaGateway
	reconcile ReconcileEnqueuer
}

func NewVideoService(repo repositories.VideoRepository, gateway repositories.MediaGateway, reconcile ReconcileEnqueuer) VideoService {
	return &videoService{
		repo:      repo,
		gateway:   gateway,
		reconcile: reconcile,
	}
}

// UploadVideo proxies the file to the media service and persists the
// returned descriptor. When the insert fails after a successful remote
// create, a compensation job is queued so the orphaned asset gets destroyed
// instead of silently leaking.
func (s *videoService) UploadVideo(ctx context.Context, req *dto.UploadVideoRequestDTO, file multipart.File, filename string) (*dto.VideoDTO, error) {
	if !s.gateway.IsConfigured() {
		return nil, apperrors.ErrMissingConfig("media service credentials not configured")
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.ErrBadRequest("title is required")
	}

	// Client-measured size. Zero is accepted (unknown); the gallery then
	// omits the compression percentage.
	originalSize, err := strconv.ParseInt(req.OriginalSize, 10, 64)
	if err != nil || originalSize < 0 {
		return nil, apperrors.ErrBadRequest("original_size must be a non-negative integer")
	}

	descriptor, err := s.gateway.UploadVideo(ctx, file, filename)
	if err != nil {
		return nil, apperrors.ErrUpstream(err)
	}

	video := &entities.Video{
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		PublicID:       descriptor.PublicID,
		OriginalSize:   originalSize,
		CompressedSize: descriptor.Bytes,
		Duration:       descriptor.Duration,
		Status:         constants.VideoStatusActive,
	}

	if err := s.repo.Create(video); err != nil {
		s.enqueue(ctx, queue.Job{
			Type:         queue.JobDestroyRemote,
			PublicID:     descriptor.PublicID,
			ResourceType: constants.ResourceTypeVideo,
		})
		return nil, apperrors.ErrPersistence(err)
	}

	presented := PresentVideo(video, s.gateway)
	return &presented, nil
}

func (s *videoService) UploadImage(ctx context.Context, file multipart.File, filename string) (*dto.UploadImageResponse, error) {
	if !s.gateway.IsConfigured() {
		return nil, apperrors.ErrMissingConfig("media service credentials not configured")
	}

	descriptor, err := s.gateway.UploadImage(ctx, file, filename)
	if err != nil {
		return nil, apperrors.ErrUpstream(err)
	}

	return &dto.UploadImageResponse{
		PublicID: descriptor.PublicID,
		URL:      descriptor.URL,
	}, nil
}

func (s *videoService) ListVideos(ctx context.Context) ([]dto.VideoDTO, error) {
	videos, err := s.repo.ListActive()
	if err != nil {
		return nil, apperrors.ErrPersistence(err)
	}

	presented := make([]dto.VideoDTO, 0, len(videos))
	for i := range videos {
		presented = append(presented, PresentVideo(&videos[i], s.gateway))
	}
	return presented, nil
}

// DeleteVideo runs the two-phase delete: mark pending, destroy remote,
// delete local. Each partial-failure path leaves the row pending_delete and
// queues a reconcile job, so a crash mid-sequence is detectable instead of
// silently orphaning either side. Repeated calls succeed.
func (s *videoService) DeleteVideo(ctx context.Context, publicID string) error {
	if publicID == "" {
		return apperrors.ErrBadRequest("public_id is required")
	}

	_, err := s.repo.GetByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Record already gone; destroy the remote side anyway in
			// case an earlier attempt stopped between the two phases.
			if err := s.gateway.Destroy(ctx, publicID, constants.ResourceTypeVideo); err != nil &&
				!errors.Is(err, repositories.ErrAssetNotFound) {
				return apperrors.ErrUpstream(err)
			}
			return nil
		}
		return apperrors.ErrPersistence(err)
	}

	if err := s.repo.MarkPendingDelete(publicID); err != nil {
		return apperrors.ErrPersistence(err)
	}

	if err := s.gateway.Destroy(ctx, publicID, constants.ResourceTypeVideo); err != nil &&
		!errors.Is(err, repositories.ErrAssetNotFound) {
		s.enqueue(ctx, queue.Job{
			Type:         queue.JobFinishDelete,
			PublicID:     publicID,
			ResourceType: constants.ResourceTypeVideo,
		})
		logrus.WithField("public_id", publicID).WithError(err).
			Warn("remote destroy failed, record left pending_delete for reconciliation")
		return nil
	}

	if err := s.repo.DeleteByPublicID(publicID); err != nil {
		s.enqueue(ctx, queue.Job{
			Type:         queue.JobFinishDelete,
			PublicID:     publicID,
			ResourceType: constants.ResourceTypeVideo,
		})
		logrus.WithField("public_id", publicID).WithError(err).
			Warn("local delete failed after remote destroy, queued for reconciliation")
		return nil
	}

	return nil
}

func (s *videoService) enqueue(ctx context.Context, job queue.Job) {
	if s.reconcile == nil {
		logrus.WithField("public_id", job.PublicID).Warn("no reconcile queue configured, job dropped")
		return
	}
	if err := s.reconcile.Enqueue(ctx, job); err != nil {
		logrus.WithFields(logrus.Fields{
			"job_type":  job.Type,
			"public_id": job.PublicID,
		}).WithError(err).Error("failed to enqueue reconcile job")
	}
}
