package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"video-gallery/internal/domain/repositories"
	"video-gallery/internal/infrastructure/queue"
	"video-gallery/pkg/constants"

	"github.com/sirupsen/logrus"
)

// ReconcileService finishes the work the request path could not: destroying
// orphaned remote assets and completing half-done two-phase deletes.
type ReconcileService interface {
	ProcessJob(ctx context.Context, job *queue.Job) error
	SweepPendingDeletes(ctx context.Context, gracePeriod time.Duration) error
}

type reconcileService struct {
	repo    repositories.VideoRepository
	gateway repositories.MediaGateway
}

func NewReconcileService(repo repositories.VideoRepository, gateway repositories.MediaGateway) ReconcileService {
	return &reconcileService{
		repo:    repo,
		gateway: gateway,
	}
}

func (s *reconcileService) ProcessJob(ctx context.Context, job *queue.Job) error {
	switch job.Type {
	case queue.JobDestroyRemote:
		return s.destroyRemote(ctx, job.PublicID, job.ResourceType)
	case queue.JobFinishDelete:
		if err := s.destroyRemote(ctx, job.PublicID, job.ResourceType); err != nil {
			return err
		}
		return s.repo.DeleteByPublicID(job.PublicID)
	default:
		return fmt.Errorf("unknown job type: %s", job.Type)
	}
}

// SweepPendingDeletes picks up rows stuck in pending_delete longer than the
// grace period, e.g. after a crash between the two delete phases or a lost
// reconcile job.
func (s *reconcileService) SweepPendingDeletes(ctx context.Context, gracePeriod time.Duration) error {
	pending, err := s.repo.ListPendingDelete(time.Now().Add(-gracePeriod))
	if err != nil {
		return err
	}

	for i := range pending {
		video := &pending[i]
		if err := s.destroyRemote(ctx, video.PublicID, constants.ResourceTypeVideo); err != nil {
			logrus.WithField("public_id", video.PublicID).WithError(err).
				Warn("sweep: remote destroy failed, will retry next run")
			continue
		}
		if err := s.repo.DeleteByPublicID(video.PublicID); err != nil {
			logrus.WithField("public_id", video.PublicID).WithError(err).
				Warn("sweep: local delete failed, will retry next run")
			continue
		}
		logrus.WithField("public_id", video.PublicID).Info("sweep: finished pending delete")
	}
	return nil
}

func (s *reconcileService) destroyRemote(ctx context.Context, publicID, resourceType string) error {
	err := s.gateway.Destroy(ctx, publicID, resourceType)
	if err != nil && !errors.Is(err, repositories.ErrAssetNotFound) {
		return err
	}
	return nil
}
