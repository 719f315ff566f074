package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
)

const defaultActivityLogLimit = 50

type ActivityService struct {
	BaseService
	activityRepo portsrepo.ActivityLogRepository
}

func NewActivityService(activityRepo portsrepo.ActivityLogRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

var _ portssvc.ActivitySvcFacade = (*ActivityService)(nil)

func (s *ActivityService) RecordActivity(ctx context.Context, log domain.ActivityLog) error {
	if log.LogID == "" {
		log.LogID = uuid.NewString()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	if err := s.activityRepo.SaveActivityLog(ctx, log); err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

func (s *ActivityService) ListActivityLogs(ctx context.Context, userID string, includeAll bool, limit, offset int) ([]domain.ActivityLog, error) {
	if limit <= 0 {
		limit = defaultActivityLogLimit
	}
	if offset < 0 {
		offset = 0
	}

	var (
		logs []domain.ActivityLog
		err  error
	)
	if includeAll {
		logs, err = s.activityRepo.FindAllActivityLogs(ctx, limit, offset)
	} else {
		logs, err = s.activityRepo.FindActivityLogs(ctx, userID, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	return logs, nil
}
