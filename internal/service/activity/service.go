package activity

import (
	"context"
	"log/slog"

	"github.com/emptrack/tracker-backend-go/internal/domain/activity"
)

type ActivityService interface {
	activity.Recorder
	ListRecent(ctx context.Context, employeeID string) ([]activity.ActivityResponse, error)
}

type activityServiceImpl struct {
	activity.ActivityRepository
}

func NewActivityService(repo activity.ActivityRepository) ActivityService {
	return &activityServiceImpl{ActivityRepository: repo}
}

// recentLimit caps the audit feed, matching the dashboard view.
const recentLimit = 10

// Record implements activity.Recorder. Audit writes are best effort: a
// failure degrades to a logged warning instead of failing the parent request.
func (s *activityServiceImpl) Record(ctx context.Context, employeeID string, activityType activity.Type, message string) {
	if employeeID == "" || message == "" {
		slog.Warn("activity entry dropped, missing employee or message", "type", activityType)
		return
	}
	if _, ok := activity.ParseType(string(activityType)); !ok {
		slog.Warn("activity entry dropped, unknown type", "type", activityType)
		return
	}

	if _, err := s.ActivityRepository.Create(ctx, activity.Activity{
		EmployeeID: employeeID,
		Type:       activityType,
		Message:    message,
	}); err != nil {
		slog.Warn("failed to record activity", "type", activityType, "error", err)
	}
}

// ListRecent implements ActivityService.
func (s *activityServiceImpl) ListRecent(ctx context.Context, employeeID string) ([]activity.ActivityResponse, error) {
	entries, err := s.ActivityRepository.ListRecent(ctx, employeeID, recentLimit)
	if err != nil {
		return nil, err
	}
	return activity.NewActivityResponses(entries), nil
}
