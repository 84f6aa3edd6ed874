package activity

import (
	"context"
	"log/slog"
)

type ActivityService struct {
	repo *ActivityRepo
}

func NewActivityService(repo *ActivityRepo) *ActivityService {
	return &ActivityService{repo: repo}
}

// Record appends an activity entry. Best-effort: a failed write is
// logged and swallowed, it must never fail the primary operation.
func (s *ActivityService) Record(ctx context.Context, userID int64, action, entityType string, entityID *int64, details string) {
	if err := s.repo.Insert(ctx, userID, action, entityType, entityID, details); err != nil {
		slog.WarnContext(ctx, "Failed to record activity", slog.Any("error", err), slog.Int64("user_id", userID), slog.String("action", action))
	}
}

func (s *ActivityService) Recent(ctx context.Context, userID int64, limit int) ([]ActivityLog, error) {
	return s.repo.Recent(ctx, userID, limit)
}
