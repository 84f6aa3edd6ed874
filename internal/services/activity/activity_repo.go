package activity

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type ActivityRepo struct {
	db *sqlx.DB
}

func NewActivityRepo(db *sqlx.DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

func (r *ActivityRepo) Insert(ctx context.Context, userID int64, action, entityType string, entityID *int64, details string) error {
	query := `
		INSERT INTO activity_logs (user_id, action, entity_type, entity_id, details)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.ExecContext(ctx, query, userID, action, entityType, entityID, details); err != nil {
		return fmt.Errorf("failed to insert activity log: %w", err)
	}
	return nil
}

func (r *ActivityRepo) Recent(ctx context.Context, userID int64, limit int) ([]ActivityLog, error) {
	query := `
		SELECT id, user_id, action, entity_type, entity_id, details, created_at
		FROM activity_logs
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	entries := []ActivityLog{}
	if err := r.db.SelectContext(ctx, &entries, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	return entries, nil
}
