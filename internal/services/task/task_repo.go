package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

type TaskRepo struct {
	db *sqlx.DB
}

func NewTaskRepo(db *sqlx.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

const taskColumns = "id, user_id, title, description, status, priority, due_date, created_at, updated_at"

// List returns one user's tasks, newest first, with the unpaginated total.
func (r *TaskRepo) List(ctx context.Context, userID int64, filter *TaskFilter) ([]Task, int, error) {
	where := []string{"user_id = $1"}
	args := []interface{}{userID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		where = append(where, fmt.Sprintf("priority = $%d", len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", whereClause)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	args = append(args, filter.Limit)
	limitPos := len(args)
	args = append(args, filter.Offset)
	offsetPos := len(args)

	query := fmt.Sprintf(`
		SELECT %s FROM tasks
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, taskColumns, whereClause, limitPos, offsetPos)

	tasks := []Task{}
	if err := r.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, total, nil
}

// GetByID fetches one task, scoped to its owner.
func (r *TaskRepo) GetByID(ctx context.Context, userID, id int64) (*Task, error) {
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE id = $1 AND user_id = $2", taskColumns)

	var t Task
	err := r.db.GetContext(ctx, &t, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return &t, nil
}

func (r *TaskRepo) Create(ctx context.Context, userID int64, req *CreateTaskRequest) (*Task, error) {
	query := fmt.Sprintf(`
		INSERT INTO tasks (user_id, title, description, status, priority, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`, taskColumns)

	var t Task
	err := r.db.GetContext(ctx, &t, query, userID, req.Title, req.Description, req.Status, req.Priority, req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &t, nil
}

// Update applies the non-nil fields of req, scoped to the owner.
func (r *TaskRepo) Update(ctx context.Context, userID, id int64, req *UpdateTaskRequest) (*Task, error) {
	set := []string{}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Title != nil {
		add("title", *req.Title)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.Status != nil {
		add("status", *req.Status)
	}
	if req.Priority != nil {
		add("priority", *req.Priority)
	}
	if req.DueDate != nil {
		add("due_date", *req.DueDate)
	}

	set = append(set, "updated_at = NOW()")

	args = append(args, id)
	idPos := len(args)
	args = append(args, userID)
	userPos := len(args)

	query := fmt.Sprintf(`
		UPDATE tasks SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING %s
	`, strings.Join(set, ", "), idPos, userPos, taskColumns)

	var t Task
	err := r.db.GetContext(ctx, &t, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return &t, nil
}

func (r *TaskRepo) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Stats aggregates one user's tasks for the dashboard.
func (r *TaskRepo) Stats(ctx context.Context, userID int64) (*TaskStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_tasks,
			COALESCE(SUM(CASE WHEN status = 'done' THEN 1 ELSE 0 END), 0) AS done_tasks,
			COALESCE(SUM(CASE WHEN status = 'in-progress' THEN 1 ELSE 0 END), 0) AS in_progress_tasks,
			COALESCE(SUM(CASE WHEN status = 'todo' THEN 1 ELSE 0 END), 0) AS todo_tasks,
			COALESCE(SUM(CASE WHEN priority = 'high' AND status != 'done' THEN 1 ELSE 0 END), 0) AS high_priority_tasks,
			COALESCE(SUM(CASE WHEN due_date < NOW() AND status != 'done' THEN 1 ELSE 0 END), 0) AS overdue_tasks
		FROM tasks WHERE user_id = $1
	`

	var stats TaskStats
	if err := r.db.GetContext(ctx, &stats, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get task stats: %w", err)
	}
	return &stats, nil
}
