package task

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrInvalidTask  = errors.New("invalid task")
)

const maxTitleLength = 100

type TaskService struct {
	repo *TaskRepo
}

func NewTaskService(repo *TaskRepo) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) List(ctx context.Context, userID int64, filter *TaskFilter) ([]Task, int, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, ErrInvalidTask
	}
	if filter.Priority != "" && !filter.Priority.Valid() {
		return nil, 0, ErrInvalidTask
	}
	return s.repo.List(ctx, userID, filter)
}

func (s *TaskService) GetByID(ctx context.Context, userID, id int64) (*Task, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *TaskService) Create(ctx context.Context, userID int64, req *CreateTaskRequest) (*Task, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || len(req.Title) > maxTitleLength {
		return nil, ErrInvalidTask
	}

	if req.Status == "" {
		req.Status = StatusTodo
	}
	if req.Priority == "" {
		req.Priority = PriorityMedium
	}
	if !req.Status.Valid() || !req.Priority.Valid() {
		return nil, ErrInvalidTask
	}

	return s.repo.Create(ctx, userID, req)
}

func (s *TaskService) Update(ctx context.Context, userID, id int64, req *UpdateTaskRequest) (*Task, error) {
	if req.Empty() {
		return nil, ErrInvalidTask
	}

	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		if trimmed == "" || len(trimmed) > maxTitleLength {
			return nil, ErrInvalidTask
		}
		req.Title = &trimmed
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, ErrInvalidTask
	}
	if req.Priority != nil && !req.Priority.Valid() {
		return nil, ErrInvalidTask
	}

	return s.repo.Update(ctx, userID, id, req)
}

func (s *TaskService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *TaskService) Stats(ctx context.Context, userID int64) (*TaskStats, error) {
	return s.repo.Stats(ctx, userID)
}
