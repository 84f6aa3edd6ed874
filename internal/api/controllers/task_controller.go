package controllers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/auth"
	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/perrors"
	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/services"
	activity2 "github.com/nirbhaypatil1311-max/Task-Management-System/internal/services/activity"
	task2 "github.com/nirbhaypatil1311-max/Task-Management-System/internal/services/task"
)

type TaskListResponse struct {
	Tasks      []task2.Task `json:"tasks"`
	Pagination Pagination   `json:"pagination"`
}

type TaskStatsResponse struct {
	Stats          *task2.TaskStats        `json:"stats"`
	RecentActivity []activity2.ActivityLog `json:"recentActivity"`
}

func RegisterTaskRoutes(r *router.Router, svc *services.Services, guard *auth.Guard) {
	// List tasks with optional status/priority filters
	r.GET("/api/v1/tasks", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)

		p, err := guard.RequireAuth(stdCtx, ctx)
		if err != nil {
			writeGuardError(ctx, stdCtx, err)
			return
		}

		page := queryIntDefault(ctx, "page", 1)
		limit := queryIntDefault(ctx, "limit", 10)

		filter := &task2.TaskFilter{
			Status:   task2.TaskStatus(queryString(ctx, "status")),
			Priority: task2.TaskPriority(queryString(ctx, "priority")),
			Limit:    limit,
			Offset:   (page - 1) * limit,
		}

		tasks, total, err := svc.Task.List(stdCtx, p.ID, filter)
		if err != nil {
			if errors.Is(err, task2.ErrInvalidTask) {
				writeError(ctx, stdCtx, "Invalid filter", perrors.NewErrInvalidRequest("Invalid filter", err))
				return
			}
			writeError(ctx, stdCtx, "Failed to list tasks", perrors.NewErrInternalServerError("Failed to list tasks", err))
			return
		}

		writeOK(ctx, stdCtx, "Tasks retrieved successfully", TaskListResponse{
			Tasks:      tasks,
			Pagination: newPagination(page, limit, total),
		})
	})

	// Create task
	r.POST("/api/v1/tasks", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)

		p, err := guard.RequireAuth(stdCtx, ctx)
		if err != nil {
			writeGuardError(ctx, stdCtx, err)
			return
		}

		var req task2.CreateTaskRequest
		if err := parseBody(ctx, &req); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		created, err := svc.Task.Create(stdCtx, p.ID, &req)
		if err != nil {
			if errors.Is(err, task2.ErrInvalidTask) {
				writeError(ctx, stdCtx, "Validation failed", perrors.NewErrInvalidRequest("Validation failed", err))
				return
			}
			writeError(ctx, stdCtx, "Failed to create task", perrors.NewErrInternalServerError("Failed to create task", err))
			return
		}

		svc.Activity.Record(stdCtx, p.ID, "Created", "task", &created.ID, "Created new task: "+created.Title)

		writeCreated(ctx, stdCtx, "Task created successfully", created)
	})

	// Per-user dashboard stats with recent activity
	r.GET("/api/v1/tasks/stats", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)

		p, err := guard.RequireAuth(stdCtx, ctx)
		if err != nil {
			writeGuardError(ctx, stdCtx, err)
			return
		}

		stats, err := svc.Task.Stats(stdCtx, p.ID)
		if err != nil {
			writeError(ctx, stdCtx, "Failed to get task stats", perrors.NewErrInternalServerError("Failed to get task stats", err))
			return
		}

		recent, err := svc.Activity.Recent(stdCtx, p.ID, 10)
		if err != nil {
			writeError(ctx, stdCtx, "Failed to get recent activity", perrors.NewErrInternalServerError("Failed to get recent activity", err))
			return
		}

		writeOK(ctx, stdCtx, "Stats retrieved successfully", TaskStatsResponse{
			Stats:          stats,
			RecentActivity: recent,
		})
	})

	// Get task by id
	r.GET("/api/v1/tasks/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)

		p, err := guard.RequireAuth(stdCtx, ctx)
		if err != nil {
			writeGuardError(ctx, stdCtx, err)
			return
		}

		id, err := pathParamInt64(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		t, err := svc.Task.GetByID(stdCtx, p.ID, id)
		if err != nil {
			if errors.Is(err, task2.ErrTaskNotFound) {
				writeError(ctx, stdCtx, "Task not found", perrors.New(perrors.ErrCodeNotFound, "Task not found", err))
				return
			}
			writeError(ctx, stdCtx, "Failed to get task", perrors.NewErrInternalServerError("Failed to get task", err))
			return
		}

		writeOK(ctx, stdCtx, "Task retrieved successfully", t)
	})

	// Partial update
	r.PATCH("/api/v1/tasks/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)

		p, err := guard.RequireAuth(stdCtx, ctx)
		if err != nil {
			writeGuardError(ctx, stdCtx, err)
			return
		}

		id, err := pathParamInt64(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		var req task2.UpdateTaskRequest
		if err := parseBody(ctx, &req); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		updated, err := svc.Task.Update(stdCtx, p.ID, id, &req)
		if err != nil {
			switch {
			case errors.Is(err, task2.ErrInvalidTask):
				writeError(ctx, stdCtx, "Validation failed", perrors.NewErrInvalidRequest("Validation failed", err))
			case errors.Is(err, task2.ErrTaskNotFound):
				writeError(ctx, stdCtx, "Task not found", perrors.New(perrors.ErrCodeNotFound, "Task not found", err))
			default:
				writeError(ctx, stdCtx, "Failed to update task", perrors.NewErrInternalServerError("Failed to update task", err))
			}
			return
		}

		svc.Activity.Record(stdCtx, p.ID, "Updated", "task", &updated.ID, "Updated task fields: "+strings.Join(updatedFields(&req), ", "))

		writeOK(ctx, stdCtx, "Task updated successfully", updated)
	})

	// Delete task
	r.DELETE("/api/v1/tasks/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)

		p, err := guard.RequireAuth(stdCtx, ctx)
		if err != nil {
			writeGuardError(ctx, stdCtx, err)
			return
		}

		id, err := pathParamInt64(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		t, err := svc.Task.GetByID(stdCtx, p.ID, id)
		if err != nil {
			if errors.Is(err, task2.ErrTaskNotFound) {
				writeError(ctx, stdCtx, "Task not found", perrors.New(perrors.ErrCodeNotFound, "Task not found", err))
				return
			}
			writeError(ctx, stdCtx, "Failed to get task", perrors.NewErrInternalServerError("Failed to get task", err))
			return
		}

		if err := svc.Task.Delete(stdCtx, p.ID, id); err != nil {
			if errors.Is(err, task2.ErrTaskNotFound) {
				writeError(ctx, stdCtx, "Task not found", perrors.New(perrors.ErrCodeNotFound, "Task not found", err))
				return
			}
			writeError(ctx, stdCtx, "Failed to delete task", perrors.NewErrInternalServerError("Failed to delete task", err))
			return
		}

		svc.Activity.Record(stdCtx, p.ID, "Deleted", "task", &id, fmt.Sprintf("Deleted task: %s", t.Title))

		writeOK(ctx, stdCtx, "Task deleted successfully", nil)
	})
}

func updatedFields(req *task2.UpdateTaskRequest) []string {
	fields := []string{}
	if req.Title != nil {
		fields = append(fields, "title")
	}
	if req.Description != nil {
		fields = append(fields, "description")
	}
	if req.Status != nil {
		fields = append(fields, "status")
	}
	if req.Priority != nil {
		fields = append(fields, "priority")
	}
	if req.DueDate != nil {
		fields = append(fields, "due_date")
	}
	return fields
}
