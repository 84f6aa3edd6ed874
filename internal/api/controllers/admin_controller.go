package controllers

import (
	"errors"
	"fmt"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/auth"
	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/perrors"
	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/services"
	user2 "github.com/nirbhaypatil1311-max/Task-Management-System/internal/services/user"
)

type UserListResponse struct {
	Users      []user2.User `json:"users"`
	Pagination Pagination   `json:"pagination"`
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

func RegisterAdminRoutes(r *router.Router, svc *services.Services, guard *auth.Guard) {
	// List all users
	r.GET("/api/v1/admin/users", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)

		_, err := guard.RequireAdmin(stdCtx, ctx)
		if err != nil {
			writeGuardError(ctx, stdCtx, err)
			return
		}

		page := queryIntDefault(ctx, "page", 1)
		limit := queryIntDefault(ctx, "limit", 10)

		users, total, err := svc.User.List(stdCtx, limit, (page-1)*limit)
		if err != nil {
			writeError(ctx, stdCtx, "Failed to list users", perrors.NewErrInternalServerError("Failed to list users", err))
			return
		}

		writeOK(ctx, stdCtx, "Users retrieved successfully", UserListResponse{
			Users:      users,
			Pagination: newPagination(page, limit, total),
		})
	})

	// Get user by id
	r.GET("/api/v1/admin/users/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)

		_, err := guard.RequireAdmin(stdCtx, ctx)
		if err != nil {
			writeGuardError(ctx, stdCtx, err)
			return
		}

		id, err := pathParamInt64(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		u, err := svc.User.GetByID(stdCtx, id)
		if err != nil {
			if errors.Is(err, user2.ErrUserNotFound) {
				writeError(ctx, stdCtx, "User not found", perrors.New(perrors.ErrCodeNotFound, "User not found", err))
				return
			}
			writeError(ctx, stdCtx, "Failed to get user", perrors.NewErrInternalServerError("Failed to get user", err))
			return
		}

		writeOK(ctx, stdCtx, "User retrieved successfully", u)
	})

	// Change a user's role
	r.PATCH("/api/v1/admin/users/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)

		admin, err := guard.RequireAdmin(stdCtx, ctx)
		if err != nil {
			writeGuardError(ctx, stdCtx, err)
			return
		}

		id, err := pathParamInt64(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		var req UpdateRoleRequest
		if err := parseBody(ctx, &req); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		if err := svc.User.UpdateRole(stdCtx, id, user2.UserRole(req.Role)); err != nil {
			switch {
			case errors.Is(err, user2.ErrInvalidRole):
				writeError(ctx, stdCtx, "Invalid role", perrors.NewErrInvalidRequest("Invalid role", err))
			case errors.Is(err, user2.ErrUserNotFound):
				writeError(ctx, stdCtx, "User not found", perrors.New(perrors.ErrCodeNotFound, "User not found", err))
			default:
				writeError(ctx, stdCtx, "Failed to update role", perrors.NewErrInternalServerError("Failed to update role", err))
			}
			return
		}

		svc.Activity.Record(stdCtx, admin.ID, "Updated", "user", &id, fmt.Sprintf("Changed role of user %d to %s", id, req.Role))

		writeOK(ctx, stdCtx, "User role updated successfully", nil)
	})

	// Delete a user; an admin cannot delete themselves
	r.DELETE("/api/v1/admin/users/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)

		admin, err := guard.RequireAdmin(stdCtx, ctx)
		if err != nil {
			writeGuardError(ctx, stdCtx, err)
			return
		}

		id, err := pathParamInt64(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		if err := svc.User.Delete(stdCtx, admin.ID, id); err != nil {
			switch {
			case errors.Is(err, user2.ErrSelfDelete):
				writeError(ctx, stdCtx, "Cannot delete your own account", perrors.NewErrInvalidRequest("Cannot delete your own account", err))
			case errors.Is(err, user2.ErrUserNotFound):
				writeError(ctx, stdCtx, "User not found", perrors.New(perrors.ErrCodeNotFound, "User not found", err))
			default:
				writeError(ctx, stdCtx, "Failed to delete user", perrors.NewErrInternalServerError("Failed to delete user", err))
			}
			return
		}

		svc.Activity.Record(stdCtx, admin.ID, "Deleted", "user", &id, fmt.Sprintf("Deleted user %d", id))

		writeOK(ctx, stdCtx, "User deleted successfully", nil)
	})
}
