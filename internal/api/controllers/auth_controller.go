package controllers

import (
	"errors"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/auth"
	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/perrors"
	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/services"
	user2 "github.com/nirbhaypatil1311-max/Task-Management-System/internal/services/user"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func userResponse(u *user2.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}

func RegisterAuthRoutes(r *router.Router, svc *services.Services, sessions *auth.SessionManager, guard *auth.Guard) {
	// Create an account and log in immediately
	r.POST("/api/auth/signup", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)

		var req user2.SignupRequest
		if err := parseBody(ctx, &req); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		u, err := svc.User.Signup(stdCtx, &req)
		if err != nil {
			switch {
			case errors.Is(err, user2.ErrInvalidUser):
				writeError(ctx, stdCtx, "Validation failed", perrors.NewErrInvalidRequest("Validation failed", err))
			case errors.Is(err, user2.ErrEmailTaken):
				writeError(ctx, stdCtx, "Email already in use", perrors.New(perrors.ErrCodeConflict, "Email already in use", err))
			default:
				writeError(ctx, stdCtx, "Failed to sign up", perrors.NewErrInternalServerError("Failed to sign up", err))
			}
			return
		}

		if err := sessions.Start(ctx, u.ID, string(u.Role)); err != nil {
			writeError(ctx, stdCtx, "Failed to start session", perrors.NewErrInternalServerError("Failed to start session", err))
			return
		}

		writeCreated(ctx, stdCtx, "Signed up successfully", userResponse(u))
	})

	// Login with email/password
	r.POST("/api/auth/login", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)

		var req LoginRequest
		if err := parseBody(ctx, &req); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		if req.Email == "" || req.Password == "" {
			writeError(ctx, stdCtx, "Email and password are required", perrors.NewErrInvalidRequest("Email and password are required", errors.New("missing credentials")))
			return
		}

		// Unknown email and wrong password produce the same response
		u, err := svc.User.Authenticate(stdCtx, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, user2.ErrInvalidCredentials) {
				writeError(ctx, stdCtx, "Invalid credentials", perrors.NewErrUnauthorized("Invalid credentials", err))
				return
			}
			writeError(ctx, stdCtx, "Failed to log in", perrors.NewErrInternalServerError("Failed to log in", err))
			return
		}

		if err := sessions.Start(ctx, u.ID, string(u.Role)); err != nil {
			writeError(ctx, stdCtx, "Failed to start session", perrors.NewErrInternalServerError("Failed to start session", err))
			return
		}

		writeOK(ctx, stdCtx, "Login successful", userResponse(u))
	})

	// Logout clears the session cookie; idempotent
	r.POST("/api/auth/logout", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)

		sessions.End(ctx)

		writeOK(ctx, stdCtx, "Logged out successfully", nil)
	})

	// Get current user info
	r.GET("/api/auth/me", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)

		p, err := guard.RequireAuth(stdCtx, ctx)
		if err != nil {
			writeGuardError(ctx, stdCtx, err)
			return
		}

		writeOK(ctx, stdCtx, "success", UserResponse{
			ID:    p.ID,
			Name:  p.Name,
			Email: p.Email,
			Role:  p.Role,
		})
	})
}
