package controllers

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	json "github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"

	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/api/response"
	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/auth"
	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/perrors"
)

// requestContext returns a baseline context for handlers, carrying the
// extracted trace context when the middleware chain set one.
func requestContext(ctx *fasthttp.RequestCtx) context.Context {
	if traceCtx, ok := ctx.UserValue("traceCtx").(context.Context); ok {
		return traceCtx
	}
	return context.Background()
}

func parseBody(ctx *fasthttp.RequestCtx, target any) error {
	body := ctx.PostBody()
	if len(body) == 0 {
		return errors.New("request body is empty")
	}

	return json.Unmarshal(body, target)
}

func writeError(ctx *fasthttp.RequestCtx, stdCtx context.Context, message string, err error) {
	response.NewResponse[any](stdCtx, message, nil).WithError(err).Write(ctx)
}

func writeOK(ctx *fasthttp.RequestCtx, stdCtx context.Context, message string, data any) {
	response.NewResponse(stdCtx, message, data).Write(ctx)
}

func writeCreated(ctx *fasthttp.RequestCtx, stdCtx context.Context, message string, data any) {
	response.NewResponse(stdCtx, message, data).WithStatus(fasthttp.StatusCreated).Write(ctx)
}

// writeGuardError maps guard failures to their HTTP statuses: 401 for
// unauthenticated, 403 for forbidden. The discriminant is the error
// value, never message text.
func writeGuardError(ctx *fasthttp.RequestCtx, stdCtx context.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrForbidden):
		writeError(ctx, stdCtx, "Insufficient permissions", perrors.NewErrForbidden("Insufficient permissions", err))
	case errors.Is(err, auth.ErrUnauthenticated):
		writeError(ctx, stdCtx, "Authentication required", perrors.NewErrUnauthorized("Authentication required", err))
	default:
		writeError(ctx, stdCtx, "Failed to resolve user", perrors.NewErrInternalServerError("Failed to resolve user", err))
	}
}

func pathParam(ctx *fasthttp.RequestCtx, key string) (string, error) {
	val := ctx.UserValue(key)
	if val == nil {
		return "", fmt.Errorf("%s is required", key)
	}

	return fmt.Sprint(val), nil
}

func pathParamInt64(ctx *fasthttp.RequestCtx, key string) (int64, error) {
	val, err := pathParam(ctx, key)
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(val, 10, 64)
}

func queryIntDefault(ctx *fasthttp.RequestCtx, key string, def int) int {
	raw := ctx.QueryArgs().Peek(key)
	if len(raw) == 0 {
		return def
	}

	v, err := strconv.Atoi(string(raw))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func queryString(ctx *fasthttp.RequestCtx, key string) string {
	return string(ctx.QueryArgs().Peek(key))
}

// Pagination is the standard paging block for list responses.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func newPagination(page, limit, total int) Pagination {
	totalPages := (total + limit - 1) / limit
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}
