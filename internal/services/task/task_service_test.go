package task

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Validation runs before any repository access, so a nil repo is fine
// for the rejection paths.

func TestTaskService_Create_Validation(t *testing.T) {
	svc := NewTaskService(nil)

	tests := []struct {
		name string
		req  CreateTaskRequest
	}{
		{"empty title", CreateTaskRequest{Title: "   "}},
		{"title too long", CreateTaskRequest{Title: strings.Repeat("x", 101)}},
		{"unknown status", CreateTaskRequest{Title: "ok", Status: "paused"}},
		{"unknown priority", CreateTaskRequest{Title: "ok", Priority: "urgent"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), 1, &tt.req)
			assert.ErrorIs(t, err, ErrInvalidTask)
		})
	}
}

func TestTaskService_Update_Validation(t *testing.T) {
	svc := NewTaskService(nil)

	empty := ""
	badStatus := TaskStatus("paused")
	badPriority := TaskPriority("urgent")

	tests := []struct {
		name string
		req  UpdateTaskRequest
	}{
		{"no fields", UpdateTaskRequest{}},
		{"empty title", UpdateTaskRequest{Title: &empty}},
		{"unknown status", UpdateTaskRequest{Status: &badStatus}},
		{"unknown priority", UpdateTaskRequest{Priority: &badPriority}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), 1, 1, &tt.req)
			assert.ErrorIs(t, err, ErrInvalidTask)
		})
	}
}

func TestTaskService_List_InvalidFilter(t *testing.T) {
	svc := NewTaskService(nil)

	_, _, err := svc.List(context.Background(), 1, &TaskFilter{Status: "paused", Limit: 10})
	assert.ErrorIs(t, err, ErrInvalidTask)

	_, _, err = svc.List(context.Background(), 1, &TaskFilter{Priority: "urgent", Limit: 10})
	assert.ErrorIs(t, err, ErrInvalidTask)
}

func TestEnums(t *testing.T) {
	for _, s := range []TaskStatus{StatusTodo, StatusInProgress, StatusDone, StatusBacklog} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, TaskStatus("").Valid())

	for _, p := range []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh} {
		assert.True(t, p.Valid(), string(p))
	}
	assert.False(t, TaskPriority("").Valid())
}
