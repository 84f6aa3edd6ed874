package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserService_Signup_Validation(t *testing.T) {
	svc := NewUserService(nil)

	tests := []struct {
		name string
		req  SignupRequest
	}{
		{"short name", SignupRequest{Name: "a", Email: "a@example.com", Password: "password123"}},
		{"missing email", SignupRequest{Name: "Ada", Password: "password123"}},
		{"email without at sign", SignupRequest{Name: "Ada", Email: "not-an-email", Password: "password123"}},
		{"short password", SignupRequest{Name: "Ada", Email: "a@example.com", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidUser)
		})
	}
}

func TestUserService_UpdateRole_InvalidRole(t *testing.T) {
	svc := NewUserService(nil)

	err := svc.UpdateRole(context.Background(), 1, UserRole("superuser"))
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestUserService_Delete_Self(t *testing.T) {
	svc := NewUserService(nil)

	err := svc.Delete(context.Background(), 5, 5)
	assert.ErrorIs(t, err, ErrSelfDelete)
}

func TestUserRole_Valid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, UserRole("superuser").Valid())
}
