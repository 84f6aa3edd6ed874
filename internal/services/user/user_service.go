package user

import (
	"context"
	"errors"
	"strings"

	"github.com/nirbhaypatil1311-max/Task-Management-System/internal/auth"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already in use")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so login failures do not leak which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrInvalidRole = errors.New("invalid role")
	ErrSelfDelete  = errors.New("cannot delete your own account")
	ErrInvalidUser = errors.New("invalid signup request")
)

type UserService struct {
	repo *UserRepo
}

func NewUserService(repo *UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Authenticate checks email/password and returns the user on success.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.VerifyPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// Signup creates a new account with the default role.
func (s *UserService) Signup(ctx context.Context, req *SignupRequest) (*User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)

	if len(name) < 2 || email == "" || !strings.Contains(email, "@") || len(req.Password) < 8 {
		return nil, ErrInvalidUser
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, name, email, hash)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// FindPrincipal adapts the user store to the access guard. A missing
// user resolves to nil, not an error: the session is simply stale.
func (s *UserService) FindPrincipal(ctx context.Context, id int64) (*auth.Principal, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &auth.Principal{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}, nil
}

func (s *UserService) List(ctx context.Context, limit, offset int) ([]User, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *UserService) UpdateRole(ctx context.Context, id int64, role UserRole) error {
	if !role.Valid() {
		return ErrInvalidRole
	}
	return s.repo.UpdateRole(ctx, id, role)
}

// Delete removes a user. An admin cannot delete their own account.
func (s *UserService) Delete(ctx context.Context, actorID, id int64) error {
	if actorID == id {
		return ErrSelfDelete
	}
	return s.repo.Delete(ctx, id)
}
