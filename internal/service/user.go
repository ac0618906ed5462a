package service

import (
	"context"
	"errors"

	"github.com/savelife/savelife-api/internal/data"
	domainauth "github.com/savelife/savelife-api/internal/domain/auth"
	"github.com/savelife/savelife-api/internal/domain/model"
	apperrors "github.com/savelife/savelife-api/internal/errors"
	"github.com/savelife/savelife-api/internal/ports"
)

// UserServiceOptions groups dependencies for UserService.
type UserServiceOptions struct {
	Users ports.UserStore
}

// UserService orchestrates account registration and administration.
type UserService struct {
	users ports.UserStore
}

// NewUserService constructs a new UserService.
func NewUserService(opts UserServiceOptions) *UserService {
	return &UserService{users: opts.Users}
}

// Register creates a new account. New registrations always start as donors;
// promotion to volunteer or admin is a separate admin-only operation.
func (s *UserService) Register(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	user, err := s.users.Create(ctx, req, domainauth.RoleDonor)
	if err != nil {
		if errors.Is(err, data.ErrUserEmailExists) {
			return nil, &apperrors.AppError{
				Code:    apperrors.ErrCodeConflict,
				Message: "An account with this email already exists.",
				Field:   "email",
				Cause:   err,
			}
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	}
	return user, nil
}

// List returns a page of accounts, newest first.
func (s *UserService) List(ctx context.Context, limit, offset int) ([]*model.User, error) {
	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.Upstream(err, "Failed to list users.")
	}
	return users, nil
}

// HasRole reports whether the account with the given email holds the role.
// An unknown email reports false with no error.
func (s *UserService) HasRole(ctx context.Context, email string, role domainauth.Role) (bool, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return false, nil
		}
		return false, apperrors.Upstream(err, "Failed to look up user.")
	}
	return user.Role == role, nil
}

// IsAdmin reports whether the account with the given email is an admin.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.HasRole(ctx, email, domainauth.RoleAdmin)
}

// IsVolunteer reports whether the account with the given email is a volunteer.
func (s *UserService) IsVolunteer(ctx context.Context, email string) (bool, error) {
	return s.HasRole(ctx, email, domainauth.RoleVolunteer)
}

// SetRole assigns a role to the account with the given ID.
func (s *UserService) SetRole(ctx context.Context, id string, role domainauth.Role) (*model.User, error) {
	if !role.Valid() || role == domainauth.RoleNone {
		return nil, apperrors.ValidationField("role", "role is not valid")
	}
	user, err := s.users.SetRole(ctx, id, role)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return nil, apperrors.NotFound("User not found.")
		}
		return nil, apperrors.Upstream(err, "Failed to set role.")
	}
	return user, nil
}

// Delete removes the account with the given ID.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return apperrors.NotFound("User not found.")
		}
		return apperrors.Upstream(err, "Failed to delete user.")
	}
	return nil
}
