package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savelife/savelife-api/internal/data"
	domainauth "github.com/savelife/savelife-api/internal/domain/auth"
	"github.com/savelife/savelife-api/internal/domain/model"
	apperrors "github.com/savelife/savelife-api/internal/errors"
)

// fakeUserStore is an in-memory UserStore keyed by email.
type fakeUserStore struct {
	users      map[string]*model.User
	createErr  error
	findErr    error
	setRoleErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (f *fakeUserStore) Create(_ context.Context, req *model.CreateUserRequest, role domainauth.Role) (*model.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, exists := f.users[req.Email]; exists {
		return nil, data.ErrUserEmailExists
	}
	u := &model.User{ID: "id-" + req.Email, Email: req.Email, Name: req.Name, Role: role}
	f.users[u.Email] = u
	return u, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.users[model.NormalizeEmail(email)]
	if !ok {
		return nil, data.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) List(_ context.Context, _, _ int) ([]*model.User, error) {
	out := make([]*model.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserStore) SetRole(_ context.Context, id string, role domainauth.Role) (*model.User, error) {
	if f.setRoleErr != nil {
		return nil, f.setRoleErr
	}
	for _, u := range f.users {
		if u.ID == id {
			u.Role = role
			return u, nil
		}
	}
	return nil, data.ErrUserNotFound
}

func (f *fakeUserStore) Delete(_ context.Context, id string) error {
	for email, u := range f.users {
		if u.ID == id {
			delete(f.users, email)
			return nil
		}
	}
	return data.ErrUserNotFound
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	svc := NewUserService(UserServiceOptions{Users: store})

	u, err := svc.Register(ctx, &model.CreateUserRequest{Email: "Ada@Example.com", Name: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", u.Email)
	// registrations always start as donor, regardless of anything else
	assert.Equal(t, domainauth.RoleDonor, u.Role)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	svc := NewUserService(UserServiceOptions{Users: store})

	_, err := svc.Register(ctx, &model.CreateUserRequest{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &model.CreateUserRequest{Email: "ADA@example.com", Name: "Other"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Equal(t, "email", apperrors.GetField(err))
}

func TestUserService_HasRole(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	svc := NewUserService(UserServiceOptions{Users: store})

	u, err := svc.Register(ctx, &model.CreateUserRequest{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)

	isAdmin, err := svc.IsAdmin(ctx, u.Email)
	require.NoError(t, err)
	assert.False(t, isAdmin)

	_, err = svc.SetRole(ctx, u.ID, domainauth.RoleAdmin)
	require.NoError(t, err)

	isAdmin, err = svc.IsAdmin(ctx, u.Email)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	// unknown email is simply "no", not an error
	isVolunteer, err := svc.IsVolunteer(ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.False(t, isVolunteer)
}

func TestUserService_HasRole_StoreFailure(t *testing.T) {
	store := newFakeUserStore()
	store.findErr = errors.New("connection refused")
	svc := NewUserService(UserServiceOptions{Users: store})

	_, err := svc.IsAdmin(context.Background(), "ada@example.com")
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
}

func TestUserService_SetRole(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	svc := NewUserService(UserServiceOptions{Users: store})

	u, err := svc.Register(ctx, &model.CreateUserRequest{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)

	promoted, err := svc.SetRole(ctx, u.ID, domainauth.RoleVolunteer)
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleVolunteer, promoted.Role)

	// unassignable roles are rejected before touching the store
	_, err = svc.SetRole(ctx, u.ID, domainauth.RoleNone)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.SetRole(ctx, u.ID, domainauth.Role("superuser"))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.SetRole(ctx, "no-such-id", domainauth.RoleAdmin)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	svc := NewUserService(UserServiceOptions{Users: store})

	u, err := svc.Register(ctx, &model.CreateUserRequest{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, u.ID))

	err = svc.Delete(ctx, u.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
