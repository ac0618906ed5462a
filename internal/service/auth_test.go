package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/savelife/savelife-api/internal/data"
	domainauth "github.com/savelife/savelife-api/internal/domain/auth"
	"github.com/savelife/savelife-api/internal/domain/model"
	apperrors "github.com/savelife/savelife-api/internal/errors"
	"github.com/savelife/savelife-api/internal/mocks"
)

func newAuthService(t *testing.T) (*AuthService, *mocks.MockTokenCodec, *mocks.MockRoleStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	codec := mocks.NewMockTokenCodec(ctrl)
	roles := mocks.NewMockRoleStore(ctrl)
	return NewAuthService(AuthServiceOptions{Codec: codec, Roles: roles}), codec, roles
}

func TestAuthService_IssueToken(t *testing.T) {
	svc, codec, _ := newAuthService(t)

	codec.EXPECT().
		Issue(domainauth.TokenClaims{Email: "ada@example.com", Name: "Ada"}).
		Return("signed-token", nil)

	token, err := svc.IssueToken("  Ada@Example.com  ", " Ada ")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
}

func TestAuthService_IssueToken_InvalidEmail(t *testing.T) {
	svc, _, _ := newAuthService(t)

	for _, email := range []string{"", "   ", "not-an-email"} {
		_, err := svc.IssueToken(email, "Ada")
		require.Error(t, err, "email %q", email)
		assert.True(t, apperrors.IsValidation(err))
	}
}

func TestAuthService_VerifyToken_MapsToUnauthenticated(t *testing.T) {
	svc, codec, _ := newAuthService(t)

	codec.EXPECT().Verify("bad").Return(domainauth.TokenClaims{}, errors.New("token expired"))

	_, err := svc.VerifyToken("bad")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthenticated(err))
}

func TestAuthService_LookupRole(t *testing.T) {
	ctx := context.Background()

	t.Run("returns persisted role", func(t *testing.T) {
		svc, _, roles := newAuthService(t)
		roles.EXPECT().
			FindByEmail(gomock.Any(), "ada@example.com").
			Return(&model.User{Email: "ada@example.com", Role: domainauth.RoleAdmin}, nil)

		role, err := svc.LookupRole(ctx, "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, domainauth.RoleAdmin, role)
	})

	t.Run("unknown user is no role, not an error", func(t *testing.T) {
		svc, _, roles := newAuthService(t)
		roles.EXPECT().
			FindByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, data.ErrUserNotFound)

		role, err := svc.LookupRole(ctx, "ghost@example.com")
		require.NoError(t, err)
		assert.Equal(t, domainauth.RoleNone, role)
	})

	t.Run("store failure surfaces as upstream error", func(t *testing.T) {
		svc, _, roles := newAuthService(t)
		roles.EXPECT().
			FindByEmail(gomock.Any(), "ada@example.com").
			Return(nil, errors.New("connection refused"))

		_, err := svc.LookupRole(ctx, "ada@example.com")
		require.Error(t, err)
		assert.True(t, apperrors.IsUpstream(err))
	})
}
