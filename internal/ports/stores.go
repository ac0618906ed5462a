package ports

import (
	"context"
	"time"

	domainauth "github.com/savelife/savelife-api/internal/domain/auth"
	"github.com/savelife/savelife-api/internal/domain/model"
)

// UserStore persists user accounts. It subsumes RoleStore; the authorization
// core only ever sees the narrower interface.
type UserStore interface {
	RoleStore
	Create(ctx context.Context, req *model.CreateUserRequest, role domainauth.Role) (*model.User, error)
	List(ctx context.Context, limit, offset int) ([]*model.User, error)
	SetRole(ctx context.Context, id string, role domainauth.Role) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

// BlogStore persists blog posts.
type BlogStore interface {
	Create(ctx context.Context, req *model.CreateBlogRequest, authorEmail string) (*model.Blog, error)
	ListPublished(ctx context.Context, limit, offset int) ([]*model.Blog, error)
}

// DonationRequestStore persists donation requests.
type DonationRequestStore interface {
	Create(ctx context.Context, req *model.CreateDonationRequestRequest, requesterEmail string) (*model.DonationRequest, error)
	List(ctx context.Context, opts model.DonationRequestsListOptions) ([]*model.DonationRequest, error)
	GetByID(ctx context.Context, id string) (*model.DonationRequest, error)
	SetStatus(ctx context.Context, id string, status model.DonationRequestStatus) (*model.DonationRequest, error)
}

// FundingStore persists funding contributions.
type FundingStore interface {
	Create(ctx context.Context, req *model.CreateFundingRequest, email, currency string) (*model.Funding, error)
	List(ctx context.Context, limit, offset int) ([]*model.Funding, error)
}

// Cache is a byte-oriented cache with TTL semantics.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) (bool, error)
}
