package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/savelife/savelife-api/internal/domain/model"
	apperrors "github.com/savelife/savelife-api/internal/errors"
	"github.com/savelife/savelife-api/internal/ports"
)

const (
	blogListCacheKey = "blogs:published:first"

	defaultBlogPageSize = 50
)

// BlogServiceOptions groups dependencies for BlogService.
type BlogServiceOptions struct {
	Blogs    ports.BlogStore
	Cache    ports.Cache
	CacheTTL time.Duration
	Logger   *slog.Logger
}

// BlogService orchestrates blog publishing with a cache-aside read path for
// the public listing. Cache failures degrade to direct reads; they never fail
// the request.
type BlogService struct {
	blogs    ports.BlogStore
	cache    ports.Cache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewBlogService constructs a new BlogService.
func NewBlogService(opts BlogServiceOptions) *BlogService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &BlogService{
		blogs:    opts.Blogs,
		cache:    opts.Cache,
		cacheTTL: opts.CacheTTL,
		logger:   logger,
	}
}

// Create publishes a new post and invalidates the cached listing.
func (s *BlogService) Create(ctx context.Context, req *model.CreateBlogRequest, authorEmail string) (*model.Blog, error) {
	blog, err := s.blogs.Create(ctx, req, authorEmail)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	}

	if s.cache != nil {
		if _, delErr := s.cache.Delete(ctx, blogListCacheKey); delErr != nil {
			s.logger.WarnContext(ctx, "blog cache invalidation failed", "err", delErr)
		}
	}
	return blog, nil
}

// ListPublic returns published posts. The first page is served through the
// cache when available.
func (s *BlogService) ListPublic(ctx context.Context, limit, offset int) ([]*model.Blog, error) {
	if limit <= 0 {
		limit = defaultBlogPageSize
	}
	cacheable := s.cache != nil && limit == defaultBlogPageSize && offset == 0

	if cacheable {
		if blogs, ok := s.readCachedList(ctx); ok {
			return blogs, nil
		}
	}

	blogs, err := s.blogs.ListPublished(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.Upstream(err, "Failed to list blogs.")
	}

	if cacheable {
		s.writeCachedList(ctx, blogs)
	}
	return blogs, nil
}

func (s *BlogService) readCachedList(ctx context.Context) ([]*model.Blog, bool) {
	raw, err := s.cache.Get(ctx, blogListCacheKey)
	if err != nil {
		s.logger.WarnContext(ctx, "blog cache read failed", "err", err)
		return nil, false
	}
	if raw == nil {
		return nil, false
	}

	var blogs []*model.Blog
	if err := json.Unmarshal(raw, &blogs); err != nil {
		s.logger.WarnContext(ctx, "blog cache entry corrupt", "err", err)
		return nil, false
	}
	return blogs, true
}

func (s *BlogService) writeCachedList(ctx context.Context, blogs []*model.Blog) {
	raw, err := json.Marshal(blogs)
	if err != nil {
		s.logger.WarnContext(ctx, "blog cache encode failed", "err", err)
		return
	}
	if err := s.cache.Set(ctx, blogListCacheKey, raw, s.cacheTTL); err != nil {
		s.logger.WarnContext(ctx, "blog cache write failed", "err", err)
	}
}
