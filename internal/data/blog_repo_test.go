package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savelife/savelife-api/internal/domain/model"
	"github.com/savelife/savelife-api/internal/testutil"
)

func TestBlogRepo_Create_ListPublished(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewBlogRepo(db)

		draft, err := repo.Create(ctx, &model.CreateBlogRequest{
			Title:   "Draft Post",
			Content: "not visible yet",
		}, "author@example.com")
		require.NoError(t, err)
		assert.Equal(t, model.BlogStatusDraft, draft.Status)

		published, err := repo.Create(ctx, &model.CreateBlogRequest{
			Title:   "Published Post",
			Content: "visible",
			Status:  model.BlogStatusPublished,
		}, "Author@Example.com")
		require.NoError(t, err)
		assert.Equal(t, "author@example.com", published.AuthorEmail)
		require.NotEmpty(t, published.ID)

		// only the published post shows on the public listing
		lst, err := repo.ListPublished(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, lst, 1)
		assert.Equal(t, published.ID, lst[0].ID)
	})
}

func TestBlogRepo_Create_Validation(t *testing.T) {
	repo := NewBlogRepo(nil)

	_, err := repo.Create(context.Background(), &model.CreateBlogRequest{Content: "no title"}, "a@example.com")
	assert.Error(t, err)

	_, err = repo.Create(context.Background(), &model.CreateBlogRequest{Title: "no content"}, "a@example.com")
	assert.Error(t, err)

	_, err = repo.Create(context.Background(), &model.CreateBlogRequest{Title: "t", Content: "c"}, "")
	assert.Error(t, err)

	_, err = repo.Create(context.Background(), nil, "a@example.com")
	assert.Error(t, err)
}

func TestBlogRepo_ListPublished_Pagination(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewBlogRepo(db)

		for i := 0; i < 3; i++ {
			_, err := repo.Create(ctx, &model.CreateBlogRequest{
				Title:   "Post",
				Content: "body",
				Status:  model.BlogStatusPublished,
			}, "author@example.com")
			require.NoError(t, err)
		}

		first, err := repo.ListPublished(ctx, 2, 0)
		require.NoError(t, err)
		assert.Len(t, first, 2)

		rest, err := repo.ListPublished(ctx, 2, 2)
		require.NoError(t, err)
		assert.Len(t, rest, 1)
	})
}
