package model

import (
	"errors"
	"strings"
	"time"
)

const maxBlogTitleLen = 255

// BlogStatus controls whether a post is visible on the public listing.
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

// Valid reports whether the blog status is supported.
func (s BlogStatus) Valid() bool {
	switch s {
	case BlogStatusDraft, BlogStatusPublished:
		return true
	default:
		return false
	}
}

// Blog represents an informational post.
type Blog struct {
	ID          string     `json:"id"              db:"id"`
	Title       string     `json:"title"           db:"title"`
	Image       string     `json:"image,omitempty" db:"image"`
	Content     string     `json:"content"         db:"content"`
	Status      BlogStatus `json:"status"          db:"status"`
	AuthorEmail string     `json:"author_email"    db:"author_email"`
	CreatedAt   time.Time  `json:"created_at"      db:"created_at"`
}

// CreateBlogRequest represents parameters to create a Blog.
// The author email is taken from the authenticated principal.
type CreateBlogRequest struct {
	Title   string     `json:"title"`
	Image   string     `json:"image,omitempty"`
	Content string     `json:"content"`
	Status  BlogStatus `json:"status,omitempty"`
}

// Validate checks required fields and defaults the status to draft.
func (r *CreateBlogRequest) Validate() error {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return errors.New("title is required")
	}
	if len(title) > maxBlogTitleLen {
		return errors.New("title is too long")
	}
	if strings.TrimSpace(r.Content) == "" {
		return errors.New("content is required")
	}
	if r.Status == "" {
		r.Status = BlogStatusDraft
	}
	if !r.Status.Valid() {
		return errors.New("status is not valid")
	}
	return nil
}
