// Package service contains the business logic layer.
package service

import (
	"context"
	"time"

	"quill/internal/cache"
	"quill/internal/models"
	"quill/internal/pagination"
	"quill/internal/repository"
	"quill/internal/validation"
)

// CreatePostInput carries the fields for creating a post.
type CreatePostInput struct {
	Text      string `json:"text"`
	GroupSlug string `json:"group,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
}

// UpdatePostInput carries the fields for editing a post. Nil fields are
// left untouched.
type UpdatePostInput struct {
	Text      *string `json:"text,omitempty"`
	GroupSlug *string `json:"group,omitempty"`
	ImageURL  *string `json:"image_url,omitempty"`
}

// PostList is one page of a listing together with its pagination envelope.
// It is also the unit cached for the index listing.
type PostList struct {
	Posts []models.Post   `json:"posts"`
	Page  pagination.Page `json:"pagination"`
}

// PostService handles post business logic: creation, editing, every listing
// variant, and the index page cache.
type PostService struct {
	posts   repository.PostRepository
	groups  repository.GroupRepository
	users   repository.UserRepository
	cache   *cache.Cache
	perPage int
	ttl     time.Duration
}

// NewPostService creates a new post service. perPage controls listing page
// size and ttl bounds index cache staleness; zero values fall back to the
// defaults.
func NewPostService(
	posts repository.PostRepository,
	groups repository.GroupRepository,
	users repository.UserRepository,
	c *cache.Cache,
	perPage int,
	ttl time.Duration,
) *PostService {
	if perPage < 1 {
		perPage = pagination.DefaultPageSize
	}
	if ttl <= 0 {
		ttl = cache.IndexTTL
	}
	return &PostService{
		posts:   posts,
		groups:  groups,
		users:   users,
		cache:   c,
		perPage: perPage,
		ttl:     ttl,
	}
}

func (s *PostService) resolveGroup(ctx context.Context, slug string) (*uint, error) {
	if slug == "" {
		return nil, nil
	}
	group, err := s.groups.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &group.ID, nil
}

// CreatePost validates and stores a new post, then drops the cached index
// pages so the post shows up immediately.
func (s *PostService) CreatePost(ctx context.Context, authorID uint, input CreatePostInput) (*models.Post, error) {
	if err := validation.ValidatePostText(input.Text); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	groupID, err := s.resolveGroup(ctx, input.GroupSlug)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:     input.Text,
		AuthorID: authorID,
		GroupID:  groupID,
		ImageURL: input.ImageURL,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}

	// Best effort: stale index pages expire with the TTL anyway.
	_ = s.cache.ClearIndex(ctx)

	return s.posts.GetByID(ctx, post.ID)
}

// GetPost returns one post with its author, group, and comment count.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// UpdatePost edits a post. Only the author may edit, and the publication
// date never changes.
func (s *PostService) UpdatePost(ctx context.Context, userID, postID uint, input UpdatePostInput) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, models.NewUnauthorizedError("Only the author can edit this post")
	}

	if input.Text != nil {
		if err := validation.ValidatePostText(*input.Text); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		post.Text = *input.Text
	}
	if input.GroupSlug != nil {
		groupID, err := s.resolveGroup(ctx, *input.GroupSlug)
		if err != nil {
			return nil, err
		}
		post.GroupID = groupID
	}
	if input.ImageURL != nil {
		post.ImageURL = *input.ImageURL
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.posts.GetByID(ctx, postID)
}

// DeletePost removes a post. Only the author may delete. The cached index
// is deliberately not touched; stale pages ride out the TTL.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != userID {
		return models.NewUnauthorizedError("Only the author can delete this post")
	}
	return s.posts.Delete(ctx, postID)
}

func (s *PostService) page(ctx context.Context, requested int,
	count func(context.Context) (int64, error),
	list func(context.Context, int, int) ([]models.Post, error),
) (*PostList, error) {
	total, err := count(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	page := pagination.New(total, requested, s.perPage)
	posts, err := list(ctx, page.Offset(), page.Limit())
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return &PostList{Posts: posts, Page: page}, nil
}

// ListIndex returns one page of the site-wide listing, served from the
// index cache when a fresh render exists.
func (s *PostService) ListIndex(ctx context.Context, requested int) (*PostList, error) {
	// The key must be the effective page, so an out-of-range request maps
	// onto the same entry as a direct request for the clamped page.
	total, err := s.posts.CountAll(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	page := pagination.New(total, requested, s.perPage)

	var list PostList
	err = s.cache.Aside(ctx, cache.IndexPageKey(page.Page), &list, s.ttl, func() error {
		posts, err := s.posts.List(ctx, page.Offset(), page.Limit())
		if err != nil {
			return err
		}
		if posts == nil {
			posts = []models.Post{}
		}
		list = PostList{Posts: posts, Page: page}
		return nil
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &list, nil
}

// ClearIndexCache drops every cached index page immediately.
func (s *PostService) ClearIndexCache(ctx context.Context) error {
	return s.cache.ClearIndex(ctx)
}

// ListGroup returns one page of a group's posts. Unknown slugs are a
// not-found error, never an empty listing.
func (s *PostService) ListGroup(ctx context.Context, slug string, requested int) (*models.Group, *PostList, error) {
	group, err := s.groups.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	list, err := s.page(ctx, requested,
		func(ctx context.Context) (int64, error) { return s.posts.CountByGroup(ctx, group.ID) },
		func(ctx context.Context, offset, limit int) ([]models.Post, error) {
			return s.posts.ListByGroup(ctx, group.ID, offset, limit)
		},
	)
	if err != nil {
		return nil, nil, err
	}
	return group, list, nil
}

// ListProfile returns one page of a user's posts by username.
func (s *PostService) ListProfile(ctx context.Context, username string, requested int) (*models.User, *PostList, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	list, err := s.page(ctx, requested,
		func(ctx context.Context) (int64, error) { return s.posts.CountByAuthor(ctx, user.ID) },
		func(ctx context.Context, offset, limit int) ([]models.Post, error) {
			return s.posts.ListByAuthor(ctx, user.ID, offset, limit)
		},
	)
	if err != nil {
		return nil, nil, err
	}
	return user, list, nil
}

// Feed returns one page of posts by the authors the user follows. A user
// following nobody gets an empty first page, not an error.
func (s *PostService) Feed(ctx context.Context, userID uint, requested int) (*PostList, error) {
	return s.page(ctx, requested,
		func(ctx context.Context) (int64, error) { return s.posts.CountFeed(ctx, userID) },
		func(ctx context.Context, offset, limit int) ([]models.Post, error) {
			return s.posts.Feed(ctx, userID, offset, limit)
		},
	)
}
