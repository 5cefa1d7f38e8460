package service

import (
	"context"
	"errors"

	"quill/internal/models"
	"quill/internal/repository"

	"gorm.io/gorm"
)

// FollowService handles the follow graph: creating edges, removing them,
// and listing who a user follows.
type FollowService struct {
	follows repository.FollowRepository
	users   repository.UserRepository
}

// NewFollowService creates a new follow service.
func NewFollowService(follows repository.FollowRepository, users repository.UserRepository) *FollowService {
	return &FollowService{follows: follows, users: users}
}

// Follow subscribes userID to the author with the given username.
// Self-follows and duplicate follows are rejected with typed errors; the
// duplicate case relies on the unique index rather than a read-then-write,
// so two concurrent calls cannot both succeed.
func (s *FollowService) Follow(ctx context.Context, userID uint, username string) error {
	author, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if author.ID == userID {
		return models.NewSelfFollowError()
	}

	err = s.follows.Create(ctx, &models.Follow{UserID: userID, AuthorID: author.ID})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.NewAlreadyFollowingError(username)
	}
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Unfollow removes the subscription. Unfollowing someone not followed is a
// no-op, not an error.
func (s *FollowService) Unfollow(ctx context.Context, userID uint, username string) error {
	author, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if _, err := s.follows.Delete(ctx, userID, author.ID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// IsFollowing reports whether userID follows the author with the given username.
func (s *FollowService) IsFollowing(ctx context.Context, userID uint, username string) (bool, error) {
	author, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return s.follows.Exists(ctx, userID, author.ID)
}

// Following lists the authors userID follows.
func (s *FollowService) Following(ctx context.Context, userID uint) ([]models.User, error) {
	authors, err := s.follows.ListAuthors(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if authors == nil {
		authors = []models.User{}
	}
	return authors, nil
}
