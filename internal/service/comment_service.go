package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/repository"
	"quill/internal/validation"
)

// AddCommentInput carries the fields for commenting on a post.
type AddCommentInput struct {
	Text string `json:"text"`
}

// CommentService handles comment business logic.
type CommentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
}

// NewCommentService creates a new comment service.
func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// AddComment validates and stores a comment on an existing post. A blank
// comment is rejected before anything is written.
func (s *CommentService) AddComment(ctx context.Context, authorID, postID uint, input AddCommentInput) (*models.Comment, error) {
	if err := validation.ValidateCommentText(input.Text); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     input.Text,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.comments.GetByID(ctx, comment.ID)
}

// ListComments returns a post's comments oldest first. The post must exist.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}
