package service

import (
	"context"
	"errors"

	"quill/internal/models"
	"quill/internal/repository"
	"quill/internal/validation"

	"gorm.io/gorm"
)

// CreateGroupInput carries the fields for creating a thematic group.
type CreateGroupInput struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// GroupService handles group business logic. Groups are created by
// administrators only; there is no self-serve path.
type GroupService struct {
	groups repository.GroupRepository
}

// NewGroupService creates a new group service.
func NewGroupService(groups repository.GroupRepository) *GroupService {
	return &GroupService{groups: groups}
}

// CreateGroup validates and stores a new group.
func (s *GroupService) CreateGroup(ctx context.Context, input CreateGroupInput) (*models.Group, error) {
	if err := validation.ValidateGroupTitle(input.Title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateGroupSlug(input.Slug); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	group := &models.Group{
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
	}
	err := s.groups.Create(ctx, group)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, models.NewValidationError("A group with this slug already exists")
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return group, nil
}

// GetGroup returns one group by slug.
func (s *GroupService) GetGroup(ctx context.Context, slug string) (*models.Group, error) {
	return s.groups.GetBySlug(ctx, slug)
}

// ListGroups returns every group ordered by title.
func (s *GroupService) ListGroups(ctx context.Context) ([]models.Group, error) {
	groups, err := s.groups.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if groups == nil {
		groups = []models.Group{}
	}
	return groups, nil
}
