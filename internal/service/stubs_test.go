package service

import (
	"context"
	"errors"

	"quill/internal/models"
)

// Function-field stubs so each test overrides only what it touches.
// Unset fields panic, which points straight at the missing expectation.

type stubUserRepo struct {
	createFn        func(ctx context.Context, user *models.User) error
	getByIDFn       func(ctx context.Context, id uint) (*models.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*models.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

type stubFollowRepo struct {
	createFn      func(ctx context.Context, follow *models.Follow) error
	deleteFn      func(ctx context.Context, userID, authorID uint) (bool, error)
	existsFn      func(ctx context.Context, userID, authorID uint) (bool, error)
	listAuthorsFn func(ctx context.Context, userID uint) ([]models.User, error)
}

func (s *stubFollowRepo) Create(ctx context.Context, follow *models.Follow) error {
	return s.createFn(ctx, follow)
}
func (s *stubFollowRepo) Delete(ctx context.Context, userID, authorID uint) (bool, error) {
	return s.deleteFn(ctx, userID, authorID)
}
func (s *stubFollowRepo) Exists(ctx context.Context, userID, authorID uint) (bool, error) {
	return s.existsFn(ctx, userID, authorID)
}
func (s *stubFollowRepo) ListAuthors(ctx context.Context, userID uint) ([]models.User, error) {
	return s.listAuthorsFn(ctx, userID)
}

type stubPostRepo struct {
	createFn        func(ctx context.Context, post *models.Post) error
	getByIDFn       func(ctx context.Context, id uint) (*models.Post, error)
	updateFn        func(ctx context.Context, post *models.Post) error
	deleteFn        func(ctx context.Context, id uint) error
	listFn          func(ctx context.Context, offset, limit int) ([]models.Post, error)
	countAllFn      func(ctx context.Context) (int64, error)
	listByGroupFn   func(ctx context.Context, groupID uint, offset, limit int) ([]models.Post, error)
	countByGroupFn  func(ctx context.Context, groupID uint) (int64, error)
	listByAuthorFn  func(ctx context.Context, authorID uint, offset, limit int) ([]models.Post, error)
	countByAuthorFn func(ctx context.Context, authorID uint) (int64, error)
	feedFn          func(ctx context.Context, userID uint, offset, limit int) ([]models.Post, error)
	countFeedFn     func(ctx context.Context, userID uint) (int64, error)
}

func (s *stubPostRepo) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *stubPostRepo) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *stubPostRepo) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *stubPostRepo) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *stubPostRepo) List(ctx context.Context, offset, limit int) ([]models.Post, error) {
	return s.listFn(ctx, offset, limit)
}
func (s *stubPostRepo) CountAll(ctx context.Context) (int64, error) {
	return s.countAllFn(ctx)
}
func (s *stubPostRepo) ListByGroup(ctx context.Context, groupID uint, offset, limit int) ([]models.Post, error) {
	return s.listByGroupFn(ctx, groupID, offset, limit)
}
func (s *stubPostRepo) CountByGroup(ctx context.Context, groupID uint) (int64, error) {
	return s.countByGroupFn(ctx, groupID)
}
func (s *stubPostRepo) ListByAuthor(ctx context.Context, authorID uint, offset, limit int) ([]models.Post, error) {
	return s.listByAuthorFn(ctx, authorID, offset, limit)
}
func (s *stubPostRepo) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	return s.countByAuthorFn(ctx, authorID)
}
func (s *stubPostRepo) Feed(ctx context.Context, userID uint, offset, limit int) ([]models.Post, error) {
	return s.feedFn(ctx, userID, offset, limit)
}
func (s *stubPostRepo) CountFeed(ctx context.Context, userID uint) (int64, error) {
	return s.countFeedFn(ctx, userID)
}

type stubGroupRepo struct {
	createFn    func(ctx context.Context, group *models.Group) error
	getByIDFn   func(ctx context.Context, id uint) (*models.Group, error)
	getBySlugFn func(ctx context.Context, slug string) (*models.Group, error)
	listFn      func(ctx context.Context) ([]models.Group, error)
}

func (s *stubGroupRepo) Create(ctx context.Context, group *models.Group) error {
	return s.createFn(ctx, group)
}
func (s *stubGroupRepo) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	return s.getByIDFn(ctx, id)
}
func (s *stubGroupRepo) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *stubGroupRepo) List(ctx context.Context) ([]models.Group, error) {
	return s.listFn(ctx)
}

type stubCommentRepo struct {
	createFn     func(ctx context.Context, comment *models.Comment) error
	getByIDFn    func(ctx context.Context, id uint) (*models.Comment, error)
	listByPostFn func(ctx context.Context, postID uint) ([]models.Comment, error)
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *stubCommentRepo) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *stubCommentRepo) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}

func appErrCode(err error) string {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
