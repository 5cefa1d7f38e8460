// Package seed populates a development database with realistic demo data.
package seed

import (
	"errors"
	"fmt"

	"quill/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password every seeded account gets, so local
// logins are predictable.
const DefaultPassword = "Passw0rdForDemos"

// CreateUser inserts a user with a fake but plausible identity.
func CreateUser(db *gorm.DB) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username: fmt.Sprintf("%s_%s", gofakeit.Username(), gofakeit.LetterN(4)),
		Email:    gofakeit.Email(),
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateGroup inserts a group with a fake topic.
func CreateGroup(db *gorm.DB) (*models.Group, error) {
	noun := gofakeit.NounConcrete()
	group := &models.Group{
		Title:       gofakeit.BookTitle(),
		Slug:        fmt.Sprintf("%s-%s", noun, gofakeit.LetterN(5)),
		Description: gofakeit.Sentence(12),
	}
	if err := db.Create(group).Error; err != nil {
		return nil, err
	}
	return group, nil
}

// CreatePost inserts a post by author, optionally in group.
func CreatePost(db *gorm.DB, author *models.User, group *models.Group) (*models.Post, error) {
	post := &models.Post{
		Text:     gofakeit.Paragraph(2, 4, 12, "\n\n"),
		AuthorID: author.ID,
	}
	if group != nil {
		post.GroupID = &group.ID
	}
	if err := db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment inserts a comment by author on post.
func CreateComment(db *gorm.DB, author *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:   post.ID,
		AuthorID: author.ID,
		Text:     gofakeit.Sentence(8),
	}
	if err := db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateFollow inserts a follow edge, ignoring duplicates.
func CreateFollow(db *gorm.DB, user, author *models.User) error {
	if user.ID == author.ID {
		return nil
	}
	err := db.Create(&models.Follow{UserID: user.ID, AuthorID: author.ID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}
