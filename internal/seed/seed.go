package seed

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"quill/internal/middleware"
	"quill/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Run fills the database with a demo data set: users, groups, posts with
// comments, and a follow graph dense enough that every feed has content.
// It refuses to run on a database that already has users.
func Run(db *gorm.DB, userCount, groupCount, postCount int) error {
	var existing int64
	if err := db.Model(&models.User{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return errors.New("database already has users, refusing to seed")
	}

	gofakeit.Seed(0)

	users := make([]*models.User, 0, userCount)
	for i := 0; i < userCount; i++ {
		user, err := CreateUser(db)
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}

	groups := make([]*models.Group, 0, groupCount)
	for i := 0; i < groupCount; i++ {
		group, err := CreateGroup(db)
		if err != nil {
			return fmt.Errorf("seed group: %w", err)
		}
		groups = append(groups, group)
	}

	for i := 0; i < postCount; i++ {
		author := users[rand.Intn(len(users))]
		var group *models.Group
		// Roughly a third of posts stay outside any group.
		if rand.Intn(3) > 0 && len(groups) > 0 {
			group = groups[rand.Intn(len(groups))]
		}
		post, err := CreatePost(db, author, group)
		if err != nil {
			return fmt.Errorf("seed post: %w", err)
		}
		for j := rand.Intn(4); j > 0; j-- {
			commenter := users[rand.Intn(len(users))]
			if _, err := CreateComment(db, commenter, post); err != nil {
				return fmt.Errorf("seed comment: %w", err)
			}
		}
	}

	for _, user := range users {
		for j := 0; j < 3; j++ {
			author := users[rand.Intn(len(users))]
			if err := CreateFollow(db, user, author); err != nil {
				return fmt.Errorf("seed follow: %w", err)
			}
		}
	}

	middleware.Logger.Info("seeding complete",
		slog.Int("users", userCount),
		slog.Int("groups", groupCount),
		slog.Int("posts", postCount),
	)
	return nil
}
