package server

import (
	"quill/internal/cache"
	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetProfile serves a user's public profile.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	user, err := s.users.GetByUsername(c.UserContext(), c.Params("username"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

// ListProfilePosts serves one page of a user's posts.
func (s *Server) ListProfilePosts(c *fiber.Ctx) error {
	user, list, err := s.posts.ListProfile(c.UserContext(), c.Params("username"), parsePage(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"user":       user,
		"posts":      list.Posts,
		"pagination": list.Page,
	})
}

// CurrentUser serves the authenticated user's own record, cached briefly
// since it is read on nearly every authenticated page load.
func (s *Server) CurrentUser(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	err := s.cache.Aside(c.UserContext(), cache.UserKey(userID), &user, cache.UserTTL, func() error {
		u, err := s.users.GetByID(c.UserContext(), userID)
		if err != nil {
			return err
		}
		user = *u
		return nil
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

// Following lists the authors the authenticated user follows.
func (s *Server) Following(c *fiber.Ctx) error {
	authors, err := s.follows.Following(c.UserContext(), currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"following": authors})
}
