package server

import (
	"quill/internal/models"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListPosts serves one page of the site-wide index listing, cache-backed.
func (s *Server) ListPosts(c *fiber.Ctx) error {
	list, err := s.posts.ListIndex(c.UserContext(), parsePage(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// GetPost serves one post with its author, group, and comment count.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	post, err := s.posts.GetPost(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(post)
}

// CreatePost publishes a new post by the authenticated user.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var input service.CreatePostInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}
	post, err := s.posts.CreatePost(c.UserContext(), currentUserID(c), input)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost edits a post owned by the authenticated user.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var input service.UpdatePostInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}
	post, err := s.posts.UpdatePost(c.UserContext(), currentUserID(c), id, input)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(post)
}

// DeletePost removes a post owned by the authenticated user.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := s.posts.DeletePost(c.UserContext(), currentUserID(c), id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Feed serves one page of posts by the authors the caller follows.
func (s *Server) Feed(c *fiber.Ctx) error {
	list, err := s.posts.Feed(c.UserContext(), currentUserID(c), parsePage(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// ClearIndexCache drops every cached index page immediately.
func (s *Server) ClearIndexCache(c *fiber.Ctx) error {
	if err := s.posts.ClearIndexCache(c.UserContext()); err != nil {
		return fail(c, models.NewInternalError(err))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
