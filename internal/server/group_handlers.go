package server

import (
	"quill/internal/models"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListGroups serves every group.
func (s *Server) ListGroups(c *fiber.Ctx) error {
	groups, err := s.groups.ListGroups(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"groups": groups})
}

// GetGroup serves one group by slug.
func (s *Server) GetGroup(c *fiber.Ctx) error {
	group, err := s.groups.GetGroup(c.UserContext(), c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(group)
}

// ListGroupPosts serves one page of a group's posts.
func (s *Server) ListGroupPosts(c *fiber.Ctx) error {
	group, list, err := s.posts.ListGroup(c.UserContext(), c.Params("slug"), parsePage(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"group":      group,
		"posts":      list.Posts,
		"pagination": list.Page,
	})
}

// CreateGroup creates a thematic group. Administrators only.
func (s *Server) CreateGroup(c *fiber.Ctx) error {
	var input service.CreateGroupInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}
	group, err := s.groups.CreateGroup(c.UserContext(), input)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}
