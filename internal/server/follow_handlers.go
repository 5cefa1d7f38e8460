package server

import (
	"github.com/gofiber/fiber/v2"
)

// FollowUser subscribes the caller to an author's posts.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	if err := s.follows.Follow(c.UserContext(), currentUserID(c), c.Params("username")); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"following": c.Params("username")})
}

// UnfollowUser removes the subscription. Unfollowing an author the caller
// never followed still returns success.
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	if err := s.follows.Unfollow(c.UserContext(), currentUserID(c), c.Params("username")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
