package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/faculty-service/internal/api/dto"
	"github.com/spec-kit/faculty-service/internal/service"
)

// PublicHandler serves the unauthenticated profile and search endpoints.
type PublicHandler struct {
	views  *service.ProfileViewService
	search *service.SearchService
}

// NewPublicHandler constructs handler.
func NewPublicHandler(views *service.ProfileViewService, search *service.SearchService) *PublicHandler {
	return &PublicHandler{views: views, search: search}
}

// clientIP prefers the first X-Forwarded-For hop so view dedup keys on the
// original caller when the service sits behind a proxy.
func clientIP(c *fiber.Ctx) string {
	if forwarded := c.Get(fiber.HeaderXForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	return c.IP()
}

// Profile GET /public/profile/:slug.
func (h *PublicHandler) Profile(c *fiber.Ctx) error {
	profile, err := h.views.GetPublicProfile(c.UserContext(), c.Params("slug"), clientIP(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPublicProfileResponse(profile)})
}

// Search GET /public/search?q=&department=.
func (h *PublicHandler) Search(c *fiber.Ctx) error {
	results, err := h.search.Search(c.UserContext(), c.Query("q"), c.Query("department"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"results": results, "count": len(results)})
}
