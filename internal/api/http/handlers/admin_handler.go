package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/faculty-service/internal/api/dto"
	"github.com/spec-kit/faculty-service/internal/service"
	apperrors "github.com/spec-kit/faculty-service/pkg/util"
)

// AdminHandler serves user management, institution dashboards and export.
type AdminHandler struct {
	admin  *service.AdminService
	views  *service.ProfileViewService
	export *service.ExportService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(admin *service.AdminService, views *service.ProfileViewService, export *service.ExportService) *AdminHandler {
	return &AdminHandler{admin: admin, views: views, export: export}
}

// ListUsers GET /admin/users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.admin.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateUsers POST /admin/users.
func (h *AdminHandler) CreateUsers(c *fiber.Ctx) error {
	actor, err := principal(c)
	if err != nil {
		return err
	}
	var req dto.CreateUsersRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	created, err := h.admin.BulkCreateUsers(c.UserContext(), actor.ID, req.Emails, req.Role)
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(created))
	for i := range created {
		items = append(items, dto.NewUserResponse(&created[i]))
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":       fmt.Sprintf("Successfully added %d user(s)", len(created)),
		"created_users": items,
	})
}

// DeleteUser DELETE /admin/users/:id.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.admin.DeleteUser(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ResetPassword POST /admin/users/:id/reset-password.
func (h *AdminHandler) ResetPassword(c *fiber.Ctx) error {
	if err := h.admin.ResetPassword(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "password reset to the default"}})
}

// PhdScholarsCount GET /admin/phd/count.
func (h *AdminHandler) PhdScholarsCount(c *fiber.Ctx) error {
	rows, err := h.admin.PhdScholarsCount(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// PhdScholarsDetails GET /admin/phd/details.
func (h *AdminHandler) PhdScholarsDetails(c *fiber.Ctx) error {
	rows, err := h.admin.PhdScholarsDetails(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// PhdScholarsSummary GET /admin/phd/summary.
func (h *AdminHandler) PhdScholarsSummary(c *fiber.Ctx) error {
	summary, err := h.admin.PhdScholarsSummary(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summary})
}

// FundingDetails GET /admin/funding.
func (h *AdminHandler) FundingDetails(c *fiber.Ctx) error {
	rows, err := h.admin.FundingDetails(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// PublicationList GET /admin/publications.
func (h *AdminHandler) PublicationList(c *fiber.Ctx) error {
	rows, err := h.admin.PublicationList(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// ResearchIDList GET /admin/research-ids.
func (h *AdminHandler) ResearchIDList(c *fiber.Ctx) error {
	rows, err := h.admin.ResearchIDList(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// ResearchAreasList GET /admin/research-areas.
func (h *AdminHandler) ResearchAreasList(c *fiber.Ctx) error {
	rows, err := h.admin.ResearchAreasList(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// DashboardStats GET /admin/dashboard/stats?department=.
func (h *AdminHandler) DashboardStats(c *fiber.Ctx) error {
	stats, err := h.admin.GetDashboardStats(c.UserContext(), c.Query("department", "Overall"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}

// PublicationsTrend GET /admin/dashboard/publications-trend?department=.
func (h *AdminHandler) PublicationsTrend(c *fiber.Ctx) error {
	trend, err := h.admin.PublicationsTrend(c.UserContext(), c.Query("department", "Overall"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": trend})
}

// FundingTrend GET /admin/dashboard/funding-trend?department=.
func (h *AdminHandler) FundingTrend(c *fiber.Ctx) error {
	trend, err := h.admin.FundingTrend(c.UserContext(), c.Query("department", "Overall"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": trend})
}

// ResearchDistribution GET /admin/dashboard/research-distribution?department=.
func (h *AdminHandler) ResearchDistribution(c *fiber.Ctx) error {
	dist, err := h.admin.ResearchDistribution(c.UserContext(), c.Query("department", "Overall"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dist})
}

// PhdSupervisionStatus GET /admin/dashboard/phd-status?department=.
func (h *AdminHandler) PhdSupervisionStatus(c *fiber.Ctx) error {
	status, err := h.admin.PhdSupervisionStatus(c.UserContext(), c.Query("department", "Overall"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": status})
}

// ProfileViews GET /admin/profile-views.
func (h *AdminHandler) ProfileViews(c *fiber.Ctx) error {
	boards, err := h.views.GetTopViewed(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": boards})
}

// Export POST /admin/export.
func (h *AdminHandler) Export(c *fiber.Ctx) error {
	var req dto.ExportRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
	}
	users, err := h.export.Export(c.UserContext(), req.Sections)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": users})
}
