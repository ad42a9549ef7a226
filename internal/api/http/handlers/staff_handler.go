package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/faculty-service/internal/api/dto"
	"github.com/spec-kit/faculty-service/internal/auth"
	"github.com/spec-kit/faculty-service/internal/domain"
	"github.com/spec-kit/faculty-service/internal/service"
	apperrors "github.com/spec-kit/faculty-service/pkg/util"
)

// StaffHandler covers staff self-service: identity, completion status, the
// staff-details upsert and own analytics.
type StaffHandler struct {
	profiles *service.ProfileService
	tracker  *service.TrackerService
	views    *service.ProfileViewService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(profiles *service.ProfileService, tracker *service.TrackerService, views *service.ProfileViewService) *StaffHandler {
	return &StaffHandler{profiles: profiles, tracker: tracker, views: views}
}

func principal(c *fiber.Ctx) (*domain.User, error) {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return user, nil
}

// WhoAmI GET /staff/me.
func (h *StaffHandler) WhoAmI(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	details, err := h.profiles.GetStaffDetails(c.UserContext(), user.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("staff details", nil)
		}
		return err
	}
	return c.JSON(fiber.Map{"data": dto.WhoAmIResponse{
		Prefix:     details.Prefix,
		Name:       details.Name,
		Department: details.Department,
	}})
}

// ProfileStatus GET /staff/profile/status.
func (h *StaffHandler) ProfileStatus(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	tracker, err := h.tracker.Status(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTrackerStatusResponse(tracker)})
}

// GetStaffDetails GET /staff/details.
func (h *StaffHandler) GetStaffDetails(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	details, err := h.profiles.GetStaffDetails(c.UserContext(), user.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("staff details", nil)
		}
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStaffDetailsResponse(details)})
}

// UpsertStaffDetails handles POST and PUT /staff/details.
func (h *StaffHandler) UpsertStaffDetails(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	var req dto.StaffDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	details, err := h.profiles.UpsertStaffDetails(c.UserContext(), user, service.StaffDetailsInput{
		Prefix:          req.Prefix,
		Name:            req.Name,
		Department:      req.Department,
		DepartmentOrder: req.DepartmentOrder,
		Institution:     req.Institution,
		Phone:           req.Phone,
		Address:         req.Address,
		Website:         req.Website,
		PictureURL:      req.PictureURL,
	})
	if err != nil {
		return err
	}
	status := fiber.StatusOK
	if c.Method() == fiber.MethodPost {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"data": dto.NewStaffDetailsResponse(details)})
}

// OwnAnalytics GET /staff/profile/views.
func (h *StaffHandler) OwnAnalytics(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	analytics, err := h.views.GetOwnAnalytics(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": analytics})
}
