package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/faculty-service/internal/api/dto"
	"github.com/spec-kit/faculty-service/internal/domain"
	"github.com/spec-kit/faculty-service/internal/service"
	apperrors "github.com/spec-kit/faculty-service/pkg/util"
)

// FactsHandler covers CRUD over every fact section, scoped to the
// authenticated caller's own rows.
type FactsHandler struct {
	profiles *service.ProfileService
}

// NewFactsHandler constructs handler.
func NewFactsHandler(profiles *service.ProfileService) *FactsHandler {
	return &FactsHandler{profiles: profiles}
}

func parseBody[T any](c *fiber.Ctx) (*T, error) {
	var req T
	if err := c.BodyParser(&req); err != nil {
		return nil, apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return &req, nil
}

// ListEducations GET /staff/education.
func (h *FactsHandler) ListEducations(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	rows, err := h.profiles.ListEducations(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	items := make([]dto.EducationResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewEducationResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateEducation POST /staff/education.
func (h *FactsHandler) CreateEducation(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	req, err := parseBody[dto.EducationRequest](c)
	if err != nil {
		return err
	}
	edu := &domain.Education{
		Degree:    req.Degree,
		College:   req.College,
		StartYear: req.StartYear,
		EndYear:   req.EndYear,
	}
	if err := h.profiles.CreateEducation(c.UserContext(), user.ID, edu); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewEducationResponse(edu)})
}

// UpdateEducation PUT /staff/education/:id.
func (h *FactsHandler) UpdateEducation(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	req, err := parseBody[dto.EducationRequest](c)
	if err != nil {
		return err
	}
	edu := &domain.Education{
		ID:        c.Params("id"),
		Degree:    req.Degree,
		College:   req.College,
		StartYear: req.StartYear,
		EndYear:   req.EndYear,
	}
	if err := h.profiles.UpdateEducation(c.UserContext(), user.ID, edu); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEducationResponse(edu)})
}

// DeleteEducation DELETE /staff/education/:id.
func (h *FactsHandler) DeleteEducation(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	if err := h.profiles.DeleteEducation(c.UserContext(), user.ID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListResearches GET /staff/research.
func (h *FactsHandler) ListResearches(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	rows, err := h.profiles.ListResearches(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	items := make([]dto.ResearchResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewResearchResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateResearch POST /staff/research.
func (h *FactsHandler) CreateResearch(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	req, err := parseBody[dto.ResearchRequest](c)
	if err != nil {
		return err
	}
	research := &domain.Research{ResearchAreas: req.ResearchAreas}
	if err := h.profiles.CreateResearch(c.UserContext(), user.ID, research); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewResearchResponse(research)})
}

// UpdateResearch PUT /staff/research/:id.
func (h *FactsHandler) UpdateResearch(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	req, err := parseBody[dto.ResearchRequest](c)
	if err != nil {
		return err
	}
	research := &domain.Research{ID: c.Params("id"), ResearchAreas: req.ResearchAreas}
	if err := h.profiles.UpdateResearch(c.UserContext(), user.ID, research); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewResearchResponse(research)})
}

// DeleteResearch DELETE /staff/research/:id.
func (h *FactsHandler) DeleteResearch(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	if err := h.profiles.DeleteResearch(c.UserContext(), user.ID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListResearchIDs GET /staff/research-id.
func (h *FactsHandler) ListResearchIDs(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	rows, err := h.profiles.ListResearchIDs(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	items := make([]dto.ResearchIDResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewResearchIDResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateResearchID POST /staff/research-id.
func (h *FactsHandler) CreateResearchID(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	req, err := parseBody[dto.ResearchIDRequest](c)
	if err != nil {
		return err
	}
	rid := &domain.ResearchID{ResearchTitle: req.ResearchTitle, ResearchLink: req.ResearchLink}
	if err := h.profiles.CreateResearchID(c.UserContext(), user.ID, rid); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewResearchIDResponse(rid)})
}

// UpdateResearchID PUT /staff/research-id/:id.
func (h *FactsHandler) UpdateResearchID(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	req, err := parseBody[dto.ResearchIDRequest](c)
	if err != nil {
		return err
	}
	rid := &domain.ResearchID{ID: c.Params("id"), ResearchTitle: req.ResearchTitle, ResearchLink: req.ResearchLink}
	if err := h.profiles.UpdateResearchID(c.UserContext(), user.ID, rid); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewResearchIDResponse(rid)})
}

// DeleteResearchID DELETE /staff/research-id/:id.
func (h *FactsHandler) DeleteResearchID(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	if err := h.profiles.DeleteResearchID(c.UserContext(), user.ID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListFundings GET /staff/funding.
func (h *FactsHandler) ListFundings(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	rows, err := h.profiles.ListFundings(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	items := make([]dto.FundingResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewFundingResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateFunding POST /staff/funding.
func (h *FactsHandler) CreateFunding(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	req, err := parseBody[dto.FundingRequest](c)
	if err != nil {
		return err
	}
	funding := &domain.Funding{
		ProjectTitle:  req.ProjectTitle,
		FundingAgency: req.FundingAgency,
		MonthAndYear:  req.MonthAndYear,
		Amount:        req.Amount,
		Status:        req.Status,
	}
	if err := h.profiles.CreateFunding(c.UserContext(), user.ID, funding); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewFundingResponse(funding)})
}

// UpdateFunding PUT /staff/funding/:id.
func (h *FactsHandler) UpdateFunding(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	req, err := parseBody[dto.FundingRequest](c)
	if err != nil {
		return err
	}
	funding := &domain.Funding{
		ID:            c.Params("id"),
		ProjectTitle:  req.ProjectTitle,
		FundingAgency: req.FundingAgency,
		MonthAndYear:  req.MonthAndYear,
		Amount:        req.Amount,
		Status:        req.Status,
	}
	if err := h.profiles.UpdateFunding(c.UserContext(), user.ID, funding); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewFundingResponse(funding)})
}

// DeleteFunding DELETE /staff/funding/:id.
func (h *FactsHandler) DeleteFunding(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	if err := h.profiles.DeleteFunding(c.UserContext(), user.ID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListPublications GET /staff/publication.
func (h *FactsHandler) ListPublications(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	rows, err := h.profiles.ListPublications(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	items := make([]dto.PublicationResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewPublicationResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreatePublication POST /staff/publication.
func (h *FactsHandler) CreatePublication(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	req, err := parseBody[dto.PublicationRequest](c)
	if err != nil {
		return err
	}
	pub := &domain.Publication{
		Title:        req.Title,
		Link:         req.Link,
		Type:         req.Type,
		MonthAndYear: req.MonthAndYear,
	}
	if err := h.profiles.CreatePublication(c.UserContext(), user.ID, pub); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewPublicationResponse(pub)})
}

// UpdatePublication PUT /staff/publication/:id.
func (h *FactsHandler) UpdatePublication(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	req, err := parseBody[dto.PublicationRequest](c)
	if err != nil {
		return err
	}
	pub := &domain.Publication{
		ID:           c.Params("id"),
		Title:        req.Title,
		Link:         req.Link,
		Type:         req.Type,
		MonthAndYear: req.MonthAndYear,
	}
	if err := h.profiles.UpdatePublication(c.UserContext(), user.ID, pub); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPublicationResponse(pub)})
}

// DeletePublication DELETE /staff/publication/:id.
func (h *FactsHandler) DeletePublication(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	if err := h.profiles.DeletePublication(c.UserContext(), user.ID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListAdministrationPositions GET /staff/administration-position.
func (h *FactsHandler) ListAdministrationPositions(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	rows, err := h.profiles.ListAdministrationPositions(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	items := make([]dto.AdministrationPositionResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewAdministrationPositionResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateAdministrationPosition POST /staff/administration-position.
func (h *FactsHandler) CreateAdministrationPosition(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	req, err := parseBody[dto.PositionRequest](c)
	if err != nil {
		return err
	}
	pos := &domain.AdministrationPosition{
		Position: req.Position,
		YearFrom: req.YearFrom,
		YearTo:   req.YearTo,
	}
	if err := h.profiles.CreateAdministrationPosition(c.UserContext(), user.ID, pos); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewAdministrationPositionResponse(pos)})
}

// UpdateAdministrationPosition PUT /staff/administration-position/:id.
func (h *FactsHandler) UpdateAdministrationPosition(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	req, err := parseBody[dto.PositionRequest](c)
	if err != nil {
		return err
	}
	pos := &domain.AdministrationPosition{
		ID:       c.Params("id"),
		Position: req.Position,
		YearFrom: req.YearFrom,
		YearTo:   req.YearTo,
	}
	if err := h.profiles.UpdateAdministrationPosition(c.UserContext(), user.ID, pos); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAdministrationPositionResponse(pos)})
}

// DeleteAdministrationPosition DELETE /staff/administration-position/:id.
func (h *FactsHandler) DeleteAdministrationPosition(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	if err := h.profiles.DeleteAdministrationPosition(c.UserContext(), user.ID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListHonoraryPositions GET /staff/honorary-position.
func (h *FactsHandler) ListHonoraryPositions(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	rows, err := h.profiles.ListHonoraryPositions(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	items := make([]dto.HonoraryPositionResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewHonoraryPositionResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateHonoraryPosition POST /staff/honorary-position.
func (h *FactsHandler) CreateHonoraryPosition(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	req, err := parseBody[dto.PositionRequest](c)
	if err != nil {
		return err
	}
	pos := &domain.HonoraryPosition{Position: req.Position, Year: req.Year}
	if err := h.profiles.CreateHonoraryPosition(c.UserContext(), user.ID, pos); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewHonoraryPositionResponse(pos)})
}

// UpdateHonoraryPosition PUT /staff/honorary-position/:id.
func (h *FactsHandler) UpdateHonoraryPosition(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	req, err := parseBody[dto.PositionRequest](c)
	if err != nil {
		return err
	}
	pos := &domain.HonoraryPosition{ID: c.Params("id"), Position: req.Position, Year: req.Year}
	if err := h.profiles.UpdateHonoraryPosition(c.UserContext(), user.ID, pos); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewHonoraryPositionResponse(pos)})
}

// DeleteHonoraryPosition DELETE /staff/honorary-position/:id.
func (h *FactsHandler) DeleteHonoraryPosition(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	if err := h.profiles.DeleteHonoraryPosition(c.UserContext(), user.ID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListConferences GET /staff/conference.
func (h *FactsHandler) ListConferences(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	rows, err := h.profiles.ListConferences(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	items := make([]dto.ConferenceResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewConferenceResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateConference POST /staff/conference.
func (h *FactsHandler) CreateConference(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	req, err := parseBody[dto.ConferenceRequest](c)
	if err != nil {
		return err
	}
	conf := &domain.Conference{
		Title:   req.Title,
		Details: req.Details,
		Type:    req.Type,
		ISBN:    req.ISBN,
		Year:    req.Year,
	}
	if err := h.profiles.CreateConference(c.UserContext(), user.ID, conf); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewConferenceResponse(conf)})
}

// UpdateConference PUT /staff/conference/:id.
func (h *FactsHandler) UpdateConference(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	req, err := parseBody[dto.ConferenceRequest](c)
	if err != nil {
		return err
	}
	conf := &domain.Conference{
		ID:      c.Params("id"),
		Title:   req.Title,
		Details: req.Details,
		Type:    req.Type,
		ISBN:    req.ISBN,
		Year:    req.Year,
	}
	if err := h.profiles.UpdateConference(c.UserContext(), user.ID, conf); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewConferenceResponse(conf)})
}

// DeleteConference DELETE /staff/conference/:id.
func (h *FactsHandler) DeleteConference(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	if err := h.profiles.DeleteConference(c.UserContext(), user.ID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListPhdScholars GET /staff/phd.
func (h *FactsHandler) ListPhdScholars(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	rows, err := h.profiles.ListPhdScholars(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	items := make([]dto.PhdScholarResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewPhdScholarResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreatePhdScholar POST /staff/phd.
func (h *FactsHandler) CreatePhdScholar(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	req, err := parseBody[dto.PhdScholarRequest](c)
	if err != nil {
		return err
	}
	phd := &domain.PhdScholar{
		ScholarName:      req.ScholarName,
		Topic:            req.Topic,
		Status:           req.Status,
		YearOfCompletion: req.YearOfCompletion,
	}
	if err := h.profiles.CreatePhdScholar(c.UserContext(), user.ID, phd); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewPhdScholarResponse(phd)})
}

// UpdatePhdScholar PUT /staff/phd/:id.
func (h *FactsHandler) UpdatePhdScholar(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	req, err := parseBody[dto.PhdScholarRequest](c)
	if err != nil {
		return err
	}
	phd := &domain.PhdScholar{
		ID:               c.Params("id"),
		ScholarName:      req.ScholarName,
		Topic:            req.Topic,
		Status:           req.Status,
		YearOfCompletion: req.YearOfCompletion,
	}
	if err := h.profiles.UpdatePhdScholar(c.UserContext(), user.ID, phd); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPhdScholarResponse(phd)})
}

// DeletePhdScholar DELETE /staff/phd/:id.
func (h *FactsHandler) DeletePhdScholar(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	if err := h.profiles.DeletePhdScholar(c.UserContext(), user.ID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListResourcePersons GET /staff/resource-person.
func (h *FactsHandler) ListResourcePersons(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	rows, err := h.profiles.ListResourcePersons(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	items := make([]dto.ResourcePersonResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewResourcePersonResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateResourcePerson POST /staff/resource-person.
func (h *FactsHandler) CreateResourcePerson(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	req, err := parseBody[dto.ResourcePersonRequest](c)
	if err != nil {
		return err
	}
	rp := &domain.ResourcePerson{Topic: req.Topic, Department: req.Department, Date: req.Date}
	if err := h.profiles.CreateResourcePerson(c.UserContext(), user.ID, rp); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewResourcePersonResponse(rp)})
}

// UpdateResourcePerson PUT /staff/resource-person/:id.
func (h *FactsHandler) UpdateResourcePerson(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	req, err := parseBody[dto.ResourcePersonRequest](c)
	if err != nil {
		return err
	}
	rp := &domain.ResourcePerson{
		ID:         c.Params("id"),
		Topic:      req.Topic,
		Department: req.Department,
		Date:       req.Date,
	}
	if err := h.profiles.UpdateResourcePerson(c.UserContext(), user.ID, rp); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewResourcePersonResponse(rp)})
}

// DeleteResourcePerson DELETE /staff/resource-person/:id.
func (h *FactsHandler) DeleteResourcePerson(c *fiber.Ctx) error {
	user, err := principal(c)
	if err != nil {
		return err
	}
	if err := h.profiles.DeleteResourcePerson(c.UserContext(), user.ID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListNotes returns a handler listing one note section's rows.
func (h *FactsHandler) ListNotes(section domain.Section) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := principal(c)
		if err != nil {
			return err
		}
		rows, err := h.profiles.ListNotes(c.UserContext(), user.ID, section)
		if err != nil {
			return err
		}
		items := make([]dto.NoteResponse, 0, len(rows))
		for i := range rows {
			items = append(items, dto.NewNoteResponse(&rows[i]))
		}
		return c.JSON(fiber.Map{"data": items})
	}
}

// CreateNote returns a handler creating one note section's rows.
func (h *FactsHandler) CreateNote(section domain.Section) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := principal(c)
		if err != nil {
			return err
		}
		req, err := parseBody[dto.NoteRequest](c)
		if err != nil {
			return err
		}
		note, err := h.profiles.CreateNote(c.UserContext(), user.ID, section, req.Details)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewNoteResponse(note)})
	}
}

// UpdateNote returns a handler updating one note section's rows.
func (h *FactsHandler) UpdateNote(section domain.Section) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := principal(c)
		if err != nil {
			return err
		}
		req, err := parseBody[dto.NoteRequest](c)
		if err != nil {
			return err
		}
		note, err := h.profiles.UpdateNote(c.UserContext(), user.ID, section, c.Params("id"), req.Details)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": dto.NewNoteResponse(note)})
	}
}

// DeleteNote returns a handler deleting one note section's rows.
func (h *FactsHandler) DeleteNote(section domain.Section) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := principal(c)
		if err != nil {
			return err
		}
		if err := h.profiles.DeleteNote(c.UserContext(), user.ID, section, c.Params("id")); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
