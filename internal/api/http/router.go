package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/faculty-service/internal/api/http/handlers"
	"github.com/spec-kit/faculty-service/internal/auth"
	"github.com/spec-kit/faculty-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Staff          *handlers.StaffHandler
	Facts          *handlers.FactsHandler
	Public         *handlers.PublicHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	public := app.Group("/public")
	public.Get("/profile/:slug", cfg.Public.Profile)
	public.Get("/search", cfg.Public.Search)

	app.Post("/auth/password/change", cfg.AuthMiddleware.Handle, cfg.Auth.ChangePassword)

	staff := app.Group("/staff", cfg.AuthMiddleware.Handle)
	staff.Get("/me", cfg.Staff.WhoAmI)
	staff.Get("/profile/status", cfg.Staff.ProfileStatus)
	staff.Get("/profile/views", cfg.Staff.OwnAnalytics)
	staff.Get("/details", cfg.Staff.GetStaffDetails)
	staff.Post("/details", cfg.Staff.UpsertStaffDetails)
	staff.Put("/details", cfg.Staff.UpsertStaffDetails)

	staff.Get("/education", cfg.Facts.ListEducations)
	staff.Post("/education", cfg.Facts.CreateEducation)
	staff.Put("/education/:id", cfg.Facts.UpdateEducation)
	staff.Delete("/education/:id", cfg.Facts.DeleteEducation)

	staff.Get("/research", cfg.Facts.ListResearches)
	staff.Post("/research", cfg.Facts.CreateResearch)
	staff.Put("/research/:id", cfg.Facts.UpdateResearch)
	staff.Delete("/research/:id", cfg.Facts.DeleteResearch)

	staff.Get("/research-id", cfg.Facts.ListResearchIDs)
	staff.Post("/research-id", cfg.Facts.CreateResearchID)
	staff.Put("/research-id/:id", cfg.Facts.UpdateResearchID)
	staff.Delete("/research-id/:id", cfg.Facts.DeleteResearchID)

	staff.Get("/funding", cfg.Facts.ListFundings)
	staff.Post("/funding", cfg.Facts.CreateFunding)
	staff.Put("/funding/:id", cfg.Facts.UpdateFunding)
	staff.Delete("/funding/:id", cfg.Facts.DeleteFunding)

	staff.Get("/publication", cfg.Facts.ListPublications)
	staff.Post("/publication", cfg.Facts.CreatePublication)
	staff.Put("/publication/:id", cfg.Facts.UpdatePublication)
	staff.Delete("/publication/:id", cfg.Facts.DeletePublication)

	staff.Get("/administration-position", cfg.Facts.ListAdministrationPositions)
	staff.Post("/administration-position", cfg.Facts.CreateAdministrationPosition)
	staff.Put("/administration-position/:id", cfg.Facts.UpdateAdministrationPosition)
	staff.Delete("/administration-position/:id", cfg.Facts.DeleteAdministrationPosition)

	staff.Get("/honorary-position", cfg.Facts.ListHonoraryPositions)
	staff.Post("/honorary-position", cfg.Facts.CreateHonoraryPosition)
	staff.Put("/honorary-position/:id", cfg.Facts.UpdateHonoraryPosition)
	staff.Delete("/honorary-position/:id", cfg.Facts.DeleteHonoraryPosition)

	staff.Get("/conference", cfg.Facts.ListConferences)
	staff.Post("/conference", cfg.Facts.CreateConference)
	staff.Put("/conference/:id", cfg.Facts.UpdateConference)
	staff.Delete("/conference/:id", cfg.Facts.DeleteConference)

	staff.Get("/phd", cfg.Facts.ListPhdScholars)
	staff.Post("/phd", cfg.Facts.CreatePhdScholar)
	staff.Put("/phd/:id", cfg.Facts.UpdatePhdScholar)
	staff.Delete("/phd/:id", cfg.Facts.DeletePhdScholar)

	staff.Get("/resource-person", cfg.Facts.ListResourcePersons)
	staff.Post("/resource-person", cfg.Facts.CreateResourcePerson)
	staff.Put("/resource-person/:id", cfg.Facts.UpdateResourcePerson)
	staff.Delete("/resource-person/:id", cfg.Facts.DeleteResourcePerson)

	noteSections := []struct {
		path    string
		section domain.Section
	}{
		{"collaboration", domain.SectionCollaboration},
		{"consultancy", domain.SectionConsultancy},
		{"career-highlight", domain.SectionCareerHighlight},
		{"research-career", domain.SectionResearchCareer},
	}
	for _, ns := range noteSections {
		staff.Get("/"+ns.path, cfg.Facts.ListNotes(ns.section))
		staff.Post("/"+ns.path, cfg.Facts.CreateNote(ns.section))
		staff.Put("/"+ns.path+"/:id", cfg.Facts.UpdateNote(ns.section))
		staff.Delete("/"+ns.path+"/:id", cfg.Facts.DeleteNote(ns.section))
	}

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	admin.Get("/users", cfg.Admin.ListUsers)
	admin.Post("/users", cfg.Admin.CreateUsers)
	admin.Delete("/users/:id", cfg.Admin.DeleteUser)
	admin.Post("/users/:id/reset-password", cfg.Admin.ResetPassword)

	admin.Get("/phd/scholars-count", cfg.Admin.PhdScholarsCount)
	admin.Get("/phd/scholars-details", cfg.Admin.PhdScholarsDetails)
	admin.Get("/phd/summary", cfg.Admin.PhdScholarsSummary)
	admin.Get("/funding", cfg.Admin.FundingDetails)
	admin.Get("/publications", cfg.Admin.PublicationList)
	admin.Get("/research-ids", cfg.Admin.ResearchIDList)
	admin.Get("/research-areas", cfg.Admin.ResearchAreasList)

	admin.Get("/dashboard/stats", cfg.Admin.DashboardStats)
	admin.Get("/dashboard/publications-trend", cfg.Admin.PublicationsTrend)
	admin.Get("/dashboard/funding-trend", cfg.Admin.FundingTrend)
	admin.Get("/dashboard/research-distribution", cfg.Admin.ResearchDistribution)
	admin.Get("/dashboard/phd-status", cfg.Admin.PhdSupervisionStatus)

	admin.Get("/profile-views", cfg.Admin.ProfileViews)
	admin.Post("/export", cfg.Admin.Export)
}
