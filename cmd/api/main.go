package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/faculty-service/internal/api/http"
	"github.com/spec-kit/faculty-service/internal/api/http/handlers"
	"github.com/spec-kit/faculty-service/internal/auth"
	"github.com/spec-kit/faculty-service/internal/config"
	"github.com/spec-kit/faculty-service/internal/events"
	"github.com/spec-kit/faculty-service/internal/observability"
	"github.com/spec-kit/faculty-service/internal/persistence"
	"github.com/spec-kit/faculty-service/internal/repository"
	"github.com/spec-kit/faculty-service/internal/service"
	"github.com/spec-kit/faculty-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()

	dispatcher := events.NewInMemoryDispatcher()
	events.RegisterAudit(dispatcher, logger, metrics)

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	staffRepo := repository.NewStaffDetailsRepository(pool)
	trackerRepo := repository.NewTrackerRepository(pool)
	viewLogRepo := repository.NewViewLogRepository(pool)

	facts := service.FactRepositories{
		Educations:        repository.NewEducationRepository(pool),
		Researches:        repository.NewResearchRepository(pool),
		ResearchIDs:       repository.NewResearchIDRepository(pool),
		Fundings:          repository.NewFundingRepository(pool),
		Publications:      repository.NewPublicationRepository(pool),
		AdminPositions:    repository.NewAdministrationPositionRepository(pool),
		HonoraryPositions: repository.NewHonoraryPositionRepository(pool),
		Conferences:       repository.NewConferenceRepository(pool),
		PhdScholars:       repository.NewPhdRepository(pool),
		ResourcePersons:   repository.NewResourcePersonRepository(pool),
		Collaborations:    repository.NewNoteRepository(pool, "collaborations"),
		Consultancies:     repository.NewNoteRepository(pool, "consultancies"),
		CareerHighlights:  repository.NewNoteRepository(pool, "career_highlights"),
		ResearchCareers:   repository.NewNoteRepository(pool, "research_careers"),
	}

	trackerService := service.NewTrackerService(service.TrackerDependencies{
		TrackerRepo: trackerRepo,
		UserRepo:    userRepo,
		StaffRepo:   staffRepo,
		Facts:       facts,
		Policy:      cfg.Analytics.TrackerIncompletePolicy,
		Dispatcher:  dispatcher,
	})
	authService := service.NewAuthService(*cfg, userRepo)
	profileService := service.NewProfileService(service.ProfileDependencies{
		UserRepo:           userRepo,
		StaffRepo:          staffRepo,
		Facts:              facts,
		Tracker:            trackerService,
		DefaultInstitution: cfg.Directory.DefaultInstitution,
	})
	searchService := service.NewSearchService(userRepo, staffRepo, facts)
	viewService := service.NewProfileViewService(service.ViewDependencies{
		UserRepo:     userRepo,
		StaffRepo:    staffRepo,
		Facts:        facts,
		TrackerRepo:  trackerRepo,
		ViewLogRepo:  viewLogRepo,
		Claimer:      redis,
		Dispatcher:   dispatcher,
		Logger:       logger,
		DedupWindow:  cfg.Analytics.ViewDedupWindow(),
		MediaBaseURL: cfg.Media.BaseURL,
	})
	adminService := service.NewAdminService(service.AdminDependencies{
		UserRepo:   userRepo,
		StaffRepo:  staffRepo,
		Facts:      facts,
		Dispatcher: dispatcher,
		Directory:  cfg.Directory,
		BcryptCost: cfg.Auth.BcryptCost,
	})
	exportService := service.NewExportService(userRepo, staffRepo, facts)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Staff:          handlers.NewStaffHandler(profileService, trackerService, viewService),
		Facts:          handlers.NewFactsHandler(profileService),
		Public:         handlers.NewPublicHandler(viewService, searchService),
		Admin:          handlers.NewAdminHandler(adminService, viewService, exportService),
		AuthMiddleware: authMiddleware,
	})

	worker.StartTrackerReconciler(ctx, trackerService, cfg.Analytics.TrackerReconcileInterval(), logger)

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
