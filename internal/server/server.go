// Package server exposes the progression tracker over HTTP. All request
// and response bodies use snake_case JSON; errors carry a {"detail": ...}
// body.
package server

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/catalog"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/service"
)

// Server bundles the catalog and services behind the HTTP handlers.
type Server struct {
	catalog     *catalog.Catalog
	progression service.ProgressionService
	stats       service.StatsService
	logger      *log.Logger
}

// New creates a Server. logger may be nil.
func New(cat *catalog.Catalog, progression service.ProgressionService, stats service.StatsService, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		catalog:     cat,
		progression: progression,
		stats:       stats,
		logger:      logger,
	}
}

// App builds the fiber application with middleware and all routes mounted.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{AppName: "skilltree"})
	app.Use(accessLog(s.logger))

	app.Get("/health", s.handleHealth)

	api := app.Group("/api")
	api.Get("/skills", s.handleSkills)
	api.Get("/challenges", s.handleChallenges)
	api.Get("/challenges/:skillId", s.handleChallengesForSkill)
	api.Get("/progress", s.handleProgress)
	api.Get("/progress/:skillId", s.handleSkillProgress)
	api.Post("/complete", s.handleComplete)
	api.Post("/confidence", s.handleConfidence)
	api.Get("/completions", s.handleCompletions)
	api.Get("/learn/:skillId", s.handleLearn)
	api.Get("/stats", s.handleStats)
	api.Get("/achievements", s.handleAchievements)
	api.Post("/achievements/:id/unlock", s.handleUnlockAchievement)

	return app
}

// detail writes an error body in the {"detail": ...} shape.
func detail(c fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"detail": msg})
}

// fail maps a service error onto the HTTP status taxonomy: unknown ids are
// 404, validation failures are 400, everything else is a 500 with the
// underlying error logged but not exposed.
func (s *Server) fail(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return detail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidRating), errors.Is(err, service.ErrInvalidConfidence):
		return detail(c, fiber.StatusBadRequest, err.Error())
	default:
		s.logger.Printf("internal error: %v", err)
		return detail(c, fiber.StatusInternalServerError, "internal server error")
	}
}
