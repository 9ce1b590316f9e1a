package server

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/domain"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/service"
)

type completeRequest struct {
	ChallengeID string             `json:"challenge_id"`
	Notes       string             `json:"notes"`
	SelfRating  int                `json:"self_rating"`
	Confidence  *domain.Confidence `json:"confidence"`
}

type confidenceRequest struct {
	SkillID    string            `json:"skill_id"`
	Confidence domain.Confidence `json:"confidence"`
}

func (s *Server) handleHealth(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleSkills(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"branches": s.catalog.Branches()})
}

func (s *Server) handleChallenges(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"challenges": s.catalog.Challenges()})
}

func (s *Server) handleChallengesForSkill(c fiber.Ctx) error {
	skillID := c.Params("skillId")
	if _, ok := s.catalog.Skill(skillID); !ok {
		return detail(c, fiber.StatusNotFound, fmt.Sprintf("skill %q not found", skillID))
	}

	challenges := s.catalog.ChallengesForSkill(skillID)
	if challenges == nil {
		challenges = []domain.Challenge{}
	}
	return c.JSON(fiber.Map{"challenges": challenges})
}

func (s *Server) handleProgress(c fiber.Ctx) error {
	up, err := s.stats.UserProgress(c.Context())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(up)
}

func (s *Server) handleSkillProgress(c fiber.Ctx) error {
	p, err := s.progression.SkillProgress(c.Context(), c.Params("skillId"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(p)
}

func (s *Server) handleComplete(c fiber.Ctx) error {
	var req completeRequest
	if err := c.Bind().Body(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "invalid request body")
	}

	res, err := s.progression.RecordCompletion(c.Context(), service.CompletionRequest{
		ChallengeID: req.ChallengeID,
		Notes:       req.Notes,
		SelfRating:  req.SelfRating,
		Confidence:  req.Confidence,
	})
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"completion_id": res.CompletionID,
		"xp_earned":     res.XPEarned,
	})
}

func (s *Server) handleConfidence(c fiber.Ctx) error {
	var req confidenceRequest
	if err := c.Bind().Body(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := s.progression.UpdateConfidence(c.Context(), req.SkillID, req.Confidence); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (s *Server) handleCompletions(c fiber.Ctx) error {
	list, err := s.progression.Completions(c.Context(), c.Query("challenge_id"))
	if err != nil {
		return s.fail(c, err)
	}
	if list == nil {
		list = []*domain.ChallengeCompletion{}
	}
	return c.JSON(fiber.Map{"completions": list})
}

func (s *Server) handleLearn(c fiber.Ctx) error {
	content, err := s.catalog.LearningContent(c.Params("skillId"))
	if err != nil {
		return s.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Send(content)
}

func (s *Server) handleStats(c fiber.Ctx) error {
	summary, err := s.stats.Summary(c.Context())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(summary)
}

func (s *Server) handleAchievements(c fiber.Ctx) error {
	statuses, err := s.progression.Achievements(c.Context())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"achievements": statuses})
}

func (s *Server) handleUnlockAchievement(c fiber.Ctx) error {
	id := c.Params("id")
	if err := s.progression.UnlockAchievement(c.Context(), id); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
