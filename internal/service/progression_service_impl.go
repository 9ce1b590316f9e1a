package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/catalog"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/domain"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/repository"
)

type progressionService struct {
	catalog      *catalog.Catalog
	progress     repository.ProgressRepo
	completions  repository.CompletionRepo
	achievements repository.AchievementRepo
}

// NewProgressionService creates the progression engine over the given
// catalog and store.
func NewProgressionService(
	cat *catalog.Catalog,
	progress repository.ProgressRepo,
	completions repository.CompletionRepo,
	achievements repository.AchievementRepo,
) ProgressionService {
	return &progressionService{
		catalog:      cat,
		progress:     progress,
		completions:  completions,
		achievements: achievements,
	}
}

func (s *progressionService) RecordCompletion(ctx context.Context, req CompletionRequest) (*CompletionResult, error) {
	if req.SelfRating < 1 || req.SelfRating > 5 {
		return nil, fmt.Errorf("self_rating %d: %w", req.SelfRating, ErrInvalidRating)
	}
	if req.Confidence != nil && !domain.ValidConfidences[string(*req.Confidence)] {
		return nil, fmt.Errorf("confidence %q: %w", *req.Confidence, ErrInvalidConfidence)
	}

	challenge, ok := s.catalog.Challenge(req.ChallengeID)
	if !ok {
		return nil, fmt.Errorf("challenge %q: %w", req.ChallengeID, catalog.ErrNotFound)
	}

	completion := &domain.ChallengeCompletion{
		ChallengeID: challenge.ID,
		CompletedAt: time.Now().UTC(),
		XPEarned:    challenge.XPReward,
		Notes:       req.Notes,
		SelfRating:  req.SelfRating,
		Confidence:  req.Confidence,
	}
	completionID, err := s.completions.Append(ctx, completion)
	if err != nil {
		return nil, fmt.Errorf("recording completion: %w", err)
	}

	// Each trained skill is progressed independently. Updates are separate
	// upserts, not one transaction: a failure partway through surfaces
	// immediately and leaves the earlier skills updated.
	for _, skillID := range challenge.SkillIDs {
		progress, err := s.fetchOrDefault(ctx, skillID)
		if err != nil {
			return nil, err
		}

		skill, ok := s.catalog.Skill(skillID)
		if ok {
			progress.ApplyReward(challenge.XPReward, skill.XPRequired)
		} else {
			// Skill id not in the catalog: XP still accrues, but there is
			// no threshold to advance against.
			progress.CurrentXP += challenge.XPReward
		}

		if req.Confidence != nil {
			progress.Confidence = *req.Confidence
		}

		if err := s.progress.Upsert(ctx, progress); err != nil {
			return nil, fmt.Errorf("updating skill %s: %w", skillID, err)
		}
	}

	return &CompletionResult{CompletionID: completionID, XPEarned: challenge.XPReward}, nil
}

func (s *progressionService) UpdateConfidence(ctx context.Context, skillID string, conf domain.Confidence) error {
	if !domain.ValidConfidences[string(conf)] {
		return fmt.Errorf("confidence %q: %w", conf, ErrInvalidConfidence)
	}
	if _, ok := s.catalog.Skill(skillID); !ok {
		return fmt.Errorf("skill %q: %w", skillID, catalog.ErrNotFound)
	}

	progress, err := s.fetchOrDefault(ctx, skillID)
	if err != nil {
		return err
	}

	progress.Confidence = conf
	if err := s.progress.Upsert(ctx, progress); err != nil {
		return fmt.Errorf("updating confidence for %s: %w", skillID, err)
	}
	return nil
}

func (s *progressionService) SkillProgress(ctx context.Context, skillID string) (*domain.SkillProgress, error) {
	if _, ok := s.catalog.Skill(skillID); !ok {
		return nil, fmt.Errorf("skill %q: %w", skillID, catalog.ErrNotFound)
	}
	return s.fetchOrDefault(ctx, skillID)
}

func (s *progressionService) Completions(ctx context.Context, challengeID string) ([]*domain.ChallengeCompletion, error) {
	return s.completions.List(ctx, challengeID)
}

func (s *progressionService) UnlockAchievement(ctx context.Context, achievementID string) error {
	if _, ok := s.catalog.Achievement(achievementID); !ok {
		return fmt.Errorf("achievement %q: %w", achievementID, catalog.ErrNotFound)
	}
	return s.achievements.Unlock(ctx, achievementID)
}

func (s *progressionService) Achievements(ctx context.Context) ([]AchievementStatus, error) {
	unlocks, err := s.achievements.ListUnlocked(ctx)
	if err != nil {
		return nil, err
	}

	unlockedAt := make(map[string]time.Time, len(unlocks))
	for _, u := range unlocks {
		unlockedAt[u.AchievementID] = u.UnlockedAt
	}

	defs := s.catalog.Achievements()
	statuses := make([]AchievementStatus, 0, len(defs))
	for _, a := range defs {
		status := AchievementStatus{Achievement: a}
		if at, ok := unlockedAt[a.ID]; ok {
			status.Unlocked = true
			status.UnlockedAt = &at
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// fetchOrDefault is the single materialize-default point: an absent row
// behaves as the zero-value progress (locked, 0 XP, red) and is not
// persisted until the caller writes it.
func (s *progressionService) fetchOrDefault(ctx context.Context, skillID string) (*domain.SkillProgress, error) {
	progress, err := s.progress.Get(ctx, skillID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewSkillProgress(skillID), nil
		}
		return nil, fmt.Errorf("loading progress for %s: %w", skillID, err)
	}
	return progress, nil
}
