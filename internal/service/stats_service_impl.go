package service

import (
	"context"
	"fmt"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/catalog"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/domain"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/repository"
)

type statsService struct {
	catalog     *catalog.Catalog
	progress    repository.ProgressRepo
	completions repository.CompletionRepo
}

// NewStatsService creates the read-only stats aggregator.
func NewStatsService(cat *catalog.Catalog, progress repository.ProgressRepo, completions repository.CompletionRepo) StatsService {
	return &statsService{catalog: cat, progress: progress, completions: completions}
}

func (s *statsService) UserProgress(ctx context.Context) (*domain.UserProgress, error) {
	skills, err := s.progress.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading skill progress: %w", err)
	}

	totalXP, err := s.completions.TotalXP(ctx)
	if err != nil {
		return nil, fmt.Errorf("summing total xp: %w", err)
	}

	count, err := s.completions.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting completions: %w", err)
	}

	return &domain.UserProgress{
		Skills:              skills,
		TotalXP:             totalXP,
		ChallengesCompleted: count,
	}, nil
}

func (s *statsService) BranchStats(ctx context.Context) (map[string]*domain.BranchStats, error) {
	progress, err := s.progress.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading skill progress: %w", err)
	}

	stats := make(map[string]*domain.BranchStats)
	for _, branch := range s.catalog.Branches() {
		bs := &domain.BranchStats{
			Name:        branch.Name,
			TotalSkills: len(branch.Skills),
		}
		for _, skill := range branch.Skills {
			// Skills never written contribute zero.
			p, ok := progress[skill.ID]
			if !ok {
				continue
			}
			bs.TotalXP += p.CurrentXP
			if p.Level == domain.LevelCompleted {
				bs.CompletedSkills++
			}
		}
		stats[branch.ID] = bs
	}
	return stats, nil
}

func (s *statsService) Summary(ctx context.Context) (*domain.Stats, error) {
	branches, err := s.BranchStats(ctx)
	if err != nil {
		return nil, err
	}

	totalXP, err := s.completions.TotalXP(ctx)
	if err != nil {
		return nil, fmt.Errorf("summing total xp: %w", err)
	}

	count, err := s.completions.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting completions: %w", err)
	}

	return &domain.Stats{
		TotalXP:             totalXP,
		ChallengesCompleted: count,
		Branches:            branches,
	}, nil
}
