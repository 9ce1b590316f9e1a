// Package catalog loads the static skill, challenge, and achievement
// definitions and serves id-keyed lookups over an immutable in-memory
// index. Definitions are read once at startup and never mutated.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/domain"
)

// ErrNotFound is returned for unknown skill ids and missing learning
// content files.
var ErrNotFound = errors.New("not found")

// Catalog is the read-only content provider: branches, skills, challenges,
// and achievement definitions, with map-backed lookups.
type Catalog struct {
	branches     []domain.SkillBranch
	challenges   []domain.Challenge
	achievements []domain.Achievement

	skillsByID        map[string]domain.Skill
	challengesByID    map[string]domain.Challenge
	achievementsByID  map[string]domain.Achievement
	challengesBySkill map[string][]domain.Challenge

	learningDir string
}

// New builds a Catalog from already-parsed definitions and validates
// referential integrity. learningDir may be empty when no learning
// content is available.
func New(branches []domain.SkillBranch, challenges []domain.Challenge, achievements []domain.Achievement, learningDir string) (*Catalog, error) {
	c := &Catalog{
		branches:          branches,
		challenges:        challenges,
		achievements:      achievements,
		skillsByID:        make(map[string]domain.Skill),
		challengesByID:    make(map[string]domain.Challenge),
		achievementsByID:  make(map[string]domain.Achievement),
		challengesBySkill: make(map[string][]domain.Challenge),
		learningDir:       learningDir,
	}

	if errs := c.index(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return c, nil
}

// index builds the lookup maps and collects every validation error found.
func (c *Catalog) index() []error {
	var errs []error

	for _, b := range c.branches {
		if b.ID == "" {
			errs = append(errs, fmt.Errorf("branch with empty id"))
			continue
		}
		for _, s := range b.Skills {
			if s.ID == "" {
				errs = append(errs, fmt.Errorf("branch %s: skill with empty id", b.ID))
				continue
			}
			if _, dup := c.skillsByID[s.ID]; dup {
				errs = append(errs, fmt.Errorf("duplicate skill id %q", s.ID))
				continue
			}
			if s.XPRequired <= 0 {
				errs = append(errs, fmt.Errorf("skill %s: xp_required must be positive", s.ID))
			}
			c.skillsByID[s.ID] = s
		}
	}

	for _, ch := range c.challenges {
		if ch.ID == "" {
			errs = append(errs, fmt.Errorf("challenge with empty id"))
			continue
		}
		if _, dup := c.challengesByID[ch.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate challenge id %q", ch.ID))
			continue
		}
		if len(ch.SkillIDs) == 0 {
			errs = append(errs, fmt.Errorf("challenge %s: trains no skills", ch.ID))
		}
		if ch.XPReward <= 0 {
			errs = append(errs, fmt.Errorf("challenge %s: xp_reward must be positive", ch.ID))
		}
		if ch.Difficulty != "" && !domain.ValidDifficulties[ch.Difficulty] {
			errs = append(errs, fmt.Errorf("challenge %s: unknown difficulty %q", ch.ID, ch.Difficulty))
		}
		for _, skillID := range ch.SkillIDs {
			if _, ok := c.skillsByID[skillID]; !ok {
				errs = append(errs, fmt.Errorf("challenge %s: unknown skill id %q", ch.ID, skillID))
			}
		}
		c.challengesByID[ch.ID] = ch
		for _, skillID := range ch.SkillIDs {
			c.challengesBySkill[skillID] = append(c.challengesBySkill[skillID], ch)
		}
	}

	for _, a := range c.achievements {
		if a.ID == "" {
			errs = append(errs, fmt.Errorf("achievement with empty id"))
			continue
		}
		if _, dup := c.achievementsByID[a.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate achievement id %q", a.ID))
			continue
		}
		c.achievementsByID[a.ID] = a
	}

	return errs
}

// Branches returns all skill branches in definition order.
func (c *Catalog) Branches() []domain.SkillBranch { return c.branches }

// Challenges returns all challenges in definition order.
func (c *Catalog) Challenges() []domain.Challenge { return c.challenges }

// Achievements returns all achievement definitions in definition order.
func (c *Catalog) Achievements() []domain.Achievement { return c.achievements }

// Skill looks up a skill by id.
func (c *Catalog) Skill(id string) (domain.Skill, bool) {
	s, ok := c.skillsByID[id]
	return s, ok
}

// Challenge looks up a challenge by id.
func (c *Catalog) Challenge(id string) (domain.Challenge, bool) {
	ch, ok := c.challengesByID[id]
	return ch, ok
}

// Achievement looks up an achievement definition by id.
func (c *Catalog) Achievement(id string) (domain.Achievement, bool) {
	a, ok := c.achievementsByID[id]
	return a, ok
}

// ChallengesForSkill returns every challenge that trains the given skill.
func (c *Catalog) ChallengesForSkill(skillID string) []domain.Challenge {
	return c.challengesBySkill[skillID]
}

// LearningContent reads the markdown learning content for a skill.
// Returns ErrNotFound when the skill is unknown or no content file exists.
func (c *Catalog) LearningContent(skillID string) ([]byte, error) {
	if _, ok := c.skillsByID[skillID]; !ok {
		return nil, fmt.Errorf("skill %q: %w", skillID, ErrNotFound)
	}
	if c.learningDir == "" {
		return nil, fmt.Errorf("learning content for %q: %w", skillID, ErrNotFound)
	}
	data, err := os.ReadFile(filepath.Join(c.learningDir, skillID+".md"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("learning content for %q: %w", skillID, ErrNotFound)
		}
		return nil, fmt.Errorf("reading learning content: %w", err)
	}
	return data, nil
}
