package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/domain"
)

// defaultXPRequired applies when a skill definition omits xp_required.
const defaultXPRequired = 100

// skillsFile is the top-level structure of skills.yaml.
type skillsFile struct {
	Branches []branchDef `yaml:"branches"`
}

// branchDef is a branch definition. Skills declared inside a branch do not
// repeat the branch id; it is filled in during conversion.
type branchDef struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Color       string     `yaml:"color"`
	Skills      []skillDef `yaml:"skills"`
}

type skillDef struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	Prerequisites []string `yaml:"prerequisites"`
	XPRequired    int      `yaml:"xp_required"`
	Tips          []string `yaml:"tips"`
}

// challengesFile is the top-level structure of challenges.yaml.
type challengesFile struct {
	Challenges []domain.Challenge `yaml:"challenges"`
}

// achievementsFile is the top-level structure of achievements.yaml.
type achievementsFile struct {
	Achievements []domain.Achievement `yaml:"achievements"`
}

// Load reads skills.yaml and challenges.yaml (required) and
// achievements.yaml (optional) from dataDir, then builds the indexed
// catalog. Learning content is served from dataDir/learning.
func Load(dataDir string) (*Catalog, error) {
	branches, err := loadBranches(filepath.Join(dataDir, "skills.yaml"))
	if err != nil {
		return nil, err
	}

	challenges, err := loadChallenges(filepath.Join(dataDir, "challenges.yaml"))
	if err != nil {
		return nil, err
	}

	achievements, err := loadAchievements(filepath.Join(dataDir, "achievements.yaml"))
	if err != nil {
		return nil, err
	}

	return New(branches, challenges, achievements, filepath.Join(dataDir, "learning"))
}

func loadBranches(path string) ([]domain.SkillBranch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading skills file: %w", err)
	}

	var file skillsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	branches := make([]domain.SkillBranch, 0, len(file.Branches))
	for _, b := range file.Branches {
		branch := domain.SkillBranch{
			ID:          b.ID,
			Name:        b.Name,
			Description: b.Description,
			Color:       b.Color,
			Skills:      make([]domain.Skill, 0, len(b.Skills)),
		}
		for _, s := range b.Skills {
			xp := s.XPRequired
			if xp == 0 {
				xp = defaultXPRequired
			}
			branch.Skills = append(branch.Skills, domain.Skill{
				ID:            s.ID,
				Name:          s.Name,
				Description:   s.Description,
				Branch:        b.ID,
				Prerequisites: s.Prerequisites,
				XPRequired:    xp,
				Tips:          s.Tips,
			})
		}
		branches = append(branches, branch)
	}
	return branches, nil
}

func loadChallenges(path string) ([]domain.Challenge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading challenges file: %w", err)
	}

	var file challengesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return file.Challenges, nil
}

// loadAchievements tolerates a missing file: achievements are optional.
func loadAchievements(path string) ([]domain.Achievement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading achievements file: %w", err)
	}

	var file achievementsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return file.Achievements, nil
}
