package domain

// Skill is a single competency node in the progression tree. Skills are
// loaded from static definition files at startup and never mutated.
type Skill struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Description   string   `json:"description" yaml:"description"`
	Branch        string   `json:"branch" yaml:"branch"`
	Prerequisites []string `json:"prerequisites" yaml:"prerequisites"`
	XPRequired    int      `json:"xp_required" yaml:"xp_required"`
	Tips          []string `json:"tips" yaml:"tips"`
}

// SkillBranch is a thematic grouping of related skills.
type SkillBranch struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Color       string  `json:"color" yaml:"color"`
	Skills      []Skill `json:"skills" yaml:"skills"`
}

// Challenge is a discrete task whose completion awards XP toward one or
// more skills.
type Challenge struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Description     string   `json:"description" yaml:"description"`
	SkillIDs        []string `json:"skill_ids" yaml:"skill_ids"`
	XPReward        int      `json:"xp_reward" yaml:"xp_reward"`
	Difficulty      string   `json:"difficulty" yaml:"difficulty"`
	Constraints     []string `json:"constraints" yaml:"constraints"`
	SuccessCriteria string   `json:"success_criteria" yaml:"success_criteria"`
}

// Achievement is an unlockable badge definition. Criteria is human
// readable; unlocking is driven by the caller, not evaluated here.
type Achievement struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
	Criteria    string `json:"criteria" yaml:"criteria"`
	XPBonus     int    `json:"xp_bonus" yaml:"xp_bonus"`
}
