package domain

type SkillLevel string

const (
	LevelLocked     SkillLevel = "locked"
	LevelAvailable  SkillLevel = "available"
	LevelInProgress SkillLevel = "in_progress"
	LevelCompleted  SkillLevel = "completed"
)

// ValidSkillLevels is the canonical set of accepted skill level strings.
var ValidSkillLevels = map[string]bool{
	"locked": true, "available": true, "in_progress": true, "completed": true,
}

// NextLevel returns the level one step forward from cur along the fixed
// sequence locked → available → in_progress → completed. Completed is
// terminal: advancing it returns completed again. Levels never move
// backwards and never skip a step.
func NextLevel(cur SkillLevel) SkillLevel {
	switch cur {
	case LevelLocked:
		return LevelAvailable
	case LevelAvailable:
		return LevelInProgress
	case LevelInProgress:
		return LevelCompleted
	case LevelCompleted:
		return LevelCompleted
	default:
		return cur
	}
}

// Confidence is the self-assessed mastery signal for a skill. It is
// independent of XP and level and may be set in any direction at any time.
type Confidence string

const (
	ConfidenceRed    Confidence = "red"
	ConfidenceYellow Confidence = "yellow"
	ConfidenceGreen  Confidence = "green"
)

// ValidConfidences is the canonical set of accepted confidence strings.
var ValidConfidences = map[string]bool{
	"red": true, "yellow": true, "green": true,
}

// ValidDifficulties is the canonical set of accepted challenge difficulty tags.
var ValidDifficulties = map[string]bool{
	"easy": true, "medium": true, "hard": true,
}
