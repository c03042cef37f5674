package scoring

// Verdict cut points. Fixed rather than configurable: downstream consumers
// and the scenario tests depend on these exact boundaries.
const (
	verdictExcellentMin    = 85.0
	verdictGoodMin         = 75.0
	verdictModerateMin     = 65.0
	verdictBelowAverageMin = 50.0
)

// Config holds the tunable weights and thresholds of the engine.
// Weights are expected to sum to 1.0; penalties are subtracted after the
// weighted sum.
type Config struct {
	SkillsWeight       float64
	ExperienceWeight   float64
	EducationWeight    float64
	ProgressionWeight  float64
	AchievementsWeight float64

	// MatchThreshold is the minimum best-match confidence for a job skill
	// to count as matched (strictly greater-than).
	MatchThreshold float64
	// SemanticFloor is the minimum embedding similarity considered a
	// candidate match when an Embedder is configured.
	SemanticFloor float64

	MustHavePenalty   float64
	RedFlagPenalty    float64
	RedFlagPenaltyCap float64

	MaxExperienceYears int
	MinTextLength      int
	Workers            int
}

// DefaultConfig returns the calibrated production defaults.
func DefaultConfig() Config {
	return Config{
		SkillsWeight:       0.35,
		ExperienceWeight:   0.30,
		EducationWeight:    0.15,
		ProgressionWeight:  0.10,
		AchievementsWeight: 0.10,
		MatchThreshold:     0.60,
		SemanticFloor:      0.70,
		MustHavePenalty:    15,
		RedFlagPenalty:     10,
		RedFlagPenaltyCap:  25,
		MaxExperienceYears: 30,
		MinTextLength:      50,
		Workers:            4,
	}
}
