package scoring

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// Component names used in FitScore.Components.
const (
	ComponentSkills       = "skills_match"
	ComponentExperience   = "experience_level"
	ComponentEducation    = "education_relevance"
	ComponentProgression  = "career_progression"
	ComponentAchievements = "achievements"
)

// progressionScores is the categorical lookup for career progression.
var progressionScores = map[Progression]float64{
	ProgressionGood:         100,
	ProgressionSenior:       85,
	ProgressionStable:       70,
	ProgressionJunior:       80,
	ProgressionInsufficient: 50,
}

// CalculateFitScore combines the match result with profile signals into one
// weighted 0-100 score, subtracts penalties and derives the verdict. Pure
// function of its inputs.
func CalculateFitScore(job JobRequirement, profile CandidateProfile, match MatchResult, mustHave []string, cfg Config) FitScore {
	components := map[string]float64{
		ComponentSkills:       clampScore(match.MatchPercentage),
		ComponentExperience:   experienceScore(profile.ExperienceYears, job),
		ComponentEducation:    educationScore(profile.Education),
		ComponentProgression:  progressionScore(profile.CareerProgression),
		ComponentAchievements: achievementScore(profile.Achievements),
	}

	weighted := components[ComponentSkills]*cfg.SkillsWeight +
		components[ComponentExperience]*cfg.ExperienceWeight +
		components[ComponentEducation]*cfg.EducationWeight +
		components[ComponentProgression]*cfg.ProgressionWeight +
		components[ComponentAchievements]*cfg.AchievementsWeight

	penalties := mustHavePenalty(mustHave, profile.Skills, cfg) + redFlagPenalty(profile.RedFlags, cfg)
	overall := round1(clampScore(weighted - penalties))
	verdict := verdictFor(overall)

	return FitScore{
		Overall:          overall,
		Components:       components,
		PenaltiesApplied: penalties,
		Verdict:          verdict,
		Recommendation:   recommendationText(profile, match, verdict),
	}
}

// experienceScore gives full credit when the candidate meets the requirement
// within the requested band, 80 when above requirement but outside the band,
// and partial credit proportional to the shortfall below it.
func experienceScore(years int, job JobRequirement) float64 {
	if years >= job.MinExperienceYears {
		switch job.SeniorityLevel {
		case SenioritySenior:
			if years >= 7 {
				return 100
			}
		case SeniorityJunior:
			if years <= 3 {
				return 100
			}
		default:
			if years >= 3 && years <= 8 {
				return 100
			}
		}
		return 80
	}
	required := job.MinExperienceYears
	if required < 1 {
		required = 1
	}
	score := float64(years) / float64(required) * 70
	if score > 70 {
		score = 70
	}
	return score
}

func educationScore(entries []string) float64 {
	if len(entries) > 0 {
		return 100
	}
	return 40
}

func progressionScore(progression Progression) float64 {
	if score, ok := progressionScores[progression]; ok {
		return score
	}
	return progressionScores[ProgressionInsufficient]
}

func achievementScore(entries []string) float64 {
	score := float64(len(entries)) * 25
	if score > 100 {
		score = 100
	}
	return score
}

// mustHavePenalty charges a fixed amount per named must-have skill absent
// from the candidate's skill set. Containment runs both directions so
// "kubernetes" is covered by "kubernetes administration" and vice versa.
func mustHavePenalty(mustHave []string, skills SkillSet, cfg Config) float64 {
	missing := 0
	for _, raw := range mustHave {
		needle := Normalize(raw)
		if needle == "" {
			continue
		}
		found := false
		for _, skill := range skills {
			if strings.Contains(skill, needle) || strings.Contains(needle, skill) {
				found = true
				break
			}
		}
		if !found {
			missing++
		}
	}
	return float64(missing) * cfg.MustHavePenalty
}

func redFlagPenalty(flags []string, cfg Config) float64 {
	penalty := float64(len(flags)) * cfg.RedFlagPenalty
	if penalty > cfg.RedFlagPenaltyCap {
		penalty = cfg.RedFlagPenaltyCap
	}
	return penalty
}

func verdictFor(score float64) Verdict {
	switch {
	case score >= verdictExcellentMin:
		return VerdictExcellent
	case score >= verdictGoodMin:
		return VerdictGood
	case score >= verdictModerateMin:
		return VerdictModerate
	case score >= verdictBelowAverageMin:
		return VerdictBelowAverage
	default:
		return VerdictPoor
	}
}

// recommendationText renders the human-readable verdict line: category,
// candidate name, the leading strength or concern, and up to three missing
// skills.
func recommendationText(profile CandidateProfile, match MatchResult, verdict Verdict) string {
	var b strings.Builder
	switch verdict {
	case VerdictExcellent:
		fmt.Fprintf(&b, "Excellent fit: %s is a strong candidate with relevant experience and skills. Recommend for interview.", profile.Name)
	case VerdictGood:
		fmt.Fprintf(&b, "Good fit: %s is a solid candidate worth considering for the next round.", profile.Name)
	case VerdictModerate:
		fmt.Fprintf(&b, "Moderate fit: %s has potential but may need training in some areas.", profile.Name)
	case VerdictBelowAverage:
		fmt.Fprintf(&b, "Below average fit: %s shows significant skill or experience gaps.", profile.Name)
	default:
		fmt.Fprintf(&b, "Poor fit: %s is not recommended for this position.", profile.Name)
	}

	switch {
	case (verdict == VerdictExcellent || verdict == VerdictGood) && len(profile.Strengths) > 0:
		fmt.Fprintf(&b, " Top strength: %s.", lowerFirst(profile.Strengths[0]))
	case len(profile.Weaknesses) > 0:
		fmt.Fprintf(&b, " Main concern: %s.", lowerFirst(profile.Weaknesses[0]))
	case len(profile.Strengths) > 0:
		fmt.Fprintf(&b, " Top strength: %s.", lowerFirst(profile.Strengths[0]))
	}

	if n := len(match.Missing); n > 0 && n <= 3 {
		fmt.Fprintf(&b, " Missing: %s.", strings.Join(match.Missing, ", "))
	}
	return b.String()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func clampScore(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
