package scoring

import (
	"sort"
	"strings"
	"time"
)

// Seniority is the experience band requested by a job or inferred for a candidate.
type Seniority string

const (
	SeniorityJunior Seniority = "junior"
	SeniorityMid    Seniority = "mid"
	SenioritySenior Seniority = "senior"
)

// Progression describes the shape of a candidate's career history.
type Progression string

const (
	ProgressionGood         Progression = "good_progression"
	ProgressionSenior       Progression = "senior_level"
	ProgressionStable       Progression = "stable_level"
	ProgressionJunior       Progression = "junior_level"
	ProgressionInsufficient Progression = "insufficient_data"
)

// RoleType is the broad orientation of a job description.
type RoleType string

const (
	RoleTechnical  RoleType = "technical"
	RoleManagement RoleType = "management"
)

// Verdict is the categorical hiring signal derived from the overall score.
type Verdict string

const (
	VerdictExcellent    Verdict = "excellent"
	VerdictGood         Verdict = "good"
	VerdictModerate     Verdict = "moderate"
	VerdictBelowAverage Verdict = "below_average"
	VerdictPoor         Verdict = "poor"
)

// Label returns the human-readable form of the verdict.
func (v Verdict) Label() string {
	switch v {
	case VerdictExcellent:
		return "Excellent"
	case VerdictGood:
		return "Strong Match"
	case VerdictModerate:
		return "Moderate"
	case VerdictBelowAverage:
		return "Partial Match"
	case VerdictPoor:
		return "Not Suitable"
	default:
		return "Unknown"
	}
}

// SkillSet is a deduplicated, sorted collection of lowercase skill names.
type SkillSet []string

// NewSkillSet builds a SkillSet from raw tokens: trims, lowercases,
// drops empties, dedupes and sorts.
func NewSkillSet(items ...string) SkillSet {
	seen := make(map[string]bool, len(items))
	out := make(SkillSet, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Contains reports whether the exact skill is present.
func (s SkillSet) Contains(skill string) bool {
	key := strings.ToLower(strings.TrimSpace(skill))
	for _, item := range s {
		if item == key {
			return true
		}
	}
	return false
}

// ExtractedText carries both forms of a document's text. Raw keeps line
// structure and punctuation for the section and date heuristics; Normalized
// is the canonical lowercase form used for containment checks.
type ExtractedText struct {
	Raw        string
	Normalized string
}

// NewExtractedText derives the normalized form from raw text.
func NewExtractedText(raw string) ExtractedText {
	return ExtractedText{Raw: raw, Normalized: Normalize(raw)}
}

// CandidateDocument is one CV handed to the engine: file name plus the
// plain text an upstream extractor produced from it.
type CandidateDocument struct {
	FileName string `json:"file_name"`
	Text     string `json:"text"`
}

// JobRequirement is the structured reading of one job description.
// Built once per screening request, immutable afterward.
type JobRequirement struct {
	RequiredSkills     SkillSet  `json:"required_skills"`
	PreferredSkills    SkillSet  `json:"preferred_skills"`
	MinExperienceYears int       `json:"min_experience_years"`
	SeniorityLevel     Seniority `json:"seniority_level"`
	RoleType           RoleType  `json:"role_type"`
}

// AllSkills returns required and preferred skills as one deduplicated set.
func (j JobRequirement) AllSkills() SkillSet {
	combined := make([]string, 0, len(j.RequiredSkills)+len(j.PreferredSkills))
	combined = append(combined, j.RequiredSkills...)
	combined = append(combined, j.PreferredSkills...)
	return NewSkillSet(combined...)
}

// CandidateProfile is the structured reading of one CV.
type CandidateProfile struct {
	Name              string      `json:"name"`
	FileName          string      `json:"file_name"`
	Skills            SkillSet    `json:"skills"`
	ExperienceYears   int         `json:"experience_years"`
	Education         []string    `json:"education"`
	SeniorityLevel    Seniority   `json:"seniority_level"`
	CareerProgression Progression `json:"career_progression"`
	Achievements      []string    `json:"achievements"`
	Strengths         []string    `json:"strengths"`
	Weaknesses        []string    `json:"weaknesses"`
	RedFlags          []string    `json:"red_flags"`
}

// MatchedSkill records one job skill resolved against a candidate skill.
type MatchedSkill struct {
	Requirement string  `json:"requirement"`
	Candidate   string  `json:"candidate"`
	Confidence  float64 `json:"confidence"`
}

// MatchResult is the outcome of matching one candidate against one job.
type MatchResult struct {
	Matched         []MatchedSkill `json:"matched"`
	Missing         SkillSet       `json:"missing"`
	MatchPercentage float64        `json:"match_percentage"`
}

// FitScore is the weighted overall assessment of one candidate.
type FitScore struct {
	Overall          float64            `json:"overall"`
	Components       map[string]float64 `json:"components"`
	PenaltiesApplied float64            `json:"penalties_applied"`
	Verdict          Verdict            `json:"verdict"`
	Recommendation   string             `json:"recommendation"`
}

// CandidateResult bundles everything computed for one CV.
type CandidateResult struct {
	Profile CandidateProfile `json:"profile"`
	Match   MatchResult      `json:"match"`
	Score   FitScore         `json:"fit_score"`
}

// SkippedFile records a CV that produced no result and why.
type SkippedFile struct {
	FileName string `json:"file_name"`
	Reason   string `json:"reason"`
}

// Summary aggregates statistics over the scored candidates.
type Summary struct {
	TotalCandidates int             `json:"total_candidates"`
	AvgFitScore     float64         `json:"avg_fit_score"`
	TopCandidate    string          `json:"top_candidate"`
	TopScore        float64         `json:"top_score"`
	VerdictCounts   map[Verdict]int `json:"verdict_counts"`
}

// ScreeningResult is the full outcome of one screening request. The engine
// holds no state between requests; persistence is the caller's concern.
type ScreeningResult struct {
	ID         string            `json:"id"`
	Job        JobRequirement    `json:"job_analysis"`
	Candidates []CandidateResult `json:"candidates"`
	Skipped    []SkippedFile     `json:"skipped"`
	Summary    Summary           `json:"summary"`
	CreatedAt  time.Time         `json:"created_at"`
}
