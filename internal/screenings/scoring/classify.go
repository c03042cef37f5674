package scoring

import (
	"regexp"
	"strings"
)

var (
	seniorTermRe = regexp.MustCompile(`\b(?:senior|lead|principal|architect|manager|director|head of|chief)\b`)
	juniorTermRe = regexp.MustCompile(`\b(?:junior|entry|trainee|intern|graduate|fresher|associate)\b`)
)

// jobTitleLineRe captures lines that look like job titles.
var jobTitleLineRe = regexp.MustCompile(`(?m)^[^\n]*\b(?:engineer|developer|manager|analyst|consultant|lead|senior|junior|architect|administrator|specialist|designer)\b[^\n]*$`)

var educationRes = []*regexp.Regexp{
	regexp.MustCompile(`(?:bachelor|bachelors|master|masters|phd|ph\.d|doctorate|diploma|degree)(?:'s)?\s*(?:of|in)?\s+([^\n,;.]{2,60})`),
	regexp.MustCompile(`\b(?:b\.?tech|m\.?tech|bca|mca|b\.?sc|m\.?sc|mba)\b\.?\s*(?:in\s+)?([^\n,;.]{2,60})`),
	regexp.MustCompile(`(?:university|college|institute)\s+(?:of\s+)?([^\n,;.]{2,60})`),
}

var certificationRes = []*regexp.Regexp{
	regexp.MustCompile(`(?:certified|certification)s?\s*(?:in|:)?\s+([^\n,;.]{2,60})`),
	regexp.MustCompile(`\b((?:aws|azure|google|microsoft|oracle|cisco)\s+certified[^\n,;.]{0,40})`),
	regexp.MustCompile(`\b(pmp|prince2|itil|cissp|ceh|comptia)\b`),
}

// advancedDegreeRe spots postgraduate qualifications anywhere in the text,
// independent of how the education entries parsed.
var advancedDegreeRe = regexp.MustCompile(`\b(?:master|masters|m\.?tech|msc|mba|phd|ph\.d|doctorate)\b`)

var gapKeywordRe = regexp.MustCompile(`\b(?:gap|break|sabbatical)\b`)

// Leadership indicators are checked by containment: forms like "managed" or
// "leadership" should count.
var leadershipTerms = []string{"lead", "manage", "mentor", "coordinate", "oversee"}

const (
	maxEducationEntries  = 5
	maxAchievements      = 10
	minIntervalsForChurn = 4
	churnTenureYears     = 1.5
	maxDoubleSpaces      = 20
)

// ClassifySeniority infers a candidate's band from stated experience and
// seniority-indicator term counts. The count threshold of 2 avoids promoting
// a candidate on a single incidental mention ("worked under a senior
// manager" alone should not read as senior).
func ClassifySeniority(lower string, experienceYears int) Seniority {
	seniorCount := len(seniorTermRe.FindAllString(lower, -1))
	juniorCount := len(juniorTermRe.FindAllString(lower, -1))
	switch {
	case experienceYears >= 8 || seniorCount >= 2:
		return SenioritySenior
	case experienceYears <= 2 || juniorCount >= 2:
		return SeniorityJunior
	default:
		return SeniorityMid
	}
}

// ExtractEducation returns up to five education mentions, each the trailing
// text after a degree or institution keyword.
func ExtractEducation(lower string) []string {
	return collectMatches(lower, educationRes, maxEducationEntries)
}

// extractAchievements collects certification and credential mentions.
func extractAchievements(lower string) []string {
	return collectMatches(lower, certificationRes, maxAchievements)
}

func collectMatches(lower string, patterns []*regexp.Regexp, limit int) []string {
	entries := make([]string, 0, limit)
	seen := make(map[string]bool, limit)
	for _, pattern := range patterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			entry := strings.TrimSpace(match[1])
			if entry == "" || seen[entry] {
				continue
			}
			seen[entry] = true
			entries = append(entries, entry)
			if len(entries) == limit {
				return entries
			}
		}
	}
	return entries
}

// ClassifyProgression reads job-title lines for movement between junior and
// senior roles. Fewer than two title lines is not enough signal to judge.
func ClassifyProgression(lower string) Progression {
	titles := jobTitleLineRe.FindAllString(lower, -1)
	if len(titles) < 2 {
		return ProgressionInsufficient
	}
	joined := strings.Join(titles, " ")
	if juniorTermRe.MatchString(joined) && seniorTermRe.MatchString(joined) {
		return ProgressionGood
	}
	return ProgressionStable
}

func identifyStrengths(lower string, profile CandidateProfile) []string {
	strengths := make([]string, 0, 4)
	switch {
	case profile.ExperienceYears > 8:
		strengths = append(strengths, "Extensive experience")
	case profile.ExperienceYears > 5:
		strengths = append(strengths, "Good experience level")
	}
	if advancedDegreeRe.MatchString(lower) {
		strengths = append(strengths, "Advanced degree")
	}
	if len(profile.Achievements) > 2 {
		strengths = append(strengths, "Well-certified")
	}
	if len(profile.Skills) > 15 {
		strengths = append(strengths, "Diverse skill set")
	}
	if profile.CareerProgression == ProgressionGood {
		strengths = append(strengths, "Clear career growth")
	}
	for _, term := range leadershipTerms {
		if strings.Contains(lower, term) {
			strengths = append(strengths, "Leadership experience")
			break
		}
	}
	return strengths
}

func identifyWeaknesses(profile CandidateProfile) []string {
	weaknesses := make([]string, 0, 4)
	if profile.ExperienceYears < 2 {
		weaknesses = append(weaknesses, "Limited experience")
	}
	if len(profile.Skills) < 5 {
		weaknesses = append(weaknesses, "Limited technical skills")
	}
	if len(profile.Achievements) == 0 {
		weaknesses = append(weaknesses, "No professional certifications")
	}
	if profile.CareerProgression == ProgressionStable && profile.ExperienceYears > 5 {
		weaknesses = append(weaknesses, "Limited career progression")
	}
	return weaknesses
}

// identifyRedFlags inspects the raw text (formatting signals do not survive
// normalization) together with the stated employment intervals.
func identifyRedFlags(raw, lower string, intervals []int) []string {
	flags := make([]string, 0, 3)
	if len(intervals) >= minIntervalsForChurn {
		total := 0
		for _, span := range intervals {
			total += span
		}
		if float64(total)/float64(len(intervals)) < churnTenureYears {
			flags = append(flags, "Frequent job changes")
		}
	}
	if gapKeywordRe.MatchString(lower) {
		flags = append(flags, "Potential employment gaps")
	}
	if strings.Count(raw, "  ") > maxDoubleSpaces {
		flags = append(flags, "Poor formatting")
	}
	return flags
}
