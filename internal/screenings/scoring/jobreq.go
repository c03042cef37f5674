package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	requiredSectionRe  = regexp.MustCompile(`(?:required|must have|essential)(?:\s+skills?)?\s*:?\s*([^.]*(?:\.[^.]*){0,5})`)
	preferredSectionRe = regexp.MustCompile(`(?:preferred|nice to have|plus|bonus)(?:\s+skills?)?\s*:?\s*([^.]*(?:\.[^.]*){0,3})`)
	minYearsRe         = regexp.MustCompile(`(\d+)\s*\+?\s*years?\s*(?:of\s*)?experience`)
	managementTermRe   = regexp.MustCompile(`\b(?:manager|management|director|head of|vp|vice president|chief)\b`)
	technicalTermRe    = regexp.MustCompile(`\b(?:engineer|engineering|developer|programmer|software|technical|scientist|analyst|coding)\b`)
)

// maxFallbackSkills bounds how many catalogue skills are promoted to
// requirements when a job description has no explicit required section.
const maxFallbackSkills = 10

// AnalyzeJobDescription reads a job description into a JobRequirement.
func AnalyzeJobDescription(text string) JobRequirement {
	lower := strings.ToLower(text)

	required := make([]string, 0, 16)
	for _, section := range requiredSectionRe.FindAllStringSubmatch(lower, -1) {
		required = append(required, splitSkillTokens(section[1])...)
	}
	preferred := make([]string, 0, 8)
	for _, section := range preferredSectionRe.FindAllStringSubmatch(lower, -1) {
		preferred = append(preferred, splitSkillTokens(section[1])...)
	}

	requiredSet := NewSkillSet(required...)
	preferredSet := NewSkillSet(preferred...)

	// Without an explicit required section, treat the first catalogue hits
	// as required and the remainder as preferred.
	if len(requiredSet) == 0 {
		all := ExtractSkills(lower)
		if len(all) > 2*maxFallbackSkills {
			all = all[:2*maxFallbackSkills]
		}
		if len(all) > maxFallbackSkills {
			requiredSet = NewSkillSet(all[:maxFallbackSkills]...)
			preferredSet = NewSkillSet(all[maxFallbackSkills:]...)
		} else {
			requiredSet = all
			preferredSet = SkillSet{}
		}
	}

	minYears := 0
	for _, match := range minYearsRe.FindAllStringSubmatch(lower, -1) {
		if value, err := strconv.Atoi(match[1]); err == nil && value > minYears {
			minYears = value
		}
	}

	// Presence is enough here: short job descriptions typically mention the
	// level once, in the title.
	seniority := SeniorityMid
	switch {
	case seniorTermRe.MatchString(lower):
		seniority = SenioritySenior
	case juniorTermRe.MatchString(lower):
		seniority = SeniorityJunior
	}

	roleType := RoleTechnical
	if len(managementTermRe.FindAllString(lower, -1)) > len(technicalTermRe.FindAllString(lower, -1)) {
		roleType = RoleManagement
	}

	return JobRequirement{
		RequiredSkills:     requiredSet,
		PreferredSkills:    preferredSet,
		MinExperienceYears: minYears,
		SeniorityLevel:     seniority,
		RoleType:           roleType,
	}
}
