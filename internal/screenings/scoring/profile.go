package scoring

import (
	"path/filepath"
	"strings"
	"unicode"
)

// AnalyzeCandidate reads one CV text into a CandidateProfile. currentYear
// anchors open-ended employment ranges; ceiling caps estimated experience.
func AnalyzeCandidate(fileName, text string, currentYear, ceiling int) CandidateProfile {
	lower := strings.ToLower(text)

	profile := CandidateProfile{
		Name:            candidateNameFromFile(fileName),
		FileName:        fileName,
		Skills:          ExtractSkills(lower),
		ExperienceYears: EstimateExperienceYears(lower, currentYear, ceiling),
		Education:       ExtractEducation(lower),
		Achievements:    extractAchievements(lower),
	}
	profile.SeniorityLevel = ClassifySeniority(lower, profile.ExperienceYears)
	profile.CareerProgression = ClassifyProgression(lower)
	profile.Strengths = identifyStrengths(lower, profile)
	profile.Weaknesses = identifyWeaknesses(profile)
	profile.RedFlags = identifyRedFlags(text, lower, employmentIntervals(lower, currentYear))
	return profile
}

// candidateNameFromFile derives a display name from the upload file name:
// "jane_doe-cv.pdf" becomes "Jane Doe Cv".
func candidateNameFromFile(fileName string) string {
	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	base = strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(base)
	fields := strings.Fields(base)
	if len(fields) == 0 {
		return "Unknown"
	}
	for i, field := range fields {
		runes := []rune(field)
		runes[0] = unicode.ToUpper(runes[0])
		fields[i] = string(runes)
	}
	return strings.Join(fields, " ")
}
