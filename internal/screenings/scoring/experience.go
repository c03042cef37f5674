package scoring

import (
	"regexp"
	"strconv"
)

// Explicit experience statements, checked before any date arithmetic.
var experienceStatementRes = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`experience\s*:?\s*(\d+)\s*\+?\s*years?`),
	regexp.MustCompile(`(\d+)\s*\+?\s*years?\s+in\s+[a-z]`),
	regexp.MustCompile(`(?:over|more than)\s+(\d+)\s*\+?\s*years?`),
}

var dateRangeRe = regexp.MustCompile(`\b((?:19|20)\d{2})\s*[-–—]\s*((?:19|20)\d{2}|present|current|now)\b`)

// EstimateExperienceYears infers total years of experience from lowercased
// raw text. Explicit statements win, taking the maximum over all mentions:
// a CV may state experience in several contexts ("5 years in Python, 8
// years overall") and the max avoids under-counting without double
// counting. Without an explicit statement, employment date ranges are
// summed. The result is capped at ceiling.
func EstimateExperienceYears(lower string, currentYear, ceiling int) int {
	best := -1
	for _, pattern := range experienceStatementRes {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			value, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			if value > best {
				best = value
			}
		}
	}
	if best >= 0 {
		return capYears(best, ceiling)
	}

	intervals := employmentIntervals(lower, currentYear)
	if len(intervals) == 0 {
		return 0
	}
	total := 0
	for _, span := range intervals {
		total += span
	}
	return capYears(total, ceiling)
}

// employmentIntervals returns the duration in years of every stated
// employment range. Open ends ("present", "current", "now") close at
// currentYear. Overlapping ranges are not merged: concurrent roles count
// each range separately.
func employmentIntervals(lower string, currentYear int) []int {
	matches := dateRangeRe.FindAllStringSubmatch(lower, -1)
	out := make([]int, 0, len(matches))
	for _, match := range matches {
		start, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		end := currentYear
		switch match[2] {
		case "present", "current", "now":
		default:
			end, err = strconv.Atoi(match[2])
			if err != nil {
				continue
			}
		}
		if end < start {
			continue
		}
		out = append(out, end-start)
	}
	return out
}

func capYears(years, ceiling int) int {
	if years < 0 {
		return 0
	}
	if ceiling > 0 && years > ceiling {
		return ceiling
	}
	return years
}
