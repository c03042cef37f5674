package scoring

import "strings"

// ExtractSkills finds skills in lowercased raw text. The catalogue pass
// recognizes known technology terms anywhere in the text; the section pass
// recovers bespoke entries listed under a skills-style header. Neither
// technique suffices alone given how much CV structure varies.
func ExtractSkills(lower string) SkillSet {
	found := make([]string, 0, 32)
	for _, pattern := range skillPatterns {
		found = append(found, pattern.FindAllString(lower, -1)...)
	}
	for _, section := range skillsSectionRe.FindAllStringSubmatch(lower, -1) {
		found = append(found, splitSkillTokens(section[1])...)
	}
	return NewSkillSet(found...)
}

// splitSkillTokens splits a section block on common delimiters and keeps
// plausible skill tokens.
func splitSkillTokens(block string) []string {
	tokens := skillTokenSplitRe.Split(block, -1)
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		cleaned := cleanSkillToken(token)
		if cleaned == "" {
			continue
		}
		out = append(out, cleaned)
	}
	return out
}

// cleanSkillToken trims bullet punctuation and drops tokens that cannot be
// skills: too short or long, purely numeric, requirement phrasing, or
// leaked section headers.
func cleanSkillToken(token string) string {
	trimmed := strings.Trim(token, " \t-–—•*·")
	trimmed = strings.Join(strings.Fields(trimmed), " ")
	if len(trimmed) <= 2 || len(trimmed) >= 30 {
		return ""
	}
	if numericTokenRe.MatchString(trimmed) {
		return ""
	}
	if experienceTokenRe.MatchString(trimmed) {
		return ""
	}
	if stopTokens[trimmed] {
		return ""
	}
	return trimmed
}
