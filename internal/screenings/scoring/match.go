package scoring

import (
	"context"
	"strings"

	"cv-screener/internal/semantic"
)

// MatchSkills resolves each job skill against the candidate's skills.
// Comparison layers per skill pair, in order of preference: substring
// containment (confidence 1.0), shared synonym group (0.9), embedding
// similarity when an Embedder is present, token overlap otherwise. A nil
// Embedder is valid; embedding failures degrade to token overlap.
func MatchSkills(ctx context.Context, job JobRequirement, candidate SkillSet, embedder semantic.Embedder, cfg Config) MatchResult {
	jobSkills := job.AllSkills()
	result := MatchResult{
		Matched: make([]MatchedSkill, 0, len(jobSkills)),
		Missing: SkillSet{},
	}
	if len(jobSkills) == 0 {
		return result
	}

	// Vectors are memoized per call so each distinct skill is embedded once.
	vectors := make(map[string][]float32)

	for _, jobSkill := range jobSkills {
		best := 0.0
		bestSkill := ""
		for _, candidateSkill := range candidate {
			confidence := matchConfidence(ctx, jobSkill, candidateSkill, embedder, vectors, cfg)
			if confidence > best {
				best = confidence
				bestSkill = candidateSkill
			}
			if best >= 1 {
				break
			}
		}
		if best > cfg.MatchThreshold {
			result.Matched = append(result.Matched, MatchedSkill{
				Requirement: jobSkill,
				Candidate:   bestSkill,
				Confidence:  best,
			})
		} else {
			result.Missing = append(result.Missing, jobSkill)
		}
	}

	result.MatchPercentage = round1(float64(len(result.Matched)) / float64(len(jobSkills)) * 100)
	return result
}

func matchConfidence(ctx context.Context, jobSkill, candidateSkill string, embedder semantic.Embedder, vectors map[string][]float32, cfg Config) float64 {
	if strings.Contains(jobSkill, candidateSkill) || strings.Contains(candidateSkill, jobSkill) {
		return 1
	}
	if sameSynonymGroup(jobSkill, candidateSkill) {
		return 0.9
	}
	if embedder != nil {
		if similarity, ok := embeddingSimilarity(ctx, jobSkill, candidateSkill, embedder, vectors); ok {
			if similarity > cfg.SemanticFloor {
				return similarity
			}
			return 0
		}
	}
	return tokenOverlap(jobSkill, candidateSkill)
}

// tokenOverlap is the lexical fallback: shared words over the larger
// word count.
func tokenOverlap(a, b string) float64 {
	wordsA := strings.Fields(a)
	wordsB := strings.Fields(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}
	seen := make(map[string]bool, len(wordsA))
	for _, word := range wordsA {
		seen[word] = true
	}
	common := 0
	for _, word := range wordsB {
		if seen[word] {
			common++
			delete(seen, word)
		}
	}
	denom := len(wordsA)
	if len(wordsB) > denom {
		denom = len(wordsB)
	}
	return float64(common) / float64(denom)
}

func embeddingSimilarity(ctx context.Context, a, b string, embedder semantic.Embedder, vectors map[string][]float32) (float64, bool) {
	vectorA, ok := embedCached(ctx, a, embedder, vectors)
	if !ok {
		return 0, false
	}
	vectorB, ok := embedCached(ctx, b, embedder, vectors)
	if !ok {
		return 0, false
	}
	return semantic.Cosine(vectorA, vectorB), true
}

func embedCached(ctx context.Context, text string, embedder semantic.Embedder, vectors map[string][]float32) ([]float32, bool) {
	if vector, seen := vectors[text]; seen {
		return vector, vector != nil
	}
	vector, err := embedder.Embed(ctx, text)
	if err != nil {
		vectors[text] = nil
		return nil, false
	}
	vectors[text] = vector
	return vector, true
}
