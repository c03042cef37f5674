package scoring

import (
	"context"
	"errors"
	"math"
	"testing"
)

type stubEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   int
}

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.vectors[text], nil
}

func TestMatchSkillsLexical(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		name       string
		job        JobRequirement
		candidate  SkillSet
		matched    int
		missing    int
		confidence float64
	}{
		{
			name:       "exact_match",
			job:        JobRequirement{RequiredSkills: NewSkillSet("python")},
			candidate:  NewSkillSet("python"),
			matched:    1,
			confidence: 1,
		},
		{
			name:       "substring_match",
			job:        JobRequirement{RequiredSkills: NewSkillSet("sql")},
			candidate:  NewSkillSet("mysql"),
			matched:    1,
			confidence: 1,
		},
		{
			name:       "synonym_match",
			job:        JobRequirement{RequiredSkills: NewSkillSet("javascript")},
			candidate:  NewSkillSet("react"),
			matched:    1,
			confidence: 0.9,
		},
		{
			name:       "token_overlap_match",
			job:        JobRequirement{RequiredSkills: NewSkillSet("data engineering")},
			candidate:  NewSkillSet("data platform engineering"),
			matched:    1,
			confidence: 2.0 / 3.0,
		},
		{
			name:      "overlap_at_threshold_not_matched",
			job:       JobRequirement{RequiredSkills: NewSkillSet("cloud infrastructure automation pipeline design")},
			candidate: NewSkillSet("cloud automation design"),
			missing:   1,
		},
		{
			name:      "unrelated_missing",
			job:       JobRequirement{RequiredSkills: NewSkillSet("golang")},
			candidate: NewSkillSet("photoshop"),
			missing:   1,
		},
		{
			name:      "no_candidate_skills",
			job:       JobRequirement{RequiredSkills: NewSkillSet("python", "sql")},
			candidate: SkillSet{},
			missing:   2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := MatchSkills(context.Background(), tc.job, tc.candidate, nil, cfg)
			if len(result.Matched) != tc.matched {
				t.Fatalf("expected %d matched, got %v", tc.matched, result.Matched)
			}
			if len(result.Missing) != tc.missing {
				t.Fatalf("expected %d missing, got %v", tc.missing, result.Missing)
			}
			if tc.matched == 1 && math.Abs(result.Matched[0].Confidence-tc.confidence) > 1e-9 {
				t.Fatalf("expected confidence %.3f, got %.3f", tc.confidence, result.Matched[0].Confidence)
			}
		})
	}
}

func TestMatchSkillsPercentage(t *testing.T) {
	job := JobRequirement{RequiredSkills: NewSkillSet("python", "sql")}
	result := MatchSkills(context.Background(), job, NewSkillSet("python"), nil, DefaultConfig())
	if result.MatchPercentage != 50.0 {
		t.Fatalf("expected 50.0, got %v", result.MatchPercentage)
	}
}

func TestMatchSkillsEmptyJob(t *testing.T) {
	result := MatchSkills(context.Background(), JobRequirement{}, NewSkillSet("python"), nil, DefaultConfig())
	if result.MatchPercentage != 0 || len(result.Matched) != 0 || len(result.Missing) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}

func TestMatchSkillsEmbedderAboveFloor(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"container orchestration": {1, 0},
		"kubernetes operations":   {0.8, 0.6},
	}}
	job := JobRequirement{RequiredSkills: NewSkillSet("container orchestration")}

	result := MatchSkills(context.Background(), job, NewSkillSet("kubernetes operations"), embedder, DefaultConfig())
	if len(result.Matched) != 1 {
		t.Fatalf("expected a semantic match, got %+v", result)
	}
	if got := result.Matched[0].Confidence; math.Abs(got-0.8) > 1e-6 {
		t.Fatalf("expected confidence near 0.8, got %v", got)
	}
}

func TestMatchSkillsEmbedderBelowFloorSuppressesOverlap(t *testing.T) {
	// Lexically these overlap enough to match; a working embedder that
	// disagrees must win.
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"data engineering":          {1, 0},
		"data platform engineering": {0, 1},
	}}
	job := JobRequirement{RequiredSkills: NewSkillSet("data engineering")}

	result := MatchSkills(context.Background(), job, NewSkillSet("data platform engineering"), embedder, DefaultConfig())
	if len(result.Missing) != 1 {
		t.Fatalf("expected skill to be missing, got %+v", result)
	}
}

func TestMatchSkillsEmbedderErrorFallsBack(t *testing.T) {
	embedder := &stubEmbedder{err: errors.New("embed unavailable")}
	job := JobRequirement{RequiredSkills: NewSkillSet("data engineering")}

	result := MatchSkills(context.Background(), job, NewSkillSet("data platform engineering"), embedder, DefaultConfig())
	if len(result.Matched) != 1 {
		t.Fatalf("expected lexical fallback match, got %+v", result)
	}
}

func TestMatchSkillsEmbedsEachSkillOnce(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"alpha one":   {1, 0},
		"beta two":    {0, 1},
		"gamma three": {0.6, 0.8},
	}}
	job := JobRequirement{RequiredSkills: NewSkillSet("alpha one", "beta two")}

	result := MatchSkills(context.Background(), job, NewSkillSet("gamma three"), embedder, DefaultConfig())
	if embedder.calls != 3 {
		t.Fatalf("expected 3 embed calls, got %d", embedder.calls)
	}
	if len(result.Matched) != 1 || len(result.Missing) != 1 {
		t.Fatalf("expected one match and one miss, got %+v", result)
	}
}

func TestTokenOverlap(t *testing.T) {
	cases := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{name: "identical", a: "machine learning", b: "machine learning", expected: 1},
		{name: "partial", a: "data engineering", b: "data platform engineering", expected: 2.0 / 3.0},
		{name: "disjoint", a: "python", b: "photoshop", expected: 0},
		{name: "empty", a: "", b: "python", expected: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tokenOverlap(tc.a, tc.b)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Fatalf("expected %.3f, got %.3f", tc.expected, got)
			}
		})
	}
}
