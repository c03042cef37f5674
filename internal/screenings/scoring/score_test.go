package scoring

import (
	"strings"
	"testing"
)

func TestCalculateFitScoreWeightedComponents(t *testing.T) {
	job := JobRequirement{MinExperienceYears: 5, SeniorityLevel: SeniorityMid}
	profile := CandidateProfile{
		Name:              "Jane Doe",
		ExperienceYears:   6,
		CareerProgression: ProgressionInsufficient,
	}
	match := MatchResult{MatchPercentage: 100}

	score := CalculateFitScore(job, profile, match, nil, DefaultConfig())

	expected := map[string]float64{
		ComponentSkills:       100,
		ComponentExperience:   100,
		ComponentEducation:    40,
		ComponentProgression:  50,
		ComponentAchievements: 0,
	}
	for component, want := range expected {
		if got := score.Components[component]; got != want {
			t.Fatalf("expected %s=%v, got %v", component, want, got)
		}
	}
	if score.Overall != 76.0 {
		t.Fatalf("expected overall 76.0, got %v", score.Overall)
	}
	if score.Verdict != VerdictGood {
		t.Fatalf("expected good verdict, got %s", score.Verdict)
	}
}

func TestCalculateFitScoreMustHavePenaltyExact(t *testing.T) {
	job := JobRequirement{MinExperienceYears: 3, SeniorityLevel: SenioritySenior}
	profile := CandidateProfile{
		Name:              "Sam Lee",
		Skills:            NewSkillSet("python", "docker"),
		ExperienceYears:   10,
		Education:         []string{"science in computer science"},
		CareerProgression: ProgressionGood,
		Achievements:      []string{"a", "b", "c", "d"},
	}
	match := MatchResult{MatchPercentage: 100}
	cfg := DefaultConfig()

	baseline := CalculateFitScore(job, profile, match, nil, cfg)
	penalized := CalculateFitScore(job, profile, match, []string{"Kubernetes"}, cfg)

	if baseline.Overall != 100.0 {
		t.Fatalf("expected baseline 100.0, got %v", baseline.Overall)
	}
	if diff := baseline.Overall - penalized.Overall; diff != cfg.MustHavePenalty {
		t.Fatalf("expected penalty of exactly %v, got %v", cfg.MustHavePenalty, diff)
	}
	if penalized.PenaltiesApplied != cfg.MustHavePenalty {
		t.Fatalf("expected penalties %v, got %v", cfg.MustHavePenalty, penalized.PenaltiesApplied)
	}
}

func TestCalculateFitScoreClampsAtZero(t *testing.T) {
	profile := CandidateProfile{
		Name:     "Empty Profile",
		RedFlags: []string{"a", "b", "c"},
	}
	score := CalculateFitScore(JobRequirement{MinExperienceYears: 10}, profile, MatchResult{}, []string{"Kubernetes", "Terraform", "Go"}, DefaultConfig())

	if score.Overall < 0 || score.Overall > 100 {
		t.Fatalf("expected overall within [0,100], got %v", score.Overall)
	}
	if score.Verdict != VerdictPoor {
		t.Fatalf("expected poor verdict, got %s", score.Verdict)
	}
}

func TestExperienceScore(t *testing.T) {
	cases := []struct {
		name     string
		years    int
		job      JobRequirement
		expected float64
	}{
		{name: "senior_met", years: 10, job: JobRequirement{MinExperienceYears: 5, SeniorityLevel: SenioritySenior}, expected: 100},
		{name: "senior_met_but_light", years: 6, job: JobRequirement{MinExperienceYears: 5, SeniorityLevel: SenioritySenior}, expected: 80},
		{name: "junior_in_band", years: 2, job: JobRequirement{SeniorityLevel: SeniorityJunior}, expected: 100},
		{name: "junior_overqualified", years: 5, job: JobRequirement{SeniorityLevel: SeniorityJunior}, expected: 80},
		{name: "mid_in_band", years: 4, job: JobRequirement{MinExperienceYears: 3, SeniorityLevel: SeniorityMid}, expected: 100},
		{name: "mid_overshoot", years: 10, job: JobRequirement{SeniorityLevel: SeniorityMid}, expected: 80},
		{name: "shortfall_proportional", years: 5, job: JobRequirement{MinExperienceYears: 10, SeniorityLevel: SeniorityMid}, expected: 35},
		{name: "zero_years_zero_requirement", years: 0, job: JobRequirement{SeniorityLevel: SeniorityMid}, expected: 80},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := experienceScore(tc.years, tc.job)
			if got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestAchievementScoreCapped(t *testing.T) {
	cases := []struct {
		count    int
		expected float64
	}{
		{count: 0, expected: 0},
		{count: 2, expected: 50},
		{count: 4, expected: 100},
		{count: 7, expected: 100},
	}
	for _, tc := range cases {
		entries := make([]string, tc.count)
		if got := achievementScore(entries); got != tc.expected {
			t.Fatalf("expected %v for %d achievements, got %v", tc.expected, tc.count, got)
		}
	}
}

func TestMustHavePenalty(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		name     string
		mustHave []string
		skills   SkillSet
		expected float64
	}{
		{name: "absent_skill_charged", mustHave: []string{"Kubernetes"}, skills: NewSkillSet("docker"), expected: 15},
		{name: "present_skill_free", mustHave: []string{"Docker"}, skills: NewSkillSet("docker"), expected: 0},
		{name: "needle_contains_skill", mustHave: []string{"kubernetes administration"}, skills: NewSkillSet("kubernetes"), expected: 0},
		{name: "skill_contains_needle", mustHave: []string{"sql"}, skills: NewSkillSet("postgresql"), expected: 0},
		{name: "two_absent", mustHave: []string{"K8s", "Terraform"}, skills: SkillSet{}, expected: 30},
		{name: "punctuation_normalized", mustHave: []string{"Kubernetes!"}, skills: NewSkillSet("kubernetes"), expected: 0},
		{name: "no_must_haves", mustHave: nil, skills: NewSkillSet("python"), expected: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mustHavePenalty(tc.mustHave, tc.skills, cfg)
			if got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestRedFlagPenaltyCapped(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		count    int
		expected float64
	}{
		{count: 0, expected: 0},
		{count: 1, expected: 10},
		{count: 2, expected: 20},
		{count: 3, expected: 25},
		{count: 5, expected: 25},
	}
	for _, tc := range cases {
		flags := make([]string, tc.count)
		if got := redFlagPenalty(flags, cfg); got != tc.expected {
			t.Fatalf("expected %v for %d flags, got %v", tc.expected, tc.count, got)
		}
	}
}

func TestVerdictBoundaries(t *testing.T) {
	cases := []struct {
		score    float64
		expected Verdict
	}{
		{score: 100, expected: VerdictExcellent},
		{score: 85, expected: VerdictExcellent},
		{score: 84.9, expected: VerdictGood},
		{score: 75, expected: VerdictGood},
		{score: 74.9, expected: VerdictModerate},
		{score: 65, expected: VerdictModerate},
		{score: 64.9, expected: VerdictBelowAverage},
		{score: 50, expected: VerdictBelowAverage},
		{score: 49.9, expected: VerdictPoor},
		{score: 0, expected: VerdictPoor},
	}

	for _, tc := range cases {
		if got := verdictFor(tc.score); got != tc.expected {
			t.Fatalf("expected %s for %v, got %s", tc.expected, tc.score, got)
		}
	}
}

func TestRecommendationText(t *testing.T) {
	profile := CandidateProfile{
		Name:      "Jane Doe",
		Strengths: []string{"Extensive experience"},
	}
	text := recommendationText(profile, MatchResult{}, VerdictExcellent)
	if !strings.Contains(text, "Excellent fit: Jane Doe") {
		t.Fatalf("expected excellent opener, got %q", text)
	}
	if !strings.Contains(text, "Top strength: extensive experience.") {
		t.Fatalf("expected strength sentence, got %q", text)
	}

	weak := CandidateProfile{
		Name:       "Sam Lee",
		Weaknesses: []string{"Limited experience"},
	}
	match := MatchResult{Missing: NewSkillSet("docker", "sql")}
	text = recommendationText(weak, match, VerdictModerate)
	if !strings.Contains(text, "Moderate fit: Sam Lee") {
		t.Fatalf("expected moderate opener, got %q", text)
	}
	if !strings.Contains(text, "Main concern: limited experience.") {
		t.Fatalf("expected concern sentence, got %q", text)
	}
	if !strings.Contains(text, "Missing: docker, sql.") {
		t.Fatalf("expected missing skills sentence, got %q", text)
	}
}

func TestRecommendationTextOmitsLongMissingList(t *testing.T) {
	match := MatchResult{Missing: NewSkillSet("a1", "b2", "c3", "d4")}
	text := recommendationText(CandidateProfile{Name: "Pat"}, match, VerdictPoor)
	if strings.Contains(text, "Missing:") {
		t.Fatalf("expected no missing list for more than three skills, got %q", text)
	}
}

func TestClampScore(t *testing.T) {
	if got := clampScore(-4); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := clampScore(104); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
	if got := clampScore(55.5); got != 55.5 {
		t.Fatalf("expected 55.5, got %v", got)
	}
}

func TestRound1(t *testing.T) {
	if got := round1(76.449); got != 76.4 {
		t.Fatalf("expected 76.4, got %v", got)
	}
	if got := round1(76.45); got != 76.5 {
		t.Fatalf("expected 76.5, got %v", got)
	}
}
