package scoring

import "testing"

func TestAnalyzeJobDescriptionExplicitSections(t *testing.T) {
	jd := "Required skills: Python, SQL, Docker\nPreferred skills: Kubernetes, Terraform"
	job := AnalyzeJobDescription(jd)

	for _, want := range []string{"python", "sql", "docker"} {
		if !job.RequiredSkills.Contains(want) {
			t.Fatalf("expected required skill %q in %v", want, job.RequiredSkills)
		}
	}
	for _, want := range []string{"kubernetes", "terraform"} {
		if !job.PreferredSkills.Contains(want) {
			t.Fatalf("expected preferred skill %q in %v", want, job.PreferredSkills)
		}
	}
	if job.RequiredSkills.Contains("preferred skills") {
		t.Fatalf("expected header token to be filtered, got %v", job.RequiredSkills)
	}
}

func TestAnalyzeJobDescriptionDropsExperiencePhrase(t *testing.T) {
	job := AnalyzeJobDescription("Required: Python, SQL, 5 years experience")

	if !job.RequiredSkills.Contains("python") || !job.RequiredSkills.Contains("sql") {
		t.Fatalf("expected python and sql, got %v", job.RequiredSkills)
	}
	for _, skill := range job.RequiredSkills {
		if skill == "5 years experience" {
			t.Fatalf("expected experience phrase to be filtered, got %v", job.RequiredSkills)
		}
	}
	if job.MinExperienceYears != 5 {
		t.Fatalf("expected min experience 5, got %d", job.MinExperienceYears)
	}
}

func TestAnalyzeJobDescriptionFallback(t *testing.T) {
	job := AnalyzeJobDescription("We use Python, Django and PostgreSQL daily to ship features.")

	for _, want := range []string{"python", "django", "postgresql"} {
		if !job.RequiredSkills.Contains(want) {
			t.Fatalf("expected fallback required skill %q in %v", want, job.RequiredSkills)
		}
	}
	if len(job.PreferredSkills) != 0 {
		t.Fatalf("expected no preferred skills, got %v", job.PreferredSkills)
	}
}

func TestAnalyzeJobDescriptionFallbackSplit(t *testing.T) {
	jd := "Our stack spans python java typescript php ruby rust swift kotlin scala perl react angular."
	job := AnalyzeJobDescription(jd)

	if len(job.RequiredSkills) != maxFallbackSkills {
		t.Fatalf("expected %d required skills, got %d: %v", maxFallbackSkills, len(job.RequiredSkills), job.RequiredSkills)
	}
	if len(job.PreferredSkills) != 2 {
		t.Fatalf("expected 2 preferred skills, got %v", job.PreferredSkills)
	}
}

func TestAnalyzeJobDescriptionSeniority(t *testing.T) {
	cases := []struct {
		name     string
		jd       string
		expected Seniority
	}{
		{name: "senior_title", jd: "Senior Backend Engineer", expected: SenioritySenior},
		{name: "junior_title", jd: "Junior Developer role", expected: SeniorityJunior},
		{name: "senior_wins_over_junior", jd: "Senior engineer mentoring junior developers", expected: SenioritySenior},
		{name: "default_mid", jd: "Backend Engineer", expected: SeniorityMid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			job := AnalyzeJobDescription(tc.jd)
			if job.SeniorityLevel != tc.expected {
				t.Fatalf("expected %s, got %s", tc.expected, job.SeniorityLevel)
			}
		})
	}
}

func TestAnalyzeJobDescriptionRoleType(t *testing.T) {
	management := AnalyzeJobDescription("Engineering Manager to drive management initiatives as Director of Platform")
	if management.RoleType != RoleManagement {
		t.Fatalf("expected management role, got %s", management.RoleType)
	}

	technical := AnalyzeJobDescription("Software Engineer building developer tooling")
	if technical.RoleType != RoleTechnical {
		t.Fatalf("expected technical role, got %s", technical.RoleType)
	}
}
