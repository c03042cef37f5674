package scoring

import "regexp"

// skillPatterns is the fixed catalogue of well-known technology terms,
// one pattern per category, matched anywhere in free text. Patterns are
// word-bounded so that e.g. "java" does not match inside "javascript".
var skillPatterns = []*regexp.Regexp{
	// programming languages
	regexp.MustCompile(`\b(?:python|java|javascript|js|typescript|php|ruby|go|golang|rust|swift|kotlin|scala|perl)\b|\bc\+\+|\bc#`),
	// frameworks
	regexp.MustCompile(`\b(?:react|angular|vue|svelte|django|flask|fastapi|spring|hibernate|laravel|rails|express|node\.?js)\b`),
	// databases
	regexp.MustCompile(`\b(?:sql|mysql|postgresql|postgres|mongodb|redis|elasticsearch|oracle|sqlite|cassandra|dynamodb|mariadb)\b`),
	// cloud and devops
	regexp.MustCompile(`\b(?:aws|azure|gcp|docker|kubernetes|k8s|jenkins|terraform|ansible|git|github|gitlab|linux|devops|ci/cd)\b`),
	// data and AI
	regexp.MustCompile(`\b(?:machine learning|deep learning|data science|artificial intelligence|nlp|computer vision|tensorflow|pytorch|scikit[- ]learn|pandas|numpy|spark|hadoop|kafka|airflow)\b`),
	// project management
	regexp.MustCompile(`\b(?:project management|agile|scrum|kanban|jira|pmp|prince2|itil|waterfall)\b`),
}

// skillsSectionRe locates a skills-style header and captures up to the next
// 15 lines following it.
var skillsSectionRe = regexp.MustCompile(`(?:technical skills|skills|technologies|tech stack|expertise|competencies)\s*:?\s*([^\n]*(?:\n[^\n]*){0,15})`)

var skillTokenSplitRe = regexp.MustCompile(`[,;|:•\n]`)

// experienceTokenRe screens out requirement phrasing ("5 years experience")
// that the section splitter would otherwise keep as a skill token.
var experienceTokenRe = regexp.MustCompile(`^\d+\s*\+?\s*(?:years?|yrs?)\b`)

var numericTokenRe = regexp.MustCompile(`^\d+$`)

// stopTokens are section-header words that leak into split tokens when a
// header sits inside a captured block.
var stopTokens = map[string]bool{
	"required":         true,
	"required skills":  true,
	"requirements":     true,
	"must have":        true,
	"must have skills": true,
	"essential":        true,
	"essential skills": true,
	"preferred":        true,
	"preferred skills": true,
	"nice to have":     true,
	"responsibilities": true,
	"qualifications":   true,
	"skills":           true,
	"technical skills": true,
	"technologies":     true,
	"experience":       true,
	"expertise":        true,
}

// synonymGroups lists families of terms treated as one underlying
// competency for matching purposes.
var synonymGroups = [][]string{
	{"python", "py", "django", "flask", "fastapi"},
	{"javascript", "js", "typescript", "node", "node.js", "nodejs", "react", "vue", "angular", "redux"},
	{"java", "spring", "hibernate", "j2ee"},
	{"sql", "mysql", "postgresql", "postgres", "oracle", "database", "rdbms"},
	{"aws", "amazon web services", "ec2", "s3", "lambda", "cloudformation"},
	{"docker", "containerization", "kubernetes", "k8s", "containers"},
	{"machine learning", "ml", "ai", "tensorflow", "pytorch", "scikit-learn", "deep learning"},
	{"project management", "pmp", "agile", "scrum", "kanban"},
	{"go", "golang"},
	{"ci/cd", "cicd", "jenkins", "continuous integration"},
}

var synonymIndex = buildSynonymIndex()

func buildSynonymIndex() map[string]int {
	index := make(map[string]int)
	for group, terms := range synonymGroups {
		for _, term := range terms {
			index[term] = group
		}
	}
	return index
}

func sameSynonymGroup(a, b string) bool {
	groupA, okA := synonymIndex[a]
	groupB, okB := synonymIndex[b]
	return okA && okB && groupA == groupB
}
