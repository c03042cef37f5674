// Package scoring implements the CV screening engine: text normalization,
// skill extraction, experience estimation, candidate classification,
// synonym-aware skill matching and weighted fit scoring. The engine is
// stateless; all tables and patterns are read-only after init and safe for
// concurrent use.
package scoring

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cv-screener/internal/semantic"
)

// Engine runs the screening pipeline over one job description and a batch
// of candidate documents. Embedder and Logger are optional.
type Engine struct {
	Config   Config
	Embedder semantic.Embedder
	Logger   *zap.Logger
}

type candidateOutcome struct {
	result  *CandidateResult
	skipped *SkippedFile
}

// Screen analyzes the job description, processes every candidate document
// in parallel and returns the ranked result. One candidate's unusable text
// or analysis failure never aborts the batch.
func (e *Engine) Screen(ctx context.Context, jobDescription string, docs []CandidateDocument, mustHave []string) ScreeningResult {
	job := AnalyzeJobDescription(jobDescription)
	currentYear := time.Now().UTC().Year()

	outcomes := make([]candidateOutcome, len(docs))

	workers := e.Config.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(docs) {
		workers = len(docs)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range indexes {
				outcomes[index] = e.processCandidate(ctx, job, docs[index], mustHave, currentYear)
			}
		}()
	}
	for index := range docs {
		indexes <- index
	}
	close(indexes)
	wg.Wait()

	results := make([]CandidateResult, 0, len(docs))
	skipped := make([]SkippedFile, 0)
	for _, outcome := range outcomes {
		if outcome.result != nil {
			results = append(results, *outcome.result)
		}
		if outcome.skipped != nil {
			skipped = append(skipped, *outcome.skipped)
		}
	}

	Rank(results)

	return ScreeningResult{
		ID:         uuid.NewString(),
		Job:        job,
		Candidates: results,
		Skipped:    skipped,
		Summary:    Summarize(results),
		CreatedAt:  time.Now().UTC(),
	}
}

func (e *Engine) processCandidate(ctx context.Context, job JobRequirement, doc CandidateDocument, mustHave []string, currentYear int) (out candidateOutcome) {
	defer func() {
		if r := recover(); r != nil {
			e.logger().Error("candidate analysis panicked",
				zap.String("file", doc.FileName),
				zap.Any("panic", r))
			out = candidateOutcome{skipped: &SkippedFile{FileName: doc.FileName, Reason: "analysis failure"}}
		}
	}()

	if len(strings.TrimSpace(doc.Text)) < e.Config.MinTextLength {
		e.logger().Warn("skipping candidate with unusable text",
			zap.String("file", doc.FileName),
			zap.Int("text_length", len(strings.TrimSpace(doc.Text))))
		return candidateOutcome{skipped: &SkippedFile{FileName: doc.FileName, Reason: "extracted text too short"}}
	}

	profile := AnalyzeCandidate(doc.FileName, doc.Text, currentYear, e.Config.MaxExperienceYears)
	match := MatchSkills(ctx, job, profile.Skills, e.Embedder, e.Config)
	score := CalculateFitScore(job, profile, match, mustHave, e.Config)

	e.logger().Debug("candidate scored",
		zap.String("file", doc.FileName),
		zap.Float64("overall", score.Overall),
		zap.String("verdict", string(score.Verdict)))

	return candidateOutcome{result: &CandidateResult{Profile: profile, Match: match, Score: score}}
}

func (e *Engine) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}
