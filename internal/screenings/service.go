package screenings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"cv-screener/internal/extract"
	"cv-screener/internal/screenings/scoring"
	"cv-screener/internal/shared/metrics"
	"cv-screener/internal/shared/util"
)

// CandidateUpload is one CV file received from a caller, still in its
// original binary form.
type CandidateUpload struct {
	FileName string
	MimeType string
	Data     []byte
}

// Service contains business logic for screenings.
type Service struct {
	Engine         *scoring.Engine
	MaxCandidates  int
	MaxUploadBytes int64
	Log            *zap.Logger
}

// NewService constructs a Service.
func NewService(engine *scoring.Engine, maxCandidates int, maxUploadBytes int64, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		Engine:         engine,
		MaxCandidates:  maxCandidates,
		MaxUploadBytes: maxUploadBytes,
		Log:            log,
	}
}

// Screen extracts text from the uploaded CVs and runs the scoring engine
// against the job description. A file that cannot be processed is reported
// in the result's skipped list instead of failing the batch; only request
// level problems (empty job description, no files, too many files) return
// an error.
func (s *Service) Screen(ctx context.Context, jobDescription string, mustHave []string, uploads []CandidateUpload) (scoring.ScreeningResult, error) {
	metrics.IncScreeningStarted()

	jobDescription = strings.TrimSpace(jobDescription)
	if jobDescription == "" {
		metrics.IncScreeningFailed()
		return scoring.ScreeningResult{}, fmt.Errorf("%w: job description is required", ErrInvalidInput)
	}
	if len(uploads) == 0 {
		metrics.IncScreeningFailed()
		return scoring.ScreeningResult{}, fmt.Errorf("%w: at least one cv file is required", ErrInvalidInput)
	}
	if s.MaxCandidates > 0 && len(uploads) > s.MaxCandidates {
		metrics.IncScreeningFailed()
		return scoring.ScreeningResult{}, fmt.Errorf("%w: limit is %d cv files per request", ErrTooManyCandidates, s.MaxCandidates)
	}

	start := time.Now()
	docs := make([]scoring.CandidateDocument, 0, len(uploads))
	var skipped []scoring.SkippedFile
	seen := make(map[string]string, len(uploads))

	for _, up := range uploads {
		name, err := util.SanitizeFileName(up.FileName)
		if err != nil {
			skipped = append(skipped, scoring.SkippedFile{FileName: up.FileName, Reason: "invalid file name"})
			continue
		}

		if s.MaxUploadBytes > 0 && int64(len(up.Data)) > s.MaxUploadBytes {
			skipped = append(skipped, scoring.SkippedFile{FileName: name, Reason: "file exceeds size limit"})
			continue
		}

		key := util.ContentKey(up.Data)
		if first, ok := seen[key]; ok {
			skipped = append(skipped, scoring.SkippedFile{FileName: name, Reason: "duplicate of " + first})
			continue
		}
		seen[key] = name

		text, err := extractText(ctx, up.Data, up.MimeType, name)
		if err != nil {
			reason := "text extraction failed"
			if errors.Is(err, extract.ErrUnsupportedType) {
				reason = "unsupported file type"
			}
			s.Log.Warn("cv rejected",
				zap.String("file_name", name),
				zap.String("reason", reason),
				zap.Error(err),
			)
			skipped = append(skipped, scoring.SkippedFile{FileName: name, Reason: reason})
			continue
		}

		docs = append(docs, scoring.CandidateDocument{FileName: name, Text: text})
	}

	result := s.Engine.Screen(ctx, jobDescription, docs, mustHave)
	result.Skipped = append(skipped, result.Skipped...)

	metrics.AddCandidatesProcessed(len(result.Candidates))
	metrics.AddCandidatesSkipped(len(result.Skipped))
	for _, cand := range result.Candidates {
		metrics.ObserveFitScore(cand.Score.Overall)
	}
	durationMs := float64(time.Since(start).Microseconds()) / 1000.0
	metrics.ObserveScreeningDurationMs(durationMs)
	metrics.IncScreeningCompleted()

	s.Log.Info("screening.complete",
		zap.String("screening_id", result.ID),
		zap.Int("candidates", len(result.Candidates)),
		zap.Int("skipped", len(result.Skipped)),
		zap.Float64("avg_fit_score", result.Summary.AvgFitScore),
		zap.Float64("duration_ms", durationMs),
	)

	return result, nil
}

// extractText guards the extractor. The PDF library panics on some malformed
// files, and one bad CV must not abort the batch.
func extractText(ctx context.Context, data []byte, mimeType, fileName string) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("extract panic: %v", rec)
		}
	}()
	return extract.Text(ctx, data, mimeType, fileName)
}
