package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"cv-screener/internal/extract"
	"cv-screener/internal/screenings"
	"cv-screener/internal/screenings/scoring"
	"cv-screener/internal/semantic"
	"cv-screener/internal/semantic/gemini"
	"cv-screener/internal/shared/telemetry"
)

var screenCmd = &cobra.Command{
	Use:   "screen [cv files]",
	Short: "Score local CV files against a job description",
	Run: func(cmd *cobra.Command, args []string) {
		screen(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().String("jd", "", "path to the job description file (required)")
	screenCmd.Flags().String("cv-dir", "", "directory to read CV files from, in addition to the arguments")
	screenCmd.Flags().StringSlice("must-have", nil, "must-have skills, comma separated")
	screenCmd.Flags().String("out", "table", "output format: table or json")
	screenCmd.Flags().Bool("semantic", false, "use the Gemini embedding API for synonym matching")
	screenCmd.Flags().Int("workers", 0, "number of concurrent CV workers (0 uses the default)")

	viper.BindPFlag("semantic", screenCmd.Flags().Lookup("semantic"))
	viper.BindPFlag("workers", screenCmd.Flags().Lookup("workers"))
}

// screen is the main command for the cli.
func screen(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	logger, err := telemetry.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	jdPath, _ := cmd.Flags().GetString("jd")
	if strings.TrimSpace(jdPath) == "" {
		logger.Fatal("a job description file is required", zap.String("hint", "pass --jd path/to/jd.txt"))
	}

	jobDescription, err := readDocument(ctx, jdPath)
	if err != nil {
		logger.Fatal("reading job description", zap.Error(err))
	}

	paths := append([]string(nil), args...)
	if dir, _ := cmd.Flags().GetString("cv-dir"); dir != "" {
		fromDir, err := listCVFiles(dir)
		if err != nil {
			logger.Fatal("reading cv directory", zap.Error(err))
		}
		paths = append(paths, fromDir...)
	}
	if len(paths) == 0 {
		logger.Fatal("no cv files given", zap.String("hint", "pass files as arguments or use --cv-dir"))
	}

	uploads := make([]screenings.CandidateUpload, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Fatal("reading cv file", zap.String("path", path), zap.Error(err))
		}
		uploads = append(uploads, screenings.CandidateUpload{
			FileName: filepath.Base(path),
			Data:     data,
		})
	}

	logger.Info("starting the screening",
		zap.String("version", version),
		zap.Int("cv_files", len(uploads)),
	)

	engineCfg := scoring.DefaultConfig()
	if workers := viper.GetInt("workers"); workers > 0 {
		engineCfg.Workers = workers
	}
	engine := &scoring.Engine{Config: engineCfg, Embedder: buildEmbedder(ctx, logger), Logger: logger}

	mustHave, _ := cmd.Flags().GetStringSlice("must-have")

	svc := screenings.NewService(engine, 0, 0, logger)
	result, err := svc.Screen(ctx, jobDescription, mustHave, uploads)
	if err != nil {
		logger.Fatal("screening failed", zap.Error(err))
	}

	out, _ := cmd.Flags().GetString("out")
	switch strings.ToLower(strings.TrimSpace(out)) {
	case "", "table":
		printTable(result)
	case "json":
		pretty, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			logger.Fatal("encoding result", zap.Error(err))
		}
		fmt.Println(string(pretty))
	default:
		logger.Fatal("unsupported output format", zap.String("out", out))
	}
}

func buildEmbedder(ctx context.Context, logger *zap.Logger) semantic.Embedder {
	if !viper.GetBool("semantic") {
		return nil
	}
	apiKey := viper.GetString("gemini-api-key")
	if apiKey == "" {
		logger.Warn("semantic matching requested but GEMINI_API_KEY is not set, using lexical matching")
		return nil
	}
	client, err := gemini.New(ctx, apiKey, viper.GetString("gemini-model"))
	if err != nil {
		logger.Warn("semantic matching unavailable, using lexical matching", zap.Error(err))
		return nil
	}
	return client
}

func readDocument(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return extract.Text(ctx, data, "", filepath.Base(path))
}

var cvExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
	".text": true,
	".md":   true,
}

func listCVFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !cvExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

func printTable(result scoring.ScreeningResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tNAME\tFILE\tSCORE\tVERDICT\tMATCH")
	for i, cand := range result.Candidates {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.1f\t%s\t%.1f%%\n",
			i+1,
			cand.Profile.Name,
			cand.Profile.FileName,
			cand.Score.Overall,
			cand.Score.Verdict.Label(),
			cand.Match.MatchPercentage,
		)
	}
	w.Flush()

	if len(result.Skipped) > 0 {
		fmt.Println()
		for _, skip := range result.Skipped {
			fmt.Printf("skipped %s: %s\n", skip.FileName, skip.Reason)
		}
	}

	fmt.Println()
	fmt.Printf("candidates: %d  avg score: %.1f", result.Summary.TotalCandidates, result.Summary.AvgFitScore)
	if result.Summary.TopCandidate != "" {
		fmt.Printf("  top: %s (%.1f)", result.Summary.TopCandidate, result.Summary.TopScore)
	}
	fmt.Println()
}
