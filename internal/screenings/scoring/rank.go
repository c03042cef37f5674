package scoring

import "sort"

// Rank sorts candidate results by overall score descending. The sort is
// stable: ties keep their original submission order.
func Rank(results []CandidateResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score.Overall > results[j].Score.Overall
	})
}

// Summarize computes aggregate statistics over ranked results. Zero
// candidates produce a zero-valued summary, not an error.
func Summarize(results []CandidateResult) Summary {
	summary := Summary{
		TotalCandidates: len(results),
		VerdictCounts: map[Verdict]int{
			VerdictExcellent:    0,
			VerdictGood:         0,
			VerdictModerate:     0,
			VerdictBelowAverage: 0,
			VerdictPoor:         0,
		},
	}
	if len(results) == 0 {
		return summary
	}

	summary.TopCandidate = results[0].Profile.Name
	summary.TopScore = results[0].Score.Overall

	total := 0.0
	for _, result := range results {
		total += result.Score.Overall
		summary.VerdictCounts[result.Score.Verdict]++
	}
	summary.AvgFitScore = round1(total / float64(len(results)))
	return summary
}
