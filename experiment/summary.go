package experiment

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
)

// Summary aggregates the recorded trials of one configuration, in milliseconds.
type Summary struct {
	ExperimentIndex int
	Algorithm       string
	DataType        string
	Size            int
	Structure       string
	Trials          int
	Mean            float64
	Min             float64
	Max             float64
}

// Summarize groups results by configuration, ordered by experiment index.
func Summarize(results []TrialResult) []Summary {
	groups := lo.GroupBy(results, func(r TrialResult) int { return r.ExperimentIndex })
	indexes := lo.Keys(groups)
	slices.Sort(indexes)

	summaries := make([]Summary, 0, len(indexes))
	for _, idx := range indexes {
		group := groups[idx]
		ms := lo.Map(group, func(r TrialResult, _ int) float64 { return r.Millis() })
		first := group[0]
		summaries = append(summaries, Summary{
			ExperimentIndex: idx,
			Algorithm:       first.Algorithm,
			DataType:        first.DataType,
			Size:            first.Size,
			Structure:       first.Structure,
			Trials:          len(group),
			Mean:            lo.Mean(ms),
			Min:             lo.Min(ms),
			Max:             lo.Max(ms),
		})
	}
	return summaries
}

// WriteSummary prints summaries as a table.
func WriteSummary(w io.Writer, summaries []Summary) {
	trials := lo.SumBy(summaries, func(s Summary) int { return s.Trials })
	fmt.Fprintf(w, "\n--- Summary: %s configurations, %s recorded trials ---\n",
		humanize.Comma(int64(len(summaries))), humanize.Comma(int64(trials)))
	fmt.Fprintf(w, "%-5s | %-24s | %-6s | %8s | %-11s | %10s | %10s | %10s\n",
		"#", "Algorithm", "Type", "Size", "Structure", "Mean(ms)", "Min(ms)", "Max(ms)")
	fmt.Fprintln(w, strings.Repeat("-", 104))
	for _, s := range summaries {
		fmt.Fprintf(w, "%-5d | %-24s | %-6s | %8s | %-11s | %10.3f | %10.3f | %10.3f\n",
			s.ExperimentIndex, s.Algorithm, s.DataType, humanize.Comma(int64(s.Size)), s.Structure,
			s.Mean, s.Min, s.Max)
	}
}
