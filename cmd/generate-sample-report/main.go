package main

import (
	"fmt"
	"os"

	"github.com/wesleyorama2/bigo/internal/bench/algorithms"
	"github.com/wesleyorama2/bigo/internal/bench/alloc"
	"github.com/wesleyorama2/bigo/internal/bench/report"
	"github.com/wesleyorama2/bigo/internal/bench/runner"
	"github.com/wesleyorama2/bigo/internal/bench/variant"
)

// sampleRuns are small enough to finish in well under a second.
var sampleRuns = []struct {
	tag  variant.Tag
	size int
}{
	{algorithms.TagSortable, 500},
	{algorithms.TagTextMatch, 20000},
	{algorithms.TagMatrixPair, 40},
	{algorithms.TagPrimeCount, 2000},
}

func main() {
	outputPath := "sample-report.html"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	summaries, err := createSampleSummaries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := report.GenerateHTML("Sample complexity comparison", summaries, outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sample report generated: %s\n", outputPath)
}

func createSampleSummaries() ([]*report.Summary, error) {
	registry, err := algorithms.NewDefaultRegistry(alloc.NewTracker())
	if err != nil {
		return nil, err
	}

	r, err := runner.New(registry, runner.Options{Repeat: 3, Warmup: 1, Verify: true})
	if err != nil {
		return nil, err
	}

	summaries := make([]*report.Summary, 0, len(sampleRuns))
	for _, run := range sampleRuns {
		rep, err := r.RunAll(run.tag, run.size, 42, registry.Names(run.tag))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", run.tag, err)
		}
		summaries = append(summaries, report.Summarize(rep, report.DefaultThreshold))
	}
	return summaries, nil
}
