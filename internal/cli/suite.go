package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/bigo/internal/bench/config"
	"github.com/wesleyorama2/bigo/internal/bench/report"
	"github.com/wesleyorama2/bigo/internal/bench/variant"
)

var suiteCmd = &cobra.Command{
	Use:   "suite",
	Short: "Run the benchmarks of a YAML or JSON suite file in sequence",
	Long: `Run every benchmark listed in a suite file, one after another, and
report them together.

  bigo suite -c suite.yaml
  bigo suite -c suite.json --html report.html --metrics-file bigo.prom`,
	RunE: runSuite,
}

// runSuite loads a suite file and runs its benchmarks in file order.
func runSuite(cmd *cobra.Command, _ []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		return fmt.Errorf("a suite file is required (--config)")
	}

	suite, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load suite: %w", err)
	}

	out := readOutputSettings(cmd)
	s, err := newSession(cmd, out)
	if err != nil {
		return err
	}
	if err := suite.Resolve(s.registry); err != nil {
		return fmt.Errorf("invalid suite: %w", err)
	}

	settings := runSettings{
		Repeat:    suite.Settings.Repeat,
		Warmup:    suite.Settings.Warmup,
		Verify:    suite.Settings.GetVerify(true),
		Threshold: suite.Settings.Threshold.GetDuration(report.DefaultThreshold),
	}

	stop, err := startProfiling(out)
	if err != nil {
		return err
	}

	var summaries []*report.Summary
	var runErr error
	for i, b := range suite.Benchmarks {
		s.logger.Debug("running benchmark", "index", i, "name", b.Label(), "size", b.Size)
		summary, err := s.bench(variant.Tag(b.Workload), b.Size, b.SeedOr(suite.Settings.Seed), b.Variants, settings)
		if err != nil {
			runErr = fmt.Errorf("benchmark %s failed: %w", b.Label(), err)
			break
		}
		summaries = append(summaries, summary)
	}
	if err := stop(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		return runErr
	}

	title := suite.Name
	if title == "" {
		title = configFile
	}
	return s.emit(cmd, title, summaries)
}

func init() {
	suiteCmd.Flags().StringP("config", "c", "", "Suite file (.yaml, .yml or .json)")
	addOutputFlags(suiteCmd)
}
