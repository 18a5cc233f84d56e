package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wesleyorama2/bigo/internal/bench/report"
	"github.com/wesleyorama2/bigo/internal/bench/variant"
	"github.com/wesleyorama2/bigo/internal/bench/workload"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the variants of one workload tag and compare them",
	Long: `Generate one seeded workload for a tag and time each variant against
an independent copy of it, in the order given. The first variant is the
baseline every speedup is computed against.

  bigo run -w sortable-sequence --size 100 --seed 42 --variants bubble-sort,quick-sort
  BIGO_REPEAT=5 bigo run -w matrix-pair --json`,
	RunE: runBenchmark,
}

// runBenchmark runs a single benchmark described by flags and environment.
func runBenchmark(cmd *cobra.Command, _ []string) error {
	tag := variant.Tag(strings.TrimSpace(viper.GetString("workload")))
	if tag == "" {
		return fmt.Errorf("a workload tag is required (see bigo list)")
	}

	seed, err := workload.ParseSeed(viper.GetString("seed"))
	if err != nil {
		return err
	}
	names, _ := cmd.Flags().GetStringSlice("variants")
	settings := runSettings{
		Repeat:    viper.GetInt("repeat"),
		Warmup:    viper.GetInt("warmup"),
		Verify:    viper.GetBool("verify"),
		Threshold: viper.GetDuration("threshold"),
	}

	out := readOutputSettings(cmd)
	s, err := newSession(cmd, out)
	if err != nil {
		return err
	}

	contract, err := s.registry.Contract(tag)
	if err != nil {
		return err
	}
	size := viper.GetInt("size")
	if size == 0 {
		size = contract.DefaultSize
	}
	if !cmd.Flags().Changed("variants") {
		names = s.registry.Names(tag)
	}

	stop, err := startProfiling(out)
	if err != nil {
		return err
	}
	summary, runErr := s.bench(tag, size, seed, names, settings)
	if err := stop(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		return runErr
	}

	return s.emit(cmd, string(tag), []*report.Summary{summary})
}

func init() {
	runCmd.Flags().StringP("workload", "w", "", "Workload tag to benchmark (required)")
	runCmd.Flags().IntP("size", "n", 0, "Workload size (0 selects the tag's default size)")
	runCmd.Flags().String("seed", "42", "Workload seed, decimal or 0x-prefixed")
	runCmd.Flags().StringSlice("variants", nil, "Variants to run in order (default: all variants of the tag)")
	runCmd.Flags().Int("repeat", 1, "Timed executions per variant")
	runCmd.Flags().Int("warmup", 0, "Untimed executions per variant before timing")
	runCmd.Flags().Bool("verify", true, "Check that every variant's output agrees with the first")
	runCmd.Flags().Duration("threshold", report.DefaultThreshold, "Elapsed time below which a speedup is indeterminate")
	addOutputFlags(runCmd)

	for _, name := range []string{"workload", "size", "seed", "repeat", "warmup", "verify", "threshold"} {
		viper.BindPFlag(name, runCmd.Flags().Lookup(name))
	}
}
