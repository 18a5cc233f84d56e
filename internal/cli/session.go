package cli

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wesleyorama2/bigo/internal/bench/algorithms"
	"github.com/wesleyorama2/bigo/internal/bench/alloc"
	"github.com/wesleyorama2/bigo/internal/bench/output"
	"github.com/wesleyorama2/bigo/internal/bench/report"
	"github.com/wesleyorama2/bigo/internal/bench/runner"
	"github.com/wesleyorama2/bigo/internal/bench/telemetry"
	"github.com/wesleyorama2/bigo/internal/bench/variant"
)

// runSettings are the runner settings shared by run and suite.
type runSettings struct {
	Repeat    int
	Warmup    int
	Verify    bool
	Threshold time.Duration
}

// outputSettings select where summaries are written.
type outputSettings struct {
	JSON        bool
	JSONPath    string
	HTMLPath    string
	MetricsPath string
	CPUProfile  string
	MemProfile  string
	Quiet       bool
}

// addOutputFlags registers the output flags shared by run and suite.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Print the JSON record instead of the console summary")
	cmd.Flags().StringP("output", "o", "", "Write the JSON record to a file")
	cmd.Flags().String("html", "", "Write an HTML report to a file")
	cmd.Flags().String("metrics-file", "", "Write Prometheus metrics in text exposition format to a file")
	cmd.Flags().String("cpuprofile", "", "Write a pprof CPU profile to a file")
	cmd.Flags().String("memprofile", "", "Write a pprof heap profile to a file")
	cmd.Flags().BoolP("quiet", "q", false, "Print only the fastest variant of each run")
}

func readOutputSettings(cmd *cobra.Command) outputSettings {
	var o outputSettings
	o.JSON, _ = cmd.Flags().GetBool("json")
	o.JSONPath, _ = cmd.Flags().GetString("output")
	o.HTMLPath, _ = cmd.Flags().GetString("html")
	o.MetricsPath, _ = cmd.Flags().GetString("metrics-file")
	o.CPUProfile, _ = cmd.Flags().GetString("cpuprofile")
	o.MemProfile, _ = cmd.Flags().GetString("memprofile")
	o.Quiet, _ = cmd.Flags().GetBool("quiet")
	return o
}

// session holds what one command invocation needs to run benchmarks and
// report on them.
type session struct {
	registry *variant.Registry
	recorder *telemetry.Recorder
	logger   *slog.Logger
	console  *output.Console
	out      outputSettings
}

func newSession(cmd *cobra.Command, out outputSettings) (*session, error) {
	registry, err := algorithms.NewDefaultRegistry(alloc.NewTracker())
	if err != nil {
		return nil, fmt.Errorf("failed to register variants: %w", err)
	}

	recorder, err := telemetry.NewRecorder(telemetry.DefaultConfig())
	if err != nil {
		return nil, err
	}

	return &session{
		registry: registry,
		recorder: recorder,
		logger:   newLogger(cmd.ErrOrStderr(), viper.GetBool("verbose")),
		console: output.NewConsole(output.ConsoleConfig{
			Writer:  cmd.OutOrStdout(),
			Quiet:   out.Quiet,
			NoColor: viper.GetBool("no-color"),
		}),
		out: out,
	}, nil
}

// bench runs one benchmark and summarizes it. Determinate speedups are
// exported to the recorder.
func (s *session) bench(tag variant.Tag, size int, seed int64, names []string, settings runSettings) (*report.Summary, error) {
	r, err := runner.New(s.registry, runner.Options{
		Repeat:   settings.Repeat,
		Warmup:   settings.Warmup,
		Verify:   settings.Verify,
		Logger:   s.logger,
		Observer: s.recorder,
	})
	if err != nil {
		return nil, err
	}

	rep, err := r.RunAll(tag, size, seed, names)
	if err != nil {
		return nil, err
	}

	summary := report.Summarize(rep, settings.Threshold)
	for _, sp := range summary.Speedups {
		if sp.Determinate() {
			s.recorder.ObserveSpeedup(string(tag), sp.Baseline, sp.Variant, sp.Ratio)
		}
	}
	return summary, nil
}

// emit writes the summaries to every selected destination.
func (s *session) emit(cmd *cobra.Command, title string, summaries []*report.Summary) error {
	if s.out.JSON {
		if err := report.WriteJSON(cmd.OutOrStdout(), summaries...); err != nil {
			return err
		}
	} else {
		for _, summary := range summaries {
			s.console.PrintSummary(summary)
		}
	}

	if s.out.JSONPath != "" {
		if err := report.WriteJSONFile(s.out.JSONPath, summaries...); err != nil {
			return err
		}
		s.logger.Info("JSON record written", "path", s.out.JSONPath)
	}

	if s.out.HTMLPath != "" {
		if err := report.GenerateHTML(title, summaries, s.out.HTMLPath); err != nil {
			return err
		}
		s.logger.Info("HTML report written", "path", s.out.HTMLPath)
	}

	if s.out.MetricsPath != "" {
		if err := s.recorder.WriteTextfile(s.out.MetricsPath); err != nil {
			return err
		}
		s.logger.Info("metrics written", "path", s.out.MetricsPath)
	}
	return nil
}

// startProfiling starts a CPU profile if requested. The returned function
// stops it and writes the heap profile if requested.
func startProfiling(out outputSettings) (func() error, error) {
	var cpu *os.File
	if out.CPUProfile != "" {
		f, err := os.Create(out.CPUProfile)
		if err != nil {
			return nil, fmt.Errorf("failed to create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to start CPU profile: %w", err)
		}
		cpu = f
	}

	return func() error {
		if cpu != nil {
			pprof.StopCPUProfile()
			if err := cpu.Close(); err != nil {
				return fmt.Errorf("failed to write CPU profile: %w", err)
			}
		}
		if out.MemProfile == "" {
			return nil
		}

		f, err := os.Create(out.MemProfile)
		if err != nil {
			return fmt.Errorf("failed to create heap profile: %w", err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("failed to write heap profile: %w", err)
		}
		return nil
	}, nil
}
