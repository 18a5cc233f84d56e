package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/wesleyorama2/bigo/internal/bench"
)

// resetFlags restores every flag to its default so commands can be executed
// repeatedly within one test binary.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			sv.Replace(nil)
		} else {
			f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(RootCmd)

	var stdout, stderr bytes.Buffer
	RootCmd.SetOut(&stdout)
	RootCmd.SetErr(&stderr)
	RootCmd.SetArgs(append(args, "--no-color"))
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
	})

	err := RootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestListCommand(t *testing.T) {
	out, _, err := executeCommand(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "sortable-sequence")
	assert.Contains(t, out, "quick-sort")
	assert.Contains(t, out, "allocation")
	assert.Contains(t, out, "nested-allocation")
}

func TestRunCommand_JSON(t *testing.T) {
	out, _, err := executeCommand(t, "run",
		"-w", "sortable-sequence", "--size", "100", "--seed", "42",
		"--variants", "bubble-sort,quick-sort", "--json")
	require.NoError(t, err)
	require.True(t, gjson.Valid(out), "output is not JSON: %s", out)

	assert.Equal(t, "sortable-sequence", gjson.Get(out, "tag").String())
	assert.Equal(t, int64(100), gjson.Get(out, "size").Int())
	assert.Equal(t, int64(42), gjson.Get(out, "seed").Int())
	assert.Equal(t, int64(2), gjson.Get(out, "measurements.#").Int())
	assert.Equal(t, "bubble-sort", gjson.Get(out, "measurements.0.variant").String())
	assert.Equal(t, "quick-sort", gjson.Get(out, "measurements.1.variant").String())
	assert.True(t, gjson.Get(out, "measurements.1.agrees").Bool())
	assert.Equal(t, "bubble-sort", gjson.Get(out, "speedups.0.baseline").String())
	assert.NotEmpty(t, gjson.Get(out, "runId").String())
}

func TestRunCommand_Console(t *testing.T) {
	out, _, err := executeCommand(t, "run",
		"-w", "fibonacci", "--size", "15", "--variants", "fib-recursive,fib-iterative")
	require.NoError(t, err)

	assert.Contains(t, out, "fibonacci - scalar")
	assert.Contains(t, out, "fib-recursive")
	assert.Contains(t, out, "fib-iterative")
	assert.Contains(t, out, "all agree")
	assert.NotContains(t, out, "\033[")
}

func TestRunCommand_DefaultVariants(t *testing.T) {
	out, _, err := executeCommand(t, "run", "-w", "searchable-sequence", "--size", "200", "--json")
	require.NoError(t, err)

	assert.Equal(t, int64(2), gjson.Get(out, "measurements.#").Int())
	assert.Equal(t, "linear-search", gjson.Get(out, "measurements.0.variant").String())
}

func TestRunCommand_EmptyVariantList(t *testing.T) {
	out, _, err := executeCommand(t, "run", "-w", "sortable-sequence", "--size", "10", "--variants=", "--json")
	require.NoError(t, err)

	assert.Equal(t, int64(0), gjson.Get(out, "measurements.#").Int())
	assert.Equal(t, int64(0), gjson.Get(out, "speedups.#").Int())
}

func TestRunCommand_EnvOverride(t *testing.T) {
	t.Setenv("BIGO_REPEAT", "3")
	t.Setenv("BIGO_SEED", "0x10")

	out, _, err := executeCommand(t, "run", "-w", "prime-count", "--size", "100",
		"--variants", "sieve", "--json")
	require.NoError(t, err)

	assert.Equal(t, int64(3), gjson.Get(out, "repeat").Int())
	assert.Equal(t, int64(16), gjson.Get(out, "seed").Int())
	assert.Equal(t, int64(3), gjson.Get(out, "measurements.0.timing.count").Int())
}

func TestRunCommand_VerifyFromEnv(t *testing.T) {
	t.Setenv("BIGO_VERIFY", "false")

	out, _, err := executeCommand(t, "run", "-w", "sortable-sequence", "--size", "20",
		"--variants", "insertion-sort,std-sort", "--json")
	require.NoError(t, err)

	assert.False(t, gjson.Get(out, "measurements.0.agrees").Exists(), "outputs must not be compared")
	assert.False(t, gjson.Get(out, "measurements.1.agrees").Exists(), "outputs must not be compared")

	out, _, err = executeCommand(t, "run", "-w", "sortable-sequence", "--size", "20",
		"--variants", "insertion-sort,std-sort", "--verify", "--json")
	require.NoError(t, err)
	assert.True(t, gjson.Get(out, "measurements.1.agrees").Bool(), "an explicit flag overrides the environment")
}

func TestRunCommand_Errors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		target error
	}{
		{
			name:   "unknown variant",
			args:   []string{"run", "-w", "sortable-sequence", "--size", "10", "--variants", "quick-sort,bogo-sort"},
			target: bench.ErrUnknownVariant,
		},
		{
			name:   "unknown tag",
			args:   []string{"run", "-w", "graph-coloring"},
			target: bench.ErrUnknownVariant,
		},
		{
			name:   "invalid seed",
			args:   []string{"run", "-w", "sortable-sequence", "--seed", "forty-two"},
			target: bench.ErrInvalidParameter,
		},
		{
			name:   "negative size",
			args:   []string{"run", "-w", "sortable-sequence", "--size", "-5"},
			target: bench.ErrInvalidParameter,
		},
		{
			name:   "fibonacci index out of range",
			args:   []string{"run", "-w", "fibonacci", "--size", "60", "--variants", "fib-recursive"},
			target: bench.ErrInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "error %v is not %v", err, tt.target)
			assert.Empty(t, out, "no report should be printed on failure")
		})
	}
}

func TestRunCommand_MissingWorkload(t *testing.T) {
	_, _, err := executeCommand(t, "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workload tag is required")
}

func TestRunCommand_Files(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "report.json")
	htmlPath := filepath.Join(dir, "report.html")
	metricsPath := filepath.Join(dir, "bigo.prom")
	cpuPath := filepath.Join(dir, "cpu.pprof")
	memPath := filepath.Join(dir, "mem.pprof")

	_, _, err := executeCommand(t, "run",
		"-w", "allocation", "--size", "50", "--quiet",
		"--output", jsonPath, "--html", htmlPath, "--metrics-file", metricsPath,
		"--cpuprofile", cpuPath, "--memprofile", memPath)
	require.NoError(t, err)

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "allocation", gjson.GetBytes(data, "tag").String())
	assert.Equal(t, "bytes", gjson.GetBytes(data, "metricName").String())

	html, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "loop-allocation")

	metrics, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `bigo_bench_runs_total{status="ok",tag="allocation"} 1`)
	assert.Contains(t, string(metrics), "bigo_bench_variant_duration_seconds")

	for _, p := range []string{cpuPath, memPath} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.NotZero(t, info.Size(), "%s is empty", p)
	}
}

func TestSuiteCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	content := `
name: "CLI suite"
settings:
  repeat: 2
  seed: 7
benchmarks:
  - workload: sortable-sequence
    size: 64
    variants: [insertion-sort, std-sort]
  - workload: text-match
    size: 500
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, _, err := executeCommand(t, "suite", "-c", path, "--json")
	require.NoError(t, err)

	assert.Equal(t, int64(2), gjson.Get(out, "#").Int())
	assert.Equal(t, "sortable-sequence", gjson.Get(out, "0.tag").String())
	assert.Equal(t, int64(7), gjson.Get(out, "0.seed").Int())
	assert.Equal(t, int64(2), gjson.Get(out, "0.repeat").Int())
	assert.Equal(t, "text-match", gjson.Get(out, "1.tag").String())
	assert.Equal(t, int64(2), gjson.Get(out, "1.measurements.#").Int())
	assert.True(t, gjson.Get(out, "1.measurements.1.agrees").Bool())
}

func TestSuiteCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown,
		[]byte("benchmarks:\n  - workload: sortable-sequence\n    variants: [bogo-sort]\n"), 0644))

	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"missing config", []string{"suite"}, "suite file is required"},
		{"config not found", []string{"suite", "-c", filepath.Join(dir, "missing.yaml")}, "not found"},
		{"unknown variant", []string{"suite", "-c", unknown}, "unknown variant: bogo-sort"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	newLogger(&buf, true).Debug("shown", "tag", "fibonacci")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "tag=fibonacci")
}
