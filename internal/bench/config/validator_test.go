package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/wesleyorama2/bigo/internal/bench/algorithms"
	"github.com/wesleyorama2/bigo/internal/bench/alloc"
	"github.com/wesleyorama2/bigo/internal/bench/variant"
)

func int64Ptr(v int64) *int64 { return &v }

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{
			name:     "with field",
			err:      &ValidationError{Field: "settings.repeat", Message: "cannot be negative"},
			expected: "validation error on field 'settings.repeat': cannot be negative",
		},
		{
			name:     "without field",
			err:      &ValidationError{Message: "general error"},
			expected: "validation error: general error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := &ValidationErrors{}
	if got := errs.Error(); got != "no validation errors" {
		t.Errorf("Error() = %v", got)
	}

	errs.Add("a", "first")
	if got := errs.Error(); got != "validation error on field 'a': first" {
		t.Errorf("Error() = %v", got)
	}

	errs.Add("b", "second")
	got := errs.Error()
	if !strings.HasPrefix(got, "2 validation errors:") {
		t.Errorf("Error() = %v, want a 2 error summary", got)
	}
	if !strings.Contains(got, "2. validation error on field 'b': second") {
		t.Errorf("Error() = %v, want the second error listed", got)
	}
}

func TestSuiteConfig_Validate(t *testing.T) {
	tests := []struct {
		name       string
		config     SuiteConfig
		wantErr    bool
		wantFields []string
	}{
		{
			name: "valid",
			config: SuiteConfig{
				Benchmarks: []*BenchmarkConfig{{Workload: "fibonacci", Size: 20}},
			},
		},
		{
			name:       "no benchmarks",
			config:     SuiteConfig{},
			wantErr:    true,
			wantFields: []string{"benchmarks"},
		},
		{
			name: "negative settings",
			config: SuiteConfig{
				Settings:   Settings{Repeat: -1, Warmup: -2, Threshold: -1},
				Benchmarks: []*BenchmarkConfig{{Workload: "fibonacci"}},
			},
			wantErr:    true,
			wantFields: []string{"settings.repeat", "settings.warmup", "settings.threshold"},
		},
		{
			name: "bad benchmark",
			config: SuiteConfig{
				Benchmarks: []*BenchmarkConfig{
					{Workload: "sortable-sequence"},
					{Workload: " ", Size: -5, Variants: []string{"a", "", "a"}},
				},
			},
			wantErr: true,
			wantFields: []string{
				"benchmarks[1].workload",
				"benchmarks[1].size",
				"benchmarks[1].variants[1]",
				"benchmarks[1].variants[2]",
			},
		},
		{
			name: "explicit empty variant list",
			config: SuiteConfig{
				Benchmarks: []*BenchmarkConfig{{Workload: "sortable-sequence", Variants: []string{}}},
			},
			wantErr:    true,
			wantFields: []string{"benchmarks[0].variants"},
		},
		{
			name:       "nil benchmark",
			config:     SuiteConfig{Benchmarks: []*BenchmarkConfig{nil}},
			wantErr:    true,
			wantFields: []string{"benchmarks[0]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}

			var verrs *ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("error type = %T, want *ValidationErrors", err)
			}
			fields := make(map[string]bool)
			for _, e := range verrs.Errors {
				fields[e.Field] = true
			}
			for _, f := range tt.wantFields {
				if !fields[f] {
					t.Errorf("missing error on field %s (got %v)", f, err)
				}
			}
		})
	}
}

func newRegistry(t *testing.T) *variant.Registry {
	t.Helper()
	reg, err := algorithms.NewDefaultRegistry(alloc.NewTracker())
	if err != nil {
		t.Fatalf("NewDefaultRegistry() error = %v", err)
	}
	return reg
}

func TestSuiteConfig_Resolve(t *testing.T) {
	reg := newRegistry(t)
	config := &SuiteConfig{
		Settings: Settings{Seed: 1},
		Benchmarks: []*BenchmarkConfig{
			{Workload: "sortable-sequence"},
			{Workload: "fibonacci", Size: 20, Seed: int64Ptr(9), Variants: []string{"fib-iterative"}},
		},
	}

	if err := config.Resolve(reg); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	sorting := config.Benchmarks[0]
	contract, _ := reg.Contract("sortable-sequence")
	if sorting.Size != contract.DefaultSize {
		t.Errorf("Size = %v, want default %v", sorting.Size, contract.DefaultSize)
	}
	want := reg.Names("sortable-sequence")
	if strings.Join(sorting.Variants, ",") != strings.Join(want, ",") {
		t.Errorf("Variants = %v, want %v", sorting.Variants, want)
	}

	fib := config.Benchmarks[1]
	if fib.Size != 20 {
		t.Errorf("Size = %v, want 20", fib.Size)
	}
	if len(fib.Variants) != 1 || fib.Variants[0] != "fib-iterative" {
		t.Errorf("Variants = %v, want [fib-iterative]", fib.Variants)
	}
	if fib.SeedOr(config.Settings.Seed) != 9 {
		t.Errorf("seed = %v, want 9", fib.SeedOr(config.Settings.Seed))
	}
}

func TestSuiteConfig_ResolveUnknown(t *testing.T) {
	config := &SuiteConfig{
		Benchmarks: []*BenchmarkConfig{
			{Workload: "graph-coloring"},
			{Workload: "sortable-sequence", Variants: []string{"quick-sort", "bogo-sort"}},
		},
	}

	err := config.Resolve(newRegistry(t))
	if err == nil {
		t.Fatal("Resolve() should fail on unknown tags and variants")
	}
	msg := err.Error()
	if !strings.Contains(msg, "unknown workload tag: graph-coloring") {
		t.Errorf("error = %v, want unknown workload tag", msg)
	}
	if !strings.Contains(msg, "benchmarks[1].variants[1]") || !strings.Contains(msg, "bogo-sort") {
		t.Errorf("error = %v, want unknown variant bogo-sort", msg)
	}
}

func TestExampleSuite(t *testing.T) {
	config, err := LoadConfig("../../../examples/complexity-suite.yaml")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if err := config.Resolve(newRegistry(t)); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if len(config.Benchmarks) != 9 {
		t.Errorf("len(Benchmarks) = %d, want 9", len(config.Benchmarks))
	}
	if config.Settings.Threshold.GetDuration(0) != time.Microsecond {
		t.Errorf("Threshold = %v, want 1µs", config.Settings.Threshold)
	}
	for _, b := range config.Benchmarks {
		if b.Size <= 0 || len(b.Variants) == 0 {
			t.Errorf("%s: size %d, variants %v", b.Label(), b.Size, b.Variants)
		}
	}
}
