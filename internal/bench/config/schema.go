// Package config provides suite file parsing and validation.
package config

import (
	"strconv"
	"strings"
	"time"
)

// SuiteConfig is the root configuration of a benchmark suite.
//
// Example YAML:
//
//	name: "Sorting and search"
//	settings:
//	  repeat: 5
//	  warmup: 1
//	  threshold: 1us
//	benchmarks:
//	  - workload: sortable-sequence
//	    size: 2000
//	    variants: [bubble-sort, quick-sort]
//	  - workload: searchable-sequence
//	    seed: 7
type SuiteConfig struct {
	// Name of the suite (for reporting)
	Name string `json:"name" yaml:"name"`

	// Description of the suite (optional)
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Settings apply to every benchmark of the suite
	Settings Settings `json:"settings,omitempty" yaml:"settings,omitempty"`

	// Benchmarks run one after another in file order
	Benchmarks []*BenchmarkConfig `json:"benchmarks" yaml:"benchmarks"`
}

// Settings contains suite-wide runner settings.
type Settings struct {
	// Repeat is the number of timed executions per variant (default 1)
	Repeat int `json:"repeat,omitempty" yaml:"repeat,omitempty"`

	// Warmup is the number of untimed executions before the timed ones
	Warmup int `json:"warmup,omitempty" yaml:"warmup,omitempty"`

	// Verify compares every output with the first variant's (default true)
	Verify *bool `json:"verify,omitempty" yaml:"verify,omitempty"`

	// Threshold is the elapsed time below which a speedup is indeterminate
	Threshold Duration `json:"threshold,omitempty" yaml:"threshold,omitempty"`

	// Seed is the default seed for benchmarks that do not set one
	Seed int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// BenchmarkConfig defines one run: a workload tag, a size, a seed and the
// variants to compare.
type BenchmarkConfig struct {
	// Name labels the benchmark in output; defaults to the workload tag
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Workload is the workload tag (e.g. "sortable-sequence")
	Workload string `json:"workload" yaml:"workload"`

	// Size is the workload size; zero selects the tag's default size
	Size int `json:"size,omitempty" yaml:"size,omitempty"`

	// Seed overrides Settings.Seed
	Seed *int64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	// Variants are run in this order; omitted selects every registered variant
	Variants []string `json:"variants,omitempty" yaml:"variants,omitempty"`
}

// GetVerify returns the verify setting or a default if unset.
func (s Settings) GetVerify(defaultValue bool) bool {
	if s.Verify == nil {
		return defaultValue
	}
	return *s.Verify
}

// SeedOr returns the benchmark's seed or the given default.
func (b *BenchmarkConfig) SeedOr(defaultValue int64) int64 {
	if b.Seed == nil {
		return defaultValue
	}
	return *b.Seed
}

// Label returns the benchmark name, falling back to the workload tag.
func (b *BenchmarkConfig) Label() string {
	if b.Name != "" {
		return b.Name
	}
	return b.Workload
}

// Duration is a time.Duration that can be unmarshaled from JSON/YAML strings.
type Duration time.Duration

// ParseDurationString parses a duration string (e.g., "1us", "500ms", "2s").
// A bare integer is read as seconds and an empty string as zero.
func ParseDurationString(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(s)
}

// GetDuration returns the duration or a default if empty.
func (d Duration) GetDuration(defaultValue time.Duration) time.Duration {
	if d == 0 {
		return defaultValue
	}
	return time.Duration(d)
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Duration(d).String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "null" {
		*d = 0
		return nil
	}

	dur, err := ParseDurationString(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	dur, err := ParseDurationString(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// String returns the duration as a string.
func (d Duration) String() string {
	return time.Duration(d).String()
}
