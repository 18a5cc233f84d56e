package config

import (
	"fmt"
	"strings"

	"github.com/wesleyorama2/bigo/internal/bench/variant"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, &ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate checks the suite for values no registry lookup is needed to
// reject.
//
// Returns nil if valid, or a ValidationErrors containing all validation errors.
func (c *SuiteConfig) Validate() error {
	errs := &ValidationErrors{}

	if len(c.Benchmarks) == 0 {
		errs.Add("benchmarks", "at least one benchmark is required")
	}

	validateSettings(&c.Settings, errs)

	for i, b := range c.Benchmarks {
		validateBenchmark(fmt.Sprintf("benchmarks[%d]", i), b, errs)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateSettings validates suite-wide settings.
func validateSettings(s *Settings, errs *ValidationErrors) {
	if s.Repeat < 0 {
		errs.Add("settings.repeat", "cannot be negative")
	}
	if s.Warmup < 0 {
		errs.Add("settings.warmup", "cannot be negative")
	}
	if s.Threshold < 0 {
		errs.Add("settings.threshold", "cannot be negative")
	}
}

// validateBenchmark validates a single benchmark entry.
func validateBenchmark(prefix string, b *BenchmarkConfig, errs *ValidationErrors) {
	if b == nil {
		errs.Add(prefix, "benchmark cannot be empty")
		return
	}
	if strings.TrimSpace(b.Workload) == "" {
		errs.Add(prefix+".workload", "workload tag is required")
	}
	if b.Size < 0 {
		errs.Add(prefix+".size", "cannot be negative")
	}

	if b.Variants != nil && len(b.Variants) == 0 {
		errs.Add(prefix+".variants", "must name at least one variant; omit it to run every variant")
	}

	seen := make(map[string]bool, len(b.Variants))
	for i, name := range b.Variants {
		field := fmt.Sprintf("%s.variants[%d]", prefix, i)
		switch {
		case strings.TrimSpace(name) == "":
			errs.Add(field, "variant name cannot be empty")
		case seen[name]:
			errs.Add(field, fmt.Sprintf("duplicate variant: %s", name))
		}
		seen[name] = true
	}
}

// Resolve checks every benchmark against reg and fills in defaults: a zero
// size becomes the tag's default size and an omitted variant list becomes
// every registered variant of the tag.
func (c *SuiteConfig) Resolve(reg *variant.Registry) error {
	errs := &ValidationErrors{}

	for i, b := range c.Benchmarks {
		if b == nil {
			continue
		}
		prefix := fmt.Sprintf("benchmarks[%d]", i)
		tag := variant.Tag(b.Workload)

		contract, err := reg.Contract(tag)
		if err != nil {
			errs.Add(prefix+".workload", fmt.Sprintf("unknown workload tag: %s", b.Workload))
			continue
		}

		if b.Size == 0 {
			b.Size = contract.DefaultSize
		}

		if b.Variants == nil {
			b.Variants = reg.Names(tag)
			continue
		}
		for j, name := range b.Variants {
			if _, err := reg.Lookup(tag, name); err != nil {
				errs.Add(fmt.Sprintf("%s.variants[%d]", prefix, j), fmt.Sprintf("unknown variant: %s", name))
			}
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
