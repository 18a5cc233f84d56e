// Package output renders benchmark summaries and registry listings for the
// terminal.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/wesleyorama2/bigo/internal/bench/format"
	"github.com/wesleyorama2/bigo/internal/bench/report"
	"github.com/wesleyorama2/bigo/internal/bench/runner"
	"github.com/wesleyorama2/bigo/internal/bench/variant"
)

const (
	boxHorizontal = "━"
	headerWidth   = 56
	columnGap     = "  "
)

// Console writes human-readable summaries.
type Console struct {
	writer    io.Writer
	isTTY     bool
	useColors bool
	quiet     bool
	colors    *ColorScheme
}

// ConsoleConfig contains configuration for Console.
type ConsoleConfig struct {
	Writer      io.Writer
	Quiet       bool
	NoColor     bool
	ForceColors bool
	ForceTTY    bool
}

// NewConsole creates a console writer. NoColor wins over ForceColors.
func NewConsole(config ConsoleConfig) *Console {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}

	isTTY := config.ForceTTY || isTerminal(config.Writer)
	useColors := !config.NoColor && (config.ForceColors || (isTTY && supportsColors()))

	colors := NoColorScheme()
	if useColors {
		colors = ForcedColorScheme()
	}

	return &Console{
		writer:    config.Writer,
		isTTY:     isTTY,
		useColors: useColors,
		quiet:     config.Quiet,
		colors:    colors,
	}
}

// isTerminal checks if the writer is a terminal.
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return checkIsTerminal(f)
	}
	return false
}

// supportsColors checks the environment for colour preferences.
func supportsColors() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

// IsTTY returns whether the output is a terminal.
func (c *Console) IsTTY() bool {
	return c.isTTY
}

// UseColors returns whether escape codes are written.
func (c *Console) UseColors() bool {
	return c.useColors
}

// PrintSummary prints one benchmark run: a header, a row per variant and
// the verification status.
func (c *Console) PrintSummary(s *report.Summary) {
	if s == nil || s.Report == nil {
		return
	}
	fastest, hasFastest := s.Fastest()

	if c.quiet {
		if hasFastest {
			c.writeln(fmt.Sprintf("%s %s %s", s.Tag, fastest.Variant, format.Elapsed(fastest.Elapsed)))
		}
		if hasAgreement(s.Report) && !s.Verified() {
			c.writeln(c.colors.Disagree.Sprint("OUTPUTS DIFFER"))
		}
		return
	}

	line := strings.Repeat(boxHorizontal, headerWidth)
	c.writeln("")
	c.writeln(c.colors.Header.Sprint(line))
	c.writeln(c.colors.Title.Sprint(fmt.Sprintf("%s - %s, n=%s, seed %d",
		s.Tag, s.Kind, format.Count(uint64(s.Size)), s.Seed)))
	c.writeln(c.colors.Header.Sprint(line))
	c.writeln("")

	if len(s.Measurements) == 0 {
		c.writeln(c.colors.Muted.Sprint("No variants were run."))
		c.writeln("")
		return
	}

	metricName := s.MetricName
	if metricName == "" {
		metricName = "metric"
	}
	rows := [][]string{{
		c.colors.Label.Sprint("Variant"),
		c.colors.Label.Sprint("Complexity"),
		c.colors.Label.Sprint("Mean"),
		c.colors.Label.Sprint("P50"),
		c.colors.Label.Sprint("P99"),
		c.colors.Label.Sprint(metricName),
		c.colors.Label.Sprint("Allocs"),
		c.colors.Label.Sprint("Speedup"),
		c.colors.Label.Sprint("Output"),
	}}
	for _, m := range s.Measurements {
		name := c.colors.Variant.Sprint(m.Variant)
		if hasFastest && m.Variant == fastest.Variant && len(s.Measurements) > 1 {
			name = c.colors.Fastest.Sprint(m.Variant)
		}
		rows = append(rows, []string{
			name,
			c.colors.Complexity.Sprint(string(m.Complexity)),
			c.colors.Timing.Sprint(format.Elapsed(m.Elapsed)),
			format.Elapsed(m.Timing.P50),
			format.Elapsed(m.Timing.P99),
			format.Metric(m.Metric),
			format.Count(m.Allocs),
			c.speedupCell(s, m.Variant),
			c.agreementCell(m),
		})
	}
	c.writeTable(rows)
	c.writeln("")

	c.writeln(fmt.Sprintf("Repeat:   %d (warmup %d)", s.Repeat, s.Warmup))
	c.writeln(fmt.Sprintf("Duration: %s", format.Elapsed(s.Duration)))
	if hasFastest && len(s.Measurements) > 1 {
		c.writeln(fmt.Sprintf("Fastest:  %s", c.colors.Fastest.Sprint(fastest.Variant)))
	}
	switch {
	case !hasAgreement(s.Report):
		c.writeln(fmt.Sprintf("Outputs:  %s", c.colors.Muted.Sprint("not verified")))
	case s.Verified():
		c.writeln(fmt.Sprintf("Outputs:  %s", c.colors.Agree.Sprint("all agree ✓")))
	default:
		c.writeln(fmt.Sprintf("Outputs:  %s", c.colors.Disagree.Sprint("differ ✗")))
	}
	c.writeln("")
}

func (c *Console) speedupCell(s *report.Summary, name string) string {
	sp, ok := s.Speedup(name)
	if !ok {
		return c.colors.Muted.Sprint("baseline")
	}
	if !sp.Determinate() {
		return c.colors.Muted.Sprint("indeterminate")
	}
	return fmt.Sprintf("%.2fx", sp.Ratio)
}

func (c *Console) agreementCell(m runner.Measurement) string {
	switch {
	case m.Agrees == nil:
		return c.colors.Muted.Sprint("-")
	case *m.Agrees:
		return c.colors.Agree.Sprint("✓")
	default:
		return c.colors.Disagree.Sprint("✗")
	}
}

func hasAgreement(r *runner.Report) bool {
	for _, m := range r.Measurements {
		if m.Agrees != nil {
			return true
		}
	}
	return false
}

// PrintList prints every tag with its contract and variants.
func (c *Console) PrintList(reg *variant.Registry) {
	for _, tag := range reg.Tags() {
		contract, err := reg.Contract(tag)
		if err != nil {
			continue
		}
		c.writeln(c.colors.Title.Sprint(string(tag)))
		if contract.Description != "" {
			c.writeln("  " + contract.Description)
		}
		c.writeln(c.colors.Muted.Sprint(fmt.Sprintf("  kind %s, metric %s, default size %s",
			contract.Kind, contract.MetricName, format.Count(uint64(contract.DefaultSize)))))

		rows := make([][]string, 0, len(reg.Variants(tag)))
		for _, v := range reg.Variants(tag) {
			rows = append(rows, []string{
				"  " + c.colors.Variant.Sprint(v.Name),
				c.colors.Complexity.Sprint(string(v.Complexity)),
			})
		}
		c.writeTable(rows)
		c.writeln("")
	}
}

// writeTable writes rows with columns padded to their widest visible cell.
func (c *Console) writeTable(rows [][]string) {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], visibleWidth(cell))
		}
	}

	for _, row := range rows {
		var b strings.Builder
		for i, cell := range row {
			b.WriteString(cell)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-visibleWidth(cell)))
				b.WriteString(columnGap)
			}
		}
		c.writeln(b.String())
	}
}

// writeln writes to the output with a newline.
func (c *Console) writeln(s string) {
	fmt.Fprintln(c.writer, s)
}

// Helper functions

func visibleWidth(s string) int {
	return utf8.RuneCountInString(stripANSI(s))
}

// stripANSI removes ANSI escape codes from a string.
func stripANSI(s string) string {
	var result strings.Builder
	inEscape := false

	for i := 0; i < len(s); i++ {
		if s[i] == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if (s[i] >= 'a' && s[i] <= 'z') || (s[i] >= 'A' && s[i] <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteByte(s[i])
	}

	return result.String()
}
