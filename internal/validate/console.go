package validate

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
)

const bannerWidth = 80

// Printer renders the live console transcript: run header, section banners,
// one line per outcome, and the final summary. All writes go to a single
// io.Writer so tests can capture the transcript.
type Printer struct {
	out     io.Writer
	verbose bool

	pass    *color.Color
	fail    *color.Color
	warn    *color.Color
	info    *color.Color
	detail  *color.Color
	section *color.Color
	header  *color.Color
	step    *color.Color
}

// NewPrinter creates a Printer. Colors are disabled when noColor is set;
// fatih/color additionally honors NO_COLOR and non-TTY output globally.
func NewPrinter(out io.Writer, verbose, noColor bool) *Printer {
	p := &Printer{
		out:     out,
		verbose: verbose,
		pass:    color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		warn:    color.New(color.FgYellow),
		info:    color.New(color.FgBlue),
		detail:  color.New(color.FgCyan),
		section: color.New(color.FgCyan),
		header:  color.New(color.FgMagenta),
		step:    color.New(color.FgBlue),
	}
	if noColor {
		for _, c := range []*color.Color{p.pass, p.fail, p.warn, p.info, p.detail, p.section, p.header, p.step} {
			c.DisableColor()
		}
	}
	return p
}

// Header prints the run banner with tool identity and host context.
func (p *Printer) Header(toolName, version string) {
	rule := strings.Repeat("=", bannerWidth)
	p.header.Fprintln(p.out, rule)
	p.header.Fprintf(p.out, "%*s\n", (bannerWidth+len(toolName))/2, toolName)
	p.header.Fprintln(p.out, rule)
	fmt.Fprintf(p.out, "Version: %s\n", version)
	fmt.Fprintf(p.out, "Runtime: %s\n", runtime.Version())
	fmt.Fprintf(p.out, "Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(p.out, "Time: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))
}

// Section prints the banner introducing a category's checks.
func (p *Printer) Section(c Category) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(p.out)
	p.section.Fprintln(p.out, rule)
	p.section.Fprintln(p.out, c.Section())
	p.section.Fprintln(p.out, rule)
	fmt.Fprintln(p.out)
}

// Outcome prints one live transcript line, with the details line appended
// in verbose mode only.
func (p *Printer) Outcome(o Outcome) {
	tag := p.colorFor(o.Status).Sprintf("[%-4s]", o.Status)
	fmt.Fprintf(p.out, "%s %s\n", tag, o.Message)
	if o.Details != "" && p.verbose {
		p.detail.Fprintf(p.out, "         Details: %s\n", o.Details)
	}
}

// Summary prints the aggregate block, the verdict, and the next-steps
// guidance, then names the persisted report.
func (p *Printer) Summary(stats Stats, verdict Verdict, reportPath string) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(p.out)
	p.section.Fprintln(p.out, rule)
	p.section.Fprintln(p.out, "VALIDATION SUMMARY")
	p.section.Fprintln(p.out, rule)
	fmt.Fprintln(p.out)

	fmt.Fprintf(p.out, "Total Checks: %d\n", stats.Total)
	p.pass.Fprintf(p.out, "Passed: %d\n", stats.Passed)
	p.warn.Fprintf(p.out, "Warnings: %d\n", stats.Warned)
	p.fail.Fprintf(p.out, "Failed: %d\n", stats.Failed)
	fmt.Fprintln(p.out)

	fmt.Fprintf(p.out, "Success Rate: %.1f%%\n", stats.SuccessRate())
	p.tierColor(verdict.Tier).Fprintf(p.out, "Overall Status: %s\n", verdict.Tier)
	fmt.Fprintf(p.out, "\nRecommendation: %s\n", verdict.Recommendation)

	p.header.Fprintf(p.out, "\nNext Steps:\n")
	steps := []string{
		"1. Review any FAIL or WARN messages above",
		"2. Install missing dependencies if needed",
		"3. Run this validator again to verify fixes",
		"4. Check the deployment checklist: DEPLOYMENT_CHECKLIST.md",
		"5. Follow the quick start guide: QUICK_START_GUIDE.md",
	}
	for _, s := range steps {
		p.step.Fprintln(p.out, s)
	}

	p.detail.Fprintf(p.out, "\nDetailed report saved to: %s\n", reportPath)
}

func (p *Printer) colorFor(s Status) *color.Color {
	switch s {
	case StatusPass:
		return p.pass
	case StatusFail:
		return p.fail
	case StatusWarn:
		return p.warn
	default:
		return p.info
	}
}

func (p *Printer) tierColor(t Tier) *color.Color {
	switch t {
	case TierExcellent:
		return p.pass
	case TierNeedsAttention:
		return p.fail
	default:
		return p.warn
	}
}
