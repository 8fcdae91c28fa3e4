package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/snehagrian/proofmap/internal/types"
)

const (
	// barWidth is the width of the overall score bar.
	barWidth = 20
	// rowBarWidth is the narrower bar used inside breakdown rows.
	rowBarWidth = 10
	// ruleWidth is the width of section rules.
	ruleWidth = 66
)

// Printer writes formatted scan reports.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// PrintScanReport renders the full scan outcome: the overall summary,
// the per-skill breakdown, and the proven/missing partition.
func (p *Printer) PrintScanReport(result *types.ScanResult) {
	if result == nil {
		return
	}

	p.printf("%s\n\n", Section(fmt.Sprintf("PROOF SCAN  %s", result.GithubUsername)))
	p.printf(" %-24s%d\n", "Repositories analyzed", result.ReposAnalyzed)
	p.printf(" %-24s%s\n", "Overall proof", ScoreBar(result.OverallScore, barWidth))

	if len(result.Breakdown) == 0 {
		p.printf("\n %s\n", StyleMuted.Render("No claimed skills detected in the resume."))
		return
	}

	tbl := NewTable("Skill", "Proof", "Tier", "Status", "Evidence")
	for _, sr := range result.Breakdown {
		tbl.AddRow(
			sr.Skill,
			ScoreBar(sr.Score, rowBarWidth),
			orDash(sr.Proficiency),
			statusCell(sr.Status),
			orDash(strings.Join(sr.SupportingRepos, ", ")),
		)
	}
	p.printf("\n%s", indent(tbl.Render()))

	p.printf("\n %s %s\n", StyleGood.Render("Proven:"), joinOrNone(result.ProvenSkills))
	p.printf(" %s %s\n", StyleBad.Render("Missing proof:"), joinOrNone(result.MissingProof))
}

// PrintRemediation renders the plan for each selected skill in
// alphabetical order.
func (p *Printer) PrintRemediation(plans map[string]types.RemediationPlan) {
	if len(plans) == 0 {
		return
	}

	p.printf("%s\n", Section("REMEDIATION"))

	skills := make([]string, 0, len(plans))
	for skill := range plans {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	for _, skill := range skills {
		plan := plans[skill]
		p.printf("\n %s", StyleBold.Render(skill))
		if plan.CandidateExists {
			p.printf("  %s\n", StyleMuted.Render(fmt.Sprintf("integrate into %s", plan.RepoName)))
			for i, step := range plan.UsageGuidance {
				p.printf("   %d. %s\n", i+1, step)
			}
			continue
		}
		p.printf("  %s\n", StyleMuted.Render("no suitable repository, start fresh"))
		for _, idea := range plan.ProjectIdeas {
			p.printf("   %s %s\n", StyleGood.Render("•"), idea.Idea)
			for i, step := range idea.Plan {
				p.printf("      %d. %s\n", i+1, step)
			}
		}
	}
}

// ScoreBar renders a 0-100 proof score as a bar, colored by the same
// bands that drive status labels.
func ScoreBar(score, width int) string {
	if width <= 0 {
		width = barWidth
	}
	filled := score * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style lipgloss.Style
	switch {
	case score < 25:
		style = StyleBad
	case score < 60:
		style = StyleMedium
	default:
		style = StyleGood
	}

	return fmt.Sprintf("%s %s", style.Render(bar), StyleMuted.Render(fmt.Sprintf("%d/100", score)))
}

// Section returns a styled section header over a horizontal rule.
func Section(title string) string {
	return fmt.Sprintf("\n %s\n %s", StyleHeader.Render(title), StyleMuted.Render(strings.Repeat("─", ruleWidth)))
}

func statusCell(status string) string {
	switch status {
	case types.StatusGood:
		return StyleGood.Render(status)
	case types.StatusMedium:
		return StyleMedium.Render(status)
	default:
		return StyleBad.Render(status)
	}
}

func orDash(s string) string {
	if s == "" {
		return StyleMuted.Render("-")
	}
	return s
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return StyleMuted.Render("none")
	}
	return strings.Join(items, ", ")
}

// indent prefixes every line of a rendered block with one space.
func indent(block string) string {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	for i, line := range lines {
		lines[i] = " " + line
	}
	return strings.Join(lines, "\n") + "\n"
}
