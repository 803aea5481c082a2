package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/openkraft/commitkraft/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	info      = lipgloss.Color("#8B949E") // soft blue-gray
	skipColor = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	statusColors = map[domain.Status]lipgloss.Color{
		domain.StatusPass: success,
		domain.StatusWarn: warning,
		domain.StatusFail: danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	skipStyle     = lipgloss.NewStyle().Foreground(skipColor)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	hashStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	ruleNameStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats the outcome of linting a single message.
func RenderReport(header string, report domain.ValidationReport) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("commitkraft")
	subtitle := dimStyle.Render("Commit Message Lint")
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + statusBadge(report)))
	b.WriteString("\n\n")

	if header != "" {
		b.WriteString("  " + titleStyle.Render(header) + "\n")
		b.WriteString("  " + separatorLine + "\n\n")
	}

	if report.Ignored {
		b.WriteString("  " + skipStyle.Render("Message matches an ignore pattern, no rules checked.") + "\n\n")
		return b.String()
	}

	// ── Problems ──
	failures := report.Failures()
	if len(failures) == 0 {
		b.WriteString("  " + passStyle.Render("No problems found.") + "\n\n")
		return b.String()
	}

	b.WriteString("  ")
	b.WriteString(titleStyle.Render("Problems"))
	b.WriteString("  ")
	b.WriteString(countTags(report.ErrorCount, report.WarningCount))
	b.WriteString("\n\n")

	for _, r := range failures {
		renderResult(&b, r, "    ")
	}
	b.WriteString("\n")
	return b.String()
}

// RenderCommitReports formats the outcome of linting a range of commits.
func RenderCommitReports(reports []domain.CommitReport) string {
	if len(reports) == 0 {
		return "  " + dimStyle.Render("No commits in range.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Commits") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	var errs, warns, broken int
	for _, cr := range reports {
		hash := cr.Commit.ShortHash()
		if hash == "" {
			hash = "·······"
		}
		header := firstLine(cr.Commit.Message)

		if cr.Report == nil {
			broken++
			fmt.Fprintf(&b, "  %s  %s  %s\n", failStyle.Render("✗"), hashStyle.Render(hash), header)
			fmt.Fprintf(&b, "       %s\n", dimStyle.Render(cr.Error))
			continue
		}

		errs += cr.Report.ErrorCount
		warns += cr.Report.WarningCount
		fmt.Fprintf(&b, "  %s  %s  %s\n", statusIcon(*cr.Report), hashStyle.Render(hash), header)
		for _, r := range cr.Report.Failures() {
			renderResult(&b, r, "       ")
		}
	}

	b.WriteString("\n  " + separatorLine + "\n")
	fmt.Fprintf(&b, "  %s  %s", dimStyle.Render(fmt.Sprintf("%d commits", len(reports))), countTags(errs, warns))
	if broken > 0 {
		b.WriteString("  " + errorTagStyle.Render(fmt.Sprintf("%d unparsable", broken)))
	}
	b.WriteString("\n")
	return b.String()
}

// RenderRules lists rule configs with their severity, condition and
// parameters.
func RenderRules(configs []domain.RuleConfig) string {
	if len(configs) == 0 {
		return "  " + dimStyle.Render("No rules configured.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Rules") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	for _, cfg := range configs {
		name := padRight(cfg.Name, 24)
		if !cfg.Enabled() {
			fmt.Fprintf(&b, "  %s %s %s\n", skipStyle.Render("○"), skipStyle.Render(name), skipStyle.Render("off"))
			continue
		}
		params := describeParams(cfg.Params)
		line := fmt.Sprintf("  %s %s %s %s", passStyle.Render("●"), ruleNameStyle.Render(name), severityTag(cfg.Severity), dimStyle.Render(padRight(string(cfg.Condition), 7)))
		if params != "" {
			line += " " + faintStyle.Render(params)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// RenderTypes lists the commit types and scopes with their display text.
func RenderTypes(p domain.PresentationMetadata) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Types") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")
	for _, c := range p.Types {
		renderChoice(&b, c)
	}

	if len(p.Scopes) > 0 {
		b.WriteString("\n")
		b.WriteString("  " + titleStyle.Render("Scopes") + "\n")
		b.WriteString("  " + separatorLine + "\n\n")
		for _, c := range p.Scopes {
			renderChoice(&b, c)
		}
	}
	b.WriteString("\n")
	return b.String()
}

// RenderMalformed formats a message that could not be parsed at all.
func RenderMalformed(err error) string {
	return "  " + errorTagStyle.Render("error") + " " + dimStyle.Render(err.Error()) + "\n"
}

func renderResult(b *strings.Builder, r domain.RuleResult, indent string) {
	fmt.Fprintf(b, "%s%s %s\n", indent, severityTag(r.Severity), ruleNameStyle.Render(r.Name))
	if r.Message != "" {
		fmt.Fprintf(b, "%s      %s\n", indent, dimStyle.Render(r.Message))
	}
}

func renderChoice(b *strings.Builder, c domain.Choice) {
	emoji := c.Emoji
	if emoji == "" {
		emoji = " "
	}
	text := c.Description
	if c.Title != "" && text != "" {
		text = c.Title + ": " + text
	} else if c.Title != "" {
		text = c.Title
	}
	fmt.Fprintf(b, "  %s  %s %s\n", emoji, ruleNameStyle.Render(padRight(c.Name, 12)), dimStyle.Render(text))
}

func statusBadge(report domain.ValidationReport) string {
	label := strings.ToUpper(string(report.Status))
	if report.Ignored {
		label = "IGNORED"
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(statusColor(report.Status)).
		Render(label)
}

func statusIcon(report domain.ValidationReport) string {
	switch {
	case report.Ignored:
		return skipStyle.Render("○")
	case report.Status == domain.StatusFail:
		return failStyle.Render("✗")
	case report.Status == domain.StatusWarn:
		return warnStyle.Render("!")
	default:
		return passStyle.Render("✓")
	}
}

func countTags(errs, warns int) string {
	var tags []string
	if errs > 0 {
		tags = append(tags, errorTagStyle.Render(plural(errs, "error")))
	}
	if warns > 0 {
		tags = append(tags, warnTagStyle.Render(plural(warns, "warning")))
	}
	if len(tags) == 0 {
		return passStyle.Render("no problems")
	}
	return strings.Join(tags, "  ")
}

func severityTag(s domain.Severity) string {
	switch s {
	case domain.SeverityError:
		return errorTagStyle.Render("error")
	case domain.SeverityWarning:
		return warnTagStyle.Render("warn ")
	default:
		return infoTagStyle.Render("off  ")
	}
}

func describeParams(p domain.RuleParams) string {
	switch v := p.(type) {
	case domain.EnumParams:
		return "[" + strings.Join(quoteEmpty(v.Values), ", ") + "]"
	case domain.LengthParams:
		return fmt.Sprintf("max %d", v.Max)
	case domain.CaseParams:
		return strings.Join(v.Cases, ", ")
	case domain.CharParams:
		return fmt.Sprintf("%q", v.Char)
	default:
		return ""
	}
}

func quoteEmpty(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if v == "" {
			v = `""`
		}
		out[i] = v
	}
	return out
}

func statusColor(s domain.Status) lipgloss.Color {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return fg
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	return line
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
