package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ndjsonkit/ndjsonkit/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
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

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport renders a RunReport as a styled TUI string. maxErrors caps
// how many error details are listed; the rest collapse into a count.
func RenderReport(report *domain.RunReport, maxErrors int) string {
	var b strings.Builder

	// ── Header box ──
	title := headerStyle.Render("ndjsonkit")
	subtitle := dimStyle.Render("NDJSON Validation Summary")

	var verdict string
	if report.Summary.TotalErrors == 0 && len(report.Failures) == 0 {
		verdict = passStyle.Bold(true).Render("all files valid")
	} else {
		verdict = failStyle.Bold(true).Render(fmt.Sprintf(
			"%d errors in %d files", report.Summary.TotalErrors, report.Summary.FilesWithErrors))
	}

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdict))
	b.WriteString("\n\n")

	// ── Counters ──
	renderCounter(&b, "files processed", report.Summary.TotalFiles)
	renderCounter(&b, "files with errors", report.Summary.FilesWithErrors)
	renderCounter(&b, "total errors", report.Summary.TotalErrors)
	b.WriteString(fmt.Sprintf("  %s %s\n",
		titleStyle.Render(padRight("time taken", 20)),
		dimStyle.Render(report.Duration.Round(time.Microsecond).String())))

	// ── Error details ──
	if len(report.Errors) > 0 {
		b.WriteString("\n")
		b.WriteString("  " + separatorLine + "\n\n")
		renderErrors(&b, report.Errors, maxErrors)
	}

	// ── File-level failures ──
	if len(report.Failures) > 0 {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %s %s\n",
			errorTagStyle.Render("unprocessed files"),
			dimStyle.Render(fmt.Sprintf("(%d)", len(report.Failures)))))
		for _, f := range report.Failures {
			b.WriteString(fmt.Sprintf("    %s %s\n", failStyle.Render("●"), fileStyle.Render(f.FilePath)))
			b.WriteString(fmt.Sprintf("      %s\n", dimStyle.Render(f.Error)))
		}
	}

	// ── Cleaned output ──
	if len(report.CleanedFiles) > 0 {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %s %s\n",
			titleStyle.Render("cleaned files"),
			dimStyle.Render(fmt.Sprintf("(%d)", len(report.CleanedFiles)))))
		for _, p := range report.CleanedFiles {
			b.WriteString(fmt.Sprintf("    %s %s\n", passStyle.Render("●"), fileStyle.Render(p)))
		}
	}

	b.WriteString("\n")
	return b.String()
}

func renderCounter(b *strings.Builder, label string, value int) {
	b.WriteString(fmt.Sprintf("  %s %s\n",
		titleStyle.Render(padRight(label, 20)),
		lipgloss.NewStyle().Bold(true).Foreground(fg).Render(fmt.Sprintf("%d", value))))
}

func renderErrors(b *strings.Builder, errors []domain.ErrorEntry, maxErrors int) {
	shown := len(errors)
	if maxErrors >= 0 && shown > maxErrors {
		shown = maxErrors
	}

	b.WriteString(fmt.Sprintf("  %s %s\n\n",
		titleStyle.Render("Error Details"),
		dimStyle.Render(fmt.Sprintf("(showing %d/%d)", shown, len(errors)))))

	for _, e := range errors[:shown] {
		location := fmt.Sprintf("%s:%d", e.FilePath, e.LineNumber)
		b.WriteString(fmt.Sprintf("    %s %s\n", errorTagStyle.Render("error"), fileStyle.Render(location)))
		if e.LineContent != "" {
			b.WriteString(fmt.Sprintf("      %s\n", faintStyle.Render(truncate(e.LineContent, 76))))
		}
		b.WriteString(fmt.Sprintf("      %s\n", dimStyle.Render(e.Error)))
	}

	if remaining := len(errors) - shown; remaining > 0 {
		b.WriteString("\n")
		b.WriteString("    " + dimStyle.Render(fmt.Sprintf("... and %d more errors", remaining)) + "\n")
	}
}

// RenderFileProgress renders the one-line progress entry emitted after each
// file completes.
func RenderFileProgress(result domain.FileResult) string {
	name := shortenPath(result.FilePath)

	switch {
	case result.Failure != "":
		return fmt.Sprintf("  %s %s  %s", failStyle.Render("✗"), fileStyle.Render(name), dimStyle.Render("unreadable"))
	case len(result.Errors) > 0:
		return fmt.Sprintf("  %s %s  %s", warnStyle.Render("●"), fileStyle.Render(name),
			dimStyle.Render(fmt.Sprintf("%d invalid lines", len(result.Errors))))
	default:
		return fmt.Sprintf("  %s %s", passStyle.Render("✓"), fileStyle.Render(name))
	}
}

func shortenPath(path string) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) <= 3 {
		return path
	}
	return ".../" + strings.Join(parts[len(parts)-2:], "/")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
