package tui

import (
	"fmt"
	"strings"

	"github.com/ndjsonkit/ndjsonkit/internal/domain"
)

// RenderHistory renders past run entries for a directory, newest last.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No recorded runs.") + "\n"
	}

	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Run History") + "  " +
		dimStyle.Render(fmt.Sprintf("(%d runs)", len(entries))) + "\n\n")

	for _, e := range entries {
		var icon string
		if e.Summary.TotalErrors == 0 {
			icon = passStyle.Render("●")
		} else {
			icon = failStyle.Render("●")
		}

		line := fmt.Sprintf("    %s %s  %s",
			icon,
			dimStyle.Render(e.Timestamp.Format("2006-01-02 15:04:05")),
			fmt.Sprintf("%d files, %d errors", e.Summary.TotalFiles, e.Summary.TotalErrors))
		if e.Cleaned {
			line += "  " + warnStyle.Render("cleaned")
		}
		if e.Commit != "" {
			line += "  " + faintStyle.Render(shortCommit(e.Commit))
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}

func shortCommit(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
