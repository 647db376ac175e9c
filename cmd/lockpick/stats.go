package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/lixenwraith/vi-lockpick/history"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	openStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// renderStats formats the summary and recent attempts for the -stats report
func renderStats(sum history.Summary, recent []history.Attempt, now time.Time) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Lockpick history"))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	rate := 0.0
	if sum.Attempts > 0 {
		rate = 100 * float64(sum.Unlocked) / float64(sum.Attempts)
	}
	row("Attempts", humanize.Comma(int64(sum.Attempts)))
	row("Opened", fmt.Sprintf("%s (%.0f%%)", humanize.Comma(int64(sum.Unlocked)), rate))
	row("Broken picks", humanize.Comma(int64(sum.Breaks)))
	row("Mean difficulty", fmt.Sprintf("%.1f", sum.MeanDifficulty))
	if sum.Hardest >= 0 {
		row("Hardest opened", fmt.Sprintf("%d", sum.Hardest))
		row("Fastest open", formatDuration(sum.Fastest))
	}

	if len(recent) == 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("No attempts recorded yet"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Recent"))
	b.WriteString("\n")
	for _, a := range recent {
		outcome := failStyle.Render("abandoned")
		if a.Unlocked {
			outcome = openStyle.Render("opened   ")
		}
		fmt.Fprintf(&b, "%3d  %s  %2d %-6s  %7s  %s\n",
			a.Difficulty,
			outcome,
			a.Breaks,
			plural(a.Breaks, "break", "breaks"),
			formatDuration(a.Duration),
			dimStyle.Render(humanize.RelTime(a.StartedAt, now, "ago", "from now")),
		)
	}
	return b.String()
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
