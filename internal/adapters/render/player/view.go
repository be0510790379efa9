package player

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const progressWidth = 30

func renderView(m Model) string {
	lines := []string{
		m.styles.title.Render(m.session.Title),
		m.styles.meta.Render(fmt.Sprintf("%s · %s · %s", m.session.Category, m.session.Tier.Label(), m.session.DurationLabel())),
		"",
	}

	if m.finished {
		lines = append(lines, m.styles.done.Render("Session complete."))
		return m.styles.frame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	if m.store.Running() {
		lines = append(lines, fmt.Sprintf("%s %s  %s",
			m.spinner.View(),
			m.styles.running.Render("running"),
			m.styles.phase.Render(phaseAt(m.elapsed).String()),
		))
	} else {
		lines = append(lines, m.styles.stopped.Render("paused"))
	}

	lines = append(lines,
		progressLine(m.elapsed, m.total(), progressWidth, m.styles),
		"",
		m.help.View(m.keys),
	)

	return m.styles.frame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func progressLine(elapsed, total time.Duration, width int, s styles) string {
	filled := 0
	if total > 0 {
		filled = int(math.Round(float64(width) * float64(elapsed) / float64(total)))
	}
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	return fmt.Sprintf("%s%s %s / %s",
		s.bar.Render(strings.Repeat("█", filled)),
		s.barEmpty.Render(strings.Repeat("░", width-filled)),
		formatClock(elapsed),
		formatClock(total),
	)
}

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
