package catalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/med-cli/internal/application"
	"github.com/bnema/med-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const durationBarWidth = 20

type RenderOptions struct {
	// Summary, when set, is appended below the session list.
	Summary *application.Summary
}

func renderView(sessions []domain.Session, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Meditation Sessions"),
		s.header.Render(fmt.Sprintf("sessions: %d", len(sessions))),
	}

	if len(sessions) == 0 {
		lines = append(lines, s.empty.Render("No sessions match."))
	}

	longest := longestDuration(sessions)
	for _, session := range sessions {
		lines = append(lines, s.section.Render(renderSession(session, longest, s)))
	}

	if opts.Summary != nil {
		lines = append(lines, s.section.Render(renderSummary(*opts.Summary, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSession(session domain.Session, longest int, s styles) string {
	title := s.session.Render(fmt.Sprintf("%s (%s)", strings.TrimSpace(session.Title), session.ID))
	if !session.IsAvailable {
		title += " " + s.warning.Render("[unavailable]")
	}

	meta := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.detail.Render(categoryLabel(session.Category)),
		s.detail.Render(" · "),
		tierStyle(session.Tier, s).Render(session.Tier.Label()),
		" ",
		renderDurationBar(session.Duration, longest, durationBarWidth, s),
		" ",
		s.detail.Render(session.DurationLabel()),
	)

	parts := []string{title, meta}
	if session.AudioFilePath != "" {
		parts = append(parts, s.audio.Render("audio: "+session.AudioFilePath))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderSummary(summary application.Summary, s styles) string {
	parts := []string{
		s.header.Render(fmt.Sprintf("total: %d sessions, %d available, %d min", summary.Sessions, summary.Available, summary.Minutes)),
	}
	for _, tier := range summary.Tiers {
		parts = append(parts, lipgloss.JoinHorizontal(
			lipgloss.Top,
			tierStyle(tier.Tier, s).Render(fmt.Sprintf("%-9s", tier.Tier.Label())),
			s.detail.Render(fmt.Sprintf("%d sessions, %d min", tier.Sessions, tier.Minutes)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderSession draws a single session without the list header.
func RenderSession(session domain.Session) string {
	return renderSession(session, session.Duration, newStyles())
}

func categoryLabel(category string) string {
	if trimmed := strings.TrimSpace(category); trimmed != "" {
		return trimmed
	}
	return "Uncategorized"
}

func tierStyle(tier domain.Tier, s styles) lipgloss.Style {
	if tier == domain.TierFree {
		return s.tierFree
	}
	return s.tierPaid
}

func longestDuration(sessions []domain.Session) int {
	longest := 0
	for _, session := range sessions {
		if session.Duration > longest {
			longest = session.Duration
		}
	}
	return longest
}

func renderDurationBar(duration, longest, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := 0
	if longest > 0 {
		filled = int(math.Round(float64(width) * float64(duration) / float64(longest)))
	}
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}
