// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notify

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)
	failureStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6366F1"))
)

// Render formats a notice for terminal output.
func Render(n Notice) string {
	switch n.Kind {
	case KindSuccess:
		return successStyle.Render("✓ " + n.Message)
	case KindFailure:
		return failureStyle.Render("✗ " + n.Message)
	default:
		return infoStyle.Render("• " + n.Message)
	}
}
