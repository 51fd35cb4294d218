package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FitTrack theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconFood    = "🍗"
	IconMeal    = "🍽️"
	IconWorkout = "🏋️"
	IconTrend   = "📈"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconFlame   = "🔥"
	IconMuscle  = "💪"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	CalBar  = lipgloss.NewStyle().Foreground(cWarn)
	ProtBar = lipgloss.NewStyle().Foreground(cGood)

	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Bar renders a horizontal chart bar scaled against max. A non-zero value
// always shows at least one cell so small days stay visible.
func Bar(value, max float64, width int) string {
	if width < 1 {
		width = 1
	}
	if max <= 0 {
		return strings.Repeat("·", width)
	}
	if value < 0 {
		value = 0
	}
	if value > max {
		value = max
	}
	filled := int(value / max * float64(width))
	if filled == 0 && value > 0 {
		filled = 1
	}
	return strings.Repeat("█", filled) + strings.Repeat("·", width-filled)
}
