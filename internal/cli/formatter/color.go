package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rsoares/roadmap/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TierColor returns the style for the given risk tier.
func TierColor(tier domain.RiskTier) lipgloss.Style {
	switch tier {
	case domain.TierHigh:
		return StyleRed
	case domain.TierMedium:
		return StyleYellow
	case domain.TierLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// TierIndicator returns a colored tier indicator string such as "● HIGH".
func TierIndicator(tier domain.RiskTier) string {
	switch tier {
	case domain.TierHigh:
		return StyleRed.Render("● HIGH")
	case domain.TierMedium:
		return StyleYellow.Render("● MEDIUM")
	case domain.TierLow:
		return StyleGreen.Render("● LOW")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// StatusLabel returns a colored human-readable status label.
func StatusLabel(s domain.ItemStatus) string {
	switch s {
	case domain.StatusDone:
		return StyleGreen.Render("done")
	case domain.StatusInProgress:
		return StyleBlue.Render("in progress")
	default:
		return StyleDim.Render("todo")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
