// Package ui provides the visual styling for the Vasstra storefront CLI.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Vasstra's web storefront uses a near-black ink on warm
// neutrals with a gold accent; the terminal palette mirrors it.
var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#faf8f5")
	LightForeground = lipgloss.Color("#1c1b18")
	LightPrimary    = lipgloss.Color("#1c1b18")
	LightAccent     = lipgloss.Color("#b8923e") // Gold
	LightSecondary  = lipgloss.Color("#ece8e1")
	LightMuted      = lipgloss.Color("#8a857c")
	LightBorder     = lipgloss.Color("#ddd8cf")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#161512")
	DarkForeground = lipgloss.Color("#f0ede7")
	DarkPrimary    = lipgloss.Color("#d4af5e") // Gold (flipped)
	DarkAccent     = lipgloss.Color("#f0ede7")
	DarkSecondary  = lipgloss.Color("#24221e")
	DarkMuted      = lipgloss.Color("#6e6a62")
	DarkBorder     = lipgloss.Color("#3a372f")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#6aa84f")
	Warning     = lipgloss.Color("#FFC107")
	Info        = lipgloss.Color("#2196F3")
)

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Secondary:  LightSecondary,
		Muted:      LightMuted,
		Border:     LightBorder,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Secondary:  DarkSecondary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// DetectTheme auto-detects based on terminal or returns light mode
func DetectTheme() Theme {
	colorTerm := os.Getenv("COLORFGBG")
	if colorTerm != "" {
		// Format is usually "foreground;background"
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	if os.Getenv("VASSTRA_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Commerce
	Price    lipgloss.Style
	Strike   lipgloss.Style
	SaleTag  lipgloss.Style
	NewTag   lipgloss.Style
	Divider  lipgloss.Style
	Badge    lipgloss.Style
	Selected lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning),

		Info: lipgloss.NewStyle().
			Foreground(Info),

		Price: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Strike: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Strikethrough(true),

		SaleTag: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(Destructive).
			Padding(0, 1),

		NewTag: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(theme.Accent).
			Padding(0, 1),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),

		Badge: lipgloss.NewStyle().
			Foreground(theme.Background).
			Background(theme.Accent).
			Padding(0, 1).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),
	}
}

// DefaultStyles returns styles for the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}
