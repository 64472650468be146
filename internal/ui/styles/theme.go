// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/arena-tui/internal/model"
)

// Theme names accepted by NewThemeFor and the ui.theme config key.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style
	HeaderBrand    lipgloss.Style

	// ==========================================================================
	// TAB STYLES
	// ==========================================================================

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// ==========================================================================
	// CHAT STYLES
	// ==========================================================================

	SelfBubble          lipgloss.Style
	OtherBubble         lipgloss.Style
	Sender              lipgloss.Style
	Timestamp           lipgloss.Style
	Avatar              lipgloss.Style
	Badge               lipgloss.Style
	ContactItem         lipgloss.Style
	ContactItemSelected lipgloss.Style
	Online              lipgloss.Style
	InGame              lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputFocused     lipgloss.Style
	InputPrompt      lipgloss.Style
	InputPlaceholder lipgloss.Style
	Label            lipgloss.Style

	// ==========================================================================
	// BUTTON STYLES
	// ==========================================================================

	Button       lipgloss.Style
	ButtonActive lipgloss.Style

	// ==========================================================================
	// LOG TABLE STYLES
	// ==========================================================================

	LogMessage   lipgloss.Style
	LogSource    lipgloss.Style
	LogTimestamp lipgloss.Style
	LogEmpty     lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// OVERLAY STYLES
	// ==========================================================================

	HelpBox lipgloss.Style

	// ==========================================================================
	// ACCESSIBILITY: Status styles with high contrast
	// ==========================================================================

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	InfoStyle    lipgloss.Style
}

// NewTheme creates a new theme with all styles configured, following the
// terminal's detected background.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()
	t := &Theme{
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.SetDark(termenv.HasDarkBackground())
	return t
}

// NewThemeFor creates a theme forced to the named variant. Unknown names
// fall back to terminal detection.
func NewThemeFor(name string) *Theme {
	t := NewTheme()
	switch strings.ToLower(name) {
	case ThemeDark:
		t.SetDark(true)
	case ThemeLight:
		t.SetDark(false)
	}
	return t
}

// SetDark switches the adaptive palette between its dark and light variants.
func (t *Theme) SetDark(dark bool) {
	t.IsDark = dark
	lipgloss.SetHasDarkBackground(dark)
	t.initStyles()
}

// Toggle flips between dark and light and returns the new theme name.
func (t *Theme) Toggle() string {
	t.SetDark(!t.IsDark)
	return t.Name()
}

// Name returns "dark" or "light".
func (t *Theme) Name() string {
	if t.IsDark {
		return ThemeDark
	}
	return ThemeLight
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	t.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary).
		MarginBottom(1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.HeaderBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	// Tabs
	t.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Purple).
		Padding(0, 2)

	t.TabInactive = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(Overlay).
		Padding(0, 2)

	// Chat
	t.SelfBubble = lipgloss.NewStyle().
		Foreground(SelfBubbleFg).
		Background(SelfBubbleBg).
		Padding(0, 1)

	t.OtherBubble = lipgloss.NewStyle().
		Foreground(OtherBubbleFg).
		Background(OtherBubbleBg).
		Padding(0, 1)

	t.Sender = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Avatar = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Cyan).
		Bold(true).
		Padding(0, 1)

	t.Badge = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Rose).
		Bold(true).
		Padding(0, 1)

	t.ContactItem = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Padding(0, 1)

	t.ContactItemSelected = lipgloss.NewStyle().
		Background(Purple).
		Foreground(TextInverse).
		Bold(true).
		Padding(0, 1)

	t.Online = lipgloss.NewStyle().
		Foreground(Emerald)

	t.InGame = lipgloss.NewStyle().
		Foreground(Amber)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputFocused = t.InputContainer.
		BorderForeground(Purple)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.Label = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Buttons
	t.Button = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Overlay).
		Padding(0, 2).
		MarginRight(1)

	t.ButtonActive = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Purple).
		Bold(true).
		Padding(0, 2).
		MarginRight(1)

	// Log table
	t.LogMessage = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.LogSource = lipgloss.NewStyle().
		Foreground(Cyan)

	t.LogTimestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.LogEmpty = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true).
		Padding(1, 2)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Help overlay
	t.HelpBox = lipgloss.NewStyle().
		Background(Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(1, 2)

	// Status styles
	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	t.InfoStyle = lipgloss.NewStyle().
		Foreground(Blue).
		Bold(true)
}

// LevelStyle returns the bold foreground style for a log level.
func (t *Theme) LevelStyle(level model.LogLevel) lipgloss.Style {
	switch level {
	case model.LevelWarning:
		return t.WarningStyle
	case model.LevelError:
		return t.ErrorStyle
	case model.LevelSuccess:
		return t.SuccessStyle
	default:
		return t.InfoStyle
	}
}

// StatusStyle returns the roster style for a player status.
func (t *Theme) StatusStyle(status string) lipgloss.Style {
	if status == model.StatusInGame {
		return t.InGame
	}
	return t.Online
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // >= 100 columns
)
