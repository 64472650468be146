// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/arena-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the title bar shown above every screen.
type Header struct {
	Brand    string // Product name (default: "arena")
	Title    string // Screen title
	Subtitle string // Optional status text, e.g. the active DM
	User     string // Signed-in user, empty before login
	Width    int
	theme    *styles.Theme
}

// NewHeader creates a new Header component with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Brand: "arena",
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// View renders the header. Narrow terminals get the compact form.
func (h *Header) View() string {
	if h.Width < 60 {
		return h.ViewCompact()
	}

	left := h.brand()
	if h.Title != "" {
		left += "  " + h.theme.HeaderTitle.Render(h.Title)
	}
	if h.Subtitle != "" {
		left += "  " + h.theme.HeaderSubtitle.Render(h.Subtitle)
	}

	right := ""
	if h.User != "" {
		right = h.theme.Label.Render("signed in as ") + h.theme.Sender.Render(h.User)
	}

	inner := h.Width - 4
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return h.theme.Header.
		Width(h.Width).
		Render(left + strings.Repeat(" ", gap) + right)
}

// ViewCompact renders a single-line header for narrow terminals.
func (h *Header) ViewCompact() string {
	parts := []string{h.brand()}
	if h.Title != "" {
		parts = append(parts, h.theme.HeaderTitle.Render(h.Title))
	}
	if h.User != "" {
		parts = append(parts, h.theme.Sender.Render(h.User))
	}

	separator := lipgloss.NewStyle().
		Foreground(styles.Overlay).
		Render(" | ")
	return strings.Join(parts, separator)
}

func (h *Header) brand() string {
	accent := lipgloss.NewStyle().Foreground(styles.Purple)
	return accent.Render("< ") + h.theme.HeaderBrand.Render(h.Brand) + accent.Render(" >")
}
