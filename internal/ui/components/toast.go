// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/arena-tui/internal/conversation"
	"github.com/jeranaias/arena-tui/internal/ui/styles"
)

// =============================================================================
// TOAST TYPES
// =============================================================================

// ToastKind represents the type of toast notification.
type ToastKind int

const (
	// ToastKindStatus is an informational toast (cyan color)
	ToastKindStatus ToastKind = iota
	// ToastKindError is an error toast (rose color)
	ToastKindError
	// ToastKindWarning is a warning toast (amber color)
	ToastKindWarning
	// ToastKindSuccess is a success toast (emerald color)
	ToastKindSuccess
)

// DefaultToastDuration is the default auto-dismiss duration for status toasts.
const DefaultToastDuration = 4 * time.Second

// ErrorToastDuration is the auto-dismiss duration for error toasts (longer to read).
const ErrorToastDuration = 8 * time.Second

// =============================================================================
// TOAST
// =============================================================================

// Toast is a non-blocking notification with an optional title line.
type Toast struct {
	ID        int
	Title     string
	Message   string
	Kind      ToastKind
	CreatedAt time.Time
	Duration  time.Duration
}

// NewToast creates a toast. A zero duration picks the default for the kind.
func NewToast(kind ToastKind, title, message string, d time.Duration) Toast {
	if d <= 0 {
		d = DefaultToastDuration
		if kind == ToastKindError {
			d = ErrorToastDuration
		}
	}
	return Toast{
		Title:     title,
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ToastFromNotice converts a conversation notice into a status toast.
func ToastFromNotice(n conversation.Notice, d time.Duration) Toast {
	return NewToast(ToastKindStatus, n.Title(), n.Description(), d)
}

// IsExpired returns true if the toast should be dismissed.
func (t *Toast) IsExpired() bool {
	return time.Since(t.CreatedAt) >= t.Duration
}

// TimeRemaining returns how much time is left before auto-dismiss.
func (t *Toast) TimeRemaining() time.Duration {
	remaining := t.Duration - time.Since(t.CreatedAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// =============================================================================
// TOAST MANAGER
// =============================================================================

// ToastManager manages multiple toast notifications.
type ToastManager struct {
	toasts    []Toast
	nextID    int
	maxToasts int
	mutex     sync.Mutex
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{
		toasts:    make([]Toast, 0),
		nextID:    1,
		maxToasts: 3,
	}
}

// Add adds a toast, newest first, and returns its ID.
func (m *ToastManager) Add(toast Toast) int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	toast.ID = m.nextID
	m.nextID++

	m.toasts = append([]Toast{toast}, m.toasts...)
	if len(m.toasts) > m.maxToasts {
		m.toasts = m.toasts[:m.maxToasts]
	}
	return toast.ID
}

// AddError is a convenience method to add an error toast.
func (m *ToastManager) AddError(title, message string) int {
	return m.Add(NewToast(ToastKindError, title, message, 0))
}

// AddStatus is a convenience method to add a status toast.
func (m *ToastManager) AddStatus(title, message string, d time.Duration) int {
	return m.Add(NewToast(ToastKindStatus, title, message, d))
}

// Remove removes a toast by ID.
func (m *ToastManager) Remove(id int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for i, toast := range m.toasts {
		if toast.ID == id {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			return
		}
	}
}

// DismissNewest removes the most recent toast. It returns false when empty.
func (m *ToastManager) DismissNewest() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if len(m.toasts) == 0 {
		return false
	}
	m.toasts = m.toasts[1:]
	return true
}

// Tick removes expired toasts and returns the remaining ones.
func (m *ToastManager) Tick() []Toast {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	active := make([]Toast, 0, len(m.toasts))
	for _, toast := range m.toasts {
		if !toast.IsExpired() {
			active = append(active, toast)
		}
	}
	m.toasts = active
	return m.toasts
}

// Toasts returns a copy of the current toasts.
func (m *ToastManager) Toasts() []Toast {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	result := make([]Toast, len(m.toasts))
	copy(result, m.toasts)
	return result
}

// HasToasts returns true if there are any active toasts.
func (m *ToastManager) HasToasts() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.toasts) > 0
}

// =============================================================================
// TOAST MESSAGES
// =============================================================================

// ToastTickMsg is sent periodically to update toast state.
type ToastTickMsg struct {
	Time time.Time
}

// ToastMsg asks the root model to show a toast.
type ToastMsg struct {
	Toast Toast
}

// ShowToast returns a command that emits a ToastMsg.
func ShowToast(t Toast) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Toast: t}
	}
}

// ToastTickCmd returns a command that ticks toasts every 100ms.
func ToastTickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return ToastTickMsg{Time: t}
	})
}

// =============================================================================
// TOAST RENDERING
// =============================================================================

// RenderToast renders a single toast notification.
func RenderToast(toast Toast, width int) string {
	maxWidth := 50
	if width > 0 && width-8 < maxWidth {
		maxWidth = width - 8
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	var color lipgloss.AdaptiveColor
	var icon string
	switch toast.Kind {
	case ToastKindError:
		color, icon = styles.Rose, styles.StatusIndicators.Error
	case ToastKindWarning:
		color, icon = styles.Amber, styles.StatusIndicators.Warning
	case ToastKindSuccess:
		color, icon = styles.Emerald, styles.StatusIndicators.Success
	default:
		color, icon = styles.Cyan, styles.StatusIndicators.Info
	}

	iconStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	titleStyle := lipgloss.NewStyle().Foreground(styles.TextPrimary).Bold(true)
	bodyStyle := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Width(maxWidth - 6)

	lines := []string{}
	if toast.Title != "" {
		lines = append(lines, iconStyle.Render(icon+" ")+titleStyle.Render(toast.Title))
		if toast.Message != "" {
			lines = append(lines, bodyStyle.Render(toast.Message))
		}
	} else {
		lines = append(lines, iconStyle.Render(icon+" ")+bodyStyle.Render(toast.Message))
	}

	hintStyle := lipgloss.NewStyle().Foreground(styles.TextMuted).Italic(true)
	hints := []string{"[esc] Dismiss"}
	if secs := int(toast.TimeRemaining().Seconds()); secs > 0 {
		hints = append(hints, strconv.Itoa(secs)+"s")
	}
	lines = append(lines, hintStyle.Render(strings.Join(hints, "  ")))

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 2).
		MaxWidth(maxWidth).
		Render(strings.Join(lines, "\n"))
}

// RenderToastStack renders toasts stacked vertically in the bottom-right
// corner of a width x height area.
func RenderToastStack(toasts []Toast, width, height int) string {
	if len(toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(toasts))
	for _, toast := range toasts {
		rendered = append(rendered, RenderToast(toast, width))
	}
	stack := lipgloss.JoinVertical(lipgloss.Right, rendered...)

	positioned := lipgloss.NewStyle().
		MarginRight(2).
		MarginBottom(1).
		Render(stack)

	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Right, lipgloss.Bottom, positioned)
	}
	return positioned
}
