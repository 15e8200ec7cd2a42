package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ---------------------------------------------------------------------------
// Frame layout
// ---------------------------------------------------------------------------

func (a *App) placeWithFooter(body, statusLine, footer string) string {
	if a.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := a.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(a.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	// Ensure every line is full-width to prevent ghosting from previous frames
	lines := splitLines(main)
	for i, line := range lines {
		lines[i] = padRight(line, a.width)
	}
	main = strings.Join(lines, "\n")
	return main + "\n" + statusLine + "\n" + footer
}

// maxVisibleCards caps the list window regardless of terminal height.
const maxVisibleCards = 20

func (a *App) visibleRows() int {
	if a.height == 0 {
		return min(10, maxVisibleCards)
	}
	frameV := listBoxStyle.GetVerticalFrameSize()
	headerHeight := 1
	headerGap := 1
	sectionHeaderHeight := 2
	scrollIndicator := 1
	available := a.height - 2 - headerHeight - headerGap - len(a.alerts) - frameV - sectionHeaderHeight - scrollIndicator
	if available < 3 {
		available = 3
	}
	if available > maxVisibleCards {
		available = maxVisibleCards
	}
	return available
}

func (a *App) listContentWidth() int {
	if a.width == 0 {
		return 80
	}
	contentWidth := a.sectionContentWidth()
	if contentWidth < 20 {
		return 20
	}
	return contentWidth
}

func (a *App) sectionContentWidth() int {
	if a.width == 0 {
		return 80
	}
	frameH := listBoxStyle.GetHorizontalFrameSize()
	contentWidth := a.sectionWidth() - frameH
	if contentWidth < 1 {
		contentWidth = 1
	}
	return contentWidth
}

func (a *App) sectionWidth() int {
	if a.width == 0 {
		return 80
	}
	width := a.width - 4
	if width < 20 {
		width = a.width
	}
	return width
}

// ensureCursorInWindow scrolls the list window so the cursor stays visible.
func (a *App) ensureCursorInWindow(total int) {
	visible := a.visibleRows()
	if visible <= 0 {
		return
	}
	if a.cursor >= total {
		a.cursor = total - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	if a.cursor < a.topIndex {
		a.topIndex = a.cursor
	} else if a.cursor >= a.topIndex+visible {
		a.topIndex = a.cursor - visible + 1
	}
	maxTop := total - visible
	if maxTop < 0 {
		maxTop = 0
	}
	if a.topIndex > maxTop {
		a.topIndex = maxTop
	}
	if a.topIndex < 0 {
		a.topIndex = 0
	}
}

// ---------------------------------------------------------------------------
// String utilities
// ---------------------------------------------------------------------------

// splitLines splits a string on newlines, returning at least one element.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// padRight pads s with spaces so its visual width equals width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// truncate shortens s to the given visual width, appending "…" if truncated.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
