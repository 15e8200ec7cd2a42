package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/scholarmatch/internal/api"
	"github.com/jask/scholarmatch/internal/score"
)

// ---------------------------------------------------------------------------
// Styles — Catppuccin Mocha themed
// ---------------------------------------------------------------------------

var (
	// Section titles
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	// Header bar (spans full width)
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	// App name in header
	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	// Tab styles
	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorSurface0).
			Bold(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorOverlay1).
				Background(colorMantle).
				Padding(0, 1)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Background(colorMantle)

	// Footer bar
	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	// Status bar (above footer)
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Background(colorSurface0).
			Bold(true).
			Padding(0, 2)

	// Section containers
	listBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	// Expanded card detail, set off with a left rule
	detailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(colorSurface1).
			PaddingLeft(1)

	// Help key styling
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	// Alert lines
	alertSuccessStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	alertErrorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	alertInfoStyle    = lipgloss.NewStyle().Foreground(colorInfo)

	// Form fields
	fieldLabelStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	hintStyle         = lipgloss.NewStyle().Foreground(colorOverlay1).Italic(true)
	buttonStyle       = lipgloss.NewStyle().Foreground(colorText)
	focusedButtonStyle = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorAccent).
				Bold(true)
	busyButtonStyle = lipgloss.NewStyle().Foreground(colorOverlay1)

	cursorStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	// Scroll indicator
	scrollStyle = lipgloss.NewStyle().Foreground(colorOverlay1)

	// Score bar segments
	barFillStyle  = lipgloss.NewStyle().Foreground(colorAccent)
	barEmptyStyle = lipgloss.NewStyle().Foreground(colorSurface1)
)

// caret marks the insertion point of the focused text input.
const caret = "█"

// ---------------------------------------------------------------------------
// Chrome rendering
// ---------------------------------------------------------------------------

func renderHeader(appName string, activeScreen, width int) string {
	name := headerAppStyle.Render(appName)

	var tabs []string
	for s := 0; s < screenCount; s++ {
		if s == activeScreen {
			tabs = append(tabs, activeTabStyle.Render(screenTitle(s)))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(screenTitle(s)))
		}
	}
	tabBar := tabSepStyle.Render(" ") + strings.Join(tabs, tabSepStyle.Render("│"))

	content := name + "  " + tabBar
	if width <= 0 {
		return headerBarStyle.Render(content)
	}
	return headerBarStyle.Width(width).Render(content)
}

func (a *App) renderSection(title, content string) string {
	contentWidth := a.sectionContentWidth()
	header := padRight(titleStyle.Render(title), contentWidth)
	sepStyle := lipgloss.NewStyle().Foreground(colorSurface2)
	separator := sepStyle.Render(strings.Repeat("─", contentWidth))
	sectionContent := header + "\n" + separator + "\n" + content
	section := listBoxStyle.Width(a.sectionWidth()).Render(sectionContent)
	if a.width == 0 {
		return section
	}
	return lipgloss.Place(a.width, lipgloss.Height(section), lipgloss.Center, lipgloss.Top, section)
}

func (a *App) renderFooter() string {
	// Build help text where every character carries the footer background.
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	bindings := a.footerBindings()
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)

	if a.width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(a.width).Render(content)
}

func (a *App) footerBindings() []key.Binding {
	if a.filterMode {
		return []key.Binding{a.keys.Search, a.keys.Close}
	}
	if a.screen == screenProfile {
		return []key.Binding{a.keys.NextField, a.keys.Submit, a.keys.Close, a.keys.Quit}
	}
	if a.formActive {
		return []key.Binding{a.keys.NextField, a.keys.Submit, a.keys.Close}
	}
	return a.keys.ShortHelp()
}

func (a *App) renderStatus() string {
	flat := strings.ReplaceAll(a.status, "\n", " ")
	style := statusBarStyle
	if a.statusErr {
		style = statusErrStyle
	}
	if a.width == 0 {
		return style.Render(flat)
	}
	return style.Width(a.width).Render(flat)
}

// renderAlerts stacks active alerts newest first, one line each.
func (a *App) renderAlerts() string {
	if len(a.alerts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(a.alerts))
	for _, al := range a.alerts {
		var style lipgloss.Style
		var mark string
		switch al.severity {
		case alertSuccess:
			style, mark = alertSuccessStyle, "✓"
		case alertError:
			style, mark = alertErrorStyle, "✗"
		default:
			style, mark = alertInfoStyle, "•"
		}
		line := style.Render(mark+" "+al.text) + "  " + hintStyle.Render("(ctrl+x to dismiss)")
		lines = append(lines, "  "+line)
	}
	return strings.Join(lines, "\n")
}

// ---------------------------------------------------------------------------
// Profile screen
// ---------------------------------------------------------------------------

func (a *App) profileView() string {
	var b strings.Builder

	for i := 0; i < profileInputCount; i++ {
		label := profileFieldLabel(i)
		value := a.profileInputs[i]
		if i == a.profileFocus {
			b.WriteString(focusedLabelStyle.Render(fmt.Sprintf("%-11s", label)))
			b.WriteString(value + caret)
		} else {
			b.WriteString(fieldLabelStyle.Render(fmt.Sprintf("%-11s", label)))
			b.WriteString(value)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.renderButton(a.submitLabel(formProfile), a.profileFocus == profileFieldSubmit, a.profileBusy))
	b.WriteString("\n\n")

	if hint := a.profileHint(); hint != "" {
		b.WriteString(hintStyle.Render(hint))
		b.WriteString("\n")
	}

	return a.renderSection("Student Profile", b.String())
}

func (a *App) profileHint() string {
	if a.profileFocus == profileFieldSubmit {
		return "Press enter to request matches for this profile."
	}
	return a.hintFor(profileFieldHintKey(a.profileFocus))
}

func (a *App) renderButton(label string, focused, busy bool) string {
	text := "[ " + label + " ]"
	if busy {
		return busyButtonStyle.Render(text)
	}
	if focused {
		return focusedButtonStyle.Render(text)
	}
	return buttonStyle.Render(text)
}

// ---------------------------------------------------------------------------
// Results screen
// ---------------------------------------------------------------------------

func (a *App) resultsView() string {
	recs := a.filteredRecs()
	contentWidth := a.listContentWidth()

	var lines []string

	if a.filterMode {
		lines = append(lines, focusedLabelStyle.Render("/")+a.filterQuery+caret)
	} else if a.filterQuery != "" {
		lines = append(lines, hintStyle.Render(fmt.Sprintf("filter: %q (%d of %d shown)", a.filterQuery, len(recs), len(a.recs))))
	}

	if len(a.recs) == 0 {
		lines = append(lines, "", "No matches loaded. Submit a profile or press r to refresh.")
		return a.renderSection(a.resultsTitle(), strings.Join(lines, "\n"))
	}
	if len(recs) == 0 {
		lines = append(lines, "", "Nothing matches the filter.")
		return a.renderSection(a.resultsTitle(), strings.Join(lines, "\n"))
	}

	visible := a.visibleRows()
	end := a.topIndex + visible
	if end > len(recs) {
		end = len(recs)
	}
	for i := a.topIndex; i < end; i++ {
		r := recs[i]
		lines = append(lines, a.renderCardLine(r, i == a.cursor, contentWidth))
		if r.ScholarshipID == a.expandedID {
			lines = append(lines, a.renderCardDetail(r, contentWidth)...)
		}
	}

	total := len(recs)
	if total > 0 && visible > 0 {
		start := a.topIndex + 1
		endIdx := a.topIndex + visible
		if endIdx > total {
			endIdx = total
		}
		lines = append(lines, scrollStyle.Render(fmt.Sprintf("── showing %d-%d of %d ──", start, endIdx, total)))
	}

	return a.renderSection(a.resultsTitle(), strings.Join(lines, "\n"))
}

func (a *App) resultsTitle() string {
	if a.studentID == "" {
		return "Scholarship Matches"
	}
	return "Scholarship Matches · " + a.studentID
}

// renderCardLine is the collapsed, one-line form of a recommendation card:
// cursor, title, field, then the score badge tinted by tier.
func (a *App) renderCardLine(r api.Recommendation, selected bool, width int) string {
	prefix := "  "
	if selected {
		prefix = cursorStyle.Render("> ")
	}

	badgeText := score.Format(r.HybridScore)
	badge := lipgloss.NewStyle().Foreground(tierColor(score.TierFor(r.HybridScore))).Bold(true).Render(badgeText)
	badgeWidth := len(badgeText)

	fieldWidth := 18
	titleWidth := width - 2 - fieldWidth - badgeWidth - 4
	if titleWidth < 10 {
		titleWidth = 10
	}

	title := padRight(truncate(r.Title, titleWidth), titleWidth)
	field := padRight(truncate(r.Field, fieldWidth), fieldWidth)
	return prefix + title + "  " + fieldLabelStyle.Render(field) + "  " + badge
}

// renderCardDetail is the expanded body of a card: score bar, explanation
// and the fact rows, plus the feedback form when it is open.
func (a *App) renderCardDetail(r api.Recommendation, width int) []string {
	innerWidth := width - 4
	if innerWidth < 20 {
		innerWidth = 20
	}

	var b strings.Builder
	b.WriteString(renderScoreBar(r.WidthPercentage, 24))
	b.WriteString("\n")
	if r.Explanation != "" {
		b.WriteString(truncate(r.Explanation, innerWidth))
		b.WriteString("\n")
	}
	b.WriteString(fieldLabelStyle.Render("Eligibility  ") + truncate(r.Eligibility, innerWidth-13) + "\n")
	b.WriteString(fieldLabelStyle.Render("Deadline     ") + r.Deadline + "\n")
	b.WriteString(fieldLabelStyle.Render("Funding      ") + r.FundingType)

	if a.formActive {
		b.WriteString("\n\n")
		b.WriteString(a.renderFeedbackForm())
	} else {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("f to leave feedback"))
	}

	detail := detailBoxStyle.Render(b.String())
	return splitLines("  " + strings.ReplaceAll(detail, "\n", "\n  "))
}

// renderScoreBar draws the match strength as a fixed-width bar.
func renderScoreBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct/100*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	return barFillStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", width-filled)) +
		fieldLabelStyle.Render(fmt.Sprintf(" %.0f%%", pct))
}

func (a *App) renderFeedbackForm() string {
	var b strings.Builder

	ratingLabel := fieldLabelStyle
	if a.formFocus == formFieldRating {
		ratingLabel = focusedLabelStyle
	}
	b.WriteString(ratingLabel.Render("Rating   "))
	b.WriteString(renderRatingDots(a.rating))
	b.WriteString(fieldLabelStyle.Render(fmt.Sprintf("  %d/5", a.rating)))
	b.WriteString("\n")

	commentLabel := fieldLabelStyle
	commentValue := a.comment
	if a.formFocus == formFieldComment {
		commentLabel = focusedLabelStyle
		commentValue += caret
	}
	b.WriteString(commentLabel.Render("Comment  "))
	b.WriteString(commentValue)
	b.WriteString("\n\n")

	b.WriteString(a.renderButton(a.submitLabel(formFeedback), a.formFocus == formFieldSubmit, a.feedbackBusy))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(a.feedbackHint()))

	return b.String()
}

func (a *App) feedbackHint() string {
	switch a.formFocus {
	case formFieldRating:
		return a.hintFor("rating") + " (←/→ or 1-5)"
	case formFieldComment:
		return a.hintFor("comment")
	default:
		return "Press enter to submit."
	}
}

func renderRatingDots(rating int) string {
	var b strings.Builder
	for i := 1; i <= maxRating; i++ {
		if i > 1 {
			b.WriteString(" ")
		}
		if i <= rating {
			b.WriteString(barFillStyle.Render("●"))
		} else {
			b.WriteString(barEmptyStyle.Render("○"))
		}
	}
	return b.String()
}
