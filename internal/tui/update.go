package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/scholarmatch/internal/api"
)

// ---------------------------------------------------------------------------
// Async result handlers
// ---------------------------------------------------------------------------

func (a *App) handlePrefetchDone(msg prefetchDoneMsg) (tea.Model, tea.Cmd) {
	if len(msg.recs) == 0 {
		if len(a.recs) > 0 {
			a.setStatus("Refresh returned nothing; keeping current matches.")
		} else {
			a.setStatus("No stored matches for " + msg.studentID + ". Submit a profile to get recommendations.")
		}
		return a, nil
	}
	a.recs = msg.recs
	a.studentID = msg.studentID
	a.screen = screenResults
	a.resetList()
	a.setStatus(fmt.Sprintf("Loaded %d matches for %s.", len(msg.recs), msg.studentID))
	return a, nil
}

func (a *App) handleRecommendDone(msg recommendDoneMsg) (tea.Model, tea.Cmd) {
	defer a.endSubmit(formProfile)

	if msg.err != nil {
		var apiErr *api.APIError
		if errors.As(msg.err, &apiErr) {
			a.setError(apiErr.Message)
			return a, a.pushAlert(alertError, "Error: "+apiErr.Message)
		}
		slog.Error("recommend request failed", "err", msg.err)
		a.setError("Could not reach the recommendation service.")
		return a, a.pushAlert(alertError, "Could not reach the recommendation service.")
	}

	a.recs = msg.recs
	a.studentID = a.cfg.Student.ID
	if a.studentID == "" {
		// The service labels ad-hoc profiles this way.
		a.studentID = "Custom Profile"
	}
	a.screen = screenResults
	a.resetList()
	a.expandedID = ""
	a.formActive = false
	a.filterMode = false
	a.filterQuery = ""

	name := msg.student.Name
	if name == "" {
		name = a.studentID
	}
	a.setStatus(fmt.Sprintf("Matched %d scholarships for %s.", len(msg.recs), name))
	return a, nil
}

// handleFeedbackDone finishes a feedback submission. Re-enabling the submit
// control is deferred up front so it happens on every path out of here:
// success, rejection by the service, or a transport failure.
func (a *App) handleFeedbackDone(msg feedbackDoneMsg) (tea.Model, tea.Cmd) {
	defer a.endSubmit(formFeedback)

	if msg.err == nil {
		a.resetFeedbackForm()
		a.formActive = false
		if a.expandedID == msg.scholarshipID {
			a.expandedID = ""
		}
		a.setStatus("Feedback recorded for " + msg.scholarshipID + ".")
		return a, a.pushAlert(alertSuccess, "Thank you for your feedback!")
	}

	var apiErr *api.APIError
	if errors.As(msg.err, &apiErr) {
		a.setError(apiErr.Message)
		return a, a.pushAlert(alertError, "Error: "+apiErr.Message)
	}

	slog.Error("feedback submit failed", "scholarship", msg.scholarshipID, "err", msg.err)
	a.setError("Feedback submission failed.")
	return a, a.pushAlert(alertError, "Error submitting feedback. Please try again.")
}

func (a *App) handleRemoteSearch(msg remoteSearchMsg) (tea.Model, tea.Cmd) {
	if len(msg.results) == 0 {
		a.setStatus(fmt.Sprintf("Catalog search for %q is not available yet; filtering loaded matches instead.", msg.query))
		return a, nil
	}
	a.setStatus(fmt.Sprintf("Catalog search returned %d scholarships.", len(msg.results)))
	return a, nil
}

func (a *App) setStatus(text string) {
	a.status = text
	a.statusErr = false
}

func (a *App) setError(text string) {
	a.status = text
	a.statusErr = true
}

// ---------------------------------------------------------------------------
// Profile screen keys
// ---------------------------------------------------------------------------

func (a *App) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		a.profileFocus = (a.profileFocus + 1) % (profileFieldSubmit + 1)
		return a, nil
	case tea.KeyShiftTab, tea.KeyUp:
		a.profileFocus--
		if a.profileFocus < 0 {
			a.profileFocus = profileFieldSubmit
		}
		return a, nil
	case tea.KeyEsc:
		if len(a.recs) > 0 {
			a.screen = screenResults
		}
		return a, nil
	case tea.KeyEnter:
		return a.submitProfile()
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if a.profileFocus < profileInputCount {
			a.profileInputs[a.profileFocus] = trimLastRune(a.profileInputs[a.profileFocus])
		}
		return a, nil
	case tea.KeySpace:
		if a.profileFocus < profileInputCount && acceptProfileRune(a.profileFocus, ' ') {
			a.profileInputs[a.profileFocus] += " "
		}
		return a, nil
	case tea.KeyRunes:
		if a.profileFocus < profileInputCount {
			for _, r := range msg.Runes {
				if acceptProfileRune(a.profileFocus, r) {
					a.profileInputs[a.profileFocus] += string(r)
				}
			}
		}
		return a, nil
	}
	return a, nil
}

// submitProfile runs the shared submit routine for the profile form. While
// a request is in flight the control is disabled and further submits are
// dropped.
func (a *App) submitProfile() (tea.Model, tea.Cmd) {
	if a.profileBusy {
		return a, nil
	}
	a.beginSubmit(formProfile)
	a.setStatus("Matching scholarships...")
	return a, a.recommendCmd()
}

// ---------------------------------------------------------------------------
// Results screen keys
// ---------------------------------------------------------------------------

func (a *App) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Screen):
		a.screen = screenProfile
		return a, nil
	case key.Matches(msg, a.keys.Up):
		a.moveCursor(-1)
		return a, nil
	case key.Matches(msg, a.keys.Down):
		a.moveCursor(1)
		return a, nil
	case key.Matches(msg, a.keys.Toggle):
		a.toggleCard()
		return a, nil
	case key.Matches(msg, a.keys.Feedback):
		a.openFeedbackForm()
		return a, nil
	case key.Matches(msg, a.keys.Filter):
		a.filterMode = true
		a.setStatus("Type to filter matches, enter to search the catalog, esc to clear.")
		return a, nil
	case key.Matches(msg, a.keys.Refresh):
		return a.refresh()
	case msg.Type == tea.KeyEsc:
		a.collapseCard()
		return a, nil
	}
	return a, nil
}

// toggleCard expands the card under the cursor and collapses whichever card
// was open before. At most one card is expanded at a time.
func (a *App) toggleCard() {
	recs := a.filteredRecs()
	if len(recs) == 0 || a.cursor >= len(recs) {
		return
	}
	id := recs[a.cursor].ScholarshipID
	if a.expandedID == id {
		a.collapseCard()
		return
	}
	a.expandedID = id
	a.formActive = false
	a.resetFeedbackForm()
}

func (a *App) collapseCard() {
	a.expandedID = ""
	a.formActive = false
}

// openFeedbackForm opens the form inside the card under the cursor,
// expanding the card first when necessary. Moving to a different card gets
// a fresh form.
func (a *App) openFeedbackForm() {
	recs := a.filteredRecs()
	if len(recs) == 0 || a.cursor >= len(recs) {
		return
	}
	id := recs[a.cursor].ScholarshipID
	if a.expandedID != id {
		a.expandedID = id
		a.resetFeedbackForm()
	}
	a.formActive = true
	a.formFocus = formFieldRating
}

// refresh re-requests matches through the stored-student endpoint. A fetch
// that comes back empty leaves the current list alone.
func (a *App) refresh() (tea.Model, tea.Cmd) {
	if a.studentID == "" {
		a.setStatus("No student to refresh; submit a profile first.")
		return a, nil
	}
	a.setStatus("Refreshing matches for " + a.studentID + "...")
	return a, a.prefetchCmd(a.studentID)
}

func (a *App) resetList() {
	a.cursor = 0
	a.topIndex = 0
}

func (a *App) moveCursor(delta int) {
	n := len(a.filteredRecs())
	if n == 0 {
		a.resetList()
		return
	}
	a.cursor += delta
	if a.cursor < 0 {
		a.cursor = 0
	}
	if a.cursor > n-1 {
		a.cursor = n - 1
	}
	a.ensureCursorInWindow(n)
}

// ---------------------------------------------------------------------------
// Feedback form keys
// ---------------------------------------------------------------------------

func (a *App) updateFeedbackForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.formActive = false
		return a, nil
	case tea.KeyEnter:
		return a.submitFeedback()
	case tea.KeyTab, tea.KeyDown:
		a.formFocus = (a.formFocus + 1) % (formFieldSubmit + 1)
		return a, nil
	case tea.KeyShiftTab, tea.KeyUp:
		a.formFocus--
		if a.formFocus < 0 {
			a.formFocus = formFieldSubmit
		}
		return a, nil
	case tea.KeyLeft:
		if a.formFocus == formFieldRating && a.rating > minRating {
			a.rating--
		}
		return a, nil
	case tea.KeyRight:
		if a.formFocus == formFieldRating && a.rating < maxRating {
			a.rating++
		}
		return a, nil
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if a.formFocus == formFieldComment {
			a.comment = trimLastRune(a.comment)
		}
		return a, nil
	case tea.KeySpace:
		if a.formFocus == formFieldComment {
			a.comment += " "
		}
		return a, nil
	case tea.KeyRunes:
		switch a.formFocus {
		case formFieldRating:
			for _, r := range msg.Runes {
				if r >= '1' && r <= '5' {
					a.rating = int(r - '0')
				}
			}
		case formFieldComment:
			a.comment += string(msg.Runes)
		}
		return a, nil
	}
	return a, nil
}

// submitFeedback fires both submit-time behaviors a feedback form carries:
// the shared busy-state routine every form gets, then the feedback handler
// that builds and posts the request. Both run off the same key event.
func (a *App) submitFeedback() (tea.Model, tea.Cmd) {
	if a.feedbackBusy {
		return a, nil
	}
	a.beginSubmit(formFeedback)
	a.setStatus("Submitting feedback for " + a.expandedID + "...")
	return a, a.submitFeedbackCmd(a.expandedID)
}

// ---------------------------------------------------------------------------
// Filter keys
// ---------------------------------------------------------------------------

func (a *App) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.filterMode = false
		a.filterQuery = ""
		a.resetList()
		a.setStatus("Filter cleared.")
		return a, nil
	case tea.KeyEnter:
		a.filterMode = false
		q := strings.TrimSpace(a.filterQuery)
		if q == "" {
			return a, nil
		}
		return a, a.searchCmd(q)
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		a.filterQuery = trimLastRune(a.filterQuery)
		a.resetList()
		return a, nil
	case tea.KeySpace:
		a.filterQuery += " "
		a.resetList()
		return a, nil
	case tea.KeyRunes:
		a.filterQuery += string(msg.Runes)
		a.resetList()
		return a, nil
	}
	return a, nil
}

func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
