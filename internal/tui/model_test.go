package tui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jask/scholarmatch/internal/api"
)

func TestToggleCardResetsFormOnSwitch(t *testing.T) {
	a := newFlowApp(t, "http://127.0.0.1:0")
	seedResults(a)

	a.toggleCard()
	a.rating = 2
	a.comment = "half-written note"

	a.cursor = 1
	a.toggleCard()

	if a.expandedID != "S0002" {
		t.Fatalf("expandedID = %q, want S0002", a.expandedID)
	}
	if a.rating != defaultRating || a.comment != "" {
		t.Errorf("form carried over: rating=%d comment=%q", a.rating, a.comment)
	}
}

func TestReopenFormOnSameCardKeepsDraft(t *testing.T) {
	a := newFlowApp(t, "http://127.0.0.1:0")
	seedResults(a)

	a.openFeedbackForm()
	a.comment = "keep me"
	a = flowPress(t, a, "esc")
	if a.formActive {
		t.Fatal("form still open after esc")
	}

	a.openFeedbackForm()
	if a.comment != "keep me" {
		t.Errorf("comment = %q, want draft kept on the same card", a.comment)
	}
}

func TestSubmitLabels(t *testing.T) {
	a := newFlowApp(t, "http://127.0.0.1:0")

	if got := a.submitLabel(formProfile); got != profileSubmitIdle {
		t.Errorf("profile idle label = %q, want %q", got, profileSubmitIdle)
	}
	if got := a.submitLabel(formFeedback); got != feedbackSubmitIdle {
		t.Errorf("feedback idle label = %q, want %q", got, feedbackSubmitIdle)
	}

	a.beginSubmit(formProfile)
	a.beginSubmit(formFeedback)
	if got := a.submitLabel(formProfile); got != profileSubmitBusy {
		t.Errorf("profile busy label = %q, want %q", got, profileSubmitBusy)
	}
	if got := a.submitLabel(formFeedback); got != feedbackSubmitBusy {
		t.Errorf("feedback busy label = %q, want %q", got, feedbackSubmitBusy)
	}

	a.endSubmit(formProfile)
	a.endSubmit(formFeedback)
	if a.profileBusy || a.feedbackBusy {
		t.Error("busy flags still set after endSubmit")
	}
}

func TestHintsRegistered(t *testing.T) {
	a := newFlowApp(t, "http://127.0.0.1:0")

	for _, id := range []string{"name", "major", "interests", "gpa", "rating", "comment"} {
		if a.hintFor(id) == "" {
			t.Errorf("no hint registered for %q", id)
		}
	}
	if a.hintFor("unknown") != "" {
		t.Error("unknown control returned a hint")
	}
}

func TestMoveCursorScrollsWindow(t *testing.T) {
	a := newFlowApp(t, "http://127.0.0.1:0")
	recs := make([]api.Recommendation, 30)
	for i := range recs {
		recs[i] = api.Recommendation{
			ScholarshipID: fmt.Sprintf("S%04d", i+1),
			Title:         fmt.Sprintf("Grant %d", i+1),
			HybridScore:   0.5,
		}
	}
	a.recs = recs
	a.screen = screenResults

	for i := 0; i < 25; i++ {
		a.moveCursor(1)
	}
	if a.cursor != 25 {
		t.Fatalf("cursor = %d, want 25", a.cursor)
	}
	visible := a.visibleRows()
	if want := 25 - visible + 1; a.topIndex != want {
		t.Errorf("topIndex = %d, want %d", a.topIndex, want)
	}

	for i := 0; i < 40; i++ {
		a.moveCursor(-1)
	}
	if a.cursor != 0 || a.topIndex != 0 {
		t.Errorf("cursor/topIndex = %d/%d, want 0/0 after scrolling home", a.cursor, a.topIndex)
	}

	for i := 0; i < 40; i++ {
		a.moveCursor(1)
	}
	if a.cursor != 29 {
		t.Errorf("cursor = %d, want clamped to 29", a.cursor)
	}
}

func TestViewProfileScreen(t *testing.T) {
	a := newFlowApp(t, "http://127.0.0.1:0")

	view := a.View()
	for _, want := range []string{"ScholarMatch", "Student Profile", "Name", "Get Recommendations", "Your full name"} {
		if !strings.Contains(view, want) {
			t.Errorf("profile view missing %q", want)
		}
	}
}

func TestViewResultsScreen(t *testing.T) {
	a := newFlowApp(t, "http://127.0.0.1:0")
	seedResults(a)

	view := a.View()
	for _, want := range []string{"Scholarship Matches · STU0001", "Women in STEM Grant", "87.3%", "showing 1-3 of 3"} {
		if !strings.Contains(view, want) {
			t.Errorf("results view missing %q", want)
		}
	}
}

func TestViewExpandedCard(t *testing.T) {
	a := newFlowApp(t, "http://127.0.0.1:0")
	seedResults(a)
	a.toggleCard()

	view := a.View()
	for _, want := range []string{"Eligibility", "3.0+ GPA", "Merit-based", "f to leave feedback"} {
		if !strings.Contains(view, want) {
			t.Errorf("expanded view missing %q", want)
		}
	}
}

func TestViewFeedbackForm(t *testing.T) {
	a := newFlowApp(t, "http://127.0.0.1:0")
	seedResults(a)
	a.openFeedbackForm()

	view := a.View()
	for _, want := range []string{"Rating", "5/5", "Comment", "Submit Feedback"} {
		if !strings.Contains(view, want) {
			t.Errorf("feedback form view missing %q", want)
		}
	}

	a.beginSubmit(formFeedback)
	view = a.View()
	if !strings.Contains(view, feedbackSubmitBusy) {
		t.Errorf("busy view missing %q", feedbackSubmitBusy)
	}
}

func TestViewAlertStack(t *testing.T) {
	a := newFlowApp(t, "http://127.0.0.1:0")
	seedResults(a)
	a.pushAlert(alertSuccess, "Thank you for your feedback!")

	view := a.View()
	if !strings.Contains(view, "Thank you for your feedback!") {
		t.Error("view missing alert text")
	}
	if !strings.Contains(view, "ctrl+x to dismiss") {
		t.Error("view missing dismiss hint")
	}
}
