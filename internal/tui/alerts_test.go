package tui

import (
	"testing"
	"time"
)

func newAlertApp() *App {
	return &App{keys: newKeyMap(), hints: fieldHints(), rating: defaultRating}
}

func TestAlertTTL(t *testing.T) {
	if alertTTL != 5*time.Second {
		t.Errorf("alertTTL = %v, want 5s", alertTTL)
	}
}

func TestPushAlertStacksNewestFirst(t *testing.T) {
	a := newAlertApp()
	a.pushAlert(alertSuccess, "first")
	a.pushAlert(alertError, "second")

	if len(a.alerts) != 2 {
		t.Fatalf("alerts = %d, want 2", len(a.alerts))
	}
	if a.alerts[0].text != "second" || a.alerts[1].text != "first" {
		t.Errorf("order = [%q, %q], want newest first", a.alerts[0].text, a.alerts[1].text)
	}
	if a.alerts[0].id == a.alerts[1].id {
		t.Error("alerts share an id")
	}
}

func TestPushAlertReturnsExpiryCmd(t *testing.T) {
	a := newAlertApp()
	if cmd := a.pushAlert(alertInfo, "note"); cmd == nil {
		t.Fatal("pushAlert returned no expiry command")
	}
}

func TestRemoveAlertUnknownIDIsNoOp(t *testing.T) {
	a := newAlertApp()
	a.pushAlert(alertSuccess, "kept")
	a.removeAlert("not-a-real-id")
	if len(a.alerts) != 1 {
		t.Errorf("alerts = %d, want untouched stack", len(a.alerts))
	}
}

// A manual dismissal followed by the original timer firing must not blow up
// or remove a different alert.
func TestDismissThenExpiry(t *testing.T) {
	a := newAlertApp()
	a.pushAlert(alertSuccess, "going away")
	id := a.alerts[0].id

	a.dismissNewestAlert()
	if len(a.alerts) != 0 {
		t.Fatalf("alerts after dismiss = %d, want 0", len(a.alerts))
	}

	a.removeAlert(id)
	if len(a.alerts) != 0 {
		t.Errorf("alerts after stale expiry = %d, want 0", len(a.alerts))
	}
}

func TestDismissOnEmptyStack(t *testing.T) {
	a := newAlertApp()
	a.dismissNewestAlert()
	if len(a.alerts) != 0 {
		t.Errorf("alerts = %d, want 0", len(a.alerts))
	}
}

func TestExpiryRemovesOnlyItsAlert(t *testing.T) {
	a := newAlertApp()
	a.pushAlert(alertSuccess, "older")
	a.pushAlert(alertError, "newer")
	olderID := a.alerts[1].id

	a.removeAlert(olderID)
	if len(a.alerts) != 1 || a.alerts[0].text != "newer" {
		t.Fatalf("alerts = %+v, want only the newer alert", a.alerts)
	}
}
