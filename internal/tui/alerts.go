package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// alertTTL is how long an alert stays on screen before it removes itself.
const alertTTL = 5 * time.Second

type alertSeverity int

const (
	alertSuccess alertSeverity = iota
	alertError
	alertInfo
)

// alert is a transient notification. Each one carries its own id so the
// expiry timer can tell whether its alert is still present when it fires.
type alert struct {
	id       string
	severity alertSeverity
	text     string
}

// pushAlert prepends an alert, newest first, and returns the command that
// expires it after alertTTL.
func (a *App) pushAlert(sev alertSeverity, text string) tea.Cmd {
	al := alert{
		id:       uuid.NewString(),
		severity: sev,
		text:     text,
	}
	a.alerts = append([]alert{al}, a.alerts...)
	return alertExpireCmd(al.id)
}

// removeAlert drops the alert with the given id. An id that is no longer
// present is a no-op, so an expiry timer firing after a manual dismissal
// does nothing rather than failing.
func (a *App) removeAlert(id string) {
	for i, al := range a.alerts {
		if al.id == id {
			a.alerts = append(a.alerts[:i], a.alerts[i+1:]...)
			return
		}
	}
}

// dismissNewestAlert closes the most recent alert ahead of its timer.
func (a *App) dismissNewestAlert() {
	if len(a.alerts) == 0 {
		return
	}
	a.alerts = a.alerts[1:]
}

func alertExpireCmd(id string) tea.Cmd {
	return tea.Tick(alertTTL, func(time.Time) tea.Msg {
		return alertExpiredMsg{id: id}
	})
}
