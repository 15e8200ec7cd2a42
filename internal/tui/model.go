// Package tui implements the ScholarMatch terminal client: a profile form
// that requests scholarship matches, a results list with expandable
// recommendation cards, and per-card feedback forms that post back to the
// recommendation service.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/scholarmatch/internal/api"
	"github.com/jask/scholarmatch/internal/config"
)

const appName = "ScholarMatch"

// ---------------------------------------------------------------------------
// Screens
// ---------------------------------------------------------------------------

const (
	screenProfile = 0
	screenResults = 1
	screenCount   = 2
)

func screenTitle(s int) string {
	switch s {
	case screenProfile:
		return "Profile"
	case screenResults:
		return "Scholarships"
	default:
		return "?"
	}
}

// ---------------------------------------------------------------------------
// Profile form fields
// ---------------------------------------------------------------------------

const (
	profileFieldName = iota
	profileFieldMajor
	profileFieldInterests
	profileFieldGPA
	profileFieldSubmit // focus stop only, not a text input
)

// profileInputCount covers the text inputs, excluding the submit control.
const profileInputCount = 4

// ---------------------------------------------------------------------------
// Feedback form fields
// ---------------------------------------------------------------------------

const (
	formFieldRating = iota
	formFieldComment
	formFieldSubmit
)

const (
	defaultRating = 5
	minRating     = 1
	maxRating     = 5
)

// ---------------------------------------------------------------------------
// Key bindings
// ---------------------------------------------------------------------------

type keyMap struct {
	Quit      key.Binding
	Screen    key.Binding
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Feedback  key.Binding
	Filter    key.Binding
	Refresh   key.Binding
	Dismiss   key.Binding
	NextField key.Binding
	Submit    key.Binding
	Search    key.Binding
	Close     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screen: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch screen"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "expand/collapse"),
		),
		Feedback: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "feedback"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "dismiss alert"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Search: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search catalog"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Screen, k.Up, k.Down, k.Toggle, k.Feedback, k.Filter, k.Refresh, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

// prefetchDoneMsg carries recommendations fetched for a configured student at
// startup. Failures never reach the model: the fetch helper swallows them and
// delivers an empty set.
type prefetchDoneMsg struct {
	studentID string
	recs      []api.Recommendation
}

type recommendDoneMsg struct {
	student api.StudentProfile
	recs    []api.Recommendation
	err     error
}

type feedbackDoneMsg struct {
	scholarshipID string
	err           error
}

type remoteSearchMsg struct {
	query   string
	results []api.Scholarship
}

type alertExpiredMsg struct {
	id string
}

// ---------------------------------------------------------------------------
// App model
// ---------------------------------------------------------------------------

// App is the top-level Bubble Tea model.
type App struct {
	ctx    context.Context
	cfg    config.Config
	client *api.Client

	screen int
	width  int
	height int

	status    string
	statusErr bool

	alerts []alert

	// Profile screen.
	profileInputs [profileInputCount]string
	profileFocus  int
	profileBusy   bool

	// Results screen.
	recs       []api.Recommendation
	studentID  string
	cursor     int
	topIndex   int
	expandedID string

	// Feedback form, shown inside the expanded card.
	formActive   bool
	formFocus    int
	rating       int
	comment      string
	feedbackBusy bool

	// Filter over the results list.
	filterMode  bool
	filterQuery string

	keys  keyMap
	hints map[string]string
}

// New builds the initial model. Field hints are registered once here, so
// every hinted control resolves its help text from the same table for the
// lifetime of the program.
func New(ctx context.Context, cfg config.Config, client *api.Client) *App {
	return &App{
		ctx:       ctx,
		cfg:       cfg,
		client:    client,
		screen:    screenProfile,
		studentID: cfg.Student.ID,
		rating:    defaultRating,
		keys:      newKeyMap(),
		hints:     fieldHints(),
		status:    "Fill in a profile and press enter on Get Recommendations.",
	}
}

// Init prefetches recommendations when a student ID is configured. With no
// configured student there is nothing to load until a profile is submitted.
func (a *App) Init() tea.Cmd {
	if a.cfg.Student.ID == "" {
		return nil
	}
	return a.prefetchCmd(a.cfg.Student.ID)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case prefetchDoneMsg:
		return a.handlePrefetchDone(msg)
	case recommendDoneMsg:
		return a.handleRecommendDone(msg)
	case feedbackDoneMsg:
		return a.handleFeedbackDone(msg)
	case remoteSearchMsg:
		return a.handleRemoteSearch(msg)
	case alertExpiredMsg:
		a.removeAlert(msg.id)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c quits from anywhere, including typing modes.
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}
	// Alerts can be dismissed early from any mode.
	if key.Matches(msg, a.keys.Dismiss) {
		a.dismissNewestAlert()
		return a, nil
	}

	if a.filterMode {
		return a.updateFilter(msg)
	}
	if a.screen == screenProfile {
		return a.updateProfile(msg)
	}
	if a.formActive {
		return a.updateFeedbackForm(msg)
	}
	return a.updateResults(msg)
}

func (a *App) View() string {
	header := renderHeader(appName, a.screen, a.width)

	var body string
	switch a.screen {
	case screenProfile:
		body = a.profileView()
	default:
		body = a.resultsView()
	}

	main := header + "\n"
	if stack := a.renderAlerts(); stack != "" {
		main += stack + "\n"
	}
	main += "\n" + body

	return a.placeWithFooter(main, a.renderStatus(), a.renderFooter())
}
