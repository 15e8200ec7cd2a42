package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/scholarmatch/internal/api"
)

// prefetchCmd loads recommendations for a configured student. It rides on
// the client helper that swallows failures, so the worst case is an empty
// result set, never an error message at startup.
func (a *App) prefetchCmd(studentID string) tea.Cmd {
	return func() tea.Msg {
		recs := a.client.Recommendations(a.ctx, studentID, a.cfg.Recommend.TopN)
		return prefetchDoneMsg{studentID: studentID, recs: recs}
	}
}

// recommendCmd submits the profile form and requests matches for it.
func (a *App) recommendCmd() tea.Cmd {
	p := api.StudentProfile{
		Name:      strings.TrimSpace(a.profileInputs[profileFieldName]),
		Major:     strings.TrimSpace(a.profileInputs[profileFieldMajor]),
		Interests: strings.TrimSpace(a.profileInputs[profileFieldInterests]),
		GPA:       strings.TrimSpace(a.profileInputs[profileFieldGPA]),
	}
	topN := a.cfg.Recommend.TopN
	return func() tea.Msg {
		student, recs, err := a.client.RecommendForProfile(a.ctx, p, topN)
		return recommendDoneMsg{student: student, recs: recs, err: err}
	}
}

// submitFeedbackCmd posts the feedback form for the card it belongs to.
func (a *App) submitFeedbackCmd(scholarshipID string) tea.Cmd {
	studentID := a.studentID
	if studentID == "" {
		// Same label the service gives ad-hoc profiles.
		studentID = "Custom Profile"
	}
	fb := api.Feedback{
		StudentID:     studentID,
		ScholarshipID: scholarshipID,
		Rating:        a.rating,
		Comment:       strings.TrimSpace(a.comment),
	}
	return func() tea.Msg {
		err := a.client.SubmitFeedback(a.ctx, fb)
		return feedbackDoneMsg{scholarshipID: scholarshipID, err: err}
	}
}

// searchCmd runs the catalog-wide scholarship search.
func (a *App) searchCmd(query string) tea.Cmd {
	return func() tea.Msg {
		results := a.client.SearchScholarships(a.ctx, query)
		return remoteSearchMsg{query: query, results: results}
	}
}
