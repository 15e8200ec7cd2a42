package tui

// Submit control labels, idle and busy. Busy labels double as the disabled
// state: while one is showing, the owning form ignores further submits.
const (
	profileSubmitIdle  = "Get Recommendations"
	profileSubmitBusy  = "Matching..."
	feedbackSubmitIdle = "Submit Feedback"
	feedbackSubmitBusy = "Submitting..."
)

type formID int

const (
	formProfile formID = iota
	formFeedback
)

// beginSubmit puts a form's submit control into the disabled busy state.
// This runs for every form submission in the app. Feedback forms also have
// their own submit handler, so a feedback submit passes through here first
// and then through submitFeedback; both fire on the same key event.
func (a *App) beginSubmit(f formID) {
	switch f {
	case formProfile:
		a.profileBusy = true
	case formFeedback:
		a.feedbackBusy = true
	}
}

// endSubmit re-enables a form's submit control and restores its idle label.
// Completion handlers defer this before inspecting the result, so the
// control comes back on success, rejection and transport failure alike.
func (a *App) endSubmit(f formID) {
	switch f {
	case formProfile:
		a.profileBusy = false
	case formFeedback:
		a.feedbackBusy = false
	}
}

func (a *App) submitLabel(f formID) string {
	switch f {
	case formProfile:
		if a.profileBusy {
			return profileSubmitBusy
		}
		return profileSubmitIdle
	default:
		if a.feedbackBusy {
			return feedbackSubmitBusy
		}
		return feedbackSubmitIdle
	}
}

// resetFeedbackForm clears the form back to its defaults. Runs after a
// successful submit and whenever the form moves to a different card.
func (a *App) resetFeedbackForm() {
	a.rating = defaultRating
	a.comment = ""
	a.formFocus = formFieldRating
}

func profileFieldLabel(i int) string {
	switch i {
	case profileFieldName:
		return "Name"
	case profileFieldMajor:
		return "Major"
	case profileFieldInterests:
		return "Interests"
	case profileFieldGPA:
		return "GPA"
	default:
		return ""
	}
}

func profileFieldHintKey(i int) string {
	switch i {
	case profileFieldName:
		return "name"
	case profileFieldMajor:
		return "major"
	case profileFieldInterests:
		return "interests"
	case profileFieldGPA:
		return "gpa"
	default:
		return ""
	}
}

// fieldHints is the hint table registered at startup, one entry per hinted
// control across both forms.
func fieldHints() map[string]string {
	return map[string]string{
		"name":      "Your full name",
		"major":     "Primary field of study, e.g. Computer Science",
		"interests": "Comma-separated interests, e.g. AI, robotics",
		"gpa":       "GPA on a 4.0 scale",
		"rating":    "1 = poor match, 5 = excellent match",
		"comment":   "Optional note on why this match did or did not fit",
	}
}

func (a *App) hintFor(id string) string {
	return a.hints[id]
}

// acceptProfileRune reports whether a typed rune belongs in the given
// profile field. The GPA field takes digits and a decimal point only, the
// rest take anything printable.
func acceptProfileRune(field int, r rune) bool {
	if field != profileFieldGPA {
		return true
	}
	return (r >= '0' && r <= '9') || r == '.'
}
