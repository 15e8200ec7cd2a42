// Package score formats and classifies scholarship match scores.
//
// The recommender service reports match quality as a unit-interval fraction
// (hybrid_score). Everything user-facing goes through this package so the
// percentage formatting and severity tiers stay consistent across views.
package score

import "fmt"

// Tier is the severity bucket for a match score, used to pick badge styling.
type Tier string

const (
	TierSuccess   Tier = "success"
	TierWarning   Tier = "warning"
	TierSecondary Tier = "secondary"
)

func (t Tier) String() string { return string(t) }

// Format renders a unit-interval score as a percentage with one decimal
// place, e.g. 0.873 -> "87.3%".
func Format(s float64) string {
	return fmt.Sprintf("%.1f%%", s*100)
}

// TierFor buckets a unit-interval score. Lower bounds are inclusive:
// 0.8 is a success, 0.6 a warning, anything below secondary.
func TierFor(s float64) Tier {
	switch {
	case s >= 0.8:
		return TierSuccess
	case s >= 0.6:
		return TierWarning
	default:
		return TierSecondary
	}
}
