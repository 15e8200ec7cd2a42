package tui

import (
	"testing"

	"github.com/jask/scholarmatch/internal/api"
)

func TestMatchesQuerySubstring(t *testing.T) {
	r := api.Recommendation{Title: "Women in STEM Grant", Field: "Engineering"}

	for _, q := range []string{"stem", "STEM", "engineer", "grant"} {
		if !matchesQuery(r, q) {
			t.Errorf("matchesQuery(%q) = false, want true", q)
		}
	}
	if matchesQuery(r, "biology") {
		t.Error("matchesQuery(biology) = true, want false")
	}
}

func TestMatchesQueryFuzzy(t *testing.T) {
	r := api.Recommendation{Title: "Marine Biology Fund", Field: "Biology"}

	// One edit away from "biology", two from "fund".
	for _, q := range []string{"biolgy", "fnd"} {
		if !matchesQuery(r, q) {
			t.Errorf("matchesQuery(%q) = false, want fuzzy match", q)
		}
	}
	if matchesQuery(r, "robotics") {
		t.Error("matchesQuery(robotics) = true, want false")
	}
}

func TestShortQueriesMatchBySubstringOnly(t *testing.T) {
	r := api.Recommendation{Title: "Marine Biology Fund", Field: "Biology"}

	if !matchesQuery(r, "bi") {
		t.Error("two-letter substring should match")
	}
	// Two letters, not a substring: fuzzy must not kick in.
	if matchesQuery(r, "xy") {
		t.Error("two-letter non-substring matched fuzzily")
	}
}

func TestFilteredRecs(t *testing.T) {
	a := newFlowApp(t, "http://127.0.0.1:0")
	seedResults(a)

	if got := a.filteredRecs(); len(got) != 3 {
		t.Fatalf("empty query filtered = %d, want all 3", len(got))
	}

	a.filterQuery = "biology"
	got := a.filteredRecs()
	if len(got) != 1 || got[0].ScholarshipID != "S0002" {
		t.Fatalf("filtered = %+v, want only S0002", got)
	}

	a.filterQuery = "   "
	if got := a.filteredRecs(); len(got) != 3 {
		t.Errorf("whitespace query filtered = %d, want all 3", len(got))
	}

	a.filterQuery = "zzzz"
	if got := a.filteredRecs(); len(got) != 0 {
		t.Errorf("no-match query filtered = %d, want 0", len(got))
	}
}
