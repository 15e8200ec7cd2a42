package api

// Recommendation is one scored scholarship match as the recommender service
// returns it. Field names follow the service's JSON exactly.
type Recommendation struct {
	ScholarshipID   string  `json:"scholarship_id"`
	Title           string  `json:"title"`
	Field           string  `json:"field"`
	HybridScore     float64 `json:"hybrid_score"`
	WidthPercentage float64 `json:"width_percentage"`
	Explanation     string  `json:"explanation"`
	Description     string  `json:"description"`
	Eligibility     string  `json:"eligibility"`
	Deadline        string  `json:"deadline"`
	FundingType     string  `json:"funding_type"`
}

// StudentProfile is the ad-hoc profile sent to the recommend endpoint.
// GPA stays a string on the wire; the service treats it as opaque text.
type StudentProfile struct {
	Name      string `json:"name"`
	Major     string `json:"major"`
	Interests string `json:"interests"`
	GPA       string `json:"gpa"`
}

// Feedback is one rating submission for a recommended scholarship. Extra
// carries any additional form fields; no validation is applied client-side.
type Feedback struct {
	StudentID     string
	ScholarshipID string
	Rating        int
	Comment       string
	Extra         map[string]string
}

// Scholarship is a bare search hit, for the not-yet-live search endpoint.
type Scholarship struct {
	ID    string `json:"scholarship_id"`
	Title string `json:"title"`
	Field string `json:"field"`
}
