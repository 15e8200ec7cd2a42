// Package api is the HTTP client for the scholarship recommender service.
//
// The service is reached at a configurable base URL and exposes three
// surfaces this client cares about: a JSON recommend endpoint, a multipart
// feedback endpoint, and a per-student recommend lookup. Backend-reported
// failures come back as *APIError; anything that prevented a well-formed
// answer (connection, timeout, undecodable body) is a plain error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to one recommender service instance. Safe for concurrent use.
type Client struct {
	baseURL string
	timeout time.Duration
	httpc   *http.Client
	log     *slog.Logger
}

// New builds a client for the service at baseURL. A zero timeout falls back
// to 8 seconds; a nil logger falls back to slog's default.
func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		httpc:   &http.Client{},
		log:     log,
	}
}

type feedbackResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// SubmitFeedback posts one rating as multipart form data to /feedback.
// A response with status "success" returns nil; any other decoded status
// returns *APIError carrying the service's error message.
func (c *Client) SubmitFeedback(ctx context.Context, fb Feedback) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fields := [][2]string{
		{"student_id", fb.StudentID},
		{"scholarship_id", fb.ScholarshipID},
		{"rating", strconv.Itoa(fb.Rating)},
		{"comment", fb.Comment},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return fmt.Errorf("feedback: encode form: %w", err)
		}
	}
	for k, v := range fb.Extra {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("feedback: encode form: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("feedback: encode form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/feedback", &body)
	if err != nil {
		return fmt.Errorf("feedback: build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("feedback: post: %w", err)
	}
	defer resp.Body.Close()

	// The outcome is decided by the decoded status field, not the HTTP
	// status code; the service reports rejections as JSON either way.
	var out feedbackResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("feedback: decode response: %w", err)
	}
	if out.Status == "success" {
		return nil
	}
	return &APIError{Message: out.Error}
}

// Recommendations looks up stored recommendations for a known student via
// GET /api/recommend/{studentID}?top_n={topN}. Failures of any kind are
// logged and swallowed: callers get nil and never an error.
func (c *Client) Recommendations(ctx context.Context, studentID string, topN int) []Recommendation {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := fmt.Sprintf("%s/api/recommend/%s?top_n=%d", c.baseURL, url.PathEscape(studentID), topN)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		c.log.Error("recommendations: build request", "student", studentID, "err", err)
		return nil
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Error("recommendations: fetch", "student", studentID, "err", err)
		return nil
	}
	defer resp.Body.Close()

	var out []Recommendation
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.log.Error("recommendations: decode", "student", studentID, "err", err)
		return nil
	}
	return out
}

type recommendRequest struct {
	Name      string `json:"name"`
	Major     string `json:"major"`
	Interests string `json:"interests"`
	GPA       string `json:"gpa"`
	TopN      int    `json:"top_n"`
}

type recommendResponse struct {
	Student         StudentProfile   `json:"student"`
	Recommendations []Recommendation `json:"recommendations"`
	Error           string           `json:"error"`
}

// RecommendForProfile asks the service to score scholarships against an
// ad-hoc student profile via POST /api/recommend.
func (c *Client) RecommendForProfile(ctx context.Context, p StudentProfile, topN int) (StudentProfile, []Recommendation, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(recommendRequest{
		Name:      p.Name,
		Major:     p.Major,
		Interests: p.Interests,
		GPA:       p.GPA,
		TopN:      topN,
	})
	if err != nil {
		return StudentProfile{}, nil, fmt.Errorf("recommend: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/recommend", bytes.NewReader(payload))
	if err != nil {
		return StudentProfile{}, nil, fmt.Errorf("recommend: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return StudentProfile{}, nil, fmt.Errorf("recommend: post: %w", err)
	}
	defer resp.Body.Close()

	var out recommendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return StudentProfile{}, nil, fmt.Errorf("recommend: decode response: %w", err)
	}
	if out.Error != "" {
		return StudentProfile{}, nil, &APIError{Message: out.Error}
	}
	if resp.StatusCode != http.StatusOK {
		return StudentProfile{}, nil, fmt.Errorf("recommend: status %s", resp.Status)
	}
	return out.Student, out.Recommendations, nil
}

// SearchScholarships is a placeholder for a search endpoint the service does
// not expose yet. It logs the query and returns no results.
func (c *Client) SearchScholarships(ctx context.Context, query string) []Scholarship {
	c.log.Info("scholarship search not implemented", "query", query)
	return []Scholarship{}
}
