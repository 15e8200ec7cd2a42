package api

// APIError is a failure the recommender service reported itself: the request
// reached the backend, which answered with a non-success status and a
// message. Its message is safe to show to the user verbatim. Transport and
// decode failures are returned as plain errors and should not be surfaced
// with technical detail.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "api: " + e.Message
}
