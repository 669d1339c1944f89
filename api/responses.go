package api

// HealthResponse is the /api/health payload.
type HealthResponse struct {
	OK   bool   `json:"ok"`
	Name string `json:"name"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}
