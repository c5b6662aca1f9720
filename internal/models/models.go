package models

// ExtractionRequest carries one uploaded file through the dispatcher.
// It lives for a single HTTP call and is never shared.
type ExtractionRequest struct {
	RequestID   string
	Filename    string
	ContentType string
	Data        []byte
}

// ExtractionResult is the uniform outcome of every extraction pipeline.
//
// Success: true when Text holds extracted content.
// Text:    extracted content, or a human-readable diagnostic when Success is false.
// Method:  name of the strategy that produced Text, "none" on failure.
type ExtractionResult struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
	Method  string `json:"method"`
}

// ErrorResponse is returned for request-level failures, where extraction was never attempted.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
