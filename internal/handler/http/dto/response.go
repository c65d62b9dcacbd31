package dto

// MessageResponse is a generic response for success messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToggleResponse reports a like/favorite toggle outcome. Success is false
// when the toggle was an idempotent no-op.
type ToggleResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CountResponse wraps a single counter value.
type CountResponse struct {
	Count int64 `json:"count"`
}

// CheckoutSessionResponse carries the hosted checkout redirect URL.
type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

// ReportFiledResponse acknowledges a filed moderation report.
type ReportFiledResponse struct {
	Message  string `json:"message"`
	ReportID string `json:"reportId"`
}
