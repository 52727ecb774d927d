package dto

// MessageResponse represents a standard message-only response for API endpoints
type MessageResponse struct {
	Message string `json:"message"`
}
