package dto

import "github.com/google/uuid"

// MessageResponse is the shared error and status body shape:
// a human-readable message plus optional itemized errors.
type MessageResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// CreatedResponse is returned after a successful submission
type CreatedResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

// HealthResponse reports process liveness and store connectivity
type HealthResponse struct {
	OK    bool `json:"ok"`
	Store bool `json:"store"`
}

// NewMessageResponse creates a response with only a message
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// NewValidationErrorResponse creates a 400 body with itemized field errors
func NewValidationErrorResponse(errors []string) MessageResponse {
	return MessageResponse{
		Message: "Validation failed",
		Errors:  errors,
	}
}

// NewCreatedResponse creates the 201 body for a stored reservation
func NewCreatedResponse(id uuid.UUID) CreatedResponse {
	return CreatedResponse{
		Message: "Saved",
		ID:      id,
	}
}
