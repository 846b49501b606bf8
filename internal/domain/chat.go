package domain

import "time"

// ChatRequest represents a message sent to the site assistant
type ChatRequest struct {
	Message string `json:"message" binding:"required,min=1,max=1000"`
}

// ChatResponse represents the assistant reply
type ChatResponse struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}
