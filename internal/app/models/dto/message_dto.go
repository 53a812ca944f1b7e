package dto

import "time"

// SendMessageRequest carries a broadcast message payload.
type SendMessageRequest struct {
	Subject string `json:"subject" binding:"required,max=255"`
	Body    string `json:"body" binding:"required"`
}

// MessageResponse is the caller-facing message representation.
type MessageResponse struct {
	ID      int64        `json:"id"`
	Subject string       `json:"subject"`
	Body    string       `json:"body"`
	Sender  *UserSummary `json:"sender,omitempty"`
	SentAt  time.Time    `json:"sentAt"`
	IsRead  bool         `json:"isRead"`
}
