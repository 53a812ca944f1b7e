package models

import "time"

// Message is a broadcast announcement. There is no recipient; every
// authenticated identity sees every message.
type Message struct {
	ID       int64     `json:"id" db:"id"`
	SenderID int64     `json:"senderId" db:"sender_id"`
	Subject  string    `json:"subject" db:"subject"`
	Body     string    `json:"body" db:"body"`
	SentAt   time.Time `json:"sentAt" db:"sent_at"`
	IsRead   bool      `json:"isRead" db:"is_read"`
	Sender   *User     `json:"sender,omitempty"`
}
