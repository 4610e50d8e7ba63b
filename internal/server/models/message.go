package models

import "time"

// Message is a stored direct message. The schema is reserved for the
// messaging feature: no request handler reads or writes it yet.
type Message struct {
	ID         string
	SenderID   string
	ReceiverID string
	Body       string
	SentAt     time.Time
}
