package broadcast

import "time"

// Message is an announcement pushed from the admin to every connected
// employee and kept for later reading.
type Message struct {
	ID        string
	Title     string
	Body      string
	CreatedBy string
	CreatedAt time.Time
}
