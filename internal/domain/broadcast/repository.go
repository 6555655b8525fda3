package broadcast

import "context"

// MessageRepository defines data access methods for broadcast messages.
type MessageRepository interface {
	Create(ctx context.Context, msg Message) (Message, error)

	// ListRecent returns the newest messages first, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]Message, error)
}
