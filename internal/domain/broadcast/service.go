package broadcast

import "context"

type BroadcastService interface {
	// Send stores the message and pushes it to every connected stream.
	Send(ctx context.Context, req SendMessageRequest) (MessageResponse, error)

	ListRecent(ctx context.Context, limit int) ([]MessageResponse, error)
}
