package broadcast

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/broadcast"
	"github.com/hunarmand-punjab/erp-backend-go/internal/pkg/sse"
)

type BroadcastServiceImpl struct {
	messageRepo broadcast.MessageRepository
	hub         *sse.Hub
}

func NewBroadcastService(messageRepo broadcast.MessageRepository, hub *sse.Hub) broadcast.BroadcastService {
	return &BroadcastServiceImpl{
		messageRepo: messageRepo,
		hub:         hub,
	}
}

func (s *BroadcastServiceImpl) Send(ctx context.Context, req broadcast.SendMessageRequest) (broadcast.MessageResponse, error) {
	if err := req.Validate(); err != nil {
		return broadcast.MessageResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return broadcast.MessageResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return broadcast.MessageResponse{}, fmt.Errorf("user_id claim is missing")
	}

	msg, err := s.messageRepo.Create(ctx, broadcast.Message{
		Title:     req.Title,
		Body:      req.Body,
		CreatedBy: userID,
	})
	if err != nil {
		return broadcast.MessageResponse{}, err
	}

	resp := broadcast.ToResponse(msg)

	// The row is the source of truth; the push is best effort for whoever
	// is connected right now.
	s.hub.PublishAll(sse.Event{Event: "broadcast", Data: resp})

	return resp, nil
}

func (s *BroadcastServiceImpl) ListRecent(ctx context.Context, limit int) ([]broadcast.MessageResponse, error) {
	messages, err := s.messageRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]broadcast.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		responses = append(responses, broadcast.ToResponse(msg))
	}
	return responses, nil
}
