package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/broadcast"
	"github.com/hunarmand-punjab/erp-backend-go/internal/handler/http/response"
	"github.com/hunarmand-punjab/erp-backend-go/internal/pkg/jwt"
	"github.com/hunarmand-punjab/erp-backend-go/internal/pkg/sse"
)

type BroadcastHandler interface {
	Send(w http.ResponseWriter, r *http.Request)
	ListRecent(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type BroadcastHandlerImpl struct {
	broadcastService broadcast.BroadcastService
	hub              *sse.Hub
	jwtService       jwt.Service
}

func NewBroadcastHandler(broadcastService broadcast.BroadcastService, hub *sse.Hub, jwtService jwt.Service) BroadcastHandler {
	return &BroadcastHandlerImpl{
		broadcastService: broadcastService,
		hub:              hub,
		jwtService:       jwtService,
	}
}

// Send implements BroadcastHandler.
func (h *BroadcastHandlerImpl) Send(w http.ResponseWriter, r *http.Request) {
	var req broadcast.SendMessageRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Send broadcast decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	msg, err := h.broadcastService.Send(r.Context(), req)
	if err != nil {
		slog.Error("Send broadcast service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Broadcast sent", "message_id", msg.ID, "subscribers", h.hub.SubscriberCount())
	response.Created(w, "Broadcast sent successfully", msg)
}

// ListRecent implements BroadcastHandler.
func (h *BroadcastHandlerImpl) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil {
			response.BadRequest(w, "limit must be a number", nil)
			return
		}
		limit = n
	}

	messages, err := h.broadcastService.ListRecent(r.Context(), limit)
	if err != nil {
		slog.Error("List broadcasts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, messages)
}

// Stream implements BroadcastHandler. EventSource clients cannot set an
// Authorization header, so the short-lived stream token rides in the query
// string instead.
func (h *BroadcastHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	userID, err := h.jwtService.ValidateStreamToken(tokenStr)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(userID)
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"user_id\":\"%s\"}\n\n", userID)
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()
		case <-keepalive.C:
			fmt.Fprint(w, ": keepalive\n\n")
			flusher.Flush()
		case <-r.Context().Done():
			return
		}
	}
}
