package postgresql

import (
	"context"
	"fmt"

	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/broadcast"
	"github.com/hunarmand-punjab/erp-backend-go/internal/pkg/database"
)

type broadcastRepository struct {
	db *database.DB
}

func NewBroadcastRepository(db *database.DB) broadcast.MessageRepository {
	return &broadcastRepository{db: db}
}

func (r *broadcastRepository) Create(ctx context.Context, msg broadcast.Message) (broadcast.Message, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO broadcast_messages (title, body, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, title, body, created_by, created_at
	`

	var created broadcast.Message
	err := q.QueryRow(ctx, query, msg.Title, msg.Body, msg.CreatedBy).Scan(
		&created.ID, &created.Title, &created.Body, &created.CreatedBy, &created.CreatedAt,
	)
	if err != nil {
		return broadcast.Message{}, fmt.Errorf("failed to create broadcast message: %w", err)
	}

	return created, nil
}

func (r *broadcastRepository) ListRecent(ctx context.Context, limit int) ([]broadcast.Message, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, title, body, created_by, created_at
		FROM broadcast_messages
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list broadcast messages: %w", err)
	}
	defer rows.Close()

	var messages []broadcast.Message
	for rows.Next() {
		var msg broadcast.Message
		if err := rows.Scan(&msg.ID, &msg.Title, &msg.Body, &msg.CreatedBy, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan broadcast message: %w", err)
		}
		messages = append(messages, msg)
	}

	return messages, nil
}
