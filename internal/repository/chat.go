package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/DerickW126/Volleyball-App/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ChatRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewChatRepo(db *dbpg.DB) *ChatRepository {
	return &ChatRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ChatRepository) Create(ctx context.Context, m *domain.ChatMessage) error {
	query := `INSERT INTO chat_messages (id, event_id, user_id, message, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		m.ID, m.EventID, m.UserID, m.Message, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}

	return nil
}

func (r *ChatRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.ChatMessage, error) {
	query := `SELECT id, event_id, user_id, message, created_at
			  FROM chat_messages
			  WHERE event_id=$1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	defer rows.Close()

	var res []*domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		if err = rows.Scan(&m.ID, &m.EventID, &m.UserID, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		res = append(res, &m)
	}

	return res, rows.Err()
}
