package messages

import (
	"context"
	"fmt"

	"github.com/orderly-app/orderly/internal/dbx"
	"github.com/orderly-app/orderly/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, msg *models.Message) error {

	query :=
		`INSERT INTO messages (id, sender_id, receiver_id, body, sent_at)
		 VALUES ($1, $2, $3, $4, $5)
		 `

	_, err := r.db.ExecContext(ctx, query,
		msg.ID, msg.SenderID, msg.ReceiverID, msg.Body, msg.SentAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Conversation(ctx context.Context, userID, peerID string, limit int) ([]models.Message, error) {

	query :=
		`SELECT id, sender_id, receiver_id, body, sent_at
		 FROM messages
		 WHERE (sender_id = $1 AND receiver_id = $2)
		    OR (sender_id = $2 AND receiver_id = $1)
		 ORDER BY sent_at
		 LIMIT $3
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, peerID, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	list := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Body, &m.SentAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return list, nil
}
