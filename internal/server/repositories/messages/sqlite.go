package messages

import (
	"context"
	"fmt"

	"github.com/orderly-app/orderly/internal/dbx"
	"github.com/orderly-app/orderly/internal/server/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, msg *models.Message) error {

	query :=
		`INSERT INTO messages (id, sender_id, receiver_id, body, sent_at)
		 VALUES (?, ?, ?, ?, ?)
		 `

	_, err := r.db.ExecContext(ctx, query,
		msg.ID, msg.SenderID, msg.ReceiverID, msg.Body, msg.SentAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Conversation(ctx context.Context, userID, peerID string, limit int) ([]models.Message, error) {

	query :=
		`SELECT id, sender_id, receiver_id, body, sent_at
		 FROM messages
		 WHERE (sender_id = ? AND receiver_id = ?)
		    OR (sender_id = ? AND receiver_id = ?)
		 ORDER BY sent_at
		 LIMIT ?
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, peerID, peerID, userID, limit)
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
