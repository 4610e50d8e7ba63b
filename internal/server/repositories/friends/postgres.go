package friends

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/orderly-app/orderly/internal/common"
	"github.com/orderly-app/orderly/internal/dbx"
	"github.com/orderly-app/orderly/internal/server/models"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, userID, friendID string) error {

	query :=
		`INSERT INTO friends (user_id, friend_id)
		 VALUES ($1, $2)
		 `

	_, err := r.db.ExecContext(ctx, query, userID, friendID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Remove(ctx context.Context, userID, friendID string) error {

	query :=
		`DELETE FROM friends
		 WHERE user_id = $1 AND friend_id = $2
		 `

	if _, err := r.db.ExecContext(ctx, query, userID, friendID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Exists(ctx context.Context, userID, friendID string) (bool, error) {

	query :=
		`SELECT EXISTS (
		   SELECT 1 FROM friends WHERE user_id = $1 AND friend_id = $2
		 )`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, friendID).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) Count(ctx context.Context, userID string) (int64, error) {

	query :=
		`SELECT COUNT(*) FROM friends
		 WHERE user_id = $1
		 `

	var count int64
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) ListWithNames(ctx context.Context, userID string) ([]models.Friend, error) {

	query :=
		`SELECT u.id, u.username
		 FROM users u
		 JOIN friends f ON u.id = f.friend_id
		 WHERE f.user_id = $1
		 ORDER BY u.username
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	list := []models.Friend{}
	for rows.Next() {
		var f models.Friend
		if err := rows.Scan(&f.ID, &f.Username); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return list, nil
}
