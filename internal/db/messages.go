package db

import (
	"context"

	"greengear/internal/models"
)

func (db *Database) ListMessages(ctx context.Context) ([]models.Message, error) {
	rows, err := db.Pool.Query(ctx,
		"SELECT id, content, author_name, created_at FROM messages ORDER BY created_at DESC, id DESC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.Content, &m.AuthorName, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

func (db *Database) CreateMessage(ctx context.Context, m *models.Message) error {
	return db.Pool.QueryRow(ctx,
		"INSERT INTO messages (content, author_name) VALUES ($1, $2) RETURNING id, created_at",
		m.Content, m.AuthorName,
	).Scan(&m.ID, &m.CreatedAt)
}

func (db *Database) DeleteMessage(ctx context.Context, messageID int) (bool, error) {
	tag, err := db.Pool.Exec(ctx,
		"DELETE FROM messages WHERE id = $1",
		messageID,
	)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
