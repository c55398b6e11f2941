package repositories

import (
	"context"
	"database/sql"

	"craftlink_backend/internal/appErrors"
	"craftlink_backend/internal/models"

	"github.com/google/uuid"
)

type MessageRepository interface {
	Create(ctx context.Context, m *models.Message) error
	FindByID(ctx context.Context, id string) (*models.Message, error)
	Inbox(ctx context.Context, userID string) ([]models.Message, error)
	Sent(ctx context.Context, userID string) ([]models.Message, error)
	MarkAsRead(ctx context.Context, id, recipientID string) error
}

type messageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) MessageRepository {
	return &messageRepository{db: db}
}

const messageColumns = `id, sender_id, recipient_id, subject, body, is_read, created_at`

func scanMessage(row interface{ Scan(...any) error }) (*models.Message, error) {
	var m models.Message
	err := row.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Subject, &m.Body, &m.IsRead, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *messageRepository) Create(ctx context.Context, m *models.Message) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return r.db.QueryRowContext(ctx, `
		INSERT INTO messages (id, sender_id, recipient_id, subject, body)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, m.ID, m.SenderID, m.RecipientID, m.Subject, m.Body).Scan(&m.CreatedAt)
}

func (r *messageRepository) FindByID(ctx context.Context, id string) (*models.Message, error) {
	m, err := scanMessage(r.db.QueryRowContext(ctx,
		`SELECT `+messageColumns+` FROM messages WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, appErrors.ErrMessageNotFound
	}
	return m, err
}

func (r *messageRepository) Inbox(ctx context.Context, userID string) ([]models.Message, error) {
	return r.list(ctx, `recipient_id`, userID)
}

func (r *messageRepository) Sent(ctx context.Context, userID string) ([]models.Message, error) {
	return r.list(ctx, `sender_id`, userID)
}

func (r *messageRepository) list(ctx context.Context, column, userID string) ([]models.Message, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+messageColumns+` FROM messages WHERE `+column+` = $1 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, *m)
	}
	return messages, rows.Err()
}

func (r *messageRepository) MarkAsRead(ctx context.Context, id, recipientID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE messages SET is_read = TRUE WHERE id = $1 AND recipient_id = $2`, id, recipientID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.ErrMessageNotFound
	}
	return nil
}
