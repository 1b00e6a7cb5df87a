package repository

import (
	"context"
	"fmt"
	"time"

	"caritasAPI/internal/database"
	"caritasAPI/internal/models"
)

const contactColumns = `id, name, email, subject, message, status, created_at`

type contactRepository struct {
	tableStats
	db *database.DB
}

func NewContactRepository(db *database.DB) ContactRepository {
	return &contactRepository{
		tableStats: tableStats{db: db, table: "contact_messages", statusColumn: "status"},
		db:         db,
	}
}

func (r *contactRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	message.CreatedAt = time.Now().UTC()

	id, err := r.db.Insert(ctx, `
		INSERT INTO contact_messages (name, email, subject, message, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`,
		message.Name, message.Email, message.Subject, message.Message, message.Status, message.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	message.ID = id
	return nil
}

func (r *contactRepository) GetByID(ctx context.Context, id int64) (*models.ContactMessage, error) {
	var message models.ContactMessage

	err := r.db.FetchOne(ctx, &message, `SELECT `+contactColumns+` FROM contact_messages WHERE id = ?`, id)
	if err != nil {
		return nil, notFoundOr(err, "contact message", id)
	}

	return &message, nil
}

func (r *contactRepository) ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.ContactMessage, int, error) {
	var w where
	if filter.Status != "" {
		w.add("status = ?", filter.Status)
	}
	w.search(filter.Search, "name", "email", "subject")

	total, err := r.db.Count(ctx, `SELECT COUNT(*) FROM contact_messages`+w.String(), w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count contact messages: %w", err)
	}

	messages := []models.ContactMessage{}
	err = r.db.FetchMany(ctx, &messages,
		`SELECT `+contactColumns+` FROM contact_messages`+w.String()+` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		w.paged(page)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contact messages: %w", err)
	}

	return messages, total, nil
}

func (r *contactRepository) UpdateStatus(ctx context.Context, id int64, status models.ContactStatus) error {
	res, err := r.db.Execute(ctx, `UPDATE contact_messages SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update contact message: %w", err)
	}

	return requireAffected(res, "contact message", id)
}
