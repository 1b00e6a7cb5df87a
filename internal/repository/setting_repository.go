package repository

import (
	"context"
	"fmt"
	"time"

	"caritasAPI/internal/database"
	"caritasAPI/internal/models"
)

const defaultSettingType = "text"

type settingRepository struct {
	db *database.DB
}

func NewSettingRepository(db *database.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) All(ctx context.Context) ([]models.SiteSetting, error) {
	settings := []models.SiteSetting{}
	err := r.db.FetchMany(ctx, &settings,
		`SELECT id, key, value_en, value_sh, type, updated_at FROM site_settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

// Upsert writes every setting in a single transaction; on any error none are kept.
func (r *settingRepository) Upsert(ctx context.Context, settings []models.SiteSetting) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := tx.Rebind(`
		INSERT INTO site_settings (key, value_en, value_sh, type, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value_en = excluded.value_en,
			value_sh = excluded.value_sh,
			type = excluded.type,
			updated_at = excluded.updated_at`)

	now := time.Now().UTC()
	for i := range settings {
		s := &settings[i]
		if s.Type == "" {
			s.Type = defaultSettingType
		}
		s.UpdatedAt = now

		if _, err := tx.ExecContext(ctx, query, s.Key, s.ValueEN, s.ValueSH, s.Type, s.UpdatedAt); err != nil {
			return fmt.Errorf("failed to save setting %s: %w", s.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settings: %w", err)
	}
	return nil
}
