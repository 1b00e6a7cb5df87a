package repository

import (
	"context"
	"fmt"
	"time"

	"caritasAPI/internal/database"
	"caritasAPI/internal/models"
)

const volunteerColumns = `id, full_name, email, phone, skills, availability, interests, message, status, created_at`

const noSkills = "No skills specified"

type volunteerRepository struct {
	tableStats
	db *database.DB
}

func NewVolunteerRepository(db *database.DB) VolunteerRepository {
	return &volunteerRepository{
		tableStats: tableStats{db: db, table: "volunteers", statusColumn: "status"},
		db:         db,
	}
}

func (r *volunteerRepository) Create(ctx context.Context, volunteer *models.Volunteer) error {
	volunteer.CreatedAt = time.Now().UTC()

	id, err := r.db.Insert(ctx, `
		INSERT INTO volunteers (full_name, email, phone, skills, availability, interests, message, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		volunteer.FullName, volunteer.Email, volunteer.Phone, volunteer.Skills, volunteer.Availability,
		volunteer.Interests, volunteer.Message, volunteer.Status, volunteer.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("volunteer %s: %w", volunteer.Email, ErrDuplicate)
		}
		return fmt.Errorf("failed to create volunteer: %w", err)
	}

	volunteer.ID = id
	return nil
}

func (r *volunteerRepository) GetByID(ctx context.Context, id int64) (*models.Volunteer, error) {
	var volunteer models.Volunteer

	err := r.db.FetchOne(ctx, &volunteer, `SELECT `+volunteerColumns+` FROM volunteers WHERE id = ?`, id)
	if err != nil {
		return nil, notFoundOr(err, "volunteer", id)
	}

	return &volunteer, nil
}

func (r *volunteerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.db.Count(ctx, `SELECT COUNT(*) FROM volunteers WHERE email = ?`, email)
	if err != nil {
		return false, fmt.Errorf("failed to check volunteer email: %w", err)
	}
	return n > 0, nil
}

func (r *volunteerRepository) ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.Volunteer, int, error) {
	var w where
	if filter.Status != "" {
		w.add("status = ?", filter.Status)
	}
	w.search(filter.Search, "full_name", "email", "skills")

	total, err := r.db.Count(ctx, `SELECT COUNT(*) FROM volunteers`+w.String(), w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count volunteers: %w", err)
	}

	volunteers := []models.Volunteer{}
	err = r.db.FetchMany(ctx, &volunteers,
		`SELECT `+volunteerColumns+` FROM volunteers`+w.String()+` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		w.paged(page)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list volunteers: %w", err)
	}

	return volunteers, total, nil
}

// Export returns every application, newest first.
func (r *volunteerRepository) Export(ctx context.Context) ([]models.Volunteer, error) {
	volunteers := []models.Volunteer{}
	err := r.db.FetchMany(ctx, &volunteers,
		`SELECT `+volunteerColumns+` FROM volunteers ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to export volunteers: %w", err)
	}
	return volunteers, nil
}

func (r *volunteerRepository) UpdateStatus(ctx context.Context, id int64, status models.VolunteerStatus) error {
	res, err := r.db.Execute(ctx, `UPDATE volunteers SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update volunteer: %w", err)
	}

	return requireAffected(res, "volunteer", id)
}

func (r *volunteerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Execute(ctx, `DELETE FROM volunteers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete volunteer: %w", err)
	}

	return requireAffected(res, "volunteer", id)
}

// BySkills groups applications by their verbatim skills text.
func (r *volunteerRepository) BySkills(ctx context.Context, limit int) ([]models.SkillCount, error) {
	counts := []models.SkillCount{}
	err := r.db.FetchMany(ctx, &counts, `
		SELECT skill_category, COUNT(*) AS count
		FROM (
			SELECT CASE WHEN TRIM(skills) = '' THEN ? ELSE skills END AS skill_category
			FROM volunteers
		) v
		GROUP BY skill_category
		ORDER BY count DESC, skill_category ASC
		LIMIT ?`, noSkills, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to group volunteers by skills: %w", err)
	}
	return counts, nil
}
