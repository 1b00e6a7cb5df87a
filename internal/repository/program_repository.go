package repository

import (
	"context"
	"fmt"
	"time"

	"caritasAPI/internal/database"
	"caritasAPI/internal/models"
)

const programColumns = `id, title_en, title_sh, description_en, description_sh, image, status, order_index, created_at, updated_at`

type programRepository struct {
	tableStats
	db *database.DB
}

func NewProgramRepository(db *database.DB) ProgramRepository {
	return &programRepository{
		tableStats: tableStats{db: db, table: "programs", statusColumn: "status"},
		db:         db,
	}
}

func (r *programRepository) list(ctx context.Context, w *where, page models.Page) ([]models.Program, int, error) {
	total, err := r.db.Count(ctx, `SELECT COUNT(*) FROM programs`+w.String(), w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count programs: %w", err)
	}

	programs := []models.Program{}
	err = r.db.FetchMany(ctx, &programs,
		`SELECT `+programColumns+` FROM programs`+w.String()+` ORDER BY order_index ASC, created_at DESC, id DESC LIMIT ? OFFSET ?`,
		w.paged(page)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list programs: %w", err)
	}

	return programs, total, nil
}

func (r *programRepository) ListActive(ctx context.Context, page models.Page) ([]models.Program, int, error) {
	var w where
	w.add("status = ?", models.ProgramActive)
	return r.list(ctx, &w, page)
}

func (r *programRepository) GetActive(ctx context.Context, id int64) (*models.Program, error) {
	var program models.Program

	err := r.db.FetchOne(ctx, &program,
		`SELECT `+programColumns+` FROM programs WHERE id = ? AND status = ?`, id, models.ProgramActive)
	if err != nil {
		return nil, notFoundOr(err, "program", id)
	}

	return &program, nil
}

func (r *programRepository) ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.Program, int, error) {
	var w where
	if filter.Status != "" {
		w.add("status = ?", filter.Status)
	}
	w.search(filter.Search, "title_en", "title_sh")
	return r.list(ctx, &w, page)
}

func (r *programRepository) GetByID(ctx context.Context, id int64) (*models.Program, error) {
	var program models.Program

	err := r.db.FetchOne(ctx, &program, `SELECT `+programColumns+` FROM programs WHERE id = ?`, id)
	if err != nil {
		return nil, notFoundOr(err, "program", id)
	}

	return &program, nil
}

func (r *programRepository) Create(ctx context.Context, program *models.Program) error {
	now := time.Now().UTC()
	program.CreatedAt = now
	program.UpdatedAt = now

	id, err := r.db.Insert(ctx, `
		INSERT INTO programs (title_en, title_sh, description_en, description_sh, image, status, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		program.TitleEN, program.TitleSH, program.DescriptionEN, program.DescriptionSH,
		program.Image, program.Status, program.OrderIndex, program.CreatedAt, program.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create program: %w", err)
	}

	program.ID = id
	return nil
}

func (r *programRepository) Update(ctx context.Context, program *models.Program) error {
	program.UpdatedAt = time.Now().UTC()

	res, err := r.db.Execute(ctx, `
		UPDATE programs SET
			title_en = ?, title_sh = ?, description_en = ?, description_sh = ?,
			image = ?, status = ?, order_index = ?, updated_at = ?
		WHERE id = ?`,
		program.TitleEN, program.TitleSH, program.DescriptionEN, program.DescriptionSH,
		program.Image, program.Status, program.OrderIndex, program.UpdatedAt, program.ID)
	if err != nil {
		return fmt.Errorf("failed to update program: %w", err)
	}

	return requireAffected(res, "program", program.ID)
}

func (r *programRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Execute(ctx, `DELETE FROM programs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete program: %w", err)
	}

	return requireAffected(res, "program", id)
}
