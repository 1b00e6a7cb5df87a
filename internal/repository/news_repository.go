package repository

import (
	"context"
	"fmt"
	"time"

	"caritasAPI/internal/database"
	"caritasAPI/internal/models"
)

const (
	newsColumns = `id, title_en, title_sh, content_en, content_sh, excerpt_en, excerpt_sh,
		featured_image, category, status, author_id, published_at, created_at, updated_at`
	newsSummaryColumns = `id, title_en, title_sh, excerpt_en, excerpt_sh, featured_image, category, published_at, created_at`
)

type newsRepository struct {
	tableStats
	db *database.DB
}

func NewNewsRepository(db *database.DB) NewsRepository {
	return &newsRepository{
		tableStats: tableStats{db: db, table: "news", statusColumn: "status"},
		db:         db,
	}
}

func (r *newsRepository) ListPublished(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.NewsSummary, int, error) {
	var w where
	w.add("status = ?", models.NewsPublished)
	if filter.Category != "" {
		w.add("category = ?", filter.Category)
	}

	total, err := r.db.Count(ctx, `SELECT COUNT(*) FROM news`+w.String(), w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count published news: %w", err)
	}

	news := []models.NewsSummary{}
	err = r.db.FetchMany(ctx, &news,
		`SELECT `+newsSummaryColumns+` FROM news`+w.String()+` ORDER BY published_at DESC, id DESC LIMIT ? OFFSET ?`,
		w.paged(page)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list published news: %w", err)
	}

	return news, total, nil
}

func (r *newsRepository) Latest(ctx context.Context, limit int) ([]models.NewsSummary, error) {
	news := []models.NewsSummary{}
	err := r.db.FetchMany(ctx, &news,
		`SELECT `+newsSummaryColumns+` FROM news WHERE status = ? ORDER BY published_at DESC, id DESC LIMIT ?`,
		models.NewsPublished, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest news: %w", err)
	}
	return news, nil
}

func (r *newsRepository) GetPublished(ctx context.Context, id int64) (*models.News, error) {
	var news models.News

	err := r.db.FetchOne(ctx, &news,
		`SELECT `+newsColumns+` FROM news WHERE id = ? AND status = ?`, id, models.NewsPublished)
	if err != nil {
		return nil, notFoundOr(err, "article", id)
	}

	return &news, nil
}

func (r *newsRepository) ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.News, int, error) {
	var w where
	if filter.Status != "" {
		w.add("status = ?", filter.Status)
	}
	if filter.Category != "" {
		w.add("category = ?", filter.Category)
	}
	w.search(filter.Search, "title_en", "title_sh", "content_en")

	total, err := r.db.Count(ctx, `SELECT COUNT(*) FROM news`+w.String(), w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count news: %w", err)
	}

	news := []models.News{}
	err = r.db.FetchMany(ctx, &news,
		`SELECT `+newsColumns+` FROM news`+w.String()+` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		w.paged(page)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list news: %w", err)
	}

	return news, total, nil
}

func (r *newsRepository) GetByID(ctx context.Context, id int64) (*models.News, error) {
	var news models.News

	err := r.db.FetchOne(ctx, &news, `SELECT `+newsColumns+` FROM news WHERE id = ?`, id)
	if err != nil {
		return nil, notFoundOr(err, "article", id)
	}

	return &news, nil
}

func (r *newsRepository) Create(ctx context.Context, news *models.News) error {
	now := time.Now().UTC()
	news.CreatedAt = now
	news.UpdatedAt = now

	id, err := r.db.Insert(ctx, `
		INSERT INTO news (title_en, title_sh, content_en, content_sh, excerpt_en, excerpt_sh,
			featured_image, category, status, author_id, published_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		news.TitleEN, news.TitleSH, news.ContentEN, news.ContentSH, news.ExcerptEN, news.ExcerptSH,
		news.FeaturedImage, news.Category, news.Status, news.AuthorID, news.PublishedAt,
		news.CreatedAt, news.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}

	news.ID = id
	return nil
}

func (r *newsRepository) Update(ctx context.Context, news *models.News) error {
	news.UpdatedAt = time.Now().UTC()

	res, err := r.db.Execute(ctx, `
		UPDATE news SET
			title_en = ?, title_sh = ?, content_en = ?, content_sh = ?,
			excerpt_en = ?, excerpt_sh = ?, featured_image = ?, category = ?,
			status = ?, published_at = ?, updated_at = ?
		WHERE id = ?`,
		news.TitleEN, news.TitleSH, news.ContentEN, news.ContentSH,
		news.ExcerptEN, news.ExcerptSH, news.FeaturedImage, news.Category,
		news.Status, news.PublishedAt, news.UpdatedAt, news.ID)
	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}

	return requireAffected(res, "article", news.ID)
}

func (r *newsRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Execute(ctx, `DELETE FROM news WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	return requireAffected(res, "article", id)
}

func (r *newsRepository) CountByAuthor(ctx context.Context) ([]models.AuthorCount, error) {
	counts := []models.AuthorCount{}
	err := r.db.FetchMany(ctx, &counts, `
		SELECT u.username AS username, COUNT(*) AS count
		FROM news n
		JOIN users u ON n.author_id = u.id
		GROUP BY n.author_id, u.username
		ORDER BY count DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to group news by author: %w", err)
	}
	return counts, nil
}
