package service

import (
	"context"
	"time"

	"caritasAPI/internal/models"
	"caritasAPI/internal/repository"
)

type NewsService interface {
	ListPublished(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.NewsSummary, models.Pagination, error)
	Latest(ctx context.Context, limit int) ([]models.NewsSummary, error)
	GetPublished(ctx context.Context, id int64) (*models.News, error)
	ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.News, models.Pagination, error)
	Get(ctx context.Context, id int64) (*models.News, error)
	Create(ctx context.Context, authorID int64, in models.NewsInput) (*models.News, error)
	Update(ctx context.Context, id int64, in models.NewsInput) (*models.News, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*models.NewsStats, error)
}

const articleNotFound = "Article not found"

type newsService struct {
	newsRepo repository.NewsRepository
	now      func() time.Time
}

func NewNewsService(newsRepo repository.NewsRepository) NewsService {
	return &newsService{newsRepo: newsRepo, now: time.Now}
}

func (s *newsService) ListPublished(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.NewsSummary, models.Pagination, error) {
	news, total, err := s.newsRepo.ListPublished(ctx, filter, page)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return news, models.NewPagination(page, total), nil
}

func (s *newsService) Latest(ctx context.Context, limit int) ([]models.NewsSummary, error) {
	return s.newsRepo.Latest(ctx, limit)
}

func (s *newsService) GetPublished(ctx context.Context, id int64) (*models.News, error) {
	news, err := s.newsRepo.GetPublished(ctx, id)
	if err != nil {
		return nil, notFound(err, articleNotFound)
	}
	return news, nil
}

func (s *newsService) ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.News, models.Pagination, error) {
	if filter.Status != "" && !models.NewsStatus(filter.Status).Valid() {
		return nil, models.Pagination{}, invalidField("status", "Status must be one of: draft, published")
	}

	news, total, err := s.newsRepo.ListAll(ctx, filter, page)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return news, models.NewPagination(page, total), nil
}

func (s *newsService) Get(ctx context.Context, id int64) (*models.News, error) {
	news, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, articleNotFound)
	}
	return news, nil
}

func parseNewsStatus(raw string, current models.NewsStatus) (models.NewsStatus, error) {
	if raw == "" {
		return current, nil
	}
	status := models.NewsStatus(raw)
	if !status.Valid() {
		return "", invalidField("status", "Status must be one of: draft, published")
	}
	return status, nil
}

// publish stamps published_at on the first transition into published and never again.
func (s *newsService) publish(news *models.News) {
	if news.Status == models.NewsPublished && news.PublishedAt == nil {
		now := s.now().UTC()
		news.PublishedAt = &now
	}
}

func (s *newsService) Create(ctx context.Context, authorID int64, in models.NewsInput) (*models.News, error) {
	status, err := parseNewsStatus(in.Status, models.NewsDraft)
	if err != nil {
		return nil, err
	}

	news := &models.News{AuthorID: &authorID}
	applyNewsInput(news, in)
	news.Status = status
	s.publish(news)

	if err := s.newsRepo.Create(ctx, news); err != nil {
		return nil, err
	}
	return news, nil
}

func (s *newsService) Update(ctx context.Context, id int64, in models.NewsInput) (*models.News, error) {
	news, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, articleNotFound)
	}

	status, err := parseNewsStatus(in.Status, news.Status)
	if err != nil {
		return nil, err
	}

	applyNewsInput(news, in)
	news.Status = status
	s.publish(news)

	if err := s.newsRepo.Update(ctx, news); err != nil {
		return nil, notFound(err, articleNotFound)
	}
	return news, nil
}

func applyNewsInput(news *models.News, in models.NewsInput) {
	news.TitleEN = in.TitleEN
	news.TitleSH = in.TitleSH
	news.ContentEN = in.ContentEN
	news.ContentSH = in.ContentSH
	news.ExcerptEN = in.ExcerptEN
	news.ExcerptSH = in.ExcerptSH
	news.FeaturedImage = in.FeaturedImage
	news.Category = in.Category
}

func (s *newsService) Delete(ctx context.Context, id int64) error {
	if err := s.newsRepo.Delete(ctx, id); err != nil {
		return notFound(err, articleNotFound)
	}
	return nil
}

func (s *newsService) Stats(ctx context.Context) (*models.NewsStats, error) {
	var byAuthor []models.AuthorCount

	stats, err := gatherStats(ctx, s.newsRepo, s.now(), func(ctx context.Context) error {
		var err error
		byAuthor, err = s.newsRepo.CountByAuthor(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &models.NewsStats{Stats: stats, ByAuthor: byAuthor}, nil
}
