package service

import (
	"context"
	"time"

	"caritasAPI/internal/models"
	"caritasAPI/internal/repository"
)

type ContactService interface {
	Submit(ctx context.Context, in models.ContactInput) (*models.ContactMessage, error)
	ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.ContactMessage, models.Pagination, error)
	Get(ctx context.Context, id int64) (*models.ContactMessage, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.ContactMessage, error)
	Stats(ctx context.Context) (*models.Stats, error)
}

const messageNotFound = "Message not found"

type contactService struct {
	contactRepo repository.ContactRepository
	now         func() time.Time
}

func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo, now: time.Now}
}

func (s *contactService) Submit(ctx context.Context, in models.ContactInput) (*models.ContactMessage, error) {
	message := &models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
		Status:  models.ContactUnread,
	}

	if err := s.contactRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *contactService) ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.ContactMessage, models.Pagination, error) {
	if filter.Status != "" && !models.ContactStatus(filter.Status).Valid() {
		return nil, models.Pagination{}, invalidField("status", "Status must be one of: unread, read, replied, archived")
	}

	messages, total, err := s.contactRepo.ListAll(ctx, filter, page)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return messages, models.NewPagination(page, total), nil
}

func (s *contactService) Get(ctx context.Context, id int64) (*models.ContactMessage, error) {
	message, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, messageNotFound)
	}
	return message, nil
}

func (s *contactService) UpdateStatus(ctx context.Context, id int64, status string) (*models.ContactMessage, error) {
	contactStatus := models.ContactStatus(status)
	if !contactStatus.Valid() {
		return nil, invalidField("status", "Invalid status")
	}

	if err := s.contactRepo.UpdateStatus(ctx, id, contactStatus); err != nil {
		return nil, notFound(err, messageNotFound)
	}

	return s.Get(ctx, id)
}

func (s *contactService) Stats(ctx context.Context) (*models.Stats, error) {
	stats, err := gatherStats(ctx, s.contactRepo, s.now())
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
