package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"caritasAPI/internal/models"
	"caritasAPI/internal/repository"
)

func newTestContactService(repo *MockContactRepository) *contactService {
	return &contactService{contactRepo: repo, now: func() time.Time { return fixedNow }}
}

func TestContactService_Submit(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepository)
	svc := newTestContactService(repo)
	repo.On("Create", ctx, mock.MatchedBy(func(m *models.ContactMessage) bool {
		return m.Status == models.ContactUnread && m.Subject == "Partnership"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.ContactMessage).ID = 14
	}).Return(nil)

	message, err := svc.Submit(ctx, models.ContactInput{Name: "Farai", Email: "farai@example.org", Subject: "Partnership", Message: "Hello"})

	require.NoError(t, err)
	assert.Equal(t, int64(14), message.ID)
	repo.AssertExpectations(t)
}

func TestContactService_ListAll(t *testing.T) {
	ctx := context.Background()
	page := models.Page{Page: 2, Limit: 20}

	t.Run("pagination", func(t *testing.T) {
		repo := new(MockContactRepository)
		svc := newTestContactService(repo)
		repo.On("ListAll", ctx, models.ListFilter{Status: "read"}, page).
			Return([]models.ContactMessage{{ID: 1}}, 21, nil)

		messages, pagination, err := svc.ListAll(ctx, models.ListFilter{Status: "read"}, page)

		require.NoError(t, err)
		assert.Len(t, messages, 1)
		assert.Equal(t, models.Pagination{Page: 2, Limit: 20, Total: 21, Pages: 2}, pagination)
	})

	t.Run("unknown status filter", func(t *testing.T) {
		repo := new(MockContactRepository)
		svc := newTestContactService(repo)

		_, _, err := svc.ListAll(ctx, models.ListFilter{Status: "spam"}, page)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "status", verr.Fields[0].Field)
		repo.AssertNotCalled(t, "ListAll", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestContactService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("updated", func(t *testing.T) {
		repo := new(MockContactRepository)
		svc := newTestContactService(repo)
		repo.On("UpdateStatus", ctx, int64(3), models.ContactArchived).Return(nil)
		repo.On("GetByID", ctx, int64(3)).Return(&models.ContactMessage{ID: 3, Status: models.ContactArchived}, nil)

		message, err := svc.UpdateStatus(ctx, 3, "archived")

		require.NoError(t, err)
		assert.Equal(t, models.ContactArchived, message.Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		repo := new(MockContactRepository)
		svc := newTestContactService(repo)

		_, err := svc.UpdateStatus(ctx, 3, "spam")

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing message", func(t *testing.T) {
		repo := new(MockContactRepository)
		svc := newTestContactService(repo)
		repo.On("UpdateStatus", ctx, int64(9), models.ContactRead).Return(repository.ErrNotFound)

		_, err := svc.UpdateStatus(ctx, 9, "read")

		assert.Equal(t, KindNotFound, serviceErrorKind(t, err))
	})
}

func TestContactService_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("counts", func(t *testing.T) {
		repo := new(MockContactRepository)
		svc := newTestContactService(repo)
		repo.On("Count", mock.Anything).Return(6, nil)
		repo.On("CountSince", mock.Anything, fixedNow.Add(-recentWindow)).Return(2, nil)
		repo.On("CountByStatus", mock.Anything).Return([]models.StatusCount{{Status: "unread", Count: 4}}, nil)

		stats, err := svc.Stats(ctx)

		require.NoError(t, err)
		assert.Equal(t, 6, stats.Total)
		assert.Equal(t, 2, stats.Recent)
		assert.Len(t, stats.ByStatus, 1)
	})

	t.Run("window in UTC", func(t *testing.T) {
		repo := new(MockContactRepository)
		harare := time.FixedZone("CAT", 2*60*60)
		svc := &contactService{contactRepo: repo, now: func() time.Time { return fixedNow.In(harare) }}
		repo.On("Count", mock.Anything).Return(0, nil)
		repo.On("CountSince", mock.Anything, mock.MatchedBy(func(since time.Time) bool {
			return since.Location() == time.UTC && since.Equal(fixedNow.Add(-recentWindow))
		})).Return(0, nil)
		repo.On("CountByStatus", mock.Anything).Return([]models.StatusCount{}, nil)

		_, err := svc.Stats(ctx)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := new(MockContactRepository)
		svc := newTestContactService(repo)
		repo.On("Count", mock.Anything).Return(0, errors.New("connection reset"))
		repo.On("CountSince", mock.Anything, mock.Anything).Return(0, nil).Maybe()
		repo.On("CountByStatus", mock.Anything).Return([]models.StatusCount{}, nil).Maybe()

		_, err := svc.Stats(ctx)

		assert.EqualError(t, err, "connection reset")
	})
}
