package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"caritasAPI/internal/models"
	"caritasAPI/internal/payment"
)

type MockStatsSource struct {
	mock.Mock
}

func (m *MockStatsSource) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsSource) CountSince(ctx context.Context, since time.Time) (int, error) {
	args := m.Called(ctx, since)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsSource) CountByStatus(ctx context.Context) ([]models.StatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StatusCount), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByLogin(ctx context.Context, identifier string) (*models.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) EmailTakenByOther(ctx context.Context, email string, userID int64) (bool, error) {
	args := m.Called(ctx, email, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, userID int64, email, passwordHash string) error {
	args := m.Called(ctx, userID, email, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) TouchLogin(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockNewsRepository struct {
	MockStatsSource
}

func (m *MockNewsRepository) ListPublished(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.NewsSummary, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]models.NewsSummary), args.Int(1), args.Error(2)
}

func (m *MockNewsRepository) Latest(ctx context.Context, limit int) ([]models.NewsSummary, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.NewsSummary), args.Error(1)
}

func (m *MockNewsRepository) GetPublished(ctx context.Context, id int64) (*models.News, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.News), args.Error(1)
}

func (m *MockNewsRepository) ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.News, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]models.News), args.Int(1), args.Error(2)
}

func (m *MockNewsRepository) GetByID(ctx context.Context, id int64) (*models.News, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.News), args.Error(1)
}

func (m *MockNewsRepository) Create(ctx context.Context, news *models.News) error {
	args := m.Called(ctx, news)
	return args.Error(0)
}

func (m *MockNewsRepository) Update(ctx context.Context, news *models.News) error {
	args := m.Called(ctx, news)
	return args.Error(0)
}

func (m *MockNewsRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNewsRepository) CountByAuthor(ctx context.Context) ([]models.AuthorCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AuthorCount), args.Error(1)
}

type MockDonationRepository struct {
	MockStatsSource
}

func (m *MockDonationRepository) Create(ctx context.Context, donation *models.Donation) error {
	args := m.Called(ctx, donation)
	return args.Error(0)
}

func (m *MockDonationRepository) GetByID(ctx context.Context, id int64) (*models.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Donation), args.Error(1)
}

func (m *MockDonationRepository) ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.Donation, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]models.Donation), args.Int(1), args.Error(2)
}

func (m *MockDonationRepository) UpdateStatus(ctx context.Context, id int64, status models.PaymentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockDonationRepository) CompletedTotals(ctx context.Context) (models.DonationTotals, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.DonationTotals), args.Error(1)
}

func (m *MockDonationRepository) CompletedSince(ctx context.Context, since time.Time) (models.DonationRecent, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(models.DonationRecent), args.Error(1)
}

func (m *MockDonationRepository) ByCurrency(ctx context.Context) ([]models.CurrencyTotal, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.CurrencyTotal), args.Error(1)
}

func (m *MockDonationRepository) Monthly(ctx context.Context, since time.Time) ([]models.MonthlyTotal, error) {
	args := m.Called(ctx, since)
	return args.Get(0).([]models.MonthlyTotal), args.Error(1)
}

func (m *MockDonationRepository) ByPaymentMethod(ctx context.Context) ([]models.MethodTotal, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.MethodTotal), args.Error(1)
}

func (m *MockDonationRepository) TopDonors(ctx context.Context, limit int) ([]models.DonorTotal, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.DonorTotal), args.Error(1)
}

type MockVolunteerRepository struct {
	MockStatsSource
}

func (m *MockVolunteerRepository) Create(ctx context.Context, volunteer *models.Volunteer) error {
	args := m.Called(ctx, volunteer)
	return args.Error(0)
}

func (m *MockVolunteerRepository) GetByID(ctx context.Context, id int64) (*models.Volunteer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Volunteer), args.Error(1)
}

func (m *MockVolunteerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockVolunteerRepository) ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.Volunteer, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]models.Volunteer), args.Int(1), args.Error(2)
}

func (m *MockVolunteerRepository) Export(ctx context.Context) ([]models.Volunteer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Volunteer), args.Error(1)
}

func (m *MockVolunteerRepository) UpdateStatus(ctx context.Context, id int64, status models.VolunteerStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockVolunteerRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVolunteerRepository) BySkills(ctx context.Context, limit int) ([]models.SkillCount, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.SkillCount), args.Error(1)
}

type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) All(ctx context.Context) ([]models.SiteSetting, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.SiteSetting), args.Error(1)
}

func (m *MockSettingRepository) Upsert(ctx context.Context, settings []models.SiteSetting) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

type MockProcessor struct {
	mock.Mock
}

func (m *MockProcessor) Charge(ctx context.Context, req payment.ChargeRequest) (*payment.ChargeResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.ChargeResult), args.Error(1)
}

type MockProgramRepository struct {
	MockStatsSource
}

func (m *MockProgramRepository) ListActive(ctx context.Context, page models.Page) ([]models.Program, int, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]models.Program), args.Int(1), args.Error(2)
}

func (m *MockProgramRepository) GetActive(ctx context.Context, id int64) (*models.Program, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Program), args.Error(1)
}

func (m *MockProgramRepository) ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.Program, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]models.Program), args.Int(1), args.Error(2)
}

func (m *MockProgramRepository) GetByID(ctx context.Context, id int64) (*models.Program, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Program), args.Error(1)
}

func (m *MockProgramRepository) Create(ctx context.Context, program *models.Program) error {
	args := m.Called(ctx, program)
	return args.Error(0)
}

func (m *MockProgramRepository) Update(ctx context.Context, program *models.Program) error {
	args := m.Called(ctx, program)
	return args.Error(0)
}

func (m *MockProgramRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockContactRepository struct {
	MockStatsSource
}

func (m *MockContactRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockContactRepository) GetByID(ctx context.Context, id int64) (*models.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactMessage), args.Error(1)
}

func (m *MockContactRepository) ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.ContactMessage, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]models.ContactMessage), args.Int(1), args.Error(2)
}

func (m *MockContactRepository) UpdateStatus(ctx context.Context, id int64, status models.ContactStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
