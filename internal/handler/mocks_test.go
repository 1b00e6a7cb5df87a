package handlers

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"caritasAPI/internal/config"
	"caritasAPI/internal/content"
	"caritasAPI/internal/models"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req models.LoginRequest) (string, *models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.User), args.Error(2)
}

func (m *MockAuthService) GenerateToken(user *models.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*models.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Claims), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Profile(ctx context.Context, userID int64) (*models.UserSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSummary), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID int64, patch models.ProfilePatch) error {
	args := m.Called(ctx, userID, patch)
	return args.Error(0)
}

func (m *MockUserService) EnsureAdmin(ctx context.Context, seed config.AdminSeed) (bool, error) {
	args := m.Called(ctx, seed)
	return args.Bool(0), args.Error(1)
}

type MockNewsService struct {
	mock.Mock
}

func (m *MockNewsService) ListPublished(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.NewsSummary, models.Pagination, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]models.NewsSummary), args.Get(1).(models.Pagination), args.Error(2)
}

func (m *MockNewsService) Latest(ctx context.Context, limit int) ([]models.NewsSummary, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.NewsSummary), args.Error(1)
}

func (m *MockNewsService) GetPublished(ctx context.Context, id int64) (*models.News, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.News), args.Error(1)
}

func (m *MockNewsService) ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.News, models.Pagination, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]models.News), args.Get(1).(models.Pagination), args.Error(2)
}

func (m *MockNewsService) Get(ctx context.Context, id int64) (*models.News, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.News), args.Error(1)
}

func (m *MockNewsService) Create(ctx context.Context, authorID int64, in models.NewsInput) (*models.News, error) {
	args := m.Called(ctx, authorID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.News), args.Error(1)
}

func (m *MockNewsService) Update(ctx context.Context, id int64, in models.NewsInput) (*models.News, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.News), args.Error(1)
}

func (m *MockNewsService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNewsService) Stats(ctx context.Context) (*models.NewsStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NewsStats), args.Error(1)
}

type MockProgramService struct {
	mock.Mock
}

func (m *MockProgramService) ListActive(ctx context.Context, page models.Page) ([]models.Program, models.Pagination, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]models.Program), args.Get(1).(models.Pagination), args.Error(2)
}

func (m *MockProgramService) GetActive(ctx context.Context, id int64) (*models.Program, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Program), args.Error(1)
}

func (m *MockProgramService) ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.Program, models.Pagination, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]models.Program), args.Get(1).(models.Pagination), args.Error(2)
}

func (m *MockProgramService) Get(ctx context.Context, id int64) (*models.Program, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Program), args.Error(1)
}

func (m *MockProgramService) Create(ctx context.Context, in models.ProgramInput) (*models.Program, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Program), args.Error(1)
}

func (m *MockProgramService) Update(ctx context.Context, id int64, in models.ProgramInput) (*models.Program, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Program), args.Error(1)
}

func (m *MockProgramService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProgramService) Stats(ctx context.Context) (*models.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stats), args.Error(1)
}

type MockDonationService struct {
	mock.Mock
}

func (m *MockDonationService) Submit(ctx context.Context, in models.DonationInput) (*models.Donation, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Donation), args.Error(1)
}

func (m *MockDonationService) Summary(ctx context.Context) (*models.DonationSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DonationSummary), args.Error(1)
}

func (m *MockDonationService) ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.Donation, models.Pagination, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]models.Donation), args.Get(1).(models.Pagination), args.Error(2)
}

func (m *MockDonationService) Get(ctx context.Context, id int64) (*models.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Donation), args.Error(1)
}

func (m *MockDonationService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Donation, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Donation), args.Error(1)
}

func (m *MockDonationService) Analytics(ctx context.Context) (*models.DonationAnalytics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DonationAnalytics), args.Error(1)
}

func (m *MockDonationService) AdminStats(ctx context.Context) (*models.DonationAdminStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DonationAdminStats), args.Error(1)
}

type MockVolunteerService struct {
	mock.Mock
}

func (m *MockVolunteerService) Apply(ctx context.Context, in models.VolunteerInput) (*models.Volunteer, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Volunteer), args.Error(1)
}

func (m *MockVolunteerService) ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.Volunteer, models.Pagination, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]models.Volunteer), args.Get(1).(models.Pagination), args.Error(2)
}

func (m *MockVolunteerService) Get(ctx context.Context, id int64) (*models.Volunteer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Volunteer), args.Error(1)
}

func (m *MockVolunteerService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Volunteer, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Volunteer), args.Error(1)
}

func (m *MockVolunteerService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVolunteerService) Stats(ctx context.Context) (*models.VolunteerStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VolunteerStats), args.Error(1)
}

// ExportCSV writes the string given as the first return value.
func (m *MockVolunteerService) ExportCSV(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	if err := args.Error(1); err != nil {
		return err
	}
	_, err := io.WriteString(w, args.String(0))
	return err
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, in models.ContactInput) (*models.ContactMessage, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactMessage), args.Error(1)
}

func (m *MockContactService) ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.ContactMessage, models.Pagination, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]models.ContactMessage), args.Get(1).(models.Pagination), args.Error(2)
}

func (m *MockContactService) Get(ctx context.Context, id int64) (*models.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactMessage), args.Error(1)
}

func (m *MockContactService) UpdateStatus(ctx context.Context, id int64, status string) (*models.ContactMessage, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactMessage), args.Error(1)
}

func (m *MockContactService) Stats(ctx context.Context) (*models.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stats), args.Error(1)
}

type MockSettingService struct {
	mock.Mock
}

func (m *MockSettingService) Public(ctx context.Context) (map[string]models.SettingValue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]models.SettingValue), args.Error(1)
}

func (m *MockSettingService) Update(ctx context.Context, patches map[string]models.SettingPatch) error {
	args := m.Called(ctx, patches)
	return args.Error(0)
}

type MockTablesService struct {
	mock.Mock
}

func (m *MockTablesService) GetCountTablesDB(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockHomeContent struct {
	mock.Mock
}

func (m *MockHomeContent) Home(ctx context.Context) (*content.Home, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Home), args.Error(1)
}

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
