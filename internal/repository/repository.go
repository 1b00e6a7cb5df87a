package repository

import (
	"context"
	"time"

	"caritasAPI/internal/database"
	"caritasAPI/internal/models"
)

// StatsSource is implemented by every repository whose table has a status column.
type StatsSource interface {
	Count(ctx context.Context) (int, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
	CountByStatus(ctx context.Context) ([]models.StatusCount, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByLogin(ctx context.Context, identifier string) (*models.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	EmailTakenByOther(ctx context.Context, email string, userID int64) (bool, error)
	UpdateProfile(ctx context.Context, userID int64, email, passwordHash string) error
	TouchLogin(ctx context.Context, userID int64) error
}

type NewsRepository interface {
	StatsSource
	ListPublished(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.NewsSummary, int, error)
	Latest(ctx context.Context, limit int) ([]models.NewsSummary, error)
	GetPublished(ctx context.Context, id int64) (*models.News, error)
	ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.News, int, error)
	GetByID(ctx context.Context, id int64) (*models.News, error)
	Create(ctx context.Context, news *models.News) error
	Update(ctx context.Context, news *models.News) error
	Delete(ctx context.Context, id int64) error
	CountByAuthor(ctx context.Context) ([]models.AuthorCount, error)
}

type ProgramRepository interface {
	StatsSource
	ListActive(ctx context.Context, page models.Page) ([]models.Program, int, error)
	GetActive(ctx context.Context, id int64) (*models.Program, error)
	ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.Program, int, error)
	GetByID(ctx context.Context, id int64) (*models.Program, error)
	Create(ctx context.Context, program *models.Program) error
	Update(ctx context.Context, program *models.Program) error
	Delete(ctx context.Context, id int64) error
}

type DonationRepository interface {
	StatsSource
	Create(ctx context.Context, donation *models.Donation) error
	GetByID(ctx context.Context, id int64) (*models.Donation, error)
	ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.Donation, int, error)
	UpdateStatus(ctx context.Context, id int64, status models.PaymentStatus) error
	CompletedTotals(ctx context.Context) (models.DonationTotals, error)
	CompletedSince(ctx context.Context, since time.Time) (models.DonationRecent, error)
	ByCurrency(ctx context.Context) ([]models.CurrencyTotal, error)
	Monthly(ctx context.Context, since time.Time) ([]models.MonthlyTotal, error)
	ByPaymentMethod(ctx context.Context) ([]models.MethodTotal, error)
	TopDonors(ctx context.Context, limit int) ([]models.DonorTotal, error)
}

type VolunteerRepository interface {
	StatsSource
	Create(ctx context.Context, volunteer *models.Volunteer) error
	GetByID(ctx context.Context, id int64) (*models.Volunteer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.Volunteer, int, error)
	Export(ctx context.Context) ([]models.Volunteer, error)
	UpdateStatus(ctx context.Context, id int64, status models.VolunteerStatus) error
	Delete(ctx context.Context, id int64) error
	BySkills(ctx context.Context, limit int) ([]models.SkillCount, error)
}

type ContactRepository interface {
	StatsSource
	Create(ctx context.Context, message *models.ContactMessage) error
	GetByID(ctx context.Context, id int64) (*models.ContactMessage, error)
	ListAll(ctx context.Context, filter models.ListFilter, page models.Page) ([]models.ContactMessage, int, error)
	UpdateStatus(ctx context.Context, id int64, status models.ContactStatus) error
}

type SettingRepository interface {
	All(ctx context.Context) ([]models.SiteSetting, error)
	Upsert(ctx context.Context, settings []models.SiteSetting) error
}

type TablesRepository interface {
	CountTablesDB(ctx context.Context) (int, error)
}

type Repository struct {
	User      UserRepository
	News      NewsRepository
	Program   ProgramRepository
	Donation  DonationRepository
	Volunteer VolunteerRepository
	Contact   ContactRepository
	Setting   SettingRepository
	Tables    TablesRepository
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{
		User:      NewUserRepository(db),
		News:      NewNewsRepository(db),
		Program:   NewProgramRepository(db),
		Donation:  NewDonationRepository(db),
		Volunteer: NewVolunteerRepository(db),
		Contact:   NewContactRepository(db),
		Setting:   NewSettingRepository(db),
		Tables:    NewTablesRepository(db),
	}
}
