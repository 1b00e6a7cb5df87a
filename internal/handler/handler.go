package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"caritasAPI/internal/content"
	"caritasAPI/internal/service"
)

// HealthChecker reports whether the store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type HomeContent interface {
	Home(ctx context.Context) (*content.Home, error)
}

type Handlers struct {
	AuthService      service.AuthService
	UserService      service.UserService
	NewsService      service.NewsService
	ProgramService   service.ProgramService
	DonationService  service.DonationService
	VolunteerService service.VolunteerService
	ContactService   service.ContactService
	SettingService   service.SettingService
	TablesService    service.TablesService
	Content          HomeContent
	DB               HealthChecker
	Validate         *validator.Validate
	Logger           *zap.Logger
}

func NewHandlers(services *service.Service, db HealthChecker, logger *zap.Logger) *Handlers {
	return &Handlers{
		AuthService:      services.Auth,
		UserService:      services.User,
		NewsService:      services.News,
		ProgramService:   services.Program,
		DonationService:  services.Donation,
		VolunteerService: services.Volunteer,
		ContactService:   services.Contact,
		SettingService:   services.Setting,
		TablesService:    services.Tables,
		Content:          services.Content,
		DB:               db,
		Validate:         NewValidator(),
		Logger:           logger,
	}
}
