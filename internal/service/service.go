package service

import (
	"caritasAPI/internal/config"
	"caritasAPI/internal/content"
	"caritasAPI/internal/payment"
	"caritasAPI/internal/repository"
)

type Service struct {
	Auth      AuthService
	User      UserService
	News      NewsService
	Program   ProgramService
	Donation  DonationService
	Volunteer VolunteerService
	Contact   ContactService
	Setting   SettingService
	Tables    TablesService
	Content   *content.Manager
}

func NewService(rep *repository.Repository, cfg *config.Config, processor payment.Processor) (*Service, error) {
	setting := NewSettingService(rep.Setting)

	manager, err := content.NewManager(content.Sources{
		News:     rep.News,
		Programs: rep.Program,
		Settings: setting,
	}, cfg.UseRealContent)
	if err != nil {
		return nil, err
	}

	return &Service{
		Auth:      NewAuthService(rep.User, cfg),
		User:      NewUserService(rep.User),
		News:      NewNewsService(rep.News),
		Program:   NewProgramService(rep.Program),
		Donation:  NewDonationService(rep.Donation, processor),
		Volunteer: NewVolunteerService(rep.Volunteer),
		Contact:   NewContactService(rep.Contact),
		Setting:   setting,
		Tables:    NewTablesService(rep.Tables),
		Content:   manager,
	}, nil
}
