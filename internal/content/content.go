// Package content assembles the public home page payload either from an embedded
// snapshot or from the live store.
package content

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"caritasAPI/internal/models"
)

//go:embed snapshot.yaml
var snapshotYAML []byte

const (
	homeNewsLimit     = 3
	homeProgramsLimit = 50
)

type NewsReader interface {
	Latest(ctx context.Context, limit int) ([]models.NewsSummary, error)
}

type ProgramReader interface {
	ListActive(ctx context.Context, page models.Page) ([]models.Program, int, error)
}

type SettingReader interface {
	Public(ctx context.Context) (map[string]models.SettingValue, error)
}

// Sources are the live readers. They may be left nil when the manager serves the snapshot.
type Sources struct {
	News     NewsReader
	Programs ProgramReader
	Settings SettingReader
}

type OrganizationStats struct {
	FamiliesServed     int `json:"families_served" yaml:"families_served"`
	CommunitiesReached int `json:"communities_reached" yaml:"communities_reached"`
	LivesImpacted      int `json:"lives_impacted" yaml:"lives_impacted"`
	YearsOfService     int `json:"years_of_service" yaml:"years_of_service"`
	ActivePrograms     int `json:"active_programs" yaml:"active_programs"`
	TotalVolunteers    int `json:"total_volunteers" yaml:"total_volunteers"`
	AnnualBudget       int `json:"annual_budget" yaml:"annual_budget"`
}

type Home struct {
	News     []models.NewsSummary           `json:"news"`
	Programs []models.Program               `json:"programs"`
	Settings map[string]models.SettingValue `json:"settings"`
	Stats    OrganizationStats              `json:"stats"`
}

// Manager is a read-only view over site content. Instances share no state.
type Manager struct {
	useRealData bool
	sources     Sources
	snapshot    Home
}

func NewManager(sources Sources, useRealData bool) (*Manager, error) {
	if useRealData && (sources.News == nil || sources.Programs == nil || sources.Settings == nil) {
		return nil, errors.New("content: live data requested without news, program and setting readers")
	}

	snapshot, err := loadSnapshot(snapshotYAML)
	if err != nil {
		return nil, err
	}

	return &Manager{useRealData: useRealData, sources: sources, snapshot: snapshot}, nil
}

func (m *Manager) UsesRealData() bool {
	return m.useRealData
}

// Home returns the landing page content. The organization stats always come from the snapshot,
// except active_programs which reflects the store when live data is on.
func (m *Manager) Home(ctx context.Context) (*Home, error) {
	if !m.useRealData {
		home := m.snapshot.clone()
		return &home, nil
	}

	home := Home{Stats: m.snapshot.Stats}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		news, err := m.sources.News.Latest(ctx, homeNewsLimit)
		home.News = news
		return err
	})
	g.Go(func() error {
		programs, total, err := m.sources.Programs.ListActive(ctx, models.Page{Page: 1, Limit: homeProgramsLimit})
		home.Programs = programs
		home.Stats.ActivePrograms = total
		return err
	})
	g.Go(func() error {
		settings, err := m.sources.Settings.Public(ctx)
		home.Settings = settings
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load home content: %w", err)
	}

	return &home, nil
}

type snapshotArticle struct {
	ID            int64  `yaml:"id"`
	TitleEN       string `yaml:"title_en"`
	TitleSH       string `yaml:"title_sh"`
	ExcerptEN     string `yaml:"excerpt_en"`
	ExcerptSH     string `yaml:"excerpt_sh"`
	FeaturedImage string `yaml:"featured_image"`
	Category      string `yaml:"category"`
	PublishedAt   string `yaml:"published_at"`
}

type snapshotProgram struct {
	ID            int64  `yaml:"id"`
	TitleEN       string `yaml:"title_en"`
	TitleSH       string `yaml:"title_sh"`
	DescriptionEN string `yaml:"description_en"`
	DescriptionSH string `yaml:"description_sh"`
	Image         string `yaml:"image"`
	OrderIndex    int    `yaml:"order_index"`
}

type snapshotFile struct {
	News     []snapshotArticle              `yaml:"news"`
	Programs []snapshotProgram              `yaml:"programs"`
	Settings map[string]models.SettingValue `yaml:"settings"`
	Stats    OrganizationStats              `yaml:"stats"`
}

func loadSnapshot(raw []byte) (Home, error) {
	var file snapshotFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Home{}, fmt.Errorf("content: failed to parse snapshot: %w", err)
	}

	home := Home{
		News:     make([]models.NewsSummary, 0, len(file.News)),
		Programs: make([]models.Program, 0, len(file.Programs)),
		Settings: file.Settings,
		Stats:    file.Stats,
	}
	if home.Settings == nil {
		home.Settings = map[string]models.SettingValue{}
	}

	for _, a := range file.News {
		published, err := time.Parse(time.DateOnly, a.PublishedAt)
		if err != nil {
			return Home{}, fmt.Errorf("content: article %d: %w", a.ID, err)
		}
		home.News = append(home.News, models.NewsSummary{
			ID:            a.ID,
			TitleEN:       a.TitleEN,
			TitleSH:       a.TitleSH,
			ExcerptEN:     a.ExcerptEN,
			ExcerptSH:     a.ExcerptSH,
			FeaturedImage: a.FeaturedImage,
			Category:      a.Category,
			PublishedAt:   &published,
			CreatedAt:     published,
		})
	}

	for _, p := range file.Programs {
		home.Programs = append(home.Programs, models.Program{
			ID:            p.ID,
			TitleEN:       p.TitleEN,
			TitleSH:       p.TitleSH,
			DescriptionEN: p.DescriptionEN,
			DescriptionSH: p.DescriptionSH,
			Image:         p.Image,
			Status:        models.ProgramActive,
			OrderIndex:    p.OrderIndex,
		})
	}

	return home, nil
}

// clone copies the slices and map so callers cannot modify the snapshot.
func (h Home) clone() Home {
	return Home{
		News:     slices.Clone(h.News),
		Programs: slices.Clone(h.Programs),
		Settings: maps.Clone(h.Settings),
		Stats:    h.Stats,
	}
}
