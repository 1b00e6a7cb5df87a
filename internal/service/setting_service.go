package service

import (
	"context"
	"maps"
	"slices"
	"strings"

	"caritasAPI/internal/models"
	"caritasAPI/internal/repository"
)

const maxSettingKeyLength = 100

type SettingService interface {
	Public(ctx context.Context) (map[string]models.SettingValue, error)
	Update(ctx context.Context, patches map[string]models.SettingPatch) error
}

type settingService struct {
	settingRepo repository.SettingRepository
}

func NewSettingService(settingRepo repository.SettingRepository) SettingService {
	return &settingService{settingRepo: settingRepo}
}

func (s *settingService) Public(ctx context.Context) (map[string]models.SettingValue, error) {
	settings, err := s.settingRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]models.SettingValue, len(settings))
	for _, setting := range settings {
		out[setting.Key] = models.SettingValue{EN: setting.ValueEN, SH: setting.ValueSH, Type: setting.Type}
	}
	return out, nil
}

// Update merges the patches over the stored values and saves them all or none.
// Fields a patch leaves out keep their stored value.
func (s *settingService) Update(ctx context.Context, patches map[string]models.SettingPatch) error {
	if len(patches) == 0 {
		return newError(KindInvalid, "Invalid settings format", nil)
	}

	current, err := s.Public(ctx)
	if err != nil {
		return err
	}

	settings := make([]models.SiteSetting, 0, len(patches))
	for _, raw := range slices.Sorted(maps.Keys(patches)) {
		patch := patches[raw]
		key := strings.TrimSpace(raw)
		if key == "" || len(key) > maxSettingKeyLength {
			return invalidField("settings", "Setting keys must be 1 to 100 characters")
		}

		existing := current[key]
		setting := models.SiteSetting{
			Key:     key,
			ValueEN: patch.EN,
			ValueSH: existing.SH,
			Type:    existing.Type,
		}
		if patch.SH != nil {
			setting.ValueSH = *patch.SH
		}
		if patch.Type != nil {
			setting.Type = *patch.Type
		}
		settings = append(settings, setting)
	}

	return s.settingRepo.Upsert(ctx, settings)
}
