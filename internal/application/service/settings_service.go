package service

import (
	"context"
	"strconv"

	"github.com/akfoods/pos-api/internal/domain/entity"
	"github.com/akfoods/pos-api/internal/domain/repository"
	"github.com/akfoods/pos-api/pkg/apperror"
)

// SettingsService handles store settings
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	cartSvc      *CartService
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository, cartSvc *CartService) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		cartSvc:      cartSvc,
	}
}

// GetSettings returns all store settings as a key/value map
func (s *SettingsService) GetSettings(ctx context.Context) (map[string]string, error) {
	settings, err := s.settingsRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(settings))
	for _, setting := range settings {
		out[setting.SettingKey] = setting.SettingValue
	}
	return out, nil
}

// UpdateSettings upserts the given key/value pairs. A tax configuration
// change is pushed into every open cart so totals update immediately.
func (s *SettingsService) UpdateSettings(ctx context.Context, values map[string]string) (map[string]string, error) {
	if len(values) == 0 {
		return nil, apperror.NewBadRequestError("No settings provided")
	}

	if v, ok := values[entity.SettingTaxEnabled]; ok {
		if _, err := strconv.ParseBool(v); err != nil {
			return nil, apperror.NewBadRequestError("tax_enabled must be true or false")
		}
	}
	if v, ok := values[entity.SettingTaxPercentage]; ok {
		pct, err := strconv.ParseFloat(v, 64)
		if err != nil || pct < 0 || pct > 100 {
			return nil, apperror.NewBadRequestError("tax_percentage must be between 0 and 100")
		}
	}

	settings := make([]entity.Setting, 0, len(values))
	for key, value := range values {
		settings = append(settings, entity.Setting{SettingKey: key, SettingValue: value})
	}

	if err := s.settingsRepo.UpsertBatch(ctx, settings); err != nil {
		return nil, err
	}

	_, taxTouched1 := values[entity.SettingTaxEnabled]
	_, taxTouched2 := values[entity.SettingTaxPercentage]
	if taxTouched1 || taxTouched2 {
		enabled, percentage, err := s.TaxConfig(ctx)
		if err != nil {
			return nil, err
		}
		s.cartSvc.SetTaxConfig(enabled, percentage)
	}

	return s.GetSettings(ctx)
}

// TaxConfig reads the current tax configuration from the settings store.
// Unset or malformed values fall back to tax disabled.
func (s *SettingsService) TaxConfig(ctx context.Context) (bool, float64, error) {
	enabled := false
	percentage := 0.0

	if setting, err := s.settingsRepo.Get(ctx, entity.SettingTaxEnabled); err != nil {
		return false, 0, err
	} else if setting != nil {
		if v, err := strconv.ParseBool(setting.SettingValue); err == nil {
			enabled = v
		}
	}

	if setting, err := s.settingsRepo.Get(ctx, entity.SettingTaxPercentage); err != nil {
		return false, 0, err
	} else if setting != nil {
		if v, err := strconv.ParseFloat(setting.SettingValue, 64); err == nil {
			percentage = v
		}
	}

	return enabled, percentage, nil
}
