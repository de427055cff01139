package service

import (
	"context"
	"testing"

	"github.com/akfoods/pos-api/internal/domain/cart"
	"github.com/akfoods/pos-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateSettings_RejectsEmpty(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, NewCartService(false, 0))

	_, err := svc.UpdateSettings(context.Background(), map[string]string{})

	require.Error(t, err)
}

func TestUpdateSettings_ValidatesTaxValues(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, NewCartService(false, 0))

	_, err := svc.UpdateSettings(context.Background(), map[string]string{
		entity.SettingTaxEnabled: "maybe",
	})
	assert.Error(t, err)

	_, err = svc.UpdateSettings(context.Background(), map[string]string{
		entity.SettingTaxPercentage: "150",
	})
	assert.Error(t, err)

	_, err = svc.UpdateSettings(context.Background(), map[string]string{
		entity.SettingTaxPercentage: "-1",
	})
	assert.Error(t, err)
}

func TestUpdateSettings_TaxChangeReachesOpenCarts(t *testing.T) {
	cartSvc := NewCartService(false, 0)
	svc := NewSettingsService(&fakeSettingsRepo{}, cartSvc)

	cartSvc.AddItem("counter-1", cart.CatalogItem{ID: "thali", Name: "Thali", Price: 100})

	_, err := svc.UpdateSettings(context.Background(), map[string]string{
		entity.SettingTaxEnabled:    "true",
		entity.SettingTaxPercentage: "10",
	})
	require.NoError(t, err)

	state := cartSvc.GetCart("counter-1")
	assert.True(t, state.TaxEnabled)
	assert.Equal(t, 10.0, state.Tax)
	assert.Equal(t, 110.0, state.Total)
}

func TestUpdateSettings_NonTaxKeysLeaveCartsAlone(t *testing.T) {
	cartSvc := NewCartService(true, 5)
	svc := NewSettingsService(&fakeSettingsRepo{}, cartSvc)

	cartSvc.AddItem("counter-1", cart.CatalogItem{ID: "thali", Name: "Thali", Price: 100})

	settings, err := svc.UpdateSettings(context.Background(), map[string]string{
		entity.SettingRestaurantName: "AK Foods",
	})
	require.NoError(t, err)
	assert.Equal(t, "AK Foods", settings[entity.SettingRestaurantName])

	state := cartSvc.GetCart("counter-1")
	assert.True(t, state.TaxEnabled)
	assert.Equal(t, 5.0, state.TaxPercentage)
}

func TestTaxConfig_FallsBackToDisabled(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{settings: map[string]string{
		entity.SettingTaxEnabled:    "not-a-bool",
		entity.SettingTaxPercentage: "abc",
	}}, NewCartService(false, 0))

	enabled, percentage, err := svc.TaxConfig(context.Background())

	require.NoError(t, err)
	assert.False(t, enabled)
	assert.Equal(t, 0.0, percentage)
}

func TestTaxConfig_ReadsStoredValues(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{settings: map[string]string{
		entity.SettingTaxEnabled:    "true",
		entity.SettingTaxPercentage: "18",
	}}, NewCartService(false, 0))

	enabled, percentage, err := svc.TaxConfig(context.Background())

	require.NoError(t, err)
	assert.True(t, enabled)
	assert.Equal(t, 18.0, percentage)
}
