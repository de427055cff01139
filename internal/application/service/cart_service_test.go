package service

import (
	"testing"

	"github.com/akfoods/pos-api/internal/domain/cart"
	"github.com/akfoods/pos-api/internal/domain/enum"
	"github.com/akfoods/pos-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_TerminalsAreIndependent(t *testing.T) {
	svc := NewCartService(false, 0)

	svc.AddItem("counter-1", cart.CatalogItem{ID: "dosa", Name: "Masala Dosa", Price: 80})
	state := svc.GetCart("counter-2")

	assert.Empty(t, state.Items)
	assert.Len(t, svc.GetCart("counter-1").Items, 1)
}

func TestCartService_NewCartGetsCurrentTaxConfig(t *testing.T) {
	svc := NewCartService(true, 5)

	state := svc.AddItem("counter-1", cart.CatalogItem{ID: "thali", Name: "Thali", Price: 100})

	assert.True(t, state.TaxEnabled)
	assert.Equal(t, 5.0, state.Tax)
	assert.Equal(t, 105.0, state.Total)
}

func TestCartService_SetTaxConfigReachesLiveCarts(t *testing.T) {
	svc := NewCartService(false, 0)
	svc.AddItem("counter-1", cart.CatalogItem{ID: "thali", Name: "Thali", Price: 100})

	svc.SetTaxConfig(true, 10)

	state := svc.GetCart("counter-1")
	assert.True(t, state.TaxEnabled)
	assert.Equal(t, 10.0, state.Tax)
	assert.Equal(t, 110.0, state.Total)
}

func TestCartService_UpdateOrderAppliesOnlySetFields(t *testing.T) {
	svc := NewCartService(false, 0)
	svc.AddItem("counter-1", cart.CatalogItem{ID: "thali", Name: "Thali", Price: 100})

	name := "Ravi"
	orderType := enum.OrderTypeDineIn
	discount := 20.0
	state := svc.UpdateOrder("counter-1", UpdateOrderInput{
		CustomerName: &name,
		OrderType:    &orderType,
		Discount:     &discount,
	})

	assert.Equal(t, "Ravi", state.CustomerName)
	assert.Equal(t, enum.OrderTypeDineIn, state.OrderType)
	assert.Equal(t, 20.0, state.Discount)
	// Untouched fields keep their defaults.
	assert.Equal(t, enum.PaymentMethodCash, state.PaymentMethod)
	assert.Equal(t, 80.0, state.Total)
}

func TestBeginCheckout_EmptyCart(t *testing.T) {
	svc := NewCartService(false, 0)

	_, err := svc.BeginCheckout("counter-1")

	require.Error(t, err)
	assert.Equal(t, apperror.ErrEmptyCart, err)
}

func TestBeginCheckout_SecondCallBlockedUntilFinish(t *testing.T) {
	svc := NewCartService(false, 0)
	svc.AddItem("counter-1", cart.CatalogItem{ID: "chai", Name: "Chai", Price: 20})

	_, err := svc.BeginCheckout("counter-1")
	require.NoError(t, err)

	_, err = svc.BeginCheckout("counter-1")
	require.Error(t, err)
	assert.Equal(t, apperror.ErrCheckoutInFlight, err)

	// A different terminal is unaffected.
	svc.AddItem("counter-2", cart.CatalogItem{ID: "chai", Name: "Chai", Price: 20})
	_, err = svc.BeginCheckout("counter-2")
	assert.NoError(t, err)
}

func TestFinishCheckout_SuccessClearsCart(t *testing.T) {
	svc := NewCartService(true, 10)
	svc.AddItem("counter-1", cart.CatalogItem{ID: "chai", Name: "Chai", Price: 20})

	_, err := svc.BeginCheckout("counter-1")
	require.NoError(t, err)
	svc.FinishCheckout("counter-1", true)

	state := svc.GetCart("counter-1")
	assert.Empty(t, state.Items)
	// Tax configuration survives the clear.
	assert.True(t, state.TaxEnabled)

	// The terminal accepts a new checkout once the cart holds items again.
	svc.AddItem("counter-1", cart.CatalogItem{ID: "chai", Name: "Chai", Price: 20})
	_, err = svc.BeginCheckout("counter-1")
	assert.NoError(t, err)
}

func TestFinishCheckout_FailureKeepsCart(t *testing.T) {
	svc := NewCartService(false, 0)
	svc.AddItem("counter-1", cart.CatalogItem{ID: "chai", Name: "Chai", Price: 20})

	_, err := svc.BeginCheckout("counter-1")
	require.NoError(t, err)
	svc.FinishCheckout("counter-1", false)

	// The order survives so the cashier can retry.
	state := svc.GetCart("counter-1")
	require.Len(t, state.Items, 1)

	_, err = svc.BeginCheckout("counter-1")
	assert.NoError(t, err)
}
