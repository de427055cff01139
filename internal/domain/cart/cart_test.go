package cart

import (
	"math/rand"
	"testing"

	"github.com/akfoods/pos-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItem_NewLine(t *testing.T) {
	c := New()
	c.AddItem(CatalogItem{ID: "dosa", Name: "Masala Dosa", Price: 80})

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "dosa", lines[0].ID)
	assert.Equal(t, "Masala Dosa", lines[0].Name)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 80.0, lines[0].UnitPrice)
	assert.Equal(t, 80.0, lines[0].TotalPrice)
}

func TestAddItem_RepeatIncrementsQuantity(t *testing.T) {
	c := New()
	c.AddItem(CatalogItem{ID: "dosa", Name: "Masala Dosa", Price: 80})
	c.AddItem(CatalogItem{ID: "dosa", Name: "Masala Dosa", Price: 80})
	c.AddItem(CatalogItem{ID: "dosa", Name: "Masala Dosa", Price: 80})

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 240.0, lines[0].TotalPrice)
}

func TestAddItem_RepeatKeepsOriginalPrice(t *testing.T) {
	c := New()
	c.AddItem(CatalogItem{ID: "dosa", Name: "Masala Dosa", Price: 80})

	// The catalog price changed between adds; the line keeps the price it
	// was first added at.
	c.AddItem(CatalogItem{ID: "dosa", Name: "Masala Dosa", Price: 95})

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 80.0, lines[0].UnitPrice)
	assert.Equal(t, 160.0, lines[0].TotalPrice)
}

func TestRemoveItem(t *testing.T) {
	c := New()
	c.AddItem(CatalogItem{ID: "dosa", Name: "Masala Dosa", Price: 80})
	c.AddItem(CatalogItem{ID: "chai", Name: "Chai", Price: 20})

	c.RemoveItem("dosa")

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "chai", lines[0].ID)

	// Removing an absent ID is a no-op.
	c.RemoveItem("dosa")
	assert.Len(t, c.Lines(), 1)
}

func TestUpdateQuantity(t *testing.T) {
	c := New()
	c.AddItem(CatalogItem{ID: "chai", Name: "Chai", Price: 20})

	c.UpdateQuantity("chai", 4)
	lines := c.Lines()
	assert.Equal(t, 4, lines[0].Quantity)
	assert.Equal(t, 80.0, lines[0].TotalPrice)
}

func TestUpdateQuantity_BelowOneIsNoOp(t *testing.T) {
	c := New()
	c.AddItem(CatalogItem{ID: "chai", Name: "Chai", Price: 20})
	c.UpdateQuantity("chai", 3)

	c.UpdateQuantity("chai", 0)
	c.UpdateQuantity("chai", -5)

	lines := c.Lines()
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestUpdateExtraCharge_RefreshesTotal(t *testing.T) {
	c := New()
	c.AddItem(CatalogItem{ID: "dosa", Name: "Masala Dosa", Price: 80})
	c.UpdateQuantity("dosa", 2)

	c.UpdateExtraCharge("dosa", 10)

	lines := c.Lines()
	assert.Equal(t, 10.0, lines[0].ExtraCharge)
	assert.Equal(t, 180.0, lines[0].TotalPrice)
	assert.Equal(t, 180.0, c.Subtotal())
}

func TestUpdateNote_DoesNotAffectPricing(t *testing.T) {
	c := New()
	c.AddItem(CatalogItem{ID: "dosa", Name: "Masala Dosa", Price: 80})

	c.UpdateNote("dosa", "extra chutney")

	lines := c.Lines()
	assert.Equal(t, "extra chutney", lines[0].Note)
	assert.Equal(t, 80.0, lines[0].TotalPrice)
}

func TestTax_Disabled(t *testing.T) {
	c := New()
	c.AddItem(CatalogItem{ID: "dosa", Name: "Masala Dosa", Price: 1000})

	assert.Equal(t, 0.0, c.Tax())
	assert.Equal(t, 1000.0, c.Total())
}

func TestTax_OnSubtotal(t *testing.T) {
	c := New()
	c.SetTaxConfig(true, 10)
	c.AddItem(CatalogItem{ID: "thali", Name: "Thali", Price: 1000})

	assert.Equal(t, 100.0, c.Tax())
	assert.Equal(t, 1100.0, c.Total())
}

func TestTax_OnDiscountedSubtotal(t *testing.T) {
	c := New()
	c.SetTaxConfig(true, 10)
	c.AddItem(CatalogItem{ID: "thali", Name: "Thali", Price: 1000})
	c.SetDiscount(200)

	// Tax applies to the discounted base: (1000 - 200) * 10% = 80.
	assert.Equal(t, 80.0, c.Tax())
	assert.Equal(t, 880.0, c.Total())
}

func TestTax_NegativeBaseIsNotClamped(t *testing.T) {
	c := New()
	c.SetTaxConfig(true, 10)
	c.AddItem(CatalogItem{ID: "chai", Name: "Chai", Price: 100})
	c.SetDiscount(300)

	assert.Equal(t, -20.0, c.Tax())
	// Total floors at zero even though the arithmetic is negative.
	assert.Equal(t, 0.0, c.Total())
}

func TestTax_Rounding(t *testing.T) {
	c := New()
	c.SetTaxConfig(true, 5)
	c.AddItem(CatalogItem{ID: "chai", Name: "Chai", Price: 33.33})

	// 33.33 * 5% = 1.6665, rounds to 1.67.
	assert.Equal(t, 1.67, c.Tax())
}

func TestTotal_WithDeliveryCharge(t *testing.T) {
	c := New()
	c.AddItem(CatalogItem{ID: "thali", Name: "Thali", Price: 250})
	c.SetOrderType(enum.OrderTypeDelivery)
	c.SetDeliveryCharge(40)

	assert.Equal(t, 290.0, c.Total())
}

func TestDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, enum.OrderTypeTakeaway, c.OrderType())
	assert.Equal(t, enum.PaymentMethodCash, c.PaymentMethod())
	assert.True(t, c.IsEmpty())
}

func TestClear_ResetsOrderButKeepsTaxConfig(t *testing.T) {
	c := New()
	c.SetTaxConfig(true, 18)
	c.AddItem(CatalogItem{ID: "dosa", Name: "Masala Dosa", Price: 80})
	c.SetCustomerName("Ravi")
	c.SetCustomerPhone("9876543210")
	c.SetOrderType(enum.OrderTypeDineIn)
	c.SetPaymentMethod(enum.PaymentMethodCard)
	c.SetDiscount(10)
	c.SetAmountPaid(100)
	c.SetDeliveryCharge(40)

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.CustomerName())
	assert.Empty(t, c.CustomerPhone())
	assert.Equal(t, enum.OrderTypeTakeaway, c.OrderType())
	assert.Equal(t, enum.PaymentMethodCash, c.PaymentMethod())
	assert.Equal(t, 0.0, c.Discount())
	assert.Equal(t, 0.0, c.AmountPaid())
	assert.Equal(t, 0.0, c.DeliveryCharge())

	assert.True(t, c.TaxEnabled())
	assert.Equal(t, 18.0, c.TaxPercentage())
}

func TestSnapshot(t *testing.T) {
	c := New()
	c.SetTaxConfig(true, 10)
	c.AddItem(CatalogItem{ID: "thali", Name: "Thali", Price: 250})
	c.UpdateQuantity("thali", 2)
	c.SetDiscount(50)
	c.SetCustomerName("Ravi")

	state := c.Snapshot()
	assert.Equal(t, 500.0, state.Subtotal)
	assert.Equal(t, 45.0, state.Tax)
	assert.Equal(t, 495.0, state.Total)
	assert.Equal(t, "Ravi", state.CustomerName)
	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
}

func TestOrderFlow(t *testing.T) {
	c := New()
	c.SetTaxConfig(true, 5)

	c.AddItem(CatalogItem{ID: "dosa", Name: "Masala Dosa", Price: 80})
	c.AddItem(CatalogItem{ID: "dosa", Name: "Masala Dosa", Price: 80})
	c.AddItem(CatalogItem{ID: "chai", Name: "Chai", Price: 20})
	c.UpdateExtraCharge("dosa", 10)
	c.SetDiscount(20)

	// Lines: dosa 2 x (80 + 10) = 180, chai 1 x 20 = 20.
	assert.Equal(t, 200.0, c.Subtotal())
	// Tax: (200 - 20) * 5% = 9.
	assert.Equal(t, 9.0, c.Tax())
	assert.Equal(t, 189.0, c.Total())
}

// TestSubtotal_RandomMutations drives the cart through random add, remove,
// quantity and surcharge operations and checks Subtotal against a naive
// per-item reference after every step. Prices are quarter-rupee multiples so
// the float arithmetic stays exact.
func TestSubtotal_RandomMutations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	ids := []string{"dosa", "idli", "chai", "thali", "vada", "lassi"}
	price := func() float64 { return float64(rng.Intn(400)+1) * 0.25 }

	c := New()
	ref := map[string]*Line{}
	refSubtotal := func() float64 {
		var sum float64
		for _, id := range ids {
			if l, ok := ref[id]; ok {
				sum += float64(l.Quantity) * (l.UnitPrice + l.ExtraCharge)
			}
		}
		return sum
	}

	for step := 0; step < 2000; step++ {
		id := ids[rng.Intn(len(ids))]
		switch rng.Intn(4) {
		case 0:
			p := price()
			c.AddItem(CatalogItem{ID: id, Name: id, Price: p})
			if l, ok := ref[id]; ok {
				l.Quantity++
			} else {
				ref[id] = &Line{ID: id, Quantity: 1, UnitPrice: p}
			}
		case 1:
			c.RemoveItem(id)
			delete(ref, id)
		case 2:
			q := rng.Intn(7) - 1 // includes 0 and -1, which must be no-ops
			c.UpdateQuantity(id, q)
			if l, ok := ref[id]; ok && q >= 1 {
				l.Quantity = q
			}
		case 3:
			extra := price()
			c.UpdateExtraCharge(id, extra)
			if l, ok := ref[id]; ok {
				l.ExtraCharge = extra
			}
		}

		require.Equal(t, refSubtotal(), c.Subtotal(), "diverged at step %d", step)
		require.Equal(t, len(ref), len(c.Lines()))
	}
}
