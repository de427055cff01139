package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBill_DisplayNumber(t *testing.T) {
	tests := []struct {
		billNumber string
		want       string
	}{
		{"AKF-000042", "000042"},
		{"AKF-2026-000042", "000042"},
		{"000042", "000042"},
		{"", ""},
	}

	for _, tt := range tests {
		b := &Bill{BillNumber: tt.billNumber}
		assert.Equal(t, tt.want, b.DisplayNumber())
	}
}

func TestBill_MarshalJSON_ConvertsCents(t *testing.T) {
	bill := Bill{
		BillNumber: "AKF-000001",
		SubTotal:   50000,
		Discount:   1000,
		Tax:        2450,
		Total:      51450,
		AmountPaid: 60000,
	}

	data, err := json.Marshal(bill)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, 500.0, out["subtotal"])
	assert.Equal(t, 10.0, out["discount"])
	assert.Equal(t, 24.5, out["tax"])
	assert.Equal(t, 514.5, out["total"])
	assert.Equal(t, 600.0, out["amount_paid"])
}

func TestBillItem_MarshalJSON_ConvertsCents(t *testing.T) {
	item := BillItem{
		ItemName:   "Thali",
		Quantity:   2,
		UnitPrice:  25000,
		TotalPrice: 50000,
	}

	data, err := json.Marshal(item)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, 250.0, out["unit_price"])
	assert.Equal(t, 500.0, out["total_price"])
}
