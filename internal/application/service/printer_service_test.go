package service

import (
	"context"
	"testing"

	"github.com/akfoods/pos-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReceipt() *entity.Receipt {
	return &entity.Receipt{
		Header: entity.ReceiptHeader{
			RestaurantName: "AK Foods",
			Address:        "12 Main Road, Mysore",
			Phone1:         "9876543210",
		},
		BillNumber: "000042",
		Date:       "29-08-2026",
		Time:       "01:15 PM",
		OrderType:  "dine-in",
		Customer:   "Ravi",
		Items: []entity.ReceiptItem{
			{Name: "Masala Dosa", Quantity: 2, UnitPrice: 80, Total: 160, Note: "extra chutney"},
			{Name: "Chai", Quantity: 1, UnitPrice: 20, Total: 20},
		},
		SubTotal:   180,
		Tax:        9,
		TaxPercent: 5,
		Total:      189,
		Paid:       200,
		Change:     11,
		Payment:    "cash",
		Footer:     "Thank you, visit again!",
	}
}

func TestFormatReceipt(t *testing.T) {
	out := string(FormatReceipt(sampleReceipt(), 32))

	assert.Contains(t, out, "AK Foods")
	assert.Contains(t, out, "12 Main Road, Mysore")
	assert.Contains(t, out, "Bill No:")
	assert.Contains(t, out, "000042")
	assert.Contains(t, out, "2x Masala Dosa")
	assert.Contains(t, out, "@ 80.00 each")
	assert.Contains(t, out, "* extra chutney")
	assert.Contains(t, out, "Tax (5.0%):")
	assert.Contains(t, out, "189.00")
	assert.Contains(t, out, "Change:")
	assert.Contains(t, out, "Thank you, visit again!")
}

func TestFormatReceipt_SkipsZeroSections(t *testing.T) {
	r := sampleReceipt()
	r.Discount = 0
	r.Tax = 0
	r.TaxPercent = 0
	r.Delivery = 0
	r.Paid = 0

	out := string(FormatReceipt(r, 32))

	assert.NotContains(t, out, "Discount:")
	assert.NotContains(t, out, "Tax")
	assert.NotContains(t, out, "Delivery:")
	assert.NotContains(t, out, "Paid:")
}

func TestFormatReceipt_ExtraCharge(t *testing.T) {
	r := sampleReceipt()
	r.Items = []entity.ReceiptItem{
		{Name: "Masala Dosa", Quantity: 2, UnitPrice: 80, ExtraCharge: 10, Total: 180},
	}

	out := string(FormatReceipt(r, 32))

	assert.Contains(t, out, "@ 80.00 + 10.00 extra")
}

func TestFormatKOT(t *testing.T) {
	out := string(FormatKOT(sampleReceipt(), 32))

	assert.Contains(t, out, "KITCHEN ORDER")
	assert.Contains(t, out, "2x Masala Dosa")
	assert.Contains(t, out, "* extra chutney")
	assert.Contains(t, out, "Total items:")
	assert.Contains(t, out, "3")

	// The kitchen ticket never carries prices.
	assert.NotContains(t, out, "160.00")
	assert.NotContains(t, out, "189.00")
	assert.NotContains(t, out, "Subtotal")
}

func TestReceiptHeader_FromSettings(t *testing.T) {
	svc := NewPrinterService(&recordingPrinter{}, &fakeSettingsRepo{settings: map[string]string{
		entity.SettingRestaurantName: "AK Foods",
		entity.SettingAddress:        "12 Main Road",
		entity.SettingPhone1:         "9876543210",
		entity.SettingReceiptFooter:  "See you soon",
		entity.SettingTaxPercentage:  "5",
	}}, "usb", 32)

	header, footer, taxPercent := svc.ReceiptHeader(context.Background())

	assert.Equal(t, "AK Foods", header.RestaurantName)
	assert.Equal(t, "12 Main Road", header.Address)
	assert.Equal(t, "9876543210", header.Phone1)
	assert.Equal(t, "See you soon", footer)
	assert.Equal(t, 5.0, taxPercent)
}

func TestReceiptHeader_MissingSettingsDegrade(t *testing.T) {
	svc := NewPrinterService(&recordingPrinter{}, &fakeSettingsRepo{}, "none", 32)

	header, footer, taxPercent := svc.ReceiptHeader(context.Background())

	assert.Equal(t, "Restaurant", header.RestaurantName)
	assert.Empty(t, footer)
	assert.Equal(t, 0.0, taxPercent)
}

func TestGetStatus(t *testing.T) {
	svc := NewPrinterService(&recordingPrinter{}, &fakeSettingsRepo{}, "usb", 32)

	status := svc.GetStatus()
	assert.True(t, status.Configured)
	assert.True(t, status.Connected)
	assert.Equal(t, "usb", status.Type)

	none := NewPrinterService(&recordingPrinter{}, &fakeSettingsRepo{}, "none", 32)
	assert.False(t, none.GetStatus().Configured)
}

func TestTestPrint(t *testing.T) {
	prn := &recordingPrinter{}
	svc := NewPrinterService(prn, &fakeSettingsRepo{settings: map[string]string{
		entity.SettingRestaurantName: "AK Foods",
	}}, "usb", 32)

	receipt, err := svc.TestPrint(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "AK Foods", receipt.Header.RestaurantName)
	assert.Equal(t, 1, prn.prints)
}
