package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/akfoods/pos-api/internal/domain/entity"
	"github.com/akfoods/pos-api/internal/domain/repository"
	"github.com/akfoods/pos-api/pkg/printer"
)

// PrinterService handles receipt and kitchen ticket formatting and thermal
// printing.
type PrinterService struct {
	printer      printer.Printer
	settingsRepo repository.SettingsRepository
	printerType  string
	charWidth    int
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	settingsRepo repository.SettingsRepository,
	printerType string,
	charWidth int,
) *PrinterService {
	if charWidth <= 0 {
		charWidth = 32
	}
	return &PrinterService{
		printer:      p,
		settingsRepo: settingsRepo,
		printerType:  printerType,
		charWidth:    charWidth,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// ReceiptHeader builds the printable store header and footer from the saved
// settings. Missing settings degrade to empty fields, never to an error page
// on the customer's receipt.
func (s *PrinterService) ReceiptHeader(ctx context.Context) (entity.ReceiptHeader, string, float64) {
	header := entity.ReceiptHeader{RestaurantName: "Restaurant"}
	footer := ""
	taxPercent := 0.0

	settings, err := s.settingsRepo.GetAll(ctx)
	if err != nil {
		return header, footer, taxPercent
	}

	for _, setting := range settings {
		switch setting.SettingKey {
		case entity.SettingRestaurantName:
			if setting.SettingValue != "" {
				header.RestaurantName = setting.SettingValue
			}
		case entity.SettingAddress:
			header.Address = setting.SettingValue
		case entity.SettingPhone1:
			header.Phone1 = setting.SettingValue
		case entity.SettingPhone2:
			header.Phone2 = setting.SettingValue
		case entity.SettingReceiptFooter:
			footer = setting.SettingValue
		case entity.SettingTaxPercentage:
			if v, err := strconv.ParseFloat(setting.SettingValue, 64); err == nil {
				taxPercent = v
			}
		}
	}

	return header, footer, taxPercent
}

// PrintReceipt formats and prints a customer receipt.
func (s *PrinterService) PrintReceipt(r *entity.Receipt) error {
	data := FormatReceipt(r, s.charWidth)
	if err := s.printer.Print(data); err != nil {
		return fmt.Errorf("failed to print receipt: %w", err)
	}
	return nil
}

// PrintKOT formats and prints a kitchen order ticket.
func (s *PrinterService) PrintKOT(r *entity.Receipt) error {
	data := FormatKOT(r, s.charWidth)
	if err := s.printer.Print(data); err != nil {
		return fmt.Errorf("failed to print kitchen ticket: %w", err)
	}
	return nil
}

// TestPrint sends a test page to the printer. Returns the receipt data so the
// handler can return it as JSON when no printer is attached.
func (s *PrinterService) TestPrint(ctx context.Context) (*entity.Receipt, error) {
	header, footer, _ := s.ReceiptHeader(ctx)

	receipt := &entity.Receipt{
		Header:     header,
		BillNumber: "000000",
		Date:       "Test Date",
		Time:       "Test Time",
		OrderType:  "takeaway",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 10.00, Total: 10.00},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 5.00, Total: 10.00},
		},
		SubTotal: 20.00,
		Total:    20.00,
		Paid:     20.00,
		Payment:  "cash",
		Footer:   footer,
	}

	if err := s.PrintReceipt(receipt); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt, width int) []byte {
	doc := printer.NewDocument(width)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.RestaurantName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.WrappedText(r.Header.Address)
	}
	if r.Header.Phone1 != "" {
		doc.Text(r.Header.Phone1)
	}
	if r.Header.Phone2 != "" {
		doc.Text(r.Header.Phone2)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Bill info
	doc.KeyValue("Bill No:", r.BillNumber).
		KeyValue("Date:", r.Date).
		KeyValue("Time:", r.Time).
		KeyValue("Order:", r.OrderType)

	if r.Customer != "" {
		doc.KeyValue("Customer:", r.Customer)
	}
	if r.Phone != "" {
		doc.KeyValue("Phone:", r.Phone)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 || item.ExtraCharge > 0 {
			if item.ExtraCharge > 0 {
				doc.TextF("  @ %.2f + %.2f extra", item.UnitPrice, item.ExtraCharge)
			} else {
				doc.TextF("  @ %.2f each", item.UnitPrice)
			}
		}
		if item.Note != "" {
			doc.NoteLine(item.Note)
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Items:", strconv.Itoa(r.TotalQuantity())).
		KeyValue("Subtotal:", fmt.Sprintf("%.2f", r.SubTotal))
	if r.Discount > 0 {
		doc.KeyValue("Discount:", fmt.Sprintf("-%.2f", r.Discount))
	}
	if r.Tax != 0 {
		label := "Tax:"
		if r.TaxPercent > 0 {
			label = fmt.Sprintf("Tax (%.1f%%):", r.TaxPercent)
		}
		doc.KeyValue(label, fmt.Sprintf("%.2f", r.Tax))
	}
	if r.Delivery > 0 {
		doc.KeyValue("Delivery:", fmt.Sprintf("%.2f", r.Delivery))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", r.Total)).
		SetBold(false)

	if r.Paid > 0 {
		doc.KeyValue("Paid:", fmt.Sprintf("%.2f", r.Paid))
		doc.KeyValue("Change:", fmt.Sprintf("%.2f", r.Change))
	}
	if r.Payment != "" {
		doc.KeyValue("Payment:", r.Payment)
	}

	doc.Separator('-')

	// Footer
	if r.Footer != "" {
		doc.SetAlign(printer.AlignCenter).
			LineFeed().
			WrappedText(r.Footer).
			SetAlign(printer.AlignLeft)
	}

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

// FormatKOT converts a Receipt into a kitchen order ticket. Prices are
// omitted; the kitchen cares about items, quantities and notes.
func FormatKOT(r *entity.Receipt, width int) []byte {
	doc := printer.NewDocument(width)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text("KITCHEN ORDER").
		SetFontSize(printer.FontNormal).
		SetBold(false)

	doc.SetAlign(printer.AlignLeft).
		Separator('=')

	doc.KeyValue("Bill No:", r.BillNumber).
		KeyValue("Time:", r.Time).
		KeyValue("Order:", r.OrderType)

	doc.Separator('=')

	for _, item := range r.Items {
		doc.SetBold(true).
			SetFontSize(printer.FontTall).
			TextF("%dx %s", item.Quantity, item.Name).
			SetFontSize(printer.FontNormal).
			SetBold(false)
		if item.Note != "" {
			doc.NoteLine(item.Note)
		}
	}

	doc.Separator('=').
		KeyValue("Total items:", strconv.Itoa(r.TotalQuantity()))

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
