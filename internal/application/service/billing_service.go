package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/akfoods/pos-api/internal/domain/cart"
	"github.com/akfoods/pos-api/internal/domain/entity"
	"github.com/akfoods/pos-api/internal/domain/repository"
	"github.com/akfoods/pos-api/pkg/apperror"
	"github.com/akfoods/pos-api/pkg/pagination"
	"github.com/google/uuid"
)

// BillingService drives checkout and serves the persisted bill history.
type BillingService struct {
	billRepo   repository.BillRepository
	cartSvc    *CartService
	printerSvc *PrinterService
}

// NewBillingService creates a new billing service
func NewBillingService(
	billRepo repository.BillRepository,
	cartSvc *CartService,
	printerSvc *PrinterService,
) *BillingService {
	return &BillingService{
		billRepo:   billRepo,
		cartSvc:    cartSvc,
		printerSvc: printerSvc,
	}
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CheckoutResult is what a successful checkout returns to the terminal.
type CheckoutResult struct {
	Bill    *entity.Bill    `json:"bill"`
	Receipt *entity.Receipt `json:"receipt"`
	Printed bool            `json:"printed"`
}

// Checkout finalizes the terminal's cart: it allocates the next bill number,
// persists the bill with its items, clears the cart, and prints the receipt
// and kitchen ticket. A failure before the bill is stored leaves the cart
// intact so the cashier can retry. Print failures never fail the checkout;
// the sale is already recorded.
func (s *BillingService) Checkout(ctx context.Context, terminalID string, userID *uuid.UUID) (*CheckoutResult, error) {
	state, err := s.cartSvc.BeginCheckout(terminalID)
	if err != nil {
		return nil, err
	}

	succeeded := false
	defer func() {
		s.cartSvc.FinishCheckout(terminalID, succeeded)
	}()

	billNumber, err := s.billRepo.AllocateBillNumber(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	// An unset tender means the customer paid exactly the total
	if state.AmountPaid == 0 {
		state.AmountPaid = state.Total
	}
	change := math.Max(0, state.AmountPaid-state.Total)

	bill := &entity.Bill{
		BillNumber:     billNumber,
		CustomerName:   state.CustomerName,
		CustomerPhone:  state.CustomerPhone,
		OrderType:      state.OrderType,
		SubTotal:       toCents(state.Subtotal),
		Discount:       toCents(state.Discount),
		Tax:            toCents(state.Tax),
		Total:          toCents(state.Total),
		PaymentMethod:  state.PaymentMethod,
		AmountPaid:     toCents(state.AmountPaid),
		ChangeReturned: toCents(change),
		CreatedBy:      userID,
		CreatedAt:      now,
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}

	items := make([]entity.BillItem, 0, len(state.Items))
	for _, line := range state.Items {
		items = append(items, entity.BillItem{
			BillID:   bill.ID,
			ItemName: line.Name,
			Quantity: line.Quantity,
			// Base catalog price only; extras surface in the line total
			UnitPrice:  toCents(line.UnitPrice),
			TotalPrice: toCents(line.TotalPrice),
		})
	}

	if err := s.billRepo.CreateItemsBatch(ctx, items); err != nil {
		// The bill header is already committed under an allocated number.
		// Surface that number so the sale can be reconciled by hand.
		return nil, apperror.NewAppError(500,
			fmt.Sprintf("Bill %s was saved without items; please reconcile manually", billNumber))
	}
	bill.Items = items

	succeeded = true

	receipt := s.buildReceipt(ctx, bill, state, now)

	printed := true
	if err := s.printerSvc.PrintReceipt(receipt); err != nil {
		log.Printf("Printer error (bill %s): %v", billNumber, err)
		printed = false
	}
	if err := s.printerSvc.PrintKOT(receipt); err != nil {
		log.Printf("Printer error on kitchen ticket (bill %s): %v", billNumber, err)
	}

	return &CheckoutResult{
		Bill:    bill,
		Receipt: receipt,
		Printed: printed,
	}, nil
}

func (s *BillingService) buildReceipt(ctx context.Context, bill *entity.Bill, state cart.State, at time.Time) *entity.Receipt {
	header, footer, _ := s.printerSvc.ReceiptHeader(ctx)

	receipt := &entity.Receipt{
		Header:     header,
		BillNumber: bill.DisplayNumber(),
		Date:       at.Format("02-01-2006"),
		Time:       at.Format("03:04 PM"),
		OrderType:  string(state.OrderType),
		Customer:   state.CustomerName,
		Phone:      state.CustomerPhone,
		SubTotal:   state.Subtotal,
		Discount:   state.Discount,
		Tax:        state.Tax,
		TaxPercent: state.TaxPercentage,
		Delivery:   state.DeliveryCharge,
		Total:      state.Total,
		Paid:       state.AmountPaid,
		Change:     math.Max(0, state.AmountPaid-state.Total),
		Payment:    string(state.PaymentMethod),
		Footer:     footer,
	}

	for _, line := range state.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:        line.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			ExtraCharge: line.ExtraCharge,
			Note:        line.Note,
			Total:       line.TotalPrice,
		})
	}

	return receipt
}

// GetBill retrieves a bill, with its items, by ID.
func (s *BillingService) GetBill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills lists bills with filtering and pagination.
func (s *BillingService) ListBills(ctx context.Context, params *repository.BillFilterParams) (*pagination.PaginatedResult[entity.Bill], error) {
	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(bills, pag), nil
}

// ReprintReceipt rebuilds the receipt of a stored bill and sends it to the
// printer again.
func (s *BillingService) ReprintReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	receipt, bill, err := s.receiptForBill(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.printerSvc.PrintReceipt(receipt); err != nil {
		log.Printf("Printer error on reprint (bill %s): %v", bill.BillNumber, err)
		return receipt, err
	}

	return receipt, nil
}

// ReprintKOT resends a stored bill to the kitchen printer. Per-item notes are
// not persisted on bills, so a reprinted KOT carries item names and
// quantities only.
func (s *BillingService) ReprintKOT(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	receipt, bill, err := s.receiptForBill(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.printerSvc.PrintKOT(receipt); err != nil {
		log.Printf("Printer error on KOT reprint (bill %s): %v", bill.BillNumber, err)
		return receipt, err
	}

	return receipt, nil
}

func (s *BillingService) receiptForBill(ctx context.Context, id uuid.UUID) (*entity.Receipt, *entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if bill == nil {
		return nil, nil, apperror.NewNotFoundError("Bill")
	}

	header, footer, _ := s.printerSvc.ReceiptHeader(ctx)

	receipt := &entity.Receipt{
		Header:     header,
		BillNumber: bill.DisplayNumber(),
		Date:       bill.CreatedAt.Format("02-01-2006"),
		Time:       bill.CreatedAt.Format("03:04 PM"),
		OrderType:  string(bill.OrderType),
		Customer:   bill.CustomerName,
		Phone:      bill.CustomerPhone,
		SubTotal:   float64(bill.SubTotal) / 100,
		Discount:   float64(bill.Discount) / 100,
		Tax:        float64(bill.Tax) / 100,
		Total:      float64(bill.Total) / 100,
		Paid:       float64(bill.AmountPaid) / 100,
		Change:     float64(bill.ChangeReturned) / 100,
		Payment:    string(bill.PaymentMethod),
		Footer:     footer,
	}

	for _, item := range bill.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      item.ItemName,
			Quantity:  item.Quantity,
			UnitPrice: float64(item.UnitPrice) / 100,
			Total:     float64(item.TotalPrice) / 100,
		})
	}

	return receipt, bill, nil
}
