package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/akfoods/pos-api/internal/domain/cart"
	"github.com/akfoods/pos-api/internal/domain/entity"
	"github.com/akfoods/pos-api/internal/domain/repository"
	"github.com/akfoods/pos-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBillRepo struct {
	lastNumber   int64
	bills        []*entity.Bill
	items        []entity.BillItem
	allocateErr  error
	createErr    error
	itemBatchErr error
}

func (f *fakeBillRepo) Create(ctx context.Context, bill *entity.Bill) error {
	if f.createErr != nil {
		return f.createErr
	}
	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	f.bills = append(f.bills, bill)
	return nil
}

func (f *fakeBillRepo) CreateItemsBatch(ctx context.Context, items []entity.BillItem) error {
	if f.itemBatchErr != nil {
		return f.itemBatchErr
	}
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeBillRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	for _, b := range f.bills {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBillRepo) GetByBillNumber(ctx context.Context, billNumber string) (*entity.Bill, error) {
	for _, b := range f.bills {
		if b.BillNumber == billNumber {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBillRepo) List(ctx context.Context, params *repository.BillFilterParams) ([]entity.Bill, int64, error) {
	out := make([]entity.Bill, 0, len(f.bills))
	for _, b := range f.bills {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (f *fakeBillRepo) AllocateBillNumber(ctx context.Context) (string, error) {
	if f.allocateErr != nil {
		return "", f.allocateErr
	}
	f.lastNumber++
	return fmt.Sprintf("AKF-%06d", f.lastNumber), nil
}

type fakeSettingsRepo struct {
	settings map[string]string
}

func (f *fakeSettingsRepo) GetAll(ctx context.Context) ([]entity.Setting, error) {
	out := make([]entity.Setting, 0, len(f.settings))
	for k, v := range f.settings {
		out = append(out, entity.Setting{SettingKey: k, SettingValue: v})
	}
	return out, nil
}

func (f *fakeSettingsRepo) Get(ctx context.Context, key string) (*entity.Setting, error) {
	v, ok := f.settings[key]
	if !ok {
		return nil, nil
	}
	return &entity.Setting{SettingKey: key, SettingValue: v}, nil
}

func (f *fakeSettingsRepo) UpsertBatch(ctx context.Context, settings []entity.Setting) error {
	if f.settings == nil {
		f.settings = make(map[string]string)
	}
	for _, s := range settings {
		f.settings[s.SettingKey] = s.SettingValue
	}
	return nil
}

type recordingPrinter struct {
	prints   int
	printErr error
}

func (p *recordingPrinter) Print(data []byte) error {
	if p.printErr != nil {
		return p.printErr
	}
	p.prints++
	return nil
}

func (p *recordingPrinter) Close() error      { return nil }
func (p *recordingPrinter) IsConnected() bool { return true }

func newBillingFixture(billRepo *fakeBillRepo, prn *recordingPrinter) (*BillingService, *CartService) {
	cartSvc := NewCartService(true, 10)
	printerSvc := NewPrinterService(prn, &fakeSettingsRepo{settings: map[string]string{
		entity.SettingRestaurantName: "AK Foods",
		entity.SettingReceiptFooter:  "Thank you, visit again!",
	}}, "usb", 32)
	return NewBillingService(billRepo, cartSvc, printerSvc), cartSvc
}

func TestCheckout_Success(t *testing.T) {
	billRepo := &fakeBillRepo{}
	prn := &recordingPrinter{}
	svc, cartSvc := newBillingFixture(billRepo, prn)

	cartSvc.AddItem("counter-1", cart.CatalogItem{ID: "thali", Name: "Thali", Price: 250})
	cartSvc.UpdateQuantity("counter-1", "thali", 2)
	paid := 600.0
	cartSvc.UpdateOrder("counter-1", UpdateOrderInput{AmountPaid: &paid})

	userID := uuid.New()
	result, err := svc.Checkout(context.Background(), "counter-1", &userID)
	require.NoError(t, err)

	assert.Equal(t, "AKF-000001", result.Bill.BillNumber)
	assert.Equal(t, int64(50000), result.Bill.SubTotal)
	assert.Equal(t, int64(5000), result.Bill.Tax)
	assert.Equal(t, int64(55000), result.Bill.Total)
	assert.Equal(t, int64(60000), result.Bill.AmountPaid)
	assert.Equal(t, int64(5000), result.Bill.ChangeReturned)
	require.Len(t, result.Bill.Items, 1)
	assert.Equal(t, "Thali", result.Bill.Items[0].ItemName)
	assert.Equal(t, 2, result.Bill.Items[0].Quantity)
	assert.Equal(t, int64(25000), result.Bill.Items[0].UnitPrice)

	assert.True(t, result.Printed)
	assert.Equal(t, "000001", result.Receipt.BillNumber)
	assert.Equal(t, "AK Foods", result.Receipt.Header.RestaurantName)
	// Receipt plus kitchen ticket.
	assert.Equal(t, 2, prn.prints)

	// The cart is cleared and the terminal can sell again.
	assert.Empty(t, cartSvc.GetCart("counter-1").Items)
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc, _ := newBillingFixture(&fakeBillRepo{}, &recordingPrinter{})

	_, err := svc.Checkout(context.Background(), "counter-1", nil)

	assert.Equal(t, apperror.ErrEmptyCart, err)
}

func TestCheckout_SequentialNumbers(t *testing.T) {
	billRepo := &fakeBillRepo{}
	svc, cartSvc := newBillingFixture(billRepo, &recordingPrinter{})

	for i := 0; i < 3; i++ {
		cartSvc.AddItem("counter-1", cart.CatalogItem{ID: "chai", Name: "Chai", Price: 20})
		result, err := svc.Checkout(context.Background(), "counter-1", nil)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("AKF-%06d", i+1), result.Bill.BillNumber)
	}
}

func TestCheckout_AllocationFailureKeepsCart(t *testing.T) {
	billRepo := &fakeBillRepo{allocateErr: errors.New("database down")}
	svc, cartSvc := newBillingFixture(billRepo, &recordingPrinter{})

	cartSvc.AddItem("counter-1", cart.CatalogItem{ID: "chai", Name: "Chai", Price: 20})

	_, err := svc.Checkout(context.Background(), "counter-1", nil)
	require.Error(t, err)

	// The cart survives so the cashier can retry once the database is back.
	state := cartSvc.GetCart("counter-1")
	require.Len(t, state.Items, 1)

	billRepo.allocateErr = nil
	result, err := svc.Checkout(context.Background(), "counter-1", nil)
	require.NoError(t, err)
	assert.Equal(t, "AKF-000001", result.Bill.BillNumber)
}

func TestCheckout_ItemBatchFailureNamesBillNumber(t *testing.T) {
	billRepo := &fakeBillRepo{itemBatchErr: errors.New("insert failed")}
	svc, cartSvc := newBillingFixture(billRepo, &recordingPrinter{})

	cartSvc.AddItem("counter-1", cart.CatalogItem{ID: "chai", Name: "Chai", Price: 20})

	_, err := svc.Checkout(context.Background(), "counter-1", nil)
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 500, appErr.Code)
	assert.Contains(t, appErr.Message, "AKF-000001")

	// The bill header was committed; only the lines are missing.
	require.Len(t, billRepo.bills, 1)
	assert.Empty(t, billRepo.items)

	// The cart is kept for manual reconciliation of the retry.
	assert.Len(t, cartSvc.GetCart("counter-1").Items, 1)
}

func TestCheckout_PrintFailureDoesNotFailSale(t *testing.T) {
	billRepo := &fakeBillRepo{}
	prn := &recordingPrinter{printErr: errors.New("paper out")}
	svc, cartSvc := newBillingFixture(billRepo, prn)

	cartSvc.AddItem("counter-1", cart.CatalogItem{ID: "chai", Name: "Chai", Price: 20})

	result, err := svc.Checkout(context.Background(), "counter-1", nil)
	require.NoError(t, err)

	assert.False(t, result.Printed)
	require.Len(t, billRepo.bills, 1)
	// The sale went through, so the cart is cleared despite the print failure.
	assert.Empty(t, cartSvc.GetCart("counter-1").Items)
}

func TestGetBill_NotFound(t *testing.T) {
	svc, _ := newBillingFixture(&fakeBillRepo{}, &recordingPrinter{})

	_, err := svc.GetBill(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestReprintReceipt(t *testing.T) {
	billRepo := &fakeBillRepo{}
	prn := &recordingPrinter{}
	svc, cartSvc := newBillingFixture(billRepo, prn)

	cartSvc.AddItem("counter-1", cart.CatalogItem{ID: "thali", Name: "Thali", Price: 250})
	result, err := svc.Checkout(context.Background(), "counter-1", nil)
	require.NoError(t, err)

	prints := prn.prints
	receipt, err := svc.ReprintReceipt(context.Background(), result.Bill.ID)
	require.NoError(t, err)

	assert.Equal(t, "000001", receipt.BillNumber)
	assert.Equal(t, 275.0, receipt.Total)
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, "Thali", receipt.Items[0].Name)
	assert.Equal(t, prints+1, prn.prints)
}

func TestCheckout_UnsetTenderDefaultsToTotal(t *testing.T) {
	billRepo := &fakeBillRepo{}
	svc, cartSvc := newBillingFixture(billRepo, &recordingPrinter{})

	cartSvc.AddItem("counter-1", cart.CatalogItem{ID: "thali", Name: "Thali", Price: 150})
	result, err := svc.Checkout(context.Background(), "counter-1", nil)
	require.NoError(t, err)

	// No tender recorded means the customer paid exactly the total
	assert.Equal(t, int64(16500), result.Bill.Total)
	assert.Equal(t, int64(16500), result.Bill.AmountPaid)
	assert.Equal(t, int64(0), result.Bill.ChangeReturned)
	assert.Equal(t, 165.0, result.Receipt.Paid)
	assert.Equal(t, 0.0, result.Receipt.Change)
}

func TestCheckout_ExtraChargeKeepsBaseUnitPrice(t *testing.T) {
	billRepo := &fakeBillRepo{}
	svc, cartSvc := newBillingFixture(billRepo, &recordingPrinter{})

	cartSvc.AddItem("counter-1", cart.CatalogItem{ID: "dosa", Name: "Masala Dosa", Price: 100})
	cartSvc.UpdateExtraCharge("counter-1", "dosa", 50)

	result, err := svc.Checkout(context.Background(), "counter-1", nil)
	require.NoError(t, err)

	require.Len(t, result.Bill.Items, 1)
	// The surcharge lands in the line total, not the unit price
	assert.Equal(t, int64(10000), result.Bill.Items[0].UnitPrice)
	assert.Equal(t, int64(15000), result.Bill.Items[0].TotalPrice)
}

func TestReprintKOT(t *testing.T) {
	billRepo := &fakeBillRepo{}
	prn := &recordingPrinter{}
	svc, cartSvc := newBillingFixture(billRepo, prn)

	cartSvc.AddItem("counter-1", cart.CatalogItem{ID: "dosa", Name: "Masala Dosa", Price: 80})
	result, err := svc.Checkout(context.Background(), "counter-1", nil)
	require.NoError(t, err)

	prints := prn.prints
	receipt, err := svc.ReprintKOT(context.Background(), result.Bill.ID)
	require.NoError(t, err)

	assert.Equal(t, "000001", receipt.BillNumber)
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, "Masala Dosa", receipt.Items[0].Name)
	assert.Equal(t, prints+1, prn.prints)
}

func TestReprintKOT_UnknownBill(t *testing.T) {
	svc, _ := newBillingFixture(&fakeBillRepo{}, &recordingPrinter{})

	receipt, err := svc.ReprintKOT(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Nil(t, receipt)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestReprintReceipt_PrintFailureStillReturnsReceipt(t *testing.T) {
	billRepo := &fakeBillRepo{}
	prn := &recordingPrinter{}
	svc, cartSvc := newBillingFixture(billRepo, prn)

	cartSvc.AddItem("counter-1", cart.CatalogItem{ID: "chai", Name: "Chai", Price: 20})
	result, err := svc.Checkout(context.Background(), "counter-1", nil)
	require.NoError(t, err)

	prn.printErr = errors.New("paper out")
	receipt, err := svc.ReprintReceipt(context.Background(), result.Bill.ID)

	require.Error(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, "000001", receipt.BillNumber)
}
