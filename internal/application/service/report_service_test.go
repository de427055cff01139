package service

import (
	"context"
	"testing"
	"time"

	"github.com/akfoods/pos-api/internal/domain/repository"
	"github.com/akfoods/pos-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	daySummary *repository.DaySummaryResult
	daily      []repository.DailySalesResult
	hourly     []repository.HourlySalesResult
	topItems   []repository.TopItemResult
	byCategory []repository.CategoryExpenseResult
	revenue    float64
	expenses   float64

	topItemsLimit int
}

func (f *fakeReportRepo) GetDaySummary(ctx context.Context, day time.Time) (*repository.DaySummaryResult, error) {
	return f.daySummary, nil
}

func (f *fakeReportRepo) GetSalesByDay(ctx context.Context, start, end time.Time) ([]repository.DailySalesResult, error) {
	return f.daily, nil
}

func (f *fakeReportRepo) GetHourlySales(ctx context.Context, day time.Time) ([]repository.HourlySalesResult, error) {
	return f.hourly, nil
}

func (f *fakeReportRepo) GetTopItems(ctx context.Context, start, end time.Time, limit int) ([]repository.TopItemResult, error) {
	f.topItemsLimit = limit
	return f.topItems, nil
}

func (f *fakeReportRepo) GetExpensesByCategory(ctx context.Context, start, end time.Time) ([]repository.CategoryExpenseResult, error) {
	return f.byCategory, nil
}

func (f *fakeReportRepo) GetRevenueTotal(ctx context.Context, start, end time.Time) (float64, error) {
	return f.revenue, nil
}

func (f *fakeReportRepo) GetExpenseTotal(ctx context.Context, start, end time.Time) (float64, error) {
	return f.expenses, nil
}

func TestGetRangeSummary(t *testing.T) {
	repo := &fakeReportRepo{
		revenue:  12500.50,
		expenses: 4000,
		daily: []repository.DailySalesResult{
			{Date: "2026-08-01", Revenue: 6000, BillCount: 40},
			{Date: "2026-08-02", Revenue: 6500.50, BillCount: 45},
		},
	}
	svc := NewReportService(repo, nil, "", "AK Foods")

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2026, 8, 3, 0, 0, 0, 0, time.Local)

	summary, err := svc.GetRangeSummary(context.Background(), start, end)

	require.NoError(t, err)
	assert.Equal(t, "2026-08-01", summary.StartDate)
	assert.Equal(t, 12500.50, summary.Revenue)
	assert.Equal(t, 4000.0, summary.Expenses)
	assert.Equal(t, 8500.50, summary.NetProfit)
	assert.Len(t, summary.DailySales, 2)
}

func TestGetRangeSummary_RejectsInvertedRange(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{}, nil, "", "AK Foods")

	start := time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local)
	end := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)

	_, err := svc.GetRangeSummary(context.Background(), start, end)

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestTopItems_DefaultLimit(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := NewReportService(repo, nil, "", "AK Foods")

	_, err := svc.TopItems(context.Background(), time.Now(), time.Now(), 0)

	require.NoError(t, err)
	assert.Equal(t, 10, repo.topItemsLimit)
}

func TestSendDailySummaryEmail_NotConfigured(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{}, nil, "", "AK Foods")

	err := svc.SendDailySummaryEmail(context.Background(), time.Now())

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
