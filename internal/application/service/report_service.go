package service

import (
	"context"
	"fmt"
	"time"

	"github.com/akfoods/pos-api/internal/domain/repository"
	"github.com/akfoods/pos-api/pkg/apperror"
	"github.com/akfoods/pos-api/pkg/email"
)

// ReportService serves the reporting screens and the end-of-day summary email
type ReportService struct {
	reportRepo   repository.ReportRepository
	emailService *email.EmailService
	summaryTo    string
	storeName    string
}

// NewReportService creates a new report service. emailService may be nil when
// email is disabled.
func NewReportService(
	reportRepo repository.ReportRepository,
	emailService *email.EmailService,
	summaryTo string,
	storeName string,
) *ReportService {
	return &ReportService{
		reportRepo:   reportRepo,
		emailService: emailService,
		summaryTo:    summaryTo,
		storeName:    storeName,
	}
}

// DaySummary returns the headline figures for one day
func (s *ReportService) DaySummary(ctx context.Context, day time.Time) (*repository.DaySummaryResult, error) {
	return s.reportRepo.GetDaySummary(ctx, day)
}

// RangeSummary holds totals plus breakdowns for an arbitrary date range
type RangeSummary struct {
	StartDate  string                             `json:"start_date"`
	EndDate    string                             `json:"end_date"`
	Revenue    float64                            `json:"revenue"`
	Expenses   float64                            `json:"expenses"`
	NetProfit  float64                            `json:"net_profit"`
	DailySales []repository.DailySalesResult      `json:"daily_sales"`
	TopItems   []repository.TopItemResult         `json:"top_items"`
	ByCategory []repository.CategoryExpenseResult `json:"expenses_by_category"`
}

// GetRangeSummary aggregates revenue, expenses, daily sales, top items and
// expense categories over [start, end).
func (s *ReportService) GetRangeSummary(ctx context.Context, start, end time.Time) (*RangeSummary, error) {
	if end.Before(start) {
		return nil, apperror.NewBadRequestError("End date must not be before start date")
	}

	revenue, err := s.reportRepo.GetRevenueTotal(ctx, start, end)
	if err != nil {
		return nil, err
	}

	expenses, err := s.reportRepo.GetExpenseTotal(ctx, start, end)
	if err != nil {
		return nil, err
	}

	daily, err := s.reportRepo.GetSalesByDay(ctx, start, end)
	if err != nil {
		return nil, err
	}

	topItems, err := s.reportRepo.GetTopItems(ctx, start, end, 10)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.reportRepo.GetExpensesByCategory(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return &RangeSummary{
		StartDate:  start.Format("2006-01-02"),
		EndDate:    end.Format("2006-01-02"),
		Revenue:    revenue,
		Expenses:   expenses,
		NetProfit:  revenue - expenses,
		DailySales: daily,
		TopItems:   topItems,
		ByCategory: byCategory,
	}, nil
}

// HourlySales returns sales aggregated per hour for one day
func (s *ReportService) HourlySales(ctx context.Context, day time.Time) ([]repository.HourlySalesResult, error) {
	return s.reportRepo.GetHourlySales(ctx, day)
}

// TopItems returns the best-selling items in [start, end)
func (s *ReportService) TopItems(ctx context.Context, start, end time.Time, limit int) ([]repository.TopItemResult, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.reportRepo.GetTopItems(ctx, start, end, limit)
}

// SendDailySummaryEmail composes the end-of-day summary for the given day and
// emails it to the configured recipient.
func (s *ReportService) SendDailySummaryEmail(ctx context.Context, day time.Time) error {
	if s.emailService == nil || s.summaryTo == "" {
		return apperror.NewBadRequestError("Summary email is not configured")
	}

	summary, err := s.reportRepo.GetDaySummary(ctx, day)
	if err != nil {
		return err
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	topItems, err := s.reportRepo.GetTopItems(ctx, dayStart, dayStart.AddDate(0, 0, 1), 5)
	if err != nil {
		return err
	}

	payload := email.DailySummary{
		RestaurantName: s.storeName,
		Date:           summary.Date,
		BillCount:      summary.BillCount,
		Revenue:        fmt.Sprintf("%.2f", summary.Revenue),
		Expenses:       fmt.Sprintf("%.2f", summary.Expenses),
		NetAmount:      fmt.Sprintf("%.2f", summary.NetProfit),
	}
	for _, item := range topItems {
		payload.TopItems = append(payload.TopItems, email.SummaryItem{
			Name:     item.ItemName,
			Quantity: item.QuantitySold,
			Revenue:  fmt.Sprintf("%.2f", item.Revenue),
		})
	}

	return s.emailService.SendDailySummary(s.summaryTo, payload)
}
