package repository

import (
	"context"
	"time"
)

// DaySummaryResult holds the headline figures for a single day
type DaySummaryResult struct {
	Date      string  `json:"date"`
	Revenue   float64 `json:"revenue"`
	Expenses  float64 `json:"expenses"`
	NetProfit float64 `json:"net_profit"`
	BillCount int64   `json:"bill_count"`
}

// DailySalesResult holds revenue aggregated per calendar day
type DailySalesResult struct {
	Date      string  `json:"date"`
	Revenue   float64 `json:"revenue"`
	BillCount int64   `json:"bill_count"`
}

// HourlySalesResult holds revenue aggregated per hour of one day
type HourlySalesResult struct {
	Hour      int     `json:"hour"`
	Revenue   float64 `json:"revenue"`
	BillCount int64   `json:"bill_count"`
}

// TopItemResult holds the best-selling items for a period
type TopItemResult struct {
	ItemName     string  `json:"item_name"`
	QuantitySold int64   `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// CategoryExpenseResult holds expenses aggregated per category
type CategoryExpenseResult struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int64   `json:"count"`
}

// ReportRepository defines the read-only aggregate queries behind the
// reporting screens
type ReportRepository interface {
	GetDaySummary(ctx context.Context, day time.Time) (*DaySummaryResult, error)
	GetSalesByDay(ctx context.Context, start, end time.Time) ([]DailySalesResult, error)
	GetHourlySales(ctx context.Context, day time.Time) ([]HourlySalesResult, error)
	GetTopItems(ctx context.Context, start, end time.Time, limit int) ([]TopItemResult, error)
	GetExpensesByCategory(ctx context.Context, start, end time.Time) ([]CategoryExpenseResult, error)
	GetRevenueTotal(ctx context.Context, start, end time.Time) (float64, error)
	GetExpenseTotal(ctx context.Context, start, end time.Time) (float64, error)
}
