package repository

import (
	"context"
	"time"

	domainRepo "github.com/akfoods/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

// dayBounds returns the half-open [start, end) interval covering the local
// calendar day of t.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

func (r *reportRepository) GetDaySummary(ctx context.Context, day time.Time) (*domainRepo.DaySummaryResult, error) {
	start, end := dayBounds(day)

	var result domainRepo.DaySummaryResult
	result.Date = start.Format("2006-01-02")

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total), 0) / 100.0 as revenue,
			COUNT(id) as bill_count
		FROM bills
		WHERE created_at >= ? AND created_at < ?
	`, start, end).Scan(&result).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0) / 100.0
		FROM expenses
		WHERE date >= ? AND date < ? AND deleted_at IS NULL
	`, start, end).Scan(&result.Expenses).Error
	if err != nil {
		return nil, err
	}

	result.NetProfit = result.Revenue - result.Expenses
	return &result, nil
}

func (r *reportRepository) GetSalesByDay(ctx context.Context, start, end time.Time) ([]domainRepo.DailySalesResult, error) {
	var results []domainRepo.DailySalesResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			TO_CHAR(created_at, 'YYYY-MM-DD') as date,
			COALESCE(SUM(total), 0) / 100.0 as revenue,
			COUNT(id) as bill_count
		FROM bills
		WHERE created_at >= ? AND created_at < ?
		GROUP BY TO_CHAR(created_at, 'YYYY-MM-DD')
		ORDER BY date ASC
	`, start, end).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *reportRepository) GetHourlySales(ctx context.Context, day time.Time) ([]domainRepo.HourlySalesResult, error) {
	start, end := dayBounds(day)

	var results []domainRepo.HourlySalesResult
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			EXTRACT(HOUR FROM created_at)::int as hour,
			COALESCE(SUM(total), 0) / 100.0 as revenue,
			COUNT(id) as bill_count
		FROM bills
		WHERE created_at >= ? AND created_at < ?
		GROUP BY EXTRACT(HOUR FROM created_at)
		ORDER BY hour ASC
	`, start, end).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *reportRepository) GetTopItems(ctx context.Context, start, end time.Time, limit int) ([]domainRepo.TopItemResult, error) {
	var results []domainRepo.TopItemResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			bi.item_name,
			COALESCE(SUM(bi.quantity), 0) as quantity_sold,
			COALESCE(SUM(bi.total_price), 0) / 100.0 as revenue
		FROM bill_items bi
		JOIN bills b ON b.id = bi.bill_id
		WHERE b.created_at >= ? AND b.created_at < ?
		GROUP BY bi.item_name
		ORDER BY quantity_sold DESC, revenue DESC
		LIMIT ?
	`, start, end, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *reportRepository) GetExpensesByCategory(ctx context.Context, start, end time.Time) ([]domainRepo.CategoryExpenseResult, error) {
	var results []domainRepo.CategoryExpenseResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			category,
			COALESCE(SUM(amount), 0) / 100.0 as total,
			COUNT(id) as count
		FROM expenses
		WHERE date >= ? AND date < ? AND deleted_at IS NULL
		GROUP BY category
		ORDER BY total DESC
	`, start, end).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *reportRepository) GetRevenueTotal(ctx context.Context, start, end time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0) / 100.0
		FROM bills
		WHERE created_at >= ? AND created_at < ?
	`, start, end).Scan(&total).Error
	return total, err
}

func (r *reportRepository) GetExpenseTotal(ctx context.Context, start, end time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0) / 100.0
		FROM expenses
		WHERE date >= ? AND date < ? AND deleted_at IS NULL
	`, start, end).Scan(&total).Error
	return total, err
}
