package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/storepulse/commerce-dashboard-api/infrastructure/database/postgres"
	"github.com/storepulse/commerce-dashboard-api/internal/domain"
)

const dailySummariesTable = "daily_summaries"

type DailySummaryRepository interface {
	GetByDate(date time.Time) (*domain.DailySummary, error)
	SaveOrUpdate(summary *domain.DailySummary) error
	GetByDateRange(startDate, endDate time.Time) ([]*domain.DailySummary, error)
}

type dailySummaryRepository struct {
	conn *postgres.Connection
}

func NewDailySummaryRepository(conn *postgres.Connection) DailySummaryRepository {
	return &dailySummaryRepository{
		conn: conn,
	}
}

func (r *dailySummaryRepository) GetByDate(date time.Time) (*domain.DailySummary, error) {
	query, args, err := squirrel.
		Select("summary_date", "total_sales", "total_cogs", "total_ad_spend", "net_profit", "order_count", "updated_at").
		From(dailySummariesTable).
		Where(squirrel.Eq{"summary_date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building daily summary query")
	}

	summary, err := scanDailySummary(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "scanning daily summary")
	}

	return summary, nil
}

func (r *dailySummaryRepository) GetByDateRange(startDate, endDate time.Time) ([]*domain.DailySummary, error) {
	query, args, err := squirrel.
		Select("summary_date", "total_sales", "total_cogs", "total_ad_spend", "net_profit", "order_count", "updated_at").
		From(dailySummariesTable).
		Where(squirrel.GtOrEq{"summary_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.Lt{"summary_date": endDate.Format(time.DateOnly)}).
		OrderBy("summary_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building daily summary range query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "querying daily summaries")
	}
	defer rows.Close()

	summaries := make([]*domain.DailySummary, 0)
	for rows.Next() {
		summary, err := scanDailySummary(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning daily summary")
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating daily summary rows")
	}

	return summaries, nil
}

func (r *dailySummaryRepository) SaveOrUpdate(summary *domain.DailySummary) error {
	query, args, err := squirrel.
		Insert(dailySummariesTable).
		Columns("summary_date", "total_sales", "total_cogs", "total_ad_spend", "net_profit", "order_count").
		Values(
			summary.Date.Format(time.DateOnly),
			summary.TotalSales,
			summary.TotalCogs,
			summary.TotalAdSpend,
			summary.NetProfit,
			summary.OrderCount,
		).
		Suffix(`
			ON CONFLICT (summary_date) DO UPDATE SET
				total_sales = EXCLUDED.total_sales,
				total_cogs = EXCLUDED.total_cogs,
				total_ad_spend = EXCLUDED.total_ad_spend,
				net_profit = EXCLUDED.net_profit,
				order_count = EXCLUDED.order_count,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building daily summary upsert")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return errors.Wrap(err, "upserting daily summary")
	}

	return nil
}

func scanDailySummary(row rowScanner) (*domain.DailySummary, error) {
	summary := &domain.DailySummary{}
	var dateStr string

	err := row.Scan(
		&dateStr,
		&summary.TotalSales,
		&summary.TotalCogs,
		&summary.TotalAdSpend,
		&summary.NetProfit,
		&summary.OrderCount,
		&summary.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, errors.Wrap(err, "parsing summary date")
	}
	summary.Date = date

	return summary, nil
}
