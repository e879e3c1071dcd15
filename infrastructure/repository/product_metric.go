package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/storepulse/commerce-dashboard-api/infrastructure/database/postgres"
	"github.com/storepulse/commerce-dashboard-api/internal/domain"
)

const productMetricsTable = "product_metrics"

// ErrProductMetricNotFound reports an update or delete against a sku_name
// that does not exist.
var ErrProductMetricNotFound = errors.New("product metric not found")

type ProductMetricRepository interface {
	List() ([]*domain.ProductMetric, error)
	Create(metric *domain.ProductMetric) (*domain.ProductMetric, error)
	Update(skuName string, metric *domain.ProductMetric) (*domain.ProductMetric, error)
	Delete(skuName string) error
}

type productMetricRepository struct {
	conn *postgres.Connection
}

func NewProductMetricRepository(conn *postgres.Connection) ProductMetricRepository {
	return &productMetricRepository{
		conn: conn,
	}
}

func (r *productMetricRepository) List() ([]*domain.ProductMetric, error) {
	query, args, err := squirrel.
		Select("product_name", "size", "sku_name", "selling_price", "per_bottle_cost", "net_margin").
		From(productMetricsTable).
		OrderBy("product_name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building product metrics query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "querying product metrics")
	}
	defer rows.Close()

	metrics := make([]*domain.ProductMetric, 0)
	for rows.Next() {
		metric, err := scanProductMetric(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning product metric")
		}
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating product metric rows")
	}

	return metrics, nil
}

func (r *productMetricRepository) Create(metric *domain.ProductMetric) (*domain.ProductMetric, error) {
	query, args, err := squirrel.
		Insert(productMetricsTable).
		Columns("product_name", "size", "sku_name", "selling_price", "per_bottle_cost", "net_margin").
		Values(
			metric.ProductName,
			metric.Size,
			metric.SKUName,
			metric.SellingPrice,
			metric.PerBottleCost,
			metric.NetMargin,
		).
		Suffix("RETURNING product_name, size, sku_name, selling_price, per_bottle_cost, net_margin").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building product metric insert")
	}

	created, err := scanProductMetric(r.conn.QueryRow(query, args...))
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, errors.Wrapf(pqErr, "database error (code: %s)", pqErr.Code)
		}
		return nil, errors.Wrap(err, "inserting product metric")
	}

	return created, nil
}

func (r *productMetricRepository) Update(skuName string, metric *domain.ProductMetric) (*domain.ProductMetric, error) {
	query, args, err := squirrel.
		Update(productMetricsTable).
		Set("product_name", metric.ProductName).
		Set("size", metric.Size).
		Set("selling_price", metric.SellingPrice).
		Set("per_bottle_cost", metric.PerBottleCost).
		Set("net_margin", metric.NetMargin).
		Where(squirrel.Eq{"sku_name": skuName}).
		Suffix("RETURNING product_name, size, sku_name, selling_price, per_bottle_cost, net_margin").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building product metric update")
	}

	updated, err := scanProductMetric(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProductMetricNotFound
		}
		return nil, errors.Wrap(err, "updating product metric")
	}

	return updated, nil
}

func (r *productMetricRepository) Delete(skuName string) error {
	query, args, err := squirrel.
		Delete(productMetricsTable).
		Where(squirrel.Eq{"sku_name": skuName}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building product metric delete")
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "deleting product metric")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "reading affected rows")
	}

	if rowsAffected == 0 {
		return ErrProductMetricNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProductMetric(row rowScanner) (*domain.ProductMetric, error) {
	metric := &domain.ProductMetric{}

	err := row.Scan(
		&metric.ProductName,
		&metric.Size,
		&metric.SKUName,
		&metric.SellingPrice,
		&metric.PerBottleCost,
		&metric.NetMargin,
	)
	if err != nil {
		return nil, err
	}

	return metric, nil
}
