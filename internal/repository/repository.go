package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/mercadopago/internal/entity"
	"github.com/samandr77/microservices/mercadopago/internal/settings"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (r *Repository) CreateOrder(ctx context.Context, o entity.Order) error {
	const q = `
	INSERT INTO orders (
		id,
		increment_id,
		store_id,
		status,
		state,
		grand_total,
		base_grand_total,
		discount_coupon_amount,
		base_discount_coupon_amount,
		finance_cost_amount,
		base_finance_cost_amount,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		o.ID,
		o.IncrementID,
		o.StoreID,
		o.Status,
		o.State,
		o.GrandTotal,
		o.BaseGrandTotal,
		o.DiscountCouponAmount,
		o.BaseDiscountCouponAmount,
		o.FinanceCostAmount,
		o.BaseFinanceCostAmount,
		o.CreatedAt,
		o.UpdatedAt,
	)

	return err
}

func (r *Repository) OrderByIncrementID(ctx context.Context, incrementID string) (entity.Order, error) {
	q := selectOrder + " WHERE increment_id = $1"
	return scanOrder(r.db.QueryRow(ctx, q, incrementID))
}

func scanOrder(row pgx.Row) (o entity.Order, err error) {
	err = row.Scan(
		&o.ID,
		&o.IncrementID,
		&o.StoreID,
		&o.Status,
		&o.State,
		&o.GrandTotal,
		&o.BaseGrandTotal,
		&o.DiscountCouponAmount,
		&o.BaseDiscountCouponAmount,
		&o.FinanceCostAmount,
		&o.BaseFinanceCostAmount,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Order{}, entity.ErrNotFound
		}

		return entity.Order{}, err
	}

	return o, nil
}

func (r *Repository) StatusHistory(ctx context.Context, orderID uuid.UUID) ([]entity.StatusHistory, error) {
	const q = `SELECT id, order_id, status, comment, created_at
	FROM order_status_history
	WHERE order_id = $1
	ORDER BY created_at`

	rows, err := r.db.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var history []entity.StatusHistory

	for rows.Next() {
		var h entity.StatusHistory

		err = rows.Scan(&h.ID, &h.OrderID, &h.Status, &h.Comment, &h.CreatedAt)
		if err != nil {
			return nil, err
		}

		history = append(history, h)
	}

	return history, rows.Err()
}

// SaveOrderUpdate writes the order update and its history record in one transaction.
func (r *Repository) SaveOrderUpdate(ctx context.Context, upd entity.OrderUpdate, history entity.StatusHistory) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := updateOrder(ctx, tx, upd)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		err = addStatusHistory(ctx, tx, history)
		if err != nil {
			return fmt.Errorf("add status history: %w", err)
		}

		return nil
	})
}

// updateOrder always sets the grand totals; status, state and the optional amounts only when present.
func updateOrder(ctx context.Context, db execer, upd entity.OrderUpdate) error {
	f := upd.Financials

	stmt := sq.Update("orders").
		Set("grand_total", f.GrandTotal).
		Set("base_grand_total", f.BaseGrandTotal).
		Set("updated_at", upd.UpdatedAt).
		Where(sq.Eq{"id": upd.OrderID}).
		PlaceholderFormat(sq.Dollar)

	if upd.Status != "" {
		stmt = stmt.Set("status", upd.Status)
	}

	if upd.State != "" {
		stmt = stmt.Set("state", upd.State)
	}

	stmt = setValid(stmt, "discount_coupon_amount", f.DiscountCouponAmount)
	stmt = setValid(stmt, "base_discount_coupon_amount", f.BaseDiscountCouponAmount)
	stmt = setValid(stmt, "finance_cost_amount", f.FinanceCostAmount)
	stmt = setValid(stmt, "base_finance_cost_amount", f.BaseFinanceCostAmount)

	sql, args, err := stmt.ToSql()
	if err != nil {
		return err
	}

	result, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func setValid(stmt sq.UpdateBuilder, column string, v decimal.NullDecimal) sq.UpdateBuilder {
	if !v.Valid {
		return stmt
	}

	return stmt.Set(column, v.Decimal)
}

func addStatusHistory(ctx context.Context, db execer, h entity.StatusHistory) error {
	const q = `INSERT INTO order_status_history (id, order_id, status, comment, created_at) VALUES ($1, $2, $3, $4, $5)`

	_, err := db.Exec(ctx, q, h.ID, h.OrderID, h.Status, h.Comment, h.CreatedAt)

	return err
}

// StateByStatus returns the order state an order status belongs to.
func (r *Repository) StateByStatus(ctx context.Context, status string) (string, error) {
	const q = `SELECT state FROM order_statuses WHERE status = $1`

	var state string

	err := r.db.QueryRow(ctx, q, status).Scan(&state)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("status %q: %w", status, entity.ErrNotFound)
		}

		return "", err
	}

	return state, nil
}

// Value implements settings.Store over core_config_data. A row cleared to NULL is returned as ""
// so it hides values of lower layers; only a missing row is entity.ErrNotFound.
func (r *Repository) Value(ctx context.Context, path settings.Path, scope entity.Scope) (string, error) {
	var value string

	err := r.db.QueryRow(ctx, selectConfigValue, string(path), string(scope.Kind), scope.ID).Scan((*zeronull.Text)(&value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%s: %w", path, entity.ErrNotFound)
		}

		return "", err
	}

	return value, nil
}

// SetValue stores a configuration value at the scope. An empty value clears it.
func (r *Repository) SetValue(ctx context.Context, path settings.Path, scope entity.Scope, value string) error {
	const q = `
	INSERT INTO core_config_data (scope, scope_id, path, value)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (scope, scope_id, path) DO UPDATE SET value = EXCLUDED.value
	`

	if scope.IsDefault() {
		scope = entity.DefaultScope
	}

	_, err := r.db.Exec(ctx, q, string(scope.Kind), scope.ID, string(path), zeronull.Text(value))

	return err
}
