package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/govalues/decimal"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/swark/arkpay/internal/adapter/storage"
	"github.com/swark/arkpay/internal/core/domain"
)

const ordersTable = "orders"

var orderColumns = []string{
	"number", "currency", "invoice_amount", "expected_amount",
	"recipient_address", "vendor_field", "transaction_id", "payment_status", "created_at",
}

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := r.db.QueryBuilder.Insert(ordersTable).
		Columns(orderColumns...).
		Values(order.Number, order.Currency, order.InvoiceAmount, order.ExpectedAmount,
			order.RecipientAddress, order.VendorField, order.TransactionID,
			order.PaymentStatus, order.CreatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, number uint64) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From(ordersTable).
		Where(sq.Eq{"number": number})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&order.Number,
		&order.Currency,
		&order.InvoiceAmount,
		&order.ExpectedAmount,
		&order.RecipientAddress,
		&order.VendorField,
		&order.TransactionID,
		&order.PaymentStatus,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &order, nil
}

// ListOpenOrders returns the orders the sweep still has to settle.
// Partially paid orders stay in the set so a topped-up payment can
// complete them later.
func (r *Repository) ListOpenOrders(ctx context.Context) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From(ordersTable).
		Where(sq.Eq{"payment_status": []domain.PaymentStatus{
			domain.PaymentStatusOpen,
			domain.PaymentStatusPartiallyPaid,
		}}).
		OrderBy("number")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order := domain.Order{}
		err := rows.Scan(
			&order.Number,
			&order.Currency,
			&order.InvoiceAmount,
			&order.ExpectedAmount,
			&order.RecipientAddress,
			&order.VendorField,
			&order.TransactionID,
			&order.PaymentStatus,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) SetExpectedAmount(ctx context.Context, number uint64, amount decimal.Decimal) error {
	return r.setOrderField(ctx, number, "expected_amount", amount)
}

func (r *Repository) SetRecipientAddress(ctx context.Context, number uint64, address string) error {
	return r.setOrderField(ctx, number, "recipient_address", address)
}

func (r *Repository) SetVendorField(ctx context.Context, number uint64, vendorField string) error {
	return r.setOrderField(ctx, number, "vendor_field", vendorField)
}

func (r *Repository) SetTransactionID(ctx context.Context, number uint64, transactionID string) error {
	return r.setOrderField(ctx, number, "transaction_id", transactionID)
}

func (r *Repository) SetPaymentStatus(ctx context.Context, number uint64, status domain.PaymentStatus) error {
	return r.setOrderField(ctx, number, "payment_status", status)
}

// setOrderField is one durable write per reconciliation attribute, so
// provisioning steps land independently.
func (r *Repository) setOrderField(ctx context.Context, number uint64, column string, value any) error {
	statement := r.db.QueryBuilder.Update(ordersTable).
		Set(column, value).
		Where(sq.Eq{"number": number})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	ct, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}

	return nil
}
