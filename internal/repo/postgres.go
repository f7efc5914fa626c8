package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/taxboard/invoice-request-service/internal/entities"
	"github.com/taxboard/invoice-request-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Options struct {
	// При true второй открытый запрос счёта по тому же заказу отклоняется.
	// По умолчанию разрешены повторные запросы.
	SingleRequestPerOrder bool
}

type postgresRepo struct {
	db   *sqlx.DB
	qb   sq.StatementBuilderType
	opts Options
}

func NewPostgresRepo(db *sqlx.DB, opts Options) *postgresRepo {
	return &postgresRepo{
		db:   db,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		opts: opts,
	}
}

var orderColumns = []string{
	"id", "order_no", "cus_name", "email", "phone", "status", "created_at", "updated_at",
}

var invoiceColumns = []string{
	"id", "user_id", "req_no", "req_at", "cus_name", "email", "phone",
	"tax_no", "tax_address", "provider_id", "status",
	"invoice_no", "invoice_date", "replaced_by", "created_at", "updated_at",
}

func (r *postgresRepo) GetOrderByNo(ctx context.Context, orderNo string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_no": orderNo}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	return OrderToEntity(order), nil
}

func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o))
	}
	return result, nil
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	// Номер заказа неизменяем, но статус оплаты может поменяться,
	// поэтому повторное событие обновляет запись.
	query, args := r.qb.Insert("orders").
		Columns("id", "order_no", "cus_name", "email", "phone", "status", "created_at", "updated_at").
		Values(
			o.ID, o.OrderNo, o.CusName, o.Email, nullString(o.Phone),
			string(o.Status), o.CreatedAt, o.UpdatedAt,
		).
		Suffix(`ON CONFLICT (order_no) DO UPDATE SET
			cus_name = EXCLUDED.cus_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

// CreateInvoiceRequest создаёт запись счёта в статусе Requested и связь
// с заказом. Вызывается внутри транзакции менеджера trm: обе вставки
// либо фиксируются вместе, либо откатываются.
func (r *postgresRepo) CreateInvoiceRequest(
	ctx context.Context,
	req entities.InvoiceRequest,
	userID string,
	order entities.Order,
	validation entities.OrderValidation,
) (entities.InvoiceRequestResult, error) {
	if r.opts.SingleRequestPerOrder {
		if err := r.checkNoOpenRequest(ctx, order.ID); err != nil {
			return entities.InvoiceRequestResult{}, err
		}
	}

	now := time.Now().UTC()
	invoiceID := uuid.NewString()
	reqNo := "REQ-" + uuid.NewString()

	query, args := r.qb.Insert("invoices").
		Columns("id", "user_id", "req_no", "req_at", "cus_name", "email", "phone",
			"tax_no", "tax_address", "provider_id", "status", "created_at", "updated_at").
		Values(
			invoiceID, nullString(userID), reqNo, now,
			req.CusName, req.Email, nullString(req.Phone),
			nullString(req.TaxNo), nullString(req.TaxAddress),
			req.ProviderID, string(entities.InvoiceStatusRequested), now, now,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.InvoiceRequestResult{}, fmt.Errorf("failed to insert invoice: %w", err)
	}

	query, args = r.qb.Insert("order_invoices").
		Columns("order_id", "invoice_id", "validation_status", "validation_message", "created_at").
		Values(order.ID, invoiceID, string(validation.Status), validation.Message, now).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.InvoiceRequestResult{}, fmt.Errorf("failed to link invoice to order: %w", err)
	}

	return entities.InvoiceRequestResult{
		InvoiceID:  invoiceID,
		ReqNo:      reqNo,
		OrderID:    order.ID,
		Validation: validation,
	}, nil
}

func (r *postgresRepo) checkNoOpenRequest(ctx context.Context, orderID string) error {
	query, args := r.qb.Select("1").
		From("order_invoices oi").
		Join("invoices i ON i.id = oi.invoice_id").
		Where(sq.Eq{"oi.order_id": orderID}).
		Where(sq.NotEq{"i.status": []string{
			string(entities.InvoiceStatusCancelled),
			string(entities.InvoiceStatusReplaced),
		}}).
		Limit(1).
		MustSql()

	var one int
	err := r.getContext(ctx, &one, query, args...)
	if err == nil {
		return entities.ErrDuplicateRequest
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	return fmt.Errorf("failed to check open requests: %w", err)
}

func (r *postgresRepo) GetInvoiceByReqNo(ctx context.Context, reqNo string) (entities.Invoice, error) {
	query, args := r.qb.Select(invoiceColumns...).
		From("invoices").
		Where(sq.Eq{"req_no": reqNo}).
		MustSql()

	var invoice Invoice
	err := r.getContext(ctx, &invoice, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Invoice{}, entities.ErrInvoiceNotFound
	}
	if err != nil {
		return entities.Invoice{}, fmt.Errorf("failed to get invoice: %w", err)
	}

	return InvoiceToEntity(invoice), nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
