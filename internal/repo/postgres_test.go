package repo_test

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/taxboard/invoice-request-service/internal/entities"
	"github.com/taxboard/invoice-request-service/internal/repo"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

// Запрос проверки открытых счетов: отменённые и заменённые не считаются.
const checkOpenRequestQuery = `SELECT 1 FROM order_invoices oi JOIN invoices i ON i.id = oi.invoice_id WHERE oi.order_id = $1 AND i.status NOT IN ($2,$3) LIMIT 1`

func TestPostgresRepo_CreateInvoiceRequest_SingleRequestPolicy(t *testing.T) {
	order := entities.Order{ID: "ord-id-1", OrderNo: "ORD-1"}
	req := entities.InvoiceRequest{OrderNo: "ORD-1", CusName: "Jane Doe", Email: "jane@x.com", ProviderID: "p1"}
	validation := entities.OrderValidation{Status: entities.ValidationStatusSuccess}

	t.Run("open request exists, second rejected", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := repo.NewPostgresRepo(db, repo.Options{SingleRequestPerOrder: true})

		mock.ExpectQuery(regexp.QuoteMeta(checkOpenRequestQuery)).
			WithArgs("ord-id-1", string(entities.InvoiceStatusCancelled), string(entities.InvoiceStatusReplaced)).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

		_, err := r.CreateInvoiceRequest(context.Background(), req, "user-1", order, validation)
		require.ErrorIs(t, err, entities.ErrDuplicateRequest)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no open request, created", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := repo.NewPostgresRepo(db, repo.Options{SingleRequestPerOrder: true})

		mock.ExpectQuery(regexp.QuoteMeta(checkOpenRequestQuery)).
			WithArgs("ord-id-1", string(entities.InvoiceStatusCancelled), string(entities.InvoiceStatusReplaced)).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO invoices")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_invoices")).
			WillReturnResult(sqlmock.NewResult(0, 1))

		result, err := r.CreateInvoiceRequest(context.Background(), req, "user-1", order, validation)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(result.ReqNo, "REQ-"))
		assert.Equal(t, "ord-id-1", result.OrderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("policy off, repeat requests allowed without check", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := repo.NewPostgresRepo(db, repo.Options{SingleRequestPerOrder: false})

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO invoices")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_invoices")).
			WillReturnResult(sqlmock.NewResult(0, 1))

		_, err := r.CreateInvoiceRequest(context.Background(), req, "user-1", order, validation)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresRepo_GetOrderByNo(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT id, order_no, cus_name, email, phone, status, created_at, updated_at FROM orders WHERE order_no = $1`)
	columns := []string{"id", "order_no", "cus_name", "email", "phone", "status", "created_at", "updated_at"}

	t.Run("found, null phone mapped to empty string", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := repo.NewPostgresRepo(db, repo.Options{})

		now := time.Now().UTC()
		mock.ExpectQuery(query).
			WithArgs("ORD-1").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("ord-id-1", "ORD-1", "Jane Doe", "jane@x.com", nil, "Paid", now, now))

		order, err := r.GetOrderByNo(context.Background(), "ORD-1")
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusPaid, order.Status)
		assert.Empty(t, order.Phone)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := repo.NewPostgresRepo(db, repo.Options{})

		mock.ExpectQuery(query).
			WithArgs("ORD-404").
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := r.GetOrderByNo(context.Background(), "ORD-404")
		require.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}
