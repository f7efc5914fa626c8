package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/taxboard/invoice-request-service/internal/entities"
	"github.com/taxboard/invoice-request-service/internal/service"
	mocks "github.com/taxboard/invoice-request-service/internal/service/mocks"
	"github.com/taxboard/invoice-request-service/pkg/cache"
	txMocks "github.com/taxboard/invoice-request-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type invoiceService interface {
	RequestInvoice(ctx context.Context, req entities.InvoiceRequest, userID string) (entities.InvoiceRequestResult, error)
	ValidateOrder(ctx context.Context, orderNo string, customer entities.CustomerData) (entities.OrderValidation, error)
	SaveOrder(ctx context.Context, order entities.Order) error
}

func newService(t *testing.T, repo *mocks.MockInvoiceRepo, cache *mocks.MockCache, events *mocks.MockEventPublisher, passthroughTx bool) invoiceService {
	t.Helper()

	tx := txMocks.NewMockManager(t)
	if passthroughTx {
		tx.EXPECT().
			Do(mock.Anything, mock.Anything).
			RunAndReturn(
				func(ctx context.Context, cb func(ctx context.Context) error) error {
					return cb(ctx)
				}).Maybe()
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewInvoiceService(logger, tx, repo, cache, events)
}

func TestInvoiceService_RequestInvoice(t *testing.T) {
	validOrder := entities.Order{
		ID:      "ord-id-1",
		OrderNo: "ORD-1",
		CusName: "Jane Doe",
		Email:   "jane@x.com",
		Phone:   "0900000000",
		Status:  entities.PaymentStatusPaid,
	}
	orderData, err := validOrder.Marshal()
	require.NoError(t, err)

	input := entities.InvoiceRequest{
		OrderNo:    "ORD-1",
		CusName:    "jane doe",
		Email:      "other@x.com",
		ProviderID: "p1",
	}

	dbError := errors.New("db error")

	type MockBehavior func(repo *mocks.MockInvoiceRepo, cache *mocks.MockCache, events *mocks.MockEventPublisher)

	testCases := []struct {
		name         string
		input        entities.InvoiceRequest
		userID       string
		mockBehavior MockBehavior
		wantErr      error
		wantNoCreate bool
		wantStatus   entities.ValidationStatus
	}{
		{
			name:   "success, name matches paid order",
			input:  input,
			userID: "user-1",
			mockBehavior: func(repo *mocks.MockInvoiceRepo, cache *mocks.MockCache, events *mocks.MockEventPublisher) {
				cache.EXPECT().Get("ORD-1").Return(orderData, true).Once()
				repo.EXPECT().
					CreateInvoiceRequest(mock.Anything, input, "user-1", validOrder, mock.Anything).
					RunAndReturn(func(_ context.Context, _ entities.InvoiceRequest, _ string, order entities.Order, v entities.OrderValidation) (entities.InvoiceRequestResult, error) {
						return entities.InvoiceRequestResult{
							InvoiceID:  "inv-1",
							ReqNo:      "REQ-1",
							OrderID:    order.ID,
							Validation: v,
						}, nil
					}).Once()
				events.EXPECT().PublishInvoiceRequested(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantStatus: entities.ValidationStatusSuccess,
		},
		{
			name:   "guest request with mismatched data still creates invoice",
			input:  entities.InvoiceRequest{OrderNo: "ORD-1", CusName: "Someone Else", Email: "nobody@x.com", ProviderID: "p1"},
			userID: "",
			mockBehavior: func(repo *mocks.MockInvoiceRepo, cache *mocks.MockCache, events *mocks.MockEventPublisher) {
				cache.EXPECT().Get("ORD-1").Return(orderData, true).Once()
				repo.EXPECT().
					CreateInvoiceRequest(mock.Anything, mock.Anything, "", validOrder, mock.Anything).
					RunAndReturn(func(_ context.Context, _ entities.InvoiceRequest, _ string, order entities.Order, v entities.OrderValidation) (entities.InvoiceRequestResult, error) {
						return entities.InvoiceRequestResult{
							InvoiceID:  "inv-2",
							ReqNo:      "REQ-2",
							OrderID:    order.ID,
							Validation: v,
						}, nil
					}).Once()
				events.EXPECT().PublishInvoiceRequested(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantStatus: entities.ValidationStatusWarning,
		},
		{
			name:  "order not found, no create attempted",
			input: entities.InvoiceRequest{OrderNo: "ORD-404", CusName: "Jane Doe", Email: "jane@x.com", ProviderID: "p1"},
			mockBehavior: func(repo *mocks.MockInvoiceRepo, cache *mocks.MockCache, events *mocks.MockEventPublisher) {
				cache.EXPECT().Get("ORD-404").Return(nil, false).Once()
				repo.EXPECT().
					GetOrderByNo(mock.Anything, "ORD-404").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr:      entities.ErrOrderNotFound,
			wantNoCreate: true,
		},
		{
			name:  "create fails, wrapped in creation error",
			input: input,
			mockBehavior: func(repo *mocks.MockInvoiceRepo, cache *mocks.MockCache, events *mocks.MockEventPublisher) {
				cache.EXPECT().Get("ORD-1").Return(orderData, true).Once()
				repo.EXPECT().
					CreateInvoiceRequest(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(entities.InvoiceRequestResult{}, dbError).Once()
			},
			wantErr: entities.ErrInvoiceCreation,
		},
		{
			name:   "publish failure does not fail the request",
			input:  input,
			userID: "user-1",
			mockBehavior: func(repo *mocks.MockInvoiceRepo, cache *mocks.MockCache, events *mocks.MockEventPublisher) {
				cache.EXPECT().Get("ORD-1").Return(orderData, true).Once()
				repo.EXPECT().
					CreateInvoiceRequest(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(entities.InvoiceRequestResult{
						InvoiceID:  "inv-3",
						ReqNo:      "REQ-3",
						OrderID:    validOrder.ID,
						Validation: entities.OrderValidation{Status: entities.ValidationStatusSuccess},
					}, nil).Once()
				events.EXPECT().
					PublishInvoiceRequested(mock.Anything, mock.Anything).
					Return(errors.New("kafka down")).Once()
			},
			wantStatus: entities.ValidationStatusSuccess,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockInvoiceRepo(t)
			cache := mocks.NewMockCache(t)
			events := mocks.NewMockEventPublisher(t)

			tc.mockBehavior(repo, cache, events)

			svc := newService(t, repo, cache, events, true)

			result, err := svc.RequestInvoice(context.Background(), tc.input, tc.userID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				if tc.wantNoCreate {
					repo.AssertNotCalled(t, "CreateInvoiceRequest",
						mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, result.Validation.Status)
			assert.NotEmpty(t, result.ReqNo)
			assert.Equal(t, validOrder.ID, result.OrderID)
		})
	}
}

func TestInvoiceService_RequestInvoice_PreservesCause(t *testing.T) {
	validOrder := entities.Order{ID: "ord-id-1", OrderNo: "ORD-1", CusName: "Jane Doe", Status: entities.PaymentStatusPaid}
	orderData, err := validOrder.Marshal()
	require.NoError(t, err)

	dbError := errors.New("unique constraint violation")

	repo := mocks.NewMockInvoiceRepo(t)
	cache := mocks.NewMockCache(t)
	events := mocks.NewMockEventPublisher(t)

	cache.EXPECT().Get("ORD-1").Return(orderData, true).Once()
	repo.EXPECT().
		CreateInvoiceRequest(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(entities.InvoiceRequestResult{}, dbError).Once()

	svc := newService(t, repo, cache, events, true)

	_, err = svc.RequestInvoice(context.Background(), entities.InvoiceRequest{OrderNo: "ORD-1", CusName: "Jane Doe", ProviderID: "p1"}, "")

	// Снаружи стабильный вид ошибки, внутри исходная причина
	require.ErrorIs(t, err, entities.ErrInvoiceCreation)
	assert.ErrorIs(t, err, dbError)

	var ce *entities.InvoiceCreationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, dbError, ce.Cause)
}

func TestInvoiceService_ValidateOrder(t *testing.T) {
	validOrder := entities.Order{
		ID:      "ord-id-1",
		OrderNo: "ORD-1",
		CusName: "Jane Doe",
		Email:   "jane@x.com",
		Status:  entities.PaymentStatusPaid,
	}
	orderData, err := validOrder.Marshal()
	require.NoError(t, err)

	t.Run("success from cache", func(t *testing.T) {
		repo := mocks.NewMockInvoiceRepo(t)
		cache := mocks.NewMockCache(t)
		events := mocks.NewMockEventPublisher(t)

		cache.EXPECT().Get("ORD-1").Return(orderData, true).Once()

		svc := newService(t, repo, cache, events, false)

		validation, err := svc.ValidateOrder(context.Background(), "ORD-1", entities.CustomerData{Name: "jane doe"})
		require.NoError(t, err)
		assert.Equal(t, entities.ValidationStatusSuccess, validation.Status)
	})

	t.Run("success from repo and set to cache", func(t *testing.T) {
		repo := mocks.NewMockInvoiceRepo(t)
		cache := mocks.NewMockCache(t)
		events := mocks.NewMockEventPublisher(t)

		cache.EXPECT().Get("ORD-1").Return(nil, false).Once()
		repo.EXPECT().GetOrderByNo(mock.Anything, "ORD-1").Return(validOrder, nil).Once()
		cache.EXPECT().Set("ORD-1", orderData).Return().Once()

		svc := newService(t, repo, cache, events, false)

		validation, err := svc.ValidateOrder(context.Background(), "ORD-1", entities.CustomerData{Name: "jane doe"})
		require.NoError(t, err)
		assert.Equal(t, entities.ValidationStatusSuccess, validation.Status)
	})

	t.Run("order not found", func(t *testing.T) {
		repo := mocks.NewMockInvoiceRepo(t)
		cache := mocks.NewMockCache(t)
		events := mocks.NewMockEventPublisher(t)

		cache.EXPECT().Get("ORD-404").Return(nil, false).Once()
		repo.EXPECT().
			GetOrderByNo(mock.Anything, "ORD-404").
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		svc := newService(t, repo, cache, events, false)

		_, err := svc.ValidateOrder(context.Background(), "ORD-404", entities.CustomerData{Name: "jane doe"})
		require.ErrorIs(t, err, entities.ErrOrderNotFound)

		var nf *entities.OrderNotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "ORD-404", nf.OrderNo)
		assert.Contains(t, err.Error(), "ORD-404")
	})
}

func TestInvoiceService_SaveOrder(t *testing.T) {
	order := entities.Order{ID: "ord-id-1", OrderNo: "ORD-1"}

	t.Run("retry works (first attempt fails, second succeeds)", func(t *testing.T) {
		repo := mocks.NewMockInvoiceRepo(t)
		cache := mocks.NewMockCache(t)
		events := mocks.NewMockEventPublisher(t)

		repo.EXPECT().SaveOrder(mock.Anything, order).Once().Return(errors.New("temporary error"))
		repo.EXPECT().SaveOrder(mock.Anything, order).Once().Return(nil)
		cache.EXPECT().Delete("ORD-1").Return().Once()

		svc := newService(t, repo, cache, events, false)

		assert.NoError(t, svc.SaveOrder(context.Background(), order))
	})

	t.Run("successful save invalidates cached order", func(t *testing.T) {
		repo := mocks.NewMockInvoiceRepo(t)
		cache := mocks.NewMockCache(t)
		events := mocks.NewMockEventPublisher(t)

		repo.EXPECT().SaveOrder(mock.Anything, order).Return(nil).Once()
		cache.EXPECT().Delete("ORD-1").Return().Once()

		svc := newService(t, repo, cache, events, false)

		require.NoError(t, svc.SaveOrder(context.Background(), order))
	})

	t.Run("persistent failure surfaces", func(t *testing.T) {
		repo := mocks.NewMockInvoiceRepo(t)
		cache := mocks.NewMockCache(t)
		events := mocks.NewMockEventPublisher(t)

		dbError := errors.New("db error")
		repo.EXPECT().SaveOrder(mock.Anything, order).Return(dbError)

		svc := newService(t, repo, cache, events, false)

		assert.ErrorIs(t, svc.SaveOrder(context.Background(), order), dbError)
		cache.AssertNotCalled(t, "Delete", "ORD-1")
	})
}

// Проверяет цепочку целиком на живом кэше: заказ закэширован неоплаченным,
// событие оплаты сохраняет его оплаченным, повторная проверка не должна
// видеть устаревшую копию.
func TestInvoiceService_SaveOrder_RefreshesValidation(t *testing.T) {
	pending := entities.Order{
		ID:      "ord-id-1",
		OrderNo: "ORD-1",
		CusName: "Jane Doe",
		Email:   "jane@x.com",
		Status:  entities.PaymentStatusPending,
	}
	paid := pending
	paid.Status = entities.PaymentStatusPaid

	repo := mocks.NewMockInvoiceRepo(t)
	events := mocks.NewMockEventPublisher(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var svc invoiceService = service.NewInvoiceService(logger, tx, repo, cache.NewLRUCache(8, time.Minute), events)

	customer := entities.CustomerData{Name: "Jane Doe"}

	repo.EXPECT().GetOrderByNo(mock.Anything, "ORD-1").Return(pending, nil).Once()
	validation, err := svc.ValidateOrder(context.Background(), "ORD-1", customer)
	require.NoError(t, err)
	require.Equal(t, entities.ValidationStatusWarning, validation.Status)
	require.Equal(t, service.TitleOrderNotPaid, validation.Title)

	repo.EXPECT().SaveOrder(mock.Anything, paid).Return(nil).Once()
	require.NoError(t, svc.SaveOrder(context.Background(), paid))

	repo.EXPECT().GetOrderByNo(mock.Anything, "ORD-1").Return(paid, nil).Once()
	validation, err = svc.ValidateOrder(context.Background(), "ORD-1", customer)
	require.NoError(t, err)
	assert.Equal(t, entities.ValidationStatusSuccess, validation.Status)
}
