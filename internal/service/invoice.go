package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/taxboard/invoice-request-service/internal/entities"
	"github.com/taxboard/invoice-request-service/pkg/trm"
	"github.com/taxboard/invoice-request-service/pkg/utils"
)

type InvoiceRepo interface {
	GetOrderByNo(ctx context.Context, orderNo string) (entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)

	// Операция идемпотентна, используется ON CONFLICT
	SaveOrder(ctx context.Context, o entities.Order) error

	CreateInvoiceRequest(
		ctx context.Context,
		req entities.InvoiceRequest,
		userID string,
		order entities.Order,
		validation entities.OrderValidation,
	) (entities.InvoiceRequestResult, error)

	GetInvoiceByReqNo(ctx context.Context, reqNo string) (entities.Invoice, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type EventPublisher interface {
	PublishInvoiceRequested(ctx context.Context, evt entities.InvoiceRequestedEvent) error
}

type invoiceService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      InvoiceRepo
	cache     Cache
	events    EventPublisher
}

func NewInvoiceService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo InvoiceRepo,
	cache Cache,
	events EventPublisher,
) *invoiceService {
	return &invoiceService{
		logger:    logger.With(slog.String("service", "invoice")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		events:    events,
	}
}

// RequestInvoice проводит один запрос счёта от начала до конца:
// поиск заказа, валидация, создание записи в одной транзакции.
// Отсутствие заказа — жёсткий отказ, запись не создаётся. Любая ошибка
// персистентности оборачивается в InvoiceCreationError, исходная причина
// сохраняется для диагностики.
func (s *invoiceService) RequestInvoice(ctx context.Context, req entities.InvoiceRequest, userID string) (entities.InvoiceRequestResult, error) {
	order, err := s.getOrder(ctx, req.OrderNo)
	if err != nil {
		if errors.Is(err, entities.ErrOrderNotFound) {
			return entities.InvoiceRequestResult{}, &entities.OrderNotFoundError{OrderNo: req.OrderNo}
		}
		return entities.InvoiceRequestResult{}, fmt.Errorf("failed to look up order: %w", err)
	}

	validation := ValidateOrderMatch(&order, entities.CustomerData{
		Name:  req.CusName,
		Email: req.Email,
		Phone: req.Phone,
	})

	var result entities.InvoiceRequestResult
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		result, err = s.repo.CreateInvoiceRequest(ctx, req, userID, order, validation)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create invoice request",
			slog.String("order_no", req.OrderNo), slog.Any("error", err))
		return entities.InvoiceRequestResult{}, &entities.InvoiceCreationError{Cause: err}
	}

	s.logger.Debug("invoice request created",
		slog.String("req_no", result.ReqNo),
		slog.String("order_no", req.OrderNo),
		slog.String("validation_status", string(validation.Status)),
	)

	s.publishRequested(ctx, result, order)

	return result, nil
}

// Ошибка публикации не проваливает запрос: запись уже создана,
// событие догонит бэк-офис при следующей сверке.
func (s *invoiceService) publishRequested(ctx context.Context, result entities.InvoiceRequestResult, order entities.Order) {
	evt := entities.InvoiceRequestedEvent{
		ReqNo:            result.ReqNo,
		OrderNo:          order.OrderNo,
		OrderID:          order.ID,
		InvoiceID:        result.InvoiceID,
		ValidationStatus: string(result.Validation.Status),
		RequestedAt:      time.Now().UTC(),
	}
	if err := s.events.PublishInvoiceRequested(ctx, evt); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish invoice requested event",
			slog.String("req_no", result.ReqNo), slog.Any("error", err))
	}
}

// ValidateOrder — предварительная проверка без создания записи.
func (s *invoiceService) ValidateOrder(ctx context.Context, orderNo string, customer entities.CustomerData) (entities.OrderValidation, error) {
	order, err := s.getOrder(ctx, orderNo)
	if err != nil {
		if errors.Is(err, entities.ErrOrderNotFound) {
			return entities.OrderValidation{}, &entities.OrderNotFoundError{OrderNo: orderNo}
		}
		return entities.OrderValidation{}, fmt.Errorf("failed to look up order: %w", err)
	}
	return ValidateOrderMatch(&order, customer), nil
}

func (s *invoiceService) GetInvoiceByReqNo(ctx context.Context, reqNo string) (entities.Invoice, error) {
	return s.repo.GetInvoiceByReqNo(ctx, reqNo)
}

func (s *invoiceService) SaveOrder(ctx context.Context, order entities.Order) error {
	fn := func() error {
		if err := s.repo.SaveOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		s.logger.Debug("order saved", "order_no", order.OrderNo)
		return nil
	}

	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}

	if err := utils.Retry(cfg, fn); err != nil {
		return err
	}

	// Повторное событие могло поменять статус оплаты,
	// кэшированная копия заказа больше не актуальна.
	s.cache.Delete(order.OrderNo)
	return nil
}

func (s *invoiceService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to warm up cache: %w", err)
	}
	for _, order := range orders {
		data, err := order.Marshal()
		if err != nil {
			return err
		}
		s.cache.Set(order.OrderNo, data)
	}
	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

func (s *invoiceService) getOrder(ctx context.Context, orderNo string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderNo); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.String("order_no", orderNo), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByNo(ctx, orderNo)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_no", orderNo), slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(orderNo, data)
	return order, nil
}
