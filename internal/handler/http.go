package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taxboard/invoice-request-service/internal/entities"
	"github.com/taxboard/invoice-request-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type InvoiceService interface {
	RequestInvoice(ctx context.Context, req entities.InvoiceRequest, userID string) (entities.InvoiceRequestResult, error)
	ValidateOrder(ctx context.Context, orderNo string, customer entities.CustomerData) (entities.OrderValidation, error)
	GetInvoiceByReqNo(ctx context.Context, reqNo string) (entities.Invoice, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      InvoiceService
}

func NewHTTPHandler(logger *slog.Logger, svc InvoiceService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/invoice/requests", h.CreateInvoiceRequest)
	r.Get("/invoice/requests/{req_no}", h.GetInvoiceByReqNo)
	r.Get("/orders/{order_no}/validation", h.ValidateOrder)
}

// CreateInvoiceRequest создаёт запрос счёта по заказу.
// @Summary      Запросить счёт по заказу
// @Description  Создаёт запрос счёта. Несовпадение данных не блокирует создание, а помечает запрос для ручной проверки.
// @Tags         invoices
// @Param        request  body  InvoiceRequest  true  "Данные запроса"
// @Success      201  {object}  InvoiceRequestResult
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /invoice/requests [post]
func (h *HTTPHandler) CreateInvoiceRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req InvoiceRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	// Пустой заголовок — гостевой запрос
	userID := r.Header.Get("X-User-ID")

	result, err := h.svc.RequestInvoice(ctx, InvoiceRequestToEntity(req), userID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		invoiceRequestsTotal.WithLabelValues("not_found").Inc()
		utils.WriteError(w, err.Error(), http.StatusNotFound)
		return
	}

	if err != nil {
		invoiceRequestsTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(ctx, "failed to create invoice request",
			slog.Any("error", err), slog.String("order_no", req.OrderNo))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	invoiceRequestsTotal.WithLabelValues(string(result.Validation.Status)).Inc()
	utils.WriteJSON(w, ResultEntityToJSON(result), http.StatusCreated)
}

// ValidateOrder выполняет предварительную проверку данных без создания запроса.
// @Summary      Проверить данные клиента по заказу
// @Tags         orders
// @Param        order_no  path   string  true   "Номер заказа"
// @Param        name      query  string  true   "Имя клиента"
// @Param        email     query  string  false  "Email клиента"
// @Param        phone     query  string  false  "Телефон клиента"
// @Success      200  {object}  OrderValidation
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_no}/validation [get]
func (h *HTTPHandler) ValidateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderNo := chi.URLParam(r, "order_no")

	if err := h.validate.Var(orderNo, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	customer := entities.CustomerData{
		Name:  r.URL.Query().Get("name"),
		Email: r.URL.Query().Get("email"),
		Phone: r.URL.Query().Get("phone"),
	}
	if err := h.validate.Var(customer.Name, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	validation, err := h.svc.ValidateOrder(ctx, orderNo, customer)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, err.Error(), http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to validate order",
			slog.Any("error", err), slog.String("order_no", orderNo))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ValidationEntityToJSON(validation), http.StatusOK)
}

// GetInvoiceByReqNo возвращает запрос счёта по его номеру.
// @Summary      Получить запрос счёта
// @Tags         invoices
// @Param        req_no  path  string  true  "Номер запроса"
// @Success      200  {object}  Invoice
// @Failure      404  {object}  utils.ErrorResponse "Запрос не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /invoice/requests/{req_no} [get]
func (h *HTTPHandler) GetInvoiceByReqNo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqNo := chi.URLParam(r, "req_no")

	if err := h.validate.Var(reqNo, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	invoice, err := h.svc.GetInvoiceByReqNo(ctx, reqNo)

	if errors.Is(err, entities.ErrInvoiceNotFound) {
		utils.WriteError(w, "invoice request not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get invoice", slog.Any("error", err), slog.String("req_no", reqNo))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, InvoiceEntityToJSON(invoice), http.StatusOK)
}
