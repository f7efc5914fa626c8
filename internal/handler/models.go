package handler

import (
	"time"

	"github.com/taxboard/invoice-request-service/internal/entities"
)

// InvoiceRequest — тело POST /invoice/requests
type InvoiceRequest struct {
	OrderNo    string `json:"order_no" validate:"required"`
	CusName    string `json:"cus_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone,omitempty"`
	TaxNo      string `json:"tax_no,omitempty"`
	TaxAddress string `json:"tax_address,omitempty"`
	ProviderID string `json:"provider_id" validate:"required"`
}

// InvoiceRequestResult — ответ на создание запроса счёта
type InvoiceRequestResult struct {
	InvoiceID         string `json:"invoice_id"`
	ReqNo             string `json:"req_no"`
	OrderID           string `json:"order_id"`
	ValidationStatus  string `json:"validation_status"`
	ValidationTitle   string `json:"validation_title,omitempty"`
	ValidationMessage string `json:"validation_message"`
}

// OrderValidation — результат предварительной проверки
type OrderValidation struct {
	Status  string `json:"status"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message"`
}

// Invoice — запрос счёта
type Invoice struct {
	ID          string `json:"id"`
	ReqNo       string `json:"req_no"`
	ReqAt       int64  `json:"req_at"`
	CusName     string `json:"cus_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	TaxNo       string `json:"tax_no,omitempty"`
	TaxAddress  string `json:"tax_address,omitempty"`
	ProviderID  string `json:"provider_id"`
	Status      string `json:"status"`
	InvoiceNo   string `json:"invoice_no,omitempty"`
	InvoiceDate int64  `json:"invoice_date,omitempty"`
	ReplacedBy  string `json:"replaced_by,omitempty"`
}

// Order — событие заказа из Kafka
type Order struct {
	ID        string `json:"id" validate:"required"`
	OrderNo   string `json:"order_no" validate:"required"`
	CusName   string `json:"cus_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
	Status    string `json:"status" validate:"required,oneof=Paid Pending Failed Refunded"`
	CreatedAt int64  `json:"created_at" validate:"required"`
	UpdatedAt int64  `json:"updated_at,omitempty"`
}

func InvoiceRequestToEntity(r InvoiceRequest) entities.InvoiceRequest {
	return entities.InvoiceRequest{
		OrderNo:    r.OrderNo,
		CusName:    r.CusName,
		Email:      r.Email,
		Phone:      r.Phone,
		TaxNo:      r.TaxNo,
		TaxAddress: r.TaxAddress,
		ProviderID: r.ProviderID,
	}
}

func ResultEntityToJSON(r entities.InvoiceRequestResult) InvoiceRequestResult {
	return InvoiceRequestResult{
		InvoiceID:         r.InvoiceID,
		ReqNo:             r.ReqNo,
		OrderID:           r.OrderID,
		ValidationStatus:  string(r.Validation.Status),
		ValidationTitle:   r.Validation.Title,
		ValidationMessage: r.Validation.Message,
	}
}

func ValidationEntityToJSON(v entities.OrderValidation) OrderValidation {
	return OrderValidation{
		Status:  string(v.Status),
		Title:   v.Title,
		Message: v.Message,
	}
}

func InvoiceEntityToJSON(i entities.Invoice) Invoice {
	inv := Invoice{
		ID:         i.ID,
		ReqNo:      i.ReqNo,
		ReqAt:      i.ReqAt.Unix(),
		CusName:    i.CusName,
		Email:      i.Email,
		Phone:      i.Phone,
		TaxNo:      i.TaxNo,
		TaxAddress: i.TaxAddress,
		ProviderID: i.ProviderID,
		Status:     string(i.Status),
		InvoiceNo:  i.InvoiceNo,
		ReplacedBy: i.ReplacedBy,
	}
	if i.InvoiceDate != nil {
		inv.InvoiceDate = i.InvoiceDate.Unix()
	}
	return inv
}

func OrderJSONToEntity(o Order) entities.Order {
	updatedAt := time.Unix(o.CreatedAt, 0)
	if o.UpdatedAt > 0 {
		updatedAt = time.Unix(o.UpdatedAt, 0)
	}
	return entities.Order{
		ID:        o.ID,
		OrderNo:   o.OrderNo,
		CusName:   o.CusName,
		Email:     o.Email,
		Phone:     o.Phone,
		Status:    entities.PaymentStatus(o.Status),
		CreatedAt: time.Unix(o.CreatedAt, 0),
		UpdatedAt: updatedAt,
	}
}
