package entities

import "time"

// InvoiceStatus — жизненный цикл запроса счёта. Сервис создаёт запись
// в статусе Requested, дальнейшие переходы выполняет бэк-офис.
type InvoiceStatus string

const (
	InvoiceStatusRequested InvoiceStatus = "Requested"
	InvoiceStatusAccepted  InvoiceStatus = "Accepted"
	InvoiceStatusIssuing   InvoiceStatus = "Issuing"
	InvoiceStatusIssued    InvoiceStatus = "Issued"
	InvoiceStatusReplaced  InvoiceStatus = "Replaced"
	InvoiceStatusCancelled InvoiceStatus = "Cancelled"
)

// Invoice — запрос счёта по заказу. UserID пустой для гостевых запросов.
// Поля InvoiceNo, InvoiceDate и ReplacedBy заполняются только после выпуска.
type Invoice struct {
	ID         string
	UserID     string
	ReqNo      string
	ReqAt      time.Time
	CusName    string
	Email      string
	Phone      string
	TaxNo      string
	TaxAddress string
	ProviderID string
	Status     InvoiceStatus

	InvoiceNo   string
	InvoiceDate *time.Time
	ReplacedBy  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// InvoiceRequest — входные данные запроса счёта.
type InvoiceRequest struct {
	OrderNo    string
	CusName    string
	Email      string
	Phone      string
	TaxNo      string
	TaxAddress string
	ProviderID string
}

// InvoiceRequestResult возвращается вызывающему после создания запроса.
// Нигде не хранится, это проекция Invoice + результата валидации.
type InvoiceRequestResult struct {
	InvoiceID  string
	ReqNo      string
	OrderID    string
	Validation OrderValidation
}

// InvoiceRequestedEvent публикуется в Kafka после успешного создания запроса.
type InvoiceRequestedEvent struct {
	ReqNo            string    `json:"req_no"`
	OrderNo          string    `json:"order_no"`
	OrderID          string    `json:"order_id"`
	InvoiceID        string    `json:"invoice_id"`
	ValidationStatus string    `json:"validation_status"`
	RequestedAt      time.Time `json:"requested_at"`
}
