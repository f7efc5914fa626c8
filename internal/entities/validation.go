package entities

// ValidationStatus — результат сверки данных клиента с заказом.
// warning не блокирует создание запроса, а только помечает его
// для ручной проверки.
type ValidationStatus string

const (
	ValidationStatusSuccess ValidationStatus = "success"
	ValidationStatusWarning ValidationStatus = "warning"
)

// OrderValidation — чистое значение, вычисляется заново на каждый запрос.
type OrderValidation struct {
	Status  ValidationStatus
	Title   string
	Message string
}
