package entities

import (
	"errors"
	"fmt"
)

// Сентинелы для ветвления через errors.Is. Типизированные ошибки ниже
// сопоставляются с ними через метод Is.
var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrInvoiceCreation  = errors.New("failed to create invoice request")
	ErrNotAuthorized    = errors.New("not authorized")
	ErrOrderMismatch    = errors.New("order data mismatch")
	ErrDuplicateRequest = errors.New("duplicate invoice request for order")
)

// OrderNotFoundError — заказ с таким номером отсутствует. Терминальная
// ошибка: запрос счёта не создаётся.
type OrderNotFoundError struct {
	OrderNo string
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("order %q not found", e.OrderNo)
}

func (e *OrderNotFoundError) Is(target error) bool {
	return target == ErrOrderNotFound
}

// InvoiceCreationError оборачивает любую ошибку слоя персистентности.
// Исходная причина сохраняется и доступна через errors.Unwrap.
type InvoiceCreationError struct {
	Cause error
}

func (e *InvoiceCreationError) Error() string {
	return fmt.Sprintf("failed to create invoice request: %v", e.Cause)
}

func (e *InvoiceCreationError) Is(target error) bool {
	return target == ErrInvoiceCreation
}

func (e *InvoiceCreationError) Unwrap() error {
	return e.Cause
}

// AuthorizationError зарезервирована для проверок владения счётом.
// Базовый поток запроса счёта её не возбуждает.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("not authorized: %s", e.Reason)
}

func (e *AuthorizationError) Is(target error) bool {
	return target == ErrNotAuthorized
}

// OrderMismatchError зарезервирована для строгих вызывающих, которым
// несовпадение данных нужно считать фатальным. Базовый поток вместо
// этого возвращает warning.
type OrderMismatchError struct {
	OrderNo string
}

func (e *OrderMismatchError) Error() string {
	return fmt.Sprintf("customer data does not match order %q", e.OrderNo)
}

func (e *OrderMismatchError) Is(target error) bool {
	return target == ErrOrderMismatch
}
