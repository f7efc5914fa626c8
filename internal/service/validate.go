package service

import (
	"fmt"
	"strings"

	"github.com/taxboard/invoice-request-service/internal/entities"
)

const (
	TitleRequestSuccess = "Request Success"
	TitleOrderMismatch  = "Order Information Mismatch"
	TitleOrderNotPaid   = "Order Not Paid"

	msgOrderUnavailable = "Order information could not be validated. Your request will be reviewed manually."
	msgOrderMismatch    = "Submitted customer details do not match our records for this order. Your request will be reviewed manually."
	msgOrderNotPaid     = "This order has not been paid yet. Your request will be reviewed manually."
)

// ValidateOrderMatch сверяет данные клиента с данными заказа и решает,
// пройдёт ли запрос счёта молча или будет помечен для ручной проверки.
// Создание счёта не блокируется в любом случае.
//
// Совпадение по одному полю достаточно: клиент мог легитимно не указать
// или изменить часть данных. Имя и email сравниваются без учёта регистра,
// телефон — точно, и только если клиент его указал.
func ValidateOrderMatch(order *entities.Order, customer entities.CustomerData) entities.OrderValidation {
	if order == nil {
		return entities.OrderValidation{
			Status:  entities.ValidationStatusWarning,
			Message: msgOrderUnavailable,
		}
	}

	nameMatches := strings.EqualFold(customer.Name, order.CusName)
	emailMatches := customer.Email != "" && order.Email != "" && strings.EqualFold(customer.Email, order.Email)
	phoneMatches := customer.Phone != "" && customer.Phone == order.Phone

	dataMatches := nameMatches || emailMatches || phoneMatches
	isPaid := order.Status == entities.PaymentStatusPaid

	if !(dataMatches && isPaid) {
		// При одновременном несовпадении приоритет у заголовка про данные.
		title := TitleOrderNotPaid
		message := msgOrderNotPaid
		if !dataMatches {
			title = TitleOrderMismatch
			message = msgOrderMismatch
		}
		return entities.OrderValidation{
			Status:  entities.ValidationStatusWarning,
			Title:   title,
			Message: message,
		}
	}

	return entities.OrderValidation{
		Status:  entities.ValidationStatusSuccess,
		Title:   TitleRequestSuccess,
		Message: fmt.Sprintf("Order %s verified. Your invoice request has been recorded.", order.OrderNo),
	}
}
