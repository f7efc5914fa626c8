package service_test

import (
	"testing"

	"github.com/taxboard/invoice-request-service/internal/entities"
	"github.com/taxboard/invoice-request-service/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestValidateOrderMatch(t *testing.T) {
	paidOrder := entities.Order{
		OrderNo: "ORD-1",
		CusName: "Jane Doe",
		Email:   "jane@x.com",
		Phone:   "0900000000",
		Status:  entities.PaymentStatusPaid,
	}

	testCases := []struct {
		name        string
		order       *entities.Order
		customer    entities.CustomerData
		wantStatus  entities.ValidationStatus
		wantTitle   string
		wantMessage string
	}{
		{
			name:       "name matches case-insensitively, order paid",
			order:      &paidOrder,
			customer:   entities.CustomerData{Name: "jane doe", Email: "other@x.com"},
			wantStatus: entities.ValidationStatusSuccess,
			wantTitle:  service.TitleRequestSuccess,
		},
		{
			name:       "email matches case-insensitively",
			order:      &paidOrder,
			customer:   entities.CustomerData{Name: "Someone Else", Email: "JANE@X.COM"},
			wantStatus: entities.ValidationStatusSuccess,
			wantTitle:  service.TitleRequestSuccess,
		},
		{
			name:       "phone matches exactly",
			order:      &paidOrder,
			customer:   entities.CustomerData{Name: "Someone Else", Email: "other@x.com", Phone: "0900000000"},
			wantStatus: entities.ValidationStatusSuccess,
			wantTitle:  service.TitleRequestSuccess,
		},
		{
			name:       "no field matches",
			order:      &paidOrder,
			customer:   entities.CustomerData{Name: "Someone Else", Email: "other@x.com", Phone: "0911111111"},
			wantStatus: entities.ValidationStatusWarning,
			wantTitle:  service.TitleOrderMismatch,
		},
		{
			name: "data matches but order not paid",
			order: &entities.Order{
				OrderNo: "ORD-1",
				CusName: "Jane Doe",
				Email:   "jane@x.com",
				Phone:   "0900000000",
				Status:  entities.PaymentStatusPending,
			},
			customer:   entities.CustomerData{Name: "jane doe", Email: "other@x.com"},
			wantStatus: entities.ValidationStatusWarning,
			wantTitle:  service.TitleOrderNotPaid,
		},
		{
			name: "data mismatch takes priority over unpaid status",
			order: &entities.Order{
				OrderNo: "ORD-1",
				CusName: "Jane Doe",
				Email:   "jane@x.com",
				Status:  entities.PaymentStatusPending,
			},
			customer:   entities.CustomerData{Name: "Someone Else", Email: "other@x.com"},
			wantStatus: entities.ValidationStatusWarning,
			wantTitle:  service.TitleOrderMismatch,
		},
		{
			name: "empty phone on both sides is not a match",
			order: &entities.Order{
				OrderNo: "ORD-2",
				CusName: "Jane Doe",
				Email:   "jane@x.com",
				Status:  entities.PaymentStatusPaid,
			},
			customer:   entities.CustomerData{Name: "Someone Else", Email: "other@x.com"},
			wantStatus: entities.ValidationStatusWarning,
			wantTitle:  service.TitleOrderMismatch,
		},
		{
			name: "empty email on order side is not a match",
			order: &entities.Order{
				OrderNo: "ORD-3",
				CusName: "Jane Doe",
				Status:  entities.PaymentStatusPaid,
			},
			customer:   entities.CustomerData{Name: "Someone Else", Email: ""},
			wantStatus: entities.ValidationStatusWarning,
			wantTitle:  service.TitleOrderMismatch,
		},
		{
			name:        "nil order always warns with fixed message",
			order:       nil,
			customer:    entities.CustomerData{Name: "jane doe", Email: "jane@x.com", Phone: "0900000000"},
			wantStatus:  entities.ValidationStatusWarning,
			wantMessage: "Order information could not be validated. Your request will be reviewed manually.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := service.ValidateOrderMatch(tc.order, tc.customer)

			assert.Equal(t, tc.wantStatus, got.Status)
			assert.Equal(t, tc.wantTitle, got.Title)
			if tc.wantMessage != "" {
				assert.Equal(t, tc.wantMessage, got.Message)
			} else {
				assert.NotEmpty(t, got.Message)
			}

			if tc.wantStatus == entities.ValidationStatusSuccess {
				assert.Contains(t, got.Message, tc.order.OrderNo)
			}
		})
	}
}

func TestValidateOrderMatch_Deterministic(t *testing.T) {
	order := entities.Order{
		OrderNo: "ORD-1",
		CusName: "Jane Doe",
		Email:   "jane@x.com",
		Status:  entities.PaymentStatusPaid,
	}
	customer := entities.CustomerData{Name: "jane doe"}

	first := service.ValidateOrderMatch(&order, customer)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, service.ValidateOrderMatch(&order, customer))
	}
}
