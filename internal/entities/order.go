package entities

import (
	"bytes"
	"encoding/gob"
	"time"
)

// PaymentStatus — статус оплаты заказа во внешней системе коммерции.
type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusFailed   PaymentStatus = "Failed"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

// Order — завершённая покупка, по которой клиент может запросить счёт.
// Номер заказа присваивается внешней системой, уникален и неизменен.
type Order struct {
	ID        string
	OrderNo   string
	CusName   string
	Email     string
	Phone     string
	Status    PaymentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CustomerData — данные, которые клиент указал при запросе счёта.
type CustomerData struct {
	Name  string
	Email string
	Phone string
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
}
