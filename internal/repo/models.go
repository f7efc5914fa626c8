package repo

import (
	"database/sql"
	"time"

	"github.com/taxboard/invoice-request-service/internal/entities"
)

type Order struct {
	ID        string         `db:"id"`
	OrderNo   string         `db:"order_no"`
	CusName   string         `db:"cus_name"`
	Email     string         `db:"email"`
	Phone     sql.NullString `db:"phone"`
	Status    string         `db:"status"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type Invoice struct {
	ID          string         `db:"id"`
	UserID      sql.NullString `db:"user_id"`
	ReqNo       string         `db:"req_no"`
	ReqAt       time.Time      `db:"req_at"`
	CusName     string         `db:"cus_name"`
	Email       string         `db:"email"`
	Phone       sql.NullString `db:"phone"`
	TaxNo       sql.NullString `db:"tax_no"`
	TaxAddress  sql.NullString `db:"tax_address"`
	ProviderID  string         `db:"provider_id"`
	Status      string         `db:"status"`
	InvoiceNo   sql.NullString `db:"invoice_no"`
	InvoiceDate sql.NullTime   `db:"invoice_date"`
	ReplacedBy  sql.NullString `db:"replaced_by"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func OrderToEntity(o Order) entities.Order {
	return entities.Order{
		ID:        o.ID,
		OrderNo:   o.OrderNo,
		CusName:   o.CusName,
		Email:     o.Email,
		Phone:     nullStringToString(o.Phone),
		Status:    entities.PaymentStatus(o.Status),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func InvoiceToEntity(i Invoice) entities.Invoice {
	inv := entities.Invoice{
		ID:         i.ID,
		UserID:     nullStringToString(i.UserID),
		ReqNo:      i.ReqNo,
		ReqAt:      i.ReqAt,
		CusName:    i.CusName,
		Email:      i.Email,
		Phone:      nullStringToString(i.Phone),
		TaxNo:      nullStringToString(i.TaxNo),
		TaxAddress: nullStringToString(i.TaxAddress),
		ProviderID: i.ProviderID,
		Status:     entities.InvoiceStatus(i.Status),
		InvoiceNo:  nullStringToString(i.InvoiceNo),
		ReplacedBy: nullStringToString(i.ReplacedBy),
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
	if i.InvoiceDate.Valid {
		d := i.InvoiceDate.Time
		inv.InvoiceDate = &d
	}
	return inv
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
