package models

import (
	"github.com/shopspring/decimal"
)

type Invoice struct {
	ID            int             `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	ReservasiID   int             `json:"reservasi_id"`
	PaymentStatus interface{}     `json:"payment_status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	RemainingDue  decimal.Decimal `json:"remaining_amount"`
	CreatedAt     string          `json:"created_at"`

	Raw map[string]interface{} `json:"-"`
}

func (i *Invoice) UnmarshalJSON(b []byte) error {
	type alias Invoice
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*i = Invoice(a)
	i.Raw = raw
	return nil
}

type InvoiceResponse struct {
	Data *Invoice `json:"data"`
}

type InvoiceQR struct {
	QRCode        string `json:"qr_code"`
	KodeReservasi string `json:"kode_reservasi"`
}
