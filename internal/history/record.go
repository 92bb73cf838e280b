package history

import (
	"RestoReservasi/internal/restoapi/models"

	"github.com/shopspring/decimal"
)

// Local order status labels.
const (
	StatusUnpaid    = "Belum Lunas"
	StatusDone      = "Selesai"
	StatusCancelled = "Pesanan Dibatalkan"
)

// Record is one cached order, keyed by reservation id.
type Record struct {
	ID               int                    `json:"id"`
	Tanggal          string                 `json:"tanggal"`
	Items            []models.CheckoutItem  `json:"items"`
	Total            decimal.Decimal        `json:"total"`
	Status           string                 `json:"status"`
	PaymentMethod    string                 `json:"payment_method"`
	ReservasiData    map[string]interface{} `json:"reservasi_data,omitempty"`
	CheckoutResponse map[string]interface{} `json:"checkout_response,omitempty"`
	Invoice          map[string]interface{} `json:"invoice,omitempty"`
	Reservasi        map[string]interface{} `json:"reservasi,omitempty"`
	Customer         map[string]interface{} `json:"customer,omitempty"`
	UpdatedAt        string                 `json:"updated_at"`
}

func (r *Record) clone() *Record {
	c := *r
	c.Items = append([]models.CheckoutItem(nil), r.Items...)
	c.ReservasiData = copyMap(r.ReservasiData)
	c.CheckoutResponse = copyMap(r.CheckoutResponse)
	c.Invoice = copyMap(r.Invoice)
	c.Reservasi = copyMap(r.Reservasi)
	c.Customer = copyMap(r.Customer)
	return &c
}

func copyMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
