package models

import (
	"github.com/shopspring/decimal"
)

const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusPaid      = "paid"
	ReservationStatusCompleted = "completed"
	ReservationStatusCancelled = "cancelled"
)

// ReservationData is the create-reservation body.
type ReservationData struct {
	WaktuKedatangan string `json:"waktu_kedatangan"`
	JumlahTamu      int    `json:"jumlah_tamu"`
	Catatan         string `json:"catatan,omitempty"`
	IDMeja          []int  `json:"id_meja"`
}

type ReservationTable struct {
	ID        int    `json:"id"`
	NomorMeja string `json:"nomor_meja"`
	Area      string `json:"area"`
	Kapasitas int    `json:"kapasitas"`
}

type Reservation struct {
	ID              int                `json:"id"`
	KodeReservasi   string             `json:"kode_reservasi"`
	WaktuKedatangan string             `json:"waktu_kedatangan"`
	JumlahTamu      int                `json:"jumlah_tamu"`
	Meja            []ReservationTable `json:"meja"`
	Status          string             `json:"status"`
	PaymentStatus   string             `json:"payment_status"`
	TotalBill       decimal.Decimal    `json:"total_bill"`
	Catatan         string             `json:"catatan"`
	CreatedAt       string             `json:"created_at"`

	// Raw keeps every field the server sent, for merging into the history cache.
	Raw map[string]interface{} `json:"-"`
}

func (r *Reservation) UnmarshalJSON(b []byte) error {
	type alias Reservation
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*r = Reservation(a)
	r.Raw = raw
	return nil
}

type ReservationCreated struct {
	Message   string       `json:"message"`
	Reservasi *Reservation `json:"reservasi"`
}

type ReservationResponse struct {
	Message   string       `json:"message"`
	Data      *Reservation `json:"data"`
	Reservasi *Reservation `json:"reservasi"`
}

// Reservation returns whichever envelope key the server used.
func (r *ReservationResponse) Reservation() *Reservation {
	if r.Data != nil {
		return r.Data
	}
	return r.Reservasi
}

type ReservationListResponse struct {
	Data []*Reservation `json:"data"`
}
