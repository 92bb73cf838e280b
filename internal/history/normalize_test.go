package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusTable(t *testing.T) {
	assert.Equal(t, Display{"Lunas", ColorSuccess}, PaymentStatus("paid"))
	assert.Equal(t, Display{"Dibayar Sebagian", ColorWarning}, PaymentStatus("partial"))
	assert.Equal(t, Display{"Belum Dibayar", ColorPrimary}, PaymentStatus("pending"))
	assert.Equal(t, Display{"Dibatalkan", ColorDanger}, PaymentStatus("dibatalkan"))
	assert.Equal(t, Display{"Tidak Diketahui", ColorMedium}, PaymentStatus("refunded"))
	assert.Equal(t, Display{"Tidak Diketahui", ColorMedium}, PaymentStatus(""))
}

func TestInvoiceWins(t *testing.T) {
	d := ResolvedPaymentDisplay(
		map[string]interface{}{"payment_status": "paid"},
		map[string]interface{}{"payment_status": "pending"},
	)
	assert.Equal(t, "Lunas", d.Label)
}

func TestFallbackToReservation(t *testing.T) {
	d := ResolvedPaymentDisplay(
		map[string]interface{}{"payment_status": nil},
		map[string]interface{}{"payment_status": "partial"},
	)
	assert.Equal(t, "Dibayar Sebagian", d.Label)

	d = ResolvedPaymentDisplay(
		map[string]interface{}{"payment_status": ""},
		map[string]interface{}{"payment_status": "pending"},
	)
	assert.Equal(t, "Belum Dibayar", d.Label)

	d = ResolvedPaymentDisplay(map[string]interface{}{"payment_status": 1}, nil)
	assert.Equal(t, "Tidak Diketahui", d.Label)

	assert.Equal(t, "Tidak Diketahui", ResolvedPaymentDisplay(nil, nil).Label)
}

func TestReservationPaidIsLifecycle(t *testing.T) {
	assert.Equal(t, "Dikonfirmasi", ReservationStatus("paid").Label)
	assert.Equal(t, ReservationStatus("confirmed"), ReservationStatus("paid"))
	assert.Equal(t, "Tidak Diketahui", ReservationStatus("x").Label)
}

func TestDisplayOf(t *testing.T) {
	r := &Record{ID: 1, Status: StatusUnpaid}
	assert.Equal(t, Display{StatusUnpaid, ColorWarning}, DisplayOf(r))

	r.Reservasi = map[string]interface{}{"payment_status": "paid"}
	assert.Equal(t, "Lunas", DisplayOf(r).Label)
}
