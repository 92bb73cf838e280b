package history

const (
	ColorSuccess = "success"
	ColorWarning = "warning"
	ColorPrimary = "primary"
	ColorDanger  = "danger"
	ColorMedium  = "medium"
)

type Display struct {
	Label string
	Color string
}

var unknown = Display{Label: "Tidak Diketahui", Color: ColorMedium}

var paymentDisplay = map[string]Display{
	"paid":       {Label: "Lunas", Color: ColorSuccess},
	"partial":    {Label: "Dibayar Sebagian", Color: ColorWarning},
	"pending":    {Label: "Belum Dibayar", Color: ColorPrimary},
	"dibatalkan": {Label: "Dibatalkan", Color: ColorDanger},
}

// A reservation status of "paid" is a lifecycle state here: the booking is confirmed.
// Payment progress only ever comes from payment_status.
var reservationDisplay = map[string]Display{
	"pending":    {Label: "Menunggu Konfirmasi", Color: ColorWarning},
	"confirmed":  {Label: "Dikonfirmasi", Color: ColorPrimary},
	"paid":       {Label: "Dikonfirmasi", Color: ColorPrimary},
	"completed":  {Label: "Selesai", Color: ColorSuccess},
	"cancelled":  {Label: "Dibatalkan", Color: ColorDanger},
	"dibatalkan": {Label: "Dibatalkan", Color: ColorDanger},
}

var localDisplay = map[string]Display{
	StatusDone:      {Label: StatusDone, Color: ColorSuccess},
	StatusUnpaid:    {Label: StatusUnpaid, Color: ColorWarning},
	StatusCancelled: {Label: StatusCancelled, Color: ColorDanger},
}

// PaymentStatus maps a raw payment_status code to its display label and color.
func PaymentStatus(raw string) Display {
	if d, ok := paymentDisplay[raw]; ok {
		return d
	}
	return unknown
}

func ReservationStatus(raw string) Display {
	if d, ok := reservationDisplay[raw]; ok {
		return d
	}
	return unknown
}

// ResolvePaymentStatus picks the invoice payment_status when it is a non-empty string, the
// reservation one otherwise. Empty means unknown.
func ResolvePaymentStatus(invoice, reservasi map[string]interface{}) string {
	if v, ok := invoice["payment_status"].(string); ok && v != "" {
		return v
	}
	if v, ok := reservasi["payment_status"].(string); ok && v != "" {
		return v
	}
	return ""
}

func ResolvedPaymentDisplay(invoice, reservasi map[string]interface{}) Display {
	return PaymentStatus(ResolvePaymentStatus(invoice, reservasi))
}

// DisplayOf is the status shown for a history entry. Server data decides once any was merged
// in; before that the local label is shown.
func DisplayOf(r *Record) Display {
	if r.Invoice != nil || r.Reservasi != nil {
		return ResolvedPaymentDisplay(r.Invoice, r.Reservasi)
	}
	if d, ok := localDisplay[r.Status]; ok {
		return d
	}
	return unknown
}
