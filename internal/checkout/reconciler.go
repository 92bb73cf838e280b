package checkout

import (
	"context"
	"sync"
	"time"

	"RestoReservasi/internal/cart"
	"RestoReservasi/internal/errs"
	"RestoReservasi/internal/history"
	"RestoReservasi/internal/payment"
	"RestoReservasi/internal/restoapi/models"
	"RestoReservasi/pkg/logging"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
)

const (
	MsgCartEmpty       = "Keranjang masih kosong"
	MsgNoReservation   = "Data reservasi tidak ditemukan"
	MsgNoPaymentMethod = "Silakan pilih metode pembayaran"
	MsgProcessing      = "Memproses pesanan..."
)

type API interface {
	Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, error)
}

type Request struct {
	ReservasiID   int
	PaymentMethod string
	// ReservasiData is the reservation snapshot stored with the history record.
	ReservasiData map[string]interface{}
}

type Result struct {
	Response *models.CheckoutResponse
	Record   *history.Record
	// Outcome is zero when the server returned no payment token.
	Outcome payment.Outcome
	// Saved reports whether the order reached the local history.
	Saved bool
}

// Reconciler runs checkout, the payment widget and the history updates, in that order.
type Reconciler struct {
	api       API
	history   *history.Repository
	widget    payment.Widget
	indicator Indicator
	now       func() time.Time
}

func NewReconciler(api API, repo *history.Repository, widget payment.Widget, indicator Indicator) *Reconciler {
	if indicator == nil {
		indicator = nopIndicator{}
	}
	return &Reconciler{api: api, history: repo, widget: widget, indicator: indicator, now: time.Now}
}

func validate(c *cart.Cart, req Request) error {
	if c.Empty() {
		return errs.Validation(MsgCartEmpty)
	}
	if err := validation.Validate(req.ReservasiID, validation.Required.Error(MsgNoReservation)); err != nil {
		return errs.Validation(err.Error())
	}
	if err := validation.Validate(req.PaymentMethod, validation.Required.Error(MsgNoPaymentMethod)); err != nil {
		return errs.Validation(err.Error())
	}
	return nil
}

// Checkout posts the cart, records the order as unpaid, then opens the payment widget and
// applies its outcome to the same record. Nothing is written when checkout itself fails. When the
// history write fails the widget is not opened and the cart is kept.
func (r *Reconciler) Checkout(ctx context.Context, c *cart.Cart, req Request) (*Result, error) {
	logger := logging.GetLogger()
	logger.Println("Checkout:>Start")
	defer logger.Println("Checkout:>End")

	if err := validate(c, req); err != nil {
		return nil, err
	}

	var dismissOnce sync.Once
	dismiss := func() { dismissOnce.Do(r.indicator.Dismiss) }
	r.indicator.Show(MsgProcessing)
	defer dismiss()

	resp, err := r.api.Checkout(ctx, &models.CheckoutRequest{
		ReservasiID:   req.ReservasiID,
		PaymentMethod: req.PaymentMethod,
		Cart:          c.CheckoutItems(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed Checkout()")
	}

	rec := &history.Record{
		ID:               req.ReservasiID,
		Tanggal:          r.now().Format(history.TanggalLayout),
		Items:            c.CheckoutItems(),
		Total:            c.Total(),
		Status:           history.StatusUnpaid,
		PaymentMethod:    req.PaymentMethod,
		ReservasiData:    req.ReservasiData,
		CheckoutResponse: resp.Raw,
	}
	result := &Result{Response: resp, Record: rec}
	if err := r.history.Upsert(rec); err != nil {
		logger.Errorf("failed history.Upsert(%d): %v", rec.ID, err)
		return result, errors.Wrapf(err, "order %d not saved to history", rec.ID)
	}
	result.Saved = true
	c.Clear()
	dismiss()

	if resp.SnapToken == "" || r.widget == nil {
		logger.Infof("checkout %d has no payment token, widget skipped", req.ReservasiID)
		return result, nil
	}

	future, err := r.widget.Open(ctx, resp.SnapToken)
	if err != nil {
		return result, errors.Wrap(err, "failed widget.Open()")
	}
	outcome, err := future.Wait(ctx)
	if err != nil {
		return result, errors.Wrap(err, "payment widget abandoned")
	}
	result.Outcome = outcome.Outcome
	if err := r.Apply(req.ReservasiID, outcome.Outcome); err != nil {
		return result, err
	}
	if updated, ok, err := r.history.Get(req.ReservasiID); err == nil && ok {
		result.Record = updated
	}
	return result, nil
}

// Apply maps a widget outcome onto the cached record. Closing the widget changes nothing.
func (r *Reconciler) Apply(reservasiID int, outcome payment.Outcome) error {
	logger := logging.GetLogger()
	logger.Infof("payment outcome for %d: %s", reservasiID, outcome)

	var status string
	switch outcome {
	case payment.OutcomeSuccess:
		status = history.StatusDone
	case payment.OutcomePending:
		status = history.StatusUnpaid
	case payment.OutcomeError:
		status = history.StatusCancelled
	default:
		return nil
	}
	found, err := r.history.UpdateStatus(reservasiID, status)
	if err != nil {
		return errors.Wrapf(err, "failed UpdateStatus(%d)", reservasiID)
	}
	if !found {
		return errors.Errorf("order %d is not in history", reservasiID)
	}
	return nil
}
