package history

import (
	"context"
	"time"

	"RestoReservasi/internal/errs"
	"RestoReservasi/internal/restoapi/models"
	"RestoReservasi/pkg/logging"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"
)

const TanggalLayout = "2006-01-02 15:04"

type API interface {
	InvoiceGet(ctx context.Context, reservasiID int) (*models.Invoice, error)
	ReservationGet(ctx context.Context, ID int) (*models.Reservation, error)
}

// Syncer reconciles cached records with the server. Server data wins on conflict.
type Syncer struct {
	repo *Repository
	api  API
	loc  *time.Location
}

func NewSyncer(repo *Repository, api API, loc *time.Location) *Syncer {
	if loc == nil {
		loc = time.Local
	}
	return &Syncer{repo: repo, api: api, loc: loc}
}

// Refresh fetches invoice and reservation for id and merges them into the cached record.
// It fails only when neither could be fetched.
func (s *Syncer) Refresh(ctx context.Context, id int) (*Record, error) {
	logger := logging.GetLogger()
	logger.Println("Refresh:>Start")
	defer logger.Println("Refresh:>End")

	fresh := &Record{ID: id}

	inv, invErr := s.api.InvoiceGet(ctx, id)
	if invErr != nil {
		logger.Warnf("failed InvoiceGet(%d): %v", id, invErr)
	} else {
		fresh.Invoice = inv.Raw
		if c, ok := inv.Raw["customer"].(map[string]interface{}); ok {
			fresh.Customer = c
		}
	}

	res, resErr := s.api.ReservationGet(ctx, id)
	if resErr != nil {
		logger.Warnf("failed ReservationGet(%d): %v", id, resErr)
	} else {
		fresh.Reservasi = res.Raw
		if fresh.Customer == nil {
			if c, ok := res.Raw["customer"].(map[string]interface{}); ok {
				fresh.Customer = c
			} else if c, ok := res.Raw["user"].(map[string]interface{}); ok {
				fresh.Customer = c
			}
		}
	}

	if invErr != nil && resErr != nil {
		if errs.IsAuth(resErr) {
			return nil, resErr
		}
		return nil, errors.Wrapf(invErr, "failed to refresh record %d", id)
	}

	cached, found, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	merged := Merge(cached, fresh)
	if !found {
		s.fillFromReservation(merged, res)
	}
	if err := s.repo.Upsert(merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func (s *Syncer) fillFromReservation(rec *Record, res *models.Reservation) {
	if res == nil {
		return
	}
	if t, err := dateparse.ParseIn(res.WaktuKedatangan, s.loc); err == nil {
		rec.Tanggal = t.Format(TanggalLayout)
	} else {
		rec.Tanggal = res.WaktuKedatangan
	}
	rec.Total = res.TotalBill
	rec.Status = StatusUnpaid
	if ResolvePaymentStatus(rec.Invoice, rec.Reservasi) == "paid" {
		rec.Status = StatusDone
	}
}

// RefreshAll enriches every cached record. A failing record is logged and skipped.
func (s *Syncer) RefreshAll(ctx context.Context) (int, error) {
	logger := logging.GetLogger()
	logger.Println("RefreshAll:>Start")
	defer logger.Println("RefreshAll:>End")

	records, err := s.repo.List()
	if err != nil {
		return 0, err
	}
	refreshed := 0
	for _, rec := range records {
		if ctx.Err() != nil {
			return refreshed, ctx.Err()
		}
		if _, err := s.Refresh(ctx, rec.ID); err != nil {
			logger.Errorf("failed Refresh(%d): %v", rec.ID, err)
			continue
		}
		refreshed++
	}
	return refreshed, nil
}
