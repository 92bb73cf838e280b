package rating

import (
	"context"
	"strings"

	"RestoReservasi/internal/errs"
	"RestoReservasi/internal/restoapi/models"
	"RestoReservasi/internal/storage"
	"RestoReservasi/pkg/logging"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
)

const (
	MsgNoReservation = "Data reservasi tidak ditemukan"
	MsgRatingRange   = "Rating harus antara 1 sampai 5"
	MsgKomentarLong  = "Komentar maksimal 500 karakter"
)

type API interface {
	RatingSubmit(ctx context.Context, r *models.Rating) (*models.RatingResponse, error)
	RatingCheck(ctx context.Context, reservasiID int) (*models.RatingCheck, error)
}

type Service struct {
	api   API
	store storage.Store
}

func NewService(api API, store storage.Store) *Service {
	return &Service{api: api, store: store}
}

func Validate(r *models.Rating) error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.ReservasiID, validation.Required.Error(MsgNoReservation)),
		validation.Field(&r.Rating, validation.Required.Error(MsgRatingRange), validation.Min(1).Error(MsgRatingRange), validation.Max(5).Error(MsgRatingRange)),
		validation.Field(&r.Komentar, validation.RuneLength(0, 500).Error(MsgKomentarLong)),
	)
	if err == nil {
		return nil
	}
	if es, ok := err.(validation.Errors); ok {
		for _, field := range []string{"reservasi_id", "rating", "komentar"} {
			if fe, ok := es[field]; ok {
				return errs.Validation(fe.Error())
			}
		}
	}
	return errs.Validation(err.Error())
}

// SaveDraft keeps an unsent rating under temp-rating-{id}.
func (s *Service) SaveDraft(r *models.Rating) error {
	return storage.SetJSON(s.store, storage.RatingDraftKey(r.ReservasiID), r)
}

func (s *Service) LoadDraft(reservasiID int) (*models.Rating, bool, error) {
	var r models.Rating
	ok, err := storage.GetJSON(s.store, storage.RatingDraftKey(reservasiID), &r)
	if err != nil || !ok {
		return nil, false, err
	}
	return &r, true, nil
}

// Submit sends the rating and drops the draft once the server accepted it.
func (s *Service) Submit(ctx context.Context, r *models.Rating) (*models.RatingResponse, error) {
	logger := logging.GetLogger()
	logger.Println("Submit:>Start")
	defer logger.Println("Submit:>End")

	r.Komentar = strings.TrimSpace(r.Komentar)
	if err := Validate(r); err != nil {
		return nil, err
	}
	if err := s.SaveDraft(r); err != nil {
		logger.Errorf("failed SaveDraft(): %v", err)
	}

	resp, err := s.api.RatingSubmit(ctx, r)
	if err != nil {
		return nil, errors.Wrap(err, "failed RatingSubmit()")
	}
	if err := s.store.Remove(storage.RatingDraftKey(r.ReservasiID)); err != nil {
		logger.Errorf("failed to remove rating draft: %v", err)
	}
	return resp, nil
}

func (s *Service) Check(ctx context.Context, reservasiID int) (*models.RatingCheck, error) {
	c, err := s.api.RatingCheck(ctx, reservasiID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed RatingCheck(%d)", reservasiID)
	}
	return c, nil
}
