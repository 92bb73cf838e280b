package rating

import (
	"context"
	"strings"
	"testing"

	"RestoReservasi/internal/errs"
	"RestoReservasi/internal/restoapi/models"
	"RestoReservasi/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	calls int
	err   error
}

func (f *fakeAPI) RatingSubmit(ctx context.Context, r *models.Rating) (*models.RatingResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &models.RatingResponse{Message: "Terima kasih", Data: r}, nil
}

func (f *fakeAPI) RatingCheck(ctx context.Context, id int) (*models.RatingCheck, error) {
	return &models.RatingCheck{HasRated: id == 1}, nil
}

func TestValidate(t *testing.T) {
	assert.Equal(t, MsgRatingRange, errs.UserMessage(Validate(&models.Rating{ReservasiID: 1, Rating: 0})))
	assert.Equal(t, MsgRatingRange, errs.UserMessage(Validate(&models.Rating{ReservasiID: 1, Rating: 6})))
	assert.Equal(t, MsgNoReservation, errs.UserMessage(Validate(&models.Rating{Rating: 3})))
	assert.Equal(t, MsgKomentarLong, errs.UserMessage(Validate(&models.Rating{ReservasiID: 1, Rating: 3, Komentar: strings.Repeat("a", 501)})))
	assert.NoError(t, Validate(&models.Rating{ReservasiID: 1, Rating: 5}))
}

func TestSubmitRemovesDraft(t *testing.T) {
	store := storage.NewMemoryStore()
	api := &fakeAPI{}
	s := NewService(api, store)

	_, err := s.Submit(context.Background(), &models.Rating{ReservasiID: 2, Rating: 4, Komentar: " enak "})
	require.NoError(t, err)
	_, ok, err := s.LoadDraft(2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	store := storage.NewMemoryStore()
	api := &fakeAPI{err: errs.Rejected(422, "Sudah memberi rating", nil)}
	s := NewService(api, store)

	_, err := s.Submit(context.Background(), &models.Rating{ReservasiID: 2, Rating: 4, Komentar: " enak "})
	assert.Equal(t, "Sudah memberi rating", errs.UserMessage(err))

	d, ok, err := s.LoadDraft(2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "enak", d.Komentar)
	assert.Equal(t, 4, d.Rating)
}

func TestSubmitInvalidNoNetwork(t *testing.T) {
	api := &fakeAPI{}
	s := NewService(api, storage.NewMemoryStore())
	_, err := s.Submit(context.Background(), &models.Rating{ReservasiID: 2, Rating: 9})
	assert.True(t, errs.IsValidation(err))
	assert.Equal(t, 0, api.calls)
}

func TestCheck(t *testing.T) {
	s := NewService(&fakeAPI{}, storage.NewMemoryStore())
	c, err := s.Check(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, c.HasRated)
}
