package reservation

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"RestoReservasi/internal/errs"
	"RestoReservasi/internal/restoapi/models"
	"RestoReservasi/internal/slots"
	"RestoReservasi/pkg/logging"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
)

const (
	MsgDateRequired  = "Silakan pilih tanggal reservasi"
	MsgTimeRequired  = "Silakan pilih waktu reservasi"
	MsgTableRequired = "Silakan pilih minimal satu meja"
	MsgSlotBooked    = "Slot waktu ini sudah dipesan. Silakan pilih waktu lain"
	MsgBadDateTime   = "Format tanggal atau waktu tidak valid"
	MsgLeadTime      = "Waktu reservasi minimal 15 menit dari sekarang"
	MsgGuestCount    = "Jumlah tamu minimal 1 orang"
	MsgInFlight      = "Reservasi sedang diproses"
)

const DefaultLeadTime = 15 * time.Minute

type API interface {
	ReservationCreate(ctx context.Context, data *models.ReservationData) (*models.ReservationCreated, error)
	ReservationList(ctx context.Context) ([]*models.Reservation, error)
	ReservationGet(ctx context.Context, ID int) (*models.Reservation, error)
	ReservationCancel(ctx context.Context, ID int) (*models.ReservationResponse, error)
}

// SlotLookup answers from the last fetched slot list.
type SlotLookup interface {
	Lookup(date, label string) (slots.TimeSlot, bool)
}

type Draft struct {
	Date       string
	Time       string
	GuestCount int
	TableIDs   []int
	Note       string
}

type Submitter struct {
	api      API
	slots    SlotLookup
	loc      *time.Location
	leadTime time.Duration
	now      func() time.Time

	mu       sync.Mutex
	state    State
	inFlight bool
	draft    Draft
}

func NewSubmitter(api API, lookup SlotLookup, loc *time.Location, leadTime time.Duration) *Submitter {
	if loc == nil {
		loc = time.Local
	}
	if leadTime <= 0 {
		leadTime = DefaultLeadTime
	}
	return &Submitter{
		api:      api,
		slots:    lookup,
		loc:      loc,
		leadTime: leadTime,
		now:      time.Now,
		state:    StateDraft,
	}
}

func (s *Submitter) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Submitter) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Draft returns the selections of the last submit attempt. Empty after a confirmation.
func (s *Submitter) Draft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Reset starts a new draft after a confirmation.
func (s *Submitter) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateConfirmed {
		s.transition(StateDraft)
	}
}

// caller holds mu
func (s *Submitter) transition(to State) {
	if !CanTransition(s.state, to) {
		logging.GetLogger().Errorf("invalid reservation transition %s -> %s", s.state, to)
		return
	}
	s.state = to
}

// Validate runs the client side checks in order, first failure wins.
func (s *Submitter) Validate(d Draft) error {
	if err := validation.Validate(d.Date, validation.Required.Error(MsgDateRequired)); err != nil {
		return errs.Validation(err.Error())
	}
	if err := validation.Validate(d.Time, validation.Required.Error(MsgTimeRequired)); err != nil {
		return errs.Validation(err.Error())
	}
	if err := validation.Validate(d.TableIDs, validation.Required.Error(MsgTableRequired)); err != nil {
		return errs.Validation(err.Error())
	}

	if s.slots != nil {
		if slot, ok := s.slots.Lookup(d.Date, d.Time); ok && slot.Booked {
			return errs.Validation(MsgSlotBooked)
		}
	}

	at, err := time.ParseInLocation(slots.DateLayout+" 15:04", d.Date+" "+d.Time, s.loc)
	if err != nil {
		return errs.Validation(MsgBadDateTime)
	}
	if err := validation.Validate(at, validation.Min(s.now().Add(s.leadTime)).Error(MsgLeadTime)); err != nil {
		return errs.Validation(err.Error())
	}

	if err := validation.Validate(d.GuestCount,
		validation.Required.Error(MsgGuestCount),
		validation.Min(1).Error(MsgGuestCount),
	); err != nil {
		return errs.Validation(err.Error())
	}
	return nil
}

// Payload builds the create-reservation body.
func Payload(d Draft) *models.ReservationData {
	ids := append([]int(nil), d.TableIDs...)
	sort.Ints(ids)
	return &models.ReservationData{
		WaktuKedatangan: d.Date + " " + d.Time + ":00",
		JumlahTamu:      d.GuestCount,
		Catatan:         strings.TrimSpace(d.Note),
		IDMeja:          ids,
	}
}

// Submit validates and creates the reservation. Validation failures never reach the network.
// A server or transport failure leaves the draft in place for another attempt.
func (s *Submitter) Submit(ctx context.Context, d Draft) (*models.Reservation, error) {
	logger := logging.GetLogger()
	logger.Println("Submit:>Start")
	defer logger.Println("Submit:>End")

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, errs.Validation(MsgInFlight)
	}
	if s.state == StateConfirmed {
		s.transition(StateDraft)
	}
	s.draft = d
	s.transition(StateValidating)
	if err := s.Validate(d); err != nil {
		s.transition(StateDraft)
		s.mu.Unlock()
		logger.Infof("reservation draft rejected locally: %v", err)
		return nil, err
	}
	s.transition(StateSubmitting)
	s.inFlight = true
	s.mu.Unlock()

	resp, err := s.api.ReservationCreate(ctx, Payload(d))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if err != nil {
		s.transition(StateRejected)
		s.transition(StateDraft)
		return nil, errors.Wrap(err, "failed ReservationCreate()")
	}
	s.transition(StateConfirmed)
	s.draft = Draft{}
	logger.Infof("reservation %d confirmed (%s)", resp.Reservasi.ID, resp.Reservasi.KodeReservasi)
	return resp.Reservasi, nil
}

func (s *Submitter) List(ctx context.Context) ([]*models.Reservation, error) {
	list, err := s.api.ReservationList(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed ReservationList()")
	}
	return list, nil
}

func (s *Submitter) Get(ctx context.Context, ID int) (*models.Reservation, error) {
	r, err := s.api.ReservationGet(ctx, ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed ReservationGet(%d)", ID)
	}
	return r, nil
}

// Cancel asks the server to cancel. The returned status is whatever the server reports.
func (s *Submitter) Cancel(ctx context.Context, ID int) (*models.ReservationResponse, error) {
	logger := logging.GetLogger()
	logger.Println("Cancel:>Start")
	defer logger.Println("Cancel:>End")

	resp, err := s.api.ReservationCancel(ctx, ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed ReservationCancel(%d)", ID)
	}
	return resp, nil
}
