package slots

import (
	"context"
	"strings"
	"sync"
	"time"

	"RestoReservasi/pkg/logging"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"
)

const DateLayout = "2006-01-02"

const WarningUnavailable = "Gagal memeriksa slot yang sudah dipesan. Ketersediaan mungkin tidak akurat."

type BookedSource interface {
	BookedTimes(ctx context.Context, date string) ([]string, error)
}

type TimeSlot struct {
	Label    string
	Disabled bool
	Booked   bool
}

type Availability struct {
	Date    string
	Slots   []TimeSlot
	Warning string
}

// Checker derives the slot list of a date. It keeps the last computed list for the submitter.
type Checker struct {
	api   BookedSource
	slots []string
	loc   *time.Location
	now   func() time.Time

	mu   sync.Mutex
	last *Availability
}

func NewChecker(api BookedSource, slots []string, loc *time.Location) *Checker {
	if loc == nil {
		loc = time.Local
	}
	return &Checker{api: api, slots: slots, loc: loc, now: time.Now}
}

// SetClock replaces the time source.
func (c *Checker) SetClock(now func() time.Time) {
	c.now = now
}

// CheckAvailability never fails on transport errors: the list falls back to clock-only disabling
// and carries a Warning. Only a malformed date is an error.
func (c *Checker) CheckAvailability(ctx context.Context, date string) (*Availability, error) {
	logger := logging.GetLogger()
	logger.Println("CheckAvailability:>Start")
	defer logger.Println("CheckAvailability:>End")

	if _, err := time.ParseInLocation(DateLayout, date, c.loc); err != nil {
		return nil, errors.Wrapf(err, "bad date %q", date)
	}

	a := &Availability{Date: date}
	booked := map[string]bool{}
	times, err := c.api.BookedTimes(ctx, date)
	if err != nil {
		logger.Warnf("failed BookedTimes(%s), falling back to clock only: %v", date, err)
		a.Warning = WarningUnavailable
	} else {
		for _, t := range times {
			booked[c.normalize(t)] = true
		}
	}

	now := c.now().In(c.loc)
	for _, label := range c.slots {
		instant, err := time.ParseInLocation(DateLayout+" 15:04", date+" "+label, c.loc)
		if err != nil {
			logger.Errorf("bad slot label %q: %v", label, err)
			continue
		}
		slot := TimeSlot{Label: label, Booked: booked[label]}
		slot.Disabled = slot.Booked || now.After(instant)
		a.Slots = append(a.Slots, slot)
	}

	c.mu.Lock()
	c.last = a
	c.mu.Unlock()

	return a, nil
}

// Lookup finds a slot in the last computed list. It does not fetch.
func (c *Checker) Lookup(date, label string) (TimeSlot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.last == nil || c.last.Date != date {
		return TimeSlot{}, false
	}
	for _, s := range c.last.Slots {
		if s.Label == label {
			return s, true
		}
	}
	return TimeSlot{}, false
}

// normalize turns "12:00", "12:00:00" or a full timestamp into "12:00".
func (c *Checker) normalize(v string) string {
	v = strings.TrimSpace(v)
	if strings.Contains(v, "-") || strings.Contains(v, "T") {
		if t, err := dateparse.ParseIn(v, c.loc); err == nil {
			return t.Format("15:04")
		}
	}
	if len(v) > 5 {
		v = v[:5]
	}
	return v
}
