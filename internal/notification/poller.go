package notification

import (
	"context"
	"sync"
	"time"

	"RestoReservasi/internal/errs"
	"RestoReservasi/internal/restoapi/models"
	"RestoReservasi/pkg/logging"

	"github.com/pkg/errors"
)

type API interface {
	NotificationList(ctx context.Context) ([]*models.Notification, error)
	NotificationUnreadCount(ctx context.Context) (int, error)
	NotificationMarkRead(ctx context.Context, ID int) error
	NotificationMarkAllRead(ctx context.Context) error
}

type Snapshot struct {
	Notifications []*models.Notification
	Unread        int
}

// Poller refreshes notifications on a timer. A response that lands after Stop is dropped.
type Poller struct {
	api      API
	interval time.Duration

	OnUpdate  func(Snapshot)
	OnError   func(error)
	Forwarder *Forwarder

	mu      sync.Mutex
	gen     uint64
	running bool
	cancel  context.CancelFunc
	last    Snapshot
	wg      sync.WaitGroup
}

func NewPoller(api API, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Poller{api: api, interval: interval}
}

// Fetch loads the list and the unread badge. The badge is optional: when it fails, auth errors
// included, the count is derived from the list.
func (p *Poller) Fetch(ctx context.Context) (Snapshot, error) {
	logger := logging.GetLogger()

	list, err := p.api.NotificationList(ctx)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "failed NotificationList()")
	}
	s := Snapshot{Notifications: list}

	count, err := p.api.NotificationUnreadCount(ctx)
	if err != nil {
		if errs.IsAuth(err) {
			logger.Warnf("unread count not authorized: %v", err)
		} else {
			logger.Warnf("failed NotificationUnreadCount(): %v", err)
		}
		for _, n := range list {
			if !n.IsRead {
				count++
			}
		}
	}
	s.Unread = count
	return s, nil
}

func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return
	}
	p.gen++
	gen := p.gen
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.running = true

	p.wg.Add(1)
	go p.loop(ctx, gen)
}

// Stop ends polling. It does not wait for an in-flight request; its result is discarded.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		return
	}
	p.running = false
	p.gen++
	p.cancel()
}

// Wait blocks until the polling goroutine has exited.
func (p *Poller) Wait() {
	p.wg.Wait()
}

func (p *Poller) Last() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

func (p *Poller) loop(ctx context.Context, gen uint64) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx, gen)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx, gen)
		}
	}
}

func (p *Poller) poll(ctx context.Context, gen uint64) {
	logger := logging.GetLogger()

	s, err := p.Fetch(ctx)

	p.mu.Lock()
	stale := !p.running || p.gen != gen
	if !stale && err == nil {
		p.last = s
	}
	p.mu.Unlock()

	if stale {
		logger.Debug("discarding notification response after stop")
		return
	}
	if err != nil {
		if p.OnError != nil {
			p.OnError(err)
		}
		return
	}
	if p.Forwarder != nil {
		p.Forwarder.Forward(s.Notifications)
	}
	if p.OnUpdate != nil {
		p.OnUpdate(s)
	}
}

func (p *Poller) MarkRead(ctx context.Context, ID int) error {
	if err := p.api.NotificationMarkRead(ctx, ID); err != nil {
		return errors.Wrapf(err, "failed NotificationMarkRead(%d)", ID)
	}
	return nil
}

func (p *Poller) MarkAllRead(ctx context.Context) error {
	if err := p.api.NotificationMarkAllRead(ctx); err != nil {
		return errors.Wrap(err, "failed NotificationMarkAllRead()")
	}
	return nil
}
