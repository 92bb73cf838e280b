package notification

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"RestoReservasi/internal/errs"
	"RestoReservasi/internal/restoapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	list     []*models.Notification
	countErr error
	listErr  error
	gate     chan struct{}
	entered  chan struct{}
	read     []int
	readAll  bool
}

func (f *fakeAPI) NotificationList(ctx context.Context) ([]*models.Notification, error) {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
	return f.list, f.listErr
}

func (f *fakeAPI) NotificationUnreadCount(ctx context.Context) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return 7, nil
}

func (f *fakeAPI) NotificationMarkRead(ctx context.Context, ID int) error {
	f.read = append(f.read, ID)
	return nil
}

func (f *fakeAPI) NotificationMarkAllRead(ctx context.Context) error {
	f.readAll = true
	return nil
}

type fakeSender struct {
	sent []string
}

func (s *fakeSender) SendMessage(text string) error {
	s.sent = append(s.sent, text)
	return nil
}

func notifications() []*models.Notification {
	return []*models.Notification{
		{ID: 1, Title: "Reservasi dikonfirmasi", Message: "RSV-1", IsRead: false},
		{ID: 2, Title: "Pembayaran diterima", Message: "RSV-1", IsRead: true},
		{ID: 3, Title: "Pengingat", Message: "Besok 12:00", IsRead: false},
	}
}

func TestFetchUnreadCountIsOptional(t *testing.T) {
	p := NewPoller(&fakeAPI{list: notifications(), countErr: errs.Auth(401, "")}, time.Hour)
	s, err := p.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, s.Unread)

	p = NewPoller(&fakeAPI{list: notifications()}, time.Hour)
	s, err = p.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, s.Unread)
}

func TestPollerUpdatesAndForwards(t *testing.T) {
	sender := &fakeSender{}
	p := NewPoller(&fakeAPI{list: notifications()}, time.Hour)
	p.Forwarder = NewForwarder(sender)
	got := make(chan Snapshot, 1)
	p.OnUpdate = func(s Snapshot) { got <- s }

	p.Start(context.Background())
	select {
	case s := <-got:
		assert.Len(t, s.Notifications, 3)
	case <-time.After(time.Second):
		t.Fatal("no update")
	}
	p.Stop()
	p.Wait()

	assert.Equal(t, []string{"Reservasi dikonfirmasi\nRSV-1", "Pengingat\nBesok 12:00"}, sender.sent)
	assert.Len(t, p.Last().Notifications, 3)
}

func TestResponseAfterStopDiscarded(t *testing.T) {
	api := &fakeAPI{list: notifications(), gate: make(chan struct{}), entered: make(chan struct{}, 1)}
	p := NewPoller(api, time.Hour)
	var updates, failures int32
	p.OnUpdate = func(Snapshot) { atomic.AddInt32(&updates, 1) }
	p.OnError = func(error) { atomic.AddInt32(&failures, 1) }

	p.Start(context.Background())
	<-api.entered
	p.Stop()
	close(api.gate)
	p.Wait()

	assert.Equal(t, int32(0), atomic.LoadInt32(&updates))
	assert.Equal(t, int32(0), atomic.LoadInt32(&failures))
	assert.Empty(t, p.Last().Notifications)
}

func TestPollerError(t *testing.T) {
	p := NewPoller(&fakeAPI{listErr: errors.New("offline")}, time.Hour)
	got := make(chan error, 1)
	p.OnError = func(err error) { got <- err }

	p.Start(context.Background())
	select {
	case err := <-got:
		assert.Error(t, err)
	case <-time.After(time.Second):
		t.Fatal("no error reported")
	}
	p.Stop()
	p.Wait()
}

func TestForwarderDedupes(t *testing.T) {
	sender := &fakeSender{}
	f := NewForwarder(sender)
	assert.Equal(t, 2, f.Forward(notifications()))
	assert.Equal(t, 0, f.Forward(notifications()))
	assert.Len(t, sender.sent, 2)
}

func TestMarkRead(t *testing.T) {
	api := &fakeAPI{}
	p := NewPoller(api, time.Hour)
	require.NoError(t, p.MarkRead(context.Background(), 4))
	require.NoError(t, p.MarkAllRead(context.Background()))
	assert.Equal(t, []int{4}, api.read)
	assert.True(t, api.readAll)
}
