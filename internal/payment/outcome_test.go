package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFutureResolvesOnce(t *testing.T) {
	f := NewFuture()
	cb := f.Callbacks()

	cb.OnPending(map[string]interface{}{"order_id": "A"})
	cb.OnSuccess(nil)
	cb.OnClose()

	r, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomePending, r.Outcome)
	assert.Equal(t, "A", r.Payload["order_id"])
	assert.False(t, f.Resolve(Result{Outcome: OutcomeError}))
}

func TestFutureWaitCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFuture().Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseOutcome(t *testing.T) {
	o, ok := ParseOutcome("success")
	assert.True(t, ok)
	assert.Equal(t, OutcomeSuccess, o)
	o, _ = ParseOutcome("close")
	assert.Equal(t, OutcomeClosed, o)
	_, ok = ParseOutcome("bogus")
	assert.False(t, ok)
}

func TestCallbackWidgetDeliver(t *testing.T) {
	w := NewCallbackWidget("https://app.sandbox.midtrans.com/snap/v2/vtweb", "http://localhost:8089", time.Minute, nil)

	assert.Equal(t,
		"https://app.sandbox.midtrans.com/snap/v2/vtweb/tok?finish_redirect_url=http%3A%2F%2Flocalhost%3A8089%2Fpayment%2Ftok%2Fsuccess",
		w.PaymentURL("tok"))

	f, err := w.Open(context.Background(), "tok")
	require.NoError(t, err)
	assert.False(t, w.Deliver("other", OutcomeSuccess, nil))
	assert.True(t, w.Deliver("tok", OutcomeError, nil))

	r, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeError, r.Outcome)
}

func TestCallbackWidgetTimeoutCloses(t *testing.T) {
	w := NewCallbackWidget("https://snap", "", 10*time.Millisecond, nil)
	f, err := w.Open(context.Background(), "tok")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	r, err := f.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeClosed, r.Outcome)
}
