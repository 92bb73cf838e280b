package payment

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"
	"time"

	"RestoReservasi/pkg/logging"
)

// CallbackWidget prints the hosted payment page for the token and waits for the page to redirect
// back to the local callback server. A widget that is never answered resolves as Closed.
type CallbackWidget struct {
	SnapURL     string
	CallbackURL string
	Timeout     time.Duration
	Out         io.Writer

	mu      sync.Mutex
	pending map[string]*Future
}

func NewCallbackWidget(snapURL, callbackURL string, timeout time.Duration, out io.Writer) *CallbackWidget {
	return &CallbackWidget{
		SnapURL:     snapURL,
		CallbackURL: callbackURL,
		Timeout:     timeout,
		Out:         out,
		pending:     map[string]*Future{},
	}
}

func (w *CallbackWidget) PaymentURL(token string) string {
	u := strings.TrimRight(w.SnapURL, "/") + "/" + url.PathEscape(token)
	if w.CallbackURL == "" {
		return u
	}
	q := url.Values{}
	q.Set("finish_redirect_url", strings.TrimRight(w.CallbackURL, "/")+"/payment/"+url.PathEscape(token)+"/success")
	return u + "?" + q.Encode()
}

func (w *CallbackWidget) Open(ctx context.Context, token string) (*Future, error) {
	logger := logging.GetLogger()
	logger.Println("CallbackWidget.Open:>Start")
	defer logger.Println("CallbackWidget.Open:>End")

	f := NewFuture()
	w.mu.Lock()
	w.pending[token] = f
	w.mu.Unlock()

	if w.Out != nil {
		fmt.Fprintf(w.Out, "Buka halaman pembayaran: %s\n", w.PaymentURL(token))
	}

	go func() {
		var timeout <-chan time.Time
		if w.Timeout > 0 {
			timer := time.NewTimer(w.Timeout)
			defer timer.Stop()
			timeout = timer.C
		}
		select {
		case <-f.Done():
		case <-timeout:
			logger.Infof("payment widget for %s timed out", token)
			f.Callbacks().OnClose()
		case <-ctx.Done():
			f.Callbacks().OnClose()
		}
		w.mu.Lock()
		delete(w.pending, token)
		w.mu.Unlock()
	}()

	return f, nil
}

// Deliver routes a callback for token. It reports false for unknown tokens.
func (w *CallbackWidget) Deliver(token string, outcome Outcome, payload map[string]interface{}) bool {
	w.mu.Lock()
	f, ok := w.pending[token]
	w.mu.Unlock()
	if !ok {
		return false
	}
	cb := f.Callbacks()
	switch outcome {
	case OutcomeSuccess:
		cb.OnSuccess(payload)
	case OutcomePending:
		cb.OnPending(payload)
	case OutcomeError:
		cb.OnError(payload)
	default:
		cb.OnClose()
	}
	return true
}
