package app

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"RestoReservasi/internal/config"
	"RestoReservasi/internal/telegram"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := new(config.Config)
	cfg.API.URL = "http://127.0.0.1:1/api"
	cfg.API.Timeout = 1
	cfg.RESERVATION.Timezone = "UTC"
	cfg.RESERVATION.LeadTimeMinutes = 15
	cfg.RESERVATION.Slot = append([]string(nil), config.DefaultSlots...)
	cfg.STORAGE.Driver = "memory"
	cfg.PAYMENT.WidgetTimeout = 60
	cfg.NOTIFICATION.Interval = 30
	return cfg
}

func stubBot(t *testing.T, err error) *int {
	t.Helper()
	calls := 0
	orig := newBot
	newBot = func(token string, chatID int64, debug bool) (*telegram.Bot, error) {
		calls++
		if err != nil {
			return nil, err
		}
		return &telegram.Bot{}, nil
	}
	t.Cleanup(func() { newBot = orig })
	return &calls
}

func TestNewDoesNotConnectTelegram(t *testing.T) {
	calls := stubBot(t, nil)
	cfg := testConfig()
	cfg.TELEGRAM.BotToken = "123:abc"
	cfg.TELEGRAM.ChatID = 42

	a, err := New(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 0, *calls)
	assert.Nil(t, a.Notifications.Forwarder)

	require.NoError(t, a.EnableTelegram())
	require.NoError(t, a.EnableTelegram())
	assert.Equal(t, 1, *calls)
	assert.NotNil(t, a.Notifications.Forwarder)
}

func TestEnableTelegram(t *testing.T) {
	calls := stubBot(t, errors.New("unauthorized"))
	cfg := testConfig()

	a, err := New(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	require.NoError(t, a.EnableTelegram())
	assert.Equal(t, 0, *calls)

	cfg.TELEGRAM.BotToken = "123:abc"
	assert.Error(t, a.EnableTelegram())
	assert.Nil(t, a.Notifications.Forwarder)
}

func TestListenPaymentsPortTaken(t *testing.T) {
	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := testConfig()
	cfg.PAYMENT.CallbackPort = busy.Addr().(*net.TCPAddr).Port
	a, err := New(cfg, &bytes.Buffer{})
	require.NoError(t, err)

	_, err = a.ListenPayments()
	assert.Error(t, err)
}

func TestServePayments(t *testing.T) {
	free, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	port := free.Addr().(*net.TCPAddr).Port
	require.NoError(t, free.Close())

	cfg := testConfig()
	cfg.PAYMENT.CallbackPort = port
	a, err := New(cfg, &bytes.Buffer{})
	require.NoError(t, err)

	ln, err := a.ListenPayments()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.ServePayments(ctx, ln) }()

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/", port))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
