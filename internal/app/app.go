package app

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"RestoReservasi/internal/catalog"
	"RestoReservasi/internal/checkout"
	"RestoReservasi/internal/config"
	httphandler "RestoReservasi/internal/handlers/http"
	"RestoReservasi/internal/history"
	"RestoReservasi/internal/invoice"
	"RestoReservasi/internal/menu"
	"RestoReservasi/internal/notification"
	"RestoReservasi/internal/payment"
	"RestoReservasi/internal/rating"
	"RestoReservasi/internal/reservation"
	"RestoReservasi/internal/restoapi"
	"RestoReservasi/internal/session"
	"RestoReservasi/internal/slots"
	"RestoReservasi/internal/storage"
	"RestoReservasi/internal/telegram"
	"RestoReservasi/pkg/logging"

	"github.com/pkg/errors"
)

// App wires every service of the client around one store and one API client.
type App struct {
	Config   *config.Config
	Location *time.Location
	Out      io.Writer

	Store   storage.Store
	Session *session.Session
	API     restoapi.RESTOAPI

	Catalog       *catalog.Loader
	Slots         *slots.Checker
	Reservations  *reservation.Submitter
	Menu          *menu.Service
	History       *history.Repository
	Syncer        *history.Syncer
	Invoice       *invoice.Service
	Rating        *rating.Service
	Notifications *notification.Poller
	Widget        *payment.CallbackWidget
	Checkout      *checkout.Reconciler
}

func New(cfg *config.Config, out io.Writer) (*App, error) {
	logger := logging.GetLogger()
	logger.Println("App.New:>Start")
	defer logger.Println("App.New:>End")

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed storage.Open()")
	}

	a := &App{Config: cfg, Location: loc, Out: out, Store: store}
	a.Session = session.New(store)
	a.API = restoapi.NewAPI(cfg.API.URL, cfg.Timeout(), cfg.API.RPS, a.token)

	a.Catalog = catalog.NewLoader(a.API)
	a.Slots = slots.NewChecker(a.API, cfg.RESERVATION.Slot, loc)
	a.Reservations = reservation.NewSubmitter(a.API, a.Slots, loc, cfg.LeadTime())
	a.Menu = menu.NewService(a.API)
	a.History = history.NewRepository(store, a.Session.HistoryKey)
	a.Syncer = history.NewSyncer(a.History, a.API, loc)
	a.Invoice = invoice.NewService(a.API)
	a.Rating = rating.NewService(a.API, store)
	a.Notifications = notification.NewPoller(a.API, cfg.PollInterval())

	callbackURL := fmt.Sprintf("http://localhost:%d", cfg.PAYMENT.CallbackPort)
	a.Widget = payment.NewCallbackWidget(cfg.PAYMENT.SnapURL, callbackURL, cfg.WidgetTimeout(), out)
	a.Checkout = checkout.NewReconciler(a.API, a.History, a.Widget, &checkout.WriterIndicator{Out: out})

	return a, nil
}

// token prefers the logged in session and falls back to the configured token.
func (a *App) token() string {
	if t := a.Session.Token(); t != "" {
		return t
	}
	return a.Config.API.Token
}

var newBot = telegram.NewBot

// EnableTelegram connects the configured bot and forwards new notifications to it. Without a
// bot token it does nothing.
func (a *App) EnableTelegram() error {
	logger := logging.GetLogger()
	logger.Println("EnableTelegram:>Start")
	defer logger.Println("EnableTelegram:>End")

	tg := a.Config.TELEGRAM
	if tg.BotToken == "" || a.Notifications.Forwarder != nil {
		return nil
	}
	bot, err := newBot(tg.BotToken, tg.ChatID, tg.Debug == 1)
	if err != nil {
		return errors.Wrap(err, "failed telegram.NewBot()")
	}
	a.Notifications.Forwarder = notification.NewForwarder(bot)
	return nil
}

// ListenPayments binds the payment callback port.
func (a *App) ListenPayments() (net.Listener, error) {
	addr := fmt.Sprintf(":%d", a.Config.PAYMENT.CallbackPort)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "failed net.Listen(%s)", addr)
	}
	return ln, nil
}

// ServePayments runs the payment callback server on ln until ctx is done.
func (a *App) ServePayments(ctx context.Context, ln net.Listener) error {
	logger := logging.GetLogger()

	srv := &http.Server{
		Handler:           httphandler.NewRouter(a.Widget),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("failed srv.Shutdown(): %v", err)
		}
	}()

	logger.Infof("payment callback server on %s", ln.Addr())
	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "failed srv.Serve()")
	}
	return nil
}
