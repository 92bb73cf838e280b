package cli

import (
	"context"

	"RestoReservasi/internal/app"
	"RestoReservasi/internal/errs"
	"RestoReservasi/internal/version"
	"RestoReservasi/pkg/logging"

	"github.com/urfave/cli"
)

// NewApp builds the command line. ctx is cancelled on interrupt and abandons any flow in progress.
func NewApp(ctx context.Context, a *app.App) *cli.App {
	cmdApp := cli.NewApp()
	cmdApp.Name = "resto"
	cmdApp.Usage = "reservasi meja, pesan menu dan bayar dari terminal"
	cmdApp.Version = version.GetVersion().String()

	h := &handler{ctx: ctx, app: a}
	cmdApp.Commands = []cli.Command{}
	cmdApp.Commands = append(cmdApp.Commands, h.accountCommands()...)
	cmdApp.Commands = append(cmdApp.Commands, h.reservationCommands()...)
	cmdApp.Commands = append(cmdApp.Commands, h.orderCommands()...)
	cmdApp.Commands = append(cmdApp.Commands, h.notificationCommands()...)
	return cmdApp
}

type handler struct {
	ctx context.Context
	app *app.App
}

// fail logs err, forces a logout on auth errors and returns the user facing message.
func (h *handler) fail(err error) error {
	logger := logging.GetLogger()
	logger.Errorf("%+v", err)
	if h.app.Session.HandleAuthError(err) {
		return cli.NewExitError(errs.UserMessage(err)+" Jalankan: resto login", 2)
	}
	return cli.NewExitError(errs.UserMessage(err), 1)
}
