package cli

import (
	"context"
	"fmt"

	"RestoReservasi/internal/notification"
	"RestoReservasi/internal/telegram"
	"RestoReservasi/pkg/logging"

	"github.com/urfave/cli"
)

func (h *handler) notificationCommands() []cli.Command {
	return []cli.Command{
		{
			Name:    "notifications",
			Aliases: []string{"notif"},
			Usage:   "notifikasi akun",
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "watch", Usage: "pantau sampai dihentikan"},
				cli.IntFlag{Name: "read", Usage: "tandai satu notifikasi dibaca"},
				cli.BoolFlag{Name: "read-all", Usage: "tandai semua dibaca"},
			},
			Action: h.notifications,
		},
	}
}

func (h *handler) notifications(c *cli.Context) error {
	if err := h.requireLogin(); err != nil {
		return err
	}
	p := h.app.Notifications

	if id := c.Int("read"); id != 0 {
		if err := p.MarkRead(h.ctx, id); err != nil {
			return h.fail(err)
		}
	}
	if c.Bool("read-all") {
		if err := p.MarkAllRead(h.ctx); err != nil {
			return h.fail(err)
		}
	}

	if !c.Bool("watch") {
		snap, err := p.Fetch(h.ctx)
		if err != nil {
			return h.fail(err)
		}
		h.printNotifications(snap)
		return nil
	}

	if err := h.app.EnableTelegram(); err != nil {
		logging.GetLogger().Errorf("telegram forwarding disabled: %v", err)
	}

	ctx, cancel := context.WithCancel(h.ctx)
	defer cancel()
	p.OnUpdate = h.printNotifications
	p.OnError = func(err error) {
		if h.app.Session.HandleAuthError(err) {
			fmt.Fprintln(h.app.Out, "Sesi berakhir, silakan login kembali")
			cancel()
			return
		}
		telegram.SendMessageToTelegramWithLogError(fmt.Sprintf("notification poll failed: %v", err))
	}
	p.Start(ctx)
	<-ctx.Done()
	p.Stop()
	p.Wait()
	return nil
}

func (h *handler) printNotifications(s notification.Snapshot) {
	fmt.Fprintf(h.app.Out, "%d belum dibaca\n", s.Unread)
	for _, n := range s.Notifications {
		mark := "*"
		if n.IsRead {
			mark = " "
		}
		fmt.Fprintf(h.app.Out, "%s %4d  %s  %s\n", mark, n.ID, n.CreatedAt, n.Title)
		if n.Message != "" {
			fmt.Fprintf(h.app.Out, "         %s\n", n.Message)
		}
	}
}
