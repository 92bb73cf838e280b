package cli

import (
	"fmt"

	"RestoReservasi/internal/errs"
	"RestoReservasi/internal/session"

	"github.com/urfave/cli"
)

func (h *handler) accountCommands() []cli.Command {
	return []cli.Command{
		{
			Name:  "login",
			Usage: "simpan token sesi dan data pengguna",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "token", Usage: "bearer token"},
				cli.IntFlag{Name: "id", Usage: "id pengguna"},
				cli.StringFlag{Name: "name", Usage: "nama"},
				cli.StringFlag{Name: "email", Usage: "email"},
			},
			Action: h.login,
		},
		{
			Name:   "logout",
			Usage:  "hapus sesi (riwayat tetap disimpan)",
			Action: h.logout,
		},
		{
			Name:      "theme",
			Usage:     "tampilkan atau ubah tema (light|dark)",
			ArgsUsage: "[light|dark]",
			Action:    h.theme,
		},
	}
}

func (h *handler) login(c *cli.Context) error {
	user := session.User{ID: c.Int("id"), Name: c.String("name"), Email: c.String("email")}
	if err := h.app.Session.Login(c.String("token"), user); err != nil {
		return h.fail(err)
	}
	if h.app.Session.Expired() {
		fmt.Fprintln(h.app.Out, "Peringatan: token sudah kedaluwarsa")
	}
	fmt.Fprintf(h.app.Out, "Login sebagai %s\n", user.Name)
	return nil
}

func (h *handler) logout(c *cli.Context) error {
	if err := h.app.Session.Logout(); err != nil {
		return h.fail(err)
	}
	fmt.Fprintln(h.app.Out, "Logout berhasil")
	return nil
}

func (h *handler) theme(c *cli.Context) error {
	if !c.Args().Present() {
		fmt.Fprintln(h.app.Out, h.app.Session.Theme())
		return nil
	}
	if err := h.app.Session.SetTheme(c.Args().First()); err != nil {
		return h.fail(err)
	}
	fmt.Fprintf(h.app.Out, "Tema: %s\n", h.app.Session.Theme())
	return nil
}

func (h *handler) requireLogin() error {
	if !h.app.Session.LoggedIn() && h.app.Config.API.Token == "" {
		return cli.NewExitError("Silakan login terlebih dahulu", 2)
	}
	if h.app.Session.LoggedIn() && h.app.Session.Expired() {
		return h.fail(errs.Auth(401, ""))
	}
	return nil
}
