package cli

import (
	"fmt"
	"strings"
	"time"

	"RestoReservasi/internal/history"
	"RestoReservasi/internal/reservation"
	"RestoReservasi/internal/restoapi/models"
	"RestoReservasi/internal/slots"

	"github.com/urfave/cli"
)

func (h *handler) reservationCommands() []cli.Command {
	return []cli.Command{
		{
			Name:   "tables",
			Usage:  "daftar meja per area",
			Action: h.tables,
		},
		{
			Name:  "slots",
			Usage: "slot waktu untuk satu tanggal",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "date", Usage: "YYYY-MM-DD (default hari ini)"},
			},
			Action: h.slots,
		},
		{
			Name:  "reserve",
			Usage: "buat reservasi",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "date", Usage: "YYYY-MM-DD"},
				cli.StringFlag{Name: "time", Usage: "HH:MM"},
				cli.IntSliceFlag{Name: "table", Usage: "id meja (boleh berulang)"},
				cli.IntFlag{Name: "guests", Value: 1, Usage: "jumlah tamu"},
				cli.StringFlag{Name: "note", Usage: "catatan"},
			},
			Action: h.reserve,
		},
		{
			Name:  "reservations",
			Usage: "daftar atau detail reservasi",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "id", Usage: "id reservasi untuk detail"},
			},
			Action: h.reservations,
		},
		{
			Name:  "cancel",
			Usage: "batalkan reservasi",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "id", Usage: "id reservasi"},
			},
			Action: h.cancel,
		},
	}
}

func (h *handler) tables(c *cli.Context) error {
	if _, err := h.app.Catalog.LoadTables(h.ctx); err != nil {
		return h.fail(err)
	}
	for _, area := range h.app.Catalog.Areas() {
		fmt.Fprintf(h.app.Out, "%s\n", area)
		for _, t := range h.app.Catalog.Tables(area) {
			mark := " "
			if !t.Selectable() {
				mark = "x"
			}
			fmt.Fprintf(h.app.Out, "  [%s] #%d %-6s %2d kursi  %s\n", mark, t.DatabaseID, t.ID, t.Seats, t.Status)
		}
	}
	return nil
}

func (h *handler) slots(c *cli.Context) error {
	date := c.String("date")
	if date == "" {
		date = time.Now().In(h.app.Location).Format(slots.DateLayout)
	}
	a, err := h.app.Slots.CheckAvailability(h.ctx, date)
	if err != nil {
		return h.fail(err)
	}
	printSlots(h, a)
	return nil
}

func printSlots(h *handler, a *slots.Availability) {
	if a.Warning != "" {
		fmt.Fprintf(h.app.Out, "Peringatan: %s\n", a.Warning)
	}
	for _, s := range a.Slots {
		state := "tersedia"
		switch {
		case s.Booked:
			state = "sudah dipesan"
		case s.Disabled:
			state = "lewat"
		}
		fmt.Fprintf(h.app.Out, "  %s  %s\n", s.Label, state)
	}
}

func (h *handler) reserve(c *cli.Context) error {
	if err := h.requireLogin(); err != nil {
		return err
	}

	if _, err := h.app.Catalog.LoadTables(h.ctx); err != nil {
		return h.fail(err)
	}
	requested := c.IntSlice("table")
	h.app.Catalog.Preselect(requested)
	if selected := h.app.Catalog.SelectedIDs(); len(selected) < len(requested) {
		fmt.Fprintf(h.app.Out, "Meja yang tidak tersedia diabaikan, dipilih: %v\n", selected)
	}

	date := c.String("date")
	if date != "" {
		if _, err := h.app.Slots.CheckAvailability(h.ctx, date); err != nil {
			return h.fail(err)
		}
	}

	draft := reservation.Draft{
		Date:       date,
		Time:       c.String("time"),
		GuestCount: c.Int("guests"),
		TableIDs:   h.app.Catalog.SelectedIDs(),
		Note:       c.String("note"),
	}
	if seats := h.app.Catalog.TotalSelectedSeats(); seats > 0 && draft.GuestCount > seats {
		fmt.Fprintf(h.app.Out, "Peringatan: %d tamu melebihi %d kursi\n", draft.GuestCount, seats)
	}

	r, err := h.app.Reservations.Submit(h.ctx, draft)
	if err != nil {
		return h.fail(err)
	}
	fmt.Fprintf(h.app.Out, "Reservasi #%d dibuat, kode %s (%s)\n", r.ID, r.KodeReservasi, strings.Join(h.app.Catalog.SelectedSections(), ", "))
	fmt.Fprintf(h.app.Out, "Lanjutkan: resto checkout --reservation %d --item <id_menu>\n", r.ID)
	return nil
}

func (h *handler) reservations(c *cli.Context) error {
	if err := h.requireLogin(); err != nil {
		return err
	}
	if id := c.Int("id"); id != 0 {
		r, err := h.app.Reservations.Get(h.ctx, id)
		if err != nil {
			return h.fail(err)
		}
		printReservation(h, r)
		for _, m := range r.Meja {
			fmt.Fprintf(h.app.Out, "    meja %s (%s, %d kursi)\n", m.NomorMeja, m.Area, m.Kapasitas)
		}
		if r.Catatan != "" {
			fmt.Fprintf(h.app.Out, "    catatan: %s\n", r.Catatan)
		}
		return nil
	}
	list, err := h.app.Reservations.List(h.ctx)
	if err != nil {
		return h.fail(err)
	}
	if len(list) == 0 {
		fmt.Fprintln(h.app.Out, "Belum ada reservasi")
	}
	for _, r := range list {
		printReservation(h, r)
	}
	return nil
}

func printReservation(h *handler, r *models.Reservation) {
	fmt.Fprintf(h.app.Out, "#%d %s  %s  %d tamu  %s / %s  %s\n",
		r.ID, r.KodeReservasi, r.WaktuKedatangan, r.JumlahTamu,
		history.ReservationStatus(r.Status).Label,
		history.PaymentStatus(r.PaymentStatus).Label,
		r.TotalBill.StringFixed(0))
}

func (h *handler) cancel(c *cli.Context) error {
	if err := h.requireLogin(); err != nil {
		return err
	}
	resp, err := h.app.Reservations.Cancel(h.ctx, c.Int("id"))
	if err != nil {
		return h.fail(err)
	}
	msg := resp.Message
	if msg == "" {
		msg = "Reservasi dibatalkan"
	}
	fmt.Fprintln(h.app.Out, msg)
	if r := resp.Reservation(); r != nil {
		fmt.Fprintf(h.app.Out, "Status: %s\n", history.ReservationStatus(r.Status).Label)
	}
	return nil
}
