package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"RestoReservasi/internal/cart"
	"RestoReservasi/internal/checkout"
	"RestoReservasi/internal/errs"
	"RestoReservasi/internal/history"
	"RestoReservasi/internal/menu"
	"RestoReservasi/internal/restoapi/models"
	"RestoReservasi/pkg/logging"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli"
)

func (h *handler) orderCommands() []cli.Command {
	return []cli.Command{
		{
			Name:  "menu",
			Usage: "daftar menu",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "category", Usage: "kategori"},
				cli.StringFlag{Name: "search", Usage: "cari nama menu"},
				cli.IntFlag{Name: "page", Value: 1, Usage: "halaman"},
			},
			Action: h.menu,
		},
		{
			Name:  "checkout",
			Usage: "pesan menu untuk reservasi dan bayar deposit",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "reservation", Usage: "id reservasi"},
				cli.StringSliceFlag{Name: "item", Usage: "id[:jumlah[:catatan]] (boleh berulang)"},
				cli.StringFlag{Name: "method", Usage: "metode pembayaran"},
			},
			Action: h.checkout,
		},
		{
			Name:  "history",
			Usage: "riwayat pesanan",
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "refresh", Usage: "perbarui dari server"},
				cli.BoolFlag{Name: "clear", Usage: "hapus riwayat lokal"},
			},
			Action: h.history,
		},
		{
			Name:  "invoice",
			Usage: "invoice reservasi",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "id", Usage: "id reservasi"},
				cli.StringFlag{Name: "qr", Usage: "simpan QR code ke file PNG"},
				cli.BoolFlag{Name: "resend", Usage: "kirim ulang invoice ke email"},
			},
			Action: h.invoice,
		},
		{
			Name:  "rate",
			Usage: "beri rating reservasi",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "id", Usage: "id reservasi"},
				cli.IntFlag{Name: "rating", Usage: "1 sampai 5"},
				cli.StringFlag{Name: "comment", Usage: "komentar"},
				cli.BoolFlag{Name: "check", Usage: "cek apakah sudah dinilai"},
			},
			Action: h.rate,
		},
	}
}

func (h *handler) menu(c *cli.Context) error {
	page, err := h.app.Menu.List(h.ctx, menu.Query{
		Category: c.String("category"),
		Search:   c.String("search"),
		Page:     c.Int("page"),
	})
	if err != nil {
		return h.fail(err)
	}
	for _, m := range page.Data {
		price := m.Price().StringFixed(0)
		if m.HargaFinal.Valid && !m.HargaFinal.Decimal.Equal(m.Harga) {
			price = fmt.Sprintf("%s (dari %s)", price, m.Harga.StringFixed(0))
		}
		avail := ""
		if !m.Tersedia {
			avail = " [habis]"
		}
		fmt.Fprintf(h.app.Out, "%4d  %-30s %-10s %s%s\n", m.ID, m.Nama, m.Kategori, price, avail)
	}
	fmt.Fprintf(h.app.Out, "halaman %d/%d, %d menu\n", page.CurrentPage, page.LastPage, page.Total)
	return nil
}

type itemSpec struct {
	id   int
	qty  int
	note string
}

// parseItem reads id[:qty[:note]].
func parseItem(s string) (itemSpec, error) {
	parts := strings.SplitN(s, ":", 3)
	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return itemSpec{}, errs.Validation(fmt.Sprintf("Item tidak valid: %s", s))
	}
	spec := itemSpec{id: id, qty: 1}
	if len(parts) > 1 && parts[1] != "" {
		spec.qty, err = strconv.Atoi(parts[1])
		if err != nil || spec.qty < 1 {
			return itemSpec{}, errs.Validation(fmt.Sprintf("Jumlah tidak valid: %s", s))
		}
	}
	if len(parts) > 2 {
		spec.note = parts[2]
	}
	return spec, nil
}

func (h *handler) buildCart(raw []string) (*cart.Cart, error) {
	specs := make([]itemSpec, 0, len(raw))
	ids := make([]int, 0, len(raw))
	for _, s := range raw {
		spec, err := parseItem(s)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
		ids = append(ids, spec.id)
	}

	found, err := h.app.Menu.Find(h.ctx, ids)
	if err != nil {
		return nil, err
	}
	c := cart.New()
	for _, spec := range specs {
		m, ok := found[spec.id]
		if !ok {
			return nil, errs.Validation(fmt.Sprintf("Menu %d tidak ditemukan", spec.id))
		}
		for i := 0; i < spec.qty; i++ {
			c.AddItem(m)
		}
		if spec.note != "" {
			c.SetNote(spec.id, spec.note)
		}
	}
	return c, nil
}

func (h *handler) checkout(c *cli.Context) error {
	logger := logging.GetLogger()
	logger.Println("checkout:>Start")
	defer logger.Println("checkout:>End")

	if err := h.requireLogin(); err != nil {
		return err
	}

	crt, err := h.buildCart(c.StringSlice("item"))
	if err != nil {
		return h.fail(err)
	}
	sum := crt.Summary()
	for _, it := range crt.Items() {
		fmt.Fprintf(h.app.Out, "  %dx %-30s %s\n", it.Quantity, it.Nama, it.UnitPrice().Mul(decimal.NewFromInt(int64(it.Quantity))).StringFixed(0))
	}
	fmt.Fprintf(h.app.Out, "Total %s, bayar sekarang %s, biaya layanan %s, sisa tagihan %s\n",
		sum.Total.StringFixed(0), sum.PaymentAmount.StringFixed(0), sum.ServiceFee.StringFixed(0), sum.RemainingBill.StringFixed(0))

	method := c.String("method")
	if method == "" {
		method = h.app.Config.PAYMENT.DefaultMethod
	}
	req := checkout.Request{ReservasiID: c.Int("reservation"), PaymentMethod: method}
	if req.ReservasiID != 0 {
		if r, err := h.app.Reservations.Get(h.ctx, req.ReservasiID); err != nil {
			logger.Warnf("reservation snapshot unavailable: %v", err)
		} else {
			req.ReservasiData = r.Raw
		}
	}

	ln, err := h.app.ListenPayments()
	if err != nil {
		return h.fail(err)
	}
	ctx, cancel := context.WithCancel(h.ctx)
	defer cancel()
	go func() {
		if err := h.app.ServePayments(ctx, ln); err != nil {
			logger.Errorf("%+v", err)
		}
	}()

	res, err := h.app.Checkout.Checkout(ctx, crt, req)
	if err != nil {
		if res != nil && !res.Saved {
			fmt.Fprintf(h.app.Out, "Pesanan reservasi #%d sudah dikirim ke server tetapi gagal disimpan di riwayat\n", req.ReservasiID)
		}
		return h.fail(err)
	}
	if res.Response.Message != "" {
		fmt.Fprintln(h.app.Out, res.Response.Message)
	}
	fmt.Fprintf(h.app.Out, "Pembayaran: %s, status pesanan: %s\n", res.Outcome, res.Record.Status)
	return nil
}

func (h *handler) history(c *cli.Context) error {
	if c.Bool("clear") {
		if err := h.app.History.Clear(); err != nil {
			return h.fail(err)
		}
		fmt.Fprintln(h.app.Out, "Riwayat dihapus")
		return nil
	}
	if c.Bool("refresh") {
		if err := h.requireLogin(); err != nil {
			return err
		}
		n, err := h.app.Syncer.RefreshAll(h.ctx)
		if err != nil {
			return h.fail(err)
		}
		fmt.Fprintf(h.app.Out, "%d pesanan diperbarui\n", n)
	}

	list, err := h.app.History.List()
	if err != nil {
		return h.fail(err)
	}
	if len(list) == 0 {
		fmt.Fprintln(h.app.Out, "Belum ada pesanan")
	}
	for _, rec := range list {
		d := history.DisplayOf(rec)
		fmt.Fprintf(h.app.Out, "#%d  %s  %s  %s  %s\n", rec.ID, rec.Tanggal, rec.Total.StringFixed(0), d.Label, rec.PaymentMethod)
		for _, it := range rec.Items {
			fmt.Fprintf(h.app.Out, "    %dx %s\n", it.Quantity, it.Nama)
		}
	}
	return nil
}

func (h *handler) invoice(c *cli.Context) error {
	if err := h.requireLogin(); err != nil {
		return err
	}
	id := c.Int("id")
	if id == 0 {
		return cli.NewExitError(checkout.MsgNoReservation, 1)
	}

	if c.Bool("resend") {
		msg, err := h.app.Invoice.Resend(h.ctx, id)
		if err != nil {
			return h.fail(err)
		}
		fmt.Fprintln(h.app.Out, msg)
		return nil
	}

	if path := c.String("qr"); path != "" {
		img, err := h.app.Invoice.QRCode(h.ctx, id)
		if err != nil {
			return h.fail(err)
		}
		if err := os.WriteFile(path, img, 0o644); err != nil {
			return h.fail(errors.Wrapf(err, "failed to write %s", path))
		}
		fmt.Fprintf(h.app.Out, "QR code disimpan ke %s\n", path)
		return nil
	}

	inv, err := h.app.Invoice.Get(h.ctx, id)
	if err != nil {
		return h.fail(err)
	}
	status := history.ResolvedPaymentDisplay(inv.Raw, nil)
	fmt.Fprintf(h.app.Out, "%s  reservasi #%d  %s\n", inv.InvoiceNumber, inv.ReservasiID, status.Label)
	fmt.Fprintf(h.app.Out, "total %s, dibayar %s, sisa %s\n",
		inv.TotalAmount.StringFixed(0), inv.AmountPaid.StringFixed(0), inv.RemainingDue.StringFixed(0))
	return nil
}

func (h *handler) rate(c *cli.Context) error {
	if err := h.requireLogin(); err != nil {
		return err
	}
	id := c.Int("id")

	if c.Bool("check") {
		chk, err := h.app.Rating.Check(h.ctx, id)
		if err != nil {
			return h.fail(err)
		}
		if !chk.HasRated || chk.Rating == nil {
			fmt.Fprintln(h.app.Out, "Belum dinilai")
			return nil
		}
		fmt.Fprintf(h.app.Out, "Rating %d: %s\n", chk.Rating.Rating, chk.Rating.Komentar)
		return nil
	}

	r := &models.Rating{ReservasiID: id, Rating: c.Int("rating"), Komentar: c.String("comment")}
	if !c.IsSet("rating") {
		if draft, ok, err := h.app.Rating.LoadDraft(id); err == nil && ok {
			fmt.Fprintln(h.app.Out, "Mengirim ulang draf rating")
			r = draft
		}
	}
	resp, err := h.app.Rating.Submit(h.ctx, r)
	if err != nil {
		return h.fail(err)
	}
	msg := resp.Message
	if msg == "" {
		msg = "Terima kasih atas penilaian Anda"
	}
	fmt.Fprintln(h.app.Out, msg)
	return nil
}
