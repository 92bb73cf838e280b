package invoice

import (
	"bytes"
	"context"
	"encoding/base64"
	"image/png"
	"strings"

	"RestoReservasi/internal/restoapi/models"
	"RestoReservasi/pkg/logging"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const qrSize = 256

type API interface {
	InvoiceGet(ctx context.Context, reservasiID int) (*models.Invoice, error)
	InvoiceQRCode(ctx context.Context, reservasiID int) (*models.InvoiceQR, error)
	InvoiceResend(ctx context.Context, reservasiID int) (*models.Message, error)
	ReservationGet(ctx context.Context, ID int) (*models.Reservation, error)
}

type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

func (s *Service) Get(ctx context.Context, reservasiID int) (*models.Invoice, error) {
	inv, err := s.api.InvoiceGet(ctx, reservasiID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed InvoiceGet(%d)", reservasiID)
	}
	return inv, nil
}

// QRCode returns a PNG. The server image is used when it decodes, otherwise one is generated
// from the reservation code.
func (s *Service) QRCode(ctx context.Context, reservasiID int) ([]byte, error) {
	logger := logging.GetLogger()
	logger.Println("QRCode:>Start")
	defer logger.Println("QRCode:>End")

	qr, err := s.api.InvoiceQRCode(ctx, reservasiID)
	if err != nil {
		logger.Warnf("failed InvoiceQRCode(%d): %v", reservasiID, err)
	} else {
		if img, err := decodeDataURI(qr.QRCode); err == nil {
			return img, nil
		} else if qr.QRCode != "" {
			logger.Warnf("server qr code unusable: %v", err)
		}
	}

	code := ""
	if qr != nil {
		code = qr.KodeReservasi
	}
	if code == "" {
		r, err := s.api.ReservationGet(ctx, reservasiID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed ReservationGet(%d)", reservasiID)
		}
		code = r.KodeReservasi
	}
	if code == "" {
		return nil, errors.Errorf("reservation %d has no code", reservasiID)
	}
	return Generate(code)
}

// Generate encodes content as a PNG QR code.
func Generate(content string) ([]byte, error) {
	img, err := qrcode.Encode(content, qrcode.Medium, qrSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed qrcode.Encode()")
	}
	return img, nil
}

// decodeDataURI accepts "data:image/png;base64,..." or bare base64 and checks the result is a PNG.
func decodeDataURI(s string) ([]byte, error) {
	if s == "" {
		return nil, errors.New("empty qr code")
	}
	if i := strings.Index(s, ","); strings.HasPrefix(s, "data:") && i >= 0 {
		s = s[i+1:]
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "failed base64 decode")
	}
	if _, err := png.DecodeConfig(bytes.NewReader(b)); err != nil {
		return nil, errors.Wrap(err, "not a png")
	}
	return b, nil
}

func (s *Service) Resend(ctx context.Context, reservasiID int) (string, error) {
	msg, err := s.api.InvoiceResend(ctx, reservasiID)
	if err != nil {
		return "", errors.Wrapf(err, "failed InvoiceResend(%d)", reservasiID)
	}
	return msg.Message, nil
}
