package restoapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"RestoReservasi/internal/errs"
	"RestoReservasi/internal/restclient/auth"
	"RestoReservasi/internal/restclient/client"
	"RestoReservasi/internal/restclient/net"
	"RestoReservasi/internal/restoapi/models"
	"RestoReservasi/internal/restoapi/options"
	"RestoReservasi/internal/version"
	"RestoReservasi/pkg/logging"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type RESTOAPI interface {
	TableList(ctx context.Context) (map[string][]*models.Table, error)
	BookedTimes(ctx context.Context, date string) ([]string, error)

	ReservationCreate(ctx context.Context, data *models.ReservationData) (*models.ReservationCreated, error)
	ReservationList(ctx context.Context) ([]*models.Reservation, error)
	ReservationGet(ctx context.Context, ID int) (*models.Reservation, error)
	ReservationCancel(ctx context.Context, ID int) (*models.ReservationResponse, error)

	MenuList(ctx context.Context, opts ...options.Option) (*models.MenuPage, error)

	Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, error)

	InvoiceGet(ctx context.Context, reservasiID int) (*models.Invoice, error)
	InvoiceQRCode(ctx context.Context, reservasiID int) (*models.InvoiceQR, error)
	InvoiceResend(ctx context.Context, reservasiID int) (*models.Message, error)

	NotificationList(ctx context.Context) ([]*models.Notification, error)
	NotificationUnreadCount(ctx context.Context) (int, error)
	NotificationMarkRead(ctx context.Context, ID int) error
	NotificationMarkAllRead(ctx context.Context) error

	RatingSubmit(ctx context.Context, r *models.Rating) (*models.RatingResponse, error)
	RatingCheck(ctx context.Context, reservasiID int) (*models.RatingCheck, error)
}

var apiGlobal *restoapi

type restoapi struct {
	url string
	api *client.Client
}

// call sends one request and decodes a 2xx body into out. Transport failures come back as
// errs network errors, non-2xx answers are classified by status.
func (a *restoapi) call(ctx context.Context, method, endpoint string, params url.Values, body, out interface{}) error {
	logger := logging.GetLogger()
	logger.Debugf("%s %s", method, endpoint)

	var r *http.Response
	var err error
	switch method {
	case http.MethodGet:
		r, err = a.api.Get(ctx, endpoint, params)
	case http.MethodPost:
		r, err = a.api.Post(ctx, endpoint, params, body)
	default:
		return errors.Errorf("unsupported method %s", method)
	}
	if err != nil {
		return errs.Network(errors.Wrapf(err, "failed request, endpoint:%s", endpoint))
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logger.Errorf("failed Body.Close()")
		}
	}(r.Body)

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return errs.Network(errors.Wrapf(err, "failed io.ReadAll(), endpoint:%s", endpoint))
	}
	logger.Debugf("Status: %d, Body: %s", r.StatusCode, string(bodyBytes))

	if r.StatusCode < 200 || r.StatusCode >= 300 {
		errorAPI := models.ErrorAPI{Status: r.StatusCode}
		if len(bodyBytes) > 0 {
			if err := json.Unmarshal(bodyBytes, &errorAPI); err != nil {
				logger.Warnf("failed json.Unmarshal() of error body, endpoint:%s: %v", endpoint, err)
			}
		}
		logger.Errorf("endpoint:%s, %v", endpoint, &errorAPI)
		return errs.FromStatus(r.StatusCode, errorAPI.Message, errorAPI.Errors)
	}

	if out == nil || len(bodyBytes) == 0 {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return errors.Wrapf(err, "failed json.Unmarshal(), endpoint:%s", endpoint)
	}
	return nil
}

func (a *restoapi) TableList(ctx context.Context) (map[string][]*models.Table, error) {
	logger := logging.GetLogger()
	logger.Println("TableList:>Start")
	defer logger.Println("TableList:>End")

	var resp models.TablesResponse
	if err := a.call(ctx, http.MethodGet, "customer/tables", nil, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "unsuccessful response from customer/tables"
		}
		return nil, errs.NetworkMessage(msg)
	}
	return resp.Data, nil
}

func (a *restoapi) BookedTimes(ctx context.Context, date string) ([]string, error) {
	logger := logging.GetLogger()
	logger.Println("BookedTimes:>Start")
	defer logger.Println("BookedTimes:>End")

	params := url.Values{}
	params.Set("date", date)

	var resp models.BookedTimesResponse
	if err := a.call(ctx, http.MethodGet, "customer/reservations/booked-times", params, nil, &resp); err != nil {
		return nil, err
	}
	return resp.BookedTimes, nil
}

func (a *restoapi) ReservationCreate(ctx context.Context, data *models.ReservationData) (*models.ReservationCreated, error) {
	logger := logging.GetLogger()
	logger.Println("ReservationCreate:>Start")
	defer logger.Println("ReservationCreate:>End")

	var resp models.ReservationCreated
	if err := a.call(ctx, http.MethodPost, "customer/reservations", nil, data, &resp); err != nil {
		return nil, err
	}
	if resp.Reservasi == nil {
		return nil, errors.New("response has no reservasi")
	}
	return &resp, nil
}

func (a *restoapi) ReservationList(ctx context.Context) ([]*models.Reservation, error) {
	logger := logging.GetLogger()
	logger.Println("ReservationList:>Start")
	defer logger.Println("ReservationList:>End")

	var resp models.ReservationListResponse
	if err := a.call(ctx, http.MethodGet, "customer/reservations", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (a *restoapi) ReservationGet(ctx context.Context, ID int) (*models.Reservation, error) {
	logger := logging.GetLogger()
	logger.Println("ReservationGet:>Start")
	defer logger.Println("ReservationGet:>End")

	endpoint := fmt.Sprintf("customer/reservations/%d", ID)
	var resp models.ReservationResponse
	if err := a.call(ctx, http.MethodGet, endpoint, nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Reservation() == nil {
		return nil, errors.Errorf("reservation %d not found in response", ID)
	}
	return resp.Reservation(), nil
}

func (a *restoapi) ReservationCancel(ctx context.Context, ID int) (*models.ReservationResponse, error) {
	logger := logging.GetLogger()
	logger.Println("ReservationCancel:>Start")
	defer logger.Println("ReservationCancel:>End")

	endpoint := fmt.Sprintf("customer/reservations/%d/cancel", ID)
	var resp models.ReservationResponse
	if err := a.call(ctx, http.MethodPost, endpoint, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *restoapi) MenuList(ctx context.Context, opts ...options.Option) (*models.MenuPage, error) {
	logger := logging.GetLogger()
	logger.Println("MenuList:>Start")
	defer logger.Println("MenuList:>End")

	params, err := options.Values(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed options.Values()")
	}

	var page models.MenuPage
	if err := a.call(ctx, http.MethodGet, "customer/menus", params, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (a *restoapi) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	logger := logging.GetLogger()
	logger.Println("Checkout:>Start")
	defer logger.Println("Checkout:>End")

	var resp models.CheckoutResponse
	if err := a.call(ctx, http.MethodPost, "customer/checkout", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *restoapi) InvoiceGet(ctx context.Context, reservasiID int) (*models.Invoice, error) {
	logger := logging.GetLogger()
	logger.Println("InvoiceGet:>Start")
	defer logger.Println("InvoiceGet:>End")

	endpoint := fmt.Sprintf("customer/invoices/%d", reservasiID)
	var resp models.InvoiceResponse
	if err := a.call(ctx, http.MethodGet, endpoint, nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, errors.Errorf("invoice for reservation %d not found in response", reservasiID)
	}
	return resp.Data, nil
}

func (a *restoapi) InvoiceQRCode(ctx context.Context, reservasiID int) (*models.InvoiceQR, error) {
	logger := logging.GetLogger()
	logger.Println("InvoiceQRCode:>Start")
	defer logger.Println("InvoiceQRCode:>End")

	endpoint := fmt.Sprintf("customer/invoices/%d/qr-code", reservasiID)
	var resp models.InvoiceQR
	if err := a.call(ctx, http.MethodGet, endpoint, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *restoapi) InvoiceResend(ctx context.Context, reservasiID int) (*models.Message, error) {
	logger := logging.GetLogger()
	logger.Println("InvoiceResend:>Start")
	defer logger.Println("InvoiceResend:>End")

	endpoint := fmt.Sprintf("customer/invoices/%d/resend", reservasiID)
	var resp models.Message
	if err := a.call(ctx, http.MethodPost, endpoint, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *restoapi) NotificationList(ctx context.Context) ([]*models.Notification, error) {
	var resp models.NotificationListResponse
	if err := a.call(ctx, http.MethodGet, "customer/notifications", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (a *restoapi) NotificationUnreadCount(ctx context.Context) (int, error) {
	var resp models.UnreadCountResponse
	if err := a.call(ctx, http.MethodGet, "customer/notifications/unread-count", nil, nil, &resp); err != nil {
		return 0, err
	}
	return resp.UnreadCount, nil
}

func (a *restoapi) NotificationMarkRead(ctx context.Context, ID int) error {
	endpoint := fmt.Sprintf("customer/notifications/%d/read", ID)
	return a.call(ctx, http.MethodPost, endpoint, nil, nil, nil)
}

func (a *restoapi) NotificationMarkAllRead(ctx context.Context) error {
	return a.call(ctx, http.MethodPost, "customer/notifications/read-all", nil, nil, nil)
}

func (a *restoapi) RatingSubmit(ctx context.Context, r *models.Rating) (*models.RatingResponse, error) {
	logger := logging.GetLogger()
	logger.Println("RatingSubmit:>Start")
	defer logger.Println("RatingSubmit:>End")

	var resp models.RatingResponse
	if err := a.call(ctx, http.MethodPost, "customer/ratings", nil, r, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *restoapi) RatingCheck(ctx context.Context, reservasiID int) (*models.RatingCheck, error) {
	endpoint := fmt.Sprintf("customer/ratings/check/%d", reservasiID)
	var resp models.RatingCheck
	if err := a.call(ctx, http.MethodGet, endpoint, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// NewAPI builds the API facade. token is read on every request.
func NewAPI(baseURL string, timeout time.Duration, rps int, token func() string) RESTOAPI {
	sender := net.NewSender(baseURL, timeout, rps, &auth.BearerAuthentication{
		Token:     token,
		UserAgent: version.GetVersion().UserAgent(),
	})

	apiGlobal = &restoapi{
		url: baseURL,
		api: client.NewClient(sender),
	}

	return apiGlobal
}

func GetAPI() RESTOAPI {
	if apiGlobal == nil {
		return nil
	}
	return apiGlobal
}
