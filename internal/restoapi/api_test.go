package restoapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"RestoReservasi/internal/errs"
	"RestoReservasi/internal/restoapi/models"
	"RestoReservasi/internal/restoapi/options"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T, h http.HandlerFunc) RESTOAPI {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewAPI(srv.URL+"/api", time.Second, 0, func() string { return "tok" })
}

func TestTableList(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/customer/tables", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"success":true,"data":{"Indoor":[{"id":"T1","database_id":1,"area":"Indoor","seats":4,"status":"tersedia","full":false}]}}`)
	})

	tables, err := api.TableList(context.Background())
	require.NoError(t, err)
	require.Len(t, tables["Indoor"], 1)
	assert.Equal(t, 1, tables["Indoor"][0].DatabaseID)
	assert.Equal(t, 4, tables["Indoor"][0].Seats)
}

func TestTableListUnsuccessfulEnvelope(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":false,"message":"maintenance"}`)
	})

	_, err := api.TableList(context.Background())
	assert.True(t, errs.IsNetwork(err))
}

func TestReservationCreateRejected(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"message":"Meja sudah dipesan","errors":{"id_meja":["Meja sudah dipesan"]}}`)
	})

	_, err := api.ReservationCreate(context.Background(), &models.ReservationData{
		WaktuKedatangan: "2026-10-20 12:00:00",
		JumlahTamu:      2,
		IDMeja:          []int{1},
	})
	require.Error(t, err)
	assert.True(t, errs.IsRejected(err))
	assert.Equal(t, "Meja sudah dipesan", errs.UserMessage(err))
}

func TestReservationCreate(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"waktu_kedatangan":"2026-10-20 12:00:00","jumlah_tamu":2,"id_meja":[1,3]}`, string(body))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"message":"ok","reservasi":{"id":7,"kode_reservasi":"RSV-7","status":"pending","payment_status":"pending","total_bill":"0.00","extra":"x"}}`)
	})

	resp, err := api.ReservationCreate(context.Background(), &models.ReservationData{
		WaktuKedatangan: "2026-10-20 12:00:00",
		JumlahTamu:      2,
		IDMeja:          []int{1, 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 7, resp.Reservasi.ID)
	assert.Equal(t, "RSV-7", resp.Reservasi.KodeReservasi)
	assert.Equal(t, "x", resp.Reservasi.Raw["extra"])
}

func TestUnauthorized(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"Unauthenticated."}`)
	})

	_, err := api.NotificationUnreadCount(context.Background())
	assert.True(t, errs.IsAuth(err))
}

func TestMenuListQuery(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "makanan", r.URL.Query().Get("category"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Empty(t, r.URL.Query().Get("search"))
		_, _ = io.WriteString(w, `{"data":[{"id":1,"nama":"Nasi Goreng","harga":"25000","harga_final":"20000"},{"id":2,"nama":"Es Teh","harga":5000}],"current_page":2,"last_page":2}`)
	})

	page, err := api.MenuList(context.Background(), options.Category("makanan"), options.Page(2))
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "20000", page.Data[0].Price().String())
	assert.Equal(t, "5000", page.Data[1].Price().String())
	assert.Equal(t, 2, page.LastPage)
}

func TestNetworkError(t *testing.T) {
	api := NewAPI("http://127.0.0.1:1", 200*time.Millisecond, 0, nil)

	_, err := api.BookedTimes(context.Background(), "2026-10-20")
	assert.True(t, errs.IsNetwork(err))
}

func TestCallRejectsUnusedMethods(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	}).(*restoapi)

	for _, method := range []string{http.MethodPut, http.MethodDelete} {
		err := api.call(context.Background(), method, "customer/reservations/1", nil, nil, nil)
		assert.Error(t, err, method)
	}
}
