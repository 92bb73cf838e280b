package history

import (
	"testing"
	"time"

	"RestoReservasi/internal/restoapi/models"
	"RestoReservasi/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertInPlace(t *testing.T) {
	repo := NewRepository(storage.NewMemoryStore(), nil)

	require.NoError(t, repo.Upsert(&Record{ID: 1, Status: StatusUnpaid, Total: decimal.NewFromInt(1000)}))
	require.NoError(t, repo.Upsert(&Record{ID: 2, Status: StatusUnpaid}))
	require.NoError(t, repo.Upsert(&Record{ID: 1, Status: StatusDone, Total: decimal.NewFromInt(2000)}))

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].ID)
	assert.Equal(t, StatusDone, list[0].Status)
	assert.True(t, list[0].Total.Equal(decimal.NewFromInt(2000)))
}

func TestUpdateStatusRefreshesTimestamp(t *testing.T) {
	repo := NewRepository(storage.NewMemoryStore(), nil)
	t0 := time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return t0 }
	require.NoError(t, repo.Upsert(&Record{ID: 5, Status: StatusUnpaid}))

	repo.now = func() time.Time { return t0.Add(time.Minute) }
	ok, err := repo.UpdateStatus(5, StatusUnpaid)
	require.NoError(t, err)
	assert.True(t, ok)

	rec, found, err := repo.Get(5)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "2026-10-16T10:01:00Z", rec.UpdatedAt)

	ok, err = repo.UpdateStatus(6, StatusDone)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPerUserKeyAndClear(t *testing.T) {
	store := storage.NewMemoryStore()
	key := storage.KeyHistory
	repo := NewRepository(store, func() string { return key })

	require.NoError(t, repo.Upsert(&Record{ID: 1}))
	key = storage.HistoryKeyFor(7)
	list, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, repo.Upsert(&Record{ID: 2, Items: []models.CheckoutItem{{ID: 1, Quantity: 1}}}))
	require.NoError(t, repo.Clear())
	list, err = repo.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	key = storage.KeyHistory
	list, err = repo.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestMergePreservesCachedFields(t *testing.T) {
	cached := &Record{
		ID:        3,
		Items:     []models.CheckoutItem{{ID: 10, Quantity: 2, Nama: "Sate"}},
		Status:    StatusUnpaid,
		Invoice:   map[string]interface{}{"invoice_number": "INV-3", "payment_status": "pending"},
		Reservasi: map[string]interface{}{"kode_reservasi": "RSV-3"},
	}
	fresh := &Record{
		ID:        3,
		Invoice:   map[string]interface{}{"payment_status": "paid"},
		Reservasi: map[string]interface{}{"status": "confirmed"},
	}

	merged := Merge(cached, fresh)
	require.Len(t, merged.Items, 1)
	assert.Equal(t, "Sate", merged.Items[0].Nama)
	assert.Equal(t, StatusUnpaid, merged.Status)
	assert.Equal(t, "INV-3", merged.Invoice["invoice_number"])
	assert.Equal(t, "paid", merged.Invoice["payment_status"])
	assert.Equal(t, "RSV-3", merged.Reservasi["kode_reservasi"])
	assert.Equal(t, "confirmed", merged.Reservasi["status"])
	assert.Nil(t, merged.Customer)

	assert.Equal(t, "pending", cached.Invoice["payment_status"])
}
