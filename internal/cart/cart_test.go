package cart

import (
	"testing"

	"RestoReservasi/internal/restoapi/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuItem(id int, harga int64) *models.MenuItem {
	return &models.MenuItem{ID: id, Nama: "item", Harga: decimal.NewFromInt(harga)}
}

func TestAddTwiceIncrements(t *testing.T) {
	c := New()
	m := menuItem(1, 10000)

	c.AddItem(m)
	c.AddItem(m)

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Quantity(1))
}

func TestRemoveAtOneDeletes(t *testing.T) {
	c := New()
	c.AddItem(menuItem(1, 10000))
	c.AddItem(menuItem(2, 5000))
	c.AddItem(menuItem(2, 5000))

	c.RemoveItem(1)
	assert.Equal(t, 0, c.Quantity(1))
	assert.Equal(t, 1, c.Len())

	c.RemoveItem(2)
	assert.Equal(t, 1, c.Quantity(2))
	c.RemoveItem(2)
	assert.True(t, c.Empty())

	c.RemoveItem(99)
	assert.True(t, c.Empty())
}

func TestAmounts(t *testing.T) {
	c := New()
	c.AddItem(menuItem(1, 40000))
	c.AddItem(menuItem(1, 40000))
	c.AddItem(menuItem(2, 20000))

	s := c.Summary()
	assert.True(t, s.Total.Equal(decimal.NewFromInt(100000)), s.Total.String())
	assert.True(t, s.PaymentAmount.Equal(decimal.NewFromInt(50000)), s.PaymentAmount.String())
	assert.True(t, s.ServiceFee.Equal(decimal.NewFromInt(5000)), s.ServiceFee.String())
	assert.True(t, s.RemainingBill.Equal(decimal.NewFromInt(55000)), s.RemainingBill.String())

	assert.True(t, c.PaymentAmount().Equal(s.PaymentAmount))
	assert.True(t, c.ServiceFee().Equal(s.ServiceFee))
	assert.True(t, c.RemainingBill().Equal(s.RemainingBill))
}

func TestFinalPricePreferred(t *testing.T) {
	c := New()
	m := menuItem(1, 25000)
	m.HargaFinal = decimal.NullDecimal{Decimal: decimal.NewFromInt(20000), Valid: true}
	c.AddItem(m)
	c.AddItem(m)

	assert.True(t, c.Subtotal().Equal(decimal.NewFromInt(40000)))

	require.True(t, c.SetNote(1, " pedas "))
	items := c.CheckoutItems()
	require.Len(t, items, 1)
	assert.Equal(t, models.CheckoutItem{ID: 1, Quantity: 2, Note: "pedas", Nama: "item", Harga: 20000}, items[0])
}

func TestInsertionOrder(t *testing.T) {
	c := New()
	c.AddItem(menuItem(3, 1))
	c.AddItem(menuItem(1, 1))
	c.AddItem(menuItem(2, 1))

	var ids []int
	for _, it := range c.Items() {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []int{3, 1, 2}, ids)
}
