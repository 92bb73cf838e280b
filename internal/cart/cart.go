package cart

import (
	"strings"
	"sync"

	"RestoReservasi/internal/restoapi/models"

	"github.com/shopspring/decimal"
)

// Deposit policy. Changing either rate is a single edit here.
var (
	DepositRate    = decimal.RequireFromString("0.5")
	ServiceFeeRate = decimal.RequireFromString("0.10")
)

type Item struct {
	ID       int
	Nama     string
	Harga    decimal.Decimal
	Final    decimal.NullDecimal
	Quantity int
	Note     string
}

// UnitPrice prefers the server computed final price.
func (i *Item) UnitPrice() decimal.Decimal {
	if i.Final.Valid {
		return i.Final.Decimal
	}
	return i.Harga
}

// Cart keeps items by id in insertion order.
type Cart struct {
	mu    sync.Mutex
	order []int
	items map[int]*Item
}

func New() *Cart {
	return &Cart{items: map[int]*Item{}}
}

// AddItem creates the entry at quantity 1 or increments it.
func (c *Cart) AddItem(m *models.MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if it, ok := c.items[m.ID]; ok {
		it.Quantity++
		return
	}
	c.items[m.ID] = &Item{
		ID:       m.ID,
		Nama:     m.Nama,
		Harga:    m.Harga,
		Final:    m.HargaFinal,
		Quantity: 1,
	}
	c.order = append(c.order, m.ID)
}

// RemoveItem decrements and drops the entry when it reaches zero.
func (c *Cart) RemoveItem(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[id]
	if !ok {
		return
	}
	it.Quantity--
	if it.Quantity > 0 {
		return
	}
	delete(c.items, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Cart) SetNote(id int, note string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[id]
	if !ok {
		return false
	}
	it.Note = strings.TrimSpace(note)
	return true
}

func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Item, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.items[id])
	}
	return out
}

func (c *Cart) Quantity(id int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if it, ok := c.items[id]; ok {
		return it.Quantity
	}
	return 0
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

func (c *Cart) Empty() bool {
	return c.Len() == 0
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order = nil
	c.items = map[int]*Item{}
}

func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.Items() {
		sum = sum.Add(it.UnitPrice().Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

func (c *Cart) Total() decimal.Decimal {
	return c.Subtotal()
}

func (c *Cart) PaymentAmount() decimal.Decimal {
	return c.Total().Mul(DepositRate)
}

func (c *Cart) ServiceFee() decimal.Decimal {
	return c.PaymentAmount().Mul(ServiceFeeRate)
}

func (c *Cart) RemainingBill() decimal.Decimal {
	return c.Total().Sub(c.PaymentAmount()).Add(c.ServiceFee())
}

// Summary is a snapshot of the derived amounts.
type Summary struct {
	Subtotal      decimal.Decimal
	Total         decimal.Decimal
	PaymentAmount decimal.Decimal
	ServiceFee    decimal.Decimal
	RemainingBill decimal.Decimal
}

func (c *Cart) Summary() Summary {
	total := c.Total()
	payment := total.Mul(DepositRate)
	fee := payment.Mul(ServiceFeeRate)
	return Summary{
		Subtotal:      total,
		Total:         total,
		PaymentAmount: payment,
		ServiceFee:    fee,
		RemainingBill: total.Sub(payment).Add(fee),
	}
}

func (c *Cart) CheckoutItems() []models.CheckoutItem {
	items := c.Items()
	out := make([]models.CheckoutItem, 0, len(items))
	for _, it := range items {
		out = append(out, models.CheckoutItem{
			ID:       it.ID,
			Quantity: it.Quantity,
			Note:     it.Note,
			Nama:     it.Nama,
			Harga:    it.UnitPrice().InexactFloat64(),
		})
	}
	return out
}
