package models

type CheckoutItem struct {
	ID       int     `json:"id"`
	Quantity int     `json:"quantity"`
	Note     string  `json:"note"`
	Nama     string  `json:"nama"`
	Harga    float64 `json:"harga"`
}

type CheckoutRequest struct {
	ReservasiID   int            `json:"reservasi_id"`
	PaymentMethod string         `json:"payment_method"`
	Cart          []CheckoutItem `json:"cart"`
}

type CheckoutResponse struct {
	SnapToken string `json:"snap_token"`
	Message   string `json:"message"`
	OrderID   string `json:"order_id"`

	Raw map[string]interface{} `json:"-"`
}

func (c *CheckoutResponse) UnmarshalJSON(b []byte) error {
	type alias CheckoutResponse
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*c = CheckoutResponse(a)
	c.Raw = raw
	return nil
}
