package client // import "RestoReservasi/internal/restclient/client"

import (
	"context"
	"net/http"
	"net/url"

	"RestoReservasi/internal/restclient/request"
)

// Client is upper level class which delegate all work to Sender
type Client struct {
	sender Sender
}

func NewClient(sender Sender) *Client {
	return &Client{sender: sender}
}

// Get Method loads data from Endpoint with specified parameters
func (c *Client) Get(ctx context.Context, endpoint string, parameters url.Values) (*http.Response, error) {
	return c.sender.Send(ctx, request.Request{
		Method:   http.MethodGet,
		Endpoint: endpoint,
		Values:   parameters,
	})
}

// Post Method usually creates new instances or triggers actions
func (c *Client) Post(ctx context.Context, endpoint string, parameters url.Values, body interface{}) (*http.Response, error) {
	return c.sender.Send(ctx, request.Request{
		Method:   http.MethodPost,
		Endpoint: endpoint,
		Values:   parameters,
		Body:     body,
	})
}
