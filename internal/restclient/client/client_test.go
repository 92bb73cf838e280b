package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"testing"

	"RestoReservasi/internal/restclient/request"

	"github.com/stretchr/testify/assert"
)

func TestRequest(t *testing.T) {
	parameters := url.Values{}
	parameters.Set("date", "2026-10-20")

	methods := []string{"GET", "POST"}

	Assert := assert.New(t)

	for _, method := range methods {
		t.Logf("Test method: %s", method)
		req := request.Request{
			Method:   method,
			Endpoint: "customer/reservations",
			Values:   parameters,
		}

		sender := NewSenderMock(getResponseMock(method), nil)
		client := NewClient(sender)

		r, err := executeRequest(client, &req)
		Assert.NoError(err)
		Assert.Equal(method, sender.Last().Method)
		Assert.Equal("customer/reservations", sender.Last().Endpoint)

		body, _ := io.ReadAll(r.Body)
		Assert.Equal(getResponseBody(method), string(body))

		err = r.Body.Close()
		if err != nil {
			t.Errorf("Failed to close body of response")
		}
	}
}

func TestRequestError(t *testing.T) {
	sender := NewSenderMock(nil, errors.New("connection refused"))
	client := NewClient(sender)

	_, err := client.Get(context.Background(), "customer/tables", nil)
	assert.EqualError(t, err, "connection refused")
}

func executeRequest(c *Client, r *request.Request) (*http.Response, error) {
	ctx := context.Background()
	switch r.Method {
	case "GET":
		return c.Get(ctx, r.Endpoint, r.Values)
	case "POST":
		return c.Post(ctx, r.Endpoint, r.Values, r.Body)
	default:
		return nil, errors.New("incorrect request method")
	}
}

func getResponseMock(method string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString(getResponseBody(method))),
	}
}

func getResponseBody(method string) string {
	return "Hello " + method + "!"
}

func TestPostCarriesBody(t *testing.T) {
	sender := NewSenderMock(getResponseMock("POST"), nil)
	client := NewClient(sender)
	body := map[string]int{"reservasi_id": 7}

	_, err := client.Post(context.Background(), "customer/checkout", nil, body)
	assert.NoError(t, err)
	assert.Equal(t, http.MethodPost, sender.Last().Method)
	assert.Equal(t, body, sender.Last().Body)
}
