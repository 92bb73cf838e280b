package client // import "RestoReservasi/internal/restclient/client"

import (
	"context"
	"net/http"

	"RestoReservasi/internal/restclient/request"
)

// Sender interface
type Sender interface {
	Send(ctx context.Context, req request.Request) (resp *http.Response, err error)
}
