package net // import "RestoReservasi/internal/restclient/net"

import (
	"strings"

	"RestoReservasi/internal/restclient/request"
)

// URLBuilder interface
type URLBuilder interface {
	GetURL(req request.Request) string
}

// BaseURLBuilder joins the API base URL with the endpoint and appends the query string
type BaseURLBuilder struct {
	BaseURL string
}

// GetURL ...
func (b *BaseURLBuilder) GetURL(req request.Request) string {
	URL := strings.TrimRight(b.BaseURL, "/") + "/" + strings.TrimLeft(req.Endpoint, "/")
	if len(req.Values) > 0 {
		URL += "?" + req.Values.Encode()
	}
	return URL
}
