package net

import (
	"io"
	"net/http"
)

// RequestEnricher sets authentication and tracing headers on an outgoing request
type RequestEnricher interface {
	EnrichRequest(r *http.Request, URL string)
}

// Client is the part of *http.Client the Sender needs
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestCreator ...
type RequestCreator interface {
	NewRequest(method, url string, body io.Reader) (*http.Request, error)
}

type requestCreator struct{}

func (requestCreator) NewRequest(method, url string, body io.Reader) (*http.Request, error) {
	return http.NewRequest(method, url, body)
}
