package client

import (
	"context"
	"net/http"

	"RestoReservasi/internal/restclient/request"
)

// SenderMock imitates sending requests and receiving responses
type SenderMock struct {
	response http.Response
	err      error
	last     request.Request
}

func NewSenderMock(response *http.Response, err error) *SenderMock {
	m := &SenderMock{err: err}
	if response != nil {
		m.response = *response
	}
	return m
}

// Send ...
func (r *SenderMock) Send(ctx context.Context, req request.Request) (resp *http.Response, err error) {
	r.last = req
	if r.err != nil {
		return nil, r.err
	}
	return &r.response, nil
}

// Last returns the most recent request passed to Send.
func (r *SenderMock) Last() request.Request {
	return r.last
}
