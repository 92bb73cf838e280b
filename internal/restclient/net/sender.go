package net // import "RestoReservasi/internal/restclient/net"

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"RestoReservasi/internal/restclient/request"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Sender provides HTTP Requests
type Sender struct {
	requestEnricher RequestEnricher
	urlBuilder      URLBuilder
	httpClient      Client
	requestCreator  RequestCreator
	limiter         *rate.Limiter
}

// NewSender builds a Sender for baseURL. rps <= 0 disables the rate limiter.
func NewSender(baseURL string, timeout time.Duration, rps int, enricher RequestEnricher) *Sender {
	s := &Sender{
		requestEnricher: enricher,
		urlBuilder:      &BaseURLBuilder{BaseURL: baseURL},
		httpClient:      &http.Client{Timeout: timeout},
		requestCreator:  requestCreator{},
	}
	if rps > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(rps), rps)
	}
	return s
}

// Send method sends requests to the reservation API
func (s *Sender) Send(ctx context.Context, req request.Request) (resp *http.Response, err error) {
	if s.limiter != nil {
		if err = s.limiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(err, "failed limiter.Wait()")
		}
	}
	r, err := s.prepareRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.httpClient.Do(r)
}

func (s *Sender) prepareRequest(ctx context.Context, req request.Request) (*http.Request, error) {
	URL := s.urlBuilder.GetURL(req)

	var body io.Reader
	hasBody := req.Body != nil && req.Method == http.MethodPost
	if hasBody {
		reqBody, err := json.Marshal(req.Body)
		if err != nil {
			return nil, errors.Wrap(err, "failed json.Marshal()")
		}
		body = bytes.NewBuffer(reqBody)
	}

	r, err := s.requestCreator.NewRequest(req.Method, URL, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed NewRequest()")
	}
	r = r.WithContext(ctx)
	if s.requestEnricher != nil {
		s.requestEnricher.EnrichRequest(r, URL)
	}
	if hasBody {
		r.Header.Set("Content-Type", "application/json")
	}
	return r, nil
}

// SetRequestEnricher ...
func (s *Sender) SetRequestEnricher(a RequestEnricher) {
	s.requestEnricher = a
}

// SetURLBuilder ...
func (s *Sender) SetURLBuilder(urlBuilder URLBuilder) {
	s.urlBuilder = urlBuilder
}

// SetHTTPClient ...
func (s *Sender) SetHTTPClient(c Client) {
	s.httpClient = c
}
