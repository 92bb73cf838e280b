package auth // import "RestoReservasi/internal/restclient/auth"

import (
	"net/http"

	"github.com/google/uuid"
)

// BearerAuthentication reads the current session token on every request, so a login or logout
// takes effect without rebuilding the client.
type BearerAuthentication struct {
	Token     func() string
	UserAgent string
}

// EnrichRequest ...
func (b *BearerAuthentication) EnrichRequest(r *http.Request, URL string) {
	r.Header.Set("Accept", "application/json")
	r.Header.Set("X-Request-Id", uuid.New().String())
	if b.UserAgent != "" {
		r.Header.Set("User-Agent", b.UserAgent)
	}
	if b.Token == nil {
		return
	}
	if token := b.Token(); token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}
