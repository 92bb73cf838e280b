package session

import (
	"time"

	"RestoReservasi/internal/errs"
	"RestoReservasi/internal/storage"
	"RestoReservasi/pkg/logging"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Session keeps login state in the local store. It never issues tokens, it only holds the one
// handed to Login.
type Session struct {
	store storage.Store
	now   func() time.Time
}

func New(store storage.Store) *Session {
	return &Session{store: store, now: time.Now}
}

func (s *Session) Login(token string, user User) error {
	logger := logging.GetLogger()
	logger.Println("Login:>Start")
	defer logger.Println("Login:>End")

	if token == "" {
		return errs.Validation("Token tidak boleh kosong")
	}
	if err := s.store.Set(storage.KeyToken, token); err != nil {
		return errors.Wrap(err, "failed to store token")
	}
	if err := storage.SetJSON(s.store, storage.KeyUserData, user); err != nil {
		return err
	}
	return s.store.Set(storage.KeyIsLoggedIn, "true")
}

// Logout clears the session keys. Order history and theme stay.
func (s *Session) Logout() error {
	logger := logging.GetLogger()
	logger.Println("Logout:>Start")
	defer logger.Println("Logout:>End")

	for _, key := range []string{storage.KeyToken, storage.KeyUserData, storage.KeyIsLoggedIn, storage.KeyProfileImage} {
		if err := s.store.Remove(key); err != nil {
			return errors.Wrapf(err, "failed Remove(%s)", key)
		}
	}
	return nil
}

func (s *Session) LoggedIn() bool {
	v, ok, err := s.store.Get(storage.KeyIsLoggedIn)
	return err == nil && ok && v == "true"
}

// Token returns the bearer token, empty when logged out. Used as the token source of the API client.
func (s *Session) Token() string {
	v, ok, err := s.store.Get(storage.KeyToken)
	if err != nil || !ok {
		return ""
	}
	return v
}

func (s *Session) User() (*User, bool) {
	var u User
	ok, err := storage.GetJSON(s.store, storage.KeyUserData, &u)
	if err != nil || !ok {
		return nil, false
	}
	return &u, true
}

// HistoryKey is riwayat_{userId} while logged in, riwayat otherwise.
func (s *Session) HistoryKey() string {
	if u, ok := s.User(); ok && s.LoggedIn() && u.ID != 0 {
		return storage.HistoryKeyFor(u.ID)
	}
	return storage.KeyHistory
}

// Expired reads the exp claim without verifying the signature. Opaque (non JWT) tokens and tokens
// without exp never expire client side.
func (s *Session) Expired() bool {
	token := s.Token()
	if token == "" {
		return true
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return s.now().After(exp.Time)
}

// HandleAuthError logs the user out when err is an auth error and reports whether it did.
func (s *Session) HandleAuthError(err error) bool {
	if !errs.IsAuth(err) {
		return false
	}
	logger := logging.GetLogger()
	logger.Warnf("auth error, forcing logout: %v", err)
	if err := s.Logout(); err != nil {
		logger.Errorf("failed Logout(): %v", err)
	}
	return true
}

func (s *Session) Theme() string {
	v, ok, err := s.store.Get(storage.KeyTheme)
	if err != nil || !ok {
		return ThemeLight
	}
	return v
}

func (s *Session) SetTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return errs.Validation("Tema harus light atau dark")
	}
	return s.store.Set(storage.KeyTheme, theme)
}
