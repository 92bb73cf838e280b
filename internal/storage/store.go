package storage

import (
	"fmt"

	"RestoReservasi/internal/config"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	KeyUserData     = "userData"
	KeyIsLoggedIn   = "isLoggedIn"
	KeyToken        = "token"
	KeyHistory      = "riwayat"
	KeyProfileImage = "profileImage"
	KeyTheme        = "app-theme"
)

// HistoryKeyFor is the per-user order history key.
func HistoryKeyFor(userID interface{}) string {
	return fmt.Sprintf("%s_%v", KeyHistory, userID)
}

func RatingDraftKey(reservasiID int) string {
	return fmt.Sprintf("temp-rating-%d", reservasiID)
}

// Store is the client-local key-value state.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// Open picks the store named by [STORAGE] Driver.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.STORAGE.Driver {
	case "memory":
		return NewMemoryStore(), nil
	case "sqlite", "":
		return NewSQLiteStore(cfg.STORAGE.DB)
	default:
		return nil, errors.Errorf("unknown storage driver %q", cfg.STORAGE.Driver)
	}
}

// GetJSON decodes the value under key into v. ok is false when the key is absent.
func GetJSON(s Store, key string, v interface{}) (ok bool, err error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, errors.Wrapf(err, "failed json.Unmarshal(), key:%s", key)
	}
	return true, nil
}

func SetJSON(s Store, key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "failed json.Marshal(), key:%s", key)
	}
	return s.Set(key, string(b))
}
