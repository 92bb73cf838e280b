package storage

import (
	"RestoReservasi/internal/database"
	"RestoReservasi/internal/database/model/keyvalue"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type SQLiteStore struct {
	db *sqlx.DB
}

func NewSQLiteStore(dbname string) (*SQLiteStore, error) {
	if dbname == "" {
		dbname = database.DB_NAME
	}
	db, err := database.Open(dbname)
	if err != nil {
		return nil, errors.Wrap(err, "failed database.Open()")
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(key string) (string, bool, error) {
	kv, err := (&keyvalue.KeyValue{Name: key}).SelectByName(s.db)
	if err != nil {
		return "", false, err
	}
	if kv == nil {
		return "", false, nil
	}
	return kv.Value, true, nil
}

func (s *SQLiteStore) Set(key, value string) error {
	return (&keyvalue.KeyValue{Name: key, Value: value}).Upsert(s.db)
}

func (s *SQLiteStore) Remove(key string) error {
	return (&keyvalue.KeyValue{Name: key}).Delete(s.db)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
