package keyvalue

import (
	"database/sql"
	"time"

	"RestoReservasi/pkg/logging"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type KeyValue struct {
	Name      string         `db:"Name"`
	Value     string         `db:"Value"`
	UpdatedAt sql.NullString `db:"UpdatedAt"`
}

// SelectByName returns nil, nil when the key is absent.
func (kv *KeyValue) SelectByName(db *sqlx.DB) (*KeyValue, error) {
	logger := logging.GetLogger()
	logger.Debug("Start KeyValue.SelectByName")
	defer logger.Debug("End KeyValue.SelectByName")

	query := "SELECT * FROM KeyValue WHERE Name=$1;"
	var rows []*KeyValue
	if err := db.Select(&rows, query, kv.Name); err != nil {
		return nil, errors.Wrapf(err, "failed SELECT to dbsqlite; query:\n%s(%s)", query, kv.Name)
	}
	logger.Debugf("SELECT:\n%s(%s), rows: %d", query, kv.Name, len(rows))
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (kv *KeyValue) Upsert(db *sqlx.DB) error {
	logger := logging.GetLogger()
	logger.Debug("Start KeyValue.Upsert")
	defer logger.Debug("End KeyValue.Upsert")

	kv.UpdatedAt = sql.NullString{String: time.Now().Format(time.RFC3339), Valid: true}
	query := `INSERT INTO KeyValue (Name, Value, UpdatedAt) VALUES (:Name, :Value, :UpdatedAt)
ON CONFLICT(Name) DO UPDATE SET Value=excluded.Value, UpdatedAt=excluded.UpdatedAt;`
	if _, err := db.NamedExec(query, kv); err != nil {
		return errors.Wrapf(err, "failed UPSERT to dbsqlite; key: %s", kv.Name)
	}
	return nil
}

func (kv *KeyValue) Delete(db *sqlx.DB) error {
	logger := logging.GetLogger()
	logger.Debug("Start KeyValue.Delete")
	defer logger.Debug("End KeyValue.Delete")

	query := "DELETE FROM KeyValue WHERE Name=$1;"
	if _, err := db.Exec(query, kv.Name); err != nil {
		return errors.Wrapf(err, "failed DELETE to dbsqlite; query:\n%s(%s)", query, kv.Name)
	}
	return nil
}
