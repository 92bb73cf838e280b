package database

import (
	"os"

	"RestoReservasi/pkg/logging"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const memoryDSN = ":memory:"

func Exists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

func CreateDB(dbname string) error {
	logger := logging.GetLogger()
	logger.Info("CreateDB:>Start")
	defer logger.Info("CreateDB:>End")

	logger.Info("CreateDB:>Creating ", dbname)

	db, err := sqlx.Open("sqlite3", dbname)
	if err != nil {
		return errors.Wrap(err, "failed sqlx.Open()")
	}
	defer func(db *sqlx.DB) {
		err := db.Close()
		if err != nil {
			logger.Error(err)
		}
	}(db)

	if err := initSchema(db); err != nil {
		return err
	}

	logger.Info(dbname, " created")
	return nil
}

// Open connects to dbname, creating the file and schema on first use. ":memory:" gives a
// private in-process database pinned to a single connection.
func Open(dbname string) (*sqlx.DB, error) {
	logger := logging.GetLogger()

	if dbname == memoryDSN {
		db, err := sqlx.Connect("sqlite3", dbname)
		if err != nil {
			return nil, errors.Wrap(err, "failed sqlx.Connect()")
		}
		db.SetMaxOpenConns(1)
		if err := initSchema(db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return db, nil
	}

	if !Exists(dbname) {
		logger.Infof("database %s not found", dbname)
		if err := CreateDB(dbname); err != nil {
			return nil, errors.Wrapf(err, "failed CreateDB(%s)", dbname)
		}
	}

	db, err := sqlx.Connect("sqlite3", dbname)
	if err != nil {
		return nil, errors.Wrapf(err, "failed sqlx.Connect(%s)", dbname)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

func initSchema(db *sqlx.DB) error {
	if _, err := db.Exec(DB_SCHEMA); err != nil {
		return errors.Wrap(err, "failed to apply DB_SCHEMA")
	}
	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM Version WHERE Name=$1;", "schema"); err != nil {
		return errors.Wrap(err, "failed SELECT Version")
	}
	if count == 0 {
		if _, err := db.Exec("INSERT INTO Version (Name, Version) VALUES ($1, $2);", "schema", DB_VERSION); err != nil {
			return errors.Wrap(err, "failed INSERT Version")
		}
	}
	return nil
}
