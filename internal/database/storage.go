package database

const DB_NAME = "resto.db"

const DB_SCHEMA = `CREATE TABLE IF NOT EXISTS Version (
	ID integer PRIMARY KEY AUTOINCREMENT,
	Name text,
	Version integer
);

CREATE TABLE IF NOT EXISTS KeyValue (
	Name text PRIMARY KEY,
	Value text NOT NULL,
	UpdatedAt text
);
`

const DB_VERSION = 1
