package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/LGVbtw/taskbench"
)

var ErrDBNotInitialized = errors.New("database connection not initialized")

type Database struct {
	conn *sql.DB
}

func New(host, user, password, dbname string, port int, ssl bool) (*Database, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s",
		host, port, user, password, dbname,
	)
	if !ssl {
		dsn += " sslmode=disable"
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("can't open db connection: %w", err)
	}

	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("can't ping db: %w", err)
	}

	d := &Database{conn: db}

	err = d.ensureSchema()
	if err != nil {
		return nil, err
	}

	return d, nil
}

const createRunsTable = `
CREATE TABLE IF NOT EXISTS latency_runs (
    id         SERIAL PRIMARY KEY,
    target     TEXT NOT NULL,
    requested  INT NOT NULL,
    sampled    INT NOT NULL,
    mean_s     DOUBLE PRECISION NOT NULL,
    min_s      DOUBLE PRECISION NOT NULL,
    max_s      DOUBLE PRECISION NOT NULL,
    median_s   DOUBLE PRECISION NOT NULL,
    p90_s      DOUBLE PRECISION NOT NULL,
    p95_s      DOUBLE PRECISION NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

func (db *Database) ensureSchema() error {
	if db.conn == nil {
		return ErrDBNotInitialized
	}

	_, err := db.conn.Exec(createRunsTable)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	return nil
}

const insertRun = `
INSERT INTO latency_runs (target, requested, sampled, mean_s, min_s, max_s, median_s, p90_s, p95_s)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
`

// SaveRun stores one run summary row.
func (db *Database) SaveRun(target string, requested int, stat taskbench.Stats) error {
	if db.conn == nil {
		return ErrDBNotInitialized
	}

	_, err := db.conn.Exec(
		insertRun,
		target,
		requested,
		stat.SampleCount,
		stat.Mean,
		stat.Min,
		stat.Max,
		stat.Median,
		stat.P90,
		stat.P95,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	return nil
}

func (db *Database) Close() {
	if db.conn == nil {
		return
	}

	if err := db.conn.Close(); err != nil {
		return
	}
}
