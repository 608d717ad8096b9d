// Package sqlio persists samples to a SQLite database.  Each benchmark run
// adds one row to the runs table and one row per sample to the samples
// table, all inside a single transaction committed by Close.
package sqlio

import (
	"database/sql"
	"errors"
	"time"

	"github.com/brimdata/sortbench/sample"
	_ "github.com/mattn/go-sqlite3"
	"github.com/segmentio/ksuid"
	"go.uber.org/multierr"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	started TIMESTAMP NOT NULL,
	element_type TEXT NOT NULL,
	seed INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS samples (
	run_id TEXT NOT NULL REFERENCES runs(id),
	seq INTEGER NOT NULL,
	size INTEGER NOT NULL,
	ord TEXT NOT NULL,
	sorter TEXT NOT NULL,
	duration_ns INTEGER NOT NULL,
	PRIMARY KEY (run_id, seq)
);`

// Run describes the benchmark run the samples belong to.
type Run struct {
	ID          ksuid.KSUID
	Started     time.Time
	ElementType string
	Seed        uint64
}

type Writer struct {
	db     *sql.DB
	tx     *sql.Tx
	insert *sql.Stmt
	run    ksuid.KSUID
	seq    int64
}

// Open opens (creating if needed) the database at path and records run.
func Open(path string, run Run) (*Writer, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	w, err := newWriter(db, run)
	if err != nil {
		return nil, multierr.Append(err, db.Close())
	}
	return w, nil
}

func newWriter(db *sql.DB, run Run) (*Writer, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	// SQLite stores uint64 values above MaxInt64 incorrectly, so the seed
	// is kept as its two's-complement int64.
	_, err = tx.Exec("INSERT INTO runs (id, started, element_type, seed) VALUES (?, ?, ?, ?)",
		run.ID.String(), run.Started.UTC(), run.ElementType, int64(run.Seed))
	if err != nil {
		return nil, multierr.Append(err, tx.Rollback())
	}
	insert, err := tx.Prepare("INSERT INTO samples (run_id, seq, size, ord, sorter, duration_ns) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return nil, multierr.Append(err, tx.Rollback())
	}
	return &Writer{
		db:     db,
		tx:     tx,
		insert: insert,
		run:    run.ID,
	}, nil
}

func (w *Writer) Write(s *sample.Sample) error {
	if w.tx == nil {
		return errors.New("sqlio: write after close")
	}
	_, err := w.insert.Exec(w.run.String(), w.seq, s.Size, s.Order.String(), s.Sorter, s.Duration.Nanoseconds())
	w.seq++
	return err
}

func (w *Writer) Close() error {
	if w.tx == nil {
		return nil
	}
	err := w.insert.Close()
	err = multierr.Append(err, w.tx.Commit())
	w.tx = nil
	return multierr.Append(err, w.db.Close())
}
