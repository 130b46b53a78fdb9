// Package sqlite opens the Travelogues archive database and owns its
// development schema.
package sqlite

import (
	"context"
	"database/sql"
	"net/url"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	_ "modernc.org/sqlite" // registers the "sqlite" driver with FTS5 built in

	"travelogues/internal/logging"
)

const driverName = "sqlite"

type Options struct {
	// ReadOnly opens the file with mode=ro. The API server always does.
	ReadOnly     bool
	MaxOpenConns int
	BusyTimeout  time.Duration
}

// DSN builds a modernc.org/sqlite URI for path.
func DSN(path string, opts Options) string {
	q := url.Values{}
	if opts.ReadOnly {
		q.Set("mode", "ro")
	}
	busy := opts.BusyTimeout
	if busy <= 0 {
		busy = 5 * time.Second
	}
	q.Add("_pragma", "busy_timeout("+strconv.FormatInt(busy.Milliseconds(), 10)+")")
	if !opts.ReadOnly {
		q.Add("_pragma", "foreign_keys(1)")
	}
	return "file:" + path + "?" + q.Encode()
}

// Open opens and pings the database.
func Open(ctx context.Context, path string, opts Options) (*sql.DB, error) {
	db, err := sql.Open(driverName, DSN(path, opts))
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
		db.SetMaxIdleConns(opts.MaxOpenConns)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "ping database %s", path)
	}

	logging.Debug().Str("path", path).Bool("read_only", opts.ReadOnly).Msg("database opened")
	return db, nil
}
