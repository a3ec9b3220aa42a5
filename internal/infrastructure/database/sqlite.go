// Package database provides short-lived connections to a single local
// SQLite database file. One connection per operation, closed
// deterministically after use: the layer's correctness model depends on
// always re-reading authoritative schema and data, so nothing is pooled
// or cached across calls.
package database

import (
	"database/sql"

	apperrors "github.com/shiftdesk/backend/pkg/errors"

	_ "modernc.org/sqlite"
)

// Opener yields a fresh database connection for the duration of one
// operation. Repositories depend on this rather than on a shared *sql.DB.
type Opener interface {
	Open() (*sql.DB, error)
}

// Provider opens connections to one database file. The connection string
// is parameterized only by the file path.
type Provider struct {
	path string
}

// NewProvider creates a Provider for a database file path
func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

// Path returns the database file path
func (p *Provider) Path() string {
	return p.path
}

// dsn pins the driver's time encoding to the engine-native text format.
// The default Go encoding is opaque to date() and strftime(), which would
// make written timestamps invisible to every date-filtered query.
func (p *Provider) dsn() string {
	return "file:" + p.path + "?_time_format=sqlite"
}

// Open returns a verified connection. Callers must Close it on every exit
// path. Failures are connectivity errors: reported, never retried.
func (p *Provider) Open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", p.dsn())
	if err != nil {
		return nil, apperrors.NewConnectivityError(p.path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, apperrors.NewConnectivityError(p.path, err)
	}
	return db, nil
}
