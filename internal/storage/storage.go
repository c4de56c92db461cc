package storage

import (
	"net/url"
	"strings"

	"github.com/remindapp/remind/internal/storage/postgres"
	"github.com/remindapp/remind/internal/storage/sqlite"
)

// NewSQLiteStore creates a Provider backed by a local SQLite database file.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore creates a Provider backed by a PostgreSQL database.
// The connection string must not embed a password; see HasEmbeddedCredentials.
func NewPostgresStore(connStr string) Provider {
	return postgres.New(connStr)
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password, either in the URL userinfo or as a DSN key.
// Passwords belong in the OS keyring or environment, never in config.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			// Unparseable strings are treated as suspect
			return true
		}
		if u.User != nil {
			if _, isSet := u.User.Password(); isSet {
				return true
			}
		}
		return false
	}

	// DSN format: space-separated key=value pairs
	for _, pair := range strings.Fields(connStr) {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) == 2 && strings.EqualFold(strings.TrimSpace(kv[0]), "password") {
			return true
		}
	}
	return false
}
