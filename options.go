package kosha

import (
	"log/slog"

	"github.com/vyakarana-io/kosha/internal/config"
	"github.com/vyakarana-io/kosha/internal/database"
)

// Option configures a Context before it connects.
type Option func(*Context)

// WithLogger sets the logger the Context and its pipeline runs use.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Context) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDatabase supplies an already-open store connection. The Context
// takes ownership and closes it on Close. Any DATABASE_URI in the
// settings is ignored.
func WithDatabase(db database.Database) Option {
	return func(c *Context) {
		c.db = db
		c.connected = true
	}
}

// WithSQLite points the Context at a sqlite database file.
func WithSQLite(path string) Option {
	return func(c *Context) {
		c.settings.Set(config.KeyDatabaseURI, "sqlite:///"+path)
	}
}

// WithPostgres points the Context at a postgres database.
func WithPostgres(dsn string) Option {
	return func(c *Context) {
		c.settings.Set(config.KeyDatabaseURI, dsn)
	}
}

// WithDataPath sets the base directory holding the linguistic
// resources. Resource files resolve to DATA_PATH/lang/<file> unless a
// per-file setting overrides them.
func WithDataPath(dir string) Option {
	return func(c *Context) {
		c.settings.Set(config.KeyDataPath, dir)
	}
}
