// Package kosha builds a relational store of Sanskrit morphology from
// declarative resource files. A Context owns the store connection and
// the resolved settings; Build rebuilds every table from the resource
// files, and the enum accessors resolve vocabulary names and
// abbreviations against the built store.
//
// Basic usage:
//
//	c, err := kosha.New(ctx, map[string]string{
//		"DATABASE_URI": "sqlite:///kosha.db",
//		"DATA_PATH":    "/srv/sanskrit-data",
//	})
//	if err != nil {
//		return err
//	}
//	defer c.Close()
//
//	result, err := c.Build(ctx)
//	if err != nil {
//		return err
//	}
//
//	id, err := c.EnumID(ctx, schema.CategoryGender, "m")
package kosha

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/vyakarana-io/kosha/ingest"
	"github.com/vyakarana-io/kosha/internal/config"
	"github.com/vyakarana-io/kosha/internal/database"
	"github.com/vyakarana-io/kosha/schema"
)

// ErrNoDatabaseURI is returned when a Context without a store
// connection is asked to connect and DATABASE_URI is not set.
var ErrNoDatabaseURI = errors.New("no database uri configured")

// ErrNotConnected is returned when an operation needs the store and the
// Context is not connected.
var ErrNotConnected = errors.New("store not connected")

// Context is the top-level handle for building and reading a morphology
// store. It is safe for concurrent use.
type Context struct {
	settings config.Settings
	logger   *slog.Logger

	mu        sync.Mutex
	db        database.Database
	connected bool
	registry  *Registry
}

// New creates a Context from a settings map. Settings are normalized
// the same way regardless of source: lower-case keys are dropped and
// resource paths default to DATA_PATH/lang/<file>. When DATABASE_URI is
// set and no connection was supplied via options, New connects eagerly
// so a bad URL fails here rather than on first use.
func New(ctx context.Context, settings map[string]string, opts ...Option) (*Context, error) {
	c := &Context{
		settings: config.FromMap(settings),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.settings.ApplyDefaults()

	if !c.connected && c.settings.DatabaseURI() != "" {
		if err := c.Connect(ctx); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// NewFromFile creates a Context from a dotenv-format settings file. The
// file alone defines the settings.
func NewFromFile(ctx context.Context, path string, opts ...Option) (*Context, error) {
	settings, err := config.FromFile(path)
	if err != nil {
		return nil, err
	}
	return New(ctx, map[string]string(settings), opts...)
}

// NewFromEnv creates a Context from the process environment.
func NewFromEnv(ctx context.Context, opts ...Option) (*Context, error) {
	settings, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	return New(ctx, map[string]string(settings), opts...)
}

// Connect opens the store connection named by DATABASE_URI. It is a
// no-op when the Context is already connected.
func (c *Context) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		return nil
	}
	uri := c.settings.DatabaseURI()
	if uri == "" {
		return ErrNoDatabaseURI
	}

	db, err := database.NewDatabase(ctx, uri)
	if err != nil {
		return err
	}
	c.db = db
	c.connected = true
	return nil
}

// database returns the open store connection.
func (c *Context) database() (database.Database, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return database.Database{}, ErrNotConnected
	}
	return c.db, nil
}

// Build rebuilds the morphology store from the resource files: every
// managed table is dropped, recreated, and repopulated. A registry
// cached by a previous Enums call is not touched; call RebuildEnums
// after a successful build to refresh it.
func (c *Context) Build(ctx context.Context, opts ...ingest.Option) (*ingest.Result, error) {
	db, err := c.database()
	if err != nil {
		return nil, err
	}
	opts = append([]ingest.Option{ingest.WithLogger(c.logger)}, opts...)
	return ingest.NewPipeline(db, c.settings, opts...).Run(ctx)
}

// CreateAll creates every managed table that does not already exist and
// returns the names of the tables it created.
func (c *Context) CreateAll() ([]string, error) {
	db, err := c.database()
	if err != nil {
		return nil, err
	}
	return schema.CreateAll(db)
}

// DropAll drops every managed table.
func (c *Context) DropAll() error {
	db, err := c.database()
	if err != nil {
		return err
	}
	return schema.DropAll(db)
}

// Enums returns the enum registry for the connected store, reading it
// from the store on first use and caching it after that. The cache is
// invalidated only by an explicit RebuildEnums, never automatically.
func (c *Context) Enums(ctx context.Context) (*Registry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil, ErrNotConnected
	}
	if c.registry != nil {
		return c.registry, nil
	}

	registry, err := BuildRegistry(ctx, c.db)
	if err != nil {
		return nil, err
	}
	c.registry = registry
	return registry, nil
}

// RebuildEnums discards the cached registry and reads a fresh one from
// the store. Call it after Build.
func (c *Context) RebuildEnums(ctx context.Context) (*Registry, error) {
	c.mu.Lock()
	c.registry = nil
	c.mu.Unlock()
	return c.Enums(ctx)
}

// EnumID resolves an enum name or abbreviation to its row id. A miss
// wraps database.ErrNotFound.
func (c *Context) EnumID(ctx context.Context, category, key string) (int64, error) {
	registry, err := c.Enums(ctx)
	if err != nil {
		return 0, err
	}
	id, ok := registry.ID(category, key)
	if !ok {
		return 0, fmt.Errorf("%w: %s %q", database.ErrNotFound, category, key)
	}
	return id, nil
}

// EnumAbbr resolves an enum name or decimal row id to its abbreviation.
// A miss wraps database.ErrNotFound.
func (c *Context) EnumAbbr(ctx context.Context, category, key string) (string, error) {
	registry, err := c.Enums(ctx)
	if err != nil {
		return "", err
	}
	abbr, ok := registry.Abbr(category, key)
	if !ok {
		return "", fmt.Errorf("%w: %s %q", database.ErrNotFound, category, key)
	}
	return abbr, nil
}

// GenderSet returns the gender ids belonging to a gender group. An
// unknown group wraps database.ErrNotFound; a known group with no
// members returns an empty set.
func (c *Context) GenderSet(ctx context.Context, groupID int64) (map[int64]struct{}, error) {
	registry, err := c.Enums(ctx)
	if err != nil {
		return nil, err
	}
	set, ok := registry.GenderSet(groupID)
	if !ok {
		return nil, fmt.Errorf("%w: gender group %d", database.ErrNotFound, groupID)
	}
	return set, nil
}

// Close releases the store connection and the cached registry. Closing
// a Context that never connected is a no-op.
func (c *Context) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil
	}
	c.connected = false
	c.registry = nil
	return c.db.Close()
}

// Settings returns the resolved settings.
func (c *Context) Settings() config.Settings {
	return c.settings
}

// Logger returns the configured logger.
func (c *Context) Logger() *slog.Logger {
	return c.logger
}
