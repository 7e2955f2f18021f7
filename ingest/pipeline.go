// Package ingest loads the declarative linguistic resources into the
// relational store: closed vocabularies first, then roots and their
// paradigms, then the inflected and derived forms that reference them.
//
// Stages run in dependency order inside explicit transactions. Lookup
// tables built by earlier stages, such as the enum abbreviation maps
// and the root map, are returned by the stage that builds them and
// passed to the stages that consume them. Resolution failures split two
// ways: an unknown enum abbreviation is a resource defect and aborts
// the run, while a form naming a root absent from the root resource is
// skipped and counted.
package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/vyakarana-io/kosha/internal/config"
	"github.com/vyakarana-io/kosha/internal/database"
	"github.com/vyakarana-io/kosha/schema"
)

// Commit cadences for the long CSV stages. The transaction is committed
// and reopened at these intervals so a late failure keeps the bulk of
// the file.
const (
	verbCommitEvery       = 1000
	participleCommitEvery = 100
)

// Pipeline rebuilds the morphology store from resource files.
type Pipeline struct {
	db        database.Database
	settings  config.Settings
	logger    *slog.Logger
	progress  *Progress
	batchSize int
	prefixed  bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used for progress reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithBatchSize overrides the bulk-insert threshold of the stem stages.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) {
		if size > 0 {
			p.batchSize = size
		}
	}
}

// WithPrefixedRoots enables the prefixed-roots stage at the end of the
// verbal group. The stage is off by default: most prefixed-root records
// name their basis without a homonym index, so exact resolution skips
// them until the resource is retagged.
func WithPrefixedRoots() Option {
	return func(p *Pipeline) {
		p.prefixed = true
	}
}

// NewPipeline creates a Pipeline over an open store connection.
func NewPipeline(db database.Database, settings config.Settings, opts ...Option) *Pipeline {
	p := &Pipeline{
		db:        db,
		settings:  settings,
		logger:    slog.Default(),
		batchSize: DefaultBatchSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.progress = newProgress(p.logger)
	return p
}

// Run rebuilds the store from scratch: every managed table is dropped
// and recreated, then the stages run in dependency order. The returned
// Result reports created tables, per-stage row counts, and the root
// keys the tolerant stages skipped.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	result := newResult()

	if err := schema.DropAll(p.db); err != nil {
		return nil, fmt.Errorf("drop tables: %w", err)
	}
	created, err := schema.CreateAll(p.db)
	if err != nil {
		return nil, err
	}
	result.Created = created
	for _, table := range created {
		p.logger.Info("created table", slog.String("table", table))
	}

	if err := p.addTags(ctx, result); err != nil {
		return nil, fmt.Errorf("stage %s: %w", StageTags, err)
	}
	enums, err := p.addEnums(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", StageEnums, err)
	}
	if err := p.addSandhiRules(ctx, enums, result); err != nil {
		return nil, fmt.Errorf("stage %s: %w", StageSandhi, err)
	}
	if err := p.addIndeclinables(ctx, result); err != nil {
		return nil, fmt.Errorf("stage %s: %w", StageIndeclinables, err)
	}
	if err := p.addVerbal(ctx, enums, result); err != nil {
		return nil, err
	}
	if err := p.addNominal(ctx, enums, result); err != nil {
		return nil, err
	}
	return result, nil
}

// addTags writes the fixed part-of-speech catalog.
func (p *Pipeline) addTags(ctx context.Context, result *Result) error {
	p.progress.Stage(StageTags)

	err := database.WithTransaction(ctx, p.db, func(tx *gorm.DB) error {
		for _, tag := range schema.Tags() {
			if err := tx.Create(&tag).Error; err != nil {
				return fmt.Errorf("tag %s: %w", tag.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	count := len(schema.Tags())
	result.add(StageTags, count)
	p.progress.Done(StageTags, count)
	return nil
}
