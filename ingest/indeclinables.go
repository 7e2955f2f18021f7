package ingest

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vyakarana-io/kosha/internal/config"
	"github.com/vyakarana-io/kosha/internal/database"
	"github.com/vyakarana-io/kosha/schema"
)

// addIndeclinables writes the uninflected words. The resource is a
// single YAML sequence of surface forms.
func (p *Pipeline) addIndeclinables(ctx context.Context, result *Result) error {
	path, err := p.settings.Path(config.KeyIndeclinables)
	if err != nil {
		return err
	}
	names, err := decodeFile[[]string](path)
	if err != nil {
		return err
	}
	p.progress.Stage(StageIndeclinables)

	tErr := database.WithTransaction(ctx, p.db, func(tx *gorm.DB) error {
		for i, name := range names {
			if err := tx.Create(&schema.Indeclinable{Name: name}).Error; err != nil {
				return fmt.Errorf("indeclinable %q: %w", name, err)
			}
			if i%100 == 0 {
				p.progress.Tick(StageIndeclinables, name)
			}
		}
		return nil
	})
	if tErr != nil {
		return fmt.Errorf("%s: %w", path, tErr)
	}

	result.add(StageIndeclinables, len(names))
	p.progress.Done(StageIndeclinables, len(names))
	return nil
}
