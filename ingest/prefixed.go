package ingest

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vyakarana-io/kosha/internal/config"
	"github.com/vyakarana-io/kosha/internal/database"
	"github.com/vyakarana-io/kosha/schema"
)

type prefixedRootDoc struct {
	Name     string   `yaml:"name"`
	Basis    string   `yaml:"basis"`
	Hom      Hom      `yaml:"hom"`
	Prefixes []string `yaml:"prefixes"`
}

// addPrefixedRoots links compound roots to the base root they inflect
// as, recording each compound's prefixes in order. Basis resolution is
// exact on (name, homonym) and records that do not resolve are counted
// and skipped. An unknown prefix is a resource defect and aborts the
// run.
func (p *Pipeline) addPrefixedRoots(ctx context.Context, prefixes PrefixMap, roots RootMap, result *Result) error {
	path, err := p.settings.Path(config.KeyPrefixedRoots)
	if err != nil {
		return err
	}
	docs, err := decodeDocuments[prefixedRootDoc](path)
	if err != nil {
		return err
	}
	p.progress.Stage(StagePrefixedRoots)

	skipped := make(SkipSet)
	count := 0

	tErr := database.WithTransaction(ctx, p.db, func(tx *gorm.DB) error {
		for _, doc := range docs {
			key := RootKey{Name: doc.Basis, Hom: string(doc.Hom)}
			basisID, ok := roots.Resolve(key)
			if !ok {
				skipped.Add(key)
				continue
			}

			row := schema.PrefixedRoot{Name: doc.Name, BasisID: basisID}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("prefixed root %q: %w", doc.Name, err)
			}
			for i, prefix := range doc.Prefixes {
				prefixID, ok := prefixes[prefix]
				if !ok {
					return fmt.Errorf("prefixed root %q: unknown prefix %q", doc.Name, prefix)
				}
				link := schema.PrefixedRootPrefix{
					PrefixedRootID: row.ID,
					Position:       i,
					PrefixID:       prefixID,
				}
				if err := tx.Create(&link).Error; err != nil {
					return fmt.Errorf("prefixed root %q: %w", doc.Name, err)
				}
			}
			count++
		}
		return nil
	})
	if tErr != nil {
		return fmt.Errorf("%s: %w", path, tErr)
	}

	result.add(StagePrefixedRoots, count)
	result.skip(StagePrefixedRoots, skipped)
	p.progress.Done(StagePrefixedRoots, count)
	p.progress.Skipped(StagePrefixedRoots, skipped)
	return nil
}
