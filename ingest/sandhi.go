package ingest

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vyakarana-io/kosha/internal/config"
	"github.com/vyakarana-io/kosha/internal/database"
	"github.com/vyakarana-io/kosha/schema"
)

type sandhiDoc struct {
	Type  string `yaml:"type"`
	Rules []struct {
		First  string `yaml:"first"`
		Second string `yaml:"second"`
		Result string `yaml:"result"`
	} `yaml:"rules"`
}

// addSandhiRules writes the sound-combination rules, one document per
// rule type.
func (p *Pipeline) addSandhiRules(ctx context.Context, enums Enums, result *Result) error {
	path, err := p.settings.Path(config.KeySandhi)
	if err != nil {
		return err
	}
	docs, err := decodeDocuments[sandhiDoc](path)
	if err != nil {
		return err
	}
	p.progress.Stage(StageSandhi)

	count := 0
	tErr := database.WithTransaction(ctx, p.db, func(tx *gorm.DB) error {
		for _, doc := range docs {
			typeID, err := enums.Resolve(schema.CategorySandhiType, doc.Type)
			if err != nil {
				return err
			}
			p.progress.Tick(StageSandhi, doc.Type)
			for _, rule := range doc.Rules {
				row := schema.SandhiRule{
					RuleType: typeID,
					First:    rule.First,
					Second:   rule.Second,
					Result:   rule.Result,
				}
				if err := tx.Create(&row).Error; err != nil {
					return fmt.Errorf("rule %s+%s: %w", rule.First, rule.Second, err)
				}
				count++
			}
		}
		return nil
	})
	if tErr != nil {
		return fmt.Errorf("%s: %w", path, tErr)
	}

	result.add(StageSandhi, count)
	p.progress.Done(StageSandhi, count)
	return nil
}
