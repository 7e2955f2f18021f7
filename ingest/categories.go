package ingest

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vyakarana-io/kosha/internal/config"
	"github.com/vyakarana-io/kosha/internal/database"
	"github.com/vyakarana-io/kosha/schema"
)

type enumItem struct {
	Name string `yaml:"name"`
	Abbr string `yaml:"abbr"`

	// Members names the genders of a gender group; empty for plain
	// categories.
	Members []string `yaml:"members"`
}

type enumDoc struct {
	Name  string     `yaml:"name"`
	Items []enumItem `yaml:"items"`
}

// addEnums writes every enumerated category and returns the
// abbreviation maps used by later stages. Plain categories load first,
// one row at a time so assigned ids are captured. Gender groups load
// second so their members resolve against the freshly written genders.
func (p *Pipeline) addEnums(ctx context.Context, result *Result) (Enums, error) {
	path, err := p.settings.Path(config.KeyEnums)
	if err != nil {
		return nil, err
	}
	docs, err := decodeFile[[]enumDoc](path)
	if err != nil {
		return nil, err
	}
	if err := checkEnumDocs(docs); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.progress.Stage(StageEnums)

	enums := make(Enums)
	count := 0

	tErr := database.WithTransaction(ctx, p.db, func(tx *gorm.DB) error {
		for _, table := range schema.EnumTables() {
			doc, ok := findEnumDoc(docs, table.Doc)
			if !ok {
				continue
			}
			for _, item := range doc.Items {
				row := schema.EnumRow{Name: item.Name, Abbr: item.Abbr}
				if err := tx.Table(table.Table).Create(&row).Error; err != nil {
					return fmt.Errorf("%s %q: %w", table.Category, item.Name, err)
				}
				enums.add(table.Category, item.Abbr, row.ID)
				count++
			}
			p.progress.Tick(StageEnums, table.Doc)
		}

		for _, doc := range docs {
			if doc.Name != schema.GenderGroupDoc {
				continue
			}
			for _, item := range doc.Items {
				group := schema.GenderGroup{EnumRow: schema.EnumRow{Name: item.Name, Abbr: item.Abbr}}
				if err := tx.Create(&group).Error; err != nil {
					return fmt.Errorf("gender group %q: %w", item.Name, err)
				}
				for _, member := range item.Members {
					genderID, err := enums.Resolve(schema.CategoryGender, member)
					if err != nil {
						return fmt.Errorf("gender group %q: %w", item.Name, err)
					}
					link := schema.GenderGroupMember{GroupID: group.ID, GenderID: genderID}
					if err := tx.Create(&link).Error; err != nil {
						return fmt.Errorf("gender group %q: %w", item.Name, err)
					}
				}
				enums.add(schema.CategoryGenderGroup, item.Abbr, group.ID)
				count++
			}
			p.progress.Tick(StageEnums, doc.Name)
		}
		return nil
	})
	if tErr != nil {
		return nil, fmt.Errorf("%s: %w", path, tErr)
	}

	result.add(StageEnums, count)
	p.progress.Done(StageEnums, count)
	return enums, nil
}

// checkEnumDocs rejects documents that name no known category; a typo
// here would otherwise drop a whole vocabulary on the floor.
func checkEnumDocs(docs []enumDoc) error {
	known := map[string]bool{schema.GenderGroupDoc: true}
	for _, table := range schema.EnumTables() {
		known[table.Doc] = true
	}
	for _, doc := range docs {
		if !known[doc.Name] {
			return fmt.Errorf("unknown enum document %q", doc.Name)
		}
	}
	return nil
}

func findEnumDoc(docs []enumDoc, name string) (enumDoc, bool) {
	for _, doc := range docs {
		if doc.Name == name {
			return doc, true
		}
	}
	return enumDoc{}, false
}
