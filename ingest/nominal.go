package ingest

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vyakarana-io/kosha/internal/config"
	"github.com/vyakarana-io/kosha/internal/database"
	"github.com/vyakarana-io/kosha/schema"
)

// addNominal loads the nominal group: case endings, the bulk noun and
// adjective stems, the irregular stems with their enumerated forms, and
// the pronouns.
func (p *Pipeline) addNominal(ctx context.Context, enums Enums, result *Result) error {
	if err := p.addNominalEndings(ctx, enums, result); err != nil {
		return fmt.Errorf("stage %s: %w", StageNominalEndings, err)
	}
	if err := p.addNounStems(ctx, enums, result); err != nil {
		return fmt.Errorf("stage %s: %w", StageNounStems, err)
	}
	if err := p.addIrregularNouns(ctx, enums, result); err != nil {
		return fmt.Errorf("stage %s: %w", StageIrregularNouns, err)
	}
	if err := p.addAdjectiveStems(ctx, result); err != nil {
		return fmt.Errorf("stage %s: %w", StageAdjectiveStems, err)
	}
	if err := p.addIrregularAdjectives(ctx, enums, result); err != nil {
		return fmt.Errorf("stage %s: %w", StageIrregularAdjectives, err)
	}
	if err := p.addPronouns(ctx, enums, result); err != nil {
		return fmt.Errorf("stage %s: %w", StagePronouns, err)
	}
	return nil
}

type nominalEndingDoc struct {
	Stem    string `yaml:"stem"`
	Endings []struct {
		Name       string `yaml:"name"`
		Gender     string `yaml:"gender"`
		Case       string `yaml:"case"`
		Number     string `yaml:"number"`
		Compounded bool   `yaml:"compounded"`
	} `yaml:"endings"`
}

// addNominalEndings writes the declensional endings. Each document
// covers one stem class; an ending may leave case and number unset for
// forms outside the case grid, such as compound-initial stems.
func (p *Pipeline) addNominalEndings(ctx context.Context, enums Enums, result *Result) error {
	path, err := p.settings.Path(config.KeyNominalEndings)
	if err != nil {
		return err
	}
	docs, err := decodeDocuments[nominalEndingDoc](path)
	if err != nil {
		return err
	}
	p.progress.Stage(StageNominalEndings)

	count := 0
	tErr := database.WithTransaction(ctx, p.db, func(tx *gorm.DB) error {
		for _, doc := range docs {
			p.progress.Tick(StageNominalEndings, doc.Stem)
			for _, ending := range doc.Endings {
				genderID, err := enums.Resolve(schema.CategoryGender, ending.Gender)
				if err != nil {
					return fmt.Errorf("stem class %q: %w", doc.Stem, err)
				}
				caseID, err := enums.ResolveOptional(schema.CategoryCase, ending.Case)
				if err != nil {
					return fmt.Errorf("stem class %q: %w", doc.Stem, err)
				}
				numberID, err := enums.ResolveOptional(schema.CategoryNumber, ending.Number)
				if err != nil {
					return fmt.Errorf("stem class %q: %w", doc.Stem, err)
				}
				row := schema.NominalEnding{
					Name:       ending.Name,
					Stem:       doc.Stem,
					GenderID:   genderID,
					CaseID:     caseID,
					NumberID:   numberID,
					Compounded: ending.Compounded,
				}
				if err := tx.Create(&row).Error; err != nil {
					return fmt.Errorf("ending %q: %w", ending.Name, err)
				}
				count++
			}
		}
		return nil
	})
	if tErr != nil {
		return fmt.Errorf("%s: %w", path, tErr)
	}

	result.add(StageNominalEndings, count)
	p.progress.Done(StageNominalEndings, count)
	return nil
}

// addNounStems bulk-loads the regular noun stems. Each row resolves its
// gender group; rows go through the batch writer rather than one insert
// per stem.
func (p *Pipeline) addNounStems(ctx context.Context, enums Enums, result *Result) error {
	path, err := p.settings.Path(config.KeyNounStems)
	if err != nil {
		return err
	}
	records, err := readRecords(path)
	if err != nil {
		return err
	}
	p.progress.Stage(StageNounStems)

	count := 0
	tErr := database.WithTransaction(ctx, p.db, func(tx *gorm.DB) error {
		writer := NewBatchWriter[schema.Stem](tx, p.batchSize)
		for _, rec := range records {
			gendersID, err := enums.Resolve(schema.CategoryGenderGroup, rec["genders"])
			if err != nil {
				return fmt.Errorf("stem %q: %w", rec["name"], err)
			}
			stem := schema.Stem{
				PosID:     schema.TagNoun,
				Name:      rec["name"],
				GendersID: &gendersID,
			}
			if err := writer.Add(stem); err != nil {
				return fmt.Errorf("stem %q: %w", rec["name"], err)
			}
			if writer.Buffered() == 0 {
				p.progress.Tick(StageNounStems, rec["name"])
			}
			count++
		}
		return writer.Flush()
	})
	if tErr != nil {
		return fmt.Errorf("%s: %w", path, tErr)
	}

	result.add(StageNounStems, count)
	p.progress.Done(StageNounStems, count)
	return nil
}

type irregularStemDoc struct {
	Name     string     `yaml:"name"`
	Genders  string     `yaml:"genders"`
	Complete bool       `yaml:"complete"`
	Forms    []wordForm `yaml:"forms"`
}

type wordForm struct {
	Name   string `yaml:"name"`
	Gender string `yaml:"gender"`
	Case   string `yaml:"case"`
	Number string `yaml:"number"`
}

// addWordForms writes the enumerated forms of one irregular stem.
// Unlike nominal endings, a form names its gender, case, and number
// outright, so all three are required.
func addWordForms(tx *gorm.DB, enums Enums, stemID, posID int64, forms []wordForm) error {
	for _, form := range forms {
		genderID, err := enums.Resolve(schema.CategoryGender, form.Gender)
		if err != nil {
			return fmt.Errorf("form %q: %w", form.Name, err)
		}
		caseID, err := enums.Resolve(schema.CategoryCase, form.Case)
		if err != nil {
			return fmt.Errorf("form %q: %w", form.Name, err)
		}
		numberID, err := enums.Resolve(schema.CategoryNumber, form.Number)
		if err != nil {
			return fmt.Errorf("form %q: %w", form.Name, err)
		}
		word := schema.Word{
			StemID:   stemID,
			PosID:    posID,
			Name:     form.Name,
			GenderID: genderID,
			CaseID:   caseID,
			NumberID: numberID,
		}
		if err := tx.Create(&word).Error; err != nil {
			return fmt.Errorf("form %q: %w", form.Name, err)
		}
	}
	return nil
}

// addIrregularNouns writes the irregular noun stems, their irregularity
// markers, and their enumerated forms.
func (p *Pipeline) addIrregularNouns(ctx context.Context, enums Enums, result *Result) error {
	path, err := p.settings.Path(config.KeyIrregularNouns)
	if err != nil {
		return err
	}
	docs, err := decodeDocuments[irregularStemDoc](path)
	if err != nil {
		return err
	}
	p.progress.Stage(StageIrregularNouns)

	count := 0
	tErr := database.WithTransaction(ctx, p.db, func(tx *gorm.DB) error {
		for _, doc := range docs {
			p.progress.Tick(StageIrregularNouns, doc.Name)
			gendersID, err := enums.Resolve(schema.CategoryGenderGroup, doc.Genders)
			if err != nil {
				return fmt.Errorf("stem %q: %w", doc.Name, err)
			}
			stem := schema.Stem{
				PosID:     schema.TagNoun,
				Name:      doc.Name,
				GendersID: &gendersID,
			}
			if err := tx.Create(&stem).Error; err != nil {
				return fmt.Errorf("stem %q: %w", doc.Name, err)
			}
			irregularity := schema.StemIrregularity{StemID: stem.ID, FullyDescribed: doc.Complete}
			if err := tx.Create(&irregularity).Error; err != nil {
				return fmt.Errorf("stem %q: %w", doc.Name, err)
			}
			if err := addWordForms(tx, enums, stem.ID, schema.TagNoun, doc.Forms); err != nil {
				return fmt.Errorf("stem %q: %w", doc.Name, err)
			}
			count += 1 + len(doc.Forms)
		}
		return nil
	})
	if tErr != nil {
		return fmt.Errorf("%s: %w", path, tErr)
	}

	result.add(StageIrregularNouns, count)
	p.progress.Done(StageIrregularNouns, count)
	return nil
}

// addAdjectiveStems bulk-loads the regular adjective stems. Adjectives
// decline in every gender, so no gender group is recorded.
func (p *Pipeline) addAdjectiveStems(ctx context.Context, result *Result) error {
	path, err := p.settings.Path(config.KeyAdjectiveStems)
	if err != nil {
		return err
	}
	records, err := readRecords(path)
	if err != nil {
		return err
	}
	p.progress.Stage(StageAdjectiveStems)

	count := 0
	tErr := database.WithTransaction(ctx, p.db, func(tx *gorm.DB) error {
		writer := NewBatchWriter[schema.Stem](tx, p.batchSize)
		for _, rec := range records {
			stem := schema.Stem{PosID: schema.TagAdjective, Name: rec["name"]}
			if err := writer.Add(stem); err != nil {
				return fmt.Errorf("stem %q: %w", rec["name"], err)
			}
			if writer.Buffered() == 0 {
				p.progress.Tick(StageAdjectiveStems, rec["name"])
			}
			count++
		}
		return writer.Flush()
	})
	if tErr != nil {
		return fmt.Errorf("%s: %w", path, tErr)
	}

	result.add(StageAdjectiveStems, count)
	p.progress.Done(StageAdjectiveStems, count)
	return nil
}

// addIrregularAdjectives mirrors addIrregularNouns without the gender
// group.
func (p *Pipeline) addIrregularAdjectives(ctx context.Context, enums Enums, result *Result) error {
	path, err := p.settings.Path(config.KeyIrregularAdjectives)
	if err != nil {
		return err
	}
	docs, err := decodeDocuments[irregularStemDoc](path)
	if err != nil {
		return err
	}
	p.progress.Stage(StageIrregularAdjectives)

	count := 0
	tErr := database.WithTransaction(ctx, p.db, func(tx *gorm.DB) error {
		for _, doc := range docs {
			p.progress.Tick(StageIrregularAdjectives, doc.Name)
			stem := schema.Stem{PosID: schema.TagAdjective, Name: doc.Name}
			if err := tx.Create(&stem).Error; err != nil {
				return fmt.Errorf("stem %q: %w", doc.Name, err)
			}
			irregularity := schema.StemIrregularity{StemID: stem.ID, FullyDescribed: doc.Complete}
			if err := tx.Create(&irregularity).Error; err != nil {
				return fmt.Errorf("stem %q: %w", doc.Name, err)
			}
			if err := addWordForms(tx, enums, stem.ID, schema.TagAdjective, doc.Forms); err != nil {
				return fmt.Errorf("stem %q: %w", doc.Name, err)
			}
			count += 1 + len(doc.Forms)
		}
		return nil
	})
	if tErr != nil {
		return fmt.Errorf("%s: %w", path, tErr)
	}

	result.add(StageIrregularAdjectives, count)
	p.progress.Done(StageIrregularAdjectives, count)
	return nil
}

type pronounDoc struct {
	Name    string     `yaml:"name"`
	Genders string     `yaml:"genders"`
	Forms   []wordForm `yaml:"forms"`
}

// addPronouns writes the pronoun stems and their fully enumerated
// forms. Pronouns are a closed class: every form is listed, so no
// irregularity marker is recorded.
func (p *Pipeline) addPronouns(ctx context.Context, enums Enums, result *Result) error {
	path, err := p.settings.Path(config.KeyPronouns)
	if err != nil {
		return err
	}
	docs, err := decodeDocuments[pronounDoc](path)
	if err != nil {
		return err
	}
	p.progress.Stage(StagePronouns)

	count := 0
	tErr := database.WithTransaction(ctx, p.db, func(tx *gorm.DB) error {
		for _, doc := range docs {
			p.progress.Tick(StagePronouns, doc.Name)
			gendersID, err := enums.Resolve(schema.CategoryGenderGroup, doc.Genders)
			if err != nil {
				return fmt.Errorf("pronoun %q: %w", doc.Name, err)
			}
			stem := schema.Stem{
				PosID:     schema.TagPronoun,
				Name:      doc.Name,
				GendersID: &gendersID,
			}
			if err := tx.Create(&stem).Error; err != nil {
				return fmt.Errorf("pronoun %q: %w", doc.Name, err)
			}
			if err := addWordForms(tx, enums, stem.ID, schema.TagPronoun, doc.Forms); err != nil {
				return fmt.Errorf("pronoun %q: %w", doc.Name, err)
			}
			count += 1 + len(doc.Forms)
		}
		return nil
	})
	if tErr != nil {
		return fmt.Errorf("%s: %w", path, tErr)
	}

	result.add(StagePronouns, count)
	p.progress.Done(StagePronouns, count)
	return nil
}
