package ingest

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vyakarana-io/kosha/internal/config"
	"github.com/vyakarana-io/kosha/internal/database"
	"github.com/vyakarana-io/kosha/schema"
)

// PrefixMap records the id assigned to each verb prefix, by surface
// form.
type PrefixMap map[string]int64

// addVerbal loads the verbal group: prefixes and endings, then roots
// and their paradigms, then the inflected and derived forms that
// resolve against the root map.
func (p *Pipeline) addVerbal(ctx context.Context, enums Enums, result *Result) error {
	prefixes, err := p.addVerbPrefixes(ctx, result)
	if err != nil {
		return fmt.Errorf("stage %s: %w", StageVerbPrefixes, err)
	}
	if err := p.addVerbEndings(ctx, enums, result); err != nil {
		return fmt.Errorf("stage %s: %w", StageVerbEndings, err)
	}
	roots, err := p.addRoots(ctx, enums, result)
	if err != nil {
		return fmt.Errorf("stage %s: %w", StageRoots, err)
	}
	// TODO: add a modified-roots stage once that resource settles on a
	// shape; MODIFIED_ROOTS is already reserved in the settings.
	if err := p.addVerbs(ctx, enums, roots, result); err != nil {
		return fmt.Errorf("stage %s: %w", StageVerbs, err)
	}
	if err := p.addParticipleStems(ctx, enums, roots, result); err != nil {
		return fmt.Errorf("stage %s: %w", StageParticipleStems, err)
	}
	if err := p.addRootForms(ctx, config.KeyGerunds, StageGerunds, roots, result, newGerund); err != nil {
		return fmt.Errorf("stage %s: %w", StageGerunds, err)
	}
	if err := p.addRootForms(ctx, config.KeyInfinitives, StageInfinitives, roots, result, newInfinitive); err != nil {
		return fmt.Errorf("stage %s: %w", StageInfinitives, err)
	}
	if p.prefixed {
		if err := p.addPrefixedRoots(ctx, prefixes, roots, result); err != nil {
			return fmt.Errorf("stage %s: %w", StagePrefixedRoots, err)
		}
	}
	return nil
}

type verbPrefixDoc struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
}

// addVerbPrefixes writes the members of every prefix group and returns
// their assigned ids by surface form.
func (p *Pipeline) addVerbPrefixes(ctx context.Context, result *Result) (PrefixMap, error) {
	path, err := p.settings.Path(config.KeyVerbPrefixes)
	if err != nil {
		return nil, err
	}
	docs, err := decodeDocuments[verbPrefixDoc](path)
	if err != nil {
		return nil, err
	}
	p.progress.Stage(StageVerbPrefixes)

	prefixes, tErr := database.WithTransactionResult(ctx, p.db, func(tx *gorm.DB) (PrefixMap, error) {
		prefixes := make(PrefixMap)
		for _, doc := range docs {
			p.progress.Tick(StageVerbPrefixes, doc.Name)
			for _, name := range doc.Items {
				row := schema.VerbPrefix{Name: name}
				if err := tx.Create(&row).Error; err != nil {
					return nil, fmt.Errorf("prefix %q: %w", name, err)
				}
				prefixes[name] = row.ID
			}
		}
		return prefixes, nil
	})
	if tErr != nil {
		return nil, fmt.Errorf("%s: %w", path, tErr)
	}

	result.add(StageVerbPrefixes, len(prefixes))
	p.progress.Done(StageVerbPrefixes, len(prefixes))
	return prefixes, nil
}

type verbEndingDoc struct {
	Mode     string `yaml:"mode"`
	Voice    string `yaml:"voice"`
	Category string `yaml:"category"`
	Endings  []struct {
		Name   string `yaml:"name"`
		Person string `yaml:"person"`
		Number string `yaml:"number"`
	} `yaml:"endings"`
}

// addVerbEndings writes the conjugational endings. Each document fixes
// a mode and voice; each ending names its person and number.
func (p *Pipeline) addVerbEndings(ctx context.Context, enums Enums, result *Result) error {
	path, err := p.settings.Path(config.KeyVerbEndings)
	if err != nil {
		return err
	}
	docs, err := decodeDocuments[verbEndingDoc](path)
	if err != nil {
		return err
	}
	p.progress.Stage(StageVerbEndings)

	count := 0
	tErr := database.WithTransaction(ctx, p.db, func(tx *gorm.DB) error {
		for _, doc := range docs {
			modeID, err := enums.Resolve(schema.CategoryMode, doc.Mode)
			if err != nil {
				return err
			}
			voiceID, err := enums.Resolve(schema.CategoryVoice, doc.Voice)
			if err != nil {
				return err
			}
			p.progress.Tick(StageVerbEndings, doc.Mode+" "+doc.Voice)
			for _, ending := range doc.Endings {
				personID, err := enums.Resolve(schema.CategoryPerson, ending.Person)
				if err != nil {
					return fmt.Errorf("ending %q: %w", ending.Name, err)
				}
				numberID, err := enums.Resolve(schema.CategoryNumber, ending.Number)
				if err != nil {
					return fmt.Errorf("ending %q: %w", ending.Name, err)
				}
				row := schema.VerbEnding{
					Name:     ending.Name,
					Category: doc.Category,
					PersonID: personID,
					NumberID: numberID,
					ModeID:   modeID,
					VoiceID:  voiceID,
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

	result.add(StageVerbEndings, count)
	p.progress.Done(StageVerbEndings, count)
	return nil
}

type rootDoc struct {
	Name      string     `yaml:"name"`
	Hom       Hom        `yaml:"hom"`
	Paradigms [][]string `yaml:"paradigms"`
}

// addRoots writes every root and its paradigms and returns the map from
// (name, homonym) to root id that later stages resolve against. The
// returned count covers roots and paradigms together.
func (p *Pipeline) addRoots(ctx context.Context, enums Enums, result *Result) (RootMap, error) {
	path, err := p.settings.Path(config.KeyRoots)
	if err != nil {
		return nil, err
	}
	docs, err := decodeDocuments[rootDoc](path)
	if err != nil {
		return nil, err
	}
	p.progress.Stage(StageRoots)

	count := 0
	roots, tErr := database.WithTransactionResult(ctx, p.db, func(tx *gorm.DB) (RootMap, error) {
		roots := make(RootMap, len(docs))
		for i, doc := range docs {
			root := schema.Root{Name: doc.Name}
			if err := tx.Create(&root).Error; err != nil {
				return nil, fmt.Errorf("root %q: %w", doc.Name, err)
			}
			count++
			for _, pair := range doc.Paradigms {
				if len(pair) != 2 {
					return nil, fmt.Errorf("root %q: paradigm needs a verb class and a voice", doc.Name)
				}
				vclassID, err := enums.Resolve(schema.CategoryVclass, pair[0])
				if err != nil {
					return nil, fmt.Errorf("root %q: %w", doc.Name, err)
				}
				voiceID, err := enums.Resolve(schema.CategoryVoice, pair[1])
				if err != nil {
					return nil, fmt.Errorf("root %q: %w", doc.Name, err)
				}
				paradigm := schema.Paradigm{RootID: root.ID, VclassID: vclassID, VoiceID: voiceID}
				if err := tx.Create(&paradigm).Error; err != nil {
					return nil, fmt.Errorf("root %q: %w", doc.Name, err)
				}
				count++
			}
			roots[RootKey{Name: doc.Name, Hom: string(doc.Hom)}] = root.ID
			if i%100 == 0 {
				p.progress.Tick(StageRoots, doc.Name)
			}
		}
		return roots, nil
	})
	if tErr != nil {
		return nil, fmt.Errorf("%s: %w", path, tErr)
	}

	result.add(StageRoots, count)
	p.progress.Done(StageRoots, count)
	return roots, nil
}

// addVerbs writes the inflected verb forms. Rows naming a root the root
// map cannot resolve are counted and skipped.
func (p *Pipeline) addVerbs(ctx context.Context, enums Enums, roots RootMap, result *Result) error {
	path, err := p.settings.Path(config.KeyVerbs)
	if err != nil {
		return err
	}
	records, err := readRecords(path)
	if err != nil {
		return err
	}
	p.progress.Stage(StageVerbs)

	skipped := make(SkipSet)
	count := 0

	txn, err := database.NewTransaction(ctx, p.db)
	if err != nil {
		return err
	}
	defer func() { _ = txn.Rollback() }()

	for _, rec := range records {
		key := RootKey{Name: rec["root"], Hom: rec["hom"]}
		rootID, ok := roots.Resolve(key)
		if !ok {
			skipped.Add(key)
			continue
		}

		vclassID, err := enums.ResolveOptional(schema.CategoryVclass, rec["vclass"])
		if err != nil {
			return fmt.Errorf("%s: verb %q: %w", path, rec["name"], err)
		}
		personID, err := enums.Resolve(schema.CategoryPerson, rec["person"])
		if err != nil {
			return fmt.Errorf("%s: verb %q: %w", path, rec["name"], err)
		}
		numberID, err := enums.Resolve(schema.CategoryNumber, rec["number"])
		if err != nil {
			return fmt.Errorf("%s: verb %q: %w", path, rec["name"], err)
		}
		modeID, err := enums.Resolve(schema.CategoryMode, rec["mode"])
		if err != nil {
			return fmt.Errorf("%s: verb %q: %w", path, rec["name"], err)
		}
		voiceID, err := enums.Resolve(schema.CategoryVoice, rec["voice"])
		if err != nil {
			return fmt.Errorf("%s: verb %q: %w", path, rec["name"], err)
		}

		verb := schema.Verb{
			Name:     rec["name"],
			RootID:   rootID,
			VclassID: vclassID,
			PersonID: personID,
			NumberID: numberID,
			ModeID:   modeID,
			VoiceID:  voiceID,
		}
		if err := txn.Session().Create(&verb).Error; err != nil {
			return fmt.Errorf("%s: verb %q: %w", path, rec["name"], err)
		}

		count++
		if count%verbCommitEvery == 0 {
			if err := txn.Commit(); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			p.progress.Tick(StageVerbs, rec["name"])
			txn, err = database.NewTransaction(ctx, p.db)
			if err != nil {
				return err
			}
		}
	}
	if err := txn.Commit(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	result.add(StageVerbs, count)
	result.skip(StageVerbs, skipped)
	p.progress.Done(StageVerbs, count)
	p.progress.Skipped(StageVerbs, skipped)
	return nil
}

// addParticipleStems writes the participle stems, resolving each row's
// root, mode, and voice.
func (p *Pipeline) addParticipleStems(ctx context.Context, enums Enums, roots RootMap, result *Result) error {
	path, err := p.settings.Path(config.KeyParticipleStems)
	if err != nil {
		return err
	}
	records, err := readRecords(path)
	if err != nil {
		return err
	}
	p.progress.Stage(StageParticipleStems)

	skipped := make(SkipSet)
	count := 0

	txn, err := database.NewTransaction(ctx, p.db)
	if err != nil {
		return err
	}
	defer func() { _ = txn.Rollback() }()

	for _, rec := range records {
		key := RootKey{Name: rec["root"], Hom: rec["hom"]}
		rootID, ok := roots.Resolve(key)
		if !ok {
			skipped.Add(key)
			continue
		}

		modeID, err := enums.Resolve(schema.CategoryMode, rec["mode"])
		if err != nil {
			return fmt.Errorf("%s: stem %q: %w", path, rec["name"], err)
		}
		voiceID, err := enums.Resolve(schema.CategoryVoice, rec["voice"])
		if err != nil {
			return fmt.Errorf("%s: stem %q: %w", path, rec["name"], err)
		}

		stem := schema.ParticipleStem{
			Name:    rec["name"],
			RootID:  rootID,
			ModeID:  modeID,
			VoiceID: voiceID,
		}
		if err := txn.Session().Create(&stem).Error; err != nil {
			return fmt.Errorf("%s: stem %q: %w", path, rec["name"], err)
		}

		count++
		if count%participleCommitEvery == 0 {
			if err := txn.Commit(); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			p.progress.Tick(StageParticipleStems, rec["name"])
			txn, err = database.NewTransaction(ctx, p.db)
			if err != nil {
				return err
			}
		}
	}
	if err := txn.Commit(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	result.add(StageParticipleStems, count)
	result.skip(StageParticipleStems, skipped)
	p.progress.Done(StageParticipleStems, count)
	p.progress.Skipped(StageParticipleStems, skipped)
	return nil
}

func newGerund(name string, rootID int64) any {
	return &schema.Gerund{Name: name, RootID: rootID}
}

func newInfinitive(name string, rootID int64) any {
	return &schema.Infinitive{Name: name, RootID: rootID}
}

// addRootForms loads a CSV of simple root-derived forms, each row a
// name plus the (root, hom) pair it derives from. Rows whose root
// cannot be resolved are counted and skipped.
func (p *Pipeline) addRootForms(ctx context.Context, key, stage string, roots RootMap, result *Result, newRow func(name string, rootID int64) any) error {
	path, err := p.settings.Path(key)
	if err != nil {
		return err
	}
	records, err := readRecords(path)
	if err != nil {
		return err
	}
	p.progress.Stage(stage)

	skipped := make(SkipSet)
	count := 0

	tErr := database.WithTransaction(ctx, p.db, func(tx *gorm.DB) error {
		for _, rec := range records {
			rootKey := RootKey{Name: rec["root"], Hom: rec["hom"]}
			rootID, ok := roots.Resolve(rootKey)
			if !ok {
				skipped.Add(rootKey)
				continue
			}
			if err := tx.Create(newRow(rec["name"], rootID)).Error; err != nil {
				return fmt.Errorf("form %q: %w", rec["name"], err)
			}
			count++
		}
		return nil
	})
	if tErr != nil {
		return fmt.Errorf("%s: %w", path, tErr)
	}

	result.add(stage, count)
	result.skip(stage, skipped)
	p.progress.Done(stage, count)
	p.progress.Skipped(stage, skipped)
	return nil
}
