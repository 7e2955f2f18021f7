package schema

import (
	"fmt"

	"github.com/vyakarana-io/kosha/internal/database"
)

// tabler is implemented by every model in this package.
type tabler interface {
	TableName() string
}

// AllModels returns every model the migrator manages, in creation order.
func AllModels() []any {
	return []any{
		&Tag{},
		&Modification{},
		&VClass{},
		&Person{},
		&Number{},
		&Mode{},
		&Voice{},
		&Gender{},
		&Case{},
		&SandhiType{},
		&GenderGroup{},
		&GenderGroupMember{},
		&SandhiRule{},
		&Indeclinable{},
		&VerbPrefix{},
		&VerbEnding{},
		&Root{},
		&Paradigm{},
		&Verb{},
		&ParticipleStem{},
		&Gerund{},
		&Infinitive{},
		&NominalEnding{},
		&Stem{},
		&StemIrregularity{},
		&Word{},
		&PrefixedRoot{},
		&PrefixedRootPrefix{},
	}
}

// TableNames returns the name of every managed table, in creation order.
func TableNames() []string {
	models := AllModels()
	names := make([]string, len(models))
	for i, model := range models {
		names[i] = model.(tabler).TableName()
	}
	return names
}

// CreateAll creates every managed table that does not already exist and
// returns the names of the tables it created. Existing tables are left
// untouched.
func CreateAll(db database.Database) ([]string, error) {
	migrator := db.GORM().Migrator()

	var created []string
	for _, model := range AllModels() {
		if !migrator.HasTable(model) {
			created = append(created, model.(tabler).TableName())
		}
	}

	if err := db.GORM().AutoMigrate(AllModels()...); err != nil {
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return created, nil
}

// DropAll drops every managed table in reverse creation order. Tables
// that do not exist are skipped.
func DropAll(db database.Database) error {
	migrator := db.GORM().Migrator()
	models := AllModels()
	for i := len(models) - 1; i >= 0; i-- {
		if !migrator.HasTable(models[i]) {
			continue
		}
		if err := migrator.DropTable(models[i]); err != nil {
			return fmt.Errorf("drop table %s: %w", models[i].(tabler).TableName(), err)
		}
	}
	return nil
}
