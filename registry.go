package kosha

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vyakarana-io/kosha/internal/database"
	"github.com/vyakarana-io/kosha/schema"
)

// Registry holds the enumerated-category lookups read back from a
// populated store: row ids keyed by name or abbreviation, abbreviations
// keyed by name or decimal id, and gender-group membership sets. A
// Registry is built once by BuildRegistry and never mutated afterward.
type Registry struct {
	ids     map[string]map[string]int64
	abbrs   map[string]map[string]string
	genders map[int64]map[int64]struct{}
}

// BuildRegistry reads every enumerated category back from the store,
// including gender groups and their membership rows. Queries run on a
// short-lived session; no transaction is held open.
func BuildRegistry(ctx context.Context, db database.Database) (*Registry, error) {
	r := &Registry{
		ids:     make(map[string]map[string]int64),
		abbrs:   make(map[string]map[string]string),
		genders: make(map[int64]map[int64]struct{}),
	}
	session := db.Session(ctx)

	for _, table := range schema.EnumTables() {
		var rows []schema.EnumRow
		if err := session.Table(table.Table).Order("id").Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("read %s: %w", table.Table, err)
		}
		r.index(table.Category, rows)
	}

	var groups []schema.EnumRow
	if err := session.Table("gender_groups").Order("id").Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("read gender_groups: %w", err)
	}
	r.index(schema.CategoryGenderGroup, groups)
	for _, group := range groups {
		r.genders[group.ID] = make(map[int64]struct{})
	}

	var members []schema.GenderGroupMember
	if err := session.Find(&members).Error; err != nil {
		return nil, fmt.Errorf("read gender_group_members: %w", err)
	}
	for _, member := range members {
		set, ok := r.genders[member.GroupID]
		if !ok {
			set = make(map[int64]struct{})
			r.genders[member.GroupID] = set
		}
		set[member.GenderID] = struct{}{}
	}

	return r, nil
}

// index registers one category's rows under both string forms: ids by
// name and abbreviation, abbreviations by name and decimal id.
func (r *Registry) index(category string, rows []schema.EnumRow) {
	ids := make(map[string]int64, 2*len(rows))
	abbrs := make(map[string]string, 2*len(rows))
	for _, row := range rows {
		ids[row.Name] = row.ID
		ids[row.Abbr] = row.ID
		abbrs[row.Name] = row.Abbr
		abbrs[strconv.FormatInt(row.ID, 10)] = row.Abbr
	}
	r.ids[category] = ids
	r.abbrs[category] = abbrs
}

// ID resolves a name or abbreviation to its row id within category.
func (r *Registry) ID(category, key string) (int64, bool) {
	id, ok := r.ids[category][key]
	return id, ok
}

// Abbr resolves a name, or a row id written in decimal, to the row's
// abbreviation within category.
func (r *Registry) Abbr(category, key string) (string, bool) {
	abbr, ok := r.abbrs[category][key]
	return abbr, ok
}

// GenderSet returns the member gender ids of a gender group. Groups with
// no declared members yield an empty set, not a miss.
func (r *Registry) GenderSet(groupID int64) (map[int64]struct{}, bool) {
	set, ok := r.genders[groupID]
	return set, ok
}
