package ingest

import (
	"errors"
	"fmt"
)

// ErrUnknownEnum reports an abbreviation that no row of a closed
// enumerated category carries. Enumerated vocabularies are fixed before
// the data that references them, so an unknown abbreviation is a data
// defect and aborts the run.
var ErrUnknownEnum = errors.New("unknown enum value")

// Enums maps category to abbreviation to row id for every enumerated
// category written during the enums stage. The map is built once and
// passed explicitly to the stages that resolve abbreviations.
type Enums map[string]map[string]int64

// Resolve returns the id for abbr within category.
func (e Enums) Resolve(category, abbr string) (int64, error) {
	if id, ok := e[category][abbr]; ok {
		return id, nil
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknownEnum, category, abbr)
}

// ResolveOptional resolves abbr when present. An empty abbreviation maps
// to nil, for columns the source data leaves blank; a non-empty unknown
// abbreviation is still an error.
func (e Enums) ResolveOptional(category, abbr string) (*int64, error) {
	if abbr == "" {
		return nil, nil
	}
	id, err := e.Resolve(category, abbr)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// add registers one abbreviation under a category.
func (e Enums) add(category, abbr string, id int64) {
	m, ok := e[category]
	if !ok {
		m = make(map[string]int64)
		e[category] = m
	}
	m[abbr] = id
}
