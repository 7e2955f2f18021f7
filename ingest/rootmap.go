package ingest

import "sort"

// RootKey identifies a verb root by name and homonym index. Hom is ""
// for roots that need no disambiguation; the resource readers normalize
// absent and empty homonym fields to that value, so keys built from YAML
// documents and CSV records compare equal.
type RootKey struct {
	Name string
	Hom  string
}

// String renders the key as it appears in diagnostics, name#hom.
func (k RootKey) String() string {
	if k.Hom == "" {
		return k.Name
	}
	return k.Name + "#" + k.Hom
}

// RootMap resolves a RootKey to the row id assigned when the root was
// written. It is built by the roots stage and passed to every stage that
// references roots.
type RootMap map[RootKey]int64

// Resolve looks up the exact (name, homonym) pair. Records whose key is
// missing are counted and skipped by the calling stage, never matched
// against a different homonym.
func (m RootMap) Resolve(key RootKey) (int64, bool) {
	id, ok := m[key]
	return id, ok
}

// SkipSet accumulates the distinct root keys a stage failed to resolve.
type SkipSet map[RootKey]struct{}

// Add records a missed key.
func (s SkipSet) Add(key RootKey) {
	s[key] = struct{}{}
}

// Len returns the number of distinct missed keys.
func (s SkipSet) Len() int {
	return len(s)
}

// Keys returns the missed keys sorted by name then homonym, for stable
// reporting.
func (s SkipSet) Keys() []RootKey {
	keys := make([]RootKey, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Name != keys[j].Name {
			return keys[i].Name < keys[j].Name
		}
		return keys[i].Hom < keys[j].Hom
	})
	return keys
}
