// Package refdata holds the curated ingredient reference database: an
// immutable mapping from canonical ingredient name to its safety record,
// plus an alias index. Built once at process start and safe for concurrent
// reads without locking.
package refdata

import (
	"fmt"
	"sort"
	"strings"

	"labelscan/internal/domain"
)

// Database provides fast in-memory lookups over the reference records.
// It is immutable after construction.
type Database struct {
	byName  map[string]*domain.IngredientRecord
	byAlias map[string]string // alias -> canonical name
	names   []string          // sorted canonical names, for deterministic scans
}

// New builds a Database from reference records. Canonical names must be
// globally unique; aliases may not shadow a canonical name of a different
// record. Returns domain.ErrReferenceDataLoad on any violation.
func New(records []domain.IngredientRecord) (*Database, error) {
	byName := make(map[string]*domain.IngredientRecord, len(records))
	byAlias := make(map[string]string)

	for idx := range records {
		rec := &records[idx]
		name := Canonicalize(rec.CanonicalName)
		if name == "" {
			return nil, fmt.Errorf("%w: empty canonical name at index %d", domain.ErrReferenceDataLoad, idx)
		}
		if _, exists := byName[name]; exists {
			return nil, fmt.Errorf("%w: duplicate canonical name %q", domain.ErrReferenceDataLoad, name)
		}
		byName[name] = rec
	}

	for idx := range records {
		rec := &records[idx]
		name := Canonicalize(rec.CanonicalName)
		for _, alias := range rec.Aliases {
			alias = Canonicalize(alias)
			if alias == "" || alias == name {
				continue
			}
			if owner, exists := byName[alias]; exists && Canonicalize(owner.CanonicalName) != name {
				return nil, fmt.Errorf("%w: alias %q shadows canonical name of %q", domain.ErrReferenceDataLoad, alias, owner.CanonicalName)
			}
			if prev, exists := byAlias[alias]; exists && prev != name {
				return nil, fmt.Errorf("%w: alias %q claimed by both %q and %q", domain.ErrReferenceDataLoad, alias, prev, name)
			}
			byAlias[alias] = name
		}
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Database{byName: byName, byAlias: byAlias, names: names}, nil
}

// Canonicalize lower-cases and whitespace-collapses a name for use as a
// database key.
func Canonicalize(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Lookup returns the record for an exact canonical name match.
func (d *Database) Lookup(name string) (*domain.IngredientRecord, bool) {
	rec, ok := d.byName[Canonicalize(name)]
	return rec, ok
}

// LookupAlias returns the record a known alias points at.
func (d *Database) LookupAlias(alias string) (*domain.IngredientRecord, bool) {
	name, ok := d.byAlias[Canonicalize(alias)]
	if !ok {
		return nil, false
	}
	rec, ok := d.byName[name]
	return rec, ok
}

// Names returns the sorted canonical names. Callers must not mutate the
// returned slice.
func (d *Database) Names() []string {
	return d.names
}

// Len returns the number of reference records.
func (d *Database) Len() int {
	return len(d.byName)
}
