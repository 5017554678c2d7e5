package state

import (
	"strings"
	"sync"

	"coolant/internal/hvac"
)

// Filters narrows the displayed conditioner list. A zero id means the
// corresponding clause is inactive; an empty search string disables the
// search clause.
type Filters struct {
	Search         string
	StatusID       int64
	TypeID         int64
	ManufacturerID int64
}

// Active reports whether any clause is active.
func (f Filters) Active() bool {
	return f != Filters{}
}

// FilterPatch is a shallow-merge update to Filters. Nil fields keep their
// previous value; set fields win, last write per field.
type FilterPatch struct {
	Search         *string
	StatusID       *int64
	TypeID         *int64
	ManufacturerID *int64
}

// Snapshot is the store's state as seen by one reader: the authoritative
// conditioner list, the lookup bundle, active filters, and fetch flags.
type Snapshot struct {
	Conditioners []hvac.Conditioner
	Lookups      hvac.Lookups
	Filters      Filters
	Loading      bool
	Err          string // empty when the last fetch succeeded
}

// Store owns the shared application state. It is the only holder of the
// conditioner list and lookup bundle; everything else reads snapshots and
// issues commands back through the coordinators.
type Store struct {
	mu           sync.RWMutex
	conditioners []hvac.Conditioner
	lookups      hvac.Lookups
	filters      Filters
	loading      bool
	err          string
}

// SetConditioners replaces the conditioner list wholesale. No merging: the
// list is always a verbatim mirror of the last successful fetch.
func (s *Store) SetConditioners(list []hvac.Conditioner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conditioners = cloneConditioners(list)
}

// SetLookups replaces the lookup bundle wholesale.
func (s *Store) SetLookups(bundle hvac.Lookups) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookups = cloneLookups(bundle)
}

// PatchFilters merges the set fields of the patch into the current filter
// state. Unset fields retain their previous value.
func (s *Store) PatchFilters(patch FilterPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.Search != nil {
		s.filters.Search = *patch.Search
	}
	if patch.StatusID != nil {
		s.filters.StatusID = *patch.StatusID
	}
	if patch.TypeID != nil {
		s.filters.TypeID = *patch.TypeID
	}
	if patch.ManufacturerID != nil {
		s.filters.ManufacturerID = *patch.ManufacturerID
	}
}

// ResetFilters restores the default all-empty filter state.
func (s *Store) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = Filters{}
}

// SetLoading records whether a list or lookup fetch is in flight.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// SetErr records the user-facing message of the last failed fetch. An empty
// string clears it.
func (s *Store) SetErr(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
}

// Snapshot returns a copy of the current state, independent of the store.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Conditioners: cloneConditioners(s.conditioners),
		Lookups:      cloneLookups(s.lookups),
		Filters:      s.filters,
		Loading:      s.loading,
		Err:          s.err,
	}
}

// Filtered returns the conditioners passing every active filter clause, in
// source order. It is a pure function of the snapshot's list and filters
// and never mutates the list it was computed from.
func (s Snapshot) Filtered() []hvac.Conditioner {
	return FilterConditioners(s.Conditioners, s.Filters)
}

// FilterConditioners applies the filter predicate to a list. Clauses are
// AND-ed; an entity with no active clause failing passes. With no active
// clause the full list comes back unchanged.
func FilterConditioners(list []hvac.Conditioner, f Filters) []hvac.Conditioner {
	if !f.Active() {
		return list
	}
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]hvac.Conditioner, 0, len(list))
	for _, c := range list {
		if search != "" && !matchesSearch(c, search) {
			continue
		}
		if f.StatusID != 0 && c.StatusID != f.StatusID {
			continue
		}
		if f.TypeID != 0 && c.TypeID != f.TypeID {
			continue
		}
		if f.ManufacturerID != 0 && c.ManufacturerID != f.ManufacturerID {
			continue
		}
		out = append(out, c)
	}
	return out
}

// matchesSearch reports whether the lowercased needle is a substring of the
// conditioner's name, model, or serial number. Any one match suffices.
func matchesSearch(c hvac.Conditioner, needle string) bool {
	return strings.Contains(strings.ToLower(c.Name), needle) ||
		strings.Contains(strings.ToLower(c.Model), needle) ||
		strings.Contains(strings.ToLower(c.SerialNumber), needle)
}

// UnknownName is returned by the name resolvers when a foreign key has no
// matching lookup row, including before lookups have loaded.
const UnknownName = "Unknown"

// StatusName resolves a status id against the lookup bundle.
func (s Snapshot) StatusName(id int64) string {
	for _, status := range s.Lookups.Statuses {
		if status.ID == id {
			return status.Name
		}
	}
	return UnknownName
}

// TypeName resolves a unit type id against the lookup bundle.
func (s Snapshot) TypeName(id int64) string {
	for _, t := range s.Lookups.Types {
		if t.ID == id {
			return t.Name
		}
	}
	return UnknownName
}

// Manufacturer resolves a manufacturer id. Unlike the name resolvers it
// returns the whole row, so callers must handle the missing case.
func (s Snapshot) Manufacturer(id int64) (hvac.Manufacturer, bool) {
	for _, m := range s.Lookups.Manufacturers {
		if m.ID == id {
			return m, true
		}
	}
	return hvac.Manufacturer{}, false
}

// StatusCounts tallies conditioners per resolved status name, for the
// summary line above the list.
func (s Snapshot) StatusCounts() map[string]int {
	counts := make(map[string]int)
	for _, c := range s.Conditioners {
		counts[s.StatusName(c.StatusID)]++
	}
	return counts
}

func cloneConditioners(list []hvac.Conditioner) []hvac.Conditioner {
	if len(list) == 0 {
		return nil
	}
	dup := make([]hvac.Conditioner, len(list))
	copy(dup, list)
	return dup
}

func cloneLookups(bundle hvac.Lookups) hvac.Lookups {
	out := hvac.Lookups{}
	if len(bundle.Statuses) > 0 {
		out.Statuses = make([]hvac.Status, len(bundle.Statuses))
		copy(out.Statuses, bundle.Statuses)
	}
	if len(bundle.Types) > 0 {
		out.Types = make([]hvac.UnitType, len(bundle.Types))
		copy(out.Types, bundle.Types)
	}
	if len(bundle.Manufacturers) > 0 {
		out.Manufacturers = make([]hvac.Manufacturer, len(bundle.Manufacturers))
		copy(out.Manufacturers, bundle.Manufacturers)
	}
	return out
}
