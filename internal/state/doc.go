// Package state provides the shared, thread-safe store at the center of
// coolant.
//
// # Overview
//
// The Store is the sole owner of the conditioner list, the lookup bundle,
// the active filter state, and the fetch lifecycle flags. Coordinators
// write into it after network calls; views read immutable Snapshots and
// derive what they display from them. No other component holds its own
// copy of the data.
//
//	Coordinators:                   Views:
//	┌───────────────────┐          ┌──────────────────┐
//	│ SetConditioners() │          │ store.Snapshot() │
//	│ SetLookups()      │──mutex──→│   .Filtered()    │
//	│ SetLoading/SetErr │          │   .StatusName()  │
//	└───────────────────┘          └──────────────────┘
//
// # Filtering
//
// Filtered is a pure function of (conditioners, filters): the same inputs
// always yield the same ordered result, and the source list is never
// mutated. Clauses are AND-ed; the search clause is a case-insensitive
// substring match over name, model, and serial number, and each non-zero
// id filter requires an exact foreign key match. With no active clause the
// full list is returned in server order.
//
// # Filter lifecycle
//
// Filter state is independent of the data: it can be set before anything
// has loaded, survives navigation between views, and is only cleared by
// ResetFilters. PatchFilters merges per field, so concurrent widgets
// updating different fields do not clobber each other.
//
// # Lookup resolution
//
// StatusName and TypeName degrade to "Unknown" when an id has no lookup
// row; they never fail. Manufacturer returns the row and an ok flag since
// it carries more than a display name.
//
// # Concurrency
//
// A sync.RWMutex guards all fields. Writers hold the lock only while
// copying, never across network I/O. Overlapping fetches are not
// de-duplicated; SetConditioners is last-write-wins and the store settles
// on whichever response lands last.
package state
