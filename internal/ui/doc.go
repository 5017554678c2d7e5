// Package ui implements coolant's terminal interface with Bubble Tea.
//
// # Views
//
//   - List: filterable table of all conditioners with a search input,
//     filter summary, and per-status counts in the header
//   - Detail: full record for one conditioner with foreign keys resolved
//   - Form: create/edit form with per-field validation messages
//   - Confirm: delete confirmation; a failed delete keeps it open
//   - Help: key binding overlay
//
// # Data flow
//
// The UI holds no data of its own. Commands drive the coordinators
// (EnsureLoaded on start, Refetch on demand, mutations from the form and
// confirm dialog); a redraw tick re-reads the store snapshot so loader
// completions and notification expiry show up without explicit plumbing.
// Filter keystrokes go straight into the store's filter state and the
// filtered view is recomputed from the next snapshot.
//
// # Key bindings
//
//   - enter: detail, n: new, e: edit, d: delete, r: refresh
//   - /: search, s/t/m: cycle status/type/manufacturer filter, c: clear
//   - T: cycle theme (persisted), ?: help, q or ctrl+c: quit
package ui
