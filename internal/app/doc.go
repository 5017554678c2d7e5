// Package app wires coolant together and owns the two coordinators that
// mediate between the HTTP client and the shared store.
//
// # Loader
//
// The Loader performs list and lookup fetches with consistent bracketing:
// loading set, previous error cleared, network call, data stored or error
// recorded, loading cleared on every path. EnsureLoaded and
// EnsureLookupsLoaded fetch only while the store is still empty, so
// several views mounting at once do not multiply requests once data is in;
// Refetch and RefetchLookups are unconditional and are what mutations use.
//
// Overlapping fetches are deliberately not de-duplicated. Both proceed and
// the store keeps whichever response lands last, which is eventually
// consistent with the final server state. An in-flight guard or a request
// generation counter would tighten this; so far it has not been worth it.
//
// # Mutator
//
// The Mutator runs the create/update/delete state machine: busy flag up,
// API call, then either a success notification plus an awaited Refetch, or
// an error notification with the gateway's normalized message and the
// failure re-raised to the caller. There is no automatic retry and no
// optimistic local mutation; the list shown is always the server's.
//
// # Run
//
// Run loads configuration and preferences, opens the debug log, builds the
// client, store, notification center, and coordinators, and hands
// everything to the UI until the context is cancelled.
package app
