package app

import (
	"context"
	"log/slog"

	"coolant/internal/hvac"
	"coolant/internal/notify"
	"coolant/internal/state"
)

// Fixed fallback messages for fetch failures that did not come through the
// gateway with a message of their own.
const (
	loadConditionersFallback = "Failed to load conditioners"
	loadLookupsFallback      = "Failed to load reference data"
)

// Loader orchestrates list and lookup fetches: loading/error bracketing
// around the network call, full replacement of the store's data on success.
type Loader struct {
	store  *state.Store
	api    hvac.API
	notify *notify.Center
	log    *slog.Logger
}

// NewLoader wires a Loader. The logger may be nil.
func NewLoader(store *state.Store, api hvac.API, center *notify.Center, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{store: store, api: api, notify: center, log: log}
}

// EnsureLoaded fetches the conditioner list if the store is still empty.
// Once data is present it is a no-op; only Refetch replaces loaded data.
// Overlapping calls are not de-duplicated: both fetches proceed and the
// store keeps whichever response lands last.
func (l *Loader) EnsureLoaded(ctx context.Context) error {
	if len(l.store.Snapshot().Conditioners) > 0 {
		return nil
	}
	return l.Refetch(ctx)
}

// Refetch unconditionally reloads the conditioner list and replaces the
// store's copy. Used after every successful mutation.
func (l *Loader) Refetch(ctx context.Context) error {
	l.store.SetLoading(true)
	l.store.SetErr("")
	defer l.store.SetLoading(false)

	list, err := l.api.ListConditioners(ctx)
	if err != nil {
		msg := hvac.UserMessage(err, loadConditionersFallback)
		l.store.SetErr(msg)
		l.notify.Error(msg)
		l.log.Warn("list fetch failed", "err", err)
		return err
	}

	l.store.SetConditioners(list)
	l.log.Debug("list refreshed", "count", len(list))
	return nil
}

// EnsureLookupsLoaded fetches the lookup bundle if it has not been loaded
// yet, keyed on the status collection being empty.
func (l *Loader) EnsureLookupsLoaded(ctx context.Context) error {
	if len(l.store.Snapshot().Lookups.Statuses) > 0 {
		return nil
	}
	return l.RefetchLookups(ctx)
}

// RefetchLookups unconditionally reloads the lookup bundle.
func (l *Loader) RefetchLookups(ctx context.Context) error {
	l.store.SetLoading(true)
	l.store.SetErr("")
	defer l.store.SetLoading(false)

	bundle, err := l.api.FetchLookups(ctx)
	if err != nil {
		msg := hvac.UserMessage(err, loadLookupsFallback)
		l.store.SetErr(msg)
		l.notify.Error(msg)
		l.log.Warn("lookup fetch failed", "err", err)
		return err
	}

	l.store.SetLookups(bundle)
	l.log.Debug("lookups refreshed",
		"statuses", len(bundle.Statuses),
		"types", len(bundle.Types),
		"manufacturers", len(bundle.Manufacturers))
	return nil
}
