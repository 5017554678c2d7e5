package app

import (
	"context"
	"log/slog"
	"sync/atomic"

	"coolant/internal/hvac"
	"coolant/internal/notify"
)

// Fixed user-facing messages for the three mutations.
const (
	createdMessage = "Conditioner created successfully"
	updatedMessage = "Conditioner updated successfully"
	deletedMessage = "Conditioner deleted successfully"

	createFallback = "Failed to create conditioner"
	updateFallback = "Failed to update conditioner"
	deleteFallback = "Failed to delete conditioner"
)

// Mutator performs create/update/delete against the API. Every successful
// mutation is followed by an awaited list refresh, so the store never holds
// a locally-patched list; failures are re-raised to the caller after the
// error notification, so the invoking view can keep its dialog open.
type Mutator struct {
	api    hvac.API
	loader *Loader
	notify *notify.Center
	log    *slog.Logger
	busy   atomic.Bool
}

// NewMutator wires a Mutator. The logger may be nil.
func NewMutator(api hvac.API, loader *Loader, center *notify.Center, log *slog.Logger) *Mutator {
	if log == nil {
		log = slog.Default()
	}
	return &Mutator{api: api, loader: loader, notify: center, log: log}
}

// Busy reports whether a mutation is currently in flight. This flag is
// local to the mutator and distinct from the store's loading flag.
func (m *Mutator) Busy() bool {
	return m.busy.Load()
}

// Create submits a new conditioner and refreshes the list on success.
func (m *Mutator) Create(ctx context.Context, draft hvac.Draft) (*hvac.Conditioner, error) {
	m.busy.Store(true)
	defer m.busy.Store(false)

	created, err := m.api.CreateConditioner(ctx, draft)
	if err != nil {
		m.notify.Error(hvac.UserMessage(err, createFallback))
		m.log.Warn("create failed", "err", err)
		return nil, err
	}

	m.notify.Success(createdMessage)
	m.log.Info("conditioner created", "id", created.ID)
	_ = m.loader.Refetch(ctx)
	return created, nil
}

// Update replaces the conditioner with the given id and refreshes the list
// on success. The draft must carry every field; the API has no partial
// update.
func (m *Mutator) Update(ctx context.Context, id int64, draft hvac.Draft) (*hvac.Conditioner, error) {
	m.busy.Store(true)
	defer m.busy.Store(false)

	updated, err := m.api.UpdateConditioner(ctx, id, draft)
	if err != nil {
		m.notify.Error(hvac.UserMessage(err, updateFallback))
		m.log.Warn("update failed", "id", id, "err", err)
		return nil, err
	}

	m.notify.Success(updatedMessage)
	m.log.Info("conditioner updated", "id", id)
	_ = m.loader.Refetch(ctx)
	return updated, nil
}

// Delete removes the conditioner with the given id and refreshes the list
// on success.
func (m *Mutator) Delete(ctx context.Context, id int64) error {
	m.busy.Store(true)
	defer m.busy.Store(false)

	if err := m.api.DeleteConditioner(ctx, id); err != nil {
		m.notify.Error(hvac.UserMessage(err, deleteFallback))
		m.log.Warn("delete failed", "id", id, "err", err)
		return err
	}

	m.notify.Success(deletedMessage)
	m.log.Info("conditioner deleted", "id", id)
	_ = m.loader.Refetch(ctx)
	return nil
}
