package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coolant/internal/hvac"
	"coolant/internal/logging"
	"coolant/internal/notify"
	"coolant/internal/state"
)

// fakeAPI scripts responses for the coordinators under test.
type fakeAPI struct {
	lists      [][]hvac.Conditioner // consumed one per ListConditioners call
	listErr    error
	listCalls  int
	lookups    hvac.Lookups
	lookupErr  error
	lookupCall int

	created   *hvac.Conditioner
	createErr error
	updated   *hvac.Conditioner
	updateErr error
	deleteErr error
}

func (f *fakeAPI) ListConditioners(ctx context.Context) ([]hvac.Conditioner, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	if len(f.lists) == 0 {
		return nil, nil
	}
	next := f.lists[0]
	if len(f.lists) > 1 {
		f.lists = f.lists[1:]
	}
	return next, nil
}

func (f *fakeAPI) GetConditioner(ctx context.Context, id int64) (*hvac.Conditioner, error) {
	return nil, errors.New("not scripted")
}

func (f *fakeAPI) CreateConditioner(ctx context.Context, draft hvac.Draft) (*hvac.Conditioner, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func (f *fakeAPI) UpdateConditioner(ctx context.Context, id int64, draft hvac.Draft) (*hvac.Conditioner, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updated, nil
}

func (f *fakeAPI) DeleteConditioner(ctx context.Context, id int64) error {
	return f.deleteErr
}

func (f *fakeAPI) FetchLookups(ctx context.Context) (hvac.Lookups, error) {
	f.lookupCall++
	if f.lookupErr != nil {
		return hvac.Lookups{}, f.lookupErr
	}
	return f.lookups, nil
}

var _ hvac.API = (*fakeAPI)(nil)

func newHarness(api *fakeAPI) (*state.Store, *notify.Center, *Loader, *Mutator) {
	store := &state.Store{}
	center := notify.NewCenter(time.Minute)
	loader := NewLoader(store, api, center, logging.Discard())
	mutator := NewMutator(api, loader, center, logging.Discard())
	return store, center, loader, mutator
}

func TestLoader_EnsureLoadedFetchesOnceThenNoOps(t *testing.T) {
	api := &fakeAPI{lists: [][]hvac.Conditioner{{{ID: 1, Name: "Unit A", StatusID: 1}}}}
	store, _, loader, _ := newHarness(api)

	require.NoError(t, loader.EnsureLoaded(context.Background()))
	snap := store.Snapshot()
	require.Len(t, snap.Conditioners, 1)
	assert.Equal(t, snap.Conditioners, snap.Filtered())

	// Data present: further ensures are no-ops.
	require.NoError(t, loader.EnsureLoaded(context.Background()))
	require.NoError(t, loader.EnsureLoaded(context.Background()))
	assert.Equal(t, 1, api.listCalls)

	// Refetch is always unconditional.
	require.NoError(t, loader.Refetch(context.Background()))
	assert.Equal(t, 2, api.listCalls)
}

func TestLoader_BracketsLoadingAndError(t *testing.T) {
	api := &fakeAPI{listErr: errors.New("plain failure")}
	store, center, loader, _ := newHarness(api)

	err := loader.EnsureLoaded(context.Background())
	require.Error(t, err)

	snap := store.Snapshot()
	assert.False(t, snap.Loading, "loading must be cleared on the failure path")
	assert.Equal(t, loadConditionersFallback, snap.Err)
	assert.Empty(t, snap.Conditioners)

	active := center.Active()
	require.Len(t, active, 1)
	assert.Equal(t, notify.LevelError, active[0].Level)
	assert.Equal(t, loadConditionersFallback, active[0].Message)

	// A later successful refetch clears the recorded error.
	api.listErr = nil
	api.lists = [][]hvac.Conditioner{{{ID: 2}}}
	require.NoError(t, loader.Refetch(context.Background()))
	snap = store.Snapshot()
	assert.Empty(t, snap.Err)
	assert.Len(t, snap.Conditioners, 1)
}

func TestLoader_LookupsKeyedOnStatuses(t *testing.T) {
	api := &fakeAPI{lookups: hvac.Lookups{
		Statuses: []hvac.Status{{ID: 1, Name: "Active"}},
		Types:    []hvac.UnitType{{ID: 1, Name: "Split"}},
	}}
	store, _, loader, _ := newHarness(api)

	require.NoError(t, loader.EnsureLookupsLoaded(context.Background()))
	require.NoError(t, loader.EnsureLookupsLoaded(context.Background()))
	assert.Equal(t, 1, api.lookupCall)
	assert.Equal(t, "Active", store.Snapshot().StatusName(1))

	require.NoError(t, loader.RefetchLookups(context.Background()))
	assert.Equal(t, 2, api.lookupCall)
}

func TestLoader_LookupFailureUsesNormalizedMessage(t *testing.T) {
	api := &fakeAPI{lookupErr: &hvac.APIError{Kind: hvac.FailureServer, StatusCode: 503, UserMsg: "Server error: 503"}}
	store, center, loader, _ := newHarness(api)

	require.Error(t, loader.EnsureLookupsLoaded(context.Background()))
	assert.Equal(t, "Server error: 503", store.Snapshot().Err)
	require.Len(t, center.Active(), 1)
	assert.Equal(t, "Server error: 503", center.Active()[0].Message)
}

func TestMutator_CreateRefetchesExactlyOnce(t *testing.T) {
	api := &fakeAPI{
		created: &hvac.Conditioner{ID: 7, Name: "New Unit"},
		lists:   [][]hvac.Conditioner{{{ID: 7, Name: "New Unit"}, {ID: 1, Name: "Old Unit"}}},
	}
	store, center, _, mutator := newHarness(api)

	created, err := mutator.Create(context.Background(), hvac.Draft{Name: "New Unit"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, 1, api.listCalls, "exactly one refetch after a successful create")

	// The store mirrors the post-create server list, not a local append.
	snap := store.Snapshot()
	require.Len(t, snap.Conditioners, 2)
	assert.Equal(t, int64(7), snap.Conditioners[0].ID)

	require.NotEmpty(t, center.Active())
	assert.Equal(t, createdMessage, center.Active()[0].Message)
	assert.False(t, mutator.Busy())
}

func TestMutator_CreateFailureLeavesStoreUntouched(t *testing.T) {
	api := &fakeAPI{
		createErr: &hvac.APIError{Kind: hvac.FailureServer, StatusCode: 409, UserMsg: "Serial number already exists"},
	}
	store, center, loader, mutator := newHarness(api)

	// Pre-populate so we can observe that nothing changes.
	api.lists = [][]hvac.Conditioner{{{ID: 1, Name: "Unit A"}}}
	require.NoError(t, loader.Refetch(context.Background()))
	before := store.Snapshot().Conditioners
	callsBefore := api.listCalls

	_, err := mutator.Create(context.Background(), hvac.Draft{})
	require.Error(t, err, "failure is re-raised so the caller can react")

	assert.Equal(t, before, store.Snapshot().Conditioners, "no optimistic insert")
	assert.Equal(t, callsBefore, api.listCalls, "no refetch on failure")

	active := center.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "Serial number already exists", active[0].Message)
	assert.Equal(t, notify.LevelError, active[0].Level)
	assert.False(t, mutator.Busy())
}

func TestMutator_UpdateAndDelete(t *testing.T) {
	api := &fakeAPI{
		updated: &hvac.Conditioner{ID: 3, Name: "Renamed"},
		lists:   [][]hvac.Conditioner{{{ID: 3, Name: "Renamed"}}},
	}
	store, center, _, mutator := newHarness(api)

	updated, err := mutator.Update(context.Background(), 3, hvac.Draft{Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, updatedMessage, center.Active()[0].Message)
	assert.Equal(t, 1, api.listCalls)

	require.NoError(t, mutator.Delete(context.Background(), 3))
	assert.Equal(t, 2, api.listCalls)
	messages := center.Active()
	assert.Equal(t, deletedMessage, messages[len(messages)-1].Message)
	assert.Len(t, store.Snapshot().Conditioners, 1)
}

func TestMutator_DeleteFailureFallbackMessage(t *testing.T) {
	api := &fakeAPI{deleteErr: errors.New("socket closed")}
	_, center, _, mutator := newHarness(api)

	require.Error(t, mutator.Delete(context.Background(), 9))
	require.Len(t, center.Active(), 1)
	assert.Equal(t, deleteFallback, center.Active()[0].Message)
}
