package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coolant/internal/hvac"
	"coolant/internal/state"
)

func lookupSnapshot() state.Snapshot {
	return state.Snapshot{
		Lookups: hvac.Lookups{
			Statuses:      []hvac.Status{{ID: 1, Name: "Active"}, {ID: 2, Name: "In repair"}},
			Types:         []hvac.UnitType{{ID: 1, Name: "Split"}},
			Manufacturers: []hvac.Manufacturer{{ID: 1, Name: "Daikin", Country: "Japan"}},
		},
	}
}

func TestConditionerRow_ResolvesLookups(t *testing.T) {
	snap := lookupSnapshot()
	row := conditionerRow(snap, hvac.Conditioner{
		ID:               7,
		Name:             "Lobby Unit",
		Model:            "AX-900",
		SerialNumber:     "SN-0042",
		Location:         "Lobby",
		InstallationDate: "2024-03-01",
		StatusID:         2,
		TypeID:           1,
		ManufacturerID:   1,
	})

	require.Len(t, row, 9)
	assert.Equal(t, "7", row[0])
	assert.Equal(t, "Lobby Unit", row[1])
	assert.Equal(t, "In repair", row[4])
	assert.Equal(t, "Split", row[5])
	assert.Equal(t, "Daikin", row[6])
	assert.Equal(t, "2024-03-01", row[8])
}

func TestConditionerRow_UnresolvedKeysDegrade(t *testing.T) {
	row := conditionerRow(state.Snapshot{}, hvac.Conditioner{ID: 1, StatusID: 9, TypeID: 9, ManufacturerID: 9})
	assert.Equal(t, state.UnknownName, row[4])
	assert.Equal(t, state.UnknownName, row[5])
	assert.Equal(t, state.UnknownName, row[6])
}

func TestNextFilterID_CyclesThroughInactive(t *testing.T) {
	ids := []int64{10, 20, 30}

	assert.Equal(t, int64(10), nextFilterID(ids, 0))
	assert.Equal(t, int64(20), nextFilterID(ids, 10))
	assert.Equal(t, int64(30), nextFilterID(ids, 20))
	assert.Equal(t, int64(0), nextFilterID(ids, 30), "past the last row the filter goes inactive")

	// Stale id (row no longer in lookups) resets to inactive.
	assert.Equal(t, int64(0), nextFilterID(ids, 99))

	assert.Equal(t, int64(0), nextFilterID(nil, 0))
}
