package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coolant/internal/hvac"
)

func TestNewEditForm_PrefillsFromConditioner(t *testing.T) {
	snap := lookupSnapshot()
	c := hvac.Conditioner{
		ID:               5,
		Name:             "Lobby Unit",
		Model:            "AX-900",
		SerialNumber:     "SN-0042",
		Location:         "Lobby",
		InstallationDate: "2024-03-01",
		StatusID:         2,
		TypeID:           1,
		ManufacturerID:   1,
	}

	f := newEditForm(snap, c)
	assert.True(t, f.editing)
	assert.Equal(t, int64(5), f.editID)
	assert.Equal(t, "Lobby Unit", f.inputs[fieldName].Value())
	assert.Equal(t, "2024-03-01", f.inputs[fieldDate].Value())
	assert.Equal(t, 1, f.statusIdx, "status 2 is the second lookup row")
	assert.Equal(t, 0, f.typeIdx)
	assert.Equal(t, 0, f.mfrIdx)

	// Round trip: the draft carries the same ids back.
	draft := f.draft(snap)
	assert.Equal(t, hvac.DraftOf(c), draft)
}

func TestNewEditForm_StaleForeignKeysUnset(t *testing.T) {
	snap := lookupSnapshot()
	f := newEditForm(snap, hvac.Conditioner{StatusID: 99, TypeID: 99, ManufacturerID: 99})
	assert.Equal(t, -1, f.statusIdx)
	assert.Equal(t, -1, f.typeIdx)
	assert.Equal(t, -1, f.mfrIdx)
	assert.Equal(t, int64(0), f.draft(snap).StatusID)
}

func TestFormDraft_TrimsInputs(t *testing.T) {
	snap := lookupSnapshot()
	f := newCreateForm(snap)
	f.inputs[fieldName].SetValue("  Lobby Unit  ")
	f.inputs[fieldSerial].SetValue(" SN-1 ")

	draft := f.draft(snap)
	assert.Equal(t, "Lobby Unit", draft.Name)
	assert.Equal(t, "SN-1", draft.SerialNumber)
}

func TestFormDraft_EmptyFormFailsValidationPerField(t *testing.T) {
	snap := lookupSnapshot()
	f := newCreateForm(snap)

	errs := f.draft(snap).Validate()
	require.NotNil(t, errs)
	for field := 0; field < fieldCount; field++ {
		assert.Contains(t, errs, jsonFieldNames[field])
	}
}

func TestCyclePicker_WrapsThroughUnset(t *testing.T) {
	snap := lookupSnapshot()
	f := newCreateForm(snap)
	f.setFocus(fieldStatus)

	require.Equal(t, -1, f.statusIdx)
	f.cyclePicker(snap, 1)
	assert.Equal(t, 0, f.statusIdx)
	f.cyclePicker(snap, 1)
	assert.Equal(t, 1, f.statusIdx)
	f.cyclePicker(snap, 1)
	assert.Equal(t, -1, f.statusIdx, "past the last option the picker is unset again")
	f.cyclePicker(snap, -1)
	assert.Equal(t, 1, f.statusIdx)
}

func TestSetFocus_WrapsAndTogglesInputs(t *testing.T) {
	snap := lookupSnapshot()
	f := newCreateForm(snap)

	assert.True(t, f.inputs[fieldName].Focused())

	f.setFocus(fieldModel)
	assert.False(t, f.inputs[fieldName].Focused())
	assert.True(t, f.inputs[fieldModel].Focused())

	f.setFocus(fieldCount)
	assert.Equal(t, fieldName, f.focus)

	f.setFocus(-1)
	assert.Equal(t, fieldManufacturer, f.focus)
}
