package hvac

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDraft() Draft {
	return Draft{
		Name:             "Lobby Unit",
		Model:            "AX-900",
		SerialNumber:     "SN-0042",
		Location:         "Lobby, 1st floor",
		InstallationDate: "2024-03-01",
		StatusID:         1,
		TypeID:           2,
		ManufacturerID:   3,
	}
}

func TestDraftValidate_ValidDraftPasses(t *testing.T) {
	assert.Nil(t, validDraft().Validate())
}

func TestDraftValidate_FieldMessages(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Draft)
		field   string
		message string
	}{
		{"missing name", func(d *Draft) { d.Name = "" }, "name", "Name is required"},
		{"blank name", func(d *Draft) { d.Name = "   " }, "name", "Name is required"},
		{"long name", func(d *Draft) { d.Name = strings.Repeat("x", 101) }, "name", "Name must be less than 100 characters"},
		{"missing model", func(d *Draft) { d.Model = "" }, "model", "Model is required"},
		{"long model", func(d *Draft) { d.Model = strings.Repeat("x", 51) }, "model", "Model must be less than 50 characters"},
		{"missing serial", func(d *Draft) { d.SerialNumber = "" }, "serialNumber", "Serial number is required"},
		{"missing location", func(d *Draft) { d.Location = "" }, "location", "Location is required"},
		{"long location", func(d *Draft) { d.Location = strings.Repeat("x", 201) }, "location", "Location must be less than 200 characters"},
		{"missing date", func(d *Draft) { d.InstallationDate = "" }, "installationDate", "Installation date is required"},
		{"bad date", func(d *Draft) { d.InstallationDate = "not-a-date" }, "installationDate", "Invalid date format"},
		{"zero status", func(d *Draft) { d.StatusID = 0 }, "statusId", "Status is required"},
		{"zero type", func(d *Draft) { d.TypeID = 0 }, "typeId", "Type is required"},
		{"negative manufacturer", func(d *Draft) { d.ManufacturerID = -1 }, "manufacturerId", "Manufacturer is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)
			errs := draft.Validate()
			assert.Equal(t, tt.message, errs[tt.field])
			assert.Len(t, errs, 1)
		})
	}
}

func TestDraftValidate_CollectsAllFields(t *testing.T) {
	errs := Draft{}.Validate()
	assert.Len(t, errs, 8)
}

func TestDraftOf(t *testing.T) {
	c := Conditioner{
		ID:               7,
		Name:             "Unit",
		Model:            "M",
		SerialNumber:     "S",
		Location:         "L",
		InstallationDate: "2023-01-02",
		StatusID:         1,
		TypeID:           2,
		ManufacturerID:   3,
		CreatedAt:        "2023-01-02T10:00:00Z",
	}
	draft := DraftOf(c)
	assert.Equal(t, c.Name, draft.Name)
	assert.Equal(t, c.InstallationDate, draft.InstallationDate)
	assert.Equal(t, c.ManufacturerID, draft.ManufacturerID)
}
