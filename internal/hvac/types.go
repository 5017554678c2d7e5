package hvac

import "time"

const isoDateLayout = "2006-01-02"

// Conditioner mirrors a record from the /conditioners collection.
type Conditioner struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Model            string `json:"model"`
	SerialNumber     string `json:"serialNumber"`
	Location         string `json:"location"`
	InstallationDate string `json:"installationDate"`
	StatusID         int64  `json:"statusId"`
	TypeID           int64  `json:"typeId"`
	ManufacturerID   int64  `json:"manufacturerId"`
	CreatedAt        string `json:"createdAt,omitempty"`
	UpdatedAt        string `json:"updatedAt,omitempty"`
}

// Draft is the create/update request body. The server assigns id and
// timestamps, so the draft carries neither.
type Draft struct {
	Name             string `json:"name"`
	Model            string `json:"model"`
	SerialNumber     string `json:"serialNumber"`
	Location         string `json:"location"`
	InstallationDate string `json:"installationDate"`
	StatusID         int64  `json:"statusId"`
	TypeID           int64  `json:"typeId"`
	ManufacturerID   int64  `json:"manufacturerId"`
}

// DraftOf captures an existing conditioner's editable fields for a PUT.
func DraftOf(c Conditioner) Draft {
	return Draft{
		Name:             c.Name,
		Model:            c.Model,
		SerialNumber:     c.SerialNumber,
		Location:         c.Location,
		InstallationDate: c.InstallationDate,
		StatusID:         c.StatusID,
		TypeID:           c.TypeID,
		ManufacturerID:   c.ManufacturerID,
	}
}

// Status is a /conditioner-statuses row.
type Status struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UnitType is a /conditioner-types row.
type UnitType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Manufacturer is a /manufacturers row.
type Manufacturer struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// Lookups bundles the three reference collections.
type Lookups struct {
	Statuses      []Status
	Types         []UnitType
	Manufacturers []Manufacturer
}

// ParsedInstallationDate returns the installation date as time.Time when possible.
func (c Conditioner) ParsedInstallationDate() time.Time {
	return parseDate(c.InstallationDate)
}

// ParsedUpdatedAt returns the parsed UpdatedAt timestamp.
func (c Conditioner) ParsedUpdatedAt() time.Time {
	return parseDate(c.UpdatedAt)
}

func parseDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, isoDateLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
