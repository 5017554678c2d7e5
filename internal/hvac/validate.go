package hvac

import (
	"strings"
	"time"
)

// Field limits match what the server accepts.
const (
	maxNameLen     = 100
	maxModelLen    = 50
	maxSerialLen   = 50
	maxLocationLen = 200
)

// FieldErrors maps draft field names to user-facing validation messages.
type FieldErrors map[string]string

// Validate checks a draft before submission. Validation failures never reach
// the network layer; the form displays them per field.
func (d Draft) Validate() FieldErrors {
	errs := FieldErrors{}

	switch {
	case strings.TrimSpace(d.Name) == "":
		errs["name"] = "Name is required"
	case len(d.Name) > maxNameLen:
		errs["name"] = "Name must be less than 100 characters"
	}

	switch {
	case strings.TrimSpace(d.Model) == "":
		errs["model"] = "Model is required"
	case len(d.Model) > maxModelLen:
		errs["model"] = "Model must be less than 50 characters"
	}

	switch {
	case strings.TrimSpace(d.SerialNumber) == "":
		errs["serialNumber"] = "Serial number is required"
	case len(d.SerialNumber) > maxSerialLen:
		errs["serialNumber"] = "Serial number must be less than 50 characters"
	}

	switch {
	case strings.TrimSpace(d.Location) == "":
		errs["location"] = "Location is required"
	case len(d.Location) > maxLocationLen:
		errs["location"] = "Location must be less than 200 characters"
	}

	switch {
	case strings.TrimSpace(d.InstallationDate) == "":
		errs["installationDate"] = "Installation date is required"
	case !validDate(d.InstallationDate):
		errs["installationDate"] = "Invalid date format"
	}

	if d.StatusID <= 0 {
		errs["statusId"] = "Status is required"
	}
	if d.TypeID <= 0 {
		errs["typeId"] = "Type is required"
	}
	if d.ManufacturerID <= 0 {
		errs["manufacturerId"] = "Manufacturer is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validDate(value string) bool {
	for _, layout := range []string{isoDateLayout, time.RFC3339} {
		if _, err := time.Parse(layout, strings.TrimSpace(value)); err == nil {
			return true
		}
	}
	return false
}
