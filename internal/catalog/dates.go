package catalog

import "time"

// DateLayout is the wire format for every date field in the API.
const DateLayout = "2006-01-02"

// ParseDate parses a wire-format date, reporting failures as a validation
// error on the named field.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, NewValidationError(field, "must be a valid date (YYYY-MM-DD)")
	}
	return t, nil
}
