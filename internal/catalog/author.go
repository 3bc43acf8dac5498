package catalog

import "time"

// Author of one or more books. Natural ordering is (last_name, first_name).
type Author struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"first_name" validate:"required,max=100"`
	LastName    string     `json:"last_name" validate:"required,max=100"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
}

// Validate checks the author's fields, including that the death date does
// not precede the birth date when both are set.
func (a Author) Validate() error {
	if err := validateStruct(a); err != nil {
		return err
	}
	if a.DateOfBirth != nil && a.DateOfDeath != nil && a.DateOfDeath.Before(*a.DateOfBirth) {
		return NewValidationError("date_of_death", "must not be before date_of_birth")
	}
	return nil
}

// AgeOn computes the author's age in completed years as of the given date.
// Returns ErrMissingData when the birth date is unset.
func (a Author) AgeOn(today time.Time) (int, error) {
	if a.DateOfBirth == nil {
		return 0, ErrMissingData
	}
	birth := *a.DateOfBirth
	birthday := birthdayInYear(birth, today.Year())
	age := today.Year() - birth.Year()
	if birthday.After(truncateToDate(today)) {
		age--
	}
	return age, nil
}

// birthdayInYear maps a birth date onto the given year. A February 29
// birthday in a non-leap year rolls over to the first day of the following
// month; a December rollover wraps to January of the next year.
func birthdayInYear(birth time.Time, year int) time.Time {
	d := time.Date(year, birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
	if d.Month() == birth.Month() {
		return d
	}
	next := birth.Month() + 1
	if next > time.December {
		return time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(year, next, 1, 0, 0, 0, 0, time.UTC)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
