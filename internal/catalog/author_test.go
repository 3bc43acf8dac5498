package catalog

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestAuthor_AgeOn(t *testing.T) {
	t.Run("birthday already passed this year", func(t *testing.T) {
		a := Author{FirstName: "Jane", LastName: "Doe", DateOfBirth: datePtr(1990, time.March, 10)}
		age, err := a.AgeOn(date(2023, time.June, 15))
		assert.NoError(t, err)
		assert.Equal(t, 33, age)
	})

	t.Run("birthday later this year", func(t *testing.T) {
		a := Author{DateOfBirth: datePtr(1990, time.September, 1)}
		age, err := a.AgeOn(date(2023, time.June, 15))
		assert.NoError(t, err)
		assert.Equal(t, 32, age)
	})

	t.Run("birthday today", func(t *testing.T) {
		a := Author{DateOfBirth: datePtr(1990, time.June, 15)}
		age, err := a.AgeOn(date(2023, time.June, 15))
		assert.NoError(t, err)
		assert.Equal(t, 33, age)
	})

	t.Run("february 29 birthday in a non-leap year", func(t *testing.T) {
		// Rolls over to March 1, which precedes June 15.
		a := Author{FirstName: "Jane", LastName: "Doe", DateOfBirth: datePtr(1992, time.February, 29)}
		age, err := a.AgeOn(date(2023, time.June, 15))
		assert.NoError(t, err)
		assert.Equal(t, 31, age)
	})

	t.Run("february 29 birthday in a leap year", func(t *testing.T) {
		a := Author{DateOfBirth: datePtr(1992, time.February, 29)}
		age, err := a.AgeOn(date(2024, time.February, 29))
		assert.NoError(t, err)
		assert.Equal(t, 32, age)
	})

	t.Run("stable across calls on the same day", func(t *testing.T) {
		a := Author{DateOfBirth: datePtr(1992, time.February, 29)}
		today := date(2023, time.January, 2)
		first, err := a.AgeOn(today)
		assert.NoError(t, err)
		second, err := a.AgeOn(today)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("missing birth date", func(t *testing.T) {
		a := Author{FirstName: "Jane", LastName: "Doe"}
		_, err := a.AgeOn(date(2023, time.June, 15))
		assert.ErrorIs(t, err, ErrMissingData)
	})
}

func TestBirthdayInYear(t *testing.T) {
	t.Run("february 29 rolls to march 1 in non-leap years", func(t *testing.T) {
		got := birthdayInYear(date(1992, time.February, 29), 2023)
		assert.Equal(t, date(2023, time.March, 1), got)
	})

	t.Run("february 29 kept in leap years", func(t *testing.T) {
		got := birthdayInYear(date(1992, time.February, 29), 2024)
		assert.Equal(t, date(2024, time.February, 29), got)
	})

	t.Run("december dates never overflow", func(t *testing.T) {
		got := birthdayInYear(date(1990, time.December, 31), 2023)
		assert.Equal(t, date(2023, time.December, 31), got)
	})
}

func TestAuthor_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		a := Author{FirstName: "Jane", LastName: "Doe"}
		assert.NoError(t, a.Validate())
	})

	t.Run("missing names", func(t *testing.T) {
		err := Author{}.Validate()
		var verr *ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Fields, 2)
	})

	t.Run("death before birth", func(t *testing.T) {
		a := Author{
			FirstName:   "Jane",
			LastName:    "Doe",
			DateOfBirth: datePtr(1990, time.March, 10),
			DateOfDeath: datePtr(1980, time.March, 10),
		}
		err := a.Validate()
		var verr *ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Equal(t, "date_of_death", verr.Fields[0].Field)
	})
}
