package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	t.Run("parse valid codes", func(t *testing.T) {
		for code, label := range map[string]string{
			"m": "Maintenance",
			"o": "On loan",
			"a": "Available",
			"r": "Reserved",
		} {
			s, err := ParseStatus(code)
			assert.NoError(t, err)
			assert.True(t, s.Valid())
			assert.Equal(t, label, s.Label())
		}
	})

	t.Run("parse rejects unknown codes", func(t *testing.T) {
		_, err := ParseStatus("x")
		assert.Error(t, err)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestBookInstance_IsOverdue(t *testing.T) {
	today := date(2023, time.June, 15)

	t.Run("no due date", func(t *testing.T) {
		bi := BookInstance{Status: StatusOnLoan}
		assert.False(t, bi.IsOverdue(today))
	})

	t.Run("due date in the past", func(t *testing.T) {
		bi := BookInstance{Status: StatusOnLoan, DueBack: datePtr(2023, time.June, 14)}
		assert.True(t, bi.IsOverdue(today))
	})

	t.Run("due today is not overdue", func(t *testing.T) {
		bi := BookInstance{Status: StatusOnLoan, DueBack: datePtr(2023, time.June, 15)}
		assert.False(t, bi.IsOverdue(today))
	})

	t.Run("due date in the future", func(t *testing.T) {
		bi := BookInstance{Status: StatusOnLoan, DueBack: datePtr(2023, time.July, 6)}
		assert.False(t, bi.IsOverdue(today))
	})

	t.Run("overdue regardless of status", func(t *testing.T) {
		bi := BookInstance{Status: StatusReserved, DueBack: datePtr(2023, time.June, 1)}
		assert.True(t, bi.IsOverdue(today))
	})
}

func TestBookInstance_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		bi := BookInstance{Status: StatusAvailable, Imprint: "Penguin Classics, 2001"}
		assert.NoError(t, bi.Validate())
	})

	t.Run("unknown status", func(t *testing.T) {
		bi := BookInstance{Status: Status("z")}
		var verr *ValidationError
		assert.ErrorAs(t, bi.Validate(), &verr)
		assert.Equal(t, "status", verr.Fields[0].Field)
	})
}
