package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordFields_OutputOrder(t *testing.T) {
	r := Record{
		ID: "1", Email: "a@b.com", FirstName: "Jo", LastName: "Doe",
		Address1: "1 Main St", City: "Springfield", Region: "IL",
		PostalCode: "62704", Country: "USA", Phone: "217-555-0100",
	}

	fields := r.Fields()

	assert.Len(t, fields, OutputColumns)
	assert.Equal(t, []string{"1", "a@b.com", "Jo", "Doe", "1 Main St", "", "Springfield", "IL", "62704", "USA", "217-555-0100"}, fields)
}

func TestGroupKey(t *testing.T) {
	key := Record{Country: "USA", Region: "IL"}.Key()

	assert.Equal(t, GroupKey{Country: "USA", Region: "IL"}, key)
	assert.Equal(t, "USA_IL", key.String())
	assert.NotEqual(t, GroupKey{Country: "A_B", Region: "C"}, GroupKey{Country: "A", Region: "B_C"})
}

func TestGroups_Counts(t *testing.T) {
	il := GroupKey{Country: "USA", Region: "IL"}
	ca := GroupKey{Country: "USA", Region: "CA"}
	groups := &Groups{
		Keys:    []GroupKey{il, ca},
		Records: map[GroupKey][]Record{il: {{ID: "1"}, {ID: "3"}}, ca: {{ID: "2"}}},
	}

	assert.Equal(t, 2, groups.Len())
	assert.Equal(t, 3, groups.Total())
}
