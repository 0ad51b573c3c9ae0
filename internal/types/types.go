// =============================================================================
// Apology Splitter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - converter (decoding and grouping)
//   - csvparser (reading)
//   - csvwriter (partitioned writing)
//   - report (summary workbook)
//
// =============================================================================

package types

// =============================================================================
// RECORD
// =============================================================================

// InputColumns is the number of positional columns in an input row:
// id, email, first_name, last_name, address1, city, region, postal_code,
// country, phone.
const InputColumns = 10

// OutputColumns is the number of columns written per output row. It is one
// more than InputColumns because address2 is synthesized.
const OutputColumns = 11

// Record is one normalized row of recipient/address data.
// Records are values: once decoded they are never modified.
type Record struct {
	ID         string
	Email      string
	FirstName  string
	LastName   string
	Address1   string
	Address2   string // always empty, no input column feeds it
	City       string
	Region     string
	PostalCode string
	Country    string // ISO-3166 alpha-3 code, or the padded source code
	Phone      string // empty when the source number was redacted
}

// Fields returns the record's columns in output order.
func (r Record) Fields() []string {
	return []string{
		r.ID,
		r.Email,
		r.FirstName,
		r.LastName,
		r.Address1,
		r.Address2,
		r.City,
		r.Region,
		r.PostalCode,
		r.Country,
		r.Phone,
	}
}

// Key returns the group key the record belongs to.
func (r Record) Key() GroupKey {
	return GroupKey{Country: r.Country, Region: r.Region}
}

// =============================================================================
// GROUPING TYPES
// =============================================================================

// GroupKey identifies a group of records sharing a country and region.
// It is comparable and used directly as a map key, so "A_B"/"C" and
// "A"/"B_C" are distinct groups.
type GroupKey struct {
	Country string
	Region  string
}

// String renders the key as "<country>_<region>", the form used in output
// file names.
func (k GroupKey) String() string {
	return k.Country + "_" + k.Region
}

// Groups is an ordered partition of records.
type Groups struct {
	// Keys lists every group key once, in order of first appearance in the
	// input.
	Keys []GroupKey

	// Records holds each group's records in input order.
	Records map[GroupKey][]Record
}

// Len returns the number of groups.
func (g *Groups) Len() int {
	return len(g.Keys)
}

// Total returns the number of records across all groups.
func (g *Groups) Total() int {
	total := 0
	for _, key := range g.Keys {
		total += len(g.Records[key])
	}
	return total
}
