// =============================================================================
// Apology Splitter - Country Code Translator
// =============================================================================
//
// The translator maps four-digit country codes from the legacy export to
// ISO-3166 alpha-3 codes. The table is fixed and is built once at startup;
// callers share a single *Translator by pointer. Nothing mutates it after
// New returns, so it is safe to read from any goroutine.
//
// =============================================================================

package translator

import "sort"

// CodeLength is the width of a source country code after zero-padding.
const CodeLength = 4

// Translator is an immutable source code -> ISO alpha-3 lookup table.
type Translator struct {
	codes map[string]string
}

// New builds a Translator over the full source table.
func New() *Translator {
	return &Translator{codes: sourceTable()}
}

// Translate returns the ISO alpha-3 code for code, or code itself when the
// table has no entry for it. It never fails.
func (t *Translator) Translate(code string) string {
	if iso, ok := t.codes[code]; ok {
		return iso
	}
	return code
}

// Lookup returns the ISO alpha-3 code for code and whether it was found.
func (t *Translator) Lookup(code string) (string, bool) {
	iso, ok := t.codes[code]
	return iso, ok
}

// Len returns the number of source codes in the table.
func (t *Translator) Len() int {
	return len(t.codes)
}

// Codes returns every source code in ascending order.
func (t *Translator) Codes() []string {
	codes := make([]string, 0, len(t.codes))
	for code := range t.codes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// SourcesFor returns the source codes that translate to iso, in ascending
// order. More than one result means the table maps several codes onto the
// same country.
func (t *Translator) SourcesFor(iso string) []string {
	var sources []string
	for code, target := range t.codes {
		if target == iso {
			sources = append(sources, code)
		}
	}
	sort.Strings(sources)
	return sources
}
