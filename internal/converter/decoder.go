package converter

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ginjaninja78/apology/internal/translator"
	"github.com/ginjaninja78/apology/internal/types"
)

// ErrColumnCount is returned for rows that do not have exactly
// types.InputColumns columns.
var ErrColumnCount = errors.New("wrong number of columns")

// Input column positions. address2 has no input column.
const (
	colID = iota
	colEmail
	colFirstName
	colLastName
	colAddress1
	colCity
	colRegion
	colPostalCode
	colCountry
	colPhone
)

// phoneRedactionMarker marks internationally formatted numbers, which are
// dropped rather than rewritten.
const phoneRedactionMarker = "+"

var (
	textActions      = []Action{{Type: ActionTrim}}
	padActions       = []Action{{Type: ActionPadZeros, Length: translator.CodeLength}}
	translateActions = []Action{{Type: ActionTranslate}}
	phoneActions     = []Action{
		{Type: ActionRedactIfContains, Value: phoneRedactionMarker},
		{Type: ActionTrim},
	}
)

// DecodeStats counts normalizations applied by a Decoder.
type DecodeStats struct {
	Rows                  int
	RedactedPhones        int
	UntranslatedCountries int
}

// Decoder turns raw export rows into Records. It satisfies
// csvparser.RowDecoder. A Decoder keeps running counts and is meant for a
// single read.
type Decoder struct {
	translator  *translator.Translator
	transformer *Transformer
	logger      *slog.Logger
	stats       DecodeStats
}

// NewDecoder creates a Decoder backed by tr. A nil logger uses
// slog.Default().
func NewDecoder(tr *translator.Translator, logger *slog.Logger) *Decoder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Decoder{
		translator:  tr,
		transformer: NewTransformer(tr),
		logger:      logger,
	}
}

// Decode normalizes one row.
func (d *Decoder) Decode(row []string) (types.Record, error) {
	if len(row) != types.InputColumns {
		return types.Record{}, fmt.Errorf("%w: expected %d, got %d", ErrColumnCount, types.InputColumns, len(row))
	}

	text := make([]string, types.InputColumns)
	for _, col := range []int{colID, colEmail, colFirstName, colLastName, colAddress1, colCity, colRegion, colPostalCode} {
		value, err := d.transformer.Transform(row[col], textActions...)
		if err != nil {
			return types.Record{}, err
		}
		text[col] = value
	}

	// The raw code is padded without trimming; an untranslated code is kept
	// in its padded form.
	code, err := d.transformer.Transform(row[colCountry], padActions...)
	if err != nil {
		return types.Record{}, fmt.Errorf("country: %w", err)
	}
	country, err := d.transformer.Transform(code, translateActions...)
	if err != nil {
		return types.Record{}, fmt.Errorf("country: %w", err)
	}
	if _, ok := d.translator.Lookup(code); !ok {
		d.stats.UntranslatedCountries++
		d.logger.Debug("country code has no translation", "code", code, "id", text[colID])
	}

	phone, err := d.transformer.Transform(row[colPhone], phoneActions...)
	if err != nil {
		return types.Record{}, fmt.Errorf("phone: %w", err)
	}
	if phone == "" && TrimField(row[colPhone]) != "" {
		d.stats.RedactedPhones++
	}

	d.stats.Rows++

	return types.Record{
		ID:         text[colID],
		Email:      text[colEmail],
		FirstName:  text[colFirstName],
		LastName:   text[colLastName],
		Address1:   text[colAddress1],
		Address2:   "",
		City:       text[colCity],
		Region:     text[colRegion],
		PostalCode: text[colPostalCode],
		Country:    country,
		Phone:      phone,
	}, nil
}

// Stats returns the counts accumulated so far.
func (d *Decoder) Stats() DecodeStats {
	return d.stats
}
