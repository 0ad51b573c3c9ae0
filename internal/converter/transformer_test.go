package converter

import (
	"testing"

	"github.com/ginjaninja78/apology/internal/translator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadLeft(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1", "0001"},
		{"12", "0012"},
		{"", "0000"},
		{"0000", "0000"},
		{"1072", "1072"},
		{"12345", "12345"},
		{" 1", "00 1"},
		{"é", "000é"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PadLeft(tt.input, 4, '0'), "input %q", tt.input)
	}
}

func TestTrimField_IsIdempotent(t *testing.T) {
	for _, input := range []string{"  Jo ", "\tSpringfield\n", "plain", "", "   "} {
		once := TrimField(input)
		assert.Equal(t, once, TrimField(once), "input %q", input)
	}
}

func TestRedactIfContains(t *testing.T) {
	assert.Equal(t, "", RedactIfContains("+44 20 7946 0958", "+"))
	assert.Equal(t, "", RedactIfContains("020 7946 0958 ext+1", "+"))
	assert.Equal(t, "217-555-0100", RedactIfContains("217-555-0100", "+"))
	assert.Equal(t, "+1", RedactIfContains("+1", ""))
}

func TestTransformer_ActionChains(t *testing.T) {
	tr := NewTransformer(translator.New())

	tests := []struct {
		raw  string
		want string
	}{
		{"0", "USA"},
		{"1", "CAN"},
		{"1072", "GBR"},
		{"42", "0042"},
		{"9999", "9999"},
	}

	for _, tt := range tests {
		country, err := tr.Transform(tt.raw, padActions[0], translateActions[0])
		require.NoError(t, err)
		assert.Equal(t, tt.want, country, "raw %q", tt.raw)
	}

	phone, err := tr.Transform("  217-555-0100 ", phoneActions...)
	require.NoError(t, err)
	assert.Equal(t, "217-555-0100", phone)
}

func TestTransformer_Errors(t *testing.T) {
	tr := NewTransformer(nil)

	_, err := tr.Transform("x", Action{Type: "shout"})
	assert.EqualError(t, err, "transformation 'shout' failed: unknown transformation type: shout")

	_, err = tr.Transform("x", Action{Type: ActionTranslate})
	assert.Error(t, err)

	_, err = tr.Transform("x", Action{Type: ActionPadZeros})
	assert.Error(t, err)
}
