package carrier_test

import (
	"testing"

	"github.com/glidefleet/intake/pkg/carrier"

	"github.com/stretchr/testify/require"
)

func TestParseLabels(t *testing.T) {
	parsed := carrier.Parse("MILES X LLC US DOT 3916245 MC 1447165")

	require.Equal(t, "3916245", parsed.DOT)
	require.Equal(t, "1447165", parsed.MC)
	require.Equal(t, carrier.TypeDOT, parsed.PreferredType)
	require.Equal(t, "3916245", parsed.PreferredNum)
}

func TestParseLabelVariants(t *testing.T) {
	tests := []struct {
		name string

		text string
		typ  carrier.IDType
		num  string
	}{
		{
			name: "dot with separator",

			text: "USDOT# 3916245",
			typ:  carrier.TypeDOT,
			num:  "3916245",
		},
		{
			name: "dot without us prefix",

			text: "DOT: 3916245",
			typ:  carrier.TypeDOT,
			num:  "3916245",
		},
		{
			name: "mc only",

			text: "MC 1447165",
			typ:  carrier.TypeMC,
			num:  "1447165",
		},
		{
			name: "six digit dot accepted as near match",

			text: "US DOT 391624",
			typ:  carrier.TypeDOT,
			num:  "391624",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			parsed := carrier.Parse(test.text)

			require.Equal(t, test.typ, parsed.PreferredType)
			require.Equal(t, test.num, parsed.PreferredNum)
		})
	}
}

func TestParseDigits(t *testing.T) {
	tests := []struct {
		name string

		text string

		dot string
		mc  string

		typ carrier.IDType
		num string
	}{
		{
			name: "seven digits is a dot number",

			text: "1234567",
			dot:  "1234567",
			typ:  carrier.TypeDOT,
			num:  "1234567",
		},
		{
			name: "five digits is an mc number",

			text: "12345",
			mc:   "12345",
			typ:  carrier.TypeMC,
			num:  "12345",
		},
		{
			name: "concatenated pair splits dot first",

			text: "39162451447165",
			dot:  "3916245",
			mc:   "1447165",
			typ:  carrier.TypeDOT,
			num:  "3916245",
		},
		{
			name: "overlong run truncates to dot length",

			text: "123456789",
			typ:  carrier.TypeDOT,
			num:  "1234567",
		},
		{
			name: "short run is unusable",

			text: "123",
			typ:  carrier.TypeDOT,
			num:  "123",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			parsed := carrier.ParseDigits(test.text)

			require.Equal(t, test.dot, parsed.DOT)
			require.Equal(t, test.mc, parsed.MC)
			require.Equal(t, test.typ, parsed.PreferredType)
			require.Equal(t, test.num, parsed.PreferredNum)
		})
	}
}

func TestExtractDOT(t *testing.T) {
	require.Equal(t, "3916245", carrier.ExtractDOT("US DOT 3916245"))
	require.Equal(t, "1234567", carrier.ExtractDOT("1234567"))
	require.Equal(t, "", carrier.ExtractDOT("MC 1447165"))
}

func TestValidate(t *testing.T) {
	require.NoError(t, carrier.Validate(carrier.TypeDOT, ""))
	require.NoError(t, carrier.Validate(carrier.TypeDOT, "1234567"))
	require.NoError(t, carrier.Validate(carrier.TypeMC, "12345"))
	require.NoError(t, carrier.Validate(carrier.TypeMC, "1234567"))
	require.NoError(t, carrier.Validate(carrier.TypeCA, "anything-goes"))

	var nonDigitErr *carrier.NonDigitError

	require.ErrorAs(t, carrier.Validate(carrier.TypeDOT, "123 4567"), &nonDigitErr)
	require.ErrorAs(t, carrier.Validate(carrier.TypeMC, "MC12345"), &nonDigitErr)

	var lengthErr *carrier.LengthError

	require.ErrorAs(t, carrier.Validate(carrier.TypeDOT, "123456"), &lengthErr)
	require.Equal(t, 6, lengthErr.Got)

	require.ErrorAs(t, carrier.Validate(carrier.TypeMC, "1234"), &lengthErr)
	require.ErrorAs(t, carrier.Validate(carrier.TypeMC, "12345678"), &lengthErr)
}
