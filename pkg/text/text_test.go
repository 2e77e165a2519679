package text_test

import (
	"testing"

	"github.com/glidefleet/intake/pkg/text"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	require.Equal(t, "MILES X LLC\nUS DOT 3916245", text.Normalize("  MILES  X   LLC \r\n\r\n US DOT  3916245 "))
	require.Equal(t, "", text.Normalize(" \r\n "))

	// trailing whitespace before a break must not survive the rejoin
	require.Equal(t, "TRUCK 4812\nODO 53193", text.Normalize("TRUCK 4812 \nODO 53193"))
}

func TestFirstLine(t *testing.T) {
	require.Equal(t, "TRUCK 4812", text.FirstLine("\n\n TRUCK   4812 \nsecond line", 20))
	require.Equal(t, "12345678901234567890", text.FirstLine("123456789012345678901234", 20))
	require.Equal(t, "abc", text.FirstLine("abc", 0))
	require.Equal(t, "", text.FirstLine("   ", 20))
}

func TestJoinLines(t *testing.T) {
	require.Equal(t, "MILES X LLC US DOT 3916245", text.JoinLines("MILES X LLC\n\nUS DOT 3916245\n"))
	require.Equal(t, "", text.JoinLines(""))
}
