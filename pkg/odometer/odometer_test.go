package odometer_test

import (
	"testing"

	"github.com/glidefleet/intake/pkg/odometer"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"34,672 km", "34672"},
		{"53193 mi", "53193"},
		{"40697", "40697"},
		{"  120305 miles ", "120305"},
		{"88.412 kilometers", "88412"},
		{"", ""},
		{"km", ""},
	}

	for _, test := range tests {
		require.Equal(t, test.want, odometer.Normalize(test.input), test.input)
	}
}

func TestFromText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ODO 53193", "53193"},
		{"odo: 34672", "34672"},
		{"TRIP A 123.4\n34672 km", "34672"},
		{"40697", "40697"},
		{"dash shows 1234567890", "1234567"},
		{"", ""},
		{"no reading here", ""},
	}

	for _, test := range tests {
		require.Equal(t, test.want, odometer.FromText(test.input), test.input)
	}
}
