package console

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
		ok    bool
	}{
		{"8500", 850000, true},
		{"8499.99", 849999, true},
		{"$129.00", 12900, true},
		{"1,250.5", 125050, true},
		{"0.07", 7, true},
		{".5", 50, true},
		{"-10.25", -1025, true},
		{"", 0, false},
		{"$", 0, false},
		{"abc", 0, false},
		{"12.x", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseMoney(tc.in)
		require.Equal(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			require.Equal(t, tc.cents, got, "input %q", tc.in)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	require.Equal(t, "$129.00", formatMoney(12900))
	require.Equal(t, "$0.07", formatMoney(7))
	require.Equal(t, "-$10.25", formatMoney(-1025))
}

func TestValidatePasswordStrength(t *testing.T) {
	ok, _ := validatePasswordStrength("Abcdef12")
	require.True(t, ok)

	for _, weak := range []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
		ok, why := validatePasswordStrength(weak)
		require.False(t, ok, "password %q", weak)
		require.NotEmpty(t, why)
	}
}
