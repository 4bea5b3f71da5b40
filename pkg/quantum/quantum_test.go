package quantum

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestToQuantum(t *testing.T) {
	cases := []struct {
		value    string
		decimals int32
		expected string
	}{
		{"1.5", 8, "150000000"},
		{"0.00000001", 8, "1"},
		{"50000", 8, "5000000000000"},
		{"0", 8, "0"},
		{"1.999999999", 8, "199999999"}, // sub-quantum precision truncates
	}
	for _, tc := range cases {
		v, err := decimal.NewFromString(tc.value)
		require.NoError(t, err)
		require.Equal(t, tc.expected, ToQuantum(v, tc.decimals), "value %s", tc.value)
	}
}

func TestFromQuantum(t *testing.T) {
	v, err := FromQuantum("150000000", 8)
	require.NoError(t, err)
	require.True(t, v.Equal(decimal.RequireFromString("1.5")))

	_, err = FromQuantum("not-a-number", 8)
	require.Error(t, err)
}

func TestParseToQuantum(t *testing.T) {
	q, err := ParseToQuantum("1.5", 8)
	require.NoError(t, err)
	require.Equal(t, "150000000", q)

	_, err = ParseToQuantum("", 8)
	require.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	original := decimal.RequireFromString("123.456")
	back, err := FromQuantum(ToQuantum(original, 8), 8)
	require.NoError(t, err)
	require.True(t, original.Equal(back))
}
