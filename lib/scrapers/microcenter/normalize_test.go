package microcenter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanTitle(t *testing.T) {
	cases := []struct {
		raw      string
		expected string
	}{
		{
			raw:      "ASUS NVIDIA GeForce RTX 5090 TUF GDDR7 24GB Graphics Card",
			expected: "ASUS RTX 5090 TUF  24GB",
		},
		{
			raw:      "Sapphire AMD Radeon RX 9070 XT Pulse GDDR6 16GB Graphics Card",
			expected: "Sapphire RX 9070 XT Pulse  16GB",
		},
		{
			raw:      "PNY RTX 5060 Verto 8GB PCIe 5.0",
			expected: "PNY RTX 5060 Verto 8GB",
		},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, CleanTitle(test.raw))
	}
}

func TestParseStock(t *testing.T) {
	cases := []struct {
		raw      string
		expected int
	}{
		{"IN STOCK+5 at Houston Store", 5},
		{"SOLD OUT", 0},
		{"", 0},
		{"IN STOCK+18 at Houston Store", 18},
		{"Buy In Store", 0},
	}

	for _, test := range cases {
		count, err := ParseStock(test.raw)
		require.NoError(t, err)
		require.Equal(t, test.expected, count)
	}
}

func TestParseStockRejectsGarbage(t *testing.T) {
	_, err := ParseStock("Backorder expected soon")
	require.ErrorIs(t, err, ErrParse)
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		raw      string
		expected float64
	}{
		{"$1,299.99", 1299.99},
		{"$829.99", 829.99},
		{"699.99", 699.99},
		{"$2,000", 2000},
	}

	for _, test := range cases {
		price, err := ParsePrice(test.raw)
		require.NoError(t, err)
		require.Equal(t, test.expected, price)
	}
}

func TestParsePriceRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"Call for price", ""} {
		_, err := ParsePrice(raw)
		require.ErrorIs(t, err, ErrParse)
	}
}
