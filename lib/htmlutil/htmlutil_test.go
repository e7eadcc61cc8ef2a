package htmlutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"  SKU: 683422\n\t", "SKU: 683422"},
		{"IN STOCK+5\n    at Houston Store", "IN STOCK+5 at Houston Store"},
		{"already clean", "already clean"},
		{"", ""},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, CleanText(test.input))
	}
}
