package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanLabel(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"Python", "Python"},
		{"  Python  ", "Python"},
		{"分享\n发现", "分享发现"},
		{"Q &   A", "Q & A"},
		{"\tmixed \n whitespace\t", "mixed whitespace"},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, CleanLabel(test.in), "input: %q", test.in)
	}
}
