package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Cafe Sydney", "Cafe Sydney"},
		{"ham!", "ham"},
		{"pho 88", "pho"},
		{"  fish &  chips ", "fish chips"},
		{"123", ""},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, Normalize(tc.raw), "raw=%q", tc.raw)
	}
}

func TestWholeWord(t *testing.T) {
	// "ham" must not match inside "Hamburger" but must match "Ham Sandwich".
	require.False(t, WholeWord("ham", "Hamburger"))
	require.True(t, WholeWord("ham", "Ham Sandwich"))

	require.True(t, WholeWord("cafe", "Cafe Sydney"))
	require.True(t, WholeWord("CAFE", "central cafe"))
	require.False(t, WholeWord("cafe", "Cafeteria"))

	// Multi-word terms match as a whole phrase.
	require.True(t, WholeWord("margherita pizza", "Wood Fired Margherita Pizza"))
	require.False(t, WholeWord("margherita pizza", "Margherita Pasta"))
}

func TestWholeWordRegexInputIsLiteral(t *testing.T) {
	// Regex metacharacters in user input are stripped or quoted, never
	// interpreted.
	require.False(t, WholeWord(".*", "anything"))
	require.True(t, WholeWord("fish & chips", "Harry's Fish Chips"))
}

func TestMatchesAliases(t *testing.T) {
	c := Candidate{
		Name:       "Bar Luca",
		SimpleName: "bar luca",
		Aliases:    []string{"Luca Burgers", "BL Sydney"},
	}
	require.True(t, Matches("luca burgers", c))
	require.True(t, Matches("bar", c))
	require.False(t, Matches("lucas", c))
	require.False(t, Matches("", c))
}
