package argopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindByAbbrevName(t *testing.T) {
	names := []LongOption{
		{Name: "verbose"},
		{Name: "version"},
		{Name: "output"},
	}
	getName := func(o *LongOption) string { return o.Name }

	testCases := []struct {
		name      string
		needle    string
		wantKind  MatchKind
		wantMatch string
	}{
		{"exact match", "output", ExactMatch, "output"},
		{"unambiguous abbreviation", "out", AbbreviatedMatch, "output"},
		{"ambiguous abbreviation", "ver", AmbiguousMatch, ""},
		{"exact match among names sharing a prefix", "verbose", ExactMatch, "verbose"},
		{"no match", "zzz", NoMatch, ""},
		{"full-length needle is not an abbreviation of itself plus more", "versions", NoMatch, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			match, kind := FindByAbbrevName(tc.needle, names, getName)
			assert.Equal(t, tc.wantKind, kind)
			if tc.wantMatch == "" {
				assert.Nil(t, match)
			} else if assert.NotNil(t, match) {
				assert.Equal(t, tc.wantMatch, match.Name)
			}
		})
	}
}

func TestFindByChar(t *testing.T) {
	opts := []ShortOption{{Ch: 'a'}, {Ch: 'b'}}
	getChar := func(o *ShortOption) rune { return o.Ch }

	match, ok := FindByChar('b', opts, getChar)
	assert.True(t, ok)
	assert.Equal(t, 'b', match.Ch)

	_, ok = FindByChar('z', opts, getChar)
	assert.False(t, ok)
}

func TestJaroWinkler(t *testing.T) {
	assert.Equal(t, 1.0, jaroWinkler("martha", "martha"))
	assert.InDelta(t, 0.0, jaroWinkler("abc", ""), 1e-9)
	assert.Greater(t, jaroWinkler("martha", "marhta"), 0.9)
	assert.Less(t, jaroWinkler("martha", "zzzzzz"), 0.3)
}

func TestSuggest(t *testing.T) {
	opts := []LongOption{{Name: "verbose"}, {Name: "version"}, {Name: "output"}}
	name := func(o *LongOption) string { return o.Name }

	s, ok := Suggest("verbos", opts, name)
	assert.True(t, ok)
	assert.Equal(t, "verbose", s)

	_, ok = Suggest("completely-unrelated-xyz", opts, name)
	assert.False(t, ok)
}
