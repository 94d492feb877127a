package argopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_Aggregates(t *testing.T) {
	p := &Parser{Options: sampleOptions(), Settings: DefaultParserSettings()}
	analysis := Parse([]string{"--verbose", "pos1", "--bogus"}, p)

	assert.True(t, analysis.HasProblems())
	good := analysis.Root.GoodItems()
	if assert.Len(t, good, 2) {
		assert.Equal(t, ItemOption, good[0].Kind)
		assert.Equal(t, ItemPositional, good[1].Kind)
	}
	problems := analysis.Root.ProblemItems()
	if assert.Len(t, problems, 1) {
		assert.Equal(t, UnknownLong, problems[0].Kind)
	}
}

func TestArgs_FromOS_StripsProgName(t *testing.T) {
	a := ArgsFromOS([]string{"/usr/bin/prog", "--verbose"})
	assert.True(t, a.HasProgName())
	assert.Equal(t, []string{"--verbose"}, a.Values())
	name, ok := a.ProgName()
	assert.True(t, ok)
	assert.Equal(t, "/usr/bin/prog", name)

	b := NewArgs([]string{"--verbose"})
	assert.False(t, b.HasProgName())
	assert.Equal(t, []string{"--verbose"}, b.Values())
	name, ok = b.ProgName()
	assert.False(t, ok)
	assert.Equal(t, "", name)
}

func TestArgs_FromOS_Empty(t *testing.T) {
	a := ArgsFromOS(nil)
	assert.False(t, a.HasProgName())
	assert.Empty(t, a.Values())
	_, ok := a.ProgName()
	assert.False(t, ok)
}

func TestParseRaw_IsByteExact(t *testing.T) {
	invalid := "--output=\xff\xfe"
	p := &Parser{Options: sampleOptions(), Settings: DefaultParserSettings()}
	analysis := ParseRaw([]RawArg{invalid}, p)

	good := analysis.Root.GoodItems()
	if assert.Len(t, good, 1) {
		assert.Equal(t, "\xff\xfe", good[0].Data)
	}
}
