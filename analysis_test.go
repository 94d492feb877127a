package argopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalysis_NestedCommandItemSets(t *testing.T) {
	var lintOpts OptionSet
	lintOpts.AddLong("strict", Flag)
	var cmds CommandSet
	cmds.AddCommand(Command{Name: "lint", Options: lintOpts})

	p := &Parser{Commands: &cmds, Settings: DefaultParserSettings()}
	analysis := Parse([]string{"lint", "--strict", "file.go"}, p)

	assert.Len(t, analysis.Root.Items, 1)
	commandItem := analysis.Root.Items[0]
	assert.Equal(t, ItemCommand, commandItem.Item.Kind)
	if assert.NotNil(t, commandItem.SubAnalysis) {
		assert.Equal(t, "lint", commandItem.SubAnalysis.CommandName)
		assert.Len(t, commandItem.SubAnalysis.Items, 2)
		assert.Equal(t, []string{"file.go"}, commandItem.SubAnalysis.Positionals())
	}
}

func TestItemSet_UsedCountValues(t *testing.T) {
	p := &Parser{Options: sampleOptions(), Settings: DefaultParserSettings()}
	analysis := Parse([]string{"-v", "--output=a", "-ob", "--output=c"}, p)

	outputSpec := ByPair('o', "output")
	assert.True(t, analysis.Root.Used(outputSpec))
	assert.Equal(t, 3, analysis.Root.Count(outputSpec))

	first, ok := analysis.Root.FirstValue(outputSpec)
	assert.True(t, ok)
	assert.Equal(t, "a", first)

	last, ok := analysis.Root.LastValue(outputSpec)
	assert.True(t, ok)
	assert.Equal(t, "c", last)

	assert.Equal(t, []string{"a", "b", "c"}, analysis.Root.AllValues(outputSpec))

	assert.False(t, analysis.Root.Used(ByLong("version")))
}

func TestItemSet_FirstLastUsedOf(t *testing.T) {
	p := &Parser{Options: sampleOptions(), Settings: DefaultParserSettings()}
	analysis := Parse([]string{"--output=a", "-v"}, p)

	specs := []FindSpec{ByLong("verbose"), ByLong("output")}
	firstIdx, ok := analysis.Root.FirstUsedOf(specs)
	assert.True(t, ok)
	assert.Equal(t, 1, firstIdx) // output comes first positionally, at specs[1]

	lastIdx, ok := analysis.Root.LastUsedOf(specs)
	assert.True(t, ok)
	assert.Equal(t, 0, lastIdx) // verbose comes last positionally, at specs[0]
}

func TestItemSet_FlagState(t *testing.T) {
	var opts OptionSet
	opts.AddLong("color", Flag)
	opts.AddLong("no-color", Flag)
	p := &Parser{Options: &opts, Settings: DefaultParserSettings()}

	positive := []FindSpec{ByLong("color")}
	negative := []FindSpec{ByLong("no-color")}

	analysis := Parse([]string{"--color", "--no-color"}, p)
	value, ok := analysis.Root.FlagState(positive, negative)
	assert.True(t, ok)
	assert.False(t, value)

	analysis = Parse([]string{"--no-color", "--color"}, p)
	value, ok = analysis.Root.FlagState(positive, negative)
	assert.True(t, ok)
	assert.True(t, value)

	analysis = Parse(nil, p)
	_, ok = analysis.Root.FlagState(positive, negative)
	assert.False(t, ok)
}

func TestAnalysis_FirstProblem_DescendsIntoCommands(t *testing.T) {
	var cmds CommandSet
	cmds.AddCommand(Command{Name: "lint"})
	p := &Parser{Commands: &cmds, Settings: DefaultParserSettings()}

	analysis := Parse([]string{"lint", "--bogus"}, p)
	problem, ok := analysis.FirstProblem()
	assert.True(t, ok)
	assert.Equal(t, UnknownLong, problem.Kind)
}

func TestItemSet_Positional(t *testing.T) {
	p := &Parser{Settings: DefaultParserSettings()}
	analysis := Parse([]string{"a", "b", "c"}, p)

	v, ok := analysis.Root.Positional(1)
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = analysis.Root.Positional(5)
	assert.False(t, ok)
}
