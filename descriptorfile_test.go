package argopt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptors_MarshalParseRoundTrip(t *testing.T) {
	var opts OptionSet
	opts.AddLong("verbose", Flag).AddShort('v', Flag)
	opts.AddLong("output", DataRequired).AddShort('o', DataRequired)

	var cmds CommandSet
	var lintOpts OptionSet
	lintOpts.AddLong("strict", Flag)
	cmds.AddCommand(Command{
		Name:             "lint",
		Options:          lintOpts,
		PositionalPolicy: MinMaxPositionals(1, 3),
	})

	data, err := MarshalDescriptors(opts, cmds)
	require.NoError(t, err)

	gotOpts, gotCmds, err := ParseDescriptors(data)
	require.NoError(t, err)

	assert.Equal(t, opts, gotOpts)
	require.Len(t, gotCmds.Commands, 1)
	assert.Equal(t, "lint", gotCmds.Commands[0].Name)
	assert.Equal(t, lintOpts, gotCmds.Commands[0].Options)
	assert.Equal(t, MinMaxPositionals(1, 3), gotCmds.Commands[0].PositionalPolicy)
}

func TestParseDescriptors_RejectsMultiCharShort(t *testing.T) {
	_, _, err := ParseDescriptors([]byte("options:\n  - short: ab\n"))
	assert.Error(t, err)
}

func TestLoadOrCreateDescriptors_WritesDefaultOnce(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	var defaultOpts OptionSet
	defaultOpts.AddLong("verbose", Flag)
	var defaultCmds CommandSet

	opts, _, err := LoadOrCreateDescriptors(defaultOpts, defaultCmds)
	require.NoError(t, err)
	assert.Equal(t, defaultOpts, opts)

	path := filepath.Join(dir, "argopt", "descriptors.yaml")
	_, statErr := os.Stat(path)
	require.NoError(t, statErr)

	// Loading again should read the file back rather than rewriting it.
	opts2, _, err := LoadOrCreateDescriptors(OptionSet{}, CommandSet{})
	require.NoError(t, err)
	assert.Equal(t, defaultOpts, opts2)
}
