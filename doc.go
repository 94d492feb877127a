/*
Package argopt implements the parsing engine half of a command-line
argument parser: given a declarative description of the options and
sub-commands a program accepts, it turns a raw argument slice into an
ordered stream of classified items.

This is the engine only. It does not enforce required/forbidden option
relationships, does not coerce data values to any particular type, does
not generate help text, does not reorder positionals, and does not apply
trimming or case-folding. All of that is left to the caller; see
[Analysis] for a data-mining surface built on top of the item stream that
callers can use as a starting point.

# Usage

Describe the options and commands available, then parse an argument
slice:

	var opts OptionSet
	opts.AddLong("verbose", Flag)
	opts.AddLong("output", DataRequired)
	opts.AddShort('v', Flag)

	p := &Parser{Options: &opts, Settings: DefaultParserSettings()}
	analysis := Parse([]string{"--verbose", "-v", "--output=file.txt"}, p)
	for _, item := range analysis.Root.Items {
		...
	}

Or drive the engine one item at a time:

	it := NewIter([]string{"--verbose", "rest"}, p)
	for {
		item, ok := it.Next()
		if !ok {
			break
		}
		...
	}

# Command-line syntax

Standard mode: `--long`, `--long=data`, `--long data`, `-abc` (short
option set), `-o data` / `-odata` (short option with data in the next
or the same argument),
bare positionals, command names, and `--` as an early terminator after
which everything is a positional. Alternate mode drops short options
entirely and uses a single dash for long options instead of double.

# Byte-exact input

[Parse] assumes its input is valid UTF-8 (the common case: [os.Args] and
similar). [ParseRaw] makes no such assumption — it accepts raw byte
arguments and guarantees that every string appearing in its output is a
byte-exact slice of either the original argument or a descriptor name,
never a lossy rewrite. See rawengine.go for how this is achieved without
a separate conversion pass.
*/
package argopt
