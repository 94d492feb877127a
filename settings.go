package argopt

// OptionsMode selects the lexical grammar the engine uses to recognise
// options.
type OptionsMode int

const (
	// Standard: short ("-o") and long ("--foo") options, with single-
	// and double-dash prefixes respectively.
	Standard OptionsMode = iota
	// Alternate: long options only, using a single-dash prefix; there
	// are no short options in this mode.
	Alternate
)

// ParserSettings controls engine behavior. Settings are read fresh by
// the engine at the start of every step, so a caller may legally mutate
// them between calls to an iterator's Next method — this is how a
// dispatcher changes mode or abbreviation policy mid-parse if it wants
// to (though in practice only the active option/command sets typically
// change at a command boundary).
type ParserSettings struct {
	Mode OptionsMode
	// AllowAbbreviations enables unique-prefix matching of long option
	// names. Default true.
	AllowAbbreviations bool
	// PosixlyCorrect, once the first positional or command is emitted,
	// latches the engine into treating every subsequent argument as a
	// positional, including ones that would otherwise look like
	// options or the early terminator. A "--" seen before the latch is
	// still the early terminator. Default false.
	PosixlyCorrect bool
	// ReportEarlyTerminator controls whether the literal "--" itself is
	// emitted as an EarlyTerminator item (true) or silently consumed
	// with no item emitted for it (false). Default true.
	ReportEarlyTerminator bool
	// StopOnProblem makes the engine yield end-of-stream on the call
	// following any problem item, instead of continuing to parse.
	// Default false.
	StopOnProblem bool
}

// DefaultParserSettings returns the settings a Parser uses if none are
// supplied explicitly.
func DefaultParserSettings() ParserSettings {
	return ParserSettings{
		Mode:                  Standard,
		AllowAbbreviations:    true,
		PosixlyCorrect:        false,
		ReportEarlyTerminator: true,
		StopOnProblem:         false,
	}
}
