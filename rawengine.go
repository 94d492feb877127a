package argopt

import (
	"strings"
	"unicode/utf8"
)

// This file holds the single shared parsing core. Unlike a language with
// a UTF-8-enforced string type, Go's string (and []byte) is already an
// arbitrary byte sequence that may or may not be valid UTF-8, and
// unicode/utf8.DecodeRuneInString already implements the WHATWG-style
// "maximal subpart" error-length algorithm: decoding an invalid or
// truncated sequence returns (utf8.RuneError, n) where n is exactly the
// number of bytes such a shim would need to skip, and decoding a literal
// encoded U+FFFD returns (utf8.RuneError, 3). That is the entire
// byte-counting machinery a lossy-conversion-and-reconstruct shim would
// otherwise need to hand-roll, so there is one engine here, not a pure
// variant plus a byte-exact shim layered on top of it. ParseRaw
// (rawargs.go) calls Parse (engine.go), and Parse drives the Iter below.

const (
	singleDashPrefix = "-"
	doubleDashPrefix = "--"
	earlyTerminator  = "--"
)

// Parser bundles the descriptor graph and settings an Iter parses
// against. Options/Commands may be nil, meaning empty sets.
type Parser struct {
	Options  *OptionSet
	Commands *CommandSet
	Settings ParserSettings

	// SuggestLong, if set, is consulted to annotate UnknownLong problems
	// with a "did you mean" hint.
	SuggestLong Suggester
	// SuggestCommand, if set, is consulted to annotate UnknownCommand
	// problems with a "did you mean" hint.
	SuggestCommand Suggester
}

func (p *Parser) options() *OptionSet {
	if p == nil || p.Options == nil {
		return &OptionSet{}
	}
	return p.Options
}

func (p *Parser) commands() *CommandSet {
	if p == nil || p.Commands == nil {
		return &CommandSet{}
	}
	return p.Commands
}

// Iter is the cooperative, single-threaded parsing iterator: the core of
// the engine. Each call to Next reads zero or more whole input arguments
// and yields exactly one item (good or problem), or reports end of
// stream. No parallelism, no suspension points other than the call
// boundary itself.
type Iter struct {
	args []string

	// Settings, ActiveOptions and ActiveCommands are read fresh at the
	// start of every step, so a caller may mutate them between calls —
	// this is how a dispatcher changes context after a command match,
	// or a caller overrides it.
	Settings       ParserSettings
	ActiveOptions  *OptionSet
	ActiveCommands *CommandSet

	suggestLong    Suggester
	suggestCommand Suggester

	i                   int // index of the next argument to read
	activePolicy        PositionalsPolicy
	positionalCount     Quantity
	commandDisabled     bool
	earlyTerminatorSeen bool
	posixTailActive     bool
	stopped             bool
	missingEmitted      bool

	pendingShort *shortSetState

	lastArgIndex     int
	lastDataLocation DataLocation
}

// shortSetState tracks an in-progress short-option-set argument being
// drained one code point at a time across multiple Next calls.
type shortSetState struct {
	argIndex  int
	remainder string // bytes after the single-dash prefix
	offset    int    // byte offset into remainder of the next rune
}

// NewIter constructs an iterator over args using p's descriptor graph
// and settings.
func NewIter(args []string, p *Parser) *Iter {
	if p == nil {
		p = &Parser{}
	}
	return &Iter{
		args:           args,
		Settings:       p.Settings,
		ActiveOptions:  p.options(),
		ActiveCommands: p.commands(),
		suggestLong:    p.SuggestLong,
		suggestCommand: p.SuggestCommand,
		i:              0,
		activePolicy:   defaultPositionalsPolicy,
	}
}

// CurrentIndex returns the argument index of the most recently emitted
// item. For an option whose data came from the following argument, this
// is the option's own index, not that of the data argument.
func (it *Iter) CurrentIndex() int { return it.lastArgIndex }

// LastDataLocation returns where the most recently emitted item's data
// value, if any, came from.
func (it *Iter) LastDataLocation() DataLocation { return it.lastDataLocation }

// PositionalCount returns how many positionals have been accepted in the
// currently active command context so far.
func (it *Iter) PositionalCount() Quantity { return it.positionalCount }

// Next advances the engine by zero or more whole arguments and returns
// the next classified item. ok is false at end of stream.
func (it *Iter) Next() (ClassifiedItem, bool) {
	if it.stopped {
		return ClassifiedItem{}, false
	}

	for {
		if it.pendingShort != nil {
			item, emitted := it.continueShortSet()
			if emitted {
				return it.finish(item)
			}
			// Short set fully drained with nothing left to emit
			// (shouldn't normally happen, but loop to read the next
			// whole argument if it does).
			continue
		}

		if it.i >= len(it.args) {
			return it.endOfStream()
		}

		arg := it.args[it.i]
		argIndex := it.i
		it.i++

		if it.earlyTerminatorSeen || it.posixTailActive {
			return it.finish(it.classifyPositionalCandidate(argIndex, arg))
		}

		if arg == earlyTerminator {
			it.earlyTerminatorSeen = true
			if it.Settings.ReportEarlyTerminator {
				ci := ClassifiedItem{ArgIndex: argIndex, Item: Item{Kind: ItemEarlyTerminator}}
				return it.finish(ci)
			}
			continue
		}

		switch basic := it.lex(arg); b := basic.(type) {
		case argNonOption:
			return it.finish(it.classifyNonOption(argIndex, arg))
		case argLongOption:
			return it.finish(it.resolveLong(argIndex, string(b)))
		case argShortOptionSet:
			it.pendingShort = &shortSetState{argIndex: argIndex, remainder: string(b), offset: 0}
			item, emitted := it.continueShortSet()
			if emitted {
				return it.finish(item)
			}
			continue
		}
	}
}

// finish records index/data-location bookkeeping for an about-to-be
// returned item and applies the posix-latch rule.
func (it *Iter) finish(ci ClassifiedItem) (ClassifiedItem, bool) {
	it.lastArgIndex = ci.ArgIndex
	it.lastDataLocation = ci.DataLocation

	if it.Settings.PosixlyCorrect && !it.posixTailActive && !ci.IsProblem {
		if ci.Item.Kind == ItemPositional || ci.Item.Kind == ItemCommand {
			it.posixTailActive = true
		}
	}

	if ci.IsProblem && it.Settings.StopOnProblem {
		it.stopped = true
	}

	return ci, true
}

func (it *Iter) endOfStream() (ClassifiedItem, bool) {
	if !it.missingEmitted {
		it.missingEmitted = true
		remaining := it.activePolicy.remainingMin(it.positionalCount)
		if remaining > 0 {
			argIndex := it.i - 1
			if argIndex < 0 {
				argIndex = 0
			}
			ci := ClassifiedItem{
				ArgIndex:  argIndex,
				IsProblem: true,
				Problem:   ProblemItem{Kind: MissingPositionals, Count: remaining},
			}
			return it.finish(ci)
		}
	}
	return ClassifiedItem{}, false
}

// --- lexical classification -------------------------------------------------

type argBasic interface{ isArgBasic() }
type argNonOption struct{}
type argLongOption string
type argShortOptionSet string

func (argNonOption) isArgBasic()      {}
func (argLongOption) isArgBasic()     {}
func (argShortOptionSet) isArgBasic() {}

func hasStrictPrefix(arg, prefix string) bool {
	return len(arg) > len(prefix) && arg[:len(prefix)] == prefix
}

func (it *Iter) lex(arg string) argBasic {
	switch it.Settings.Mode {
	case Alternate:
		if hasStrictPrefix(arg, doubleDashPrefix) {
			// The extra dash is part of the name: a positional.
			return argNonOption{}
		}
		if hasStrictPrefix(arg, singleDashPrefix) {
			return argLongOption(arg[len(singleDashPrefix):])
		}
		return argNonOption{}
	default: // Standard
		if hasStrictPrefix(arg, doubleDashPrefix) {
			return argLongOption(arg[len(doubleDashPrefix):])
		}
		if hasStrictPrefix(arg, singleDashPrefix) {
			return argShortOptionSet(arg[len(singleDashPrefix):])
		}
		return argNonOption{}
	}
}

// --- non-option / command / positional handling -----------------------------

// classifyPositionalCandidate is used once the early-terminator or
// posix-tail latch is active: the argument is unconditionally a
// positional candidate, never a command.
func (it *Iter) classifyPositionalCandidate(argIndex int, value string) ClassifiedItem {
	return it.applyPositionalPolicy(argIndex, value)
}

// classifyNonOption handles a non-option argument under normal parsing:
// commands take priority over positionals when a command set is active
// and hasn't yet been exhausted at this depth.
func (it *Iter) classifyNonOption(argIndex int, value string) ClassifiedItem {
	if !it.commandDisabled && !it.ActiveCommands.IsEmpty() {
		return it.resolveCommand(argIndex, value)
	}
	return it.applyPositionalPolicy(argIndex, value)
}

func (it *Iter) applyPositionalPolicy(argIndex int, value string) ClassifiedItem {
	if it.activePolicy.isNextUnexpected(it.positionalCount) {
		return ClassifiedItem{
			ArgIndex:  argIndex,
			IsProblem: true,
			Problem:   ProblemItem{Kind: UnexpectedPositional, HasData: true, Data: value},
		}
	}
	it.positionalCount++
	return ClassifiedItem{
		ArgIndex: argIndex,
		Item:     Item{Kind: ItemPositional, Text: value},
	}
}

func (it *Iter) resolveCommand(argIndex int, value string) ClassifiedItem {
	cmds := it.ActiveCommands.Commands
	match, kind := FindByAbbrevName(value, cmds, func(c *Command) string { return c.Name })
	if !it.Settings.AllowAbbreviations && kind == AbbreviatedMatch {
		match, kind = nil, NoMatch
	}

	switch kind {
	case ExactMatch, AbbreviatedMatch:
		it.ActiveOptions = &match.Options
		it.ActiveCommands = &match.SubCommands
		it.activePolicy = match.PositionalPolicy
		it.positionalCount = 0
		it.commandDisabled = false
		return ClassifiedItem{
			ArgIndex: argIndex,
			Item:     Item{Kind: ItemCommand, Text: match.Name},
		}
	case AmbiguousMatch:
		it.commandDisabled = true
		return ClassifiedItem{
			ArgIndex:  argIndex,
			IsProblem: true,
			Problem:   ProblemItem{Kind: AmbiguousCmd, Name: value},
		}
	default:
		it.commandDisabled = true
		prob := ProblemItem{Kind: UnknownCommand, Name: value}
		if it.suggestCommand != nil {
			if s, ok := it.suggestCommand(value); ok {
				prob.HasSuggestion, prob.Suggestion = true, s
			}
		}
		return ClassifiedItem{ArgIndex: argIndex, IsProblem: true, Problem: prob}
	}
}

// --- long option resolution --------------------------------------------------

func (it *Iter) resolveLong(argIndex int, opt string) ClassifiedItem {
	name := opt
	var hasData bool
	var data string
	if i := strings.IndexByte(opt, '='); i >= 0 {
		name = opt[:i]
		hasData = true
		data = opt[i+1:]
	}

	if name == "" {
		// "--=" / "--=foo": no option name was actually given. There is
		// no dedicated ProblemKind for a missing name, so this folds into
		// UnknownLong with an empty Name, which still preserves the raw
		// data that followed the "=".
		return ClassifiedItem{
			ArgIndex:  argIndex,
			IsProblem: true,
			Problem:   ProblemItem{Kind: UnknownLong, Name: "", HasData: hasData, Data: data},
		}
	}

	long := it.ActiveOptions.Long
	match, kind := FindByAbbrevName(name, long, func(o *LongOption) string { return o.Name })
	if !it.Settings.AllowAbbreviations && kind == AbbreviatedMatch {
		match, kind = nil, NoMatch
	}

	switch kind {
	case AmbiguousMatch:
		return ClassifiedItem{
			ArgIndex:  argIndex,
			IsProblem: true,
			Problem:   ProblemItem{Kind: AmbiguousLong, Name: name},
		}
	case ExactMatch, AbbreviatedMatch:
		return it.resolveMatchedLong(argIndex, match, hasData, data)
	default:
		prob := ProblemItem{Kind: UnknownLong, Name: name, HasData: hasData, Data: data}
		if it.suggestLong != nil {
			if s, ok := it.suggestLong(name); ok {
				prob.HasSuggestion, prob.Suggestion = true, s
			}
		}
		return ClassifiedItem{ArgIndex: argIndex, IsProblem: true, Problem: prob}
	}
}

func (it *Iter) resolveMatchedLong(argIndex int, opt *LongOption, hasData bool, data string) ClassifiedItem {
	id := LongID(opt.Name)
	switch opt.Kind {
	case Flag:
		if !hasData || data == "" {
			return ClassifiedItem{ArgIndex: argIndex, Item: Item{Kind: ItemOption, ID: id}}
		}
		return ClassifiedItem{
			ArgIndex:  argIndex,
			IsProblem: true,
			Problem:   ProblemItem{Kind: LongWithUnexpectedData, Name: opt.Name, HasData: true, Data: data},
		}
	case DataOptional:
		if hasData {
			return ClassifiedItem{
				ArgIndex:     argIndex,
				DataLocation: SameArg,
				Item:         Item{Kind: ItemOption, ID: id, HasData: true, Data: data},
			}
		}
		return ClassifiedItem{ArgIndex: argIndex, Item: Item{Kind: ItemOption, ID: id}}
	default: // DataRequired
		if hasData {
			return ClassifiedItem{
				ArgIndex:     argIndex,
				DataLocation: SameArg,
				Item:         Item{Kind: ItemOption, ID: id, HasData: true, Data: data},
			}
		}
		if it.i < len(it.args) {
			next := it.args[it.i]
			it.i++
			return ClassifiedItem{
				ArgIndex:     argIndex,
				DataLocation: NextArg,
				Item:         Item{Kind: ItemOption, ID: id, HasData: true, Data: next},
			}
		}
		return ClassifiedItem{
			ArgIndex:  argIndex,
			IsProblem: true,
			Problem:   ProblemItem{Kind: LongMissingData, Name: opt.Name},
		}
	}
}

// --- short option set resolution ---------------------------------------------

// continueShortSet processes exactly one code point from the pending
// short-option-set argument, returning the item it produced. emitted is
// false only if the set was already fully drained (defensive; should not
// occur in practice since the set is cleared as soon as it is drained).
func (it *Iter) continueShortSet() (ClassifiedItem, bool) {
	st := it.pendingShort
	if st.offset >= len(st.remainder) {
		it.pendingShort = nil
		return ClassifiedItem{}, false
	}

	ch, size := utf8.DecodeRuneInString(st.remainder[st.offset:])
	byteStart := st.offset
	isLast := st.offset+size >= len(st.remainder)
	st.offset += size
	if isLast {
		it.pendingShort = nil
	}

	short, found := FindByChar(ch, it.ActiveOptions.Short, func(o *ShortOption) rune { return o.Ch })
	argIndex := st.argIndex

	if !found {
		return ClassifiedItem{ArgIndex: argIndex, IsProblem: true, Problem: ProblemItem{Kind: UnknownShort, Ch: ch}}, true
	}

	id := ShortID(ch)
	switch short.Kind {
	case Flag:
		return ClassifiedItem{ArgIndex: argIndex, Item: Item{Kind: ItemOption, ID: id}}, true
	case DataOptional:
		if !isLast {
			data := st.remainder[byteStart+size:]
			it.pendingShort = nil
			return ClassifiedItem{
				ArgIndex:     argIndex,
				DataLocation: SameArg,
				Item:         Item{Kind: ItemOption, ID: id, HasData: true, Data: data},
			}, true
		}
		return ClassifiedItem{ArgIndex: argIndex, Item: Item{Kind: ItemOption, ID: id}}, true
	default: // DataRequired
		if !isLast {
			data := st.remainder[byteStart+size:]
			it.pendingShort = nil
			return ClassifiedItem{
				ArgIndex:     argIndex,
				DataLocation: SameArg,
				Item:         Item{Kind: ItemOption, ID: id, HasData: true, Data: data},
			}, true
		}
		if it.i < len(it.args) {
			next := it.args[it.i]
			it.i++
			return ClassifiedItem{
				ArgIndex:     argIndex,
				DataLocation: NextArg,
				Item:         Item{Kind: ItemOption, ID: id, HasData: true, Data: next},
			}, true
		}
		return ClassifiedItem{ArgIndex: argIndex, IsProblem: true, Problem: ProblemItem{Kind: ShortMissingData, Ch: ch}}, true
	}
}
