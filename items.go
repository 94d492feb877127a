package argopt

// DataLocation describes where a data value accompanying an option was
// found, if any.
type DataLocation int

const (
	// NoData means the option carries no data value.
	NoData DataLocation = iota
	// SameArg means the data was packed into the same argument as the
	// option, separated by '=' (long) or directly concatenated (short).
	SameArg
	// NextArg means the data occupied the whole of the following
	// argument.
	NextArg
)

// OptionID identifies a matched option by whichever of its two possible
// identities (long name or short character) was actually used.
type OptionID struct {
	IsShort bool
	Long    string
	Short   rune
}

// LongID builds an OptionID naming a long option.
func LongID(name string) OptionID { return OptionID{Long: name} }

// ShortID builds an OptionID naming a short option.
func ShortID(ch rune) OptionID { return OptionID{IsShort: true, Short: ch} }

// ItemKind enumerates the closed set of non-problem items the engine can
// emit.
type ItemKind int

const (
	ItemOption ItemKind = iota
	ItemPositional
	ItemCommand
	ItemEarlyTerminator
)

// Item is one non-problem unit of parsed input: an option (with an
// optional data value), a positional, a matched command name, or the
// early terminator ("--").
type Item struct {
	Kind ItemKind

	// ID is valid when Kind == ItemOption.
	ID OptionID
	// HasData/Data describe the option's data value, when present.
	HasData bool
	Data    string

	// Text holds the positional's value (Kind == ItemPositional) or the
	// matched command's name (Kind == ItemCommand).
	Text string
}

// ProblemKind enumerates the closed set of problem items the engine can
// emit. All problems are recoverable: they travel in-band in the item
// stream, and the engine continues parsing past them unless
// ParserSettings.StopOnProblem is set.
type ProblemKind int

const (
	UnknownLong ProblemKind = iota
	UnknownShort
	AmbiguousLong
	LongWithUnexpectedData
	LongMissingData
	ShortMissingData
	UnexpectedPositional
	MissingPositionals
	UnknownCommand
	AmbiguousCmd
)

// ProblemItem is one recoverable parse problem.
type ProblemItem struct {
	Kind ProblemKind

	// Name is the raw (possibly unrecognised/ambiguous) long-option or
	// command name, where applicable.
	Name string
	// Ch is the short-option character, where applicable.
	Ch rune
	// HasData/Data hold any data value that accompanied an unknown
	// long option or an option that unexpectedly received one; for
	// UnexpectedPositional, Data holds the rejected positional's value.
	HasData bool
	Data    string
	// Suggestion is a "did you mean" hint for UnknownLong/UnknownCommand,
	// present only if a Suggester was supplied and found a candidate.
	HasSuggestion bool
	Suggestion    string
	// Count is the number of missing positionals, for MissingPositionals.
	Count Quantity
}

// ClassifiedItem is the triple the engine actually emits on each step:
// the argument index the item was found at, where any data value came
// from, and either a good Item or a ProblemItem.
type ClassifiedItem struct {
	ArgIndex     int
	DataLocation DataLocation
	IsProblem    bool
	Item         Item
	Problem      ProblemItem
}

// FindSpecKind enumerates the shapes a FindSpec can take.
type FindSpecKind int

const (
	FindLong FindSpecKind = iota
	FindShort
	FindPair
)

// FindSpec names an option to search for in an ItemSet's data-mining
// queries, either by long name, by short character, or by a pair of
// both (which matches either).
type FindSpec struct {
	Kind  FindSpecKind
	Long  string
	Short rune
}

// ByLong builds a FindSpec matching only a long option name.
func ByLong(name string) FindSpec { return FindSpec{Kind: FindLong, Long: name} }

// ByShort builds a FindSpec matching only a short option character.
func ByShort(ch rune) FindSpec { return FindSpec{Kind: FindShort, Short: ch} }

// ByPair builds a FindSpec matching either the short character or the
// long name.
func ByPair(ch rune, name string) FindSpec {
	return FindSpec{Kind: FindPair, Long: name, Short: ch}
}

// Matches reports whether id satisfies the find-spec.
func (f FindSpec) Matches(id OptionID) bool {
	switch f.Kind {
	case FindLong:
		return !id.IsShort && id.Long == f.Long
	case FindShort:
		return id.IsShort && id.Short == f.Short
	case FindPair:
		if id.IsShort {
			return id.Short == f.Short
		}
		return id.Long == f.Long
	default:
		return false
	}
}

// OptionPair describes an option once, for authoring as either a
// LongOption, a ShortOption, or a FindSpec Pair, without repeating the
// name/character/kind in three places.
type OptionPair struct {
	Long  string
	Short rune
	Kind  DataKind
}

func (p OptionPair) AsLong() LongOption   { return LongOption{Name: p.Long, Kind: p.Kind} }
func (p OptionPair) AsShort() ShortOption { return ShortOption{Ch: p.Short, Kind: p.Kind} }
func (p OptionPair) AsFindSpec() FindSpec { return ByPair(p.Short, p.Long) }
