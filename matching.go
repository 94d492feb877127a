package argopt

import "strings"

// MatchKind classifies the result of a lookup in a descriptor set.
type MatchKind int

const (
	NoMatch MatchKind = iota
	ExactMatch
	AbbreviatedMatch
	AmbiguousMatch
)

// FindByChar looks for the first item in haystack whose character,
// as returned by getChar, equals needle. Comparison is by Unicode
// code point.
func FindByChar[T any](needle rune, haystack []T, getChar func(*T) rune) (*T, bool) {
	for i := range haystack {
		if getChar(&haystack[i]) == needle {
			return &haystack[i], true
		}
	}
	return nil, false
}

// FindByName looks for the first item in haystack whose name, as
// returned by getName, is byte-equal to needle.
func FindByName[T any](needle string, haystack []T, getName func(*T) string) (*T, bool) {
	for i := range haystack {
		if getName(&haystack[i]) == needle {
			return &haystack[i], true
		}
	}
	return nil, false
}

// FindByAbbrevName looks for an item in haystack whose name matches
// needle exactly, or, failing that, whose name needle is a strict
// byte-prefix of. An exact match always wins over any abbreviated
// matches accumulated so far, even ones already found ambiguous. Two or
// more abbreviated matches with no exact match is ambiguous.
func FindByAbbrevName[T any](needle string, haystack []T, getName func(*T) string) (match *T, kind MatchKind) {
	kind = NoMatch
	for i := range haystack {
		name := getName(&haystack[i])
		if name == needle {
			return &haystack[i], ExactMatch
		}
		if kind == AmbiguousMatch {
			continue
		}
		if len(needle) < len(name) && strings.HasPrefix(name, needle) {
			switch kind {
			case NoMatch:
				match, kind = &haystack[i], AbbreviatedMatch
			case AbbreviatedMatch:
				match, kind = nil, AmbiguousMatch
			}
		}
	}
	return match, kind
}

// suggestFilter is the minimum Jaro-Winkler similarity a candidate must
// reach to be suggested.
const suggestFilter = 0.8

// Suggest returns the lexically-first candidate name, of those produced
// by names for each element of candidates, whose Jaro-Winkler similarity
// to unknown is >= 0.8 and strictly greater than any previously-seen
// candidate's, or "" with ok=false if none qualifies.
//
// This is an external collaborator in the sense the spec uses that term:
// the engine never calls it itself, but problem sites (UnknownLong,
// UnknownCommand) accept an optional Suggester built from it so callers
// can annotate their errors with a "did you mean" hint.
func Suggest[T any](unknown string, candidates []T, name func(*T) string) (string, bool) {
	best := suggestFilter
	var bestName string
	found := false
	for i := range candidates {
		cand := name(&candidates[i])
		metric := jaroWinkler(unknown, cand)
		if metric > best || (!found && metric >= suggestFilter) {
			bestName = cand
			best = metric
			found = true
		}
	}
	return bestName, found
}

// Suggester annotates an unknown name with a "did you mean" suggestion.
// A nil Suggester means no suggestion is ever offered.
type Suggester func(unknown string) (suggestion string, ok bool)

// LongOptionSuggester builds a Suggester from a long-option set.
func LongOptionSuggester(set *OptionSet) Suggester {
	return func(unknown string) (string, bool) {
		return Suggest(unknown, set.Long, func(o *LongOption) string { return o.Name })
	}
}

// CommandSuggester builds a Suggester from a command set.
func CommandSuggester(set *CommandSet) Suggester {
	return func(unknown string) (string, bool) {
		return Suggest(unknown, set.Commands, func(c *Command) string { return c.Name })
	}
}

// jaroWinkler computes the Jaro-Winkler similarity of a and b, in the
// range [0, 1]. Hand-rolled: no library in the corpus offers an
// edit-distance similarity metric (see DESIGN.md).
func jaroWinkler(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	j := jaro(ra, rb)
	if j <= 0 {
		return j
	}

	prefix := 0
	maxPrefix := len(ra)
	if len(rb) < maxPrefix {
		maxPrefix = len(rb)
	}
	if maxPrefix > 4 {
		maxPrefix = 4
	}
	for prefix < maxPrefix && ra[prefix] == rb[prefix] {
		prefix++
	}

	const scalingFactor = 0.1
	return j + float64(prefix)*scalingFactor*(1-j)
}

func jaro(a, b []rune) float64 {
	la, lb := len(a), len(b)
	if la == 0 && lb == 0 {
		return 1
	}
	if la == 0 || lb == 0 {
		return 0
	}

	matchDistance := la
	if lb > matchDistance {
		matchDistance = lb
	}
	matchDistance = matchDistance/2 - 1
	if matchDistance < 0 {
		matchDistance = 0
	}

	aMatched := make([]bool, la)
	bMatched := make([]bool, lb)

	matches := 0
	for i := 0; i < la; i++ {
		start := i - matchDistance
		if start < 0 {
			start = 0
		}
		end := i + matchDistance + 1
		if end > lb {
			end = lb
		}
		for j := start; j < end; j++ {
			if bMatched[j] || a[i] != b[j] {
				continue
			}
			aMatched[i] = true
			bMatched[j] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0
	}

	transpositions := 0
	k := 0
	for i := 0; i < la; i++ {
		if !aMatched[i] {
			continue
		}
		for !bMatched[k] {
			k++
		}
		if a[i] != b[k] {
			transpositions++
		}
		k++
	}

	m := float64(matches)
	return (m/float64(la) + m/float64(lb) + (m-float64(transpositions)/2)/m) / 3
}
