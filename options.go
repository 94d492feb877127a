package argopt

import "strings"

// DataKind describes whether and how an option takes a data value.
type DataKind int

const (
	// Flag takes no data value. Any in-same-arg data supplied is a
	// problem unless it is the empty string, which is silently ignored.
	Flag DataKind = iota
	// DataRequired must be given a data value, either in the same
	// argument (after '=' for long options) or in the following
	// argument, which is consumed unconditionally.
	DataRequired
	// DataOptional may be given a data value in the same argument; the
	// following argument is never consumed for it.
	DataOptional
)

// replacementChar is the Unicode replacement character (U+FFFD).
// Forbidding it in descriptor names/chars is what lets the byte-exact
// OS-string path treat any U+FFFD appearing during decoding as
// unambiguously lossy, never a real match. See rawengine.go.
const replacementChar = '�'

// LongOption describes an available long option.
type LongOption struct {
	// Name is the option's matching text, excluding any "--"/"-" prefix.
	Name string
	Kind DataKind
}

// ShortOption describes an available short option.
type ShortOption struct {
	Ch   rune
	Kind DataKind
}

// OptionFlawKind enumerates the kinds of structural flaw an OptionSet can
// have.
type OptionFlawKind int

const (
	LongEmpty OptionFlawKind = iota
	LongIncludesEquals
	LongIncludesRepChar
	ShortIsDash
	ShortIsRepChar
	ShortDuplicate
	LongDuplicate
)

// OptionFlaw describes a single structural problem found in an OptionSet.
type OptionFlaw struct {
	Kind OptionFlawKind
	// Name is set for long-option flaws.
	Name string
	// Ch is set for short-option flaws.
	Ch rune
}

// OptionSet is an ordered collection of long and short options. Order
// only matters for iteration; lookup is always by name or character.
//
// A zero-value OptionSet is empty and ready to use. There is a single
// representation here rather than the fixed/extendible split some
// descriptions of this kind of engine draw: a Go slice already plays
// both roles (a literal for static construction, a growable vector via
// Add*).
type OptionSet struct {
	Long  []LongOption
	Short []ShortOption
}

// AddLong appends a long option to the set.
func (s *OptionSet) AddLong(name string, kind DataKind) *OptionSet {
	s.Long = append(s.Long, LongOption{Name: name, Kind: kind})
	return s
}

// AddShort appends a short option to the set.
func (s *OptionSet) AddShort(ch rune, kind DataKind) *OptionSet {
	s.Short = append(s.Short, ShortOption{Ch: ch, Kind: kind})
	return s
}

// IsEmpty reports whether the set has neither long nor short options.
func (s *OptionSet) IsEmpty() bool {
	return len(s.Long) == 0 && len(s.Short) == 0
}

// IsValid reports whether the set passes validation. See Validate for
// details on what is checked.
func (s *OptionSet) IsValid() bool {
	_, ok := validateOptionSet(s, false)
	return ok
}

// Validate checks the option set for structural flaws: empty or
// forbidden-character long names, forbidden short characters, and
// duplicate names/characters. It returns the full list of flaws found.
func (s *OptionSet) Validate() []OptionFlaw {
	flaws, _ := validateOptionSet(s, true)
	return flaws
}

// validateOptionSet walks an option set looking for structural flaws. If
// detail is false it returns as soon as one is found, with an empty
// slice and ok=false; this is the fast path for IsValid. If detail is
// true it collects every flaw before returning.
func validateOptionSet(s *OptionSet, detail bool) (flaws []OptionFlaw, ok bool) {
	report := func(f OptionFlaw) bool {
		if !detail {
			return false
		}
		flaws = append(flaws, f)
		return true
	}

	for _, lo := range s.Long {
		switch {
		case lo.Name == "":
			if !report(OptionFlaw{Kind: LongEmpty}) {
				return nil, false
			}
		case strings.ContainsRune(lo.Name, '='):
			if !report(OptionFlaw{Kind: LongIncludesEquals, Name: lo.Name}) {
				return nil, false
			}
		case strings.ContainsRune(lo.Name, replacementChar):
			if !report(OptionFlaw{Kind: LongIncludesRepChar, Name: lo.Name}) {
				return nil, false
			}
		}
	}

	for _, so := range s.Short {
		switch so.Ch {
		case '-':
			if !report(OptionFlaw{Kind: ShortIsDash, Ch: so.Ch}) {
				return nil, false
			}
		case replacementChar:
			if !report(OptionFlaw{Kind: ShortIsRepChar, Ch: so.Ch}) {
				return nil, false
			}
		}
	}

	seenShort := make(map[rune]bool, len(s.Short))
	reportedShort := make(map[rune]bool)
	for _, so := range s.Short {
		if seenShort[so.Ch] {
			if reportedShort[so.Ch] {
				continue
			}
			reportedShort[so.Ch] = true
			if !report(OptionFlaw{Kind: ShortDuplicate, Ch: so.Ch}) {
				return nil, false
			}
			continue
		}
		seenShort[so.Ch] = true
	}

	seenLong := make(map[string]bool, len(s.Long))
	reportedLong := make(map[string]bool)
	for _, lo := range s.Long {
		if seenLong[lo.Name] {
			if reportedLong[lo.Name] {
				continue
			}
			reportedLong[lo.Name] = true
			if !report(OptionFlaw{Kind: LongDuplicate, Name: lo.Name}) {
				return nil, false
			}
			continue
		}
		seenLong[lo.Name] = true
	}

	return flaws, len(flaws) == 0
}
