package argopt

// AnalysedItem pairs one ClassifiedItem with, for a matched command item,
// the nested ItemSet holding everything parsed under that command's own
// context. Commands only ever go deeper: once the engine has switched
// into a command's option/sub-command sets it never returns to a
// shallower one, so a simple one-way chain of nested sets is sufficient;
// there is no need to track a return path back up.
type AnalysedItem struct {
	ClassifiedItem
	SubAnalysis *ItemSet
}

// ItemSet is one level of the analysis tree: every item parsed while a
// particular option set was active, in order, plus that option set
// itself so callers can resolve an OptionID back to its descriptor
// without threading it through separately.
type ItemSet struct {
	CommandName string // "" for the root
	Options     *OptionSet
	Items       []AnalysedItem
}

// Analysis is the aggregated result of running a full parse: the root
// item set, covering the top-level option/command context, with any
// matched commands' own items nested beneath them.
type Analysis struct {
	Root ItemSet
}

// collect drains it to exhaustion, building the nested analysis tree.
func collect(it *Iter) Analysis {
	root := ItemSet{Options: it.ActiveOptions}
	current := &root

	for {
		ci, ok := it.Next()
		if !ok {
			break
		}
		ai := AnalysedItem{ClassifiedItem: ci}
		if !ci.IsProblem && ci.Item.Kind == ItemCommand {
			child := &ItemSet{CommandName: ci.Item.Text, Options: it.ActiveOptions}
			ai.SubAnalysis = child
			current.Items = append(current.Items, ai)
			current = child
			continue
		}
		current.Items = append(current.Items, ai)
	}

	return Analysis{Root: root}
}

// HasProblems reports whether any item anywhere in the tree is a
// problem.
func (a Analysis) HasProblems() bool { return a.Root.HasProblems() }

// FirstProblem returns the first problem anywhere in the tree, in
// argument order, descending into nested command item sets at the point
// the command item itself appears.
func (a Analysis) FirstProblem() (ProblemItem, bool) { return a.Root.FirstProblem() }

// HasProblems reports whether any direct or nested item in this set is a
// problem.
func (s *ItemSet) HasProblems() bool {
	for _, it := range s.Items {
		if it.IsProblem {
			return true
		}
		if it.SubAnalysis != nil && it.SubAnalysis.HasProblems() {
			return true
		}
	}
	return false
}

// FirstProblem returns the first problem in this set or any set nested
// beneath it, in argument order.
func (s *ItemSet) FirstProblem() (ProblemItem, bool) {
	for _, it := range s.Items {
		if it.IsProblem {
			return it.Problem, true
		}
		if it.SubAnalysis != nil {
			if p, ok := it.SubAnalysis.FirstProblem(); ok {
				return p, true
			}
		}
	}
	return ProblemItem{}, false
}

// GoodItems returns every non-problem item directly in this set, in
// order. It does not descend into nested command item sets.
func (s *ItemSet) GoodItems() []Item {
	var out []Item
	for _, it := range s.Items {
		if !it.IsProblem {
			out = append(out, it.Item)
		}
	}
	return out
}

// ProblemItems returns every problem directly in this set, in order. It
// does not descend into nested command item sets.
func (s *ItemSet) ProblemItems() []ProblemItem {
	var out []ProblemItem
	for _, it := range s.Items {
		if it.IsProblem {
			out = append(out, it.Problem)
		}
	}
	return out
}

// AllItems returns every classified item directly in this set, in order,
// problems and all.
func (s *ItemSet) AllItems() []ClassifiedItem {
	out := make([]ClassifiedItem, len(s.Items))
	for i, it := range s.Items {
		out[i] = it.ClassifiedItem
	}
	return out
}

// Positionals returns the values of every positional directly in this
// set, in order.
func (s *ItemSet) Positionals() []string {
	var out []string
	for _, it := range s.Items {
		if !it.IsProblem && it.Item.Kind == ItemPositional {
			out = append(out, it.Item.Text)
		}
	}
	return out
}

// Positional returns the i'th (0-based) positional directly in this set.
func (s *ItemSet) Positional(i int) (string, bool) {
	p := s.Positionals()
	if i < 0 || i >= len(p) {
		return "", false
	}
	return p[i], true
}

func (s *ItemSet) matchingOptions(spec FindSpec) []Item {
	var out []Item
	for _, it := range s.Items {
		if it.IsProblem || it.Item.Kind != ItemOption {
			continue
		}
		if spec.Matches(it.Item.ID) {
			out = append(out, it.Item)
		}
	}
	return out
}

// Used reports whether an option matching spec appears directly in this
// set at all.
func (s *ItemSet) Used(spec FindSpec) bool {
	return len(s.matchingOptions(spec)) > 0
}

// Count returns how many times an option matching spec appears directly
// in this set.
func (s *ItemSet) Count(spec FindSpec) int {
	return len(s.matchingOptions(spec))
}

// FirstValue returns the data value of the first option matching spec
// that carried one.
func (s *ItemSet) FirstValue(spec FindSpec) (string, bool) {
	for _, item := range s.matchingOptions(spec) {
		if item.HasData {
			return item.Data, true
		}
	}
	return "", false
}

// LastValue returns the data value of the last option matching spec
// that carried one.
func (s *ItemSet) LastValue(spec FindSpec) (string, bool) {
	matches := s.matchingOptions(spec)
	for i := len(matches) - 1; i >= 0; i-- {
		if matches[i].HasData {
			return matches[i].Data, true
		}
	}
	return "", false
}

// AllValues returns the data values of every option matching spec that
// carried one, in order.
func (s *ItemSet) AllValues(spec FindSpec) []string {
	var out []string
	for _, item := range s.matchingOptions(spec) {
		if item.HasData {
			out = append(out, item.Data)
		}
	}
	return out
}

// FirstUsedOf returns the first spec in specs, in argument order of
// appearance (not list order), to have been used, along with its index
// in specs.
func (s *ItemSet) FirstUsedOf(specs []FindSpec) (index int, ok bool) {
	bestArgIndex := -1
	index = -1
	for _, it := range s.Items {
		if it.IsProblem || it.Item.Kind != ItemOption {
			continue
		}
		for i, spec := range specs {
			if spec.Matches(it.Item.ID) {
				if bestArgIndex == -1 || it.ArgIndex < bestArgIndex {
					bestArgIndex = it.ArgIndex
					index = i
				}
			}
		}
	}
	return index, index != -1
}

// LastUsedOf returns the last spec in specs, in argument order of
// appearance, to have been used, along with its index in specs.
func (s *ItemSet) LastUsedOf(specs []FindSpec) (index int, ok bool) {
	bestArgIndex := -1
	index = -1
	for _, it := range s.Items {
		if it.IsProblem || it.Item.Kind != ItemOption {
			continue
		}
		for i, spec := range specs {
			if spec.Matches(it.Item.ID) {
				if it.ArgIndex >= bestArgIndex {
					bestArgIndex = it.ArgIndex
					index = i
				}
			}
		}
	}
	return index, index != -1
}

// FlagState reduces a set of "on" and "off" option specs (for instance
// --foo and --no-foo) to a single boolean, in argument order: whichever
// of the two lists' options was used last wins. ok is false if neither
// ever appeared.
func (s *ItemSet) FlagState(positive, negative []FindSpec) (value bool, ok bool) {
	bestArgIndex := -1
	for _, it := range s.Items {
		if it.IsProblem || it.Item.Kind != ItemOption {
			continue
		}
		for _, spec := range positive {
			if spec.Matches(it.Item.ID) && it.ArgIndex >= bestArgIndex {
				bestArgIndex, value, ok = it.ArgIndex, true, true
			}
		}
		for _, spec := range negative {
			if spec.Matches(it.Item.ID) && it.ArgIndex >= bestArgIndex {
				bestArgIndex, value, ok = it.ArgIndex, false, true
			}
		}
	}
	return value, ok
}
