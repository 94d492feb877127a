package argopt

import "strings"

// Command describes an available command (sub-command) argument: a
// named token that, once matched, switches the engine's active option
// set and command set to this command's own, and governs the
// positionals policy in effect from that point on (until a further
// nested command switches it again).
type Command struct {
	Name             string
	Options          OptionSet
	SubCommands      CommandSet
	PositionalPolicy PositionalsPolicy
}

// CommandSet is an ordered collection of commands. Lookup is by name;
// order only matters for iteration.
type CommandSet struct {
	Commands []Command
}

// AddCommand appends a command to the set.
func (s *CommandSet) AddCommand(cmd Command) *CommandSet {
	if cmd.PositionalPolicy == (PositionalsPolicy{}) {
		cmd.PositionalPolicy = defaultPositionalsPolicy
	}
	s.Commands = append(s.Commands, cmd)
	return s
}

// IsEmpty reports whether the set has no commands.
func (s *CommandSet) IsEmpty() bool {
	return len(s.Commands) == 0
}

// CommandFlawKind enumerates the kinds of structural flaw a CommandSet
// can have.
type CommandFlawKind int

const (
	CommandEmptyName CommandFlawKind = iota
	CommandNameHasRepChar
	CommandDuplicate
	CommandNestedOptionFlaws
	CommandNestedSubCommandFlaws
)

// CommandFlaw describes a single structural problem found in a
// CommandSet, or in a nested option/sub-command set owned by one of its
// commands.
type CommandFlaw struct {
	Kind CommandFlawKind
	Name string
	// NestedOptionFlaws is populated for CommandNestedOptionFlaws.
	NestedOptionFlaws []OptionFlaw
	// NestedCommandFlaws is populated for CommandNestedSubCommandFlaws.
	NestedCommandFlaws []CommandFlaw
}

// IsValid reports whether the command set, and every option set and
// sub-command set nested within it, passes validation.
func (s *CommandSet) IsValid() bool {
	_, ok := validateCommandSet(s, false)
	return ok
}

// Validate checks the command set for structural flaws, recursing into
// each command's nested option set and sub-command set and attributing
// any flaws found there to the owning command.
func (s *CommandSet) Validate() []CommandFlaw {
	flaws, _ := validateCommandSet(s, true)
	return flaws
}

func validateCommandSet(s *CommandSet, detail bool) (flaws []CommandFlaw, ok bool) {
	report := func(f CommandFlaw) bool {
		if !detail {
			return false
		}
		flaws = append(flaws, f)
		return true
	}

	for _, cmd := range s.Commands {
		switch {
		case cmd.Name == "":
			if !report(CommandFlaw{Kind: CommandEmptyName}) {
				return nil, false
			}
		case strings.ContainsRune(cmd.Name, replacementChar):
			if !report(CommandFlaw{Kind: CommandNameHasRepChar, Name: cmd.Name}) {
				return nil, false
			}
		}
	}

	seen := make(map[string]bool, len(s.Commands))
	reported := make(map[string]bool)
	for _, cmd := range s.Commands {
		if seen[cmd.Name] {
			if reported[cmd.Name] {
				continue
			}
			reported[cmd.Name] = true
			if !report(CommandFlaw{Kind: CommandDuplicate, Name: cmd.Name}) {
				return nil, false
			}
			continue
		}
		seen[cmd.Name] = true
	}

	for i := range s.Commands {
		cmd := &s.Commands[i]
		if optFlaws, ok := validateOptionSet(&cmd.Options, detail); !ok {
			if !report(CommandFlaw{Kind: CommandNestedOptionFlaws, Name: cmd.Name, NestedOptionFlaws: optFlaws}) {
				return nil, false
			}
		}
		if subFlaws, ok := validateCommandSet(&cmd.SubCommands, detail); !ok {
			if !report(CommandFlaw{Kind: CommandNestedSubCommandFlaws, Name: cmd.Name, NestedCommandFlaws: subFlaws}) {
				return nil, false
			}
		}
	}

	return flaws, len(flaws) == 0
}
