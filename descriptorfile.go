package argopt

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// This file loads and saves descriptor graphs (an OptionSet plus a
// CommandSet) from YAML, in the same load-or-create-default shape
// aretext uses for its own rule-file config: a well-known XDG config
// path, read and validated if present; if not, a caller-supplied default
// is written there and returned as given, without re-reading it.

// descriptorDoc is the on-disk YAML shape. Short options are written as
// single-character strings for readability; Data is one of "flag",
// "required" or "optional", defaulting to "flag" if omitted.
type descriptorDoc struct {
	Options  []yamlOption  `yaml:"options,omitempty"`
	Commands []yamlCommand `yaml:"commands,omitempty"`
}

type yamlOption struct {
	Long  string `yaml:"long,omitempty"`
	Short string `yaml:"short,omitempty"`
	Data  string `yaml:"data,omitempty"`
}

type yamlCommand struct {
	Name           string        `yaml:"name"`
	Options        []yamlOption  `yaml:"options,omitempty"`
	Commands       []yamlCommand `yaml:"commands,omitempty"`
	PositionalMin  *Quantity     `yaml:"positionalMin,omitempty"`
	PositionalMax  *Quantity     `yaml:"positionalMax,omitempty"`
}

func dataKindFromYAML(s string) (DataKind, error) {
	switch s {
	case "", "flag":
		return Flag, nil
	case "required":
		return DataRequired, nil
	case "optional":
		return DataOptional, nil
	default:
		return Flag, errors.Errorf("unknown data kind %q", s)
	}
}

func dataKindToYAML(k DataKind) string {
	switch k {
	case DataRequired:
		return "required"
	case DataOptional:
		return "optional"
	default:
		return "flag"
	}
}

func optionSetFromYAML(opts []yamlOption) (OptionSet, error) {
	var set OptionSet
	for _, o := range opts {
		kind, err := dataKindFromYAML(o.Data)
		if err != nil {
			return OptionSet{}, err
		}
		if o.Long != "" {
			set.AddLong(o.Long, kind)
		}
		if o.Short != "" {
			r := []rune(o.Short)
			if len(r) != 1 {
				return OptionSet{}, errors.Errorf("short option %q must be exactly one character", o.Short)
			}
			set.AddShort(r[0], kind)
		}
	}
	return set, nil
}

func optionSetToYAML(set OptionSet) []yamlOption {
	out := make([]yamlOption, 0, len(set.Long)+len(set.Short))
	for _, lo := range set.Long {
		out = append(out, yamlOption{Long: lo.Name, Data: dataKindToYAML(lo.Kind)})
	}
	for _, so := range set.Short {
		out = append(out, yamlOption{Short: string(so.Ch), Data: dataKindToYAML(so.Kind)})
	}
	return out
}

func commandSetFromYAML(cmds []yamlCommand) (CommandSet, error) {
	var set CommandSet
	for _, c := range cmds {
		opts, err := optionSetFromYAML(c.Options)
		if err != nil {
			return CommandSet{}, errors.Wrapf(err, "command %q", c.Name)
		}
		sub, err := commandSetFromYAML(c.Commands)
		if err != nil {
			return CommandSet{}, errors.Wrapf(err, "command %q", c.Name)
		}
		policy := defaultPositionalsPolicy
		if c.PositionalMin != nil {
			policy.Min = *c.PositionalMin
		}
		if c.PositionalMax != nil {
			policy.Max = *c.PositionalMax
		}
		set.AddCommand(Command{
			Name:             c.Name,
			Options:          opts,
			SubCommands:      sub,
			PositionalPolicy: policy,
		})
	}
	return set, nil
}

func commandSetToYAML(set CommandSet) []yamlCommand {
	out := make([]yamlCommand, 0, len(set.Commands))
	for _, c := range set.Commands {
		min, max := c.PositionalPolicy.Min, c.PositionalPolicy.Max
		out = append(out, yamlCommand{
			Name:          c.Name,
			Options:       optionSetToYAML(c.Options),
			Commands:      commandSetToYAML(c.SubCommands),
			PositionalMin: &min,
			PositionalMax: &max,
		})
	}
	return out
}

// ParseDescriptors unmarshals a descriptor document from YAML.
func ParseDescriptors(data []byte) (OptionSet, CommandSet, error) {
	var doc descriptorDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return OptionSet{}, CommandSet{}, errors.Wrap(err, "yaml.Unmarshal")
	}
	opts, err := optionSetFromYAML(doc.Options)
	if err != nil {
		return OptionSet{}, CommandSet{}, err
	}
	cmds, err := commandSetFromYAML(doc.Commands)
	if err != nil {
		return OptionSet{}, CommandSet{}, err
	}
	return opts, cmds, nil
}

// MarshalDescriptors serializes a descriptor graph to YAML.
func MarshalDescriptors(opts OptionSet, cmds CommandSet) ([]byte, error) {
	doc := descriptorDoc{
		Options:  optionSetToYAML(opts),
		Commands: commandSetToYAML(cmds),
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "yaml.Marshal")
	}
	return data, nil
}

// DescriptorsPath returns the XDG config path for the descriptor file.
func DescriptorsPath() (string, error) {
	path := filepath.Join("argopt", "descriptors.yaml")
	return xdg.ConfigFile(path)
}

// LoadDescriptors reads and validates a descriptor graph from path.
func LoadDescriptors(path string) (OptionSet, CommandSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return OptionSet{}, CommandSet{}, errors.Wrapf(err, "reading %q", path)
	}
	opts, cmds, err := ParseDescriptors(data)
	if err != nil {
		return OptionSet{}, CommandSet{}, err
	}
	if flaws := opts.Validate(); len(flaws) > 0 {
		return OptionSet{}, CommandSet{}, errors.Errorf("invalid options in %q: %d flaw(s), first: %+v", path, len(flaws), flaws[0])
	}
	if flaws := cmds.Validate(); len(flaws) > 0 {
		return OptionSet{}, CommandSet{}, errors.Errorf("invalid commands in %q: %d flaw(s), first: %+v", path, len(flaws), flaws[0])
	}
	return opts, cmds, nil
}

// LoadOrCreateDescriptors loads the descriptor file at the XDG config
// path if it exists, or writes defaultOpts/defaultCmds there and returns
// those if it doesn't.
func LoadOrCreateDescriptors(defaultOpts OptionSet, defaultCmds CommandSet) (OptionSet, CommandSet, error) {
	path, err := DescriptorsPath()
	if err != nil {
		return OptionSet{}, CommandSet{}, errors.Wrap(err, "resolving descriptors path")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		data, err := MarshalDescriptors(defaultOpts, defaultCmds)
		if err != nil {
			return OptionSet{}, CommandSet{}, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return OptionSet{}, CommandSet{}, errors.Wrapf(err, "creating %q", filepath.Dir(path))
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return OptionSet{}, CommandSet{}, errors.Wrapf(err, "writing default descriptors to %q", path)
		}
		return defaultOpts, defaultCmds, nil
	} else if err != nil {
		return OptionSet{}, CommandSet{}, errors.Wrapf(err, "statting %q", path)
	}

	return LoadDescriptors(path)
}
