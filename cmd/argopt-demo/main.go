// Command argopt-demo is a small REPL for exercising a descriptor graph
// against ad-hoc command lines, either ones given on its own command
// line or typed interactively.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/dshess/argopt"
)

// demoDescriptors builds the descriptor graph argopt-demo parses its own
// command line (and any interactive input) against, unless --descriptors
// names a file to load instead.
func demoDescriptors() (argopt.OptionSet, argopt.CommandSet) {
	var opts argopt.OptionSet
	opts.AddLong("help", argopt.Flag).AddShort('h', argopt.Flag)
	opts.AddLong("descriptors", argopt.DataRequired).AddShort('d', argopt.DataRequired)
	opts.AddLong("dump", argopt.DataOptional)
	opts.AddLong("alternate", argopt.Flag)
	opts.AddLong("interactive", argopt.Flag).AddShort('i', argopt.Flag)
	opts.AddLong("verbose", argopt.Flag).AddShort('v', argopt.Flag)

	var cmds argopt.CommandSet
	var lintOpts argopt.OptionSet
	lintOpts.AddLong("strict", argopt.Flag)
	cmds.AddCommand(argopt.Command{
		Name:             "lint",
		Options:          lintOpts,
		PositionalPolicy: argopt.MinPositionals(1),
	})

	return opts, cmds
}

func main() {
	log.SetFlags(0)

	opts, cmds := demoDescriptors()
	args := argopt.ArgsFromOS(os.Args)

	// First pass, with fixed bootstrap settings, just to find the meta
	// options (--descriptors, --alternate, --verbose) that decide how the
	// real pass below should be configured. --alternate switches the mode
	// used to interpret this same command line, so it can't take effect
	// until a second pass re-parses with it applied.
	bootstrap := args.Parse(&argopt.Parser{Options: &opts, Commands: &cmds, Settings: argopt.DefaultParserSettings()})

	settings := argopt.DefaultParserSettings()
	if bootstrap.Root.Used(argopt.ByLong("alternate")) {
		settings.Mode = argopt.Alternate
	}
	verbose := bootstrap.Root.Used(argopt.ByPair('v', "verbose"))

	if path, ok := bootstrap.Root.FirstValue(argopt.ByPair('d', "descriptors")); ok {
		if verbose {
			log.Printf("loading descriptors from %q\n", path)
		}
		loaded, loadedCmds, err := argopt.LoadDescriptors(path)
		if err != nil {
			exitWithError(err)
		}
		opts, cmds = loaded, loadedCmds
	}

	analysis := args.Parse(&argopt.Parser{
		Options:     &opts,
		Commands:    &cmds,
		Settings:    settings,
		SuggestLong: argopt.LongOptionSuggester(&opts),
	})

	if analysis.Root.Used(argopt.ByPair('h', "help")) {
		printUsage()
		return
	}

	if analysis.Root.Used(argopt.ByLong("dump")) {
		if err := dumpAnalysis(analysis); err != nil {
			exitWithError(err)
		}
		return
	}

	if problem, ok := analysis.FirstProblem(); ok {
		reportProblem(problem)
		os.Exit(1)
	}

	if analysis.Root.Used(argopt.ByPair('i', "interactive")) {
		runInteractive(opts, cmds, settings)
		return
	}

	printAnalysis(analysis)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: argopt-demo [-d|--descriptors FILE] [--dump[=FILE]] [-i|--interactive] [ARGS...]")
	fmt.Fprintln(os.Stderr, "Parses ARGS (or, with --interactive, each line read from stdin) against a descriptor graph")
	fmt.Fprintln(os.Stderr, "and prints the resulting analysis.")
}

// dumpAnalysis writes the parsed Analysis as JSON, either to the path
// given as --dump's value (atomically, via renameio) or to stdout if
// --dump was given as a bare flag.
func dumpAnalysis(analysis argopt.Analysis) error {
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling analysis")
	}
	data = append(data, '\n')

	path, _ := analysis.Root.FirstValue(argopt.ByLong("dump"))
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return atomicWriteFile(path, data)
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "argopt-demo: %v\n", err)
	os.Exit(1)
}

func reportProblem(p argopt.ProblemItem) {
	fmt.Fprintf(os.Stderr, "argopt-demo: %s\n", describeProblem(p))
	if p.HasSuggestion {
		fmt.Fprintf(os.Stderr, "  did you mean --%s?\n", p.Suggestion)
	}
}

func describeProblem(p argopt.ProblemItem) string {
	switch p.Kind {
	case argopt.UnknownLong:
		return fmt.Sprintf("unknown option --%s", p.Name)
	case argopt.UnknownShort:
		return fmt.Sprintf("unknown option -%c", p.Ch)
	case argopt.AmbiguousLong:
		return fmt.Sprintf("ambiguous option --%s", p.Name)
	case argopt.LongWithUnexpectedData:
		return fmt.Sprintf("--%s does not take a value (got %q)", p.Name, p.Data)
	case argopt.LongMissingData:
		return fmt.Sprintf("--%s requires a value", p.Name)
	case argopt.ShortMissingData:
		return fmt.Sprintf("-%c requires a value", p.Ch)
	case argopt.UnexpectedPositional:
		return fmt.Sprintf("unexpected argument %q", p.Data)
	case argopt.MissingPositionals:
		return fmt.Sprintf("missing %d required argument(s)", p.Count)
	case argopt.UnknownCommand:
		return fmt.Sprintf("unknown command %q", p.Name)
	case argopt.AmbiguousCmd:
		return fmt.Sprintf("ambiguous command %q", p.Name)
	default:
		return "parse problem"
	}
}

// runInteractive reads shell-quoted lines from stdin, parses each against
// opts/cmds, and prints the resulting analysis.
func runInteractive(opts argopt.OptionSet, cmds argopt.CommandSet, settings argopt.ParserSettings) {
	color := term.IsTerminal(int(os.Stdout.Fd()))
	scanner := bufio.NewScanner(os.Stdin)
	prompt := "argopt> "
	if color {
		fmt.Fprint(os.Stdout, prompt)
	}
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if color {
				fmt.Fprint(os.Stdout, prompt)
			}
			continue
		}
		words, err := shlex.Split(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "argopt-demo: %v\n", err)
			if color {
				fmt.Fprint(os.Stdout, prompt)
			}
			continue
		}
		analysis := argopt.Parse(words, &argopt.Parser{Options: &opts, Commands: &cmds, Settings: settings})
		printAnalysis(analysis)
		if color {
			fmt.Fprint(os.Stdout, prompt)
		}
	}
}

// printAnalysis renders every item in the analysis tree as an aligned
// table: kind, identity, data value.
func printAnalysis(a argopt.Analysis) {
	printItemSet(&a.Root, 0)
}

func printItemSet(s *argopt.ItemSet, depth int) {
	indent := strings.Repeat("  ", depth)
	rows := make([][2]string, 0, len(s.Items))
	for _, it := range s.Items {
		rows = append(rows, itemRow(it.ClassifiedItem))
	}
	width := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r[0]); w > width {
			width = w
		}
	}
	for i, it := range s.Items {
		label, detail := rows[i][0], rows[i][1]
		pad := strings.Repeat(" ", width-runewidth.StringWidth(label))
		fmt.Printf("%s%s%s  %s\n", indent, label, pad, detail)
		if it.SubAnalysis != nil {
			printItemSet(it.SubAnalysis, depth+1)
		}
	}
}

func itemRow(ci argopt.ClassifiedItem) [2]string {
	if ci.IsProblem {
		return [2]string{"problem", describeProblem(ci.Problem)}
	}
	item := ci.Item
	switch item.Kind {
	case argopt.ItemOption:
		name := item.ID.Long
		if item.ID.IsShort {
			name = string(item.ID.Short)
		}
		detail := ""
		if item.HasData {
			detail = item.Data
		}
		return [2]string{"option " + name, detail}
	case argopt.ItemPositional:
		return [2]string{"positional", item.Text}
	case argopt.ItemCommand:
		return [2]string{"command", item.Text}
	case argopt.ItemEarlyTerminator:
		return [2]string{"--", ""}
	default:
		return [2]string{"?", ""}
	}
}
