package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

const (
	programName = "relnotes"
	usageLine   = "Usage: " + programName + " [flags] <spaceName> <projectName> <environmentName>"
	exampleLine = "Example: " + programName + ` "Default" "Octopus Copilot Function" "Production"`
)

// Invocation is the parsed command line.
type Invocation struct {
	Space       string
	Project     string
	Environment string

	ConfigPath  string
	OutputDir   string
	OutputName  string
	LogLevel    string
	DryRun      bool
	Quiet       bool
	Interactive bool
	Sanitize    bool
}

// Positionals returns the three names in CLI order.
func (inv Invocation) Positionals() []string {
	return []string{inv.Space, inv.Project, inv.Environment}
}

// Complete reports whether all three names are present.
func (inv Invocation) Complete() bool {
	for _, v := range inv.Positionals() {
		if v == "" {
			return false
		}
	}
	return true
}

// ParseInvocation parses flags followed by up to three positionals. Missing
// positionals are left empty; callers decide whether to prompt or fail.
// Positionals beyond the third are ignored.
//
// Only leading tokens naming a registered flag are parsed as flags, so a name
// such as "-Ops" is a positional. -h and -help print the flag listing only when
// fewer than three names follow; otherwise they are names too.
func ParseInvocation(args []string, stderr io.Writer) (Invocation, error) {
	var inv Invocation

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		writeUsage(stderr)
		fmt.Fprintln(stderr, "\nFlags:")
		fs.PrintDefaults()
	}
	fs.StringVar(&inv.ConfigPath, "config", "", "path to relnotes.yaml (defaults to $CONFIG_PATH)")
	fs.StringVar(&inv.OutputDir, "output-dir", "", "directory to write the release notes into")
	fs.StringVar(&inv.OutputName, "output", "", "output file name (default RELEASE_NOTES.md)")
	fs.StringVar(&inv.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.BoolVar(&inv.DryRun, "dry-run", false, "print the markdown to stdout instead of writing a file")
	fs.BoolVar(&inv.Quiet, "quiet", false, "suppress progress narration")
	fs.BoolVar(&inv.Interactive, "interactive", false, "prompt for missing names instead of failing")
	fs.BoolVar(&inv.Sanitize, "sanitize", false, "strip HTML markup from names")

	flagArgs, rest := splitFlags(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		return Invocation{}, err
	}
	if len(rest) < 3 && len(rest) > 0 && isHelp(rest[0]) {
		fs.Usage()
		return Invocation{}, flag.ErrHelp
	}

	targets := []*string{&inv.Space, &inv.Project, &inv.Environment}
	for i := 0; i < len(targets) && i < len(rest); i++ {
		*targets[i] = rest[i]
	}
	return inv, nil
}

// splitFlags returns the leading tokens that belong to registered flags and
// the remaining positionals. A "--" terminator is consumed.
func splitFlags(fs *flag.FlagSet, args []string) ([]string, []string) {
	i := 0
	for i < len(args) {
		arg := args[i]
		if arg == "--" {
			return args[:i], args[i+1:]
		}
		name, hasValue := flagName(arg)
		if name == "" {
			break
		}
		f := fs.Lookup(name)
		if f == nil {
			break
		}
		i++
		if hasValue || isBoolFlag(f) {
			continue
		}
		if i < len(args) {
			i++
		}
	}
	return args[:i], args[i:]
}

func flagName(arg string) (string, bool) {
	if len(arg) < 2 || arg[0] != '-' {
		return "", false
	}
	name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	if name == "" || name[0] == '-' || name[0] == '=' {
		return "", false
	}
	if idx := strings.Index(name, "="); idx >= 0 {
		return name[:idx], true
	}
	return name, false
}

func isBoolFlag(f *flag.Flag) bool {
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && bf.IsBoolFlag()
}

func isHelp(arg string) bool {
	switch arg {
	case "-h", "-help", "--h", "--help":
		return true
	}
	return false
}

func writeUsage(w io.Writer) {
	fmt.Fprintln(w, usageLine)
	fmt.Fprintln(w, exampleLine)
}
