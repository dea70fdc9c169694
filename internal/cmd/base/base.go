package base

import (
	"flag"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

// Command contains the common state for all CLI commands.
type Command struct {
	// Log is the logger to use.
	Log hclog.Logger

	// UI is the CLI UI for input and output.
	UI cli.Ui
}

// FlagSet wraps a standard flag.FlagSet so commands can render their flag
// usage inside their help text.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet creates a new wrapped flag set.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: f}
}

// Help returns the usage text for all defined flags.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")

	f.VisitAll(func(fl *flag.Flag) {
		b.WriteString("  -")
		b.WriteString(fl.Name)
		if fl.DefValue != "" {
			b.WriteString("=")
			b.WriteString(fl.DefValue)
		}
		b.WriteString("\n      ")
		b.WriteString(fl.Usage)
		b.WriteString("\n")
	})

	return b.String()
}
