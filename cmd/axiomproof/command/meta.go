// Package command implements the axiomproof CLI's single command.
package command

import (
	"flag"
	"io"

	"github.com/hashicorp/cli"
)

// Meta holds the fields shared across the CLI layer -- just a Ui here,
// since axiomproof has one command, but the split keeps flag-set
// construction out of the command's Run method.
type Meta struct {
	Ui cli.Ui
}

// NewFlagSet returns a flag.FlagSet whose usage output is suppressed;
// Command.Help already documents every flag, so a second, differently
// formatted usage dump on parse error would be redundant noise.
func (m *Meta) NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}
