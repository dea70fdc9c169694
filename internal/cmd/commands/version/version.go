package version

import (
	"github.com/saasbridge/saasbridge/internal/cmd/base"
	"github.com/saasbridge/saasbridge/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version of this binary"
}

func (c *Command) Help() string {
	return "Usage: saasbridge version"
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
