package add

import (
	"flag"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "add" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "add <file>" }
func (c *Command) Brief() string     { return "Stage a file for the next commit" }
func (c *Command) Help() string {
	return `Stage the current contents of a file.

Adding a file whose contents match the current commit unstages it instead.
A file staged for removal is no longer staged for removal once added.

Usage:
  add <file>`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExpectArgs(ctx, 1); err != nil {
		return err
	}
	return ctx.Repo.Add(ctx.Args[0])
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithRepository(),
			middleware.WithDebugArgsPrint(),
		),
	)
}
