package branch

import (
	"flag"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "branch" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "branch <name>" }
func (c *Command) Brief() string     { return "Create a branch at the current commit" }
func (c *Command) Help() string {
	return `Create a new branch pointing at the current commit.
The current branch does not change.

Usage:
  branch <name>`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExpectArgs(ctx, 1); err != nil {
		return err
	}
	return ctx.Repo.CreateBranch(ctx.Args[0])
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
