package reset

import (
	"flag"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "reset" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "reset <commit>" }
func (c *Command) Brief() string     { return "Move the current branch to a commit" }
func (c *Command) Help() string {
	return `Check out every file of the given commit, remove tracked files it does
not have, clear the staging area and move the current branch to it.
The commit may be abbreviated to any unique prefix.

Usage:
  reset <commit>`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExpectArgs(ctx, 1); err != nil {
		return err
	}
	_, err := ctx.Repo.Reset(ctx.Args[0])
	return err
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
