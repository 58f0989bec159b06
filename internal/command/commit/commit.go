package commit

import (
	"flag"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "commit" }
func (c *Command) Aliases() []string { return []string{"ci"} }
func (c *Command) Usage() string     { return `commit "<message>"` }
func (c *Command) Brief() string     { return "Commit staged changes to the current branch" }
func (c *Command) Help() string {
	return `Record the staged additions and removals as a new commit.

The message is a single operand; quote it when it contains spaces.

Usage:
  commit "<message>"`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExpectArgs(ctx, 1); err != nil {
		return err
	}
	_, err := ctx.Repo.Commit(ctx.Args[0])
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
