package find

import (
	"flag"
	"fmt"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "find" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return `find "<message>"` }
func (c *Command) Brief() string     { return "List commits with the given message" }
func (c *Command) Help() string {
	return `Print the id of every commit whose message is exactly the given one,
one per line.

Usage:
  find "<message>"`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExpectArgs(ctx, 1); err != nil {
		return err
	}
	ids, err := ctx.Repo.Find(ctx.Args[0])
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Fprintln(ctx.Out, id)
	}
	return nil
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
