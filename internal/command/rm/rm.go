package rm

import (
	"flag"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "rm" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "rm <file>" }
func (c *Command) Brief() string     { return "Unstage a file or stage its removal" }
func (c *Command) Help() string {
	return `Unstage a file that is staged for addition. Otherwise, if the current
commit tracks the file, stage it for removal and delete it from the working
directory.

Usage:
  rm <file>`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExpectArgs(ctx, 1); err != nil {
		return err
	}
	_, err := ctx.Repo.Remove(ctx.Args[0])
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
