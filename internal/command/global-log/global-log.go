package global_log

import (
	"flag"
	"fmt"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "global-log" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "global-log" }
func (c *Command) Brief() string     { return "Show every commit ever made" }
func (c *Command) Help() string {
	return `Show every stored commit, in commit id order, in the same format as log.

Usage:
  global-log`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExpectArgs(ctx, 0); err != nil {
		return err
	}
	entries, err := ctx.Repo.GlobalLog()
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprint(ctx.Out, ctx.Repo.FormatLogEntry(e))
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
