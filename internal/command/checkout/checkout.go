package checkout

import (
	"flag"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "checkout" }
func (c *Command) Aliases() []string { return []string{"co"} }
func (c *Command) Usage() string {
	return "checkout -- <file> | checkout <commit> -- <file> | checkout <branch>"
}
func (c *Command) Brief() string { return "Restore files or switch branches" }
func (c *Command) Help() string {
	return `Restore a file from a commit, or switch to another branch.

Usage:
  checkout -- <file>            - restore file from the current commit
  checkout <commit> -- <file>   - restore file from the given commit (unique prefix allowed)
  checkout <branch>             - switch to branch, replacing tracked files and clearing staging

The restored file is not staged.`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	args := ctx.Args
	switch {
	case len(args) == 2 && args[0] == "--":
		return ctx.Repo.CheckoutFile(args[1])
	case len(args) == 3 && args[1] == "--":
		return ctx.Repo.CheckoutFileAt(args[0], args[2])
	case len(args) == 1:
		return ctx.Repo.CheckoutBranch(args[0])
	default:
		return command.ErrIncorrectOperands
	}
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
