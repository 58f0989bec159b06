package merge

import (
	"flag"
	"fmt"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "merge" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "merge <branch>" }
func (c *Command) Brief() string     { return "Merge a branch into the current branch" }
func (c *Command) Help() string {
	return `Merge the given branch into the current one.

The split point is the common ancestor closest to both branch tips. When it
is the current tip the branch is fast-forwarded and no commit is made.
Otherwise each file is merged three-way and a merge commit with both tips as
parents is recorded. Conflicting files are written with conflict markers and
committed as they are.

Usage:
  merge <branch>`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExpectArgs(ctx, 1); err != nil {
		return err
	}
	res, err := ctx.Repo.Merge(ctx.Args[0])
	if err != nil {
		return err
	}
	switch {
	case res.FastForward:
		fmt.Fprintln(ctx.Out, "Current branch fast-forwarded.")
	case len(res.Conflicts) > 0:
		fmt.Fprintln(ctx.Out, "Encountered a merge conflict.")
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
