package status

import (
	"flag"
	"fmt"
	"io"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/middleware"
	"github.com/keshon/gitlet/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "status" }
func (c *Command) Aliases() []string { return []string{"st"} }
func (c *Command) Usage() string     { return "status" }
func (c *Command) Brief() string     { return "Show branches, staging area and working tree state" }
func (c *Command) Help() string {
	return `Show the working tree status.

Sections:
  Branches                                 all branches, current one marked with *
  Staged Files                             files staged for addition
  Removed Files                            files staged for removal
  Modifications Not Staged For Commit      tracked files changed or deleted since staging
  Untracked Files                          files neither tracked nor staged

Paths matching .gitletignore never appear as untracked.`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExpectArgs(ctx, 0); err != nil {
		return err
	}
	st, err := ctx.Repo.Status()
	if err != nil {
		return err
	}
	Print(ctx.Out, st)
	return nil
}

// Print writes st in the five-section layout.
func Print(w io.Writer, st *repo.Status) {
	fmt.Fprintln(w, "=== Branches ===")
	for _, b := range st.Branches {
		if b == st.Current {
			fmt.Fprintf(w, "*%s\n", b)
		} else {
			fmt.Fprintln(w, b)
		}
	}
	fmt.Fprintln(w)

	section(w, "Staged Files", st.Staged)
	section(w, "Removed Files", st.Removed)
	section(w, "Modifications Not Staged For Commit", st.Modified)
	section(w, "Untracked Files", st.Untracked)
}

func section(w io.Writer, title string, lines []string) {
	fmt.Fprintf(w, "=== %s ===\n", title)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	fmt.Fprintln(w)
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
