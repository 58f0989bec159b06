package verify

import (
	"flag"
	"fmt"
	"time"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/middleware"
	"github.com/keshon/gitlet/internal/repo"
	"github.com/keshon/gitlet/internal/repo/store/object"
	"github.com/keshon/gitlet/internal/util"
)

const lineWidth = 50

type Command struct {
	workers int
}

func (c *Command) Name() string      { return "verify" }
func (c *Command) Aliases() []string { return []string{"check"} }
func (c *Command) Usage() string     { return "verify [--workers=<n>]" }
func (c *Command) Brief() string     { return "Verify repository integrity" }
func (c *Command) Help() string {
	return `Check every commit reachable from a branch and every blob those
commits reference. Commits must hash to their id and blobs must exist and
hash to their id. Leftover temporary files from interrupted writes are removed.

Options:
  -w, --workers=<n>   Number of blobs checked in parallel (default: number of CPUs).

Usage:
  verify`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet) {
	fs.IntVar(&c.workers, "workers", util.WorkerCount(), "parallel blob checks")
	fs.IntVar(&c.workers, "w", util.WorkerCount(), "alias for --workers")
}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExpectArgs(ctx, 0); err != nil {
		return err
	}
	out := ctx.Out
	fmt.Fprint(out, "Legend: █ OK   M Missing   D Damaged\n\n")

	start := time.Now()
	count, okCount, missingCount, damagedCount := 0, 0, 0, 0

	report, err := ctx.Repo.Verify(c.workers, func(bc repo.BlobCheck) {
		switch bc.Status {
		case object.OK:
			fmt.Fprint(out, "█")
			okCount++
		case object.Missing:
			fmt.Fprint(out, "M")
			missingCount++
		case object.Damaged:
			fmt.Fprint(out, "D")
			damagedCount++
		}
		count++
		if count%lineWidth == 0 {
			fmt.Fprintf(out, "  %d\n", count)
		}
	})
	if err != nil {
		return err
	}
	if count%lineWidth != 0 {
		fmt.Fprintf(out, "  %d\n", count)
	}

	fmt.Fprintf(out, "\nScan complete in %s.\n", time.Since(start).Truncate(time.Millisecond))
	fmt.Fprintf(out, "Commits: %d   Blobs OK: %d   Missing: %d   Damaged: %d\n",
		report.Commits, okCount, missingCount, damagedCount)

	if !report.OK() {
		fmt.Fprintln(out, "\nProblems:")
		for _, p := range report.Problems {
			fmt.Fprintf(out, "  %s\n", p)
		}
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
