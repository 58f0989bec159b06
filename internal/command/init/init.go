package initcmd

import (
	"flag"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/middleware"
	"github.com/keshon/gitlet/internal/repo"
)

type Command struct {
	objectFormat  string
	initialBranch string
	noCompress    bool
}

func (c *Command) Name() string      { return "init" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "init [options]" }
func (c *Command) Brief() string     { return "Initialize a new repository" }
func (c *Command) Help() string {
	return `Initialize a new repository in the current directory, with a single
initial commit on the initial branch.

Options:
      --object-format=<algo>    Hash algorithm: xxh3 or sha256 (default xxh3).
  -b, --initial-branch=<name>   Name of the initial branch (default: master).
      --no-compress             Store blobs uncompressed.

Usage:
  init [options]

Examples:
  init
  init --object-format=sha256
  init -b trunk`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet) {
	fs.StringVar(&c.objectFormat, "object-format", config.DefaultHash, "hash algorithm")
	fs.StringVar(&c.initialBranch, "initial-branch", config.DefaultBranch, "initial branch name")
	fs.StringVar(&c.initialBranch, "b", config.DefaultBranch, "alias for --initial-branch")
	fs.BoolVar(&c.noCompress, "no-compress", false, "store blobs uncompressed")
}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExpectArgs(ctx, 0); err != nil {
		return err
	}
	opts := ctx.RepoOptions()
	opts.Hash = c.objectFormat
	opts.InitialBranch = c.initialBranch
	opts.NoCompression = c.noCompress

	_, err := repo.Init(ctx.WorkDir, opts)
	return err
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
		),
	)
}
