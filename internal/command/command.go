package command

import (
	"flag"
	"io"

	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/repo"
)

// Command represents a cli command
type Command interface {
	Name() string
	Aliases() []string
	Usage() string
	Brief() string
	Help() string
	Subcommands() []Command
	Flags(fs *flag.FlagSet)
	Run(ctx *Context) error
}

// Context represents a cli context
type Context struct {
	Args  []string
	Flags *flag.FlagSet

	// Out receives everything the command prints for the user.
	Out     io.Writer
	WorkDir string
	FS      fs.FS

	// Options are passed to repo.Init and repo.Open.
	Options repo.Options
	// Repo is set by middleware.WithRepository.
	Repo *repo.Repository
}

// RepoOptions returns a copy of ctx.Options with the context filesystem applied.
func (ctx *Context) RepoOptions() *repo.Options {
	o := ctx.Options
	if o.FS == nil {
		o.FS = ctx.FS
	}
	return &o
}

// ExpectArgs fails with ErrIncorrectOperands unless exactly n operands were given.
func ExpectArgs(ctx *Context, n int) error {
	if len(ctx.Args) != n {
		return ErrIncorrectOperands
	}
	return nil
}
