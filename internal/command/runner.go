package command

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/keshon/gitlet/internal/fs"
)

// RunCLI runs one command from the process arguments in the current
// directory and returns the process exit code.
func RunCLI(args []string) int {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	ctx := &Context{
		Out:     os.Stdout,
		WorkDir: wd,
		FS:      fs.NewOSFS(),
	}
	return Execute(ctx, args, os.Stderr)
}

// Execute dispatches args and reports the outcome. User-facing failures are
// printed to ctx.Out and still exit 0, the way gitlet always has; anything
// else is an internal error, printed to errOut with exit code 1.
func Execute(ctx *Context, args []string, errOut io.Writer) int {
	err := Dispatch(ctx, args)
	switch {
	case err == nil:
		return 0
	case IsUserError(err):
		log.Debug("command refused", "args", args, "err", err)
		fmt.Fprintln(ctx.Out, Message(err))
		return 0
	default:
		fmt.Fprintln(errOut, "Error:", err)
		return 1
	}
}

// Dispatch resolves the command named by args, parses its flags and runs it.
// Commands that declare no flags receive their operands verbatim, so "--"
// reaches them untouched.
func Dispatch(ctx *Context, args []string) error {
	node, remaining, err := ResolveCommand(args)
	if err != nil {
		return err
	}
	cmd := node.Cmd

	flags := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	cmd.Flags(flags)

	ctx.Args = remaining
	if hasFlags(flags) {
		if err := flags.Parse(remaining); err != nil {
			return fmt.Errorf("%s: %v: %w", cmd.Name(), err, ErrIncorrectOperands)
		}
		ctx.Args = flags.Args()
	}
	ctx.Flags = flags

	return cmd.Run(ctx)
}

func hasFlags(flags *flag.FlagSet) bool {
	n := 0
	flags.VisitAll(func(*flag.Flag) { n++ })
	return n > 0
}
