package middleware

import (
	"github.com/charmbracelet/log"
	"github.com/keshon/gitlet/internal/command"
)

// WithDebugArgsPrint logs the command and its operands at debug level
func WithDebugArgsPrint() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) error {
				log.Debug("run command", "command", cmd.Name(), "args", ctx.Args)
				return cmd.Run(ctx)
			},
		}
	}
}
