package middleware

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/repo"
)

// WithRepository opens the repository in ctx.WorkDir before the command runs
// and persists it only when the command succeeds.
func WithRepository() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) error {
				r, err := repo.Open(ctx.WorkDir, ctx.RepoOptions())
				if err != nil {
					return err
				}
				applyLogLevel(r)

				ctx.Repo = r
				if err := cmd.Run(ctx); err != nil {
					return err
				}
				return r.Save()
			},
		}
	}
}

// applyLogLevel honors the repository's log_level unless the environment
// already chose one.
func applyLogLevel(r *repo.Repository) {
	setting := r.Config.Settings.LogLevel
	if setting == "" || os.Getenv(config.LogLevelEnv) != "" {
		return
	}
	lvl, err := log.ParseLevel(setting)
	if err != nil {
		r.Logger.Warn("ignoring log_level", "value", setting, "err", err)
		return
	}
	r.Logger.SetLevel(lvl)
}
