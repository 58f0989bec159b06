package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/keshon/gitlet/internal/command"
	_ "github.com/keshon/gitlet/internal/commands"
	"github.com/keshon/gitlet/internal/config"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "gitlet",
		Level:  log.WarnLevel,
	})
	if v := os.Getenv(config.LogLevelEnv); v != "" {
		if lvl, err := log.ParseLevel(v); err == nil {
			logger.SetLevel(lvl)
		} else {
			logger.Warn("ignoring "+config.LogLevelEnv, "value", v)
		}
	}
	log.SetDefault(logger)

	os.Exit(command.RunCLI(os.Args[1:]))
}
