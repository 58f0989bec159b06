// Package commands registers every gitlet command with the command tree.
package commands

import (
	_ "github.com/keshon/gitlet/internal/command/add"
	_ "github.com/keshon/gitlet/internal/command/branch"
	_ "github.com/keshon/gitlet/internal/command/checkout"
	_ "github.com/keshon/gitlet/internal/command/commit"
	_ "github.com/keshon/gitlet/internal/command/find"
	_ "github.com/keshon/gitlet/internal/command/global-log"
	_ "github.com/keshon/gitlet/internal/command/help"
	_ "github.com/keshon/gitlet/internal/command/init"
	_ "github.com/keshon/gitlet/internal/command/log"
	_ "github.com/keshon/gitlet/internal/command/merge"
	_ "github.com/keshon/gitlet/internal/command/reset"
	_ "github.com/keshon/gitlet/internal/command/rm"
	_ "github.com/keshon/gitlet/internal/command/rm-branch"
	_ "github.com/keshon/gitlet/internal/command/status"
	_ "github.com/keshon/gitlet/internal/command/verify"
)
