package help

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/keshon/gitlet/internal/command"
	"github.com/keshon/gitlet/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "help" }
func (c *Command) Aliases() []string { return []string{"h", "?"} }
func (c *Command) Usage() string     { return "help [command]" }
func (c *Command) Brief() string     { return "Show help for commands" }
func (c *Command) Help() string {
	return `Display help information for commands.

Usage:
  help          List all commands.
  help <name>   Show detailed help for a specific command.`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *flag.FlagSet)         {}

func (c *Command) Run(ctx *command.Context) error {
	if len(ctx.Args) > 1 {
		return command.ErrIncorrectOperands
	}
	if len(ctx.Args) == 1 {
		return runCommandHelp(ctx, strings.ToLower(ctx.Args[0]))
	}
	return runListAllCommands(ctx)
}

// runCommandHelp shows detailed help for a specific command
func runCommandHelp(ctx *command.Context, name string) error {
	cmd, ok := command.GetCommand(name)
	if !ok {
		return command.ErrUnknownCommand
	}

	if usage := cmd.Usage(); usage != "" {
		fmt.Fprintf(ctx.Out, "Usage: %s\n\n", usage)
	}
	fmt.Fprintf(ctx.Out, "%s\n", cmd.Help())

	if aliases := cmd.Aliases(); len(aliases) > 0 {
		fmt.Fprintf(ctx.Out, "\nAliases: %s\n", strings.Join(aliases, ", "))
	}
	return nil
}

// runListAllCommands lists all commands in a Git-style layout
func runListAllCommands(ctx *command.Context) error {
	commands := command.AllCommands()
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name() < commands[j].Name()
	})

	fmt.Fprint(ctx.Out, "Available commands:\n\n")
	longest := 0
	for _, cmd := range commands {
		if l := len(cmd.Name()); l > longest {
			longest = l
		}
	}

	for _, cmd := range commands {
		name := cmd.Name()
		desc := cmd.Brief()
		if desc == "" {
			desc = "-"
		}

		padding := strings.Repeat(" ", longest-len(name)+2)
		fmt.Fprintf(ctx.Out, "  %s%s%s\n", name, padding, desc)
	}

	fmt.Fprintln(ctx.Out, "\nType 'help <command>' to see detailed information about a specific command.")
	return nil
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
		),
	)
}
