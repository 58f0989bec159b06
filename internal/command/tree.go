package command

// Node represents a node in the command tree.
type Node struct {
	Cmd         Command
	Subcommands map[string]*Node
}

// CommandTree manages all commands and subcommands.
type CommandTree struct {
	root *Node
}

// NewTree creates a new empty command tree.
func NewTree() *CommandTree {
	return &CommandTree{
		root: &Node{Subcommands: make(map[string]*Node)},
	}
}

// Register inserts a command and all its subcommands recursively.
func (t *CommandTree) Register(cmd Command) {
	t.insert(t.root, cmd)
}

// Get returns a top-level command by name or alias.
func (t *CommandTree) Get(name string) (Command, bool) {
	node, ok := t.root.Subcommands[name]
	if !ok {
		return nil, false
	}
	return node.Cmd, true
}

func (t *CommandTree) insert(node *Node, cmd Command) {
	names := append([]string{cmd.Name()}, cmd.Aliases()...)
	for _, n := range names {
		if node.Subcommands == nil {
			node.Subcommands = make(map[string]*Node)
		}
		sub := &Node{Cmd: cmd, Subcommands: make(map[string]*Node)}
		node.Subcommands[n] = sub
		for _, subcmd := range cmd.Subcommands() {
			t.insert(sub, subcmd)
		}
	}
}

// Resolve walks down the command tree following args. The first argument
// must name a registered command.
func (t *CommandTree) Resolve(args []string) (*Node, []string, error) {
	if len(args) == 0 {
		return nil, nil, ErrNoCommand
	}
	node := t.root
	for len(args) > 0 {
		next, ok := node.Subcommands[args[0]]
		if !ok {
			break
		}
		node = next
		args = args[1:]
	}
	if node.Cmd == nil {
		return nil, nil, ErrUnknownCommand
	}
	return node, args, nil
}

// All returns every distinct command in the tree.
func (t *CommandTree) All() []Command {
	cmds := make([]Command, 0)
	seen := make(map[Command]struct{})

	var walk func(node *Node)
	walk = func(node *Node) {
		if node.Cmd != nil {
			if _, ok := seen[node.Cmd]; !ok {
				cmds = append(cmds, node.Cmd)
				seen[node.Cmd] = struct{}{}
			}
		}
		for _, sub := range node.Subcommands {
			walk(sub)
		}
	}

	walk(t.root)
	return cmds
}
