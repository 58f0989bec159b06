package repo

// Error is a failure the user caused, carrying the message printed for it.
type Error struct {
	kind *Error
	msg  string
}

func newError(msg string) *Error {
	e := &Error{msg: msg}
	e.kind = e
	return e
}

// variant returns an error of the same kind with different wording.
func (e *Error) variant(msg string) *Error {
	return &Error{kind: e.kind, msg: msg}
}

func (e *Error) Error() string       { return e.msg }
func (e *Error) UserMessage() string { return e.msg }

// Is matches any error of the same kind, so variants satisfy errors.Is on the base sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.kind == e.kind
}

var (
	ErrNotInitialized     = newError("Not in an initialized Gitlet directory.")
	ErrAlreadyInitialized = newError("A Gitlet version-control system already exists in the current directory.")

	ErrEmptyMessage         = newError("Please enter a commit message.")
	ErrNoChanges            = newError("No changes added to the commit.")
	ErrFileMissing          = newError("File does not exist.")
	ErrNothingToRemove      = newError("No reason to remove the file.")
	ErrNoSuchCommit         = newError("No commit with that id exists.")
	ErrAmbiguousPrefix      = newError("Commit id prefix is ambiguous.")
	ErrFileNotInCommit      = newError("File does not exist in that commit.")
	ErrNoSuchBranch         = newError("A branch with that name does not exist.")
	ErrBranchExists         = newError("A branch with that name already exists.")
	ErrCannotDeleteCurrent  = newError("Cannot remove the current branch.")
	ErrSelfMerge            = newError("Cannot merge a branch with itself.")
	ErrUncommittedChanges   = newError("You have uncommitted changes.")
	ErrGivenIsAncestor      = newError("Given branch is an ancestor of the current branch.")
	ErrUntrackedObstruction = newError("There is an untracked file in the way; delete it or add it first.")
	ErrAlreadyOnBranch      = newError("No need to checkout the current branch.")
	ErrNoMatchingCommit     = newError("Found no commit with that message.")
	ErrInvalidBranchName    = newError("Invalid branch name.")

	errNoSuchCheckoutBranch = ErrNoSuchBranch.variant("No such branch exists.")
)
