package command

import "errors"

// UserError is an error that carries the exact text to show the user.
type UserError interface {
	error
	UserMessage() string
}

type usageError string

func (e usageError) Error() string       { return string(e) }
func (e usageError) UserMessage() string { return string(e) }

var (
	ErrNoCommand         error = usageError("Please enter a command.")
	ErrUnknownCommand    error = usageError("No command with that name exists.")
	ErrIncorrectOperands error = usageError("Incorrect operands.")
)

// Message returns the text printed for err: the user message when err carries
// one, the plain error text otherwise.
func Message(err error) string {
	var ue UserError
	if errors.As(err, &ue) {
		return ue.UserMessage()
	}
	return err.Error()
}

// IsUserError reports whether err is an expected, user-facing failure.
func IsUserError(err error) bool {
	var ue UserError
	return errors.As(err, &ue)
}
