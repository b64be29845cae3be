package lzw

// Error marks an internal lzw error.
type Error struct {
	Msg string
}

// Error returns the error message with the prefix "lzw - ".
func (e Error) Error() string {
	return "lzw - " + e.Msg
}

// newError creates a new lzw error with the given message.
func newError(msg string) error {
	return Error{msg}
}

// errInvalidCode indicates a code that is neither in the dictionary
// nor derivable from the previous code.
var errInvalidCode = newError("invalid code")
