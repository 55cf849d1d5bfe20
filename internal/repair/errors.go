package repair

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes why Repair could not produce a valid document.
type ErrorCode string

const (
	// ErrUnexpectedEnd means the input ended before any value was parsed.
	ErrUnexpectedEnd ErrorCode = "UNEXPECTED_END"

	// ErrUnexpectedChar means trailing input remained after a complete
	// value (and any tolerated trailing garbage) was parsed.
	ErrUnexpectedChar ErrorCode = "UNEXPECTED_CHARACTER"

	// ErrObjectKey means an object entry began with a character that is
	// neither a key nor a closing brace/bracket.
	ErrObjectKey ErrorCode = "OBJECT_KEY_EXPECTED"

	// ErrColonExpected means an object entry has no colon and the
	// following token does not look like the start of a value.
	ErrColonExpected ErrorCode = "COLON_EXPECTED"

	// ErrInvalidCharacter means a string body contained a control
	// character below U+0020 that has no recognized escape.
	ErrInvalidCharacter ErrorCode = "INVALID_CHARACTER"

	// ErrInvalidUnicode means a \u escape had fewer than four hex digits
	// and the string did not end within them.
	ErrInvalidUnicode ErrorCode = "INVALID_UNICODE_CHARACTER"

	// ErrMaxDepthExceeded means the input nests deeper than this engine
	// is willing to recurse. Not part of the original grammar's error
	// set; a defensive bound against stack overflow on adversarial input.
	ErrMaxDepthExceeded ErrorCode = "MAX_DEPTH_EXCEEDED"
)

// Error reports where and why a repair attempt failed. Position is a
// rune index into the original input, always within [0, len(input)].
type Error struct {
	Code     ErrorCode
	Message  string
	Position int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at position %d", e.Message, e.Position)
}

func newError(code ErrorCode, message string, position int) *Error {
	return &Error{Code: code, Message: message, Position: position}
}

// CodeOf extracts the ErrorCode from err if it (or something it wraps)
// is a *Error.
func CodeOf(err error) (ErrorCode, bool) {
	var re *Error
	if errors.As(err, &re) {
		return re.Code, true
	}
	return "", false
}

// IsUnexpectedEnd reports whether err is a *Error with code
// ErrUnexpectedEnd, following wrapped errors via errors.As.
func IsUnexpectedEnd(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == ErrUnexpectedEnd
}

// IsMaxDepthExceeded reports whether err is a *Error with code
// ErrMaxDepthExceeded, following wrapped errors via errors.As.
func IsMaxDepthExceeded(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == ErrMaxDepthExceeded
}
