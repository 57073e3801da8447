package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic checking via errors.Is().
var (
	// ErrMalformedDocument indicates a line that is illegal in the current parser state.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrInvalidDependencyKind indicates a kind token other than "array" or "scalar".
	ErrInvalidDependencyKind = errors.New("invalid dependency kind")

	// ErrInvalidDependencyOrigin indicates an origin token outside [above], [below], constant, external.
	ErrInvalidDependencyOrigin = errors.New("invalid dependency origin")

	// ErrDuplicateTargetDefinition indicates two sections declaring the same target.
	ErrDuplicateTargetDefinition = errors.New("duplicate target definition")

	// ErrUnreadableInput indicates the input could not be opened or read.
	ErrUnreadableInput = errors.New("unreadable input")

	// ErrInvalidIdentifier indicates a target or dependency name that is not an identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrAssemblerFinalized is returned when committing to an assembler that already produced its graph.
	ErrAssemblerFinalized = errors.New("assembler already finalized")
)

// LineError reports a failure tied to one line of the input.
// Kind is one of the sentinel errors above and is what Unwrap returns.
type LineError struct {
	Kind  error
	Line  int    // 1-based; 0 when the failure is at end of input
	Text  string // raw line content, whitespace-stripped
	Token string // offending token, if any
	Msg   string
}

func (e *LineError) Error() string {
	if e == nil {
		return ""
	}
	kind := ErrMalformedDocument
	if e.Kind != nil {
		kind = e.Kind
	}
	msg := e.Msg
	if msg == "" {
		msg = kind.Error()
	} else {
		msg = kind.Error() + ": " + msg
	}
	if e.Line <= 0 {
		return msg
	}
	return fmt.Sprintf("line %d: %s: %q", e.Line, msg, e.Text)
}

func (e *LineError) Unwrap() error {
	if e.Kind == nil {
		return ErrMalformedDocument
	}
	return e.Kind
}

// DuplicateTargetError reports a target declared by more than one section.
type DuplicateTargetError struct {
	Target    string
	Line      int
	FirstLine int
}

func (e *DuplicateTargetError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("line %d: %s: %q already declared at line %d",
		e.Line, ErrDuplicateTargetDefinition, e.Target, e.FirstLine)
}

func (e *DuplicateTargetError) Unwrap() error { return ErrDuplicateTargetDefinition }

// UnreadableInputError reports an input that could not be opened or read.
type UnreadableInputError struct {
	Path string // empty for non-file readers
	Err  error
}

func (e *UnreadableInputError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", ErrUnreadableInput, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrUnreadableInput, e.Path, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause (e.g. fs.ErrNotExist).
func (e *UnreadableInputError) Unwrap() []error {
	return []error{ErrUnreadableInput, e.Err}
}

// InvalidIdentifierError reports a name that does not match IdentifierPattern.
// Target is the section the name belongs to; it equals Name when the target itself is invalid.
type InvalidIdentifierError struct {
	Name   string
	Target string
	Line   int
}

func (e *InvalidIdentifierError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("%s: %q", ErrInvalidIdentifier, e.Name)
	if e.Target != e.Name {
		msg = fmt.Sprintf("%s in section %q", msg, e.Target)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func (e *InvalidIdentifierError) Unwrap() error { return ErrInvalidIdentifier }
