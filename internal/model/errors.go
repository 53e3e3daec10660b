package model

import "fmt"

// ErrorKind classifies the two ways the engine can fail to produce a result.
type ErrorKind int

const (
	// InvalidInput marks a structural violation of the request schema,
	// detectable before packing begins.
	InvalidInput ErrorKind = iota
	// CannotFitAll marks at least one required item exceeding every panel
	// type's usable area in both orientations.
	CannotFitAll
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case CannotFitAll:
		return "CannotFitAll"
	default:
		return "Unknown"
	}
}

// Error is the engine's single error type. Callers distinguish the two
// kinds with errors.Is against ErrInvalidInput / ErrCannotFitAll, or by
// inspecting Kind directly via errors.As.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is supports errors.Is(err, model.ErrInvalidInput) / errors.Is(err, model.ErrCannotFitAll)
// by comparing Kind, ignoring Message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// ErrInvalidInput and ErrCannotFitAll are sentinel values for errors.Is checks;
// they carry no message and are never returned directly.
var (
	ErrInvalidInput = &Error{Kind: InvalidInput}
	ErrCannotFitAll = &Error{Kind: CannotFitAll}
)

// NewInvalidInput builds an InvalidInput error with the given message.
func NewInvalidInput(format string, args ...any) *Error {
	return &Error{Kind: InvalidInput, Message: fmt.Sprintf(format, args...)}
}

// NewCannotFitAll builds a CannotFitAll error with the given message.
func NewCannotFitAll(format string, args ...any) *Error {
	return &Error{Kind: CannotFitAll, Message: fmt.Sprintf(format, args...)}
}
