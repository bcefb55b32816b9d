package model

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can react without string matching.
type Kind int

const (
	// KindUnknown is any error that did not originate from this module.
	KindUnknown Kind = iota

	// KindInput is a malformed or unreadable song list, or a precondition
	// violation on slug input. Fatal to the run when raised at load time.
	KindInput

	// KindNetwork is a fetch failure: timeout, connection or non-200 status.
	KindNetwork

	// KindNotFound means the site has no chords listing for the song.
	KindNotFound

	// KindParse means an expected marker or delimiter is absent from the markup.
	KindParse
)

// String returns the taxonomy name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "InputError"
	case KindNetwork:
		return "NetworkError"
	case KindNotFound:
		return "NotFoundError"
	case KindParse:
		return "ParseError"
	default:
		return "UnknownError"
	}
}

// Sentinels for errors.Is checks. Any *Error matches the sentinel of its Kind.
var (
	ErrInput    = errors.New("invalid input")
	ErrNetwork  = errors.New("network failure")
	ErrNotFound = errors.New("no chord listing exists for this song")
	ErrParse    = errors.New("unexpected markup")
)

// Error is a classified failure.
//
// Op names the step that failed ("fetch search page", "read rating", ...).
// Err, when set, is the underlying cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Op == "" && e.Err == nil:
		return e.Kind.String()
	case e.Err == nil:
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	case e.Op == "":
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's Kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func (k Kind) sentinel() error {
	switch k {
	case KindInput:
		return ErrInput
	case KindNetwork:
		return ErrNetwork
	case KindNotFound:
		return ErrNotFound
	case KindParse:
		return ErrParse
	}
	return nil
}

// InputError returns a KindInput error.
func InputError(op string, err error) error {
	return &Error{Kind: KindInput, Op: op, Err: err}
}

// NetworkError returns a KindNetwork error.
func NetworkError(op string, err error) error {
	return &Error{Kind: KindNetwork, Op: op, Err: err}
}

// NotFoundError returns a KindNotFound error.
func NotFoundError(op string, err error) error {
	return &Error{Kind: KindNotFound, Op: op, Err: err}
}

// ParseError returns a KindParse error.
func ParseError(op string, err error) error {
	return &Error{Kind: KindParse, Op: op, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain,
// or KindUnknown if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
