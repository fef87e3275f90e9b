package tokenflag

import (
	"errors"
	"fmt"

	"golang.org/x/xerrors"
)

// Kind classifies an Error. A Kind is itself an error, so callers can write
// errors.Is(err, KindBadType).
type Kind int

const (
	// Raised while declaring options.
	KindDuplicate Kind = iota + 1
	KindInvalid

	// Raised while interpreting command-line input.
	KindSyntax
	KindUnknown
	KindMissing
	KindNotSatisfied
	KindReject
	KindNotPresent
	KindEmpty
	KindBadType
)

var kindTemplates = map[Kind]string{
	KindDuplicate:    "Arg already exists",
	KindInvalid:      "Arg has invalid format",
	KindSyntax:       "Arg has incorrect syntax",
	KindUnknown:      "Arg does not exists",
	KindMissing:      "Arg is missing an argument",
	KindNotSatisfied: "Arg is not satisfied",
	KindReject:       "Arg is reject to give",
	KindNotPresent:   "Arg not present",
	KindEmpty:        "Arg is empty",
	KindBadType:      "Arg has a bad type and failed to parse",
}

func (k Kind) Error() string {
	if s, ok := kindTemplates[k]; ok {
		return s
	}
	return fmt.Sprintf("unknown error kind %d", int(k))
}

// Whether errors of this kind occur while options are being declared, rather
// than while arguments are being parsed.
func (k Kind) SpecifyTime() bool {
	return k == KindDuplicate || k == KindInvalid
}

var (
	// Matches any Error raised while declaring an option.
	ErrSpecify = errors.New("error specifying arg")
	// Matches any Error raised while parsing arguments.
	ErrParse = errors.New("error parsing arg")
)

// Error is the single failure type of the package. The message is fixed at
// construction from the kind's template and the offending text.
type Error struct {
	Kind Kind
	// The offending text.
	What string
	// The value that was given anyway, only for KindReject.
	Given string
	// Underlying cause, if a library parser reported one.
	Err error

	msg string
}

var _ error = (*Error)(nil)

func newError(kind Kind, what string) *Error {
	return &Error{
		Kind: kind,
		What: what,
		msg:  kind.Error() + ": " + quote(what),
	}
}

func rejectError(what, given string) *Error {
	e := newError(KindReject, what)
	e.Given = given
	e.msg += "\n\tbut still given: " + quote(given)
	return e
}

func badType(text string, cause error) *Error {
	e := newError(KindBadType, text)
	e.Err = cause
	return e
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case e.Kind:
		return true
	case ErrSpecify:
		return e.Kind.SpecifyTime()
	case ErrParse:
		return !e.Kind.SpecifyTime()
	}
	return false
}

// Finds the first *Error in err's chain.
func AsError(err error) (e *Error, ok bool) {
	ok = xerrors.As(err, &e)
	return
}

func IsSpecifyError(err error) bool {
	return xerrors.Is(err, ErrSpecify)
}

func IsParseError(err error) bool {
	return xerrors.Is(err, ErrParse)
}
