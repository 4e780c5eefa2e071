package toolchain

import (
	"errors"
	"fmt"
)

// Exit codes for the error kinds, as used by the ndk command.
const (
	ExitSuccess          = 0
	ExitRuntimeError     = 1
	ExitConfigError      = 2
	ExitEnvironmentError = 3
)

// ErrorKind classifies an Error.
type ErrorKind int

const (
	// KindUnsupported means the NDK ships no sysroot for the target and API level.
	KindUnsupported ErrorKind = iota + 1
	// KindMalformed means the target triple or API level is outside the contract.
	KindMalformed
	// KindEnvironment means the NDK could not be located.
	KindEnvironment
)

var (
	ErrUnsupported = errors.New("unsupported target")
	ErrMalformed   = errors.New("malformed target")
	ErrNoNDK       = errors.New("android NDK not found")
)

// Error is returned when a Toolchain cannot be resolved.
type Error struct {
	Kind   ErrorKind
	Triple string
	API    int
	Msg    string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	switch e.Kind {
	case KindUnsupported:
		return fmt.Sprintf("target %s is not supported for API %d", e.Triple, e.API)
	case KindMalformed:
		return fmt.Sprintf("invalid target triple %q for API %d", e.Triple, e.API)
	default:
		return ErrNoNDK.Error()
	}
}

// Is makes errors.Is match the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnsupported:
		return e.Kind == KindUnsupported
	case ErrMalformed:
		return e.Kind == KindMalformed
	case ErrNoNDK:
		return e.Kind == KindEnvironment
	}
	return false
}

func (e *Error) ExitCode() int {
	switch e.Kind {
	case KindUnsupported, KindMalformed:
		return ExitConfigError
	case KindEnvironment:
		return ExitEnvironmentError
	default:
		return ExitRuntimeError
	}
}

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var te *Error
	if errors.As(err, &te) {
		return te.ExitCode()
	}
	return ExitRuntimeError
}

func unsupported(triple string, api int) *Error {
	return &Error{Kind: KindUnsupported, Triple: triple, API: api}
}

func malformed(triple string, api int) *Error {
	return &Error{Kind: KindMalformed, Triple: triple, API: api}
}

// NoNDK returns an environment error with the given message.
func NoNDK(msg string) *Error {
	return &Error{Kind: KindEnvironment, Msg: msg}
}
