package core

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is.
var (
	ErrInput = errors.New("invalid input")
	ErrIndex = errors.New("index out of range")
	ErrParse = errors.New("notes file is corrupt")
)

// InputError builds an ErrInput with a reason.
func InputError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInput, fmt.Sprintf(format, args...))
}

// IndexError reports a selection outside of [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %d (have %d notes)", ErrIndex, e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndex }

// ParseError reports a store file that exists but does not decode
// to an array of notes.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrParse, e.Path, e.Err)
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

func (e *ParseError) Unwrap() error { return e.Err }
