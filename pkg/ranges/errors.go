package ranges

import (
	"fmt"
	"strings"
)

// FetchError indicates the directory service could not be reached or its
// response could not be parsed into the expected envelope.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch address ranges: %s", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// DirectoryError indicates the directory service answered with success=false.
// Messages holds the error strings reported in the envelope.
type DirectoryError struct {
	Messages []string
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("directory service reported failure: %s", strings.Join(e.Messages, ", "))
}

// ParseError indicates a malformed CIDR block. A single bad block discards
// the whole batch, partial expansions are never returned.
type ParseError struct {
	CIDR string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid CIDR %q: %s", e.CIDR, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
