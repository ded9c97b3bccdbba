package simdjson

import "fmt"

// Status is a stable, numeric result code returned by the parser.
// SUCCESS is always zero; all other values indicate that no tape was
// produced and the document must be discarded or re-parsed.
type Status int

const (
	SUCCESS Status = iota
	CAPACITY
	MEMALLOC
	TAPE_ERROR
	DEPTH_ERROR
	STRING_ERROR
	T_ATOM_ERROR
	F_ATOM_ERROR
	N_ATOM_ERROR
	NUMBER_ERROR
	UTF8_ERROR
	UNINITIALIZED
	EMPTY
	UNESCAPED_CHARS
	UNCLOSED_STRING
	UNEXPECTED_ERROR
)

var statusNames = [...]string{
	SUCCESS:          "success",
	CAPACITY:         "input exceeds preallocated capacity",
	MEMALLOC:         "allocation failure",
	TAPE_ERROR:       "tape grammar violation",
	DEPTH_ERROR:      "nesting depth exceeds configured maximum",
	STRING_ERROR:     "malformed string escape",
	T_ATOM_ERROR:     "invalid literal, expected true",
	F_ATOM_ERROR:     "invalid literal, expected false",
	N_ATOM_ERROR:     "invalid literal, expected null",
	NUMBER_ERROR:     "malformed number",
	UTF8_ERROR:       "invalid UTF-8",
	UNINITIALIZED:    "document has not been parsed",
	EMPTY:            "empty input",
	UNESCAPED_CHARS:  "raw control character inside string",
	UNCLOSED_STRING:  "unterminated string",
	UNEXPECTED_ERROR: "unexpected error",
}

// String returns a short, stable description of the status.
func (s Status) String() string {
	if int(s) < 0 || int(s) >= len(statusNames) || statusNames[s] == "" {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// Error implements the error interface so a Status can be returned
// directly wherever Go code expects an error. SUCCESS.Error() is never
// called in practice since SUCCESS is never wrapped as an error.
func (s Status) Error() string {
	return s.String()
}

// parseError wraps a Status with positional context (byte offset and/or
// nesting depth) without losing the ability to compare against the
// sentinel Status with errors.Is.
type parseError struct {
	status Status
	offset int
	depth  int
	detail string
}

func (e *parseError) Error() string {
	if e.detail != "" {
		return fmt.Sprintf("%s at offset %d (depth %d): %s", e.status, e.offset, e.depth, e.detail)
	}
	return fmt.Sprintf("%s at offset %d (depth %d)", e.status, e.offset, e.depth)
}

func (e *parseError) Unwrap() error { return e.status }

func (e *parseError) Is(target error) bool {
	s, ok := target.(Status)
	return ok && s == e.status
}

func newParseError(status Status, offset, depth int, detail string) error {
	return &parseError{status: status, offset: offset, depth: depth, detail: detail}
}
