package simdjson

import (
	"bytes"
	"math"
)

// Cursor is a depth-stack-aware traversal handle. It always denotes
// exactly one tape entry; Down/Up/Next move that entry
// without ever walking byte-by-byte through a skipped container, using
// the same forward-only backpatched payload the tape writer filled in
// (see ParsedDocument.closeScope).
type Cursor struct {
	pj    *ParsedDocument
	tape  int
	stack []int
}

// NewCursor returns a Cursor positioned at the document's single root
// value (tape index 1; tape index 0 is always the TagRoot sentinel).
func NewCursor(pj *ParsedDocument) *Cursor {
	return &Cursor{pj: pj, tape: 1}
}

// Type reports the JSON type of the value the cursor currently denotes.
func (c *Cursor) Type() Type {
	return tagToType[tapeTag(c.pj.Tape[c.tape])]
}

// Down descends into the container the cursor denotes, landing on its
// first child (the first key, for an object; the first element, for an
// array). It returns false without moving if the current value isn't a
// container or the container is empty.
func (c *Cursor) Down() bool {
	word := c.pj.Tape[c.tape]
	tag := tapeTag(word)
	if tag != TagObjectStart && tag != TagArrayStart {
		return false
	}
	closeIdx := int(tapePayload(word))
	if closeIdx == c.tape+1 {
		return false
	}
	c.stack = append(c.stack, c.tape)
	c.tape++
	return true
}

// Up ascends back out of the container most recently entered by Down,
// landing on the container's own value again.
func (c *Cursor) Up() bool {
	if len(c.stack) == 0 {
		return false
	}
	c.tape = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return true
}

// Next advances the cursor to the following sibling at the same depth
// (the next array element, or the next key of an object -- callers
// positioned on a value use Next from the value to reach the following
// key). It returns false, leaving the cursor in place, if there is no
// further sibling before the enclosing container closes.
func (c *Cursor) Next() bool {
	next := c.siblingAfter(c.tape)
	switch tapeTag(c.pj.Tape[next]) {
	case TagObjectEnd, TagArrayEnd, TagRoot:
		return false
	}
	c.tape = next
	return true
}

// MoveToKey scans forward from the cursor's current position -- which
// must be a key inside an object, i.e. right after Down() into one --
// for a member named key, leaving the cursor on that member's value and
// returning true, or leaving the cursor unmoved and returning false if
// no such member exists before the object closes.
func (c *Cursor) MoveToKey(key []byte) bool {
	idx := c.tape
	for {
		word := c.pj.Tape[idx]
		if tapeTag(word) != TagString {
			return false
		}
		name, err := c.pj.stringAt(tapePayload(word))
		if err == nil && bytes.Equal(name, key) {
			c.tape = c.siblingAfter(idx)
			return true
		}
		valueIdx := c.siblingAfter(idx)
		nextKey := c.siblingAfter(valueIdx)
		if tapeTag(c.pj.Tape[nextKey]) == TagObjectEnd {
			return false
		}
		idx = nextKey
	}
}

// siblingAfter returns the tape index immediately following the value at
// idx: idx+2 for the two-word number encodings, the matching close tag's
// index + 1 for a container (found in O(1) via its backpatched payload),
// idx+1 for everything else.
func (c *Cursor) siblingAfter(idx int) int {
	word := c.pj.Tape[idx]
	switch tapeTag(word) {
	case TagObjectStart, TagArrayStart:
		return int(tapePayload(word)) + 1
	case TagInteger, TagFloat:
		return idx + 2
	default:
		return idx + 1
	}
}

// GetType is an alias for Type kept for readability at call sites that
// already read like "cursor.GetType() == TypeObject".
func (c *Cursor) GetType() Type { return c.Type() }

// GetString returns the decoded UTF-8 bytes of the current string value.
func (c *Cursor) GetString() ([]byte, error) {
	word := c.pj.Tape[c.tape]
	if tapeTag(word) != TagString {
		return nil, newParseError(UNEXPECTED_ERROR, c.tape, len(c.stack), "not a string")
	}
	return c.pj.stringAt(tapePayload(word))
}

// GetStringLength returns the byte length of the current string value
// without copying it.
func (c *Cursor) GetStringLength() (int, error) {
	s, err := c.GetString()
	if err != nil {
		return 0, err
	}
	return len(s), nil
}

// GetInteger returns the current value as an int64. Floats are out of
// range of this accessor; callers that don't know the type ahead of
// time should check Type first.
func (c *Cursor) GetInteger() (int64, error) {
	if tapeTag(c.pj.Tape[c.tape]) != TagInteger {
		return 0, newParseError(UNEXPECTED_ERROR, c.tape, len(c.stack), "not an integer")
	}
	return int64(c.pj.Tape[c.tape+1]), nil
}

// GetDouble returns the current value as a float64.
func (c *Cursor) GetDouble() (float64, error) {
	if tapeTag(c.pj.Tape[c.tape]) != TagFloat {
		return 0, newParseError(UNEXPECTED_ERROR, c.tape, len(c.stack), "not a float")
	}
	return math.Float64frombits(c.pj.Tape[c.tape+1]), nil
}

// GetBool returns the current value as a bool.
func (c *Cursor) GetBool() (bool, error) {
	switch tapeTag(c.pj.Tape[c.tape]) {
	case TagBoolTrue:
		return true, nil
	case TagBoolFalse:
		return false, nil
	default:
		return false, newParseError(UNEXPECTED_ERROR, c.tape, len(c.stack), "not a bool")
	}
}
