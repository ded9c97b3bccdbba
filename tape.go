package simdjson

import "math"

// Tag identifies the kind of value a tape word encodes. The high byte of
// every tape word is a Tag; the low 56 bits are its payload.
type Tag uint8

const (
	TagRoot        = Tag('r')
	TagObjectStart = Tag('{')
	TagObjectEnd   = Tag('}')
	TagArrayStart  = Tag('[')
	TagArrayEnd    = Tag(']')
	TagString      = Tag('"')
	TagInteger     = Tag('l')
	TagFloat       = Tag('d')
	TagBoolTrue    = Tag('t')
	TagBoolFalse   = Tag('f')
	TagNull        = Tag('n')
	tagEnd         = Tag(0)
)

func (t Tag) String() string { return string([]byte{byte(t)}) }

// Type is the JSON value type a Tag maps to; objects and arrays only
// carry a Type at their opening tag.
type Type uint8

const (
	TypeNone Type = iota
	TypeNull
	TypeString
	TypeInt
	TypeFloat
	TypeBool
	TypeObject
	TypeArray
	TypeRoot
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	case TypeRoot:
		return "root"
	}
	return "(no type)"
}

var tagToType = [256]Type{
	TagString:      TypeString,
	TagInteger:     TypeInt,
	TagFloat:       TypeFloat,
	TagNull:        TypeNull,
	TagBoolTrue:    TypeBool,
	TagBoolFalse:   TypeBool,
	TagObjectStart: TypeObject,
	TagArrayStart:  TypeArray,
	TagRoot:        TypeRoot,
}

const tapeValueMask = 0x00ffffffffffffff
const tapeTagShift = 56

func tapeWord(tag Tag, payload uint64) uint64 {
	return uint64(tag)<<tapeTagShift | (payload & tapeValueMask)
}

func tapeTag(word uint64) Tag       { return Tag(word >> tapeTagShift) }
func tapePayload(word uint64) uint64 { return word & tapeValueMask }

// ParsedDocument owns the tape, the string arena and scratch buffers for
// one parsed document and can be reset and reused across parses of the
// same or smaller size without reallocating.
type ParsedDocument struct {
	Tape    []uint64
	Strings []byte

	valid  bool
	status Status

	scope    []scopeEntry
	maxDepth int

	scratch []byte
}

// scopeEntry is one frame of the scope stack: the tape index of the
// still-open container and its tag.
type scopeEntry struct {
	tapeIndex int
	tag       Tag
}

const defaultMaxDepth = 1024

// NewParsedDocument allocates a ParsedDocument with capacity sized for
// an input of roughly maxBytes bytes.
func NewParsedDocument(maxBytes int, opts ...ParserOption) *ParsedDocument {
	pj := &ParsedDocument{maxDepth: defaultMaxDepth}
	if maxBytes > 0 {
		pj.Tape = make([]uint64, 0, maxBytes/2+8)
		pj.Strings = make([]byte, 0, maxBytes+PADDING)
	}
	for _, o := range opts {
		o(pj)
	}
	pj.scope = make([]scopeEntry, 0, pj.maxDepth)
	return pj
}

// IsValid reports whether the last parse performed on this document
// completed with SUCCESS. Calling Cursor accessors on a document for
// which IsValid is false is a programming error; Cursor does not check
// validity. MarshalJSON and AppendJSON return an UNINITIALIZED error for
// such a document.
func (pj *ParsedDocument) IsValid() bool { return pj.valid }

// LastStatus returns the Status of the most recently completed parse, or
// UNINITIALIZED if the document has never been parsed.
func (pj *ParsedDocument) LastStatus() Status {
	if pj.status == SUCCESS && !pj.valid {
		return UNINITIALIZED
	}
	return pj.status
}

// reset rewinds all write pointers to the start of the backing arrays
// without releasing their capacity, so a parse always starts clean.
func (pj *ParsedDocument) reset() {
	pj.Tape = pj.Tape[:0]
	pj.Strings = pj.Strings[:0]
	pj.scope = pj.scope[:0]
	pj.valid = false
}

func (pj *ParsedDocument) currentTapeIndex() int { return len(pj.Tape) }

func (pj *ParsedDocument) writeTape(tag Tag, payload uint64) {
	pj.Tape = append(pj.Tape, tapeWord(tag, payload))
}

func (pj *ParsedDocument) writeInteger(v int64) {
	pj.Tape = append(pj.Tape, tapeWord(TagInteger, 0), uint64(v))
}

func (pj *ParsedDocument) writeDouble(v float64) {
	pj.Tape = append(pj.Tape, tapeWord(TagFloat, 0), math.Float64bits(v))
}

// writeString appends s's length-prefixed, zero-terminated encoding to
// the string arena and writes a TagString tape entry pointing at it.
func (pj *ParsedDocument) writeString(s []byte) {
	offset := uint64(len(pj.Strings))
	var lenBuf [4]byte
	lenBuf[0] = byte(len(s))
	lenBuf[1] = byte(len(s) >> 8)
	lenBuf[2] = byte(len(s) >> 16)
	lenBuf[3] = byte(len(s) >> 24)
	pj.Strings = append(pj.Strings, lenBuf[:]...)
	pj.Strings = append(pj.Strings, s...)
	pj.Strings = append(pj.Strings, 0)
	pj.writeTape(TagString, offset)
}

// decodeAndWriteString decodes the string body in raw (the bytes right
// after an opening quote Stage 2 has already consumed) into a reusable
// scratch buffer, then commits it to the string arena via writeString.
// It returns the number of bytes of raw consumed, including the closing
// quote, so the caller can skip any structural marks that fall inside
// the string span.
func (pj *ParsedDocument) decodeAndWriteString(raw []byte) (consumed int, status Status) {
	pj.scratch = pj.scratch[:0]
	decoded, n, status := decodeString(raw, pj.scratch)
	if status != SUCCESS {
		return n, status
	}
	pj.scratch = decoded
	pj.writeString(decoded)
	return n, SUCCESS
}

// stringAt decodes the length-prefixed string stored at arena offset off.
func (pj *ParsedDocument) stringAt(off uint64) ([]byte, error) {
	if off+4 > uint64(len(pj.Strings)) {
		return nil, newParseError(UNEXPECTED_ERROR, int(off), 0, "string offset outside arena")
	}
	length := uint64(pj.Strings[off]) | uint64(pj.Strings[off+1])<<8 |
		uint64(pj.Strings[off+2])<<16 | uint64(pj.Strings[off+3])<<24
	start := off + 4
	if start+length > uint64(len(pj.Strings)) {
		return nil, newParseError(UNEXPECTED_ERROR, int(off), 0, "string length outside arena")
	}
	return pj.Strings[start : start+length], nil
}

// pushScope records the tape index of a freshly opened container, whose
// open slot the caller has just written with writeTape. The root frame at
// the bottom of the stack is not counted against maxDepth.
func (pj *ParsedDocument) pushScope(tag Tag) Status {
	if len(pj.scope) > pj.maxDepth {
		return DEPTH_ERROR
	}
	pj.scope = append(pj.scope, scopeEntry{tapeIndex: pj.currentTapeIndex() - 1, tag: tag})
	return SUCCESS
}

// closeScope pops the most recent open container, backpatches its open
// slot's payload with the close slot's index, and writes the close slot
// with a payload pointing back at the open slot.
func (pj *ParsedDocument) closeScope(closeTag Tag) {
	top := pj.scope[len(pj.scope)-1]
	pj.scope = pj.scope[:len(pj.scope)-1]
	closeIdx := pj.currentTapeIndex()
	openTag := tapeTag(pj.Tape[top.tapeIndex])
	pj.Tape[top.tapeIndex] = tapeWord(openTag, uint64(closeIdx))
	pj.writeTape(closeTag, uint64(top.tapeIndex))
}
