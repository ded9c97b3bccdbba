package simdjson

import "encoding/binary"

// isStructuralOrWhitespace reports whether c may legally follow a literal
// atom (true/false/null) or a number: both must be immediately followed
// by a structural character, whitespace, or the end of input. Input is
// always PADDING zero bytes past its logical end (see pad.go), so the
// NUL padding byte is accepted here too; otherwise the last token in a
// buffer would spuriously fail.
func isStructuralOrWhitespace(c byte) bool {
	switch c {
	case '{', '}', '[', ']', ':', ',', ' ', '\t', '\n', '\r', 0:
		return true
	}
	return false
}

// isValidTrueAtom, isValidFalseAtom and isValidNullAtom check a literal
// word starting at buf[0] with a single 8-byte little-endian load plus
// mask, comparing against "true"/"false"/"null" packed as a
// little-endian uint64.
func isValidTrueAtom(buf []byte) bool {
	if len(buf) >= 8 {
		word := binary.LittleEndian.Uint64(buf)
		const want = uint64(0x0000000065757274) // "true" + zero padding
		const mask = uint64(0x00000000ffffffff)
		return word&mask == want && isStructuralOrWhitespace(buf[4])
	}
	return len(buf) >= 5 && string(buf[:4]) == "true" && isStructuralOrWhitespace(buf[4])
}

func isValidFalseAtom(buf []byte) bool {
	if len(buf) >= 8 {
		word := binary.LittleEndian.Uint64(buf)
		const want = uint64(0x00000065736c6166) // "false" + zero padding
		const mask = uint64(0x000000ffffffffff)
		return word&mask == want && isStructuralOrWhitespace(buf[5])
	}
	return len(buf) >= 6 && string(buf[:5]) == "false" && isStructuralOrWhitespace(buf[5])
}

func isValidNullAtom(buf []byte) bool {
	if len(buf) >= 8 {
		word := binary.LittleEndian.Uint64(buf)
		const want = uint64(0x000000006c6c756e) // "null" + zero padding
		const mask = uint64(0x00000000ffffffff)
		return word&mask == want && isStructuralOrWhitespace(buf[4])
	}
	return len(buf) >= 5 && string(buf[:4]) == "null" && isStructuralOrWhitespace(buf[4])
}
