package simdjson

import "unicode/utf8"

// decodeString copies the string body starting at buf[0] (the byte
// immediately after the opening quote) into dst, processing escapes, and
// returns dst with the decoded bytes appended, the number of input bytes
// consumed (including the closing quote), and a Status. dst is an append
// destination (typically the document's string arena) so callers
// control where the bytes land.
func decodeString(buf []byte, dst []byte) (out []byte, consumed int, status Status) {
	i := 0
	for {
		if i >= len(buf) {
			return dst, i, UNCLOSED_STRING
		}
		c := buf[i]
		switch {
		case c == '"':
			return dst, i + 1, SUCCESS
		case c == '\\':
			if i+1 >= len(buf) {
				return dst, i, UNCLOSED_STRING
			}
			var n int
			dst, n, status = decodeEscape(buf[i+1:], dst)
			if status != SUCCESS {
				return dst, i, status
			}
			i += 1 + n
		case c < 0x20:
			return dst, i, UNESCAPED_CHARS
		case c < 0x80:
			dst = append(dst, c)
			i++
		default:
			r, size := utf8.DecodeRune(buf[i:])
			if r == utf8.RuneError && size <= 1 {
				return dst, i, UTF8_ERROR
			}
			dst = append(dst, buf[i:i+size]...)
			i += size
		}
	}
}

// decodeEscape decodes one escape sequence, buf starting right after the
// backslash. Returns bytes of buf consumed (not counting the backslash
// itself).
func decodeEscape(buf []byte, dst []byte) ([]byte, int, Status) {
	if len(buf) == 0 {
		return dst, 0, UNCLOSED_STRING
	}
	switch buf[0] {
	case '"':
		return append(dst, '"'), 1, SUCCESS
	case '\\':
		return append(dst, '\\'), 1, SUCCESS
	case '/':
		return append(dst, '/'), 1, SUCCESS
	case 'b':
		return append(dst, '\b'), 1, SUCCESS
	case 'f':
		return append(dst, '\f'), 1, SUCCESS
	case 'n':
		return append(dst, '\n'), 1, SUCCESS
	case 'r':
		return append(dst, '\r'), 1, SUCCESS
	case 't':
		return append(dst, '\t'), 1, SUCCESS
	case 'u':
		return decodeUnicodeEscape(buf, dst)
	default:
		return dst, 0, STRING_ERROR
	}
}

// decodeUnicodeEscape decodes a \uXXXX (and, for surrogate pairs,
// \uXXXX\uYYYY) escape. buf[0] == 'u'.
func decodeUnicodeEscape(buf []byte, dst []byte) ([]byte, int, Status) {
	if len(buf) < 5 {
		return dst, 0, STRING_ERROR
	}
	hi, ok := parseHex4(buf[1:5])
	if !ok {
		return dst, 0, STRING_ERROR
	}

	if hi >= 0xD800 && hi <= 0xDBFF {
		// High surrogate: must be followed by \u + low surrogate.
		if len(buf) < 11 || buf[5] != '\\' || buf[6] != 'u' {
			return dst, 0, STRING_ERROR
		}
		lo, ok := parseHex4(buf[7:11])
		if !ok {
			return dst, 0, STRING_ERROR
		}
		if lo < 0xDC00 || lo > 0xDFFF {
			return dst, 0, STRING_ERROR
		}
		r := 0x10000 + (rune(hi)-0xD800)<<10 + (rune(lo) - 0xDC00)
		var buf4 [4]byte
		n := utf8.EncodeRune(buf4[:], r)
		return append(dst, buf4[:n]...), 11, SUCCESS
	}
	if hi >= 0xDC00 && hi <= 0xDFFF {
		// Lone low surrogate.
		return dst, 0, STRING_ERROR
	}

	var buf4 [4]byte
	n := utf8.EncodeRune(buf4[:], rune(hi))
	return append(dst, buf4[:n]...), 5, SUCCESS
}

func parseHex4(b []byte) (uint16, bool) {
	var v uint16
	for _, c := range b {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= uint16(c - '0')
		case c >= 'a' && c <= 'f':
			v |= uint16(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= uint16(c-'A') + 10
		default:
			return 0, false
		}
	}
	return v, true
}
