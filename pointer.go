package simdjson

import "strings"

// MoveTo resolves pointer against the document rooted at c and, on
// success, leaves the cursor positioned at the referent. It snapshots
// the cursor first and restores it on any failure, so a failed MoveTo
// never leaves the cursor in a half-moved state.
func (c *Cursor) MoveTo(pointer string) bool {
	savedTape := c.tape
	savedStack := append([]int(nil), c.stack...)
	if c.resolve(pointer) {
		return true
	}
	c.tape = savedTape
	c.stack = savedStack
	return false
}

func (c *Cursor) resolve(pointer string) bool {
	if strings.HasPrefix(pointer, "#") {
		decoded, ok := percentDecodeFragment(pointer[1:])
		if !ok {
			return false
		}
		pointer = decoded
	}

	c.tape = 1
	c.stack = c.stack[:0]

	if pointer == "" {
		return true
	}
	if pointer[0] != '/' {
		return false
	}

	for _, raw := range strings.Split(pointer[1:], "/") {
		tok, ok := decodePointerToken(raw)
		if !ok {
			return false
		}
		switch c.Type() {
		case TypeObject:
			if !c.Down() || !c.MoveToKey(tok) {
				return false
			}
		case TypeArray:
			if !c.Down() {
				return false
			}
			if string(tok) == "-" {
				for c.Next() {
				}
				continue
			}
			n, ok := decimalIndex(tok)
			if !ok {
				return false
			}
			for i := 0; i < n; i++ {
				if !c.Next() {
					return false
				}
			}
		default:
			return false
		}
	}
	return true
}

// decodePointerToken decodes one slash-delimited RFC 6901 token: ~1 to
// '/', ~0 to '~', and, as an extension beyond the RFC, \\, \" and \x for
// x <= 0x1F to their second byte.
func decodePointerToken(tok string) ([]byte, bool) {
	out := make([]byte, 0, len(tok))
	for i := 0; i < len(tok); {
		switch tok[i] {
		case '~':
			if i+1 >= len(tok) {
				return nil, false
			}
			switch tok[i+1] {
			case '0':
				out = append(out, '~')
			case '1':
				out = append(out, '/')
			default:
				return nil, false
			}
			i += 2
		case '\\':
			if i+1 >= len(tok) {
				return nil, false
			}
			nc := tok[i+1]
			if nc == '\\' || nc == '"' || nc <= 0x1F {
				out = append(out, nc)
				i += 2
			} else {
				return nil, false
			}
		default:
			out = append(out, tok[i])
			i++
		}
	}
	return out, true
}

// percentDecodeFragment decodes the %HH triplets of a "#"-prefixed
// fragment pointer. A decoded byte that is itself \, " or a control
// character is re-escaped with a leading backslash so the result can be
// run back through decodePointerToken unchanged.
func percentDecodeFragment(s string) (string, bool) {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		if s[i] != '%' {
			out = append(out, s[i])
			i++
			continue
		}
		if i+2 >= len(s) {
			return "", false
		}
		hi, ok1 := hexDigit(s[i+1])
		lo, ok2 := hexDigit(s[i+2])
		if !ok1 || !ok2 {
			return "", false
		}
		b := hi<<4 | lo
		if b == '\\' || b == '"' || b <= 0x1F {
			out = append(out, '\\', b)
		} else {
			out = append(out, b)
		}
		i += 3
	}
	return string(out), true
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// decimalIndex parses a non-negative decimal array index token. Per
// RFC 6901, a reference token is either "0" or a non-zero digit
// followed by any number of digits; "007" is not a valid index.
func decimalIndex(tok []byte) (int, bool) {
	if len(tok) == 0 {
		return 0, false
	}
	if tok[0] == '0' && len(tok) > 1 {
		return 0, false
	}
	n := 0
	for _, c := range tok {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
