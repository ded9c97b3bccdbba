package simdjson

import (
	"math"
	"strconv"
)

// MarshalJSON renders the whole parsed document back to JSON text.
func (pj *ParsedDocument) MarshalJSON() ([]byte, error) {
	return pj.AppendJSON(nil)
}

// AppendJSON renders the document, appending to dst.
func (pj *ParsedDocument) AppendJSON(dst []byte) ([]byte, error) {
	if !pj.valid {
		return nil, newParseError(UNINITIALIZED, 0, 0, "")
	}
	return appendValue(dst, NewCursor(pj))
}

func appendValue(dst []byte, c *Cursor) ([]byte, error) {
	switch c.Type() {
	case TypeObject:
		dst = append(dst, '{')
		if c.Down() {
			first := true
			for {
				if !first {
					dst = append(dst, ',')
				}
				first = false
				key, err := c.GetString()
				if err != nil {
					return nil, err
				}
				dst = append(dst, '"')
				dst = escapeJSONBytes(dst, key)
				dst = append(dst, '"', ':')
				if !c.Next() {
					return nil, newParseError(TAPE_ERROR, 0, 0, "object key without a value")
				}
				dst, err = appendValue(dst, c)
				if err != nil {
					return nil, err
				}
				if !c.Next() {
					break
				}
			}
			c.Up()
		}
		return append(dst, '}'), nil

	case TypeArray:
		dst = append(dst, '[')
		if c.Down() {
			first := true
			for {
				if !first {
					dst = append(dst, ',')
				}
				first = false
				var err error
				dst, err = appendValue(dst, c)
				if err != nil {
					return nil, err
				}
				if !c.Next() {
					break
				}
			}
			c.Up()
		}
		return append(dst, ']'), nil

	case TypeString:
		s, err := c.GetString()
		if err != nil {
			return nil, err
		}
		dst = append(dst, '"')
		dst = escapeJSONBytes(dst, s)
		return append(dst, '"'), nil

	case TypeInt:
		v, err := c.GetInteger()
		if err != nil {
			return nil, err
		}
		return strconv.AppendInt(dst, v, 10), nil

	case TypeFloat:
		v, err := c.GetDouble()
		if err != nil {
			return nil, err
		}
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, newParseError(UNEXPECTED_ERROR, 0, 0, "non-finite float has no JSON representation")
		}
		return strconv.AppendFloat(dst, v, 'g', -1, 64), nil

	case TypeBool:
		v, err := c.GetBool()
		if err != nil {
			return nil, err
		}
		if v {
			return append(dst, "true"...), nil
		}
		return append(dst, "false"...), nil

	case TypeNull:
		return append(dst, "null"...), nil

	default:
		return nil, newParseError(UNEXPECTED_ERROR, 0, 0, "unrecognized tape tag")
	}
}

var hexDigits = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// escapeJSONBytes appends src to dst with JSON string escaping applied.
func escapeJSONBytes(dst, src []byte) []byte {
	for _, s := range src {
		switch s {
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '"':
			dst = append(dst, '\\', '"')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\\':
			dst = append(dst, '\\', '\\')
		default:
			if s <= 0x1f {
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[s>>4], hexDigits[s&0xf])
			} else {
				dst = append(dst, s)
			}
		}
	}
	return dst
}
