package simdjson

import "math/bits"

// findStructuralIndices runs Stage 1 over the whole (already padded)
// document: it classifies every 64-byte block and flattens the resulting
// structural bitmask into a dense, strictly increasing sequence of byte
// offsets. The last two entries are sentinel offsets equal to
// length(original input); Stage 2's tapeCursor stops before them and
// never hands them out.
//
// buf must already include PADDING zero bytes past origLen (see
// padInput); origLen is the logical input length before padding.
func findStructuralIndices(buf []byte, origLen int) ([]uint32, Status) {
	if origLen == 0 {
		return nil, EMPTY
	}

	classifier := defaultClassifier
	state := classifierState{prevPseudoStructEnd: 1}

	indices := make([]uint32, 0, origLen/6+2)
	var errorMask uint64
	var block [64]byte

	for base := 0; base < origLen; base += 64 {
		n := copy(block[:], buf[base:min(base+64, len(buf))])
		for i := n; i < 64; i++ {
			block[i] = 0
		}
		masks := classifier.classifyBlock(&block, &state)
		errorMask |= masks.errorMask
		structural := masks.structural
		if rem := origLen - base; rem < 64 {
			// Bytes at and past origLen are padding; a padding byte right
			// after a final structural would otherwise be flagged as a
			// pseudo-structural mark.
			structural &= uint64(1)<<uint(rem) - 1
		}
		indices = appendSetBits(indices, structural, uint32(base))
	}

	if state.prevInsideString != 0 {
		return nil, UNCLOSED_STRING
	}
	if errorMask != 0 {
		return nil, UNESCAPED_CHARS
	}
	if len(indices) == 0 {
		return nil, EMPTY
	}

	// Sentinels: two trailing copies of origLen follow the real marks.
	// tapeCursor (stage2.go) counts them out via its real field and never
	// reads them.
	indices = append(indices, uint32(origLen), uint32(origLen))
	return indices, SUCCESS
}

// appendSetBits appends, in ascending order, base+i for every set bit i
// of mask, via repeated trailing-zero extraction.
func appendSetBits(dst []uint32, mask uint64, base uint32) []uint32 {
	for mask != 0 {
		tz := bits.TrailingZeros64(mask)
		dst = append(dst, base+uint32(tz))
		mask &= mask - 1
	}
	return dst
}
