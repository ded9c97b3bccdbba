package simdjson

import "testing"

func TestPrefixXor(t *testing.T) {
	tests := []struct {
		in, want uint64
	}{
		{0, 0},
		{1, ^uint64(0)},
		{0b1010, 0b0110},
		{0b1, 0xffffffffffffffff},
	}
	for _, tc := range tests {
		if got := prefixXor(tc.in); got != tc.want {
			t.Errorf("prefixXor(%#b) = %#b, want %#b", tc.in, got, tc.want)
		}
	}
}

func TestFindOddBackslashSequencesNoBackslashes(t *testing.T) {
	var carry uint64
	if got := findOddBackslashSequences(0, &carry); got != 0 {
		t.Fatalf("expected no odd ends, got %#b", got)
	}
	if carry != 0 {
		t.Fatalf("expected no carry, got %d", carry)
	}
}

func TestFindOddBackslashSequencesSingleRun(t *testing.T) {
	// Three consecutive backslashes at bits 0-2: an odd run of length 3,
	// so bit 3 (the byte right after the run, which the run escapes) is
	// the "odd end".
	var carry uint64
	backslashes := uint64(0b111)
	got := findOddBackslashSequences(backslashes, &carry)
	want := uint64(1 << 3)
	if got != want {
		t.Fatalf("findOddBackslashSequences(0b111) = %#b, want %#b", got, want)
	}
	if carry != 0 {
		t.Fatalf("expected no carry out of a 3-run fully inside the block, got %d", carry)
	}
}

func TestFindOddBackslashSequencesEvenRun(t *testing.T) {
	var carry uint64
	// Two consecutive backslashes: an even run has no odd end.
	got := findOddBackslashSequences(0b11, &carry)
	if got != 0 {
		t.Fatalf("findOddBackslashSequences(0b11) = %#b, want 0", got)
	}
}

func TestFindOddBackslashSequencesCarriesAcrossBlocks(t *testing.T) {
	// A lone backslash in bit 63 starts a run that continues into the
	// next block.
	var carry uint64
	findOddBackslashSequences(1<<63, &carry)
	if carry != 1 {
		t.Fatalf("expected carry=1 after an odd run ending at the block boundary, got %d", carry)
	}
	// The next block's first bit continues the run: two backslashes total
	// (one odd-carried in, one here) makes an even run -- no odd end.
	got := findOddBackslashSequences(0b1, &carry)
	if got != 0 {
		t.Fatalf("carried-in odd run + one more backslash should be even, got odd end mask %#b", got)
	}
}

func classifyOneBlock(t *testing.T, input string) (blockMasks, classifierState) {
	t.Helper()
	var block [64]byte
	copy(block[:], input)
	st := classifierState{prevPseudoStructEnd: 1}
	masks := scalarClassifier{}.classifyBlock(&block, &st)
	return masks, st
}

func TestClassifyBlockStructurals(t *testing.T) {
	// index: 0{ 1" 2a 3" 4: 5 1 6, 7" 8b 9" 10: 11[ 12 2 13] 14}
	input := `{"a":1,"b":[2]}` + "                                                 "
	masks, _ := classifyOneBlock(t, input)
	// The number starts at 5 and 12 are pseudo-structural marks.
	for _, i := range []int{0, 1, 3, 4, 5, 6, 7, 9, 10, 11, 12, 13, 14} {
		if masks.structural&(1<<uint(i)) == 0 {
			t.Errorf("expected byte %d (%q) to be structural", i, input[i])
		}
	}
	for _, i := range []int{2, 8} {
		if masks.structural&(1<<uint(i)) != 0 {
			t.Errorf("byte %d (%q) must not be structural", i, input[i])
		}
	}
}

func TestClassifyBlockQuoteMaskCoversStringInterior(t *testing.T) {
	input := `"hello, world"` + string(make([]byte, 50))
	masks, st := classifyOneBlock(t, input)
	// Quote bits mark only the two quote bytes themselves, not the comma
	// inside the string ("hello,| world", comma at index 6).
	if masks.structural&(1<<6) != 0 {
		t.Errorf("comma inside a string must not be structural")
	}
	if st.prevInsideString != 0 {
		t.Errorf("string is closed within the block; prevInsideString should be 0")
	}
}

func TestClassifyBlockUnterminatedStringCarries(t *testing.T) {
	input := `"unterminated` + string(make([]byte, 51))
	_, st := classifyOneBlock(t, input)
	if st.prevInsideString == 0 {
		t.Errorf("expected prevInsideString to carry when a block ends inside a string")
	}
}

func TestClassifyBlockControlCharInStringIsError(t *testing.T) {
	input := "\"a\x01b\"" + string(make([]byte, 59))
	masks, _ := classifyOneBlock(t, input)
	if masks.errorMask == 0 {
		t.Errorf("expected a raw control character inside a string to set errorMask")
	}
}
