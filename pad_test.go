package simdjson

import "testing"

func TestPadInputAppendsZeros(t *testing.T) {
	in := []byte(`{"a":1}`)
	out := padInput(in)
	if len(out) != len(in)+PADDING {
		t.Fatalf("len(out) = %d, want %d", len(out), len(in)+PADDING)
	}
	for i := len(in); i < len(out); i++ {
		if out[i] != 0 {
			t.Fatalf("byte %d of padding = %d, want 0", i, out[i])
		}
	}
	if string(out[:len(in)]) != string(in) {
		t.Fatalf("padInput altered the original bytes")
	}
}

func TestPadInputReusesSpareCapacity(t *testing.T) {
	backing := make([]byte, 4, 4+PADDING+16)
	copy(backing, []byte("abcd"))
	out := padInput(backing)
	if &out[0] != &backing[0] {
		t.Fatalf("expected padInput to reuse backing[0]'s array when capacity allows it")
	}
	if len(out) != 4+PADDING {
		t.Fatalf("len(out) = %d, want %d", len(out), 4+PADDING)
	}
}

func TestPadInputDoesNotMutateCallerBeyondOwnedCapacity(t *testing.T) {
	in := make([]byte, 4)
	copy(in, "abcd")
	_ = padInput(in)
	if string(in) != "abcd" {
		t.Fatalf("padInput must not corrupt the caller's original slice contents")
	}
}
