package simdjson

import "testing"

func TestCursorUpReturnsToContainer(t *testing.T) {
	pj := mustParse(t, `{"a":[1,2,3],"b":4}`)
	c := NewCursor(pj)
	c.Down()
	c.MoveToKey([]byte("a"))
	if c.Type() != TypeArray {
		t.Fatalf("type = %v, want array", c.Type())
	}
	c.Down()
	if !c.Up() {
		t.Fatalf("Up() failed")
	}
	if c.Type() != TypeArray {
		t.Fatalf("after Up, type = %v, want array (back on the container value)", c.Type())
	}
	if !c.Next() {
		t.Fatalf("Next from the array to sibling key b failed")
	}
	if !c.Next() {
		t.Fatalf("Next from key b to its value failed")
	}
	v, err := c.GetInteger()
	if err != nil || v != 4 {
		t.Fatalf("v=%d err=%v, want 4", v, err)
	}
}

func TestCursorUpWithEmptyStackFails(t *testing.T) {
	pj := mustParse(t, `1`)
	c := NewCursor(pj)
	if c.Up() {
		t.Fatalf("Up() with nothing to ascend out of must return false")
	}
}

func TestCursorGetDouble(t *testing.T) {
	pj := mustParse(t, `3.5`)
	c := NewCursor(pj)
	v, err := c.GetDouble()
	if err != nil || v != 3.5 {
		t.Fatalf("v=%v err=%v, want 3.5", v, err)
	}
}

func TestCursorGetBool(t *testing.T) {
	pj := mustParse(t, `[true,false]`)
	c := NewCursor(pj)
	c.Down()
	b, err := c.GetBool()
	if err != nil || !b {
		t.Fatalf("b=%v err=%v, want true", b, err)
	}
	c.Next()
	b, err = c.GetBool()
	if err != nil || b {
		t.Fatalf("b=%v err=%v, want false", b, err)
	}
}

func TestCursorTypeMismatchReturnsError(t *testing.T) {
	pj := mustParse(t, `"hi"`)
	c := NewCursor(pj)
	if _, err := c.GetInteger(); err == nil {
		t.Fatalf("expected an error reading a string value as an integer")
	}
}

func TestCursorGetStringLength(t *testing.T) {
	pj := mustParse(t, `"hello"`)
	c := NewCursor(pj)
	n, err := c.GetStringLength()
	if err != nil || n != 5 {
		t.Fatalf("n=%d err=%v, want 5", n, err)
	}
}

func TestCursorMoveToKeyMissingReturnsFalse(t *testing.T) {
	pj := mustParse(t, `{"a":1}`)
	c := NewCursor(pj)
	c.Down()
	if c.MoveToKey([]byte("nope")) {
		t.Fatalf("MoveToKey for a missing key must return false")
	}
}
