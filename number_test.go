package simdjson

import "testing"

func TestParseNumberInteger(t *testing.T) {
	res, n, status := parseNumber([]byte("12345,"))
	if status != SUCCESS {
		t.Fatalf("status = %v, want SUCCESS", status)
	}
	if res.isDouble {
		t.Fatalf("expected an integer result")
	}
	if res.i != 12345 {
		t.Fatalf("i = %d, want 12345", res.i)
	}
	if n != 5 {
		t.Fatalf("consumed = %d, want 5", n)
	}
}

func TestParseNumberNegative(t *testing.T) {
	res, n, status := parseNumber([]byte("-42}"))
	if status != SUCCESS || res.isDouble || res.i != -42 || n != 3 {
		t.Fatalf("got %+v, n=%d, status=%v", res, n, status)
	}
}

func TestParseNumberFloat(t *testing.T) {
	res, n, status := parseNumber([]byte("3.25]"))
	if status != SUCCESS {
		t.Fatalf("status = %v, want SUCCESS", status)
	}
	if !res.isDouble || res.d != 3.25 || n != 4 {
		t.Fatalf("got %+v, n=%d", res, n)
	}
}

func TestParseNumberExponent(t *testing.T) {
	res, n, status := parseNumber([]byte("1e3,"))
	if status != SUCCESS || !res.isDouble || res.d != 1000 || n != 3 {
		t.Fatalf("got %+v, n=%d, status=%v", res, n, status)
	}
}

func TestParseNumberLeadingZeroInvalid(t *testing.T) {
	if _, _, status := parseNumber([]byte("01")); status != NUMBER_ERROR {
		t.Fatalf("status = %v, want NUMBER_ERROR", status)
	}
}

func TestParseNumberZeroIsValid(t *testing.T) {
	res, n, status := parseNumber([]byte("0,"))
	if status != SUCCESS || res.i != 0 || n != 1 {
		t.Fatalf("got %+v n=%d status=%v", res, n, status)
	}
}

func TestParseNumberBareDotInvalid(t *testing.T) {
	if _, _, status := parseNumber([]byte(".5")); status != NUMBER_ERROR {
		t.Fatalf("status = %v, want NUMBER_ERROR", status)
	}
}

func TestParseNumberTrailingDotInvalid(t *testing.T) {
	if _, _, status := parseNumber([]byte("1.")); status != NUMBER_ERROR {
		t.Fatalf("status = %v, want NUMBER_ERROR", status)
	}
}

func TestParseNumberMissingExponentDigitsInvalid(t *testing.T) {
	if _, _, status := parseNumber([]byte("1e")); status != NUMBER_ERROR {
		t.Fatalf("status = %v, want NUMBER_ERROR", status)
	}
}

func TestParseNumberHugeExponentBecomesInf(t *testing.T) {
	res, _, status := parseNumber([]byte("1e9999"))
	if status != SUCCESS {
		t.Fatalf("status = %v, want SUCCESS (overflow tolerated to +Inf)", status)
	}
	if !res.isDouble {
		t.Fatalf("expected a double result")
	}
	if res.d <= 1e300 {
		t.Fatalf("expected an extremely large (or +Inf) magnitude, got %v", res.d)
	}
}

func TestParseNumberInt64OverflowFallsBackToDouble(t *testing.T) {
	res, _, status := parseNumber([]byte("99999999999999999999"))
	if status != SUCCESS {
		t.Fatalf("status = %v, want SUCCESS", status)
	}
	if !res.isDouble {
		t.Fatalf("expected overflowing integer literal to fall back to a double")
	}
}
