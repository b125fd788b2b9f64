package fixedwidth

import "testing"

func TestFormatPadsToWidth(t *testing.T) {
	got := Format("ABC", "", 6)
	if got != "ABC   " {
		t.Fatalf("Format = %q, want %q", got, "ABC   ")
	}
}

func TestFormatTruncatesSilently(t *testing.T) {
	got := Format("ABCDEFGH", "", 4)
	if got != "ABCD" {
		t.Fatalf("Format = %q, want %q", got, "ABCD")
	}
}

func TestFormatUsesFallbackWhenEmpty(t *testing.T) {
	got := Format("", "CONDO", 8)
	if got != "CONDO   " {
		t.Fatalf("Format = %q, want %q", got, "CONDO   ")
	}
}

func TestFormatEmptyValueAndFallback(t *testing.T) {
	got := Format("", "", 3)
	if got != "   " {
		t.Fatalf("Format = %q, want three spaces", got)
	}
}

func TestFormatReplacesNonASCII(t *testing.T) {
	got := Format("CAFÉ", "", 6)
	if got != "CAF?  " {
		t.Fatalf("Format = %q, want %q", got, "CAF?  ")
	}
	if got := Format("A\tB", "", 4); got != "A?B " {
		t.Fatalf("Format = %q, want %q", got, "A?B ")
	}
}

func TestFormatZeroWidth(t *testing.T) {
	if got := Format("X", "", 0); got != "" {
		t.Fatalf("Format with zero width = %q, want empty", got)
	}
}
