package utils

import "testing"

func TestParseLimitOffset(t *testing.T) {
	tests := []struct {
		limitStr, offsetStr string
		wantLimit, wantOff  int
	}{
		{"", "", 50, 0},
		{"20", "40", 20, 40},
		{"9999", "0", 500, 0},
		{"abc", "-5", 50, 0},
		{"0", "", 50, 0},
	}
	for _, tt := range tests {
		limit, offset := ParseLimitOffset(tt.limitStr, tt.offsetStr)
		if limit != tt.wantLimit || offset != tt.wantOff {
			t.Errorf("ParseLimitOffset(%q, %q) = (%d, %d), want (%d, %d)",
				tt.limitStr, tt.offsetStr, limit, offset, tt.wantLimit, tt.wantOff)
		}
	}
}

func TestParseID(t *testing.T) {
	if id, ok := ParseID("42"); !ok || id != 42 {
		t.Fatalf("ParseID(42) = %d, %v", id, ok)
	}
	for _, bad := range []string{"", "abc", "0", "-1"} {
		if _, ok := ParseID(bad); ok {
			t.Errorf("ParseID(%q) accepted", bad)
		}
	}
}
