package utils

import "testing"

func TestParseID(t *testing.T) {
	if id, err := ParseID(" 42 "); err != nil || id != 42 {
		t.Fatalf("expected 42 got %d err=%v", id, err)
	}
	for _, bad := range []string{"", "-1", "1.5", "abc", "4 2"} {
		if _, err := ParseID(bad); err == nil {
			t.Errorf("ParseID(%q) expected error", bad)
		}
	}
}

func TestParseAmount(t *testing.T) {
	if v, err := ParseAmount("1000.50"); err != nil || v != 1000.5 {
		t.Fatalf("expected 1000.5 got %v err=%v", v, err)
	}
	if v, err := ParseAmount("-20"); err != nil || v != -20 {
		t.Fatalf("expected -20 got %v err=%v", v, err)
	}
	if _, err := ParseAmount("ten"); err == nil {
		t.Error("ParseAmount(ten) expected error")
	}
}
