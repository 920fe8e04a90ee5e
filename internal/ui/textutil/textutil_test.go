package textutil

import (
	"reflect"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 8, "this is…"},
		{"Lehrkräfte", 6, "Lehrk…"},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
		if tt.max > 0 && VisualWidth(Truncate(tt.in, tt.max)) > tt.max {
			t.Errorf("Truncate(%q, %d) exceeds width", tt.in, tt.max)
		}
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("Client/Server-Modell mit persistenten Verbindungen", 20)
	want := []string{"Client/Server-Modell", "mit persistenten", "Verbindungen"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap = %q, want %q", got, want)
	}
}

func TestWrap_LongWord(t *testing.T) {
	got := Wrap("abcdefghij xy", 4)
	want := []string{"abcd", "efgh", "ij", "xy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap = %q, want %q", got, want)
	}
}

func TestWrap_Empty(t *testing.T) {
	if got := Wrap("", 10); len(got) != 1 || got[0] != "" {
		t.Errorf("Wrap(\"\") = %q", got)
	}
}

func TestHang(t *testing.T) {
	got := Hang("• ", "one two three", 9)
	want := []string{"• one two", "  three"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Hang = %q, want %q", got, want)
	}
}
