package domain

import "testing"

func TestNormalizeHandle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "alice", "alice"},
		{"leading at", "@alice", "alice"},
		{"double at", "@@alice", "alice"},
		{"surrounding whitespace", "  bob  ", "bob"},
		{"at and whitespace", " @carol ", "carol"},
		{"whitespace after at", "@ dave", "dave"},
		{"empty", "", ""},
		{"only at", "@", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeHandle(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeHandle(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeHandle_Idempotent(t *testing.T) {
	for _, in := range []string{"@alice", "alice", " @bob ", "@@carol", ""} {
		once := NormalizeHandle(in)
		twice := NormalizeHandle(once)
		if once != twice {
			t.Errorf("NormalizeHandle not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestPost_HasMetrics(t *testing.T) {
	if (Post{Text: "hi"}).HasMetrics() {
		t.Error("expected no metrics for zero counts")
	}
	if !(Post{Text: "hi", Likes: 3}).HasMetrics() {
		t.Error("expected metrics when likes > 0")
	}
}
