package schema

import "testing"

func TestPathPredicate(t *testing.T) {
	pred, err := PathPredicate(`^users\.user\[\d+\]@id$`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		path string
		want bool
	}{
		{"users.user[0]@id", true},
		{"users.user[12]@id", true},
		{"users.user[0].name", false},
		{"users.user[*]@id", false},
	}
	for _, tt := range tests {
		if got := pred(tt.path); got != tt.want {
			t.Errorf("pred(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestPathPredicate_Invalid(t *testing.T) {
	if _, err := PathPredicate(`[unclosed`); err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}
