package schema

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"items.0.a", "items.*.a"},
		{"items.12", "items.*"},
		{"catalog.book[2].title", "catalog.book[*].title"},
		{"catalog.book[0]@id", "catalog.book[*]@id"},
		{"root.user.name", "root.user.name"},
		{"$", "$"},
		{"a.0.b[3].1", "a.*.b[*].*"},
	}

	for _, tt := range tests {
		if got := NormalizePath(tt.in); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHasWildcard(t *testing.T) {
	if !HasWildcard("items.*.a") {
		t.Error("expected wildcard in items.*.a")
	}
	if !HasWildcard("catalog.book[*]") {
		t.Error("expected wildcard in catalog.book[*]")
	}
	if HasWildcard("root.user.name") {
		t.Error("unexpected wildcard in root.user.name")
	}
}

func TestSplitOwner(t *testing.T) {
	tests := []struct {
		path  string
		owner string
		name  string
	}{
		{"root.user.name", "root.user", "name"},
		{"root.user@id", "root.user", "@id"},
		{"root.note#text", "root.note", "#text"},
		{"items", "", "items"},
		{"items.0", "items", "0"},
	}

	for _, tt := range tests {
		owner, name := splitOwner(tt.path)
		if owner != tt.owner || name != tt.name {
			t.Errorf("splitOwner(%q) = (%q, %q), want (%q, %q)", tt.path, owner, name, tt.owner, tt.name)
		}
	}
}

func TestJoinField(t *testing.T) {
	if got := joinField("root.user[*]", "@id"); got != "root.user[*]@id" {
		t.Errorf("joinField attribute = %q", got)
	}
	if got := joinField("items.*", "a"); got != "items.*.a" {
		t.Errorf("joinField key = %q", got)
	}
	if got := joinField("$", "items"); got != "items" {
		t.Errorf("joinField under json root = %q", got)
	}
}
