package schema

import (
	"errors"
	"testing"
)

func TestInferString_CoercionPriority(t *testing.T) {
	tests := []struct {
		in   string
		want DataType
	}{
		{"true", TypeBoolean},
		{"False", TypeBoolean},
		{"TRUE", TypeBoolean},
		{"42", TypeInteger},
		{"-7", TypeInteger},
		{"+13", TypeInteger},
		{"0", TypeInteger},
		{"3.14", TypeFloat},
		{"-0.5", TypeFloat},
		{".5", TypeFloat},
		{"2.", TypeFloat},
		{"1e5", TypeFloat},
		{"6.02E23", TypeFloat},
		{"hello", TypeString},
		{"42abc", TypeString},
		{"1.2.3", TypeString},
		{"", TypeString},
		{"truthy", TypeString},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := InferString(tt.in); got != tt.want {
				t.Errorf("InferString(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestInfer_NativeValues(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want DataType
	}{
		{"nil", nil, TypeNull},
		{"bool", true, TypeBoolean},
		{"int", 7, TypeInteger},
		{"int64", int64(7), TypeInteger},
		{"whole_float", 3.0, TypeInteger},
		{"float", 3.5, TypeFloat},
		{"string_number", "42", TypeInteger},
		{"string_plain", "bob", TypeString},
		{"object", map[string]any{"a": 1}, TypeObject},
		{"array", []any{1, 2}, TypeArray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Infer(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Infer(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestInfer_InvalidValue(t *testing.T) {
	_, err := Infer(struct{}{})
	if err == nil {
		t.Fatal("expected error for unclassifiable value")
	}
	var invalid *InvalidValueError
	if !errors.As(err, &invalid) {
		t.Errorf("expected InvalidValueError, got %T", err)
	}
}
