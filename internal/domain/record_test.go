package domain

import (
	"testing"
	"time"
)

func TestCategory_TitleFieldRef(t *testing.T) {
	t.Parallel()

	t.Run("primary wins", func(t *testing.T) {
		t.Parallel()
		c := Category{TitleField: &FieldRef{ID: "f1"}, PresentationTitleField: &FieldRef{ID: "f2"}}
		if got := c.TitleFieldRef(); got == nil || got.ID != "f1" {
			t.Errorf("TitleFieldRef() = %v, want f1", got)
		}
	})

	t.Run("falls back to presentation title", func(t *testing.T) {
		t.Parallel()
		c := Category{PresentationTitleField: &FieldRef{ID: "f2"}}
		if got := c.TitleFieldRef(); got == nil || got.ID != "f2" {
			t.Errorf("TitleFieldRef() = %v, want f2", got)
		}
	})

	t.Run("empty primary id falls back", func(t *testing.T) {
		t.Parallel()
		c := Category{TitleField: &FieldRef{}, PresentationTitleField: &FieldRef{ID: "f2"}}
		if got := c.TitleFieldRef(); got == nil || got.ID != "f2" {
			t.Errorf("TitleFieldRef() = %v, want f2", got)
		}
	})

	t.Run("none", func(t *testing.T) {
		t.Parallel()
		if got := (Category{}).TitleFieldRef(); got != nil {
			t.Errorf("TitleFieldRef() = %v, want nil", got)
		}
	})
}

func TestChangeRecord_HasBeenPublished(t *testing.T) {
	t.Parallel()

	now := time.Now()
	if (ChangeRecord{}).HasBeenPublished() {
		t.Error("record without FirstPublishedAt reported as published")
	}
	if !(ChangeRecord{FirstPublishedAt: &now}).HasBeenPublished() {
		t.Error("record with FirstPublishedAt reported as never published")
	}
}

func TestChangeRecord_Field(t *testing.T) {
	t.Parallel()

	r := ChangeRecord{Fields: map[string]any{"title": "Hello"}}
	if v, ok := r.Field("title"); !ok || v != "Hello" {
		t.Errorf("Field(title) = %v, %v", v, ok)
	}
	if _, ok := r.Field("missing"); ok {
		t.Error("Field(missing) reported present")
	}
	if _, ok := r.Field(""); ok {
		t.Error("Field(\"\") reported present")
	}
	if _, ok := (ChangeRecord{}).Field("title"); ok {
		t.Error("Field on nil map reported present")
	}
}

func TestDisplayValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "  Hello  ", "Hello"},
		{"number", float64(42), "42"},
		{"bool", true, "true"},
		{"localized picks lexical first", map[string]any{"it": "Ciao", "en": "Hello"}, "Hello"},
		{"localized skips empty", map[string]any{"en": "", "it": "Ciao"}, "Ciao"},
		{"localized all empty", map[string]any{"en": nil}, ""},
		{"structured", []any{"a"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DisplayValue(tt.in); got != tt.want {
				t.Errorf("DisplayValue(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
