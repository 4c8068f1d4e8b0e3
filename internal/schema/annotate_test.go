package schema

import (
	"errors"
	"testing"

	"github.com/recordkit/recordkit/internal/valid"
)

func TestAnnotate(t *testing.T) {
	t.Run("registers a rule", func(t *testing.T) {
		registry := NewRegistry()
		post := NewType("Post", nil)

		err := registry.Annotate(post, FieldRule{Name: "title", Schema: valid.String()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !registry.Has(post, "title") {
			t.Error("rule not registered")
		}
	})

	t.Run("duplicate field is rejected", func(t *testing.T) {
		registry := NewRegistry()
		post := NewType("Post", nil)

		first := FieldRule{Name: "title", Schema: valid.String().Min(1)}
		if err := registry.Annotate(post, first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err := registry.Annotate(post, FieldRule{Name: "title", Schema: valid.String()})
		var dup *DuplicateRuleError
		if !errors.As(err, &dup) {
			t.Fatalf("expected DuplicateRuleError, got %v", err)
		}
		if dup.Field != "title" || dup.Type != post {
			t.Errorf("error should name the field and type: %v", dup)
		}

		// First registration stays intact
		rules := registry.Rules(post)
		if len(rules) != 1 {
			t.Fatalf("expected 1 rule, got %d", len(rules))
		}
		if _, parseErr := rules[0].Schema.Parse(""); parseErr == nil {
			t.Error("the surviving rule should be the first registration")
		}
	})

	t.Run("same field on unrelated types is allowed", func(t *testing.T) {
		registry := NewRegistry()
		a := NewType("Invoice", nil)
		b := NewType("Ticket", nil)

		if err := registry.Annotate(a, FieldRule{Name: "x", Schema: valid.Int()}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := registry.Annotate(b, FieldRule{Name: "x", Schema: valid.Int()}); err != nil {
			t.Errorf("unrelated types must not collide: %v", err)
		}
	})

	t.Run("missing field name is rejected", func(t *testing.T) {
		registry := NewRegistry()
		post := NewType("Post", nil)

		if err := registry.Annotate(post, FieldRule{Schema: valid.String()}); err == nil {
			t.Error("expected error for empty field name")
		}
	})

	t.Run("missing schema is rejected", func(t *testing.T) {
		registry := NewRegistry()
		post := NewType("Post", nil)

		if err := registry.Annotate(post, FieldRule{Name: "title"}); err == nil {
			t.Error("expected error for nil schema")
		}
	})
}

func TestDefine(t *testing.T) {
	t.Run("fluent definition", func(t *testing.T) {
		registry := NewRegistry()
		post := NewType("Post", nil)

		err := Define(registry, post).
			Field("id", valid.UUID(), SkipOn(VariantCreate, VariantUpdate)).
			Field("title", valid.String().Min(1).Max(255)).
			Field("status", valid.Enum("draft", "published"), NullableColumn(), ColumnDefault("draft")).
			Err()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rules := registry.Rules(post)
		if len(rules) != 3 {
			t.Fatalf("expected 3 rules, got %d", len(rules))
		}

		if !rules[0].Skips(VariantCreate) || !rules[0].Skips(VariantUpdate) {
			t.Error("id skip set not applied")
		}
		if rules[0].Skips(VariantFull) {
			t.Error("id should not skip full")
		}

		status := rules[2]
		if status.Column == nil || !status.Column.Nullable || !status.Column.HasDefault {
			t.Errorf("status column hints not applied: %+v", status.Column)
		}
		if status.Column.Default != "draft" {
			t.Errorf("expected draft default, got %v", status.Column.Default)
		}
	})

	t.Run("stops at first error", func(t *testing.T) {
		registry := NewRegistry()
		post := NewType("Post", nil)

		err := Define(registry, post).
			Field("title", valid.String()).
			Field("title", valid.String()).
			Field("body", valid.String()).
			Err()

		var dup *DuplicateRuleError
		if !errors.As(err, &dup) {
			t.Fatalf("expected DuplicateRuleError, got %v", err)
		}

		// body was never registered because the builder halted
		if registry.Has(post, "body") {
			t.Error("builder should stop registering after an error")
		}
	})
}

func TestVariantParsing(t *testing.T) {
	for _, v := range Variants() {
		parsed, err := ParseVariant(v.String())
		if err != nil {
			t.Errorf("round trip failed for %s: %v", v, err)
		}
		if parsed != v {
			t.Errorf("expected %v, got %v", v, parsed)
		}
	}

	if _, err := ParseVariant("bogus"); err == nil {
		t.Error("expected error for unknown variant")
	}
}
