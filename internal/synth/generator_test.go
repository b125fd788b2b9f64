package synth

import (
	"context"
	"reflect"
	"testing"

	"corfetch/internal/records"
)

func TestGenerateIsDeterministic(t *testing.T) {
	first := Generate(50)
	second := Generate(50)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("two generations with the same count differ")
	}
}

func TestGenerateCountAndFields(t *testing.T) {
	recs := Generate(25)
	if len(recs) != 25 {
		t.Fatalf("got %d records, want 25", len(recs))
	}
	seen := map[string]struct{}{}
	for i, rec := range recs {
		doc := rec.Field(records.FieldDocumentNumber)
		if doc == "" {
			t.Fatalf("record %d missing document number", i)
		}
		if _, dup := seen[doc]; dup {
			t.Fatalf("duplicate document number %s", doc)
		}
		seen[doc] = struct{}{}

		if rec.Field(records.FieldEntityName) == "" {
			t.Fatalf("record %d missing entity name", i)
		}
		if rec.Field(records.FieldState) != "FL" {
			t.Fatalf("record %d state = %q", i, rec.Field(records.FieldState))
		}
		if officers := rec.Officers(); len(officers) != 4 {
			t.Fatalf("record %d has %d officers, want 4", i, len(officers))
		}
	}
}

func TestGenerateNamesCycleThroughVocabularies(t *testing.T) {
	recs := Generate(len(namePrefixes) + 1)
	first := recs[0].Field(records.FieldEntityName)
	wrapped := recs[len(namePrefixes)].Field(records.FieldEntityName)
	if first == wrapped {
		t.Fatalf("expected base vocabulary to advance after prefix wrap, both %q", first)
	}
}

func TestGeneratorTierNeverFails(t *testing.T) {
	gen := NewGenerator(0) // invalid count clamps to 1
	recs, ok := gen.Fetch(context.Background())
	if !ok {
		t.Fatal("generator tier reported failure")
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if gen.Name() != "synthetic" {
		t.Fatalf("Name = %q", gen.Name())
	}
}
