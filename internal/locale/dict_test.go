package locale

import (
	"encoding/json"
	"errors"
	"testing"
)

func mustParse(t *testing.T, data string) *Dict {
	t.Helper()
	d := NewDict()
	if err := json.Unmarshal([]byte(data), d); err != nil {
		t.Fatalf("parse %q: %v", data, err)
	}
	return d
}

func TestResolveFlatKeyWinsOverNested(t *testing.T) {
	d := mustParse(t, `{"a.b": "flat", "a": {"b": "nested"}}`)

	v, ok := Resolve(d, "a.b")
	if !ok {
		t.Fatal("expected a.b to resolve")
	}
	if v != "flat" {
		t.Errorf("expected flat key to win, got %q", v)
	}
}

func TestResolveNested(t *testing.T) {
	d := mustParse(t, `{"onboarding": {"plans": {"free": {"name": "Free"}}}}`)

	v, ok := Resolve(d, "onboarding.plans.free.name")
	if !ok {
		t.Fatal("expected nested path to resolve")
	}
	if v != "Free" {
		t.Errorf("got %q", v)
	}

	if _, ok := Resolve(d, "onboarding.plans.paid.name"); ok {
		t.Error("expected missing branch to not resolve")
	}
	if _, ok := Resolve(d, "onboarding.plans.free.name.deeper"); ok {
		t.Error("expected path through a string to not resolve")
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil", nil, false},
		{"empty string", "", false},
		{"string", "x", true},
		{"false", false, false},
		{"true", true, true},
		{"zero", json.Number("0"), false},
		{"number", json.Number("2.5"), true},
		{"empty dict", NewDict(), false},
		{"empty array", []Value{}, false},
		{"array", []Value{"a"}, true},
	}

	for _, tt := range tests {
		if got := Truthy(tt.v); got != tt.want {
			t.Errorf("%s: Truthy = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestHasFalsyLeafCountsMissing(t *testing.T) {
	d := mustParse(t, `{"common": {"ok": "OK", "empty": "", "none": null}}`)

	if !Has(d, "common.ok") {
		t.Error("common.ok should be present")
	}
	if Has(d, "common.empty") {
		t.Error("empty string should count as missing")
	}
	if Has(d, "common.none") {
		t.Error("null should count as missing")
	}
	if Has(d, "common.absent") {
		t.Error("absent key should be missing")
	}
}

func TestUpsertCreatesIntermediates(t *testing.T) {
	d := NewDict()
	if err := Upsert(d, "a.b.c", "v"); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}

	v, ok := Resolve(d, "a.b.c")
	if !ok || v != "v" {
		t.Fatalf("expected a.b.c = v, got %v (ok=%v)", v, ok)
	}

	// Sibling insert reuses the intermediate object.
	if err := Upsert(d, "a.b.d", "w"); err != nil {
		t.Fatalf("Upsert sibling error: %v", err)
	}
	if d.Len() != 1 {
		t.Errorf("expected 1 top-level key, got %d", d.Len())
	}
}

func TestUpsertCollision(t *testing.T) {
	d := mustParse(t, `{"common": {"ok": "OK"}}`)

	err := Upsert(d, "common.ok.deep", "v")
	var collision *KeyCollisionError
	if !errors.As(err, &collision) {
		t.Fatalf("expected KeyCollisionError, got %v", err)
	}
	if collision.Segment != "ok" {
		t.Errorf("expected colliding segment ok, got %q", collision.Segment)
	}

	// The existing value must be untouched.
	if !Has(d, "common.ok") {
		t.Error("existing value lost after collision")
	}
}

func TestRoundTripPreservesOrder(t *testing.T) {
	src := `{"b":"1","a":{"z":"2","y":"3"},"n":42,"arr":[1,"x",true,null]}`
	d := mustParse(t, src)

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != src {
		t.Errorf("round trip changed content:\n in: %s\nout: %s", src, out)
	}
}

func TestMarshalNonASCIILiteral(t *testing.T) {
	d := NewDict()
	d.Set("common", func() *Dict {
		c := NewDict()
		c.Set("goTo", "Перейти")
		return c
	}())

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"common":{"goTo":"Перейти"}}`
	if string(out) != want {
		t.Errorf("got %s, want %s", out, want)
	}
}

func TestMarshalEscapes(t *testing.T) {
	d := NewDict()
	d.Set("k", "a \"quoted\"\nline\t")

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"k":"a \"quoted\"\nline\t"}`
	if string(out) != want {
		t.Errorf("got %s, want %s", out, want)
	}
}
