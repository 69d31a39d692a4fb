package rewrite

import (
	"testing"

	"github.com/gitrdm/boolproof/pkg/boolexpr"
)

func TestBuildAxiomsProducesTwelveEntries(t *testing.T) {
	if len(Axioms) != 12 {
		t.Fatalf("got %d axioms, want 12", len(Axioms))
	}
}

func TestAxiomNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range Axioms {
		if seen[a.Name] {
			t.Errorf("duplicate axiom name %q", a.Name)
		}
		seen[a.Name] = true
	}
}

func TestAxiomFromToDirections(t *testing.T) {
	a := axiomByName(t, "comm-add")

	if !a.From(Forward).Equal(a.L) {
		t.Error("From(Forward) should be L")
	}
	if !a.To(Forward).Equal(a.R) {
		t.Error("To(Forward) should be R")
	}
	if !a.From(Backward).Equal(a.R) {
		t.Error("From(Backward) should be R")
	}
	if !a.To(Backward).Equal(a.L) {
		t.Error("To(Backward) should be L")
	}
}

func TestAxiomPatternsParseToExpectedShapes(t *testing.T) {
	cases := []struct {
		name    string
		wantL   string
		wantR   string
	}{
		{"assoc-add", "(+ a (+ b c))", "(+ (+ a b) c)"},
		{"assoc-mul", "(* a (* b c))", "(* (* a b) c)"},
		{"comm-add", "(+ a b)", "(+ b a)"},
		{"comm-mul", "(* a b)", "(* b a)"},
		{"abs-add", "(+ a (* a b))", "a"},
		{"abs-mul", "(* a (+ a b))", "a"},
		{"iden-add", "(+ a 0)", "a"},
		{"iden-mul", "(* a 1)", "a"},
		{"dist-add", "(+ a (* b c))", "(* (+ a b) (+ a c))"},
		{"dist-mul", "(* a (+ b c))", "(+ (* a b) (* a c))"},
		{"comp-add", "(+ a (~ a))", "1"},
		{"comp-mul", "(* a (~ a))", "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := axiomByName(t, tc.name)
			if !a.L.Equal(mustParse(t, tc.wantL)) {
				t.Errorf("L = %v, want %v", boolexpr.Print(a.L), tc.wantL)
			}
			if !a.R.Equal(mustParse(t, tc.wantR)) {
				t.Errorf("R = %v, want %v", boolexpr.Print(a.R), tc.wantR)
			}
		})
	}
}

func TestNamesOrderMatchesAxiomsOrder(t *testing.T) {
	names := Names()
	for i, a := range Axioms {
		if names[i] != a.Name {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], a.Name)
		}
	}
}
