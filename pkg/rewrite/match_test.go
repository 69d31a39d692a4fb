package rewrite

import (
	"testing"

	"github.com/gitrdm/boolproof/pkg/boolexpr"
)

func mustParse(t *testing.T, text string) boolexpr.Expr {
	t.Helper()
	e, err := boolexpr.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", text, err)
	}
	return e
}

func TestMatchLiteral(t *testing.T) {
	pattern := mustParse(t, "0")

	if _, ok := Match(pattern, mustParse(t, "0")); !ok {
		t.Error("Lit(0) should match Lit(0)")
	}
	if _, ok := Match(pattern, mustParse(t, "1")); ok {
		t.Error("Lit(0) should not match Lit(1)")
	}
	if _, ok := Match(pattern, mustParse(t, "a")); ok {
		t.Error("Lit(0) should not match a variable")
	}
}

func TestMatchBindsVariable(t *testing.T) {
	pattern := mustParse(t, "a")
	target := mustParse(t, "(+ x y)")

	s, ok := Match(pattern, target)
	if !ok {
		t.Fatal("a bare pattern variable should match anything")
	}
	if bound, ok := s["a"]; !ok || !bound.Equal(target) {
		t.Errorf("expected a bound to %v, got %v (ok=%v)", boolexpr.Print(target), bound, ok)
	}
}

func TestMatchRepeatedVariableForcesSameSubtree(t *testing.T) {
	// (+ a (~ a)) matched against a concrete (+ x (~ x)) must bind a
	// once and reuse that binding for the second occurrence.
	pattern := mustParse(t, "(+ a (~ a))")

	t.Run("same subtree on both sides succeeds", func(t *testing.T) {
		target := mustParse(t, "(+ x (~ x))")
		s, ok := Match(pattern, target)
		if !ok {
			t.Fatal("expected match to succeed")
		}
		if !s["a"].Equal(mustParse(t, "x")) {
			t.Errorf("expected a bound to x, got %v", boolexpr.Print(s["a"]))
		}
	})

	t.Run("different subtrees on each side fails", func(t *testing.T) {
		target := mustParse(t, "(+ x (~ y))")
		if _, ok := Match(pattern, target); ok {
			t.Error("repeated pattern variable must force identical subtrees")
		}
	})
}

func TestMatchOperatorArityAndOperator(t *testing.T) {
	pattern := mustParse(t, "(* a b)")

	if _, ok := Match(pattern, mustParse(t, "(+ x y)")); ok {
		t.Error("different operator should not match")
	}
	if _, ok := Match(pattern, mustParse(t, "(~ x)")); ok {
		t.Error("different arity should not match")
	}
}

func TestMatchInstantiateRoundTripOnPatternVariables(t *testing.T) {
	// Matching a pattern L against an expression e yields a substitution
	// sigma; re-matching L against Instantiate(L, sigma, _) must yield a
	// substitution structurally equivalent to sigma on L's variables.
	l := mustParse(t, "(+ a (* a b))")
	e := mustParse(t, "(+ x (* x y))")

	s, ok := Match(l, e)
	if !ok {
		t.Fatal("expected match to succeed")
	}

	instantiated := Instantiate(l, s, NewFreshGen())
	s2, ok := Match(l, instantiated)
	if !ok {
		t.Fatal("expected re-match against instantiated pattern to succeed")
	}

	for _, name := range []string{"a", "b"} {
		if !s[name].Equal(s2[name]) {
			t.Errorf("binding for %q diverged: %v vs %v", name, boolexpr.Print(s[name]), boolexpr.Print(s2[name]))
		}
	}
}
