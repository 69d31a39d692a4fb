package rewrite

import (
	"fmt"

	"github.com/gitrdm/boolproof/pkg/boolexpr"
)

// Axiom is a named, bidirectional rewrite rule: a pair of patterns
// (L, R), either of which may be used as the rewrite's left side with
// the other as its right side.
type Axiom struct {
	Name string
	L    boolexpr.Expr
	R    boolexpr.Expr
}

// Direction picks which side of an Axiom is matched against (the
// "from" side) versus instantiated (the "to" side).
type Direction int

const (
	// Forward applies an axiom as L ⇒ R.
	Forward Direction = iota
	// Backward applies an axiom as R ⇒ L.
	Backward
)

// From and To return the match-against and instantiate-into patterns
// for the given direction.
func (a Axiom) From(dir Direction) boolexpr.Expr {
	if dir == Forward {
		return a.L
	}
	return a.R
}

func (a Axiom) To(dir Direction) boolexpr.Expr {
	if dir == Forward {
		return a.R
	}
	return a.L
}

// axiomSpec is the source-text form an Axiom is parsed from once, at
// package initialization. Writing axioms as concrete-grammar strings
// (rather than building Expr literals by hand) keeps the table
// readable and guarantees every axiom pattern is itself valid input to
// Parse — the same grammar a user's start/target expressions use.
type axiomSpec struct {
	name string
	l    string
	r    string
}

// axiomSpecs defines the twelve fixed Boolean-algebra axioms
// (associativity, commutativity, absorption, identity, distributivity,
// complements), each bidirectional. Order here is the declared order
// the rewriter enumerates axioms in, so it is also the order tests
// should expect for deterministic successor listings.
var axiomSpecs = []axiomSpec{
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

// Axioms holds the twelve named axioms, parsed exactly once at
// package load. A parse failure here is a bug in axiomSpecs, not a
// user input error, so it panics rather than returning an error.
var Axioms = buildAxioms()

func buildAxioms() []Axiom {
	axioms := make([]Axiom, len(axiomSpecs))
	for i, spec := range axiomSpecs {
		l, err := boolexpr.Parse(spec.l)
		if err != nil {
			panic(fmt.Sprintf("rewrite: invalid built-in axiom %q left side %q: %v", spec.name, spec.l, err))
		}
		r, err := boolexpr.Parse(spec.r)
		if err != nil {
			panic(fmt.Sprintf("rewrite: invalid built-in axiom %q right side %q: %v", spec.name, spec.r, err))
		}
		axioms[i] = Axiom{Name: spec.name, L: l, R: r}
	}
	return axioms
}

// Names are the fixed axiom-name set, in declared order.
func Names() []string {
	names := make([]string, len(Axioms))
	for i, a := range Axioms {
		names[i] = a.Name
	}
	return names
}
