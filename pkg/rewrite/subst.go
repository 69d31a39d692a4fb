// Package rewrite implements the matcher, substituter, axiom table,
// and one-step rewriter for the Boolean-algebra proof engine: together
// these decide whether an axiom's left side unifies with a subtree and
// enumerate every expression reachable by one axiom application.
package rewrite

import "github.com/gitrdm/boolproof/pkg/boolexpr"

// Subst is a finite mapping from pattern-variable name to the Expr
// subtree it is bound to. It lives only for the duration of one match
// attempt (and the Instantiate call that may follow); the search
// package never retains one past a single rewrite.
//
// Once a pattern variable is bound, every later occurrence of it
// within the same match must agree, via strict structural equality,
// with the first binding — this is what makes repeated pattern
// variables (e.g. the two occurrences of `a` in `(+ a (~ a))`) force
// the same subtree on both sides.
type Subst map[string]boolexpr.Expr

// Instantiate builds a new Expr from a rewrite's right-hand side
// pattern rhs under substitution s, using fresh to name any pattern
// variable in rhs that s does not bind.
//
// If the same unbound pattern variable occurs more than once in rhs,
// every occurrence receives the same fresh variable (mirroring the
// teacher's CopyTerm/varMap discipline for freshening a term while
// preserving internal sharing) — so `Instantiate` never introduces two
// different fresh names for what was syntactically one pattern hole.
//
// Every subtree bound in s is deep-cloned into the result: the
// returned Expr shares no mutable state with either the pattern or
// whatever produced s's bindings (Expr is immutable, so this is a
// belt-and-suspenders copy rather than a correctness requirement, but
// it keeps the contract obvious at every call site).
func Instantiate(rhs boolexpr.Expr, s Subst, fresh *FreshGen) boolexpr.Expr {
	freshened := make(map[string]boolexpr.Expr)
	return instantiate(rhs, s, fresh, freshened)
}

func instantiate(rhs boolexpr.Expr, s Subst, fresh *FreshGen, freshened map[string]boolexpr.Expr) boolexpr.Expr {
	switch rhs.Kind {
	case boolexpr.LitKind:
		return rhs
	case boolexpr.VarKind:
		if bound, ok := s[rhs.Name]; ok {
			return bound.Clone()
		}
		if fv, ok := freshened[rhs.Name]; ok {
			return fv
		}
		fv := boolexpr.Var(fresh.Next())
		freshened[rhs.Name] = fv
		return fv
	case boolexpr.OpKind:
		children := make([]boolexpr.Expr, len(rhs.Children))
		for i, c := range rhs.Children {
			children[i] = instantiate(c, s, fresh, freshened)
		}
		return boolexpr.MakeOp(rhs.Op, children...)
	default:
		panic("rewrite: invalid Expr kind during instantiation")
	}
}
