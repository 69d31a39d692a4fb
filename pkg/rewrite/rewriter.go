package rewrite

import "github.com/gitrdm/boolproof/pkg/boolexpr"

// Successor is one expression reachable from another by a single
// axiom application at a single position, tagged with the axiom's
// name (not which direction or position the rewrite used).
type Successor struct {
	Axiom string
	Expr  boolexpr.Expr
}

// ApplyAt attempts to rewrite node itself (not its descendants) using
// axiom pattern from ⇒ to, via a single match-then-instantiate step.
// It reports (Expr{}, false) if from does not match node — rule
// inapplicability is not an error.
func ApplyAt(node, from, to boolexpr.Expr, fresh *FreshGen) (boolexpr.Expr, bool) {
	s, ok := Match(from, node)
	if !ok {
		return boolexpr.Expr{}, false
	}
	return Instantiate(to, s, fresh), true
}

// AllSuccessors enumerates every expression reachable from node by one
// axiom application, at any position, in either direction, using a
// private fresh-variable generator. Callers that need fresh names to
// stay disjoint across many calls (the search package, across an
// entire BFS run) should use AllSuccessorsWith instead.
func AllSuccessors(node boolexpr.Expr) []Successor {
	return AllSuccessorsWith(node, NewFreshGen())
}

// AllSuccessorsWith is AllSuccessors with an explicit, shared
// fresh-variable generator, so a caller driving many rewrites (a BFS
// search) can guarantee fresh names stay globally unique for the
// lifetime of that caller's work.
//
// Enumeration order is fixed and deterministic: axioms in declared
// order, forward then backward within each axiom, and pre-order
// positions (root, then child subtrees left to right) within each
// direction.
func AllSuccessorsWith(node boolexpr.Expr, fresh *FreshGen) []Successor {
	var out []Successor
	for _, axiom := range Axioms {
		for _, dir := range [...]Direction{Forward, Backward} {
			from, to := axiom.From(dir), axiom.To(dir)
			for _, rewritten := range successorsAt(node, from, to, fresh) {
				out = append(out, Successor{Axiom: axiom.Name, Expr: rewritten})
			}
		}
	}
	return out
}

// successorsAt returns, for one axiom direction (from ⇒ to), every
// tree obtainable by rewriting node at exactly one position — the
// node itself, or exactly one position within exactly one child
// subtree — in pre-order. Each result shares every subtree of node
// untouched by the rewrite (only the spine from the root down to the
// rewritten position is rebuilt), which is sound because Expr is
// immutable.
func successorsAt(node, from, to boolexpr.Expr, fresh *FreshGen) []boolexpr.Expr {
	var out []boolexpr.Expr

	if rewritten, ok := ApplyAt(node, from, to, fresh); ok {
		out = append(out, rewritten)
	}

	if node.Kind != boolexpr.OpKind {
		return out
	}

	for i, child := range node.Children {
		for _, rewrittenChild := range successorsAt(child, from, to, fresh) {
			newChildren := make([]boolexpr.Expr, len(node.Children))
			copy(newChildren, node.Children)
			newChildren[i] = rewrittenChild
			out = append(out, boolexpr.MakeOp(node.Op, newChildren...))
		}
	}

	return out
}
