// Package search implements breadth-first shortest-path proof search
// over the expression-rewrite graph defined by pkg/rewrite.
package search

import "github.com/gitrdm/boolproof/pkg/boolexpr"

// Step is one link in a Proof: the expression reached by applying
// Axiom to the previous step's expression (or to the search's start
// expression, for the first Step).
type Step struct {
	Expr  boolexpr.Expr
	Axiom string
}

// Proof is a witnessing sequence of rewrite steps from a search's
// start expression to its target. A Proof of length zero means start
// and target were already the same search state: no rewrite was
// necessary.
type Proof []Step
