package rewrite

import "github.com/gitrdm/boolproof/pkg/boolexpr"

// Match decides whether target unifies with pattern, where pattern's
// Var nodes act as holes rather than opaque user variables: a variable
// is a pattern variable or an ordinary expression variable purely by
// which side of a match it appears on, never by how it's represented.
//
// On success it returns the substitution built while matching and
// true. On failure — this is not an error, only a signal that the
// rule does not apply at this position — it returns (nil, false).
func Match(pattern, target boolexpr.Expr) (Subst, bool) {
	s := make(Subst)
	if matchInto(pattern, target, s) {
		return s, true
	}
	return nil, false
}

// matchInto threads a single growing substitution through the
// recursive structural match, failing as soon as any child fails.
func matchInto(pattern, target boolexpr.Expr, s Subst) bool {
	switch pattern.Kind {
	case boolexpr.LitKind:
		return target.Kind == boolexpr.LitKind && target.Bit == pattern.Bit

	case boolexpr.VarKind:
		if bound, ok := s[pattern.Name]; ok {
			return bound.Equal(target)
		}
		s[pattern.Name] = target
		return true

	case boolexpr.OpKind:
		if target.Kind != boolexpr.OpKind {
			return false
		}
		if target.Op != pattern.Op || len(target.Children) != len(pattern.Children) {
			return false
		}
		for i := range pattern.Children {
			if !matchInto(pattern.Children[i], target.Children[i], s) {
				return false
			}
		}
		return true

	default:
		panic("rewrite: invalid Expr kind during match")
	}
}
