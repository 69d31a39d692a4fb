package boolexpr

import "strings"

// Print renders e in the concrete prefix grammar from §6, e.g.
// "(+ a (~ a))". Print and Parse are inverses: Parse(Print(e))
// reproduces e structurally for every well-formed Expr whose variable
// names are single ASCII letters. Fresh "_N" variables from the
// rewriter are printed as-is, and Parse rejects them.
func Print(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

func writeExpr(b *strings.Builder, e Expr) {
	switch e.Kind {
	case LitKind:
		if e.Bit == 0 {
			b.WriteByte('0')
		} else {
			b.WriteByte('1')
		}
	case VarKind:
		b.WriteString(e.Name)
	case OpKind:
		b.WriteByte('(')
		b.WriteString(e.Op.String())
		for _, c := range e.Children {
			b.WriteByte(' ')
			writeExpr(b, c)
		}
		b.WriteByte(')')
	}
}
