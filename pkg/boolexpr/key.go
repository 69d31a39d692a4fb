package boolexpr

import "github.com/dchest/siphash"

// siphash key pair. These are fixed, not secret — the digest only
// needs to be cheap and well distributed, not adversary-resistant; a
// fixed key keeps Digest deterministic across runs, which the search
// package relies on for reproducible visited-set behavior.
const (
	sipK0 = 0x646f6e277420706e // "don't pn" (arbitrary fixed constant)
	sipK1 = 0x69636b2074686973 // "ick this" (arbitrary fixed constant)
)

// Key is the canonical identity of an Expr as a search state: the
// concrete-syntax serialization of the tree. Two Expr values denote
// the same search state if and only if their Key is equal. Variable
// names are part of the key, so expressions equal only up to
// alpha-renaming are treated as distinct states — canonicalization is
// deliberately weak, trading some missed state-merges for a simple,
// obviously-correct notion of identity.
func Key(e Expr) string {
	return Print(e)
}

// Digest returns a 64-bit SipHash-2-4 digest of e's canonical key.
// It is a pre-filter for visited-set membership, not the source of
// truth: two expressions with the same Digest are only the same
// search state if their Key strings also match, so a 64-bit collision
// can never cause a distinct state to be silently treated as visited.
func Digest(e Expr) uint64 {
	k := Key(e)
	return siphash.Hash(sipK0, sipK1, []byte(k))
}
