package search

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-set/v3"

	"github.com/gitrdm/boolproof/internal/logging"
	"github.com/gitrdm/boolproof/pkg/boolexpr"
	"github.com/gitrdm/boolproof/pkg/rewrite"
)

// searchLogger is the logger FindShortestPath uses by default. Tests
// that want to assert on log output (or on a discard logger) should
// call findShortestPath directly with their own hclog.Logger instead.
var searchLogger = logging.New("search")

// visitEntry records how a search state was first reached: the
// expression itself, the canonical key of whichever state enqueued it
// (empty for the start state), the axiom that produced it, and its BFS
// depth.
type visitEntry struct {
	expr      boolexpr.Expr
	parentKey string
	axiom     string
	depth     int
}

// visitedSet tracks search states already discovered. Membership is
// pre-filtered by a 64-bit digest (cheap, hashable) before confirming
// against the canonical-key map, so a digest collision can never cause
// two distinct states to be mistaken for the same one: a digest hit
// with no matching string entry is treated as unvisited.
type visitedSet struct {
	digests *set.Set[uint64]
	byKey   map[string]visitEntry
}

func newVisitedSet() *visitedSet {
	return &visitedSet{
		digests: set.New[uint64](0),
		byKey:   make(map[string]visitEntry),
	}
}

func (v *visitedSet) has(e boolexpr.Expr) bool {
	if !v.digests.Contains(boolexpr.Digest(e)) {
		return false
	}
	_, ok := v.byKey[boolexpr.Key(e)]
	return ok
}

func (v *visitedSet) mark(e boolexpr.Expr, parentKey, axiom string, depth int) {
	v.digests.Insert(boolexpr.Digest(e))
	v.byKey[boolexpr.Key(e)] = visitEntry{expr: e, parentKey: parentKey, axiom: axiom, depth: depth}
}

// FindShortestPath runs a bounded breadth-first search over the
// expression-rewrite graph from start to target, returning the
// shortest witnessing Proof and true, or (nil, false) if no proof
// exists within maxDepth rewrite steps and maxSize node count per
// intermediate expression.
//
// ctx is polled once per dequeued frontier node; if it is done, the
// search stops and reports not-found with no partial proof. The
// search itself performs no concurrency of its own.
func FindShortestPath(ctx context.Context, start, target boolexpr.Expr, maxDepth, maxSize int) (Proof, bool) {
	return findShortestPath(ctx, start, target, maxDepth, maxSize, searchLogger)
}

// findShortestPath is the real implementation, taking an explicit
// logger so tests can run without emitting anything at the default
// level.
func findShortestPath(ctx context.Context, start, target boolexpr.Expr, maxDepth, maxSize int, logger hclog.Logger) (Proof, bool) {
	startKey := boolexpr.Key(start)
	targetKey := boolexpr.Key(target)

	if startKey == targetKey {
		logger.Info("proof found", "steps", 0, "reason", "self-match")
		return Proof{}, true
	}

	visited := newVisitedSet()
	visited.mark(start, "", "", 0)
	queue := []string{startKey}

	fresh := rewrite.NewFreshGen()

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			logger.Info("search cancelled", "reason", err)
			return nil, false
		}

		key := queue[0]
		queue = queue[1:]
		entry := visited.byKey[key]

		logger.Debug("dequeued frontier node", "depth", entry.depth, "frontier_size", len(queue), "visited_size", len(visited.byKey))

		if entry.depth >= maxDepth {
			continue
		}

		for _, succ := range rewrite.AllSuccessorsWith(entry.expr, fresh) {
			if succ.Expr.Size() > maxSize {
				continue
			}
			if visited.has(succ.Expr) {
				continue
			}
			visited.mark(succ.Expr, key, succ.Axiom, entry.depth+1)

			if boolexpr.Key(succ.Expr) == targetKey {
				proof := reconstruct(visited, boolexpr.Key(succ.Expr))
				logger.Info("proof found", "steps", len(proof))
				return proof, true
			}
			queue = append(queue, boolexpr.Key(succ.Expr))
		}
	}

	logger.Info("search exhausted", "reason", "not found within bounds")
	return nil, false
}

// reconstruct walks parent pointers from the goal's canonical key back
// to the start state (whose parentKey is ""), then reverses the
// resulting chain into forward order.
func reconstruct(visited *visitedSet, goalKey string) Proof {
	var reversed Proof
	for key := goalKey; ; {
		entry := visited.byKey[key]
		if entry.parentKey == "" {
			// entry is the search's start state, which is not itself a
			// rewrite step.
			break
		}
		reversed = append(reversed, Step{Expr: entry.expr, Axiom: entry.axiom})
		key = entry.parentKey
	}

	proof := make(Proof, len(reversed))
	for i, step := range reversed {
		proof[len(reversed)-1-i] = step
	}
	return proof
}
