// Package matchgo pairs items from two lists by best aggregate similarity.
//
// It is built for collections that name the same underlying entities
// inconsistently, such as two institutions' department lists that abbreviate
// or reorder words differently. A pluggable scoring function rates every
// cross-list pair, and a greedy assignment commits the strongest remaining
// pair until every item of the first list is matched.
//
// # Quick Start
//
// The common case matches two string lists with a memoized edit-distance
// ratio:
//
//	pairs, err := matchgo.ZipStrings(ctx, listA, listB)
//	for _, p := range pairs {
//	    fmt.Println(p.A, "->", p.B)
//	}
//
// Custom items, key projections, and scoring functions go through the
// generic engine:
//
//	pairs, err := matchgo.Zip(ctx, depts, listings, matchgo.Config[Dept, string]{
//	    Key:           func(d Dept) string { return strings.ToLower(d.Name) },
//	    Score:         func(a, b string) (float64, error) { return seqdist.CompositeRatio(a, b), nil },
//	    HighIsSimilar: true,
//	    SingleMatch:   true,
//	    DirectFirst:   true,
//	})
//
// # Guarantees and Limits
//
// The assignment is greedy and near-optimal, not globally optimal: it is not
// an assignment-problem solver. Scoring the full cross product makes the
// cost quadratic in list length, so it is intended for at most a few hundred
// items per side. Ties between equal scores break deterministically in
// row-major matrix order. Parallel and sequential scoring produce identical
// results.
//
// Distance primitives live in the seqdist subpackage, and the memo
// subpackage caches edit distances across calls, with optional snapshot
// persistence.
package matchgo
