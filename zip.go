package matchgo

import (
	"context"
	"sort"
)

// Pair is a single match result: an item from list A paired with an item
// from list B.
type Pair[T any] struct {
	A T
	B T
}

// ScoreFunc rates the similarity or distance of two comparison keys.
// An error fails the whole assignment; no partial results are returned.
type ScoreFunc[K any] func(a, b K) (float64, error)

// Config configures the generic assignment engine.
type Config[T any, K comparable] struct {
	// Score rates a pair of projected keys. Required.
	Score ScoreFunc[K]

	// HighIsSimilar is true when larger scores mean more similar (ratio-style
	// scoring), false when smaller scores do (distance-style scoring).
	HighIsSimilar bool

	// SingleMatch forbids reusing an item of list B across two pairs. It
	// requires len(listB) >= len(listA) so every A item has a match.
	SingleMatch bool

	// Key projects an item to its comparison key. Required; use Identity
	// when items are their own keys.
	Key func(T) K

	// DirectFirst commits exact key matches before any fuzzy scoring.
	// Callers enabling this must use a scoring function that gives exact
	// matches the extremal score; the engine does not validate that, and a
	// scoring function violating it can change results.
	DirectFirst bool

	// MaxWorkers bounds the parallel scoring pool. Values <= 1 score
	// sequentially. The effective count is capped at min(MaxWorkers, 9,
	// |A|x|B|). Parallel and sequential scoring produce identical results.
	MaxWorkers int

	// Logger receives debug-level operation logs. Nil disables logging.
	Logger *Logger
}

// Identity is a key projection for items that are their own comparison keys.
func Identity[K comparable](v K) K { return v }

// Zip pairs every item of listA with its best available counterpart in
// listB, greedily committing the strongest remaining pair first.
//
// The result holds any direct (exact-key) matches first, in listA scan
// order, followed by fuzzy matches in descending match strength. Under
// SingleMatch every B item appears at most once; otherwise B items may
// repeat. Ties between equal scores break in row-major score-matrix order,
// so results are deterministic.
//
// Scoring the full cross product makes this quadratic in list lengths; use
// it on at most a few hundred items per side.
func Zip[T any, K comparable](ctx context.Context, listA, listB []T, cfg Config[T, K]) ([]Pair[T], error) {
	pairs, direct, err := zip(ctx, listA, listB, cfg)
	if cfg.Logger != nil {
		cfg.Logger.LogZip(ctx, len(listA), len(listB), direct, len(pairs)-direct, err)
	}
	return pairs, err
}

func zip[T any, K comparable](ctx context.Context, listA, listB []T, cfg Config[T, K]) (pairs []Pair[T], direct int, err error) {
	if cfg.Score == nil {
		return nil, 0, ErrMissingScoreFunc
	}
	if cfg.Key == nil {
		return nil, 0, ErrMissingKeyFunc
	}
	if cfg.SingleMatch && len(listB) < len(listA) {
		return nil, 0, &ErrInsufficientTargets{LenA: len(listA), LenB: len(listB)}
	}
	if len(listA) == 0 {
		return []Pair[T]{}, 0, nil
	}
	if len(listB) == 0 {
		// Nothing to pair against in any mode.
		return nil, 0, &ErrInsufficientTargets{LenA: len(listA), LenB: len(listB)}
	}

	keysA := make([]K, len(listA))
	for i, v := range listA {
		keysA[i] = cfg.Key(v)
	}
	keysB := make([]K, len(listB))
	for i, v := range listB {
		keysB[i] = cfg.Key(v)
	}

	// Index lists of items still in play. Direct matching shrinks them;
	// scoring and greedy selection work on what remains.
	remainA := make([]int, 0, len(listA))
	remainB := make([]int, 0, len(listB))

	if cfg.DirectFirst {
		// Exact key matches commit immediately in listA scan order. Under
		// SingleMatch each consumes the first still-available B item with
		// that key; otherwise B items stay reusable, both for further direct
		// matches and for fuzzy scoring, so the fast path cannot change what
		// the remaining A items pair with.
		availByKey := make(map[K][]int, len(listB))
		for bi, k := range keysB {
			availByKey[k] = append(availByKey[k], bi)
		}
		usedB := make([]bool, len(listB))
		for ai, k := range keysA {
			if idxs := availByKey[k]; len(idxs) > 0 {
				bi := idxs[0]
				if cfg.SingleMatch {
					availByKey[k] = idxs[1:]
					usedB[bi] = true
				}
				pairs = append(pairs, Pair[T]{A: listA[ai], B: listB[bi]})
				continue
			}
			remainA = append(remainA, ai)
		}
		for bi := range listB {
			if !usedB[bi] {
				remainB = append(remainB, bi)
			}
		}
	} else {
		for ai := range listA {
			remainA = append(remainA, ai)
		}
		for bi := range listB {
			remainB = append(remainB, bi)
		}
	}
	direct = len(pairs)

	if len(remainA) == 0 {
		return pairs, direct, nil
	}

	scores, err := scoreMatrix(ctx, keysA, keysB, remainA, remainB, cfg.Score, cfg.MaxWorkers)
	if err != nil {
		return nil, 0, err
	}

	// Flatten into (score, row, col) triples. The slice is already in
	// row-major encounter order, and the stable sort preserves that order
	// among equal scores.
	type scored struct {
		score    float64
		row, col int
	}
	triples := make([]scored, 0, len(scores))
	for r := range remainA {
		for c := range remainB {
			triples = append(triples, scored{score: scores[r*len(remainB)+c], row: r, col: c})
		}
	}
	if cfg.HighIsSimilar {
		sort.SliceStable(triples, func(i, j int) bool { return triples[i].score > triples[j].score })
	} else {
		sort.SliceStable(triples, func(i, j int) bool { return triples[i].score < triples[j].score })
	}

	takenA := make([]bool, len(remainA))
	takenB := make([]bool, len(remainB))
	matched := 0
	for _, t := range triples {
		if matched == len(remainA) {
			break
		}
		if takenA[t.row] {
			continue
		}
		if cfg.SingleMatch && takenB[t.col] {
			continue
		}
		takenA[t.row] = true
		takenB[t.col] = true
		pairs = append(pairs, Pair[T]{A: listA[remainA[t.row]], B: listB[remainB[t.col]]})
		matched++
	}

	return pairs, direct, nil
}
