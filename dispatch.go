package matchgo

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// maxScoreWorkers caps the parallel scoring pool regardless of the
// configured bound, to avoid oversubscription on tiny inputs.
const maxScoreWorkers = 9

// scoreMatrix computes the score of every (remainA, remainB) index pair in
// row-major order, sequentially or chunked across a bounded worker pool.
// Both paths fill the result identically; a scoring error aborts the whole
// computation and surfaces as a *ScoreError naming the offending pair.
func scoreMatrix[K comparable](ctx context.Context, keysA, keysB []K, remainA, remainB []int, score ScoreFunc[K], maxWorkers int) ([]float64, error) {
	total := len(remainA) * len(remainB)
	scores := make([]float64, total)

	workers := min(maxWorkers, maxScoreWorkers, total)
	if workers <= 1 {
		if err := scoreChunk(ctx, keysA, keysB, remainA, remainB, score, scores, 0, total); err != nil {
			return nil, err
		}
		return scores, nil
	}

	// Partition the flattened index space into near-equal contiguous chunks.
	// Each worker writes a disjoint slice of scores, so no locking is needed
	// to reassemble: the row-major layout is preserved by construction.
	chunkSize := (total + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < total; start += chunkSize {
		start, end := start, min(start+chunkSize, total)
		g.Go(func() error {
			return scoreChunk(gctx, keysA, keysB, remainA, remainB, score, scores, start, end)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}

// scoreChunk fills scores[start:end], where flat index i maps to the pair
// (remainA[i / len(remainB)], remainB[i % len(remainB)]).
func scoreChunk[K comparable](ctx context.Context, keysA, keysB []K, remainA, remainB []int, score ScoreFunc[K], scores []float64, start, end int) error {
	cols := len(remainB)
	for i := start; i < end; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		ai := remainA[i/cols]
		bi := remainB[i%cols]
		s, err := score(keysA[ai], keysB[bi])
		if err != nil {
			return &ScoreError{AIndex: ai, BIndex: bi, cause: err}
		}
		scores[i] = s
	}
	return nil
}
