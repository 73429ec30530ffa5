package matchgo

import (
	"context"

	"github.com/hupe1980/matchgo/memo"
)

// Options configure ZipStrings.
type Options struct {
	// Score rates two projected keys. Defaults to the memoized edit ratio.
	Score ScoreFunc[string]

	// HighIsSimilar is true when larger scores mean more similar. Set it
	// alongside Score; the default score is ratio-style.
	HighIsSimilar bool

	// SingleMatch forbids reusing a B item across pairs. Default true.
	SingleMatch bool

	// Key projects an item before scoring. Defaults to identity.
	Key func(string) string

	// DirectFirst commits exact key matches before fuzzy scoring. See
	// Config.DirectFirst for the caller contract. Default false.
	DirectFirst bool

	// MaxWorkers bounds the parallel scoring pool. Default 1 (sequential).
	MaxWorkers int

	// Logger receives debug-level operation logs. Nil disables logging.
	Logger *Logger

	// Memo backs the default edit-ratio score. Pass a shared memo to reuse
	// cached distances across calls; ignored when Score is set. Defaults to
	// a fresh memo per call.
	Memo *memo.EditMemo
}

// WithScore sets a custom scoring function and its score direction.
func WithScore(score ScoreFunc[string], highIsSimilar bool) func(*Options) {
	return func(o *Options) {
		o.Score = score
		o.HighIsSimilar = highIsSimilar
	}
}

// WithSingleMatch controls whether a B item may be reused across pairs.
func WithSingleMatch(single bool) func(*Options) {
	return func(o *Options) {
		o.SingleMatch = single
	}
}

// WithKey sets the projection applied to items before scoring. The returned
// pairs still hold the original items.
func WithKey(key func(string) string) func(*Options) {
	return func(o *Options) {
		o.Key = key
	}
}

// WithDirectFirst enables the exact-match fast path.
func WithDirectFirst(direct bool) func(*Options) {
	return func(o *Options) {
		o.DirectFirst = direct
	}
}

// WithMaxWorkers bounds the parallel scoring pool.
func WithMaxWorkers(n int) func(*Options) {
	return func(o *Options) {
		o.MaxWorkers = n
	}
}

// WithLogger sets the operation logger.
func WithLogger(logger *Logger) func(*Options) {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithMemo sets the edit-distance memo backing the default score.
func WithMemo(m *memo.EditMemo) func(*Options) {
	return func(o *Options) {
		o.Memo = m
	}
}

// ZipStrings pairs two string lists with Zip, defaulting to a memoized
// edit-ratio score with single matching. See Zip for the result contract.
func ZipStrings(ctx context.Context, listA, listB []string, optFns ...func(*Options)) ([]Pair[string], error) {
	opts := Options{
		SingleMatch: true,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Score == nil {
		m := opts.Memo
		if m == nil {
			m = memo.New()
		}
		opts.Score = func(a, b string) (float64, error) {
			return m.Ratio(a, b), nil
		}
		opts.HighIsSimilar = true
	}
	key := opts.Key
	if key == nil {
		key = Identity[string]
	}

	return Zip(ctx, listA, listB, Config[string, string]{
		Score:         opts.Score,
		HighIsSimilar: opts.HighIsSimilar,
		SingleMatch:   opts.SingleMatch,
		Key:           key,
		DirectFirst:   opts.DirectFirst,
		MaxWorkers:    opts.MaxWorkers,
		Logger:        opts.Logger,
	})
}
