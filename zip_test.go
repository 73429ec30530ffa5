package matchgo

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/matchgo/memo"
	"github.com/hupe1980/matchgo/seqdist"
)

func TestZipStrings_ExactPairs(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 25; i++ {
		listA := randomList(rng, 25)
		listB := make([]string, len(listA))
		copy(listB, listA)
		rng.Shuffle(len(listB), func(i, j int) { listB[i], listB[j] = listB[j], listB[i] })

		pairs, err := ZipStrings(ctx, listA, listB)
		require.NoError(t, err)
		require.Len(t, pairs, len(listA))
		for _, p := range pairs {
			assert.Equal(t, p.A, p.B)
		}
	}
}

func TestZipStrings_DirectFirst(t *testing.T) {
	ctx := context.Background()
	listA := []string{"alpha", "beta"}
	listB := []string{"beta", "alpha", "gamma"}

	pairs, err := ZipStrings(ctx, listA, listB, WithDirectFirst(true))
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	// Exact matches come first, in listA scan order.
	assert.Equal(t, Pair[string]{A: "alpha", B: "alpha"}, pairs[0])
	assert.Equal(t, Pair[string]{A: "beta", B: "beta"}, pairs[1])

	// Every A item appears exactly once, and no B item is reused.
	seenA := map[string]int{}
	seenB := map[string]int{}
	for _, p := range pairs {
		seenA[p.A]++
		seenB[p.B]++
	}
	for _, a := range listA {
		assert.Equal(t, 1, seenA[a])
	}
	for _, n := range seenB {
		assert.Equal(t, 1, n)
	}
}

func TestZipStrings_FuzzyOrderedByStrength(t *testing.T) {
	ctx := context.Background()
	listA := []string{"abcdefgh", "qqqq"}
	listB := []string{"qqqx", "abcdefgx"}

	pairs, err := ZipStrings(ctx, listA, listB)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	// The longer near-match scores higher, so it commits first.
	assert.Equal(t, Pair[string]{A: "abcdefgh", B: "abcdefgx"}, pairs[0])
	assert.Equal(t, Pair[string]{A: "qqqq", B: "qqqx"}, pairs[1])
}

func TestZipStrings_MultiMatchReusesB(t *testing.T) {
	ctx := context.Background()
	listA := []string{"match", "hatch", "latch"}
	listB := []string{"batch"}

	pairs, err := ZipStrings(ctx, listA, listB, WithSingleMatch(false))
	require.NoError(t, err)
	require.Len(t, pairs, 3)
	for _, p := range pairs {
		assert.Equal(t, "batch", p.B)
	}
}

func TestZipStrings_MultiMatchDirectFirstKeepsB(t *testing.T) {
	ctx := context.Background()

	t.Run("DirectMatchesDoNotConsumeB", func(t *testing.T) {
		// Without single matching, a direct match must not remove its B item
		// from play: leftover A items still need a fuzzy partner.
		pairs, err := ZipStrings(ctx, []string{"alpha", "beta"}, []string{"alpha"},
			WithSingleMatch(false),
			WithDirectFirst(true),
		)
		require.NoError(t, err)
		require.Len(t, pairs, 2)
		assert.Equal(t, Pair[string]{A: "alpha", B: "alpha"}, pairs[0])
		assert.Equal(t, Pair[string]{A: "beta", B: "alpha"}, pairs[1])
	})

	t.Run("DuplicateAKeysAllMatchDirectly", func(t *testing.T) {
		pairs, err := ZipStrings(ctx, []string{"a", "a"}, []string{"a"},
			WithSingleMatch(false),
			WithDirectFirst(true),
		)
		require.NoError(t, err)
		require.Len(t, pairs, 2)
		for _, p := range pairs {
			assert.Equal(t, Pair[string]{A: "a", B: "a"}, p)
		}
	})
}

func TestZipStrings_DirectFirstDoesNotChangeMultiMatchResults(t *testing.T) {
	ctx := context.Background()
	listA := []string{"ab", "abx"}
	listB := []string{"ab", "zz"}

	// The default edit-ratio score gives exact matches the extremal score,
	// so enabling the fast path may not change what any A item pairs with.
	without, err := ZipStrings(ctx, listA, listB, WithSingleMatch(false))
	require.NoError(t, err)

	with, err := ZipStrings(ctx, listA, listB, WithSingleMatch(false), WithDirectFirst(true))
	require.NoError(t, err)

	assert.Equal(t, without, with)
	require.Len(t, with, 2)
	assert.Equal(t, Pair[string]{A: "abx", B: "ab"}, with[1])
}

func TestZipStrings_InsufficientTargets(t *testing.T) {
	ctx := context.Background()

	_, err := ZipStrings(ctx, []string{"a", "b"}, []string{"a"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	var tooShort *ErrInsufficientTargets
	require.ErrorAs(t, err, &tooShort)
	assert.Equal(t, 2, tooShort.LenA)
	assert.Equal(t, 1, tooShort.LenB)
}

func TestZipStrings_EmptyLists(t *testing.T) {
	ctx := context.Background()

	pairs, err := ZipStrings(ctx, nil, []string{"a"})
	require.NoError(t, err)
	assert.Empty(t, pairs)

	// Nothing to pair against, in any mode.
	_, err = ZipStrings(ctx, []string{"a"}, nil, WithSingleMatch(false))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestZipStrings_KeyProjection(t *testing.T) {
	ctx := context.Background()
	listA := []string{"ALPHA", "BETA"}
	listB := []string{"beta", "alpha"}

	pairs, err := ZipStrings(ctx, listA, listB,
		WithKey(strings.ToLower),
		WithDirectFirst(true),
	)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	// Output pairs hold the original items, not the projected keys.
	assert.Equal(t, Pair[string]{A: "ALPHA", B: "alpha"}, pairs[0])
	assert.Equal(t, Pair[string]{A: "BETA", B: "beta"}, pairs[1])
}

func TestZipStrings_SharedMemo(t *testing.T) {
	ctx := context.Background()
	m := memo.New()

	_, err := ZipStrings(ctx, []string{"alpha"}, []string{"alpho"}, WithMemo(m))
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())
}

func TestZip_TieBreakRowMajor(t *testing.T) {
	ctx := context.Background()
	listA := []string{"a0", "a1", "a2"}
	listB := []string{"b0", "b1", "b2"}

	// A constant score makes every pair tie; the stable sort must fall back
	// to row-major encounter order, pairing each row with the first free
	// column.
	pairs, err := Zip(ctx, listA, listB, Config[string, string]{
		Score:         func(a, b string) (float64, error) { return 0.5, nil },
		HighIsSimilar: true,
		SingleMatch:   true,
		Key:           Identity[string],
	})
	require.NoError(t, err)
	require.Len(t, pairs, 3)
	for i, p := range pairs {
		assert.Equal(t, listA[i], p.A)
		assert.Equal(t, listB[i], p.B)
	}
}

func TestZip_DistanceStyleScoring(t *testing.T) {
	ctx := context.Background()
	listA := []string{"kitten"}
	listB := []string{"sitting", "kitte"}

	pairs, err := Zip(ctx, listA, listB, Config[string, string]{
		Score: func(a, b string) (float64, error) {
			return float64(seqdist.EditDistance(a, b)), nil
		},
		HighIsSimilar: false,
		SingleMatch:   true,
		Key:           Identity[string],
	})
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "kitte", pairs[0].B)
}

func TestZip_StructItems(t *testing.T) {
	type dept struct {
		ID   int
		Name string
	}

	ctx := context.Background()
	listA := []dept{{ID: 1, Name: "Computer Science"}, {ID: 2, Name: "Mathematics"}}
	listB := []dept{{ID: 7, Name: "mathematics"}, {ID: 9, Name: "computer science"}}

	pairs, err := Zip(ctx, listA, listB, Config[dept, string]{
		Score: func(a, b string) (float64, error) {
			return seqdist.EditRatioString(a, b), nil
		},
		HighIsSimilar: true,
		SingleMatch:   true,
		Key:           func(d dept) string { return strings.ToLower(d.Name) },
		DirectFirst:   true,
	})
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, 9, pairs[0].B.ID)
	assert.Equal(t, 7, pairs[1].B.ID)
}

func TestZip_ConfigValidation(t *testing.T) {
	ctx := context.Background()

	_, err := Zip(ctx, []string{"a"}, []string{"a"}, Config[string, string]{
		Key: Identity[string],
	})
	assert.ErrorIs(t, err, ErrMissingScoreFunc)

	_, err = Zip(ctx, []string{"a"}, []string{"a"}, Config[string, string]{
		Score: func(a, b string) (float64, error) { return 0, nil },
	})
	assert.ErrorIs(t, err, ErrMissingKeyFunc)
}

func TestZip_ScoreErrorPropagates(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := Zip(ctx, []string{"a", "b"}, []string{"c", "d"}, Config[string, string]{
		Score: func(a, b string) (float64, error) {
			if a == "b" && b == "d" {
				return 0, boom
			}
			return 1, nil
		},
		HighIsSimilar: true,
		SingleMatch:   true,
		Key:           Identity[string],
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	var scoreErr *ScoreError
	require.ErrorAs(t, err, &scoreErr)
	assert.Equal(t, 1, scoreErr.AIndex)
	assert.Equal(t, 1, scoreErr.BIndex)
}

func TestZip_LoggerDoesNotChangeResults(t *testing.T) {
	ctx := context.Background()

	pairs, err := ZipStrings(ctx, []string{"alpha"}, []string{"alpha"}, WithLogger(NoopLogger()))
	require.NoError(t, err)
	require.Len(t, pairs, 1)
}

const alphabet = "abcd"

func randomList(rng *rand.Rand, n int) []string {
	out := make([]string, n)
	for i := range out {
		s := make([]byte, rng.Intn(4))
		for j := range s {
			s[j] = alphabet[rng.Intn(len(alphabet))]
		}
		out[i] = string(s)
	}
	return out
}
