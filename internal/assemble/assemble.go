// Package assemble selects and randomizes a quiz subset from a loaded bank,
// honoring category and count constraints. With a seed the shuffle is
// deterministic; without one it draws from system entropy.
package assemble

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/quizcert/quizcert/internal/bank"
)

// Count bounds. Requested counts are clamped into this range before use.
const (
	MinCount = 5
	MaxCount = 50
)

// Quiz is an assembled, ordered subset of bank questions. Question ids are
// synthetic and scoped to this quiz, so the same bank question may appear
// in several concurrently open quizzes without id collision.
type Quiz struct {
	ID        string          `json:"id"`
	Questions []bank.Question `json:"questions"`

	// Echo fields for downstream display and grading denominators.
	AllCategories      []string          `json:"allCategories"`
	SelectedCategories []string          `json:"selectedCategories"`
	CategoryNames      map[string]string `json:"categoryNames"`
}

// Options controls assembly.
type Options struct {
	// CategoryIDs filters the pool. Empty means all categories.
	CategoryIDs []string

	// Count is the requested number of questions, clamped to
	// [MinCount, MaxCount]. The quiz may be shorter if the pool is smaller.
	Count int

	// Seed makes the shuffle deterministic when non-empty: identical
	// (pool, seed) pairs always produce identical question order.
	Seed string

	// Source overrides the random source. Test hook; takes precedence
	// over Seed.
	Source rand.Source
}

// Assemble builds a quiz from the bank. Returns *EmptyPoolError when the
// filter matches nothing; it never returns an empty quiz.
func Assemble(b *bank.Bank, opts Options) (*Quiz, error) {
	selected := opts.CategoryIDs
	if len(selected) == 0 {
		selected = b.CategoryIDs()
	}
	want := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		want[id] = struct{}{}
	}

	var pool []bank.Question
	for _, q := range b.Questions {
		if _, ok := want[q.CategoryID]; ok {
			pool = append(pool, q)
		}
	}
	if len(pool) == 0 {
		return nil, &EmptyPoolError{CategoryIDs: opts.CategoryIDs}
	}

	shuffle(pool, newRand(opts))

	count := clampCount(opts.Count)
	if count > len(pool) {
		count = len(pool)
	}

	questions := make([]bank.Question, count)
	for i := 0; i < count; i++ {
		q := pool[i]
		q.ID = fmt.Sprintf("q%d", i)
		questions[i] = q
	}

	return &Quiz{
		ID:                 uuid.NewString(),
		Questions:          questions,
		AllCategories:      b.CategoryIDs(),
		SelectedCategories: selected,
		CategoryNames:      b.CategoryNames(),
	}, nil
}

// shuffle performs a Fisher-Yates pass over the pool.
func shuffle(pool []bank.Question, r *rand.Rand) {
	for i := len(pool) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
}

// newRand builds the random source: injected source first, then a seeded
// PCG, then system entropy.
func newRand(opts Options) *rand.Rand {
	if opts.Source != nil {
		return rand.New(opts.Source)
	}
	if opts.Seed != "" {
		h := fnv.New64a()
		h.Write([]byte(opts.Seed))
		s := h.Sum64()
		return rand.New(rand.NewPCG(s, s<<32|s>>32))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func clampCount(n int) int {
	if n < MinCount {
		return MinCount
	}
	if n > MaxCount {
		return MaxCount
	}
	return n
}
