package affirmation

import "math/rand/v2"

// Fallback is returned when the pool is empty.
const Fallback = "One steady day at a time."

// pool is the fixed set of supportive strings rotated through daily
// reminder bodies.
var pool = []string{
	"You are stronger than the urge.",
	"Every day you show up counts.",
	"Progress, not perfection.",
	"Your future self is grateful.",
	"This moment is yours to keep.",
	"Small steps build lasting change.",
	"You chose this path for a reason.",
	"Be gentle with yourself today.",
	"The streak is proof you can.",
	"Keep going, you are not alone.",
}

// Session holds one random permutation of the affirmation pool, fixed for
// the lifetime of the process. Indexing by day is deterministic within a
// session but varies across launches, which keeps the daily rotation fresh
// without being a correctness requirement.
type Session struct {
	order []string
}

// NewSession shuffles the pool into a fresh session order. Each permutation
// is equally likely.
func NewSession() *Session {
	order := make([]string, len(pool))
	copy(order, pool)
	rand.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return &Session{order: order}
}

// newSessionFrom builds a session over an explicit pool, used by tests.
func newSessionFrom(strings []string) *Session {
	order := make([]string, len(strings))
	copy(order, strings)
	return &Session{order: order}
}

// ForDay returns the session's affirmation for the given day index, cycling
// through the shuffled order. Negative indices and an empty pool fall back
// to the fixed default; it never errors or indexes out of bounds.
func (s *Session) ForDay(day int) string {
	if s == nil || len(s.order) == 0 || day < 0 {
		return Fallback
	}
	return s.order[day%len(s.order)]
}

// Len returns the number of affirmations in the session order.
func (s *Session) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}
