// Package rng holds the random source used by animations and effects.
package rng

// Source yields uniform integers. *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform integer in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// Between returns a uniform integer in [lo, hi).
func Between(r Source, lo, hi int) int {
	return lo + r.Intn(hi-lo)
}

// Sequence is a Source that replays scripted draws. Each draw is reduced modulo n so a script stays valid for any
// range. Once the script is exhausted it starts over.
type Sequence struct {
	vals  []int
	next  int
	calls int
}

func NewSequence(vals ...int) *Sequence {
	return &Sequence{vals: vals}
}

func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to Intn")
	}
	s.calls++
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.next] % n
	s.next = (s.next + 1) % len(s.vals)
	if v < 0 {
		v += n
	}
	return v
}

// Calls returns how many draws were made.
func (s *Sequence) Calls() int { return s.calls }
