package numrange

import (
	"iter"
	"slices"
)

// Sequence is the lazy numeric sequence a notation string expands into.
// It holds the validated items and the options they were parsed with;
// values are only computed during iteration.
type Sequence[T Number] struct {
	tokens   []token[T]
	opts     Options[T]
	notation string
}

// All returns an iterator over the expanded values, in notation order.
//
// The sequence is restartable: every call walks the parsed items from the
// beginning, and stopping iteration early is safe since no state outlives
// the loop.
func (s *Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, t := range s.tokens {
			if !t.expand(yield) {
				return
			}
		}
	}
}

// expand yields the token's values and reports whether iteration should
// continue. The end bound is included only when reachable exactly by the
// step; a step that overshoots truncates at the last in-range value. The
// wrap checks keep integer expansion near the type's limits from looping.
func (t token[T]) expand(yield func(T) bool) bool {
	if t.single {
		return yield(t.start)
	}

	for v := t.start; ; {
		if !yield(v) {
			return false
		}
		if v == t.end {
			return true
		}

		next := v + t.step
		if t.step > 0 && (next < v || next > t.end) {
			return true
		}
		if t.step < 0 && (next > v || next < t.end) {
			return true
		}
		v = next
	}
}

// Values materializes the whole sequence into a slice.
func (s *Sequence[T]) Values() []T {
	return slices.Collect(s.All())
}

// Count returns the number of values the sequence expands to. It walks the
// sequence, so counting a very large range costs a full iteration.
func (s *Sequence[T]) Count() int {
	n := 0
	for range s.All() {
		n++
	}
	return n
}

// Notation returns the original string the sequence was parsed from.
func (s *Sequence[T]) Notation() string {
	return s.notation
}

// String renders the parsed items back to notation using the sequence's
// separators. Unit steps render implicitly, so "1:1:5" comes back as "1:5".
func (s *Sequence[T]) String() string {
	return renderTokens(s.tokens, s.opts)
}
