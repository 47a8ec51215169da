package tuple

import (
	"errors"
	"fmt"
	"slices"
)

// ErrArity is returned when a bounded sequence is built with the wrong number
// of elements.
var ErrArity = errors.New("wrong number of elements")

// MaxLen is the largest length a Bounded or Triple can be built with.
const MaxLen = 3

// ── Seq[T] ────────────────────────────────────────────────────────────────────
// Resizable ordered sequence backed by a slice. The zero value is ready to use.

type Seq[T any] struct {
	items []T
}

func Of[T any](vals ...T) *Seq[T] {
	return &Seq[T]{items: slices.Clone(vals)}
}

func (s *Seq[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes and returns the last element. On an empty sequence it does
// nothing and returns None.
func (s *Seq[T]) Pop() Optional[T] {
	if len(s.items) == 0 {
		return None[T]()
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return Some(last)
}

// At returns the element at i, or None when i is out of range.
func (s *Seq[T]) At(i int) Optional[T] {
	if i < 0 || i >= len(s.items) {
		return None[T]()
	}
	return Some(s.items[i])
}

// First destructures position 0.
func (s *Seq[T]) First() Optional[T] { return s.At(0) }

func (s *Seq[T]) Len() int { return len(s.items) }

// Values returns a copy of the elements.
func (s *Seq[T]) Values() []T { return slices.Clone(s.items) }

// ── Bounded[T] ────────────────────────────────────────────────────────────────
// A sequence of one required and up to two optional elements. The bound is
// only checked by NewBounded: Bounded embeds Seq, so Pop (and Push) stay
// available and can take it anywhere afterwards. Reading At(0) after popping
// the only element returns None even though construction promised a value.

type Bounded[T any] struct {
	Seq[T]
}

func NewBounded[T any](first T, rest ...T) (*Bounded[T], error) {
	if n := 1 + len(rest); n > MaxLen {
		return nil, fmt.Errorf("bounded sequence of %d: %w", n, ErrArity)
	}
	b := &Bounded[T]{}
	b.Push(first)
	for _, v := range rest {
		b.Push(v)
	}
	return b, nil
}

// ── Triple[T] ─────────────────────────────────────────────────────────────────
// Fixed-shape alternative: one required field and two optional ones. There is
// no remove operation, so position 0 always holds a value.

type Triple[T any] struct {
	First  T
	Second Optional[T]
	Third  Optional[T]
}

func NewTriple[T any](first T, rest ...T) (Triple[T], error) {
	t := Triple[T]{First: first}
	switch len(rest) {
	case 0:
	case 1:
		t.Second = Some(rest[0])
	case 2:
		t.Second, t.Third = Some(rest[0]), Some(rest[1])
	default:
		return Triple[T]{}, fmt.Errorf("triple of %d: %w", 1+len(rest), ErrArity)
	}
	return t, nil
}

// At returns the element at i, or None when i is out of range or the
// optional slot is empty.
func (t Triple[T]) At(i int) Optional[T] {
	switch i {
	case 0:
		return Some(t.First)
	case 1:
		return t.Second
	case 2:
		return t.Third
	default:
		return None[T]()
	}
}

// Len counts the first field plus the filled optional slots. A Third without a
// Second is not reachable through NewTriple.
func (t Triple[T]) Len() int {
	n := 1
	if t.Second.IsPresent() {
		n++
	}
	if t.Third.IsPresent() {
		n++
	}
	return n
}
