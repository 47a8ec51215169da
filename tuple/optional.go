// Package tuple contrasts a length-bounded sequence built on a resizable slice
// with a fixed-shape struct.
//
// Go slices panic on out-of-range indexing. Every positional read here returns
// an Optional instead, so "no value at that position" is a result, not a crash.
package tuple

import "fmt"

// Absent is how an empty Optional prints.
const Absent = "undefined"

// Optional holds a value or nothing. The zero value is empty.
type Optional[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Optional[T] { return Optional[T]{value: v, ok: true} }
func None[T any]() Optional[T]    { return Optional[T]{} }

func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }
func (o Optional[T]) IsPresent() bool { return o.ok }

// OrElse returns the held value, or def when empty.
func (o Optional[T]) OrElse(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

func (o Optional[T]) String() string {
	if !o.ok {
		return Absent
	}
	return fmt.Sprint(o.value)
}
