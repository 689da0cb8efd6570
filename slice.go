// Package slice1 implements the SLICE v1 specification — value-semantic
// combinators over a generic sequence type.
//
// SLICE v1 defines one container type, Slice<T>: an ordered, finite
// sequence that is immutable through this API.  Three builtin primitives
// (push_back, len, sort) have fixed observable contracts but opaque
// internals (§4.1); the higher-order combinators (sort_via, map, fold,
// reduce, all, any — §4.2–§4.7) are defined purely in terms of element
// access, len, and push_back.  Every operation copies and returns a new
// slice; an input is never observably mutated (§3).
//
// Precondition violations (reduce on an empty slice, out-of-range
// structural indices) fail with a typed *Error carrying an ERR_* code —
// never a silent zero value (§7).
//
// The library proper depends only on the standard library plus the
// ordered constraint used by Sort.
package slice1

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Slice is an ordered, finite sequence of T with value semantics (§3).
// The zero value is an empty slice; nil and empty are indistinguishable
// through this API (both have Len 0).
type Slice[T any] []T

// Every operation is a package-level function taking the slice first.
// Map and Fold introduce a second type parameter, which Go methods
// cannot, and a uniform free-function surface keeps the §6 signature
// contract in one shape.

// ── Builtin primitives (§4.1) ───────────────────────────────

// PushBack returns a new slice equal to s with elem appended.
// Len of the result is Len(s)+1; existing elements keep their relative
// order and indices.
func PushBack[T any](s Slice[T], elem T) Slice[T] {
	out := make(Slice[T], len(s), len(s)+1)
	copy(out, s)
	return append(out, elem)
}

// Len returns the element count.  Never mutates or consumes s.
func Len[T any](s Slice[T]) int {
	return len(s)
}

// Sort returns a permutation of s sorted ascending by the intrinsic
// ordering of T.  Implemented with the platform comparison sort, per the
// builtin contract; stability is unspecified (§9).
func Sort[T constraints.Ordered](s Slice[T]) Slice[T] {
	out := make(Slice[T], len(s))
	copy(out, s)
	slices.Sort(out)
	return out
}

// ── Structural primitives ───────────────────────────────────

// PushFront returns a new slice equal to s with elem prepended.
// Existing elements shift up by one index.
func PushFront[T any](s Slice[T], elem T) Slice[T] {
	out := make(Slice[T], 0, len(s)+1)
	out = append(out, elem)
	return append(out, s...)
}

// PopBack returns s without its last element, plus the removed element.
// Fails with ERR_EMPTY on an empty slice.
func PopBack[T any](s Slice[T]) (Slice[T], T, error) {
	if len(s) == 0 {
		var zero T
		return nil, zero, newErr(ErrEmpty, "pop_back on empty slice")
	}
	out := make(Slice[T], len(s)-1)
	copy(out, s[:len(s)-1])
	return out, s[len(s)-1], nil
}

// PopFront returns s without its first element, plus the removed element.
// Fails with ERR_EMPTY on an empty slice.
func PopFront[T any](s Slice[T]) (Slice[T], T, error) {
	if len(s) == 0 {
		var zero T
		return nil, zero, newErr(ErrEmpty, "pop_front on empty slice")
	}
	out := make(Slice[T], len(s)-1)
	copy(out, s[1:])
	return out, s[0], nil
}

// Insert returns a new slice with elem inserted before index.  Valid
// indices are [0, Len(s)]; index == Len(s) is equivalent to PushBack.
// Fails with ERR_OOB otherwise.
func Insert[T any](s Slice[T], index int, elem T) (Slice[T], error) {
	if index < 0 || index > len(s) {
		return nil, newErr(ErrOOB, "insert index out of range")
	}
	out := make(Slice[T], 0, len(s)+1)
	out = append(out, s[:index]...)
	out = append(out, elem)
	out = append(out, s[index:]...)
	return out, nil
}

// Remove returns a new slice without the element at index, plus the
// removed element.  Valid indices are [0, Len(s)); fails with ERR_OOB
// otherwise (ERR_OOB covers the empty slice too — no index is valid).
func Remove[T any](s Slice[T], index int) (Slice[T], T, error) {
	if index < 0 || index >= len(s) {
		var zero T
		return nil, zero, newErr(ErrOOB, "remove index out of range")
	}
	out := make(Slice[T], 0, len(s)-1)
	out = append(out, s[:index]...)
	out = append(out, s[index+1:]...)
	return out, s[index], nil
}

// Append returns the concatenation of s and other, in order.
func Append[T any](s, other Slice[T]) Slice[T] {
	out := make(Slice[T], 0, len(s)+len(other))
	out = append(out, s...)
	return append(out, other...)
}
