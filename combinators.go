package slice1

// SortVia returns a permutation of s ordered by a caller-supplied
// comparator (§4.2).  ordering(x, y) == true means "x must precede y" —
// a strict less-than relation.
//
// The algorithm is the fixed single-swap comparison sort: for each i from
// 1 to Len-1, scan j from 0 to i-1 and swap a[i] into position j whenever
// ordering(a[i], a[j]) holds, the displaced element moving to index i.
// Not stable — equal elements do not always keep their relative order,
// and conforming implementations must reproduce this exact permutation
// rather than substitute a stable or faster sort (§9).  O(n²) comparator
// invocations; the only allocation is the returned copy.
//
// An inconsistent comparator still yields some permutation of s, since
// the only mutation is swapping within the copy.
func SortVia[T any](s Slice[T], ordering func(T, T) bool) Slice[T] {
	out := make(Slice[T], len(s))
	copy(out, s)
	for i := 1; i < len(out); i++ {
		for j := 0; j < i; j++ {
			if ordering(out[i], out[j]) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}

// Map returns a slice of the same length where element i equals f(s[i])
// (§4.3).  f is invoked exactly Len(s) times, in ascending index order —
// the order is observable when f has side effects.
func Map[T, U any](s Slice[T], f func(T) U) Slice[U] {
	out := make(Slice[U], 0, len(s))
	for _, v := range s {
		out = append(out, f(v))
	}
	return out
}

// Fold threads acc left-to-right through s, updating
// acc = f(acc, s[i]) for each i in order, and returns the final
// accumulator (§4.4).  An empty slice returns acc unchanged.
func Fold[T, U any](s Slice[T], acc U, f func(U, T) U) U {
	for _, v := range s {
		acc = f(acc, v)
	}
	return acc
}

// Reduce folds s with the accumulator seeded from s[0] rather than a
// caller-supplied value (§4.5).  The input must be non-empty: an empty
// slice fails with ERR_EMPTY and the zero value, never a silently
// defaulted result.
func Reduce[T any](s Slice[T], f func(T, T) T) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, newErr(ErrEmpty, "reduce on empty slice")
	}
	return Fold(s[1:], s[0], f), nil
}

// All reports whether predicate holds for every element (§4.6).  The
// result is the AND over all predicate results: there is no early exit,
// so predicate runs exactly Len(s) times even after a false.  An empty
// slice is vacuously true.
func All[T any](s Slice[T], predicate func(T) bool) bool {
	ok := true
	for _, v := range s {
		if !predicate(v) {
			ok = false
		}
	}
	return ok
}

// Any reports whether predicate holds for at least one element (§4.7).
// OR-accumulated with no early exit, symmetric to All.  An empty slice
// is false.
func Any[T any](s Slice[T], predicate func(T) bool) bool {
	ok := false
	for _, v := range s {
		if predicate(v) {
			ok = true
		}
	}
	return ok
}

// Filter returns the elements of s satisfying predicate, preserving
// their order.  predicate is invoked exactly once per element, in
// ascending index order.
func Filter[T any](s Slice[T], predicate func(T) bool) Slice[T] {
	out := make(Slice[T], 0, len(s))
	for _, v := range s {
		if predicate(v) {
			out = append(out, v)
		}
	}
	return out
}
