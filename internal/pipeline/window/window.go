// Package window implements the lazy sequence pipelines: fixed and sliding
// windowing plus left-to-right fold and scan. All operations consume an
// iter.Seq without mutating its source and emit fresh slices, so the source
// list can be shared freely across pipelines.
package window

import "iter"

// All adapts a slice to an iter.Seq so slice-backed sources can feed the
// sequence pipelines. The resulting sequence is restartable.
func All[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// Fixed partitions the sequence into consecutive non-overlapping windows of
// the given size. The final window may be shorter when the sequence length is
// not a multiple of size. An empty sequence, or a size below one, yields no
// windows. Emitted slices are copies and never alias each other.
func Fixed[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size < 1 {
			return
		}

		batch := make([]T, 0, size)
		for item := range seq {
			batch = append(batch, item)
			if len(batch) == size {
				if !yield(batch) {
					return
				}
				batch = make([]T, 0, size)
			}
		}
		if len(batch) > 0 {
			yield(batch)
		}
	}
}

// Sliding emits every contiguous run of exactly size elements, advancing the
// window start by one element each step. A sequence shorter than size yields
// no windows rather than a short partial one. Emitted slices are copies.
func Sliding[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size < 1 {
			return
		}

		window := make([]T, 0, size)
		for item := range seq {
			if len(window) == size {
				copy(window, window[1:])
				window[size-1] = item
			} else {
				window = append(window, item)
			}
			if len(window) == size {
				out := make([]T, size)
				copy(out, window)
				if !yield(out) {
					return
				}
			}
		}
	}
}
