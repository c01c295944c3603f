package window

import "iter"

// Fold reduces the sequence to a single accumulated value, applying the
// combiner in strict left-to-right input order. The combiner need not be
// commutative; the observable result depends on input order. An empty
// sequence returns the seed untouched.
func Fold[T, A any](seq iter.Seq[T], seed A, combine func(A, T) A) A {
	acc := seed
	for item := range seq {
		acc = combine(acc, item)
	}
	return acc
}

// Scan emits the intermediate accumulation after each element is folded in,
// producing one value per input element in input order. The seed itself is
// not emitted, so an empty sequence yields an empty sequence.
func Scan[T, A any](seq iter.Seq[T], seed A, combine func(A, T) A) iter.Seq[A] {
	return func(yield func(A) bool) {
		acc := seed
		for item := range seq {
			acc = combine(acc, item)
			if !yield(acc) {
				return
			}
		}
	}
}
