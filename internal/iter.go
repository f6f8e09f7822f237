package internal

import (
	"iter"
)

// IterSeq2Filter yields only the pairs of a dual-return iterator that match the predicate.
func IterSeq2Filter[T1 any, T2 any](seq iter.Seq2[T1, T2], keep func(T1, T2) bool) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for val1, val2 := range seq {
			if !keep(val1, val2) {
				continue
			}
			if !yield(val1, val2) {
				return // Stop if the consumer stops
			}
		}
	}
}

// IterSeq2Count counts the pairs of a dual-return iterator.
func IterSeq2Count[T1 any, T2 any](seq iter.Seq2[T1, T2]) (count int) {
	for range seq {
		count++
	}

	return
}
