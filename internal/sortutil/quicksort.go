package sortutil

import (
	"fmt"
	"runtime"
	"strings"
)

// Quicksort sorts seq[0..high] in place using a randomized pivot drawn from
// DefaultSource. A nil compare sorts by the elements' intrinsic order.
func Quicksort[E any](seq []E, compare Comparator[E], high int) error {
	return QuicksortSource(seq, compare, high, DefaultSource)
}

// QuicksortSource is Quicksort with an explicit pivot source.
func QuicksortSource[E any](seq []E, compare Comparator[E], high int, src Source) (err error) {
	if seq == nil {
		return ErrNilSequence
	}
	if err := CheckIndex(high, len(seq)); err != nil {
		return err
	}
	if src == nil {
		src = DefaultSource
	}
	if compare == nil {
		compare = intrinsic[E]
	}

	defer recoverFailure(&err)

	s := sorter[E]{seq: seq, compare: compare, src: src}
	s.sort(0, high)
	return nil
}

// failure carries a comparison error up through the recursion.
type failure struct {
	err error
}

func fail(err error) {
	panic(failure{err: err})
}

func recoverFailure(err *error) {
	r := recover()
	if r == nil {
		return
	}
	switch v := r.(type) {
	case failure:
		*err = v.err
	case runtime.Error:
		if !strings.Contains(v.Error(), "nil pointer dereference") {
			panic(r)
		}
		*err = fmt.Errorf("%w: %v", ErrNilElement, v)
	default:
		panic(r)
	}
}

type sorter[E any] struct {
	seq     []E
	compare Comparator[E]
	src     Source
}

func (s *sorter[E]) sort(low, high int) {
	for low < high {
		p := s.partition(low, high)

		// Recurse into the smaller side, loop on the larger.
		if p-low < high-p {
			s.sort(low, p-1)
			low = p + 1
		} else {
			s.sort(p+1, high)
			high = p - 1
		}
	}
}

// partition moves a random pivot to high, splits [low, high] around it and
// returns the pivot's final index.
func (s *sorter[E]) partition(low, high int) int {
	seq := s.seq

	pivotIndex := low + s.src.IntN(high-low+1)
	pivot := seq[pivotIndex]
	seq[pivotIndex], seq[high] = seq[high], seq[pivotIndex]

	left, right := low, high
	for left < right {
		for left < right && s.compare(seq[left], pivot) <= 0 {
			left++
		}
		for left < right && s.compare(seq[right], pivot) >= 0 {
			right--
		}
		seq[left], seq[right] = seq[right], seq[left]
	}
	seq[left], seq[high] = seq[high], seq[left]
	return left
}
