package sortutil

import "cmp"

// Comparator orders two elements: negative when a < b, zero when equal,
// positive when a > b.
type Comparator[E any] func(a, b E) int

// Comparable is implemented by element types that carry their own order.
type Comparable[E any] interface {
	CompareTo(other E) int
}

// Ordered returns the comparator for the builtin ordered types.
func Ordered[E cmp.Ordered]() Comparator[E] {
	return cmp.Compare[E]
}

// Natural returns a comparator that defers to the elements' CompareTo.
func Natural[E Comparable[E]]() Comparator[E] {
	return func(a, b E) int {
		return a.CompareTo(b)
	}
}

// Reverse inverts compare. A nil compare reverses the intrinsic order.
func Reverse[E any](compare Comparator[E]) Comparator[E] {
	if compare == nil {
		compare = intrinsic[E]
	}
	return func(a, b E) int {
		return compare(b, a)
	}
}

// intrinsic compares a against b using a's own order. It is resolved per
// comparison, so a type without an order fails on the first comparison.
func intrinsic[E any](a, b E) int {
	left, right := any(a), any(b)
	if left == nil {
		fail(ErrNilElement)
	}

	switch x := left.(type) {
	case int:
		return compareOrdered(x, right)
	case int8:
		return compareOrdered(x, right)
	case int16:
		return compareOrdered(x, right)
	case int32:
		return compareOrdered(x, right)
	case int64:
		return compareOrdered(x, right)
	case uint:
		return compareOrdered(x, right)
	case uint8:
		return compareOrdered(x, right)
	case uint16:
		return compareOrdered(x, right)
	case uint32:
		return compareOrdered(x, right)
	case uint64:
		return compareOrdered(x, right)
	case uintptr:
		return compareOrdered(x, right)
	case float32:
		return compareOrdered(x, right)
	case float64:
		return compareOrdered(x, right)
	case string:
		return compareOrdered(x, right)
	case Comparable[E]:
		return x.CompareTo(b)
	}

	fail(ErrTypeMismatch)
	return 0
}

func compareOrdered[T cmp.Ordered](x T, right any) int {
	y, ok := right.(T)
	if !ok {
		if right == nil {
			fail(ErrNilElement)
		}
		fail(ErrTypeMismatch)
	}
	return cmp.Compare(x, y)
}

// IsSorted reports whether seq is in non-decreasing order under compare.
// A nil compare uses the intrinsic order; comparison failures report false.
func IsSorted[E any](seq []E, compare Comparator[E]) (sorted bool) {
	if compare == nil {
		compare = intrinsic[E]
	}
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(failure); !ok {
				panic(r)
			}
			sorted = false
		}
	}()
	for i := 1; i < len(seq); i++ {
		if compare(seq[i-1], seq[i]) > 0 {
			return false
		}
	}
	return true
}
