// Package sortutil provides an in-place randomized-pivot quicksort over slices.
//
// The sort works on any element type. Ordering comes from one of two places:
//
//   - an explicit [Comparator] supplied by the caller
//   - the elements' intrinsic order when the comparator is nil: builtin
//     ordered kinds compare with [cmp.Compare], other types must implement
//     [Comparable]
//
// # Example
//
//	data := []int{3, 1, 2}
//	if err := sortutil.Quicksort(data, nil, len(data)-1); err != nil {
//		return err
//	}
//
// # Stability
//
// Quicksort is not stable. Elements that compare equal may change their
// relative order.
package sortutil
