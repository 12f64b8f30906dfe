// Package arraylist provides a generic growable array list.
//
// An [ArrayList] owns a backing buffer whose length is the list's capacity.
// Only the first [ArrayList.Size] slots are live; the rest are never exposed.
//
//   - [New]: empty list with no allocation
//   - [WithCapacity]: empty list with a preallocated buffer
//   - [List]: the consumer-facing contract
//
// # Growth
//
// An empty buffer grows to 10 slots. A full buffer of capacity c grows to
// ceil(1.5*c)+1 slots. [ArrayList.Clear] drops the buffer entirely.
//
// # Sorting
//
// [ArrayList.Sort] delegates to [sortutil.Quicksort] over the live elements.
// The sort is not stable.
//
// # Thread Safety
//
// ArrayList is NOT safe for concurrent use. Callers sharing a list between
// goroutines must serialize access themselves.
package arraylist
