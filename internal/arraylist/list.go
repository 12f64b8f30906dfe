package arraylist

import (
	"cmp"
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/dynlist/internal/sortutil"
)

const defaultCapacity = 10

var (
	// ErrIndexOutOfRange is shared with sortutil so one errors.Is check covers
	// both the list and its sort.
	ErrIndexOutOfRange = sortutil.ErrIndexOutOfRange

	// ErrNegativeCapacity indicates a negative initial capacity.
	ErrNegativeCapacity = errors.New("arraylist: negative capacity")
)

// IndexError reports an index outside the live elements.
type IndexError = sortutil.IndexError

// List is the indexed container contract implemented by ArrayList.
type List[E comparable] interface {
	Add(element E)
	Insert(index int, element E) error
	Get(index int) (E, error)
	Set(index int, element E) (E, error)
	RemoveAt(index int) (E, error)
	Remove(element E) bool
	Clear()
	Size() int
	Sort(compare sortutil.Comparator[E]) error
	String() string
}

// ArrayList is a resizable-array List.
type ArrayList[E comparable] struct {
	elements []E
	size     int
}

var _ List[int] = (*ArrayList[int])(nil)

// New returns an empty list with zero capacity.
func New[E comparable]() *ArrayList[E] {
	return &ArrayList[E]{}
}

// WithCapacity returns an empty list whose buffer holds capacity elements.
func WithCapacity[E comparable](capacity int) (*ArrayList[E], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity)
	}
	if capacity == 0 {
		return New[E](), nil
	}
	return &ArrayList[E]{elements: make([]E, capacity)}, nil
}

// FromValues returns a list holding values in order.
func FromValues[E comparable](values ...E) *ArrayList[E] {
	l := New[E]()
	for _, v := range values {
		l.Add(v)
	}
	return l
}

// Add appends element, growing the buffer when it is full.
func (l *ArrayList[E]) Add(element E) {
	if l.size == len(l.elements) {
		l.grow()
	}
	l.elements[l.size] = element
	l.size++
}

// Insert places element at index and shifts [index, size) one slot right.
// index must address a live element; inserting at Size() is rejected, use Add.
func (l *ArrayList[E]) Insert(index int, element E) error {
	if err := sortutil.CheckIndex(index, l.size); err != nil {
		return err
	}
	l.shiftRight(index)
	l.elements[index] = element
	l.size++
	return nil
}

// Get returns the element at index.
func (l *ArrayList[E]) Get(index int) (E, error) {
	if err := sortutil.CheckIndex(index, l.size); err != nil {
		var zero E
		return zero, err
	}
	return l.elements[index], nil
}

// Set replaces the element at index and returns the previous one.
func (l *ArrayList[E]) Set(index int, element E) (E, error) {
	if err := sortutil.CheckIndex(index, l.size); err != nil {
		var zero E
		return zero, err
	}
	previous := l.elements[index]
	l.elements[index] = element
	return previous, nil
}

// RemoveAt removes and returns the element at index.
func (l *ArrayList[E]) RemoveAt(index int) (E, error) {
	if err := sortutil.CheckIndex(index, l.size); err != nil {
		var zero E
		return zero, err
	}
	removed := l.elements[index]
	l.removeAt(index)
	return removed, nil
}

// Remove deletes the first element equal to element and reports whether one
// was found.
func (l *ArrayList[E]) Remove(element E) bool {
	for i := 0; i < l.size; i++ {
		if l.elements[i] == element {
			l.removeAt(i)
			return true
		}
	}
	return false
}

// Clear empties the list and releases its buffer.
func (l *ArrayList[E]) Clear() {
	l.elements = nil
	l.size = 0
}

// Size returns the number of live elements.
func (l *ArrayList[E]) Size() int {
	return l.size
}

// Cap returns the length of the backing buffer.
func (l *ArrayList[E]) Cap() int {
	return len(l.elements)
}

// Values returns a copy of the live elements.
func (l *ArrayList[E]) Values() []E {
	out := make([]E, l.size)
	copy(out, l.elements[:l.size])
	return out
}

// Sort orders the live elements with compare, or with their intrinsic order
// when compare is nil. Lists of zero or one element are left untouched.
func (l *ArrayList[E]) Sort(compare sortutil.Comparator[E]) error {
	if l.size <= 1 {
		return nil
	}
	return sortutil.Quicksort(l.elements[:l.size], compare, l.size-1)
}

// SortOrdered sorts a list of a builtin ordered type ascending.
func SortOrdered[E cmp.Ordered](l *ArrayList[E]) error {
	return l.Sort(sortutil.Ordered[E]())
}

// SortNatural sorts a list by the elements' CompareTo.
func SortNatural[E interface {
	comparable
	sortutil.Comparable[E]
}](l *ArrayList[E]) error {
	return l.Sort(sortutil.Natural[E]())
}

func (l *ArrayList[E]) String() string {
	if l.size == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < l.size; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, l.elements[i])
	}
	sb.WriteByte(']')
	return sb.String()
}
