package arraylist

// nextCapacity returns the buffer size that follows capacity.
func nextCapacity(capacity int) int {
	if capacity == 0 {
		return defaultCapacity
	}
	// ceil(1.5 * capacity) + 1
	return capacity + (capacity+1)/2 + 1
}

func (l *ArrayList[E]) grow() {
	next := make([]E, nextCapacity(len(l.elements)))
	copy(next, l.elements[:l.size])
	l.elements = next
}

// shiftRight opens a slot at index. A full buffer is replaced, and the shift
// happens during the copy into the new one.
func (l *ArrayList[E]) shiftRight(index int) {
	if l.size == len(l.elements) {
		next := make([]E, nextCapacity(len(l.elements)))
		copy(next, l.elements[:index])
		copy(next[index+1:], l.elements[index:l.size])
		l.elements = next
		return
	}
	copy(l.elements[index+1:l.size+1], l.elements[index:l.size])
}

// removeAt closes the slot at index and zeroes the vacated tail slot.
func (l *ArrayList[E]) removeAt(index int) {
	copy(l.elements[index:l.size-1], l.elements[index+1:l.size])
	l.size--
	var zero E
	l.elements[l.size] = zero
}
