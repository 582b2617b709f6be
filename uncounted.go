package intrusive

// UncountedList is an intrusive doubly linked list without a length counter.
// It is meant for elements that relocate between lists on a hot path where
// the upkeep of a counter is unwanted. It is otherwise identical to List.
//
// The zero value is a ready to use empty list.
type UncountedList[T any, E ListElement[T, E]] struct {
	chain[T, E]
}

// PushFront inserts e at the front of the list.
//
// e may be an element of another list. It is removed from it first.
func (l *UncountedList[T, E]) PushFront(e E) {
	l.insertBefore(e, l.head)
}

// PushBack inserts e at the back of the list.
//
// e may be an element of another list. It is removed from it first.
func (l *UncountedList[T, E]) PushBack(e E) {
	l.insertAfter(e, l.tail)
}

// InsertBefore inserts e before mark.
//
// mark must be an element of the list. It is ignored when the list is empty.
func (l *UncountedList[T, E]) InsertBefore(e, mark E) {
	l.insertBefore(e, mark)
}

// InsertAfter inserts e after mark.
//
// mark must be an element of the list. It is ignored when the list is empty.
func (l *UncountedList[T, E]) InsertAfter(e, mark E) {
	l.insertAfter(e, mark)
}

// Remove removes e from the list.
//
// e must be an element of the list.
func (l *UncountedList[T, E]) Remove(e E) {
	l.remove(e)
}

// RemoveFront removes and returns the first element of the list
// or nil if the list is empty.
func (l *UncountedList[T, E]) RemoveFront() E {
	if l.head == nil {
		return nil
	}

	e := l.head
	l.Remove(e)

	return e
}

// RemoveBack removes and returns the last element of the list
// or nil if the list is empty.
func (l *UncountedList[T, E]) RemoveBack() E {
	if l.tail == nil {
		return nil
	}

	e := l.tail
	l.Remove(e)

	return e
}

// Clear removes all elements from the list in constant time.
//
// The links of the removed elements are left as they were and stay stale
// until each element is inserted into a list again.
func (l *UncountedList[T, E]) Clear() {
	l.clear()
}

// Take moves the contents of other into l, replacing the previous contents
// of l and leaving other empty. No element links are rewritten.
func (l *UncountedList[T, E]) Take(other *UncountedList[T, E]) {
	if l == other {
		return
	}

	l.head, l.tail = other.head, other.tail
	other.Clear()
}

// PushFrontFrom removes e from from and inserts it at the front of l.
//
// e must be an element of from. from may be l itself.
func (l *UncountedList[T, E]) PushFrontFrom(e E, from ListOf[E]) {
	from.Remove(e)
	l.PushFront(e)
}

// PushBackFrom removes e from from and inserts it at the back of l.
//
// e must be an element of from. from may be l itself.
func (l *UncountedList[T, E]) PushBackFrom(e E, from ListOf[E]) {
	from.Remove(e)
	l.PushBack(e)
}

// InsertBeforeFrom removes e from from and inserts it before mark in l.
//
// e must be an element of from and mark an element of l. from may be l itself.
func (l *UncountedList[T, E]) InsertBeforeFrom(e, mark E, from ListOf[E]) {
	from.Remove(e)
	l.InsertBefore(e, mark)
}

// InsertAfterFrom removes e from from and inserts it after mark in l.
//
// e must be an element of from and mark an element of l. from may be l itself.
func (l *UncountedList[T, E]) InsertAfterFrom(e, mark E, from ListOf[E]) {
	from.Remove(e)
	l.InsertAfter(e, mark)
}

// PushBackList removes the elements of from in order and appends them to l,
// leaving from empty. Appending a list to itself is a no-op.
func (l *UncountedList[T, E]) PushBackList(from ListOf[E]) {
	if src, ok := from.(*UncountedList[T, E]); ok && src == l {
		return
	}

	for e := from.Front(); e != nil; e = from.Front() {
		from.Remove(e)
		l.PushBack(e)
	}
}
