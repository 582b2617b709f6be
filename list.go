/*
Package intrusive implements generic intrusive doubly linked lists.

An intrusive list stores its links inside the elements themselves: a type
becomes a list element by embedding a Node. The list never allocates, never
copies a value and removes any element in constant time given only the
element, which makes it suitable for queues, LRU chains and schedulers where
a value relocates between lists on a hot path:

	type Task struct {
		intrusive.Node[*Task]
		ID int
	}

	var pending intrusive.List[Task, *Task]
	pending.PushBack(&Task{ID: 1})

An element must be in at most one list at a time. Inserting an element into
a list detaches it from its previous list first. The zero value of every
list type is a ready to use empty list. Lists are not safe for concurrent
use and must not be copied after first use.
*/
package intrusive

// ListOf is the common interface of every list type holding elements of
// type E. It is accepted by the operations that relocate elements between
// lists of the same element type but different length tracking.
type ListOf[E any] interface {
	// Front returns the first element of the list or nil.
	Front() E
	// Remove removes e from the list. e must be an element of the list.
	Remove(e E)
}

// chain is the linked element bookkeeping shared by List and UncountedList.
type chain[T any, E ListElement[T, E]] struct {
	head, tail E
}

// Empty returns whether the list has no elements.
func (c *chain[T, E]) Empty() bool {
	return c.head == nil
}

// Front returns the first element of the list or nil.
func (c *chain[T, E]) Front() E {
	return c.head
}

// Back returns the last element of the list or nil.
func (c *chain[T, E]) Back() E {
	return c.tail
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change the list.
func (c *chain[T, E]) Do(f func(e E) bool) {
	for e := c.head; e != nil; e = e.Next() {
		if !f(e) {
			return
		}
	}
}

// Begin returns a cursor at the front of the list.
func (c *chain[T, E]) Begin() Cursor[T, E] {
	return Cursor[T, E]{c.head}
}

// End returns the absent cursor that terminates a forward iteration.
func (c *chain[T, E]) End() Cursor[T, E] {
	return Cursor[T, E]{}
}

// RBegin returns a reverse cursor at the back of the list.
func (c *chain[T, E]) RBegin() ReverseCursor[T, E] {
	return ReverseCursor[T, E]{c.tail}
}

// REnd returns the absent cursor that terminates a reverse iteration.
func (c *chain[T, E]) REnd() ReverseCursor[T, E] {
	return ReverseCursor[T, E]{}
}

// insertBefore inserts e before mark. When the chain is empty,
// mark is ignored and e becomes the sole element.
func (c *chain[T, E]) insertBefore(e, mark E) {
	if c.head == nil {
		detach[T, E](e)
		c.head, c.tail = e, e
		return
	}

	attachBefore[T, E](e, mark)
	if mark == c.head {
		c.head = e
	}
}

// insertAfter inserts e after mark. When the chain is empty,
// mark is ignored and e becomes the sole element.
func (c *chain[T, E]) insertAfter(e, mark E) {
	if c.head == nil {
		detach[T, E](e)
		c.head, c.tail = e, e
		return
	}

	attachAfter[T, E](e, mark)
	if mark == c.tail {
		c.tail = e
	}
}

// remove removes e. The boundaries move before e detaches so that the
// chain stays valid when e is the head, the tail or both.
func (c *chain[T, E]) remove(e E) {
	if e == c.head {
		c.head = e.Next()
	}
	if e == c.tail {
		c.tail = e.Prev()
	}

	detach[T, E](e)
}

// clear resets the chain boundaries without touching element links.
func (c *chain[T, E]) clear() {
	c.head = nil
	c.tail = nil
}

// List is an intrusive doubly linked list that tracks its length.
//
// The zero value is a ready to use empty list.
type List[T any, E ListElement[T, E]] struct {
	chain[T, E]
	len int
}

// Len returns the number of elements in the list.
func (l *List[T, E]) Len() int {
	return l.len
}

// PushFront inserts e at the front of the list.
//
// e may be an element of another list. It is removed from it first.
func (l *List[T, E]) PushFront(e E) {
	l.insertBefore(e, l.head)
	l.len++
}

// PushBack inserts e at the back of the list.
//
// e may be an element of another list. It is removed from it first.
func (l *List[T, E]) PushBack(e E) {
	l.insertAfter(e, l.tail)
	l.len++
}

// InsertBefore inserts e before mark.
//
// mark must be an element of the list. It is ignored when the list is empty.
func (l *List[T, E]) InsertBefore(e, mark E) {
	l.insertBefore(e, mark)
	l.len++
}

// InsertAfter inserts e after mark.
//
// mark must be an element of the list. It is ignored when the list is empty.
func (l *List[T, E]) InsertAfter(e, mark E) {
	l.insertAfter(e, mark)
	l.len++
}

// Remove removes e from the list.
//
// e must be an element of the list.
func (l *List[T, E]) Remove(e E) {
	l.remove(e)
	l.len--
}

// RemoveFront removes and returns the first element of the list
// or nil if the list is empty.
func (l *List[T, E]) RemoveFront() E {
	if l.head == nil {
		return nil
	}

	e := l.head
	l.Remove(e)

	return e
}

// RemoveBack removes and returns the last element of the list
// or nil if the list is empty.
func (l *List[T, E]) RemoveBack() E {
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
// until each element is inserted into a list again. To reset the links of
// every element, repeatedly call RemoveFront instead.
func (l *List[T, E]) Clear() {
	l.clear()
	l.len = 0
}

// Take moves the contents of other into l, replacing the previous contents
// of l and leaving other empty. No element links are rewritten.
func (l *List[T, E]) Take(other *List[T, E]) {
	if l == other {
		return
	}

	l.head, l.tail, l.len = other.head, other.tail, other.len
	other.Clear()
}

// PushFrontFrom removes e from from and inserts it at the front of l.
//
// e must be an element of from. from may be l itself.
func (l *List[T, E]) PushFrontFrom(e E, from ListOf[E]) {
	from.Remove(e)
	l.PushFront(e)
}

// PushBackFrom removes e from from and inserts it at the back of l.
//
// e must be an element of from. from may be l itself.
func (l *List[T, E]) PushBackFrom(e E, from ListOf[E]) {
	from.Remove(e)
	l.PushBack(e)
}

// InsertBeforeFrom removes e from from and inserts it before mark in l.
//
// e must be an element of from and mark an element of l. from may be l itself.
func (l *List[T, E]) InsertBeforeFrom(e, mark E, from ListOf[E]) {
	from.Remove(e)
	l.InsertBefore(e, mark)
}

// InsertAfterFrom removes e from from and inserts it after mark in l.
//
// e must be an element of from and mark an element of l. from may be l itself.
func (l *List[T, E]) InsertAfterFrom(e, mark E, from ListOf[E]) {
	from.Remove(e)
	l.InsertAfter(e, mark)
}

// PushBackList removes the elements of from in order and appends them to l,
// leaving from empty. Appending a list to itself is a no-op.
func (l *List[T, E]) PushBackList(from ListOf[E]) {
	if src, ok := from.(*List[T, E]); ok && src == l {
		return
	}

	for e := from.Front(); e != nil; e = from.Front() {
		from.Remove(e)
		l.PushBack(e)
	}
}

// Concat returns a new list built by draining each of the given lists
// in order, leaving them all empty.
func Concat[T any, E ListElement[T, E]](lists ...ListOf[E]) List[T, E] {
	var out List[T, E]

	for _, from := range lists {
		out.PushBackList(from)
	}

	return out
}
