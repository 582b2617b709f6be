package intrusive

// Cursor is a position in a list that steps from front to back.
//
// A cursor either references an element or is absent. The zero value is the
// absent cursor. Stepping in either direction off the boundary elements of
// a list yields the absent cursor. Cursors are values: stepping returns a
// new cursor and two cursors compare equal exactly when they reference the
// same element or are both absent.
//
// A cursor keeps referencing its element when the element relocates. A
// cursor obtained before removing its element steps by the links the
// removal reset and yields the absent cursor in both directions.
type Cursor[T any, E ListElement[T, E]] struct {
	e E
}

// At returns a cursor referencing e.
func At[T any, E ListElement[T, E]](e E) Cursor[T, E] {
	return Cursor[T, E]{e}
}

// Ok returns whether the cursor references an element.
func (c Cursor[T, E]) Ok() bool {
	return c.e != nil
}

// Elem returns the referenced element or nil if the cursor is absent.
func (c Cursor[T, E]) Elem() E {
	return c.e
}

// Next returns a cursor stepped one element toward the back.
//
// The cursor must not be absent.
func (c Cursor[T, E]) Next() Cursor[T, E] {
	return Cursor[T, E]{c.e.Next()}
}

// Prev returns a cursor stepped one element toward the front.
//
// The cursor must not be absent.
func (c Cursor[T, E]) Prev() Cursor[T, E] {
	return Cursor[T, E]{c.e.Prev()}
}

// Reverse returns a reverse cursor at the same position.
func (c Cursor[T, E]) Reverse() ReverseCursor[T, E] {
	return ReverseCursor[T, E]{c.e}
}

// ReverseCursor is a position in a list that steps from back to front.
//
// Next steps toward the front and Prev toward the back. It is otherwise
// identical to Cursor.
type ReverseCursor[T any, E ListElement[T, E]] struct {
	e E
}

// ReverseAt returns a reverse cursor referencing e.
func ReverseAt[T any, E ListElement[T, E]](e E) ReverseCursor[T, E] {
	return ReverseCursor[T, E]{e}
}

// Ok returns whether the cursor references an element.
func (c ReverseCursor[T, E]) Ok() bool {
	return c.e != nil
}

// Elem returns the referenced element or nil if the cursor is absent.
func (c ReverseCursor[T, E]) Elem() E {
	return c.e
}

// Next returns a cursor stepped one element toward the front.
//
// The cursor must not be absent.
func (c ReverseCursor[T, E]) Next() ReverseCursor[T, E] {
	return ReverseCursor[T, E]{c.e.Prev()}
}

// Prev returns a cursor stepped one element toward the back.
//
// The cursor must not be absent.
func (c ReverseCursor[T, E]) Prev() ReverseCursor[T, E] {
	return ReverseCursor[T, E]{c.e.Next()}
}

// Forward returns a forward cursor at the same position.
func (c ReverseCursor[T, E]) Forward() Cursor[T, E] {
	return Cursor[T, E]{c.e}
}
