package intrusive

// ListElement is the constraint for a generic list element.
//
// An element carries its own links and must expose them to the list for
// rewriting. Embedding a Node implements the link methods automatically:
//
//	type Task struct {
//		intrusive.Node[*Task]
//		ID int
//	}
type ListElement[T, E any] interface {
	*T

	Next() E
	Prev() E
	SetNext(E)
	SetPrev(E)
}

// Node is the embeddable pair of links that makes its embedding type usable
// as a list element.
//
// The zero value is an unlinked node.
type Node[E any] struct {
	next, prev E
}

// Next returns the next element or nil if this is the last element in its list.
func (n *Node[E]) Next() E {
	return n.next
}

// Prev returns the previous element or nil if this is the first element in its list.
func (n *Node[E]) Prev() E {
	return n.prev
}

// SetNext sets the next element.
//
// It is called by list operations and rarely needs to be called directly.
func (n *Node[E]) SetNext(e E) {
	n.next = e
}

// SetPrev sets the previous element.
//
// It is called by list operations and rarely needs to be called directly.
func (n *Node[E]) SetPrev(e E) {
	n.prev = e
}

// attachBefore links e immediately before at in at's chain,
// detaching e from any prior chain first.
func attachBefore[T any, E ListElement[T, E]](e, at E) {
	detach[T, E](e)

	p := at.Prev()
	e.SetPrev(p)
	e.SetNext(at)

	if p != nil {
		p.SetNext(e)
	}
	at.SetPrev(e)
}

// attachAfter links e immediately after at in at's chain,
// detaching e from any prior chain first.
func attachAfter[T any, E ListElement[T, E]](e, at E) {
	detach[T, E](e)

	n := at.Next()
	e.SetNext(n)
	e.SetPrev(at)

	if n != nil {
		n.SetPrev(e)
	}
	at.SetNext(e)
}

// detach unlinks e from its chain by reconnecting its neighbors around it
// and resets e's links. Detaching an already unlinked element is a no-op.
func detach[T any, E ListElement[T, E]](e E) {
	p, n := e.Prev(), e.Next()

	if p != nil {
		p.SetNext(n)
	}
	if n != nil {
		n.SetPrev(p)
	}

	e.SetPrev(nil)
	e.SetNext(nil)
}
