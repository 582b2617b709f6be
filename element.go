package intrusive

// Element is a ready made list element carrying a value, for lists whose
// element type does not embed its own Node:
//
//	var l intrusive.List[intrusive.Element[string], *intrusive.Element[string]]
//	l.PushBack(intrusive.NewElement("a"))
type Element[V any] struct {
	Node[*Element[V]]

	// Value is the value carried by the element.
	Value V
}

// NewElement creates an unlinked element carrying value v.
func NewElement[V any](v V) *Element[V] {
	return &Element[V]{Value: v}
}
