package intrusive

// EqualFunc reports whether a and b hold equal elements in the same order,
// comparing pairs of elements with eq. The lists are not modified.
func EqualFunc[T any, E ListElement[T, E]](a, b ListOf[E], eq func(x, y E) bool) bool {
	x, y := a.Front(), b.Front()

	for x != nil && y != nil {
		if !eq(x, y) {
			return false
		}
		x, y = x.Next(), y.Next()
	}

	return x == nil && y == nil
}

// CompareFunc compares the elements of a and b pairwise with cmp, stopping
// at the first pair for which cmp is not 0. If the lists hold equal
// elements up to the length of the shorter one, the shorter list compares
// less than the longer. The result is 0 when the lists are element-wise
// equal, -1 when a compares less than b and +1 when a compares greater.
// The lists are not modified.
func CompareFunc[T any, E ListElement[T, E]](a, b ListOf[E], cmp func(x, y E) int) int {
	x, y := a.Front(), b.Front()

	for x != nil && y != nil {
		if c := cmp(x, y); c != 0 {
			return c
		}
		x, y = x.Next(), y.Next()
	}

	switch {
	case x != nil:
		return +1
	case y != nil:
		return -1
	default:
		return 0
	}
}
