package intrusive_test

import (
	"testing"

	"github.com/mgnsk/intrusive"
	. "github.com/onsi/gomega"
)

func TestCursorIteration(t *testing.T) {
	t.Run("forward", func(t *testing.T) {
		var l intrusive.List[Item, *Item]

		g := NewWithT(t)

		for _, e := range newItems(1, 2, 3) {
			l.PushBack(e)
		}

		var got []int
		for it := l.Begin(); it.Ok(); it = it.Next() {
			got = append(got, it.Elem().Value)
		}

		g.Expect(got).To(Equal([]int{1, 2, 3}))
	})

	t.Run("backward", func(t *testing.T) {
		var l intrusive.List[Item, *Item]

		g := NewWithT(t)

		for _, e := range newItems(1, 2, 3) {
			l.PushBack(e)
		}

		var got []int
		for it := l.RBegin(); it.Ok(); it = it.Next() {
			got = append(got, it.Elem().Value)
		}

		g.Expect(got).To(Equal([]int{3, 2, 1}))
	})

	t.Run("empty list", func(t *testing.T) {
		var l intrusive.List[Item, *Item]

		g := NewWithT(t)

		g.Expect(l.Begin().Ok()).To(BeFalse())
		g.Expect(l.Begin().Elem()).To(BeNil())
		g.Expect(l.Begin() == l.End()).To(BeTrue())
		g.Expect(l.RBegin() == l.REnd()).To(BeTrue())
	})
}

func TestCursorEquality(t *testing.T) {
	var l intrusive.List[Item, *Item]

	g := NewWithT(t)

	for _, e := range newItems(1, 2) {
		l.PushBack(e)
	}

	g.Expect(l.Begin() == l.Begin()).To(BeTrue())
	g.Expect(l.Begin() == intrusive.At(l.Front())).To(BeTrue())
	g.Expect(l.Begin() == l.Begin().Next()).To(BeFalse())
	g.Expect(l.Begin().Next().Next() == l.End()).To(BeTrue())
	g.Expect(l.Begin().Next().Prev() == l.Begin()).To(BeTrue())

	// Cursors compare by element identity, not by value.
	var m intrusive.List[Item, *Item]
	m.PushBack(&Item{Value: 1})
	g.Expect(l.Begin() == m.Begin()).To(BeFalse())
}

func TestCursorAfterRemove(t *testing.T) {
	var l intrusive.List[Item, *Item]

	g := NewWithT(t)

	one, two, three := &Item{Value: 1}, &Item{Value: 2}, &Item{Value: 3}
	l.PushBack(one)
	l.PushBack(two)
	l.PushBack(three)

	it := l.Begin().Next()
	g.Expect(it.Elem()).To(Equal(two))

	l.Remove(two)

	// The cursor keeps referencing the removed element whose reset links
	// now step to the absent cursor in both directions.
	g.Expect(it.Elem()).To(Equal(two))
	g.Expect(it.Next() == l.End()).To(BeTrue())
	g.Expect(it.Prev().Ok()).To(BeFalse())

	g.Expect(l.Begin().Next().Elem()).To(Equal(three))
}

func TestCursorFollowsElement(t *testing.T) {
	var a, b intrusive.List[Item, *Item]

	g := NewWithT(t)

	one, two := &Item{Value: 1}, &Item{Value: 2}
	a.PushBack(one)
	a.PushBack(two)
	b.PushBack(&Item{Value: 9})

	it := intrusive.At(two)

	b.PushBackFrom(two, &a)

	g.Expect(it.Elem()).To(Equal(two))
	g.Expect(it.Prev().Elem().Value).To(Equal(9))
	g.Expect(it.Next().Ok()).To(BeFalse())
}

func TestCursorReversal(t *testing.T) {
	var l intrusive.List[Item, *Item]

	g := NewWithT(t)

	for _, e := range newItems(1, 2, 3) {
		l.PushBack(e)
	}

	c := l.Begin().Next()
	rc := c.Reverse()

	g.Expect(rc.Elem()).To(Equal(c.Elem()))
	g.Expect(rc.Next().Elem().Value).To(Equal(1))
	g.Expect(rc.Prev().Elem().Value).To(Equal(3))
	g.Expect(rc.Forward() == c).To(BeTrue())

	g.Expect(intrusive.ReverseAt(l.Back()) == l.RBegin()).To(BeTrue())
}
