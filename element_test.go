package intrusive_test

import (
	"testing"

	"github.com/mgnsk/intrusive"
	. "github.com/onsi/gomega"
)

func TestElementList(t *testing.T) {
	var l intrusive.List[intrusive.Element[string], *intrusive.Element[string]]

	g := NewWithT(t)

	l.PushBack(intrusive.NewElement("one"))
	l.PushBack(intrusive.NewElement("two"))
	l.PushBack(intrusive.NewElement("three"))

	g.Expect(l.Len()).To(Equal(3))
	g.Expect(l.Front().Value).To(Equal("one"))
	g.Expect(l.Back().Value).To(Equal("three"))
	g.Expect(l.Front().Prev()).To(BeNil())
	g.Expect(l.Back().Next()).To(BeNil())

	var elems []string
	l.Do(func(e *intrusive.Element[string]) bool {
		elems = append(elems, e.Value)

		return true
	})

	g.Expect(elems).To(Equal([]string{"one", "two", "three"}))

	l.Remove(l.Front().Next())

	g.Expect(l.Len()).To(Equal(2))
	g.Expect(l.Front().Next().Value).To(Equal("three"))
}

func TestElementZeroValue(t *testing.T) {
	var l intrusive.List[intrusive.Element[int], *intrusive.Element[int]]

	g := NewWithT(t)

	var e intrusive.Element[int]
	e.Value = 1

	l.PushBack(&e)

	g.Expect(l.Len()).To(Equal(1))
	g.Expect(l.Front()).To(Equal(&e))
}
