package arraylist_test

import (
	"cmp"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dynlist/internal/arraylist"
	"github.com/san-kum/dynlist/internal/sortutil"
)

type grade struct {
	score int
}

func (g grade) CompareTo(other grade) int {
	return cmp.Compare(g.score, other.score)
}

var _ = Describe("ArrayList", func() {
	var list *arraylist.ArrayList[int]

	BeforeEach(func() {
		list = arraylist.New[int]()
	})

	Describe("construction", func() {
		It("starts empty without a buffer", func() {
			Expect(list.Size()).To(Equal(0))
			Expect(list.Cap()).To(Equal(0))
			Expect(list.String()).To(Equal("[]"))
		})

		It("preallocates the requested capacity", func() {
			l, err := arraylist.WithCapacity[string](5)
			Expect(err).NotTo(HaveOccurred())
			Expect(l.Size()).To(Equal(0))
			Expect(l.Cap()).To(Equal(5))
		})

		It("rejects a negative capacity", func() {
			_, err := arraylist.WithCapacity[int](-1)
			Expect(err).To(MatchError(arraylist.ErrNegativeCapacity))
		})

		It("builds from values in order", func() {
			l := arraylist.FromValues(10, 20, 30)
			Expect(l.Values()).To(Equal([]int{10, 20, 30}))
		})
	})

	Describe("Add", func() {
		It("appends in order", func() {
			for i := 0; i < 25; i++ {
				list.Add(i * 2)
			}
			Expect(list.Size()).To(Equal(25))
			for i := 0; i < 25; i++ {
				Expect(list.Get(i)).To(Equal(i * 2))
			}
		})

		It("follows the growth policy", func() {
			caps := []int{}
			last := list.Cap()
			for i := 0; i < 100; i++ {
				list.Add(i)
				if list.Cap() != last {
					last = list.Cap()
					caps = append(caps, last)
				}
			}
			Expect(caps).To(Equal([]int{10, 16, 25, 39, 60, 91, 138}))
		})

		It("grows a presized list from its own capacity", func() {
			l, err := arraylist.WithCapacity[int](5)
			Expect(err).NotTo(HaveOccurred())
			for i := 0; i < 6; i++ {
				l.Add(i)
			}
			Expect(l.Cap()).To(Equal(9))
			Expect(l.Values()).To(Equal([]int{0, 1, 2, 3, 4, 5}))
		})
	})

	Describe("Insert", func() {
		BeforeEach(func() {
			for _, v := range []int{1, 2, 3, 4} {
				list.Add(v)
			}
		})

		It("shifts the tail right", func() {
			Expect(list.Insert(1, 99)).To(Succeed())
			Expect(list.Size()).To(Equal(5))
			Expect(list.Values()).To(Equal([]int{1, 99, 2, 3, 4}))
		})

		It("inserts at the front", func() {
			Expect(list.Insert(0, 0)).To(Succeed())
			Expect(list.Values()).To(Equal([]int{0, 1, 2, 3, 4}))
		})

		It("rejects the end position", func() {
			err := list.Insert(list.Size(), 5)
			Expect(err).To(MatchError(arraylist.ErrIndexOutOfRange))
			Expect(list.Values()).To(Equal([]int{1, 2, 3, 4}))
		})

		It("rejects negative indexes", func() {
			Expect(list.Insert(-1, 5)).To(MatchError(arraylist.ErrIndexOutOfRange))
		})

		It("rejects any index on an empty list", func() {
			empty := arraylist.New[int]()
			Expect(empty.Insert(0, 1)).To(MatchError(arraylist.ErrIndexOutOfRange))
			Expect(empty.Size()).To(Equal(0))
		})

		It("grows and shifts in one pass when full", func() {
			l, err := arraylist.WithCapacity[int](3)
			Expect(err).NotTo(HaveOccurred())
			l.Add(1)
			l.Add(2)
			l.Add(3)
			Expect(l.Insert(1, 7)).To(Succeed())
			Expect(l.Cap()).To(Equal(6))
			Expect(l.Values()).To(Equal([]int{1, 7, 2, 3}))
		})

		It("keeps shifting across repeated growth", func() {
			l := arraylist.FromValues(0)
			for i := 1; i <= 50; i++ {
				Expect(l.Insert(0, i)).To(Succeed())
			}
			Expect(l.Size()).To(Equal(51))
			for i := 0; i <= 50; i++ {
				Expect(l.Get(i)).To(Equal(50 - i))
			}
		})
	})

	Describe("Get and Set", func() {
		BeforeEach(func() {
			list.Add(10)
			list.Add(20)
		})

		It("reports out of range reads", func() {
			_, err := list.Get(2)
			Expect(err).To(MatchError(arraylist.ErrIndexOutOfRange))
			_, err = list.Get(-1)
			Expect(err).To(MatchError(arraylist.ErrIndexOutOfRange))
		})

		It("exposes the failing index", func() {
			_, err := list.Get(7)
			var idxErr *arraylist.IndexError
			Expect(err).To(BeAssignableToTypeOf(idxErr))
			Expect(err.(*arraylist.IndexError).Index).To(Equal(7))
			Expect(err.(*arraylist.IndexError).Length).To(Equal(2))
		})

		It("returns the previous value on Set", func() {
			prev, err := list.Set(1, 25)
			Expect(err).NotTo(HaveOccurred())
			Expect(prev).To(Equal(20))
			Expect(list.Get(1)).To(Equal(25))
			Expect(list.Size()).To(Equal(2))
		})

		It("does not read stale slots past the size", func() {
			Expect(list.Cap()).To(BeNumerically(">", list.Size()))
			_, err := list.Set(2, 1)
			Expect(err).To(MatchError(arraylist.ErrIndexOutOfRange))
		})
	})

	Describe("RemoveAt", func() {
		It("returns the removed value and shifts left", func() {
			for _, v := range []int{5, 6, 7, 8} {
				list.Add(v)
			}
			removed, err := list.RemoveAt(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(Equal(6))
			Expect(list.Values()).To(Equal([]int{5, 7, 8}))

			removed, err = list.RemoveAt(2)
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(Equal(8))
			Expect(list.Values()).To(Equal([]int{5, 7}))
		})

		It("rejects out of range indexes", func() {
			_, err := list.RemoveAt(0)
			Expect(err).To(MatchError(arraylist.ErrIndexOutOfRange))
		})
	})

	Describe("Remove", func() {
		It("removes the first match only", func() {
			l := arraylist.FromValues(1, 2, 3, 2, 1)
			Expect(l.Remove(2)).To(BeTrue())
			Expect(l.String()).To(Equal("[1, 3, 2, 1]"))
		})

		It("reports a missing value without changing the list", func() {
			l := arraylist.FromValues(1, 2, 3, 2, 1)
			Expect(l.Remove(99)).To(BeFalse())
			Expect(l.String()).To(Equal("[1, 2, 3, 2, 1]"))
		})

		It("matches nil only against nil", func() {
			a, b := 1, 1
			l := arraylist.FromValues[*int](&a, nil, &b)
			Expect(l.Remove(nil)).To(BeTrue())
			Expect(l.Size()).To(Equal(2))
			Expect(l.Remove(nil)).To(BeFalse())
		})

		It("matches absent interface values", func() {
			l := arraylist.FromValues[any](1, nil, "x")
			Expect(l.Remove(nil)).To(BeTrue())
			Expect(l.Values()).To(Equal([]any{1, "x"}))
		})
	})

	Describe("Clear", func() {
		It("returns to the zero capacity state", func() {
			for i := 0; i < 30; i++ {
				list.Add(i)
			}
			list.Clear()
			Expect(list.Size()).To(Equal(0))
			Expect(list.Cap()).To(Equal(0))
			_, err := list.Get(0)
			Expect(err).To(MatchError(arraylist.ErrIndexOutOfRange))

			list.Add(1)
			Expect(list.Cap()).To(Equal(10))
		})
	})

	Describe("Sort", func() {
		unsorted := []int{1, 3, 2, 4, 7, 6, 5, 8, 10, 9}
		sorted := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

		BeforeEach(func() {
			for _, v := range unsorted {
				list.Add(v)
			}
		})

		It("sorts by intrinsic order without a comparator", func() {
			Expect(list.Sort(nil)).To(Succeed())
			Expect(list.Values()).To(Equal(sorted))
		})

		It("sorts with an explicit comparator", func() {
			Expect(list.Sort(func(a, b int) int { return a - b })).To(Succeed())
			Expect(list.Values()).To(Equal(sorted))
		})

		It("sorts descending with a reversed comparator", func() {
			Expect(list.Sort(sortutil.Reverse(sortutil.Ordered[int]()))).To(Succeed())
			Expect(list.Values()).To(Equal([]int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}))
		})

		It("is idempotent", func() {
			Expect(arraylist.SortOrdered(list)).To(Succeed())
			Expect(arraylist.SortOrdered(list)).To(Succeed())
			Expect(list.Values()).To(Equal(sorted))
		})

		It("only sorts live elements", func() {
			l, err := arraylist.WithCapacity[int](20)
			Expect(err).NotTo(HaveOccurred())
			l.Add(3)
			l.Add(1)
			l.Add(2)
			Expect(l.Sort(nil)).To(Succeed())
			Expect(l.Values()).To(Equal([]int{1, 2, 3}))
			Expect(l.Size()).To(Equal(3))
		})

		It("leaves short lists alone", func() {
			empty := arraylist.New[any]()
			Expect(empty.Sort(nil)).To(Succeed())

			single := arraylist.FromValues[any](struct{}{})
			Expect(single.Sort(nil)).To(Succeed())
		})

		It("sorts elements that carry their own order", func() {
			l := arraylist.FromValues(grade{90}, grade{70}, grade{80})
			Expect(arraylist.SortNatural(l)).To(Succeed())
			Expect(l.String()).To(Equal("[{70}, {80}, {90}]"))

			Expect(l.Sort(sortutil.Reverse[grade](nil))).To(Succeed())
			Expect(l.String()).To(Equal("[{90}, {80}, {70}]"))
		})

		It("fails on a nil element without a comparator", func() {
			l := arraylist.FromValues[any](3, nil, 1)
			Expect(l.Sort(nil)).To(MatchError(sortutil.ErrNilElement))
		})

		It("fails on a nil element with a comparator", func() {
			one, three := 1, 3
			l := arraylist.FromValues[*int](&three, nil, &one)
			err := l.Sort(func(a, b *int) int { return *a - *b })
			Expect(err).To(MatchError(sortutil.ErrNilElement))
		})

		It("fails on elements without an order", func() {
			type pair struct{ a, b int }
			l := arraylist.FromValues(pair{1, 2}, pair{0, 1})
			Expect(l.Sort(nil)).To(MatchError(sortutil.ErrTypeMismatch))
		})
	})

	Describe("String", func() {
		It("joins elements with a comma and space", func() {
			Expect(arraylist.FromValues(10, 20, 30).String()).To(Equal("[10, 20, 30]"))
			Expect(arraylist.FromValues("a").String()).To(Equal("[a]"))
		})

		It("hides stale slots", func() {
			l := arraylist.FromValues(1, 2, 3)
			_, err := l.RemoveAt(2)
			Expect(err).NotTo(HaveOccurred())
			Expect(l.String()).To(Equal("[1, 2]"))
		})
	})

	Describe("growth correctness", func() {
		It("yields identical content from different starting capacities", func() {
			const n = 1000000
			fromZero := arraylist.New[int]()
			fromFive, err := arraylist.WithCapacity[int](5)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < n; i++ {
				fromZero.Add(i)
				fromFive.Add(i)
			}

			Expect(fromZero.Size()).To(Equal(n))
			Expect(fromFive.Size()).To(Equal(n))
			Expect(fromZero.Values()).To(Equal(fromFive.Values()))
		})
	})

	Describe("List interface", func() {
		It("is satisfied by ArrayList", func() {
			var l arraylist.List[string] = arraylist.New[string]()
			l.Add("b")
			l.Add("a")
			Expect(l.Sort(nil)).To(Succeed())
			Expect(l.String()).To(Equal("[a, b]"))
		})
	})
})
