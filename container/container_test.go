package container_test

import (
	"bytes"
	"cmp"
	"errors"
	"math/rand"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/container"
)

type taggedRecord struct {
	Key int
	Tag string
}

type recordWithSlice struct {
	ID    int
	Items []string
}

var errCopyRefused = errors.New("copy refused")

func Test_InsertFamily_ProducesExpectedOrder(t *testing.T) {
	// arrange
	c := newIntContainer(t)

	// act
	require.NoError(t, c.InsertRear(10))
	require.NoError(t, c.InsertFront(20))
	require.NoError(t, c.InsertAt(1, 15))

	// assert
	assertOrder(t, c, 20, 15, 10)
}

func Test_InsertAt_Len_Appends(t *testing.T) {
	// arrange
	c := newIntContainer(t, 1, 2)

	// act
	err := c.InsertAt(2, 3)

	// assert
	assert.NoError(t, err)
	assertOrder(t, c, 1, 2, 3)
}

func Test_InsertAt_Fails_WhenIndexOutOfRange(t *testing.T) {
	// arrange
	c := newIntContainer(t, 1, 2)

	// act
	errNegative := c.InsertAt(-1, 9)
	errTooLarge := c.InsertAt(3, 9)

	// assert
	assert.ErrorIs(t, errNegative, container.ErrInvalidArgument)
	assert.ErrorIs(t, errTooLarge, container.ErrInvalidArgument)
	assertOrder(t, c, 1, 2)
}

func Test_DeleteFamily_RemovesExpectedElements(t *testing.T) {
	// arrange
	c := newIntContainer(t, 10, 20, 30, 40, 50)

	// act + assert
	require.NoError(t, c.DeleteFront())
	assertOrder(t, c, 20, 30, 40, 50)

	require.NoError(t, c.DeleteRear())
	assertOrder(t, c, 20, 30, 40)

	require.NoError(t, c.DeleteAt(1))
	assertOrder(t, c, 20, 40)

	require.NoError(t, c.DeleteByValue(40))
	assertOrder(t, c, 20)
}

func Test_DeleteFrontAndRear_Fail_WhenEmpty(t *testing.T) {
	// arrange
	c := newIntContainer(t)

	// act
	errFront := c.DeleteFront()
	errRear := c.DeleteRear()

	// assert
	assert.ErrorIs(t, errFront, container.ErrNotFound)
	assert.ErrorIs(t, errRear, container.ErrNotFound)
	assert.Equal(t, 0, c.Len())
}

func Test_DeleteAt_Fails_WhenIndexOutOfRange(t *testing.T) {
	// arrange
	c := newIntContainer(t, 1, 2, 3)

	// act
	err := c.DeleteAt(3)

	// assert
	assert.ErrorIs(t, err, container.ErrInvalidArgument)
	assertOrder(t, c, 1, 2, 3)
}

func Test_DeleteByValue_Fails_WhenNoMatch(t *testing.T) {
	// arrange
	c := newIntContainer(t, 1, 2, 3)

	// act
	err := c.DeleteByValue(99)

	// assert
	assert.ErrorIs(t, err, container.ErrNotFound)
	assertOrder(t, c, 1, 2, 3)
}

func Test_DeleteByValue_Fails_WhenNoComparator(t *testing.T) {
	// arrange
	c := container.New[int]()
	require.NoError(t, c.InsertRear(1))

	// act
	err := c.DeleteByValue(1)

	// assert
	assert.ErrorIs(t, err, container.ErrNotFound)
	assert.Equal(t, 1, c.Len())
}

func Test_DeleteNode_RemovesInteriorAndBoundaryNodes(t *testing.T) {
	// arrange
	c := newIntContainer(t, 1, 2, 3, 4)

	// act
	require.NoError(t, c.DeleteNode(c.Search(2)))
	require.NoError(t, c.DeleteNode(c.Front()))
	require.NoError(t, c.DeleteNode(c.Back()))

	// assert
	assertOrder(t, c, 3)
	assert.Same(t, c.Front(), c.Back())
	assert.Nil(t, c.Front().Prev())
	assert.Nil(t, c.Front().Next())
}

func Test_DeleteNode_Fails_WhenNodeBelongsToAnotherContainer(t *testing.T) {
	// arrange
	c := newIntContainer(t, 1, 2)
	other := newIntContainer(t, 1, 2)

	// act
	errForeign := c.DeleteNode(other.Front())
	errNil := c.DeleteNode(nil)

	// assert
	assert.ErrorIs(t, errForeign, container.ErrInvalidArgument)
	assert.ErrorIs(t, errNil, container.ErrInvalidArgument)
	assertOrder(t, c, 1, 2)
	assertOrder(t, other, 1, 2)
}

func Test_DeleteNode_Fails_WhenNodeWasAlreadyDeleted(t *testing.T) {
	// arrange
	c := newIntContainer(t, 1, 2)
	n := c.Front()
	require.NoError(t, c.DeleteNode(n))

	// act
	err := c.DeleteNode(n)

	// assert
	assert.ErrorIs(t, err, container.ErrInvalidArgument)
	assertOrder(t, c, 2)
}

func Test_Sort_ThenInsertSorted(t *testing.T) {
	// arrange
	c := newIntContainer(t, 50, 10, 30, 20, 40)

	// act
	require.NoError(t, c.Sort())
	assertOrder(t, c, 10, 20, 30, 40, 50)

	require.NoError(t, c.InsertSorted(25))

	// assert
	assertOrder(t, c, 10, 20, 25, 30, 40, 50)
	assert.True(t, c.IsSorted())
}

func Test_Sort_IsStable(t *testing.T) {
	// arrange
	c := container.New(container.WithComparator(compareTaggedByKey))
	require.NoError(t, c.InsertRear(taggedRecord{Key: 1, Tag: "x"}))
	require.NoError(t, c.InsertRear(taggedRecord{Key: 1, Tag: "y"}))
	require.NoError(t, c.InsertRear(taggedRecord{Key: 2, Tag: "z"}))

	// act
	err := c.Sort()

	// assert
	assert.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, tagsOf(c))
}

func Test_SortWith_IsStable_ForManyDuplicates(t *testing.T) {
	// arrange
	c := container.New[taggedRecord]()
	rng := rand.New(rand.NewSource(7)) //nolint:gosec
	for i := 0; i < 200; i++ {
		require.NoError(t, c.InsertRear(taggedRecord{Key: rng.Intn(5), Tag: strconv.Itoa(i)}))
	}

	expected := c.Values()
	slices.SortStableFunc(expected, compareTaggedByKey)

	// act
	err := c.SortWith(compareTaggedByKey)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, expected, c.Values())
	assertLinksConsistent(t, c)
}

func Test_Sort_KeepsBackwardLinksConsistent(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) //nolint:gosec

	for size := 0; size <= 17; size++ {
		t.Run("size_"+strconv.Itoa(size), func(t *testing.T) {
			// arrange
			values := rng.Perm(size)
			c := newIntContainer(t, values...)

			// act
			err := c.Sort()

			// assert
			assert.NoError(t, err)
			slices.Sort(values)
			assertOrder(t, c, values...)
			assert.True(t, c.IsSorted())
		})
	}
}

func Test_Sort_Fails_WhenNoComparator(t *testing.T) {
	// arrange
	c := container.New[int]()
	require.NoError(t, c.InsertRear(2))
	require.NoError(t, c.InsertRear(1))

	// act
	errSort := c.Sort()
	errSortWith := c.SortWith(nil)

	// assert
	assert.ErrorIs(t, errSort, container.ErrInvalidArgument)
	assert.ErrorIs(t, errSortWith, container.ErrInvalidArgument)
	assert.Equal(t, []int{2, 1}, c.Values())
	assert.False(t, c.IsSorted())
}

func Test_SortWith_UsesGivenOrder_AndKeepsBoundComparator(t *testing.T) {
	// arrange
	c := newIntContainer(t, 3, 1, 2)

	// act
	err := c.SortWith(func(a, b int) int { return cmp.Compare(b, a) })

	// assert
	assert.NoError(t, err)
	assertOrder(t, c, 3, 2, 1)
	assert.False(t, c.IsSorted())
}

func Test_InsertSorted_PlacesTiesAfterEqualElements(t *testing.T) {
	// arrange
	c := container.New(container.WithComparator(compareTaggedByKey))
	require.NoError(t, c.InsertSorted(taggedRecord{Key: 1, Tag: "a"}))
	require.NoError(t, c.InsertSorted(taggedRecord{Key: 3, Tag: "b"}))
	require.NoError(t, c.InsertSorted(taggedRecord{Key: 1, Tag: "c"}))

	// act
	err := c.InsertSorted(taggedRecord{Key: 1, Tag: "d"})

	// assert
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "d", "b"}, tagsOf(c))
}

func Test_InsertSorted_Fails_WhenNoComparator(t *testing.T) {
	// arrange
	c := container.New[int]()
	require.NoError(t, c.InsertRear(1))

	// act
	err := c.InsertSorted(2)

	// assert
	assert.ErrorIs(t, err, container.ErrInvalidArgument)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, []int{1}, c.Values())
}

func Test_Search_FindsExistingValue_AndMissesAbsentOne(t *testing.T) {
	// arrange
	c := newIntContainer(t, 10, 20, 30, 40, 50)

	// act
	found := c.Search(30)
	missing := c.Search(99)

	// assert
	require.NotNil(t, found)
	assert.Equal(t, 30, *found.Record())
	assert.Nil(t, missing)
	assert.True(t, c.Contains(50))
}

func Test_Search_ReturnsNil_WhenNoComparator(t *testing.T) {
	// arrange
	c := container.New[int]()
	require.NoError(t, c.InsertRear(1))

	// act
	found := c.Search(1)

	// assert
	assert.Nil(t, found)
	assert.Equal(t, -1, c.IndexOf(1))
}

func Test_FindIf_ReturnsFirstMatch_WithoutComparator(t *testing.T) {
	// arrange
	c := container.New[taggedRecord]()
	require.NoError(t, c.InsertRear(taggedRecord{Key: 1, Tag: "a"}))
	require.NoError(t, c.InsertRear(taggedRecord{Key: 2, Tag: "b"}))
	require.NoError(t, c.InsertRear(taggedRecord{Key: 2, Tag: "c"}))
	wanted := 2

	// act
	found := c.FindIf(func(r *taggedRecord) bool { return r.Key == wanted })

	// assert
	require.NotNil(t, found)
	assert.Equal(t, "b", found.Record().Tag)
	assert.Nil(t, c.FindIf(func(r *taggedRecord) bool { return r.Key == 9 }))
}

func Test_IndexOfAndNodeAt_AreInverse(t *testing.T) {
	// arrange
	c := newIntContainer(t, 5, 8, 13, 21, 34, 55, 89)

	for i := 0; i < c.Len(); i++ {
		// act
		n := c.NodeAt(i)

		// assert
		require.NotNil(t, n)
		assert.Equal(t, i, c.IndexOf(*n.Record()))
	}

	assert.Nil(t, c.NodeAt(-1))
	assert.Nil(t, c.NodeAt(c.Len()))
}

func Test_At_ExposesMutableReference(t *testing.T) {
	// arrange
	c := container.New[taggedRecord]()
	require.NoError(t, c.InsertRear(taggedRecord{Key: 1, Tag: "before"}))

	// act
	record, ok := c.At(0)
	require.True(t, ok)
	record.Tag = "after"

	// assert
	stored, _ := c.At(0)
	assert.Equal(t, "after", stored.Tag)

	_, ok = c.At(1)
	assert.False(t, ok)
}

func Test_InsertedRecord_IsPrivateCopy(t *testing.T) {
	// arrange
	c := container.New(container.WithCopier(copyRecordWithSlice))
	original := recordWithSlice{ID: 1, Items: []string{"a"}}
	require.NoError(t, c.InsertRear(original))

	// act
	original.Items[0] = "changed"

	// assert
	stored, _ := c.At(0)
	assert.Equal(t, []string{"a"}, stored.Items)
}

func Test_Reverse_TwiceRestoresOrder(t *testing.T) {
	// arrange
	c := newIntContainer(t, 1, 2, 3, 4, 5)

	// act + assert
	require.NoError(t, c.Reverse())
	assertOrder(t, c, 5, 4, 3, 2, 1)

	require.NoError(t, c.Reverse())
	assertOrder(t, c, 1, 2, 3, 4, 5)
}

func Test_Reverse_IsNoop_ForSingleElement(t *testing.T) {
	// arrange
	c := newIntContainer(t, 7)

	// act
	err := c.Reverse()

	// assert
	assert.NoError(t, err)
	assertOrder(t, c, 7)
}

func Test_Clone_IsIndependent(t *testing.T) {
	// arrange
	c := container.New(
		container.WithComparator(compareRecordWithSliceByID),
		container.WithCopier(copyRecordWithSlice),
	)
	require.NoError(t, c.InsertRear(recordWithSlice{ID: 1, Items: []string{"a", "b"}}))
	require.NoError(t, c.InsertRear(recordWithSlice{ID: 2, Items: []string{"c"}}))

	// act
	clone, err := c.Clone()

	// assert
	require.NoError(t, err)
	assert.Equal(t, c.Values(), clone.Values())

	cloned, _ := clone.At(0)
	cloned.Items[0] = "changed"
	cloned.ID = 99

	original, _ := c.At(0)
	assert.Equal(t, recordWithSlice{ID: 1, Items: []string{"a", "b"}}, *original)
	assert.NotNil(t, clone.Search(recordWithSlice{ID: 2}))
}

func Test_Clone_RollsBack_WhenCopierFails(t *testing.T) {
	// arrange
	refuse := false
	released := 0
	c := container.New(
		container.WithCopier(func(r int) (int, error) {
			if refuse && r == 3 {
				return 0, errCopyRefused
			}
			return r, nil
		}),
		container.WithReleaser(func(*int) { released++ }),
	)
	for _, v := range []int{1, 2, 3, 4} {
		require.NoError(t, c.InsertRear(v))
	}
	refuse = true

	// act
	clone, err := c.Clone()

	// assert
	assert.Nil(t, clone)
	assert.ErrorIs(t, err, container.ErrAllocation)
	assert.ErrorIs(t, err, errCopyRefused)
	assert.Equal(t, 2, released, "the partial clone must be released")
	assert.Equal(t, []int{1, 2, 3, 4}, c.Values())
}

func Test_Insert_Fails_WhenCopierFails(t *testing.T) {
	// arrange
	c := container.New(container.WithCopier(func(int) (int, error) { return 0, errCopyRefused }))

	// act
	err := c.InsertRear(1)

	// assert
	assert.ErrorIs(t, err, container.ErrAllocation)
	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.Front())
	assert.Nil(t, c.Back())
}

func Test_Filter_KeepsOrderAndHooks(t *testing.T) {
	// arrange
	c := newIntContainer(t, 5, 2, 8, 3, 6)

	// act
	even, err := c.Filter(func(v *int) bool { return *v%2 == 0 })

	// assert
	require.NoError(t, err)
	assertOrder(t, even, 2, 8, 6)
	require.NoError(t, even.Sort())
	assertOrder(t, even, 2, 6, 8)
	assertOrder(t, c, 5, 2, 8, 3, 6)
}

func Test_ForEach_VisitsEveryRecordInOrder(t *testing.T) {
	// arrange
	c := newIntContainer(t, 1, 2, 3)
	visited := make([]int, 0)

	// act
	err := c.ForEach(func(v *int) {
		visited = append(visited, *v)
		*v *= 10
	})

	// assert
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, visited)
	assertOrder(t, c, 10, 20, 30)
}

func Test_Releaser_IsCalledForEveryRemovedRecord(t *testing.T) {
	// arrange
	released := make([]int, 0)
	c := container.New(
		container.WithComparator(cmp.Compare[int]),
		container.WithReleaser(func(v *int) { released = append(released, *v) }),
	)
	for _, v := range []int{1, 2, 3, 4, 5} {
		require.NoError(t, c.InsertRear(v))
	}

	// act
	require.NoError(t, c.DeleteFront())
	require.NoError(t, c.DeleteByValue(3))
	c.Clear()
	require.NoError(t, c.InsertRear(6))
	c.Destroy()

	// assert
	assert.Equal(t, []int{1, 3, 2, 4, 5, 6}, released)
}

func Test_Destroy_RetiresContainer(t *testing.T) {
	// arrange
	c := newIntContainer(t, 1, 2)

	// act
	c.Destroy()
	c.Destroy()

	// assert
	assert.Equal(t, 0, c.Len())
	assert.ErrorIs(t, c.InsertRear(3), container.ErrInvalidArgument)
	assert.ErrorIs(t, c.DeleteFront(), container.ErrInvalidArgument)
	assert.ErrorIs(t, c.Sort(), container.ErrInvalidArgument)
	assert.Nil(t, c.Front())
}

func Test_Clear_KeepsContainerUsable(t *testing.T) {
	// arrange
	c := newIntContainer(t, 1, 2)

	// act
	c.Clear()

	// assert
	assert.True(t, c.IsEmpty())
	assert.NoError(t, c.InsertSorted(3))
	assertOrder(t, c, 3)
}

func Test_NilContainer_ReportsInvalidArgument(t *testing.T) {
	// arrange
	var c *container.Container[int]

	// act + assert
	assert.ErrorIs(t, c.InsertFront(1), container.ErrInvalidArgument)
	assert.ErrorIs(t, c.InsertRear(1), container.ErrInvalidArgument)
	assert.ErrorIs(t, c.InsertAt(0, 1), container.ErrInvalidArgument)
	assert.ErrorIs(t, c.InsertSorted(1), container.ErrInvalidArgument)
	assert.ErrorIs(t, c.DeleteFront(), container.ErrInvalidArgument)
	assert.ErrorIs(t, c.Reverse(), container.ErrInvalidArgument)
	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.Search(1))
	assert.False(t, c.Iterator().HasNext())

	_, err := c.Clone()
	assert.ErrorIs(t, err, container.ErrInvalidArgument)

	c.Destroy()
}

func Test_Iterators_YieldForwardAndBackward(t *testing.T) {
	// arrange
	c := newIntContainer(t, 10, 20, 30, 40, 50)

	// act
	forward := drain(c.Iterator())
	backward := drain(c.ReverseIterator())

	// assert
	assert.Equal(t, []int{10, 20, 30, 40, 50}, forward)
	assert.Equal(t, []int{50, 40, 30, 20, 10}, backward)
}

func Test_Iterator_StaysExhausted_UntilReset(t *testing.T) {
	// arrange
	c := newIntContainer(t, 1, 2)
	it := c.ReverseIterator()

	current, ok := it.Current()
	require.True(t, ok)
	assert.Equal(t, 2, *current)

	// act
	drain(it)

	// assert
	_, ok = it.Next()
	assert.False(t, ok)
	_, ok = it.Current()
	assert.False(t, ok)
	assert.False(t, it.HasNext())

	it.Reset()
	assert.Equal(t, []int{2, 1}, drain(it))
	assert.Equal(t, container.DirectionBackward, it.Direction())
}

func Test_Iterator_ReportsInvalid_AfterStructuralMutation(t *testing.T) {
	// arrange
	c := newIntContainer(t, 1, 2, 3)
	it := c.Iterator()
	require.True(t, it.Valid())

	// act
	require.NoError(t, c.InsertRear(4))

	// assert
	assert.False(t, it.Valid())
	it.Reset()
	assert.True(t, it.Valid())
	assert.Equal(t, []int{1, 2, 3, 4}, drain(it))
}

func Test_All_SupportsEarlyExit(t *testing.T) {
	// arrange
	c := newIntContainer(t, 1, 2, 3, 4)
	firstTwo := make([]int, 0)

	// act
	for v := range c.All() {
		if len(firstTwo) == 2 {
			break
		}
		firstTwo = append(firstTwo, *v)
	}

	// assert
	assert.Equal(t, []int{1, 2}, firstTwo)
}

func Test_Render_UsesPrinter(t *testing.T) {
	// arrange
	c := container.New(container.WithPrinter(func(v int) string { return "#" + strconv.Itoa(v) }))
	require.NoError(t, c.InsertRear(1))
	require.NoError(t, c.InsertRear(2))
	out := new(bytes.Buffer)

	// act
	err := c.Render(out)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, "#1\n#2\n", out.String())
}

func Test_Render_FallsBackToDefaultFormat_WhenNoPrinter(t *testing.T) {
	// arrange
	c := newIntContainer(t, 3)
	out := new(bytes.Buffer)

	// act
	err := c.Render(out)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, "3\n", out.String())
}

func newIntContainer(t *testing.T, values ...int) *container.Container[int] {
	t.Helper()

	c := container.New(container.WithComparator(cmp.Compare[int]))
	for _, v := range values {
		require.NoError(t, c.InsertRear(v))
	}

	return c
}

// assertOrder checks the forward order, the backward order, and the count against expected.
func assertOrder(t *testing.T, c *container.Container[int], expected ...int) {
	t.Helper()

	if expected == nil {
		expected = []int{}
	}

	forward := make([]int, 0)
	for v := range c.All() {
		forward = append(forward, *v)
	}

	backward := make([]int, 0)
	for v := range c.Backward() {
		backward = append(backward, *v)
	}

	reversed := slices.Clone(expected)
	slices.Reverse(reversed)

	assert.Equal(t, expected, forward, "forward order")
	assert.Equal(t, reversed, backward, "backward order")
	assert.Equal(t, len(expected), c.Len(), "count")
	assertLinksConsistent(t, c)
}

func assertLinksConsistent[T any](t *testing.T, c *container.Container[T]) {
	t.Helper()

	if c.Len() == 0 {
		assert.Nil(t, c.Front())
		assert.Nil(t, c.Back())

		return
	}

	assert.Nil(t, c.Front().Prev())
	assert.Nil(t, c.Back().Next())

	count := 0
	for n := c.Front(); n != nil; n = n.Next() {
		if n.Next() != nil {
			assert.Same(t, n, n.Next().Prev())
		}
		count++
	}

	assert.Equal(t, c.Len(), count)
}

func drain(it *container.Iterator[int]) []int {
	values := make([]int, 0)
	for it.HasNext() {
		v, _ := it.Next()
		values = append(values, *v)
	}

	return values
}

func tagsOf(c *container.Container[taggedRecord]) []string {
	tags := make([]string, 0, c.Len())
	for r := range c.All() {
		tags = append(tags, r.Tag)
	}

	return tags
}

func compareTaggedByKey(a, b taggedRecord) int {
	return cmp.Compare(a.Key, b.Key)
}

func compareRecordWithSliceByID(a, b recordWithSlice) int {
	return cmp.Compare(a.ID, b.ID)
}

func copyRecordWithSlice(r recordWithSlice) (recordWithSlice, error) {
	r.Items = slices.Clone(r.Items)

	return r, nil
}
