package reactiveset

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/iotaledger/hive.go/log"
	"github.com/stretchr/testify/require"
)

func Test_SortedSet(t *testing.T) {
	testSet := NewOrdered[int]()
	requireSnapshot(t, []int{}, testSet)

	publishedSnapshots := make([][]int, 0)
	unsubscribe := testSet.OnUpdate(func(snapshot []int) {
		publishedSnapshots = append(publishedSnapshots, snapshot)
	})
	defer unsubscribe()

	require.Equal(t, [][]int{{}}, publishedSnapshots)

	require.True(t, testSet.Add(3))
	requireSnapshot(t, []int{3}, testSet)

	require.True(t, testSet.Add(1))
	requireSnapshot(t, []int{1, 3}, testSet)

	require.True(t, testSet.Add(2))
	requireSnapshot(t, []int{1, 2, 3}, testSet)

	require.Equal(t, [][]int{{}, {3}, {1, 3}, {1, 2, 3}}, publishedSnapshots)

	require.True(t, testSet.Has(2))
	require.False(t, testSet.Has(4))
	require.Equal(t, 3, testSet.Size())
	require.False(t, testSet.IsEmpty())

	require.True(t, testSet.Remove(2))
	requireSnapshot(t, []int{1, 3}, testSet)
	require.False(t, testSet.Has(2))

	testSet.Clear()
	requireSnapshot(t, []int{}, testSet)
	require.True(t, testSet.IsEmpty())
	require.Equal(t, [][]int{{}, {3}, {1, 3}, {1, 2, 3}, {1, 3}, {}}, publishedSnapshots)
}

func Test_SortedSetCustomOrder(t *testing.T) {
	testSet := New(func(a, b int) int { return b - a })

	testSet.Add(1)
	testSet.Add(3)
	testSet.Add(2)

	requireSnapshot(t, []int{3, 2, 1}, testSet)
}

func Test_SortedSetDeduplication(t *testing.T) {
	testSet := NewOrdered[int]()

	publicationCount := 0
	unsubscribe := testSet.OnUpdate(func(snapshot []int) {
		publicationCount++
	})
	defer unsubscribe()

	require.True(t, testSet.Add(1))
	require.False(t, testSet.Add(1))

	// the no-op path publishes nothing (one initial replay plus one mutation)
	require.Equal(t, 2, publicationCount)
	requireSnapshot(t, []int{1}, testSet)
}

func Test_SortedSetBounded(t *testing.T) {
	testSet := NewOrdered[int](WithMaxSize(3))

	testSet.Add(3)
	testSet.Add(1)
	testSet.Add(2)
	requireSnapshot(t, []int{1, 2, 3}, testSet)

	// inserting into the full set keeps the three smallest elements and evicts the largest (the new element itself)
	require.False(t, testSet.Add(4))
	requireSnapshot(t, []int{1, 2, 3}, testSet)
	require.False(t, testSet.Has(4))

	require.True(t, testSet.Remove(2))
	requireSnapshot(t, []int{1, 3}, testSet)
	require.True(t, testSet.Has(3))

	topTwo := testSet.TopN(2)
	defer topTwo.Unsubscribe()
	require.Equal(t, []int{1, 3}, topTwo.Get())
}

func Test_SortedSetBoundedEvictsLargestPresent(t *testing.T) {
	testSet := NewOrdered[int](WithMaxSize(2))

	testSet.Add(5)
	testSet.Add(3)
	requireSnapshot(t, []int{3, 5}, testSet)

	require.True(t, testSet.Add(1))
	requireSnapshot(t, []int{1, 3}, testSet)
	require.False(t, testSet.Has(5))

	// every overflowing insertion still publishes exactly one snapshot
	publicationCount := 0
	unsubscribe := testSet.OnUpdate(func(snapshot []int) {
		publicationCount++
	})
	defer unsubscribe()

	testSet.Add(4)
	require.Equal(t, 2, publicationCount)
	requireSnapshot(t, []int{1, 3}, testSet)
}

func Test_SortedSetNilElement(t *testing.T) {
	logOutput := new(bytes.Buffer)
	testLogger := log.NewLogger(log.WithHandler(slog.NewTextHandler(logOutput, nil)), log.WithLevel(log.LevelWarning))

	testSet := New(func(a, b *testElement) int { return a.weight - b.weight }, WithLogger(testLogger))

	element := &testElement{name: "element", weight: 1}
	require.True(t, testSet.Add(element))

	publicationCount := 0
	unsubscribe := testSet.OnUpdate(func(snapshot []*testElement) {
		publicationCount++
	})
	defer unsubscribe()

	require.False(t, testSet.Add(nil))

	require.Equal(t, 1, publicationCount)
	require.Equal(t, []*testElement{element}, testSet.Get())
	require.False(t, testSet.Has(nil))
	require.Contains(t, logOutput.String(), "ignoring nil element")
}

func Test_SortedSetLogUpdates(t *testing.T) {
	logOutput := new(bytes.Buffer)
	testLogger := log.NewLogger(log.WithHandler(slog.NewTextHandler(logOutput, nil)), log.WithLevel(log.LevelInfo))

	testSet := NewOrdered[int]()

	unsubscribe := testSet.LogUpdates(testLogger, log.LevelInfo, "testSet")

	testSet.Add(1)
	require.Contains(t, logOutput.String(), "testSet updated: [1]")

	testSet.Add(2)
	require.Contains(t, logOutput.String(), "testSet updated: [1 2]")

	unsubscribe()
	loggedBytes := logOutput.Len()

	testSet.Add(3)
	require.Equal(t, loggedBytes, logOutput.Len())
}

func Test_SortedSetRemoveAbsentElement(t *testing.T) {
	testSet := NewOrdered[int]()
	testSet.Add(1)

	publishedSnapshots := make([][]int, 0)
	unsubscribe := testSet.OnUpdate(func(snapshot []int) {
		publishedSnapshots = append(publishedSnapshots, snapshot)
	})
	defer unsubscribe()

	// removing an absent element is a defined no-op that still publishes the rebuilt snapshot
	require.False(t, testSet.Remove(2))
	require.Equal(t, [][]int{{1}, {1}}, publishedSnapshots)
	require.False(t, testSet.Has(2))
}

func Test_SortedSetSubscriberOrder(t *testing.T) {
	testSet := NewOrdered[int]()

	triggeredSubscribers := make([]string, 0)
	unsubscribeFirst := testSet.OnUpdate(func(snapshot []int) {
		triggeredSubscribers = append(triggeredSubscribers, "first")
	})
	defer unsubscribeFirst()

	unsubscribeSecond := testSet.OnUpdate(func(snapshot []int) {
		triggeredSubscribers = append(triggeredSubscribers, "second")
	})
	defer unsubscribeSecond()

	testSet.Add(1)

	require.Equal(t, []string{"first", "second", "first", "second"}, triggeredSubscribers)
}

func Test_SortedSetReadOnly(t *testing.T) {
	testSet := NewOrdered[int]()
	readOnlySet := testSet.ReadOnly()

	testSet.Add(2)
	testSet.Add(1)

	require.Equal(t, []int{1, 2}, readOnlySet.Get())
	require.True(t, readOnlySet.Has(1))
	require.Equal(t, 2, readOnlySet.Size())
}

func Test_SortedSetComparatorPanicPropagates(t *testing.T) {
	testSet := New(func(a, b int) int { panic("broken comparator") })

	testSet.Add(1)

	require.Panics(t, func() {
		testSet.Add(2)
	})
}

func Test_SortedSetInvalidOptions(t *testing.T) {
	require.Panics(t, func() {
		WithMaxSize(0)
	})

	require.Panics(t, func() {
		New[int](nil)
	})
}

func Test_SortedSetIndependentInstances(t *testing.T) {
	firstSet := NewOrdered[int]()
	secondSet := NewOrdered[int]()

	firstSet.Add(1)

	require.Equal(t, []int{1}, firstSet.Get())
	require.Equal(t, []int{}, secondSet.Get())
}

func requireSnapshot[ElementType comparable](t *testing.T, expectedElements []ElementType, sortedSet SortedSet[ElementType]) {
	t.Helper()

	require.Equal(t, expectedElements, sortedSet.Get())
	require.Equal(t, len(expectedElements), sortedSet.Size())

	for _, expectedElement := range expectedElements {
		require.True(t, sortedSet.Has(expectedElement))
	}
}

type testElement struct {
	name   string
	weight int
}
