package reactiveset

import (
	"slices"

	"github.com/iotaledger/hive.go/ds"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/iotaledger/hive.go/runtime/syncutils"
)

// region sortedSet ////////////////////////////////////////////////////////////////////////////////////////////////////

// sortedSet is the default implementation of the SortedSet interface.
type sortedSet[ElementType comparable] struct {
	// readableSortedSet embeds the ReadableSortedSet implementation.
	*readableSortedSet[ElementType]

	// compare is the function that defines the order of the elements.
	compare CompareFunc[ElementType]

	// maxSize is the maximum number of elements the set retains (0 means unbounded).
	maxSize int

	// logger receives warnings about ignored elements.
	logger log.Logger

	// updateOrderMutex makes sure that write operations are executed sequentially (all subscribers have seen a
	// snapshot before the next one is published).
	updateOrderMutex syncutils.Mutex
}

// newSortedSet creates a new sortedSet instance with the given CompareFunc and options.
func newSortedSet[ElementType comparable](compare CompareFunc[ElementType], opts ...options.Option[Options]) *sortedSet[ElementType] {
	if compare == nil {
		panic(ierrors.New("compare function must not be nil"))
	}

	setOptions := options.Apply(&Options{Logger: log.EmptyLogger}, opts)

	return &sortedSet[ElementType]{
		readableSortedSet: newReadableSortedSet[ElementType](),
		compare:           compare,
		maxSize:           setOptions.MaxSize,
		logger:            setOptions.Logger,
	}
}

// Add inserts the given element into the set and returns true if the set contains the element afterwards. Inserting an
// element that overflows a bounded set evicts the largest element (which can be the element that was just inserted).
// Nil elements are ignored with a warning.
func (s *sortedSet[ElementType]) Add(element ElementType) bool {
	if isNil(element) {
		s.logger.LogWarn("ignoring nil element added to sorted set")

		return false
	}

	s.updateOrderMutex.Lock()
	defer s.updateOrderMutex.Unlock()

	if !s.elements.Add(element) {
		return false
	}

	snapshot := append(s.Get(), element)
	slices.SortStableFunc(snapshot, s.compare)

	if s.maxSize > 0 && len(snapshot) > s.maxSize {
		evictedElement := snapshot[len(snapshot)-1]
		snapshot = snapshot[:len(snapshot)-1]

		s.elements.Delete(evictedElement)
	}

	s.publish(snapshot)

	return s.elements.Has(element)
}

// Remove removes the given element from the set and returns true if the element was present before. A new snapshot is
// published even if the element was not present.
func (s *sortedSet[ElementType]) Remove(element ElementType) (removed bool) {
	s.updateOrderMutex.Lock()
	defer s.updateOrderMutex.Unlock()

	removed = s.elements.Delete(element)

	snapshot := slices.DeleteFunc(s.Get(), func(existingElement ElementType) bool {
		return existingElement == element
	})
	slices.SortStableFunc(snapshot, s.compare)

	s.publish(snapshot)

	return removed
}

// Clear removes all elements from the set and publishes an empty snapshot.
func (s *sortedSet[ElementType]) Clear() {
	s.updateOrderMutex.Lock()
	defer s.updateOrderMutex.Unlock()

	s.elements.Clear()

	s.publish(make([]ElementType, 0))
}

// ReadOnly returns a read-only version of the set.
func (s *sortedSet[ElementType]) ReadOnly() ReadableSortedSet[ElementType] {
	return s.readableSortedSet
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region readableSortedSet ////////////////////////////////////////////////////////////////////////////////////////////

// readableSortedSet is the default implementation of the ReadableSortedSet interface.
type readableSortedSet[ElementType comparable] struct {
	// sequence embeds the reactive stream of snapshots.
	*sequence[ElementType]

	// elements is the index of the elements that are currently part of the set, kept in sync with the published
	// snapshot.
	elements ds.Set[ElementType]
}

// newReadableSortedSet creates a new readableSortedSet instance.
func newReadableSortedSet[ElementType comparable]() *readableSortedSet[ElementType] {
	return &readableSortedSet[ElementType]{
		sequence: newSequence[ElementType](),
		elements: ds.NewSet[ElementType](),
	}
}

// Has returns true if the set contains the given element.
func (r *readableSortedSet[ElementType]) Has(element ElementType) (has bool) {
	return r.elements.Has(element)
}

// Size returns the number of elements in the set.
func (r *readableSortedSet[ElementType]) Size() int {
	return r.elements.Size()
}

// IsEmpty returns true if the set is empty.
func (r *readableSortedSet[ElementType]) IsEmpty() bool {
	return r.elements.IsEmpty()
}

// TopN returns a sequence that automatically holds the up to n smallest elements of the set and that is updated
// whenever the set changes.
func (r *readableSortedSet[ElementType]) TopN(n int) DerivedSequence[ElementType] {
	return newDerivedSequence(func(d *sequence[ElementType]) (unsubscribe func()) {
		return r.OnUpdate(func(snapshot []ElementType) {
			d.publish(slices.Clone(snapshot[:min(max(n, 0), len(snapshot))]))
		})
	})
}

// LogUpdates configures the set to emit a log message for every published snapshot with the given logger and log
// level.
func (r *readableSortedSet[ElementType]) LogUpdates(logger log.Logger, level log.Level, setName string) (unsubscribe func()) {
	return r.OnUpdate(func(snapshot []ElementType) {
		logger.Logf("%s updated: %v", level, setName, snapshot)
	})
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
