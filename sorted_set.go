// Package reactiveset provides a sorted set of unique elements that publishes its full ordered sequence of elements to
// subscribed consumers whenever it changes.
package reactiveset

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"
)

// region SortedSet ////////////////////////////////////////////////////////////////////////////////////////////////////

// SortedSet is a set of unique elements that keeps its elements sorted according to a caller-supplied CompareFunc and
// that allows consumers to subscribe to the resulting sequence of elements.
type SortedSet[ElementType comparable] interface {
	// WritableSortedSet imports the write methods of the SortedSet interface.
	WritableSortedSet[ElementType]

	// ReadableSortedSet imports the read methods of the SortedSet interface.
	ReadableSortedSet[ElementType]
}

// New creates a new SortedSet that sorts its elements in ascending order according to the given CompareFunc.
func New[ElementType comparable](compare CompareFunc[ElementType], opts ...options.Option[Options]) SortedSet[ElementType] {
	return newSortedSet(compare, opts...)
}

// NewOrdered creates a new SortedSet for element types that have a natural order.
func NewOrdered[ElementType constraints.Ordered](opts ...options.Option[Options]) SortedSet[ElementType] {
	return newSortedSet(lo.Comparator[ElementType], opts...)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ReadableSortedSet ////////////////////////////////////////////////////////////////////////////////////////////

// ReadableSortedSet bundles the read methods of the SortedSet interface.
type ReadableSortedSet[ElementType comparable] interface {
	// Has returns true if the set contains the given element.
	Has(element ElementType) (has bool)

	// Size returns the number of elements in the set.
	Size() int

	// IsEmpty returns true if the set is empty.
	IsEmpty() bool

	// TopN returns a sequence that automatically holds the up to n smallest elements of the set and that is updated
	// whenever the set changes.
	TopN(n int) DerivedSequence[ElementType]

	// LogUpdates configures the set to emit a log message for every published snapshot with the given logger and log
	// level.
	LogUpdates(logger log.Logger, level log.Level, setName string) (unsubscribe func())

	// ReadableSequence imports the methods of the reactive stream of snapshots.
	ReadableSequence[ElementType]
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region WritableSortedSet ////////////////////////////////////////////////////////////////////////////////////////////

// WritableSortedSet bundles the write methods of the SortedSet interface.
type WritableSortedSet[ElementType comparable] interface {
	// Add inserts the given element into the set and returns true if the set contains the element afterwards (a
	// bounded set evicts its largest element when it overflows, which can be the element that was just inserted).
	Add(element ElementType) bool

	// Remove removes the given element from the set and returns true if the element was present before.
	Remove(element ElementType) (removed bool)

	// Clear removes all elements from the set.
	Clear()

	// ReadOnly returns a read-only version of the set.
	ReadOnly() ReadableSortedSet[ElementType]
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region CompareFunc //////////////////////////////////////////////////////////////////////////////////////////////////

// CompareFunc defines the total order of the elements of a SortedSet. It returns a negative number if a is smaller
// than b, a positive number if a is larger than b and 0 if both are considered equal in the order (elements that
// compare equal are still distinct entries of the set unless they are equal values).
type CompareFunc[ElementType comparable] func(a, b ElementType) int

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
