package reactiveset

import (
	"reflect"

	"github.com/iotaledger/hive.go/runtime/syncutils"
)

// region callback /////////////////////////////////////////////////////////////////////////////////////////////////////

// callback tracks a single subscriber of a sequence. Its execution lock keeps the initial replay and subsequent
// publications from interleaving, and the remembered publication ID makes sure a subscriber never sees the same
// snapshot twice.
type callback[FuncType any] struct {
	// Invoke delivers a snapshot to the subscriber.
	Invoke FuncType

	// unsubscribed indicates that the subscriber no longer wants to receive snapshots.
	unsubscribed bool

	// lastUpdate is the ID of the last publication that was delivered to the subscriber.
	lastUpdate uniqueID

	// executionMutex serializes the deliveries to the subscriber.
	executionMutex syncutils.Mutex
}

// newCallback is the constructor for the callback type.
func newCallback[FuncType any](invoke FuncType) *callback[FuncType] {
	return &callback[FuncType]{
		Invoke: invoke,
	}
}

// LockExecution reserves the callback for the publication with the given ID and returns false if the subscriber has
// unsubscribed or was already delivered that publication.
func (c *callback[FuncType]) LockExecution(updateID uniqueID) bool {
	c.executionMutex.Lock()

	if c.unsubscribed || updateID != 0 && updateID == c.lastUpdate {
		c.executionMutex.Unlock()

		return false
	}

	c.lastUpdate = updateID

	return true
}

// UnlockExecution releases the callback for the next publication.
func (c *callback[FuncType]) UnlockExecution() {
	c.executionMutex.Unlock()
}

// MarkUnsubscribed flags the callback so that no further snapshots are delivered to it.
func (c *callback[FuncType]) MarkUnsubscribed() {
	c.executionMutex.Lock()
	defer c.executionMutex.Unlock()

	c.unsubscribed = true
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region uniqueID /////////////////////////////////////////////////////////////////////////////////////////////////////

// uniqueID issues the identifiers of publications (0 is reserved for the initial replay).
type uniqueID uint64

// Next returns the next unique identifier.
func (u *uniqueID) Next() uniqueID {
	*u++

	return *u
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region isNil ////////////////////////////////////////////////////////////////////////////////////////////////////////

// isNil returns true if the given element is a nil value of a nilable element type (a nil interface or a typed nil
// pointer, channel, map, slice or function wrapped in an interface element type).
func isNil[ElementType comparable](element ElementType) bool {
	value := reflect.ValueOf(element)
	if !value.IsValid() {
		return true
	}

	switch value.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return value.IsNil()
	default:
		return false
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
