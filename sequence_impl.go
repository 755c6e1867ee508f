package reactiveset

import (
	"slices"
	"sync"

	"github.com/iotaledger/hive.go/ds"
	"github.com/iotaledger/hive.go/runtime/syncutils"
)

// region sequence /////////////////////////////////////////////////////////////////////////////////////////////////////

// sequence is the default implementation of the ReadableSequence interface.
type sequence[ElementType comparable] struct {
	// value is the most recently published snapshot.
	value []ElementType

	// updateCallbacks are the registered callbacks that are triggered whenever a new snapshot is published.
	updateCallbacks ds.List[*callback[func(snapshot []ElementType)]]

	// uniqueUpdateID is the unique ID that is used to identify a publication.
	uniqueUpdateID uniqueID

	// valueMutex is the mutex that is used to synchronize the access to the value.
	valueMutex syncutils.RWMutex
}

// newSequence creates a new sequence that starts out with an empty snapshot.
func newSequence[ElementType comparable]() *sequence[ElementType] {
	return &sequence[ElementType]{
		value:           make([]ElementType, 0),
		updateCallbacks: ds.NewList[*callback[func(snapshot []ElementType)]](),
	}
}

// Get returns the most recently published snapshot.
func (s *sequence[ElementType]) Get() []ElementType {
	s.valueMutex.RLock()
	defer s.valueMutex.RUnlock()

	return slices.Clone(s.value)
}

// OnUpdate registers the given callback that is triggered whenever a new snapshot is published. It is immediately
// triggered with the most recent snapshot.
func (s *sequence[ElementType]) OnUpdate(callback func(snapshot []ElementType)) (unsubscribe func()) {
	s.valueMutex.Lock()

	currentValue := s.value
	createdCallback := newCallback[func(snapshot []ElementType)](callback)
	callbackElement := s.updateCallbacks.PushBack(createdCallback)

	// grab the execution lock before we release the mutex, so the callback cannot be triggered by a publication
	// before it has seen the current snapshot
	createdCallback.LockExecution(s.uniqueUpdateID)
	defer createdCallback.UnlockExecution()

	s.valueMutex.Unlock()

	createdCallback.Invoke(slices.Clone(currentValue))

	return func() {
		s.updateCallbacks.Remove(callbackElement)

		createdCallback.MarkUnsubscribed()
	}
}

// publish stores the given snapshot as the current value and triggers the registered callbacks in the order they were
// registered. Every subscriber receives its own copy of the snapshot so it cannot corrupt the stored value.
func (s *sequence[ElementType]) publish(snapshot []ElementType) {
	updateID, callbacksToTrigger := s.prepareTrigger(snapshot)

	for _, registeredCallback := range callbacksToTrigger {
		if registeredCallback.LockExecution(updateID) {
			registeredCallback.Invoke(slices.Clone(snapshot))
			registeredCallback.UnlockExecution()
		}
	}
}

// prepareTrigger atomically stores the new snapshot and returns the ID of the publication together with the callbacks
// to trigger.
func (s *sequence[ElementType]) prepareTrigger(snapshot []ElementType) (updateID uniqueID, callbacksToTrigger []*callback[func(snapshot []ElementType)]) {
	s.valueMutex.Lock()
	defer s.valueMutex.Unlock()

	s.value = snapshot

	return s.uniqueUpdateID.Next(), s.updateCallbacks.Values()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region derivedSequence //////////////////////////////////////////////////////////////////////////////////////////////

// derivedSequence is the default implementation of the DerivedSequence interface.
type derivedSequence[ElementType comparable] struct {
	// sequence embeds the sequence that holds the derived snapshots.
	*sequence[ElementType]

	// unsubscribeFromSource is the function that is used to detach the sequence from its source.
	unsubscribeFromSource func()

	// unsubscribeOnce makes sure that the unsubscribe function is only called once.
	unsubscribeOnce sync.Once
}

// newDerivedSequence creates a new derivedSequence whose snapshots are produced by the subscription that is set up by
// the given subscribe function.
func newDerivedSequence[ElementType comparable](subscribe func(d *sequence[ElementType]) (unsubscribe func())) *derivedSequence[ElementType] {
	d := &derivedSequence[ElementType]{
		sequence: newSequence[ElementType](),
	}

	d.unsubscribeFromSource = subscribe(d.sequence)

	return d
}

// Unsubscribe detaches the sequence from its source (it will no longer receive updates).
func (d *derivedSequence[ElementType]) Unsubscribe() {
	d.unsubscribeOnce.Do(d.unsubscribeFromSource)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
