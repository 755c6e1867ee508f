package reactiveset

// region ReadableSequence /////////////////////////////////////////////////////////////////////////////////////////////

// ReadableSequence is a read-only reactive stream of snapshots that replays the most recent snapshot to new
// subscribers. Snapshots can only be produced by the component the sequence belongs to (there is no external producer
// API).
type ReadableSequence[ElementType comparable] interface {
	// Get returns the most recently published snapshot.
	Get() []ElementType

	// OnUpdate registers the given callback that is triggered whenever a new snapshot is published. It is immediately
	// triggered with the most recent snapshot and every subscriber receives its own copy of each snapshot.
	OnUpdate(callback func(snapshot []ElementType)) (unsubscribe func())
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region DerivedSequence //////////////////////////////////////////////////////////////////////////////////////////////

// DerivedSequence is a ReadableSequence that automatically derives its snapshots from another sequence.
type DerivedSequence[ElementType comparable] interface {
	// ReadableSequence imports the methods of the ReadableSequence interface.
	ReadableSequence[ElementType]

	// Unsubscribe detaches the sequence from its source (it will no longer receive updates).
	Unsubscribe()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
