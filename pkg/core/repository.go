package core

import "context"

// Repository defines the contract for persisting a Collection.
// Adhering to this interface keeps the core independent of the
// storage format (a JSON file by default).
type Repository interface {
	// Initialize ensures the underlying storage is ready (e.g. parent directory).
	Initialize(ctx context.Context) error

	// Exists reports whether anything has been persisted yet.
	Exists(ctx context.Context) (bool, error)

	// Load returns the persisted collection. A missing store is an empty collection.
	Load(ctx context.Context) (Collection, error)

	// Save overwrites the persisted collection.
	Save(ctx context.Context, c Collection) error
}

// Watchable defines an interface for repositories that can report external changes.
type Watchable interface {
	// Watch emits an Event each time the persisted collection changes.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
}
