// Package jot is the Composition Root for the jot note store.
//
// It connects the core domain (pkg/core) with the JSON file adapter
// (pkg/adapters/fs). A store is one JSON array of {"note", "timestamp"}
// objects; every mutation loads it, changes one element and writes it back.
//
// Usage:
//
//	svc, err := jot.New("./notes.json",
//		jot.WithLogger(logger),
//		jot.WithAtomicWrites(true),
//	)
//
//	note, err := svc.Add(ctx, "Buy milk")
//	removed, err := svc.Remove(ctx, 0)
package jot
