package jot_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/jot"
)

// Example_basic demonstrates how to open a store, add notes and remove one.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "jot-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	// A fixed clock keeps the output stable.
	at := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	svc, err := jot.New(filepath.Join(tmpDir, "notes.json"),
		jot.WithClock(func() time.Time { return at }),
	)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	if _, err := svc.Add(ctx, "Buy milk"); err != nil {
		log.Fatal(err)
	}
	if _, err := svc.Add(ctx, "Call Bob"); err != nil {
		log.Fatal(err)
	}

	removed, err := svc.Remove(ctx, 0)
	if err != nil {
		log.Fatal(err)
	}

	notes, err := svc.List(ctx)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("removed:", removed.Text)
	for i, n := range notes {
		fmt.Printf("%d. [%s] %s\n", i+1, n.Timestamp, n.Text)
	}
	// Output:
	// removed: Buy milk
	// 1. [2024-01-01 09:00:00] Call Bob
}

// ExampleFindStore shows the upward lookup used when no path is configured.
func ExampleFindStore() {
	tmpDir, err := os.MkdirTemp("", "jot-find-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	nested := filepath.Join(tmpDir, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "jot-example.json"), []byte("[]"), 0644); err != nil {
		log.Fatal(err)
	}

	found, err := jot.FindStore(nested, "jot-example.json")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(filepath.Base(found))
	// Output:
	// jot-example.json
}
