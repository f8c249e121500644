package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/jot"
	"github.com/aretw0/jot/pkg/adapters/fs"
	"github.com/aretw0/jot/pkg/core"
)

// Every mutation rewrites the whole array, so cost grows with the store.
// This measures how much.
func main() {
	count := flag.Int("count", 1000, "Number of notes to generate")
	ops := flag.Int("ops", 100, "Number of add/remove operations to time")
	atomic := flag.Bool("atomic", false, "Save through temp file and rename")
	keep := flag.Bool("keep", false, "Keep the benchmark store after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "jot_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()
	path := filepath.Join(benchDir, "notes.json")

	fmt.Printf("Generating %d notes in %s...\n", *count, path)
	startGen := time.Now()

	notes := make(core.Collection, 0, *count)
	for i := 0; i < *count; i++ {
		notes = append(notes, core.NewNote(fmt.Sprintf("Benchmark note %d", i), time.Now()))
	}
	data, err := fs.NewJSONSerializer().Serialize(notes)
	if err != nil {
		panic(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		panic(err)
	}
	fmt.Printf("Generation took: %v (%d bytes)\n", time.Since(startGen), len(data))

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	service, err := jot.New(path,
		jot.WithLogger(logger),
		jot.WithAtomicWrites(*atomic),
	)
	if err != nil {
		panic(err)
	}

	ctx := context.TODO()

	startList := time.Now()
	list, err := service.List(ctx)
	if err != nil {
		panic(err)
	}
	fmt.Printf("List: %v (Items: %d)\n", time.Since(startList), len(list))

	startAdd := time.Now()
	for i := 0; i < *ops; i++ {
		if _, err := service.Add(ctx, fmt.Sprintf("Added %d", i)); err != nil {
			panic(err)
		}
	}
	addTook := time.Since(startAdd)
	fmt.Printf("Add x%d: %v (%v/op)\n", *ops, addTook, addTook/time.Duration(max(*ops, 1)))

	startRemove := time.Now()
	for i := 0; i < *ops; i++ {
		if _, err := service.Remove(ctx, 0); err != nil {
			panic(err)
		}
	}
	removeTook := time.Since(startRemove)
	fmt.Printf("Remove x%d: %v (%v/op)\n", *ops, removeTook, removeTook/time.Duration(max(*ops, 1)))
}
