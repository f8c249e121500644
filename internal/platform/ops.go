package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/jot/pkg/adapters/fs"
	"github.com/aretw0/jot/pkg/core"
)

// Init prepares the store named by uri and returns its repository.
// The uri is adapter-specific (a file path for "fs").
func Init(uri string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.repository != nil {
		return o.repository, nil
	}

	var repo core.Repository
	var err error

	switch o.adapter {
	case "fs":
		repo, err = initFS(uri, o)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
	if err != nil {
		return nil, err
	}

	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return repo, nil
}

// initFS handles the initialization logic for the filesystem adapter.
func initFS(path string, o *options) (core.Repository, error) {
	policy, err := fs.ParseCorruptPolicy(o.corruptPolicy)
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = fs.DefaultFileName
	}

	if o.logger != nil {
		o.logger.Debug("opening note store", "path", path, "atomic", o.atomicWrites, "on_corrupt", policy)
	}

	return fs.NewRepository(fs.Config{
		Path:          path,
		MustExist:     o.mustExist,
		AtomicWrites:  o.atomicWrites,
		CorruptPolicy: policy,
		WatchPattern:  o.watchPattern,
		Debounce:      o.debounce,
		Logger:        o.logger,
		ErrorHandler:  o.errorHandler,
	}), nil
}
