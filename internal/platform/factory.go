package platform

import (
	"github.com/aretw0/jot/pkg/core"
)

// New wires a repository and the domain service.
//
//	svc, err := jot.New("./notes.json", jot.WithAtomicWrites(true))
func New(uri string, opts ...Option) (*core.Service, error) {
	repo, err := Init(uri, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return core.NewService(repo, core.WithClock(o.clock)), nil
}
