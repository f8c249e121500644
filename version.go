package jot

// Version is the release of jot. Overridden at build time with
// -ldflags "-X github.com/aretw0/jot.Version=v1.2.3".
var Version = "dev"
