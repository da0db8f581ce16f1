//go:build !debug

// Package debug exposes the build-tag switched Debug flag consumed by the
// gzcurl logger. Build with -tags=debug to keep logging enabled under tests.
package debug

const Debug = false
