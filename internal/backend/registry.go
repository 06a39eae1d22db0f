// Package backend resolves a solver backend identifier to a concrete
// satsolver.Builder, shared between cmd/xword and internal/api so both
// front ends validate the identifier the same way, before any core
// construction happens.
package backend

import (
	"fmt"

	"github.com/crossplay/xwordsat/pkg/satsolver"
	"github.com/crossplay/xwordsat/pkg/satsolver/gophersat"
)

// ErrUnknownBackend is returned by New for an unrecognized identifier.
var ErrUnknownBackend = fmt.Errorf("backend: unknown solver backend")

// New returns a fresh Builder for the named backend. "gophersat" is
// currently the only one shipped; the satsolver contract is built to
// let more be registered here without touching any caller.
func New(name string) (satsolver.Builder, error) {
	switch name {
	case "gophersat":
		return gophersat.NewBuilder(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}
