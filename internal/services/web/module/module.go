// Package module defines the feature contract used by web composition.
package module

import "net/http"

// Mount describes a module route mount. Prefix is the primary mux pattern;
// Aliases are extra patterns routed to the same handler, used by modules
// that own a few paths outside their prefix.
type Mount struct {
	Prefix  string
	Aliases []string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}
