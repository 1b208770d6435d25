package topology

import (
	"github.com/gcptools/archdiag/pkg/diagram"
	"github.com/gcptools/archdiag/pkg/errors"
)

// Built-in topology names, in the order they are built by default.
const (
	NameComprehensive = "comprehensive"
	NameSimplified    = "simplified"
)

// builders maps topology names to their builder functions. Each builder
// returns a fresh diagram on every call.
var builders = map[string]func() *diagram.Diagram{
	NameComprehensive: Comprehensive,
	NameSimplified:    Simplified,
}

// Names returns the built-in topology names in build order.
func Names() []string {
	return []string{NameComprehensive, NameSimplified}
}

// Get returns a freshly built diagram for the named topology.
// Returns a TOPOLOGY_NOT_FOUND error for unknown names.
func Get(name string) (*diagram.Diagram, error) {
	build, ok := builders[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeTopologyNotFound, "unknown topology %q (available: comprehensive, simplified)", name)
	}
	return build(), nil
}
