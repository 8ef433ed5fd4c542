package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
)

// TestGraftDependencies checks that every node declaring a dependency uses it, and every used
// dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// graft.AssertDepsValid infers the dependency ID from the package of the type passed to
	// Dep[T]. Every node here resolves port interfaces from the shared ports package, so the
	// inferred IDs never match the adapter node IDs.
	t.Skip("graft static analysis cannot map shared ports interfaces to adapter nodes")
	graft.AssertDepsValid(t, "../../internal")
}
