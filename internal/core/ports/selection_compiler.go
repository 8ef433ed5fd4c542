package ports

import "go.trai.ch/graphcache/internal/core/domain"

// SelectionCompiler turns selection-set text into a domain.Selection.
//
//go:generate mockgen -source=selection_compiler.go -destination=mocks/mock_selection_compiler.go -package=mocks
type SelectionCompiler interface {
	// Compile parses a selection set such as `{ hero { id name } }`.
	Compile(text string) (*domain.Selection, error)
}
