// Package namematch resolves a noisy name query to the best-matching
// full name in a candidate list. It is the embeddable surface over the
// matching pipeline; the cmd and web layers build on the same types.
package namematch

import (
	"github.com/namematch/internal/matcher"
)

// Engine runs the matching pipeline. See the matcher package for the
// stage semantics.
type Engine = matcher.Engine

// Tables is the remapping and override configuration an Engine consults.
type Tables = matcher.Tables

// Result identifies a matched candidate and the stage that resolved it.
type Result = matcher.Result

// New creates an engine over the given configuration tables.
func New(tables Tables) *Engine {
	return matcher.NewEngine(tables)
}

// NewDefault creates an engine with the built-in tables.
func NewDefault() *Engine {
	return matcher.NewDefaultEngine()
}

// DefaultTables returns the built-in table set.
func DefaultTables() Tables {
	return matcher.DefaultTables()
}

var defaultEngine = matcher.NewDefaultEngine()

// Search resolves query against candidates with the default engine and
// returns the matched candidate verbatim, or the empty string when no
// candidate qualifies.
func Search(candidates []string, query string) string {
	return defaultEngine.Search(candidates, query)
}
