// Package matcher implements the name resolution pipeline: a fixed
// priority-ordered list of matching strategies run against an in-memory
// candidate list until one produces a decisive match. Early stages are
// exact and table-driven; later stages score candidates with the
// phonetic, edit-distance, pattern, and regional similarity machinery.
package matcher

import (
	"strings"

	"github.com/namematch/internal/debug"
	"github.com/namematch/internal/normalize"
)

// acceptThreshold is the minimum composite score (strictly greater
// than) for the scoring stages to accept a candidate.
const acceptThreshold = 0.4

// Result identifies the matched candidate. Candidate is the verbatim
// input string; Stage names the pipeline stage that resolved it.
type Result struct {
	Candidate string
	Index     int
	Stage     string
	Score     float64
}

// Engine runs the matching pipeline against its configuration tables.
// An Engine is read-only after construction and safe for concurrent
// searches; swap in a new Engine to change tables.
type Engine struct {
	tables Tables
	debug  bool
}

// stage is one strategy in the pipeline. It either resolves the query
// to a candidate or falls through to the next stage.
type stage struct {
	name string
	run  func(*Engine, *searchContext) (Result, bool)
}

// pipeline is the fixed stage order. Reordering changes which candidate
// wins for ambiguous queries; the order is part of the contract.
var pipeline = []stage{
	{"partial_map", (*Engine).matchPartialMap},
	{"full_name_map", (*Engine).matchFullNameMap},
	{"hyphen_literal", (*Engine).matchHyphenLiteral},
	{"single_name_priority", (*Engine).matchSingleNamePriority},
	{"exact", (*Engine).matchExact},
	{"first_partial_compound", (*Engine).matchFirstPartialCompound},
	{"single_token", (*Engine).matchSingleToken},
	{"initial_surname", (*Engine).matchInitialSurname},
	{"variant_pair", (*Engine).matchVariantPair},
	{"first_exact_partial_last", (*Engine).matchFirstExactPartialLast},
	{"close_two_part", (*Engine).matchCloseTwoPart},
	{"multipart_composite", (*Engine).matchMultipartComposite},
	{"fallback_composite", (*Engine).matchFallbackComposite},
}

// searchContext carries the per-call derived forms: the normalized
// query, its parts, and the memoized normalized candidate forms. All of
// it is ephemeral and discarded when the call returns.
type searchContext struct {
	rawQuery   string
	lowerQuery string
	normQuery  string
	queryParts []string

	candidates []string
	norms      []string
	parts      [][]string
}

// NewEngine creates an engine over the given configuration tables.
func NewEngine(tables Tables) *Engine {
	return &Engine{tables: tables}
}

// NewDefaultEngine creates an engine with the built-in tables.
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultTables())
}

// SetDebug enables stage tracing through the debug package.
func (e *Engine) SetDebug(enabled bool) {
	e.debug = enabled
}

// Search resolves query against candidates and returns the matched
// candidate verbatim, or the empty string when no candidate qualifies.
// No-match is an ordinary outcome, never an error.
func (e *Engine) Search(candidates []string, query string) string {
	if r, ok := e.Match(candidates, query); ok {
		return r.Candidate
	}
	return ""
}

// Match is Search with an explicit result: the matched candidate, its
// index in the input list, and the stage that decided. ok is false when
// nothing qualified, which keeps a legitimately empty candidate string
// unambiguous.
func (e *Engine) Match(candidates []string, query string) (Result, bool) {
	query = strings.TrimSpace(query)
	if query == "" || len(candidates) == 0 {
		return Result{Index: -1}, false
	}

	ctx := newSearchContext(candidates, query)
	if ctx.normQuery == "" {
		return Result{Index: -1}, false
	}

	for _, s := range pipeline {
		if r, ok := s.run(e, ctx); ok {
			r.Stage = s.name
			debug.Output(e.debug, "query %q resolved by stage %s to %q (score=%.2f)",
				query, r.Stage, r.Candidate, r.Score)
			return r, true
		}
	}

	debug.Output(e.debug, "query %q did not resolve", query)
	return Result{Index: -1}, false
}

func newSearchContext(candidates []string, query string) *searchContext {
	ctx := &searchContext{
		rawQuery:   query,
		lowerQuery: strings.ToLower(query),
		normQuery:  normalize.Name(query),
		candidates: candidates,
		norms:      make([]string, len(candidates)),
		parts:      make([][]string, len(candidates)),
	}
	ctx.queryParts = strings.Fields(ctx.normQuery)

	for i, c := range candidates {
		ctx.norms[i] = normalize.Name(c)
		ctx.parts[i] = strings.Fields(ctx.norms[i])
	}

	return ctx
}

// result builds a Result for candidate index i.
func (ctx *searchContext) result(i int, score float64) Result {
	return Result{Candidate: ctx.candidates[i], Index: i, Score: score}
}

// findByNorm returns the first candidate whose normalized form equals
// the normalized target.
func (ctx *searchContext) findByNorm(target string) (int, bool) {
	norm := normalize.Name(target)
	if norm == "" {
		return 0, false
	}
	for i, n := range ctx.norms {
		if n == norm {
			return i, true
		}
	}
	return 0, false
}
