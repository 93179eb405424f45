package matcher

import (
	"strings"

	"github.com/namematch/internal/score"
	"github.com/namematch/internal/textdist"
)

// matchPartialMap resolves a literal partial string through the
// partial-to-full table. The lookup uses the original query, before
// hyphen folding, so configured partials may contain punctuation.
func (e *Engine) matchPartialMap(ctx *searchContext) (Result, bool) {
	full, ok := e.tables.PartialToFull[strings.TrimSpace(ctx.lowerQuery)]
	if !ok {
		return Result{}, false
	}
	if i, found := ctx.findByNorm(full); found {
		return ctx.result(i, 1.0), true
	}
	return Result{}, false
}

// matchFullNameMap resolves an exact variant full name through the
// canonical full-name table.
func (e *Engine) matchFullNameMap(ctx *searchContext) (Result, bool) {
	canonical, ok := e.tables.FullNameCanonical[ctx.normQuery]
	if !ok {
		return Result{}, false
	}
	if i, found := ctx.findByNorm(canonical); found {
		return ctx.result(i, 1.0), true
	}
	return Result{}, false
}

// matchHyphenLiteral handles queries carrying a literal hyphen: first a
// candidate containing the raw query as a substring, then, for
// single-part queries, a candidate starting with it.
func (e *Engine) matchHyphenLiteral(ctx *searchContext) (Result, bool) {
	if !strings.Contains(ctx.rawQuery, "-") {
		return Result{}, false
	}

	needle := strings.TrimSpace(ctx.lowerQuery)
	for i, c := range ctx.candidates {
		if strings.Contains(strings.ToLower(c), needle) {
			return ctx.result(i, 1.0), true
		}
	}

	if len(ctx.queryParts) == 1 {
		for i, c := range ctx.candidates {
			if strings.HasPrefix(strings.ToLower(c), needle) {
				return ctx.result(i, 1.0), true
			}
		}
	}

	return Result{}, false
}

// matchSingleNamePriority disambiguates a single-token query through
// the priority table.
func (e *Engine) matchSingleNamePriority(ctx *searchContext) (Result, bool) {
	if len(ctx.queryParts) != 1 {
		return Result{}, false
	}
	canonical, ok := e.tables.SingleNamePriority[ctx.queryParts[0]]
	if !ok {
		return Result{}, false
	}
	if i, found := ctx.findByNorm(canonical); found {
		return ctx.result(i, 1.0), true
	}
	return Result{}, false
}

// matchExact is the exact case-insensitive full-name match.
func (e *Engine) matchExact(ctx *searchContext) (Result, bool) {
	for i, n := range ctx.norms {
		if n == ctx.normQuery {
			return ctx.result(i, 1.0), true
		}
	}
	return Result{}, false
}

// matchFirstPartialCompound handles "first + partial compound surname"
// queries: the candidate starts with the two query parts and carries a
// compound surname (a hyphen or more than two parts).
func (e *Engine) matchFirstPartialCompound(ctx *searchContext) (Result, bool) {
	if len(ctx.queryParts) != 2 {
		return Result{}, false
	}

	prefix := ctx.queryParts[0] + " " + ctx.queryParts[1]
	for i, n := range ctx.norms {
		if !strings.HasPrefix(n, prefix) {
			continue
		}
		if strings.Contains(ctx.candidates[i], "-") || len(ctx.parts[i]) > 2 {
			return ctx.result(i, 1.0), true
		}
	}
	return Result{}, false
}

// matchSingleToken resolves a single-token query by exact part match:
// first-name position first, then anywhere among the parts, then the
// same two passes for each remap variant of the token.
func (e *Engine) matchSingleToken(ctx *searchContext) (Result, bool) {
	if len(ctx.queryParts) != 1 {
		return Result{}, false
	}

	token := ctx.queryParts[0]
	if i, ok := ctx.findByPart(token); ok {
		return ctx.result(i, 1.0), true
	}

	for _, variant := range e.tables.expandGiven(token) {
		if variant == token {
			continue
		}
		if i, ok := ctx.findByPart(variant); ok {
			return ctx.result(i, 1.0), true
		}
	}
	return Result{}, false
}

// findByPart finds a candidate with token in first-name position, or
// failing that, anywhere among its parts.
func (ctx *searchContext) findByPart(token string) (int, bool) {
	for i, parts := range ctx.parts {
		if len(parts) > 0 && parts[0] == token {
			return i, true
		}
	}
	for i, parts := range ctx.parts {
		for _, p := range parts {
			if p == token {
				return i, true
			}
		}
	}
	return 0, false
}

// matchInitialSurname treats a two-part query whose first part is a
// single character as initial + surname.
func (e *Engine) matchInitialSurname(ctx *searchContext) (Result, bool) {
	if len(ctx.queryParts) != 2 || len(ctx.queryParts[0]) != 1 {
		return Result{}, false
	}

	initial := ctx.queryParts[0][0]
	surname := ctx.queryParts[1]

	for i, parts := range ctx.parts {
		if len(parts) < 2 {
			continue
		}
		if parts[0][0] == initial && parts[len(parts)-1] == surname {
			return ctx.result(i, 1.0), true
		}
	}
	return Result{}, false
}

// matchVariantPair expands both positions of a two-part query through
// the remap tables and looks for an exact two-part candidate on any
// variant combination.
func (e *Engine) matchVariantPair(ctx *searchContext) (Result, bool) {
	if len(ctx.queryParts) != 2 {
		return Result{}, false
	}

	firstVariants := e.tables.expandGiven(ctx.queryParts[0])
	lastVariants := e.tables.expandSurname(ctx.queryParts[1])

	for _, fv := range firstVariants {
		for _, lv := range lastVariants {
			target := fv + " " + lv
			for i, n := range ctx.norms {
				if n == target {
					return ctx.result(i, 1.0), true
				}
			}
		}
	}
	return Result{}, false
}

// matchFirstExactPartialLast handles "first name + partial surname"
// queries: for each first-name variant, a candidate whose first part
// matches exactly and whose last part starts with the partial surname.
func (e *Engine) matchFirstExactPartialLast(ctx *searchContext) (Result, bool) {
	if len(ctx.queryParts) != 2 {
		return Result{}, false
	}

	partialLast := ctx.queryParts[1]
	for _, fv := range e.tables.expandGiven(ctx.queryParts[0]) {
		for i, parts := range ctx.parts {
			if len(parts) < 2 {
				continue
			}
			if parts[0] == fv && strings.HasPrefix(parts[len(parts)-1], partialLast) {
				return ctx.result(i, 1.0), true
			}
		}
	}
	return Result{}, false
}

// matchCloseTwoPart is the close-match heuristic for two-part queries
// against two-part candidates: both parts within edit distance 2,
// minimizing the summed distance. Common for South Asian name spellings
// where both the given name and the surname drift by a letter or two.
func (e *Engine) matchCloseTwoPart(ctx *searchContext) (Result, bool) {
	if len(ctx.queryParts) != 2 {
		return Result{}, false
	}

	best := -1
	bestSum := 0
	for i, parts := range ctx.parts {
		if len(parts) != 2 {
			continue
		}
		d1 := textdist.Levenshtein(ctx.queryParts[0], parts[0])
		if d1 > 2 {
			continue
		}
		d2 := textdist.Levenshtein(ctx.queryParts[1], parts[1])
		if d2 > 2 {
			continue
		}
		if best == -1 || d1+d2 < bestSum {
			best = i
			bestSum = d1 + d2
		}
	}

	if best == -1 {
		return Result{}, false
	}
	return ctx.result(best, 1.0-float64(bestSum)/10.0), true
}

// matchMultipartComposite scores every candidate against a multi-part
// query with the composite multi-part score and returns the best one
// above the acceptance threshold. Ties keep the earliest candidate.
func (e *Engine) matchMultipartComposite(ctx *searchContext) (Result, bool) {
	if len(ctx.queryParts) < 2 {
		return Result{}, false
	}

	best := -1
	bestScore := 0.0
	for i, c := range ctx.candidates {
		s := score.MultipartScore(ctx.rawQuery, c)
		if s > acceptThreshold && s > bestScore {
			best = i
			bestScore = s
		}
	}

	if best == -1 {
		return Result{}, false
	}
	return ctx.result(best, bestScore), true
}

// matchFallbackComposite is the last scoring pass, typically for
// single-token queries: the best single-part composite score of the
// query against any candidate part, with the remap boost applied when
// the token or one of its variants appears inside a candidate part.
func (e *Engine) matchFallbackComposite(ctx *searchContext) (Result, bool) {
	variants := e.tables.expandGiven(ctx.normQuery)

	best := -1
	bestScore := 0.0
	for i, parts := range ctx.parts {
		s := 0.0
		for _, p := range parts {
			if ws := score.WordScore(ctx.normQuery, p); ws > s {
				s = ws
			}
		}

		if s < remapBoostScore && containsVariant(parts, variants) {
			s = remapBoostScore
		}

		if s > acceptThreshold && s > bestScore {
			best = i
			bestScore = s
		}
	}

	if best == -1 {
		return Result{}, false
	}
	return ctx.result(best, bestScore), true
}

// remapBoostScore is the fixed confidence assigned when the query token
// or a remapped variant occurs inside a candidate part.
const remapBoostScore = 0.9

func containsVariant(parts []string, variants []string) bool {
	for _, p := range parts {
		for _, v := range variants {
			if strings.Contains(p, v) {
				return true
			}
		}
	}
	return false
}
