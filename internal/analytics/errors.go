package analytics

import "errors"

var (
	// ErrNoData marks an empty filter context where a lookup has nothing
	// to resolve. Callers translate it into a no-value result.
	ErrNoData = errors.New("no trips in filter context")

	// ErrAmbiguousResult marks a lookup that matched several equally
	// ranked rows with conflicting answers. It is reported distinctly
	// instead of silently picking one.
	ErrAmbiguousResult = errors.New("ambiguous result")
)
