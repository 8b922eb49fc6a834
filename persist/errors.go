package persist

import "errors"

// ErrNoBoundingRect is returned when encoding a graph whose bounding
// rectangle is empty (no nodes) — the CLI maps this to its "build
// error" exit code.
var ErrNoBoundingRect = errors.New("persist: graph has no bounding rectangle")
