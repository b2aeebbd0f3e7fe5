package repository

import "github.com/maxviazov/board-pagination/pkg/pageable"

// Window is the limit/offset pair a repository needs for one bounded fetch.
type Window struct {
	Limit  int
	Offset int
}

// WindowOf takes the fetch bounds straight from a computed Pageable.
// The offset is not clamped, so a page past the end yields an empty fetch.
func WindowOf(p pageable.Pageable) Window {
	return Window{Limit: p.Limit(), Offset: p.Offset()}
}
