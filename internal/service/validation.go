package service

import "github.com/maxviazov/board-pagination/internal/config"

// PageDefaults is the host-side policy applied before pageable sees a request.
type PageDefaults struct {
	PageSize    int
	BlockSize   int
	MaxPageSize int
}

// PageDefaultsFrom copies the pagination section of the app config.
func PageDefaultsFrom(c config.PaginationConfig) PageDefaults {
	return PageDefaults{PageSize: c.PageSize, BlockSize: c.BlockSize, MaxPageSize: c.MaxPageSize}
}

// normalizePageRequest fills unset sizes from configured defaults and caps the page size.
// The page number is left alone; pageable normalizes it.
func normalizePageRequest(r PageRequest, d PageDefaults) PageRequest {
	if r.Size <= 0 {
		r.Size = d.PageSize
	}
	if r.Block <= 0 {
		r.Block = d.BlockSize
	}
	if d.MaxPageSize > 0 && r.Size > d.MaxPageSize {
		r.Size = d.MaxPageSize
	}
	return r
}

func runeLenBetween(s string, lo, hi int) bool {
	n := len([]rune(s))
	return n >= lo && n <= hi
}
