// Package pageable computes page-number pagination metadata: page bounds,
// prev/next links and the "block" of page numbers a pagination bar shows.
// Everything is derived once in the constructor; a Pageable is read-only afterwards
// and safe to share between goroutines.
package pageable

import (
	"encoding/json"
	"fmt"
)

const (
	// DefaultPageSize is used when the requested page size is not positive.
	DefaultPageSize = 10
	// DefaultBlockSize is used when the requested block size is not positive.
	DefaultBlockSize = 5
)

// Pageable is the result of a pagination computation.
type Pageable struct {
	page       int
	totalCount int
	pageSize   int
	blockSize  int

	totalPageCount  int
	totalBlockCount int
	block           int

	startPage int
	endPage   int
	firstPage int
	lastPage  int
	prevPage  int
	nextPage  int

	prevBlock    int
	nextBlock    int
	hasPrevBlock bool
	hasNextBlock bool

	offset int
	limit  int
}

// New computes pagination for page with the default page and block sizes.
func New(page, totalCount int) Pageable {
	return compute(page, totalCount, DefaultPageSize, DefaultBlockSize)
}

// NewWithSize computes pagination with explicit sizes. A pageSize or blockSize
// that is zero or negative silently falls back to its default.
func NewWithSize(page, totalCount, pageSize, blockSize int) Pageable {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return compute(page, totalCount, pageSize, blockSize)
}

// compute expects pageSize and blockSize to be >= 1.
// Neither block nor offset is clamped against the page count: a page past the end
// keeps its own block number and offset, and callers get an empty fetch.
func compute(page, totalCount, pageSize, blockSize int) Pageable {
	var p Pageable
	if page <= 0 {
		page = 1
	}
	p.page = page
	p.totalCount = totalCount
	p.pageSize = pageSize
	p.blockSize = blockSize

	p.totalPageCount = ceilDiv(totalCount, pageSize)
	p.totalBlockCount = ceilDiv(p.totalPageCount, blockSize)
	p.block = ceilDiv(page, blockSize)

	p.startPage = (p.block-1)*blockSize + 1
	p.endPage = p.startPage - 1 + blockSize
	if p.endPage >= p.totalPageCount {
		p.endPage = p.totalPageCount
	}
	// an empty result still renders a single page link
	if p.totalPageCount == 0 {
		p.endPage = 1
	}

	p.firstPage = 1
	p.lastPage = p.totalPageCount

	p.prevPage = page - 1
	if p.prevPage < 1 {
		p.prevPage = 1
	}
	p.nextPage = page + 1
	if p.totalPageCount < p.nextPage {
		p.nextPage = p.totalPageCount
	}

	p.prevBlock = (p.block-2)*blockSize + 1
	if p.prevBlock < 1 {
		p.prevBlock = 1
	}
	p.hasPrevBlock = p.block > 1

	p.nextBlock = p.block*blockSize + 1
	if p.nextBlock > p.totalPageCount {
		p.nextBlock = p.totalPageCount
	}
	p.hasNextBlock = p.totalBlockCount > p.block

	p.offset = (page - 1) * pageSize
	p.limit = pageSize
	return p
}

// ceilDiv rounds n/d up for d > 0. Integer division truncates toward zero,
// so a negative numerator already lands on its ceiling.
func ceilDiv(n, d int) int {
	q := n / d
	if n%d > 0 {
		q++
	}
	return q
}

func (p Pageable) Page() int            { return p.page }
func (p Pageable) TotalCount() int      { return p.totalCount }
func (p Pageable) PageSize() int        { return p.pageSize }
func (p Pageable) BlockSize() int       { return p.blockSize }
func (p Pageable) TotalPageCount() int  { return p.totalPageCount }
func (p Pageable) TotalBlockCount() int { return p.totalBlockCount }
func (p Pageable) Block() int           { return p.block }
func (p Pageable) StartPage() int       { return p.startPage }
func (p Pageable) EndPage() int         { return p.endPage }
func (p Pageable) FirstPage() int       { return p.firstPage }
func (p Pageable) LastPage() int        { return p.lastPage }
func (p Pageable) PrevPage() int        { return p.prevPage }
func (p Pageable) NextPage() int        { return p.nextPage }
func (p Pageable) PrevBlock() int       { return p.prevBlock }
func (p Pageable) NextBlock() int       { return p.nextBlock }
func (p Pageable) HasPrevBlock() bool   { return p.hasPrevBlock }
func (p Pageable) HasNextBlock() bool   { return p.hasNextBlock }

// Offset is the zero-based index of the first item on the page.
func (p Pageable) Offset() int { return p.offset }

// Limit is the number of items to fetch for the page. It always equals PageSize.
func (p Pageable) Limit() int { return p.limit }

// Pages lists the page numbers of the current block, StartPage through EndPage.
// A page past the last block yields an empty slice.
func (p Pageable) Pages() []int {
	if p.endPage < p.startPage {
		return []int{}
	}
	out := make([]int, 0, p.endPage-p.startPage+1)
	for n := p.startPage; n <= p.endPage; n++ {
		out = append(out, n)
	}
	return out
}

// view is the wire shape of a Pageable.
type view struct {
	Page            int  `json:"page"`
	TotalCount      int  `json:"total_count"`
	PageSize        int  `json:"page_size"`
	BlockSize       int  `json:"block_size"`
	TotalPageCount  int  `json:"total_page_count"`
	TotalBlockCount int  `json:"total_block_count"`
	Block           int  `json:"block"`
	StartPage       int  `json:"start_page"`
	EndPage         int  `json:"end_page"`
	FirstPage       int  `json:"first_page"`
	LastPage        int  `json:"last_page"`
	PrevPage        int  `json:"prev_page"`
	NextPage        int  `json:"next_page"`
	PrevBlock       int  `json:"prev_block"`
	NextBlock       int  `json:"next_block"`
	HasPrevBlock    bool `json:"has_prev_block"`
	HasNextBlock    bool `json:"has_next_block"`
	Offset          int  `json:"offset"`
	Limit           int  `json:"limit"`
}

// MarshalJSON implements json.Marshaler.
func (p Pageable) MarshalJSON() ([]byte, error) {
	return json.Marshal(view{
		Page:            p.page,
		TotalCount:      p.totalCount,
		PageSize:        p.pageSize,
		BlockSize:       p.blockSize,
		TotalPageCount:  p.totalPageCount,
		TotalBlockCount: p.totalBlockCount,
		Block:           p.block,
		StartPage:       p.startPage,
		EndPage:         p.endPage,
		FirstPage:       p.firstPage,
		LastPage:        p.lastPage,
		PrevPage:        p.prevPage,
		NextPage:        p.nextPage,
		PrevBlock:       p.prevBlock,
		NextBlock:       p.nextBlock,
		HasPrevBlock:    p.hasPrevBlock,
		HasNextBlock:    p.hasNextBlock,
		Offset:          p.offset,
		Limit:           p.limit,
	})
}

func (p Pageable) String() string {
	return fmt.Sprintf("Pageable{page=%d total=%d pages=%d block=%d/%d range=%d-%d offset=%d limit=%d}",
		p.page, p.totalCount, p.totalPageCount, p.block, p.totalBlockCount,
		p.startPage, p.endPage, p.offset, p.limit)
}
