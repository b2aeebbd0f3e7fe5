package pageable

import "encoding/json"

// Page pairs pagination metadata with the rows fetched for it.
// It holds the caller's data as-is; nothing is copied or validated.
type Page[T any] struct {
	pageable Pageable
	data     T
}

// Wrap builds a Page from a computed Pageable and the matching payload.
func Wrap[T any](p Pageable, data T) Page[T] {
	return Page[T]{pageable: p, data: data}
}

func (p Page[T]) Pageable() Pageable { return p.pageable }
func (p Page[T]) Data() T            { return p.data }

// MarshalJSON renders {"pageable": {...}, "data": ...}.
func (p Page[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Pageable Pageable `json:"pageable"`
		Data     T        `json:"data"`
	}{p.pageable, p.data})
}
