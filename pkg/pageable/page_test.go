package pageable_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/board-pagination/pkg/pageable"
)

func TestWrap_HoldsPayload(t *testing.T) {
	p := pageable.NewWithSize(2, 30, 10, 5)
	rows := []string{"k", "l", "m"}

	page := pageable.Wrap(p, rows)

	assert.Equal(t, p, page.Pageable())
	assert.Equal(t, rows, page.Data())
	// same backing array, no copy
	assert.Same(t, &rows[0], &page.Data()[0])
}

func TestWrap_AcceptsNilData(t *testing.T) {
	page := pageable.Wrap[[]int](pageable.New(1, 0), nil)
	assert.Nil(t, page.Data())

	raw, err := json.Marshal(page)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"data":null`)
}

func TestPage_MarshalJSON(t *testing.T) {
	type row struct {
		ID int `json:"id"`
	}
	page := pageable.Wrap(pageable.NewWithSize(1, 2, 10, 5), []row{{ID: 1}, {ID: 2}})

	raw, err := json.Marshal(page)
	require.NoError(t, err)

	var got struct {
		Pageable map[string]any `json:"pageable"`
		Data     []row          `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.EqualValues(t, 1, got.Pageable["total_page_count"])
	assert.EqualValues(t, 1, got.Pageable["end_page"])
	assert.Equal(t, []row{{ID: 1}, {ID: 2}}, got.Data)
}
