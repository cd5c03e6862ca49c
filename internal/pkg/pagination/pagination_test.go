package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMeta(t *testing.T) {
	meta := GetMeta(&Params{Page: 2, Limit: 10}, 35)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.Limit)
	assert.EqualValues(t, 35, meta.Total)
	assert.Equal(t, 4, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
}

func TestGetMetaSinglePage(t *testing.T) {
	meta := GetMeta(&Params{Page: 1, Limit: 10}, 7)

	assert.Equal(t, 1, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}

func TestGetMetaEmpty(t *testing.T) {
	meta := GetMeta(&Params{Page: 1, Limit: 10}, 0)

	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
}
