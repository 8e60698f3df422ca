package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewParams(t *testing.T) {
	p := NewParams(3, 10)
	assert.Equal(t, Params{Page: 3, Limit: 10, Offset: 20}, p)

	p = NewParams(0, 0)
	assert.Equal(t, Params{Page: 1, Limit: DefaultLimit, Offset: 0}, p)

	p = NewParams(1, 1000)
	assert.Equal(t, MaxLimit, p.Limit)
}

func TestGetMeta(t *testing.T) {
	meta := GetMeta(NewParams(2, 20), 45)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	meta = GetMeta(NewParams(1, 20), 0)
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}
