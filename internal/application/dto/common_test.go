package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageQuery_Normalize_Clamping(t *testing.T) {
	cases := []struct {
		name         string
		in           PageQuery
		defaultLimit int
		wantPage     int
		wantLimit    int
	}{
		{"defaults", PageQuery{}, 5, 1, 5},
		{"page negativa", PageQuery{Page: -2, Limit: 3}, 5, 1, 3},
		{"limit cero", PageQuery{Page: 4, Limit: 0}, 10, 4, 10},
		{"valores válidos intactos", PageQuery{Page: 2, Limit: 7}, 5, 2, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.in
			p.Normalize(tc.defaultLimit)
			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantLimit, p.Limit)
		})
	}
}

func TestPageQuery_Offset(t *testing.T) {
	p := PageQuery{Page: 3, Limit: 5}
	assert.Equal(t, 10, p.Offset(), "página 3 con limit 5 → offset 10")

	p = PageQuery{Page: 1, Limit: 10}
	assert.Equal(t, 0, p.Offset())
}

// TotalPages es ceil(total/limit): 7 elementos con limit 5 son 2 páginas.
func TestTotalPages(t *testing.T) {
	assert.Equal(t, 2, TotalPages(7, 5))
	assert.Equal(t, 1, TotalPages(5, 5))
	assert.Equal(t, 0, TotalPages(0, 5), "sin elementos no hay páginas")
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 0, TotalPages(3, 0), "limit inválido no divide por cero")
}
