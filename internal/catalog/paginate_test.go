package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	list := make([]int, 20)
	for i := range list {
		list[i] = i
	}

	tests := []struct {
		name       string
		pageSize   int
		pageNumber int
		want       []int
	}{
		{"first page", 8, 1, []int{0, 1, 2, 3, 4, 5, 6, 7}},
		{"middle page", 8, 2, []int{8, 9, 10, 11, 12, 13, 14, 15}},
		{"short last page", 8, 3, []int{16, 17, 18, 19}},
		{"past the end", 8, 4, []int{}},
		{"zero page size", 0, 1, []int{}},
		{"zero page number", 8, 0, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(list, tt.pageSize, tt.pageNumber))
		})
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		name     string
		listLen  int
		pageSize int
		want     int
	}{
		{"empty list", 0, 8, 0},
		{"exact fit", 16, 8, 2},
		{"remainder rounds up", 20, 8, 3},
		{"single short page", 3, 8, 1},
		{"zero page size", 20, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageCount(make([]int, tt.listLen), tt.pageSize))
		})
	}
}
