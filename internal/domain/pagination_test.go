package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageRequest(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		want     PageRequest
	}{
		{name: "defaults when unset", page: 0, pageSize: 0, want: PageRequest{Page: 1, PageSize: 15}},
		{name: "explicit values kept", page: 3, pageSize: 20, want: PageRequest{Page: 3, PageSize: 20}},
		{name: "negative page clamped", page: -4, pageSize: 10, want: PageRequest{Page: 1, PageSize: 10}},
		{name: "negative page size clamped", page: 2, pageSize: -1, want: PageRequest{Page: 2, PageSize: 1}},
		{name: "page size capped", page: 1, pageSize: 5000, want: PageRequest{Page: 1, PageSize: 100}},
		{name: "page capped", page: MaxPage + 10, pageSize: 15, want: PageRequest{Page: MaxPage, PageSize: 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPageRequest(tt.page, tt.pageSize, 15, 100)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, int64(0), PageRequest{Page: 1, PageSize: 15}.Offset())
	assert.Equal(t, int64(5), PageRequest{Page: 2, PageSize: 5}.Offset())
	assert.Equal(t, int64(0), PageRequest{Page: 0, PageSize: 5}.Offset())

	// The largest page does not overflow.
	p := NewPageRequest(MaxPage, 100, 15, 100)
	assert.Equal(t, int64(MaxPage-1)*100, p.Offset())
	assert.Equal(t, int64(100), p.Limit())
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count    int64
		pageSize int
		want     int64
	}{
		{count: 0, pageSize: 15, want: 0},
		{count: 1, pageSize: 15, want: 1},
		{count: 15, pageSize: 15, want: 1},
		{count: 16, pageSize: 15, want: 2},
		{count: 12, pageSize: 5, want: 3},
		{count: 10, pageSize: 0, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.count, tt.pageSize), "count=%d pageSize=%d", tt.count, tt.pageSize)
	}
}
