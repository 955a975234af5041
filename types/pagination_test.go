package types

import "testing"

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		total    int64
		lastPage int
		from     int
		to       int
	}{
		{"first page full", 1, 10, 35, 4, 1, 10},
		{"last partial page", 4, 10, 35, 4, 31, 35},
		{"empty result", 1, 10, 0, 1, 0, 0},
		{"page beyond range", 9, 10, 35, 4, 0, 0},
		{"exact boundary", 2, 10, 20, 2, 11, 20},
		{"page normalized to 1", 0, 10, 5, 1, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.pageSize, tt.total)
			if p.LastPage != tt.lastPage {
				t.Errorf("last_page = %d, want %d", p.LastPage, tt.lastPage)
			}
			if p.From != tt.from || p.To != tt.to {
				t.Errorf("bounds = [%d, %d], want [%d, %d]", p.From, p.To, tt.from, tt.to)
			}
			if p.Total != tt.total {
				t.Errorf("total = %d, want %d", p.Total, tt.total)
			}
		})
	}
}
