package dao

import "testing"

func TestSortClause(t *testing.T) {
	cases := []struct {
		sortBy string
		want   string
	}{
		{SortByLatest, "ideas.created_at DESC"},
		{SortByViewCount, "idea_stats.view_count DESC, ideas.created_at DESC"},
		{SortByPopularity, "idea_stats.popularity DESC, ideas.created_at DESC"},
		{SortByTitle, "ideas.title ASC"},
		{"", "ideas.created_at DESC"},
		{"whatever", "ideas.created_at DESC"},
	}
	for _, c := range cases {
		if got := SortClause(c.sortBy); got != c.want {
			t.Errorf("SortClause(%q) = %q, want %q", c.sortBy, got, c.want)
		}
	}
}
