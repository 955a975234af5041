package types

// Pagination 列表分页元数据
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	LastPage    int   `json:"last_page"`
	Total       int64 `json:"total"`
	From        int   `json:"from"`
	To          int   `json:"to"`
}

func NewPagination(page, pageSize int, total int64) Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	lastPage := int((total + int64(pageSize) - 1) / int64(pageSize))
	if lastPage < 1 {
		lastPage = 1
	}

	from := (page-1)*pageSize + 1
	to := page * pageSize
	if int64(to) > total {
		to = int(total)
	}
	if total == 0 || int64(from) > total {
		from = 0
		to = 0
	}

	return Pagination{
		CurrentPage: page,
		PageSize:    pageSize,
		LastPage:    lastPage,
		Total:       total,
		From:        from,
		To:          to,
	}
}
