package types

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=64"`
	Description string `json:"description" binding:"max=255"`
}

type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"max=64"`
	Description string `json:"description" binding:"max=255"`
}

type CreateDepartmentRequest struct {
	Name          string `json:"name" binding:"required,max=64"`
	CoordinatorID uint64 `json:"coordinator_id,string"`
}

type UpdateDepartmentRequest struct {
	Name          string `json:"name" binding:"max=64"`
	CoordinatorID uint64 `json:"coordinator_id,string"`
}

// 日期用 2006-01-02 格式的字符串
type CreateAcademicYearRequest struct {
	Name             string `json:"name" binding:"required,max=32"`
	StartDate        string `json:"start_date" binding:"required"`
	ClosureDate      string `json:"closure_date" binding:"required"`
	FinalClosureDate string `json:"final_closure_date" binding:"required"`
}

// 未填写的日期字段保留原值
type UpdateAcademicYearRequest struct {
	Name             string `json:"name" binding:"max=32"`
	StartDate        string `json:"start_date"`
	ClosureDate      string `json:"closure_date"`
	FinalClosureDate string `json:"final_closure_date"`
}

type CreateTaxonomyResponse struct {
	ID uint64 `json:"id,string"`
}
