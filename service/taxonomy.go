package service

import (
	"context"
	"errors"
	"time"

	"IdeaHub/dao"
	"IdeaHub/models"
	"IdeaHub/pkg/snowflake"
	"IdeaHub/types"
)

var _ ITaxonomyService = (*TaxonomyService)(nil)

// ITaxonomyService 分类 / 院系 / 学年的后台配置
type ITaxonomyService interface {
	ListCategories(ctx context.Context) ([]*models.Category, error)
	CreateCategory(ctx context.Context, req *types.CreateCategoryRequest) (uint64, error)
	UpdateCategory(ctx context.Context, id uint64, req *types.UpdateCategoryRequest) error
	DeleteCategory(ctx context.Context, id uint64) error

	ListDepartments(ctx context.Context) ([]*models.Department, error)
	CreateDepartment(ctx context.Context, req *types.CreateDepartmentRequest) (uint64, error)
	UpdateDepartment(ctx context.Context, id uint64, req *types.UpdateDepartmentRequest) error
	DeleteDepartment(ctx context.Context, id uint64) error

	ListAcademicYears(ctx context.Context) ([]*models.AcademicYear, error)
	CreateAcademicYear(ctx context.Context, req *types.CreateAcademicYearRequest) (uint64, error)
	UpdateAcademicYear(ctx context.Context, id uint64, req *types.UpdateAcademicYearRequest) error
	DeleteAcademicYear(ctx context.Context, id uint64) error
}

type TaxonomyService struct {
	CategoryDAO   *dao.Category
	DepartmentDAO *dao.Department
	YearDAO       *dao.AcademicYear
	IdeaDAO       *dao.IdeaDAO
}

func (s *TaxonomyService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return s.CategoryDAO.ListActive(ctx)
}

func (s *TaxonomyService) CreateCategory(ctx context.Context, req *types.CreateCategoryRequest) (uint64, error) {
	exist, err := s.CategoryDAO.FindByName(ctx, req.Name)
	if err != nil {
		return 0, err
	}
	if exist != nil {
		// 同名分类直接复用
		return exist.ID, nil
	}

	now := time.Now()
	category := &models.Category{
		ID:          uint64(snowflake.GenID()),
		Name:        req.Name,
		Description: req.Description,
		Status:      1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.CategoryDAO.Create(ctx, category); err != nil {
		return 0, err
	}
	return category.ID, nil
}

func (s *TaxonomyService) UpdateCategory(ctx context.Context, id uint64, req *types.UpdateCategoryRequest) error {
	data := map[string]any{"updated_at": time.Now()}
	if req.Name != "" {
		data["name"] = req.Name
	}
	if req.Description != "" {
		data["description"] = req.Description
	}
	return s.CategoryDAO.UpdateById(ctx, id, data)
}

// DeleteCategory 停用分类, 分类下还有可见创意时拒绝
func (s *TaxonomyService) DeleteCategory(ctx context.Context, id uint64) error {
	used, err := s.IdeaDAO.IsExist(ctx, "category_id = ? AND status = ?", id, models.IdeaStatusVisible)
	if err != nil {
		return err
	}
	if used {
		return errors.New("分类下仍有创意, 不能删除")
	}
	return s.CategoryDAO.UpdateById(ctx, id, map[string]any{"status": 0})
}

func (s *TaxonomyService) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.DepartmentDAO.ListActive(ctx)
}

func (s *TaxonomyService) CreateDepartment(ctx context.Context, req *types.CreateDepartmentRequest) (uint64, error) {
	now := time.Now()
	department := &models.Department{
		ID:            uint64(snowflake.GenID()),
		Name:          req.Name,
		CoordinatorID: req.CoordinatorID,
		Status:        1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.DepartmentDAO.Create(ctx, department); err != nil {
		return 0, err
	}
	return department.ID, nil
}

func (s *TaxonomyService) UpdateDepartment(ctx context.Context, id uint64, req *types.UpdateDepartmentRequest) error {
	data := map[string]any{"updated_at": time.Now()}
	if req.Name != "" {
		data["name"] = req.Name
	}
	if req.CoordinatorID != 0 {
		data["coordinator_id"] = req.CoordinatorID
	}
	return s.DepartmentDAO.UpdateById(ctx, id, data)
}

func (s *TaxonomyService) DeleteDepartment(ctx context.Context, id uint64) error {
	return s.DepartmentDAO.UpdateById(ctx, id, map[string]any{"status": 0})
}

func (s *TaxonomyService) ListAcademicYears(ctx context.Context) ([]*models.AcademicYear, error) {
	return s.YearDAO.ListActive(ctx)
}

func (s *TaxonomyService) CreateAcademicYear(ctx context.Context, req *types.CreateAcademicYearRequest) (uint64, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return 0, errors.New("start_date 格式错误")
	}
	closure, err := time.Parse("2006-01-02", req.ClosureDate)
	if err != nil {
		return 0, errors.New("closure_date 格式错误")
	}
	final, err := time.Parse("2006-01-02", req.FinalClosureDate)
	if err != nil {
		return 0, errors.New("final_closure_date 格式错误")
	}
	if !start.Before(closure) || !closure.Before(final) {
		return 0, errors.New("学年日期必须满足 开始 < 截止 < 最终截止")
	}

	now := time.Now()
	year := &models.AcademicYear{
		ID:               uint64(snowflake.GenID()),
		Name:             req.Name,
		StartDate:        start,
		ClosureDate:      closure,
		FinalClosureDate: final,
		Status:           1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.YearDAO.Create(ctx, year); err != nil {
		return 0, err
	}
	return year.ID, nil
}

// parseYearDate 空值保留原值
func parseYearDate(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	return time.Parse("2006-01-02", value)
}

// UpdateAcademicYear 改名或调整日期, 未填的日期沿用原值, 整体仍需满足顺序约束
func (s *TaxonomyService) UpdateAcademicYear(ctx context.Context, id uint64, req *types.UpdateAcademicYearRequest) error {
	year, err := s.YearDAO.FindByWhere(ctx, "id = ?", id)
	if err != nil {
		return errors.New("学年不存在")
	}

	start, err := parseYearDate(req.StartDate, year.StartDate)
	if err != nil {
		return errors.New("start_date 格式错误")
	}
	closure, err := parseYearDate(req.ClosureDate, year.ClosureDate)
	if err != nil {
		return errors.New("closure_date 格式错误")
	}
	final, err := parseYearDate(req.FinalClosureDate, year.FinalClosureDate)
	if err != nil {
		return errors.New("final_closure_date 格式错误")
	}
	if !start.Before(closure) || !closure.Before(final) {
		return errors.New("学年日期必须满足 开始 < 截止 < 最终截止")
	}

	data := map[string]any{
		"start_date":         start,
		"closure_date":       closure,
		"final_closure_date": final,
		"updated_at":         time.Now(),
	}
	if req.Name != "" {
		data["name"] = req.Name
	}
	return s.YearDAO.UpdateById(ctx, id, data)
}

func (s *TaxonomyService) DeleteAcademicYear(ctx context.Context, id uint64) error {
	used, err := s.IdeaDAO.IsExist(ctx, "academic_year_id = ? AND status = ?", id, models.IdeaStatusVisible)
	if err != nil {
		return err
	}
	if used {
		return errors.New("学年下仍有创意, 不能删除")
	}
	return s.YearDAO.UpdateById(ctx, id, map[string]any{"status": 0})
}
