package handler

import (
	"IdeaHub/config"
	"IdeaHub/middleware"
	"IdeaHub/models"
	"IdeaHub/pkg/context"
	"IdeaHub/pkg/response"
	"IdeaHub/service"
	"IdeaHub/types"

	"github.com/gin-gonic/gin"
)

type Department struct {
	Config          *config.Config
	TaxonomyService service.ITaxonomyService
}

func (h *Department) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	admin := middleware.RequireRole(models.RoleManager, models.RoleAdmin)

	r.GET("/get/departments", context.Wrap(h.ListDepartments))
	r.POST("/add/department", authorize, admin, context.Wrap(h.CreateDepartment))
	r.PUT("/update/department/:id", authorize, admin, context.Wrap(h.UpdateDepartment))
	r.DELETE("/delete/department/:id", authorize, admin, context.Wrap(h.DeleteDepartment))
}

func (h *Department) ListDepartments(c *gin.Context) error {
	items, err := h.TaxonomyService.ListDepartments(c.Request.Context())
	if err != nil {
		return response.NewError(500, err.Error())
	}
	response.Success(c, items)
	return nil
}

func (h *Department) CreateDepartment(c *gin.Context) error {
	var req types.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}

	id, err := h.TaxonomyService.CreateDepartment(c.Request.Context(), &req)
	if err != nil {
		return response.NewError(500, err.Error())
	}

	response.Success(c, types.CreateTaxonomyResponse{ID: id})
	return nil
}

func (h *Department) UpdateDepartment(c *gin.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req types.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}

	if err := h.TaxonomyService.UpdateDepartment(c.Request.Context(), id, &req); err != nil {
		return response.NewError(500, err.Error())
	}

	response.Success(c, nil)
	return nil
}

func (h *Department) DeleteDepartment(c *gin.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.TaxonomyService.DeleteDepartment(c.Request.Context(), id); err != nil {
		return response.NewError(500, err.Error())
	}

	response.Success(c, nil)
	return nil
}
