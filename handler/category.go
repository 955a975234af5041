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

type Category struct {
	Config          *config.Config
	TaxonomyService service.ITaxonomyService
}

func (h *Category) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	admin := middleware.RequireRole(models.RoleManager, models.RoleAdmin)

	r.GET("/get/categories", context.Wrap(h.ListCategories))
	r.POST("/add/category", authorize, admin, context.Wrap(h.CreateCategory))
	r.PUT("/update/category/:id", authorize, admin, context.Wrap(h.UpdateCategory))
	r.DELETE("/delete/category/:id", authorize, admin, context.Wrap(h.DeleteCategory))
}

func (h *Category) ListCategories(c *gin.Context) error {
	items, err := h.TaxonomyService.ListCategories(c.Request.Context())
	if err != nil {
		return response.NewError(500, err.Error())
	}
	response.Success(c, items)
	return nil
}

func (h *Category) CreateCategory(c *gin.Context) error {
	var req types.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}

	id, err := h.TaxonomyService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		return response.NewError(500, err.Error())
	}

	response.Success(c, types.CreateTaxonomyResponse{ID: id})
	return nil
}

func (h *Category) UpdateCategory(c *gin.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req types.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}

	if err := h.TaxonomyService.UpdateCategory(c.Request.Context(), id, &req); err != nil {
		return response.NewError(500, err.Error())
	}

	response.Success(c, nil)
	return nil
}

func (h *Category) DeleteCategory(c *gin.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.TaxonomyService.DeleteCategory(c.Request.Context(), id); err != nil {
		return response.NewError(500, err.Error())
	}

	response.Success(c, nil)
	return nil
}
