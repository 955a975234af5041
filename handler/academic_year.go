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

type AcademicYear struct {
	Config          *config.Config
	TaxonomyService service.ITaxonomyService
}

func (h *AcademicYear) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	admin := middleware.RequireRole(models.RoleManager, models.RoleAdmin)

	r.GET("/get/academicYears", context.Wrap(h.ListAcademicYears))
	r.POST("/add/academicYear", authorize, admin, context.Wrap(h.CreateAcademicYear))
	r.PUT("/update/academicYear/:id", authorize, admin, context.Wrap(h.UpdateAcademicYear))
	r.DELETE("/delete/academicYear/:id", authorize, admin, context.Wrap(h.DeleteAcademicYear))
}

func (h *AcademicYear) ListAcademicYears(c *gin.Context) error {
	items, err := h.TaxonomyService.ListAcademicYears(c.Request.Context())
	if err != nil {
		return response.NewError(500, err.Error())
	}
	response.Success(c, items)
	return nil
}

func (h *AcademicYear) CreateAcademicYear(c *gin.Context) error {
	var req types.CreateAcademicYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}

	id, err := h.TaxonomyService.CreateAcademicYear(c.Request.Context(), &req)
	if err != nil {
		return response.NewError(500, err.Error())
	}

	response.Success(c, types.CreateTaxonomyResponse{ID: id})
	return nil
}

func (h *AcademicYear) UpdateAcademicYear(c *gin.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req types.UpdateAcademicYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}

	if err := h.TaxonomyService.UpdateAcademicYear(c.Request.Context(), id, &req); err != nil {
		return response.NewError(500, err.Error())
	}

	response.Success(c, nil)
	return nil
}

func (h *AcademicYear) DeleteAcademicYear(c *gin.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.TaxonomyService.DeleteAcademicYear(c.Request.Context(), id); err != nil {
		return response.NewError(500, err.Error())
	}

	response.Success(c, nil)
	return nil
}
