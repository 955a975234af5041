package handler

import (
	"fmt"
	"time"

	"IdeaHub/config"
	"IdeaHub/middleware"
	"IdeaHub/models"
	"IdeaHub/pkg/context"
	"IdeaHub/pkg/response"
	"IdeaHub/service"

	"github.com/gin-gonic/gin"
)

type Export struct {
	Config        *config.Config
	ExportService service.IExportService
}

func (h *Export) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	admin := middleware.RequireRole(models.RoleManager, models.RoleAdmin)

	g := r.Group("/export", authorize, admin)
	g.GET("/ideas/csv", context.Wrap(h.IdeasCSV))
	g.GET("/ideas/documents", context.Wrap(h.IdeasDocuments))
}

func (h *Export) IdeasCSV(c *gin.Context) error {
	name := fmt.Sprintf("ideas-%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)

	if err := h.ExportService.IdeasCSV(c.Request.Context(), c.Writer); err != nil {
		return response.NewError(500, err.Error())
	}
	return nil
}

func (h *Export) IdeasDocuments(c *gin.Context) error {
	name := fmt.Sprintf("idea-documents-%s.zip", time.Now().Format("20060102"))
	c.Header("Content-Type", "application/zip")
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)

	if err := h.ExportService.DocumentsZip(c.Request.Context(), c.Writer); err != nil {
		return response.NewError(500, err.Error())
	}
	return nil
}
