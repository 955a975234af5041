package handler

import (
	"IdeaHub/config"
	"IdeaHub/middleware"
	"IdeaHub/models"
	"IdeaHub/pkg/context"
	"IdeaHub/pkg/response"
	"IdeaHub/service"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (h *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	moderator := middleware.RequireRole(models.RoleManager, models.RoleAdmin)

	r.POST("/blockUser/:id", authorize, moderator, context.Wrap(h.BlockUser))
	r.POST("/unblockUser/:id", authorize, moderator, context.Wrap(h.UnblockUser))
}

func (h *User) BlockUser(c *gin.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.UserService.Block(c.Request.Context(), userID); err != nil {
		return response.NewError(500, err.Error())
	}

	response.Success(c, nil)
	return nil
}

func (h *User) UnblockUser(c *gin.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.UserService.Unblock(c.Request.Context(), userID); err != nil {
		return response.NewError(500, err.Error())
	}

	response.Success(c, nil)
	return nil
}
