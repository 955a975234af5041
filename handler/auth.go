package handler

import (
	"IdeaHub/pkg/context"
	"IdeaHub/pkg/response"
	"IdeaHub/service"
	"IdeaHub/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	UserService service.IUserService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/auth")
	g.POST("/register", context.Wrap(a.Register))
	g.POST("/login", context.Wrap(a.Login))
}

func (a *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}

	user, err := a.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return response.NewError(500, err.Error())
	}

	response.Success(c, types.UserProfile{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
	})
	return nil
}

func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}

	resp, err := a.UserService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		return response.NewError(401, err.Error())
	}

	response.Success(c, resp)
	return nil
}
