package handler

import (
	"IdeaHub/config"
	"IdeaHub/middleware"
	"IdeaHub/pkg/context"
	"IdeaHub/pkg/response"
	"IdeaHub/service"
	"IdeaHub/types"

	"github.com/gin-gonic/gin"
)

type Comment struct {
	Config         *config.Config
	CommentService service.ICommentService
}

func (h *Comment) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	r.POST("/add/ideas/:id/comment", authorize, context.Wrap(h.AddComment))
	r.GET("/get/ideas/:id/comments", context.Wrap(h.ListComments))
}

func (h *Comment) AddComment(c *gin.Context) error {
	ideaID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(401, err.Error())
	}

	var req types.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}

	comment, err := h.CommentService.Add(c.Request.Context(), userID, ideaID, &req)
	if err != nil {
		return response.NewError(500, err.Error())
	}

	response.Success(c, comment)
	return nil
}

func (h *Comment) ListComments(c *gin.Context) error {
	ideaID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	comments, err := h.CommentService.ListByIdea(c.Request.Context(), ideaID)
	if err != nil {
		return response.NewError(500, err.Error())
	}

	response.Success(c, comments)
	return nil
}
