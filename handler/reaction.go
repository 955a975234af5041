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

type Reaction struct {
	Config          *config.Config
	ReactionService service.IReactionService
}

func (h *Reaction) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	r.POST("/createReaction", authorize, context.Wrap(h.CreateReaction))
	r.GET("/readReactionByIdeaId/:id", context.Wrap(h.ReadReactionByIdeaId))
}

func (h *Reaction) CreateReaction(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(401, err.Error())
	}

	var req types.CreateReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}

	changed, err := h.ReactionService.React(c.Request.Context(), userID, &req)
	if err != nil {
		return response.NewError(500, err.Error())
	}

	response.Success(c, gin.H{"changed": changed})
	return nil
}

func (h *Reaction) ReadReactionByIdeaId(c *gin.Context) error {
	ideaID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	items, err := h.ReactionService.ListByIdea(c.Request.Context(), ideaID)
	if err != nil {
		return response.NewError(500, err.Error())
	}

	response.Success(c, items)
	return nil
}
