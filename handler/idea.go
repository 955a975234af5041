package handler

import (
	"mime/multipart"
	"strconv"

	"IdeaHub/config"
	"IdeaHub/middleware"
	"IdeaHub/pkg/context"
	"IdeaHub/pkg/response"
	"IdeaHub/service"
	"IdeaHub/types"

	"github.com/gin-gonic/gin"
)

type Idea struct {
	Config         *config.Config
	IdeaService    service.IIdeaService
	CommentService service.ICommentService
}

func (h *Idea) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	r.GET("/get/ideas", context.Wrap(h.ListIdeas))
	r.GET("/get/ideas/user/:userId", context.Wrap(h.ListUserIdeas))
	r.GET("/get/idea/:id/details", context.Wrap(h.IdeaDetails))

	r.POST("/submit/idea", authorize, context.Wrap(h.SubmitIdea))
	r.DELETE("/delete/idea/:id", authorize, context.Wrap(h.DeleteIdea))
	r.POST("/report/idea/:id", authorize, context.Wrap(h.ReportIdea))
	r.POST("/view/idea/:id", authorize, context.Wrap(h.ViewIdea))
}

func parseID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(400, "参数 "+name+" 非法")
	}
	return id, nil
}

func (h *Idea) ListIdeas(c *gin.Context) error {
	opt, err := h.listOpt(c)
	if err != nil {
		return err
	}

	resp, err := h.IdeaService.List(c.Request.Context(), opt)
	if err != nil {
		return response.NewError(500, err.Error())
	}

	response.Success(c, resp)
	return nil
}

func (h *Idea) ListUserIdeas(c *gin.Context) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}

	opt, err := h.listOpt(c)
	if err != nil {
		return err
	}
	opt.UserID = userID

	resp, err := h.IdeaService.List(c.Request.Context(), opt)
	if err != nil {
		return response.NewError(500, err.Error())
	}

	response.Success(c, resp)
	return nil
}

func (h *Idea) listOpt(c *gin.Context) (service.ListIdeasOpt, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	categoryID, _ := strconv.ParseUint(c.Query("categoryId"), 10, 64)

	return service.ListIdeasOpt{
		SortBy:     c.DefaultQuery("sortBy", "latest"),
		CategoryID: categoryID,
		Keyword:    c.Query("keyword"),
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func (h *Idea) IdeaDetails(c *gin.Context) error {
	ideaID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.IdeaService.Detail(c.Request.Context(), ideaID)
	if err != nil {
		return response.NewError(404, err.Error())
	}

	comments, err := h.CommentService.ListByIdea(c.Request.Context(), ideaID)
	if err != nil {
		return response.NewError(500, err.Error())
	}
	detail.Comments = comments

	response.Success(c, detail)
	return nil
}

func (h *Idea) SubmitIdea(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(401, err.Error())
	}

	var req types.SubmitIdeaRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.NewError(400, err.Error())
	}

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files = form.File["files[]"]
		if len(files) == 0 {
			files = form.File["files"]
		}
	}

	resp, err := h.IdeaService.Submit(c.Request.Context(), userID, &req, files)
	if err != nil {
		return response.NewError(500, err.Error())
	}

	response.Success(c, resp)
	return nil
}

func (h *Idea) DeleteIdea(c *gin.Context) error {
	ideaID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(401, err.Error())
	}

	if err := h.IdeaService.Delete(c.Request.Context(), ideaID, userID, context.GetRole(c)); err != nil {
		return response.NewError(403, err.Error())
	}

	response.Success(c, nil)
	return nil
}

func (h *Idea) ReportIdea(c *gin.Context) error {
	ideaID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(401, err.Error())
	}

	var req types.ReportIdeaRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.IdeaService.Report(c.Request.Context(), ideaID, userID, req.Reason); err != nil {
		return response.NewError(500, err.Error())
	}

	response.Success(c, nil)
	return nil
}

func (h *Idea) ViewIdea(c *gin.Context) error {
	ideaID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(401, err.Error())
	}

	if err := h.IdeaService.IncrementView(c.Request.Context(), ideaID, userID); err != nil {
		return response.NewError(500, err.Error())
	}

	response.Success(c, nil)
	return nil
}
