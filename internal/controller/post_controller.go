package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sahanr/inkpot/internal/repository"
	"github.com/sahanr/inkpot/internal/service"
	"github.com/sahanr/inkpot/internal/web"
)

var (
	errPostNotFound  = web.ApiError{Status: http.StatusNotFound, Msg: "post not found"}
	errTitleRequired = web.ApiError{Status: http.StatusBadRequest, Msg: "title is required"}
)

type PostController struct {
	postService *service.PostService
	auth        gin.HandlerFunc
}

func NewPostController(postService *service.PostService, auth gin.HandlerFunc) *PostController {
	return &PostController{
		postService: postService,
		auth:        auth,
	}
}

func (c *PostController) Register(group *web.ControllerGroup) {
	group.GET("", c.ListPosts)
	group.GET("/:id", c.GetPost)

	protected := group.Group("", c.auth)
	protected.POST("", c.CreatePost)
	protected.PUT("/:id", c.UpdatePost)
	protected.DELETE("/:id", c.DeletePost)
}

type PostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (c *PostController) ListPosts(ctx *gin.Context) {
	posts, err := c.postService.ListPosts(ctx.Request.Context())
	if err != nil {
		web.SendError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, posts)
}

func (c *PostController) GetPost(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		web.SendError(ctx, errPostNotFound)
		return
	}

	post, err := c.postService.GetPost(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			web.SendError(ctx, errPostNotFound)
			return
		}
		web.SendError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, post)
}

func (c *PostController) CreatePost(ctx *gin.Context) {
	req, err := web.BuildRequest[PostRequest](ctx)
	if err != nil {
		web.SendError(ctx, err)
		return
	}

	post, err := c.postService.CreatePost(ctx.Request.Context(), req.Title, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			web.SendError(ctx, errTitleRequired)
			return
		}
		web.SendError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, post)
}

func (c *PostController) UpdatePost(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		web.SendError(ctx, errPostNotFound)
		return
	}

	req, err := web.BuildRequest[PostRequest](ctx)
	if err != nil {
		web.SendError(ctx, err)
		return
	}

	post, err := c.postService.UpdatePost(ctx.Request.Context(), id, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			web.SendError(ctx, errPostNotFound)
			return
		}
		web.SendError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, post)
}

// DeletePost always reports success: deleting an id that does not exist
// is a no-op.
func (c *PostController) DeletePost(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	if err := c.postService.DeletePost(ctx.Request.Context(), id); err != nil {
		web.SendError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
