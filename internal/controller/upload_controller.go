package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sahanr/inkpot/internal/storage"
	"github.com/sahanr/inkpot/internal/web"
)

// MaxUploadSize is the hard ceiling for a single uploaded file.
const MaxUploadSize = 10 << 20

// multipart framing overhead allowed on top of the file itself
const maxRequestSize = MaxUploadSize + 1<<20

var (
	errNoFile       = web.ApiError{Status: http.StatusBadRequest, Msg: "no file uploaded"}
	errFileTooLarge = web.ApiError{Status: http.StatusBadRequest, Msg: "file exceeds the 10MB limit"}
)

type UploadController struct {
	files storage.FileService
	auth  gin.HandlerFunc
}

func NewUploadController(files storage.FileService, auth gin.HandlerFunc) *UploadController {
	return &UploadController{
		files: files,
		auth:  auth,
	}
}

func (c *UploadController) Register(group *web.ControllerGroup) {
	protected := group.Group("", c.auth)
	protected.POST("", c.Upload)
}

type UploadResponse struct {
	URL              string `json:"url"`
	OriginalFilename string `json:"originalFilename"`
}

func (c *UploadController) Upload(ctx *gin.Context) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxRequestSize)

	file, err := ctx.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			web.SendError(ctx, errFileTooLarge)
			return
		}
		web.SendError(ctx, errNoFile)
		return
	}
	if file.Size > MaxUploadSize {
		web.SendError(ctx, errFileTooLarge)
		return
	}

	src, err := file.Open()
	if err != nil {
		web.SendError(ctx, err)
		return
	}
	defer src.Close()

	name := storage.GenerateName(file.Filename)
	if err := c.files.Save(ctx.Request.Context(), name, src); err != nil {
		web.SendError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, UploadResponse{
		URL:              c.files.PublicURL(name),
		OriginalFilename: file.Filename,
	})
}
