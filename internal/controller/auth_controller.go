package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sahanr/inkpot/internal/service"
	"github.com/sahanr/inkpot/internal/web"
)

var errWrongPassword = web.ApiError{Status: http.StatusUnauthorized, Msg: "wrong password"}

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

func (c *AuthController) Register(group *web.ControllerGroup) {
	group.POST("", c.Login)
}

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (c *AuthController) Login(ctx *gin.Context) {
	req, err := web.BuildRequest[LoginRequest](ctx)
	if err != nil {
		web.SendError(ctx, err)
		return
	}

	token, err := c.authService.Login(req.Password)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			web.SendError(ctx, errWrongPassword)
			return
		}
		web.SendError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}
