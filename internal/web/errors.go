package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiError is an error that maps directly onto an HTTP response.
// The wire format for every error in the API is {"msg": "..."}.
type ApiError struct {
	Status int    `json:"-"`
	Msg    string `json:"msg"`
}

func (e ApiError) Error() string {
	return e.Msg
}

// New returns a copy of the error with its message formatted.
func (e ApiError) New(args ...any) ApiError {
	return ApiError{
		Status: e.Status,
		Msg:    fmt.Sprintf(e.Msg, args...),
	}
}

var ErrRouteNotFound = ApiError{Status: http.StatusNotFound, Msg: "API route not found"}

func SendError(c *gin.Context, err error) {
	var apiErr ApiError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"msg": apiErr.Msg})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal server error"})
}

func AbortWithError(c *gin.Context, err ApiError) {
	c.AbortWithStatusJSON(err.Status, gin.H{"msg": err.Msg})
}
