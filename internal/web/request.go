package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var errBadRequestBody = ApiError{Status: http.StatusBadRequest, Msg: "invalid request body"}

// BuildRequest binds the JSON body into a typed request struct.
func BuildRequest[T any](c *gin.Context) (T, error) {
	var request T
	if err := c.ShouldBindJSON(&request); err != nil {
		return request, errBadRequestBody
	}
	return request, nil
}
