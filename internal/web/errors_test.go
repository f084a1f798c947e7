package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSendError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "api error keeps its status and message",
			err:          ApiError{Status: http.StatusNotFound, Msg: "post not found"},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"msg":"post not found"}`,
		},
		{
			name:         "wrapped api error",
			err:          fmt.Errorf("handler: %w", ApiError{Status: http.StatusBadRequest, Msg: "title is required"}),
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"msg":"title is required"}`,
		},
		{
			name:         "unknown error becomes a 500",
			err:          errors.New("disk on fire"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"msg":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			SendError(c, tt.err)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestApiErrorNew(t *testing.T) {
	base := ApiError{Status: http.StatusBadRequest, Msg: "field %s is required"}
	err := base.New("title")

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "field title is required", err.Msg)
}
