package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every action returns, success or not.
type Response struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Data    any                 `json:"data,omitempty"`
}

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: ListResponse[T]{
			Data:  data,
			Total: len(data),
		},
	})
}

// Invalid reports field-level validation errors without a mutation having
// been attempted.
func Invalid(c *gin.Context, errs map[string][]string) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Errors:  errs,
	})
}

func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Success: false,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Fail(c, http.StatusForbidden, message)
}

// Internal hides the original cause from the caller; it is logged upstream.
func Internal(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, message)
}
