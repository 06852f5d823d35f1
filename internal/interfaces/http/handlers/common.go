// Package handlers implements the HTTP endpoints of the API server.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/takweol/casematch/pkg/errors"
	"github.com/takweol/casematch/pkg/types/consultation"
)

// respondError writes the uniform error envelope, mapping the application
// error code to an HTTP status.
func respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	body := consultation.ErrorResponse{
		Code:    int(code),
		Message: err.Error(),
	}
	if appErr, ok := err.(*errors.AppError); ok {
		body.Message = appErr.Message
		body.Detail = appErr.Detail
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(code.HTTPStatus(), body)
}

// queryInt parses an integer query parameter, falling back to def on absence
// or garbage.
func queryInt(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
