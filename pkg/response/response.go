package response

import (
	"errors"
	"net/http"

	"github.com/dimerryy/careplatform/backend/internal/repositories"
	"github.com/dimerryy/careplatform/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Response is the unified API response format.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a 200 OK response with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "ok",
		Data:    data,
	})
}

// Created sends a 201 response with the created record.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: "created",
		Data:    data,
	})
}

// BadRequest sends a 400 with a validation message.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Response{Code: 400, Message: msg})
}

// Error translates a repository error onto the HTTP boundary. Constraint
// violations map to client errors; connectivity to 503; anything unknown is
// logged and reported as an opaque 500 so raw storage errors never leak.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, Response{Code: 404, Message: "record not found"})
	case errors.Is(err, repositories.ErrDuplicateKey):
		c.JSON(http.StatusConflict, Response{Code: 409, Message: "record already exists"})
	case errors.Is(err, repositories.ErrForeignKeyViolation):
		c.JSON(http.StatusConflict, Response{Code: 409, Message: "referenced record does not exist"})
	case errors.Is(err, repositories.ErrValidation):
		c.JSON(http.StatusBadRequest, Response{Code: 400, Message: err.Error()})
	case errors.Is(err, repositories.ErrConnectivity):
		c.JSON(http.StatusServiceUnavailable, Response{Code: 503, Message: "database unavailable"})
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled storage error")
		c.JSON(http.StatusInternalServerError, Response{Code: 500, Message: "internal error"})
	}
}
