package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/stockroom/internal/api/middleware"
	"github.com/jafarshop/stockroom/pkg/errors"
)

// missingFieldsMessage is the body existing dashboard clients expect when
// a create request omits a required field.
const missingFieldsMessage = "Missing required fields"

// respondError maps domain errors to status codes. Anything unexpected is
// logged and reported as a generic 500.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var notFound *errors.ErrNotFound
	var validation *errors.ErrValidation

	switch {
	case stderrors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMessage(notFound.Resource)})
	case stderrors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	default:
		logger.Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func respondBadBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "invalid request body",
		"details": err.Error(),
	})
}

// notFoundMessage renders "product" as "Product not found".
func notFoundMessage(resource string) string {
	if resource == "" {
		return "not found"
	}
	return strings.ToUpper(resource[:1]) + resource[1:] + " not found"
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
