package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pageza/pantrychef/backend/internal/apperror"
)

// Recovery turns a panicking handler into a generic JSON 500.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		zerolog.Ctx(c.Request.Context()).Error().
			Str("panic", fmt.Sprint(recovered)).
			Str("path", c.Request.URL.Path).
			Msg("recovered from panic")

		status, body := apperror.ResponseFor(apperror.New(apperror.CodeInternal, "panic"))
		c.AbortWithStatusJSON(status, body)
	})
}

// NotFound renders unknown routes with the standard error body.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, apperror.Response{
			Error: "route not found",
			Code:  apperror.CodeNotFound,
		})
	}
}
