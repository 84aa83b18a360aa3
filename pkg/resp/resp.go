// Package resp is the single boundary between business errors and HTTP.
// Success bodies pass through untouched; failures are mapped to the
// uniform `{error, message, request_id}` envelope with the message
// localized from the request's Accept-Language.
package resp

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/i18n"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/pkg/apperr"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/utils"
)

func OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

func Created(c *gin.Context, body any) {
	c.JSON(http.StatusCreated, body)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error translates err into the error envelope and aborts the request.
// Unclassified errors become 500 INTERNAL_ERROR; their detail goes to
// the log only.
func Error(c *gin.Context, err error) {
	lang := i18n.FromAcceptLanguage(c.GetHeader("Accept-Language"))
	reqID := utils.RequestID(c)

	var ae *apperr.Error
	if !errors.As(err, &ae) {
		ae = apperr.ErrInternal.Wrap(err)
	}

	if ae.Status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"error", err.Error(),
			"code", ae.Code,
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
	}

	c.AbortWithStatusJSON(ae.Status, gin.H{
		"error":      ae.Code,
		"message":    i18n.T(lang, ae.MessageKey()),
		"request_id": reqID,
	})
}
