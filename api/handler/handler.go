// Package handler implements the JSON API handlers. Every failure is
// rendered through the apperr taxonomy as {error: true, errorMessage}.
package handler

import (
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/codetrail/codetrail/apperr"
	"github.com/codetrail/codetrail/database"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	db *database.DB
}

func New(db *database.DB) *Handler {
	return &Handler{db: db}
}

// respondError renders err through the apperr taxonomy. Errors outside
// the taxonomy are logged and collapsed into "Something went wrong".
func respondError(c *gin.Context, err error) {
	appErr := apperr.From(err)
	if appErr.Kind == apperr.KindInternal {
		log.Error("Request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
	}
	c.JSON(appErr.Status(), gin.H{
		"error":        true,
		"errorMessage": appErr.Message,
	})
}

// paramID parses a numeric path parameter. entity names the resource
// for the "Invalid X Id" message.
func paramID(c *gin.Context, name, entity string) (uint, *apperr.Error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, apperr.InvalidID(entity)
	}
	return uint(id), nil
}

// bindInput decodes the body into in, tolerating malformed bodies: the
// validation pass that follows every bind reports the missing fields
// with catalog messages, which beats a raw decode error.
func bindInput(c *gin.Context, in any) {
	_ = c.ShouldBindJSON(in)
}
