package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/foodgram/internal/config"
	"github.com/BruksfildServices01/foodgram/internal/dto"
	"github.com/BruksfildServices01/foodgram/internal/httperr"
	"github.com/BruksfildServices01/foodgram/internal/middleware"
	"github.com/BruksfildServices01/foodgram/internal/storage"
)

// pathID reads a numeric path parameter. Anything else is a 404, the same
// as an id that matches nothing.
func pathID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		httperr.NotFoundJSON(c, "not_found", "Not found.")
		return 0, false
	}
	return uint(v), true
}

// currentUserID is only called behind RequireAuth.
func currentUserID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}

// MediaURL resolves storage keys to absolute URLs under the public origin.
func MediaURL(cfg *config.Config, images *storage.Uploader) dto.MediaURL {
	return func(key string) string {
		if key == "" {
			return ""
		}
		return cfg.AbsoluteURL(images.URL(key))
	}
}
