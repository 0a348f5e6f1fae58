package server

import (
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	documentdomain "github.com/burnproductions/billingdesk/internal/document/domain"
)

func parseID(c *gin.Context) (snowflake.ID, bool) {
	id, err := snowflake.ParseString(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return 0, false
	}
	return id, true
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter. The
// second result is false when the value is present but malformed.
func parseDateQuery(c *gin.Context, name string) (documentdomain.Date, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return documentdomain.Date{}, true
	}
	d, err := documentdomain.ParseDate(raw)
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return documentdomain.Date{}, false
	}
	return d, true
}

type statusRequest struct {
	Status string `json:"status"`
}
