package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/utils"
)

// RequestID tags every request with a correlation id. An inbound
// X-Request-Id is honored when it parses as a UUID; anything else is
// replaced so log lines never carry attacker-chosen ids.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		c.Set(utils.CtxRequestID, id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}
