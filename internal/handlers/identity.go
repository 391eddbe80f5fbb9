package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dkurbatov/career-center/internal/entities"
	"github.com/dkurbatov/career-center/internal/logger"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const currentUserKey = "currentUser"

type userLookup interface {
	GetByID(ctx context.Context, id uint) (*entities.User, error)
}

// Identity resolves the caller from the X-User-ID header set by the
// authentication proxy in front of this service. A missing or malformed
// header and an unknown user id proceed anonymously; a store failure does
// not, since treating it as anonymity would silently narrow scoped reads.
func Identity(users userLookup) gin.HandlerFunc {
	return func(c *gin.Context) {

		header := c.GetHeader("X-User-ID")
		if header == "" {
			c.Next()
			return
		}

		id, err := strconv.ParseUint(header, 10, 32)
		if err != nil {
			c.Next()
			return
		}

		user, err := users.GetByID(c.Request.Context(), uint(id))
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
				Errorf("failed to resolve user %d: %v", id, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if user != nil {
			c.Set(currentUserKey, user)
		}
		c.Next()
	}
}

// currentUser returns nil for anonymous requests.
func currentUser(c *gin.Context) *entities.User {
	if value, ok := c.Get(currentUserKey); ok {
		if user, ok := value.(*entities.User); ok {
			return user
		}
	}
	return nil
}
