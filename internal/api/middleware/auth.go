package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/records-go/internal/repository"
	"github.com/linskybing/records-go/pkg/utils"
)

// AppKeyHeader carries the opaque session credential on every client call.
const AppKeyHeader = "X-App-Key"

type Auth struct {
	repos *repository.Repos
}

func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// SessionRequired resolves the credential to a user or aborts with an
// empty-body 401 before any handler work runs.
func (a *Auth) SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(AppKeyHeader)
		if key == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userID, err := a.repos.Session.FindUserIDByValue(key)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(utils.UserIDKey, userID)
		c.Next()
	}
}
