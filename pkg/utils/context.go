package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
)

const UserIDKey = "user_id"

// GetUserIDFromContext reads the user id the session middleware stored.
var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return 0, errors.New("user id not found in context")
	}

	userID, ok := value.(uint)
	if !ok {
		return 0, errors.New("invalid user id type in context")
	}
	return userID, nil
}
