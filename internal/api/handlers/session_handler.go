package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/records-go/internal/api/middleware"
	"github.com/linskybing/records-go/internal/application"
	"github.com/linskybing/records-go/internal/domain/session"
	"github.com/linskybing/records-go/pkg/response"
)

type SessionHandler struct {
	svc *application.SessionService
}

func NewSessionHandler(svc *application.SessionService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// Login godoc
// @Summary Create a session
// @Tags session
// @Accept json
// @Produce json
// @Param input body session.LoginInput true "Credentials"
// @Success 200 {object} session.LoginResponse "Session token"
// @Failure 400 "Invalid input"
// @Failure 401 "Invalid username or password"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/client/session [post]
func (h *SessionHandler) Login(c *gin.Context) {
	var input session.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, err := h.svc.Login(input)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			c.Status(http.StatusUnauthorized)
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, session.LoginResponse{Token: token})
}

// Logout godoc
// @Summary Delete the current session
// @Tags session
// @Produce json
// @Success 200 {object} response.MessageResponse "Logout successful"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/client/session [delete]
func (h *SessionHandler) Logout(c *gin.Context) {
	token := c.GetHeader(middleware.AppKeyHeader)
	if err := h.svc.Logout(token); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout successful"})
}
