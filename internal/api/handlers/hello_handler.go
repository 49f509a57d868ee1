package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/records-go/pkg/response"
)

// Hello godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Router /api/hello [get]
func Hello(c *gin.Context) {
	c.JSON(http.StatusOK, response.MessageResponse{Message: "hello"})
}
