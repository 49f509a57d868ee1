package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/records-go/internal/application"
	"github.com/linskybing/records-go/pkg/utils"
)

type CategoryHandler struct {
	svc *application.CategoryService
}

func NewCategoryHandler(svc *application.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// List godoc
// @Summary List the category master
// @Tags categories
// @Security AppKeyAuth
// @Produce json
// @Success 200 {object} object "Category id to name mapping"
// @Failure 401 "Missing or invalid session"
// @Router /api/client/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	if _, err := utils.GetUserIDFromContext(c); err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": h.svc.List()})
}
