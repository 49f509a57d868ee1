package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/records-go/internal/application"
	"github.com/linskybing/records-go/internal/domain/comment"
	"github.com/linskybing/records-go/pkg/response"
	"github.com/linskybing/records-go/pkg/utils"
)

type CommentHandler struct {
	svc   *application.CommentService
	audit *application.AuditService
}

func NewCommentHandler(svc *application.CommentService, audit *application.AuditService) *CommentHandler {
	return &CommentHandler{svc: svc, audit: audit}
}

// List godoc
// @Summary List comments on a record, newest first
// @Tags comments
// @Security AppKeyAuth
// @Produce json
// @Param recordId path string true "Record ID"
// @Success 200 {object} comment.ListResponse
// @Failure 401 "Missing or invalid session"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/client/records/{recordId}/comments [get]
func (h *CommentHandler) List(c *gin.Context) {
	if _, err := utils.GetUserIDFromContext(c); err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	res, err := h.svc.List(c.Param("recordId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

// Create godoc
// @Summary Add a comment and bump the record's update time
// @Tags comments
// @Security AppKeyAuth
// @Accept json
// @Produce json
// @Param recordId path string true "Record ID"
// @Param input body comment.CreateCommentInput true "Comment body"
// @Success 200 {object} object "Empty object"
// @Failure 400 "Invalid input"
// @Failure 401 "Missing or invalid session"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/client/records/{recordId}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	var input comment.CreateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	recordID := c.Param("recordId")
	if err := h.svc.Create(userID, recordID, input.Value); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	h.audit.LogAsync(userID, c.ClientIP(), c.GetHeader("User-Agent"),
		"create", "comment", recordID, nil, input)

	c.JSON(http.StatusOK, gin.H{})
}
