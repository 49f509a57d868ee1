package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/records-go/internal/application"
	"github.com/linskybing/records-go/internal/domain/record"
	"github.com/linskybing/records-go/pkg/response"
	"github.com/linskybing/records-go/pkg/utils"
)

type RecordHandler struct {
	svc   *application.RecordService
	audit *application.AuditService
}

func NewRecordHandler(svc *application.RecordService, audit *application.AuditService) *RecordHandler {
	return &RecordHandler{svc: svc, audit: audit}
}

// Create godoc
// @Summary Create a record with its attached items
// @Tags records
// @Security AppKeyAuth
// @Accept json
// @Produce json
// @Param input body record.CreateRecordInput true "Record content"
// @Success 200 {object} record.CreateRecordResponse "Created record id"
// @Failure 400 "Invalid input or caller has no primary group"
// @Failure 401 "Missing or invalid session"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/client/records [post]
func (h *RecordHandler) Create(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	var input record.CreateRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	recordID, err := h.svc.Create(userID, input)
	if err != nil {
		if errors.Is(err, application.ErrNoPrimaryGroup) {
			c.Status(http.StatusBadRequest)
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	h.audit.LogAsync(userID, c.ClientIP(), c.GetHeader("User-Agent"),
		"create", "record", recordID, nil, input)

	c.JSON(http.StatusOK, record.CreateRecordResponse{RecordID: recordID})
}

// Get godoc
// @Summary Get a record with its items and comments metadata
// @Tags records
// @Security AppKeyAuth
// @Produce json
// @Param recordId path string true "Record ID"
// @Success 200 {object} record.DetailDTO
// @Failure 401 "Missing or invalid session"
// @Failure 404 {object} object "Record not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/client/records/{recordId} [get]
func (h *RecordHandler) Get(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	detail, err := h.svc.Get(userID, c.Param("recordId"))
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// UpdateStatus godoc
// @Summary Update a record's status
// @Tags records
// @Security AppKeyAuth
// @Accept json
// @Produce json
// @Param recordId path string true "Record ID"
// @Param input body record.UpdateRecordInput true "New status"
// @Success 200 {object} object "Empty object"
// @Failure 400 "Invalid input"
// @Failure 401 "Missing or invalid session"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/client/records/{recordId} [put]
func (h *RecordHandler) UpdateStatus(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	var input record.UpdateRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	recordID := c.Param("recordId")
	if err := h.svc.UpdateStatus(recordID, input.Status); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	h.audit.LogAsync(userID, c.ClientIP(), c.GetHeader("User-Agent"),
		"update_status", "record", recordID, nil, input)

	c.JSON(http.StatusOK, gin.H{})
}
