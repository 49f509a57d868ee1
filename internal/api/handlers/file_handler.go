package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/records-go/internal/application"
	"github.com/linskybing/records-go/internal/domain/file"
	"github.com/linskybing/records-go/pkg/response"
	"github.com/linskybing/records-go/pkg/utils"
)

type FileHandler struct {
	svc *application.FileService
}

func NewFileHandler(svc *application.FileService) *FileHandler {
	return &FileHandler{svc: svc}
}

// Upload godoc
// @Summary Upload a base64-encoded image and derive its thumbnail
// @Tags files
// @Security AppKeyAuth
// @Accept json
// @Produce json
// @Param input body file.UploadInput true "File name and base64 data"
// @Success 200 {object} file.UploadResponse "Stored file ids"
// @Failure 400 "Invalid input"
// @Failure 401 "Missing or invalid session"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/client/files [post]
func (h *FileHandler) Upload(c *gin.Context) {
	if _, err := utils.GetUserIDFromContext(c); err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	var input file.UploadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	res, err := h.svc.Upload(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

// Download godoc
// @Summary Download the original file attached to a record item
// @Tags files
// @Security AppKeyAuth
// @Produce json
// @Param recordId path string true "Record ID"
// @Param itemId path int true "Item ID within the record"
// @Success 200 {object} file.DownloadResponse "Base64 data and file name"
// @Failure 401 "Missing or invalid session"
// @Failure 404 {object} object "Item not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/client/records/{recordId}/files/{itemId} [get]
func (h *FileHandler) Download(c *gin.Context) {
	h.download(c, h.svc.Download)
}

// DownloadThumbnail godoc
// @Summary Download the thumbnail attached to a record item
// @Tags files
// @Security AppKeyAuth
// @Produce json
// @Param recordId path string true "Record ID"
// @Param itemId path int true "Item ID within the record"
// @Success 200 {object} file.DownloadResponse "Base64 data and file name"
// @Failure 401 "Missing or invalid session"
// @Failure 404 {object} object "Item not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/client/records/{recordId}/files/{itemId}/thumbnail [get]
func (h *FileHandler) DownloadThumbnail(c *gin.Context) {
	h.download(c, h.svc.DownloadThumbnail)
}

func (h *FileHandler) download(c *gin.Context, fetch func(ctx context.Context, recordID string, itemID int) (file.DownloadResponse, error)) {
	if _, err := utils.GetUserIDFromContext(c); err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{})
		return
	}

	res, err := fetch(c.Request.Context(), c.Param("recordId"), itemID)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}
