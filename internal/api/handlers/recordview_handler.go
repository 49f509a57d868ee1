package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/records-go/internal/application"
	"github.com/linskybing/records-go/internal/domain/record"
	"github.com/linskybing/records-go/pkg/response"
	"github.com/linskybing/records-go/pkg/utils"
)

type RecordViewHandler struct {
	svc *application.RecordViewService
}

func NewRecordViewHandler(svc *application.RecordViewService) *RecordViewHandler {
	return &RecordViewHandler{svc: svc}
}

func (h *RecordViewHandler) list(c *gin.Context, status, scope string) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	res, err := h.svc.List(userID, status, scope, c.Query("offset"), c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

// TomeActive godoc
// @Summary List open records addressed to the caller's groups
// @Tags record-views
// @Security AppKeyAuth
// @Produce json
// @Param offset query int false "Window offset (default 0)"
// @Param limit query int false "Window size (default 10)"
// @Success 200 {object} record.ListResponse
// @Failure 401 "Missing or invalid session"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/client/record-views/tomeActive [get]
func (h *RecordViewHandler) TomeActive(c *gin.Context) {
	h.list(c, record.StatusOpen, record.ScopeTome)
}

// AllActive godoc
// @Summary List all open records
// @Tags record-views
// @Security AppKeyAuth
// @Produce json
// @Param offset query int false "Window offset (default 0)"
// @Param limit query int false "Window size (default 10)"
// @Success 200 {object} record.ListResponse
// @Failure 401 "Missing or invalid session"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/client/record-views/allActive [get]
func (h *RecordViewHandler) AllActive(c *gin.Context) {
	h.list(c, record.StatusOpen, record.ScopeAll)
}

// AllClosed godoc
// @Summary List all closed records
// @Tags record-views
// @Security AppKeyAuth
// @Produce json
// @Param offset query int false "Window offset (default 0)"
// @Param limit query int false "Window size (default 10)"
// @Success 200 {object} record.ListResponse
// @Failure 401 "Missing or invalid session"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/client/record-views/allClosed [get]
func (h *RecordViewHandler) AllClosed(c *gin.Context) {
	h.list(c, record.StatusClosed, record.ScopeAll)
}

// MineActive godoc
// @Summary List open records created by the caller
// @Tags record-views
// @Security AppKeyAuth
// @Produce json
// @Param offset query int false "Window offset (default 0)"
// @Param limit query int false "Window size (default 10)"
// @Success 200 {object} record.ListResponse
// @Failure 401 "Missing or invalid session"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/client/record-views/mineActive [get]
func (h *RecordViewHandler) MineActive(c *gin.Context) {
	h.list(c, record.StatusOpen, record.ScopeMine)
}
