package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/records-go/internal/application"
	"github.com/linskybing/records-go/internal/domain/group"
	"github.com/linskybing/records-go/internal/domain/record"
	"github.com/linskybing/records-go/internal/repository"
	"github.com/linskybing/records-go/internal/repository/mock"
	"github.com/linskybing/records-go/pkg/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupRecordHandler(t *testing.T) (*gin.Engine, *mock.MockRecordRepo, *mock.MockGroupRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRecord := mock.NewMockRecordRepo(ctrl)
	mockGroup := mock.NewMockGroupRepo(ctrl)
	mockAudit := mock.NewMockAuditRepo(ctrl)
	mockAudit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil).AnyTimes()

	repos := &repository.Repos{
		Record: mockRecord,
		Group:  mockGroup,
		Audit:  mockAudit,
	}
	h := NewRecordHandler(application.NewRecordService(repos), application.NewAuditService(repos))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Stand-in for the session middleware.
	r.Use(func(c *gin.Context) { c.Set(utils.UserIDKey, uint(7)) })
	r.GET("/records/:recordId", h.Get)
	r.PUT("/records/:recordId", h.UpdateStatus)
	r.POST("/records", h.Create)
	return r, mockRecord, mockGroup
}

func TestGetRecord_NotFoundBody(t *testing.T) {
	r, mockRecord, _ := setupRecordHandler(t)

	mockRecord.EXPECT().GetDetail("missing").Return(record.DetailRow{}, gorm.ErrRecordNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/records/missing", nil)
	r.ServeHTTP(w, req)

	// A miss answers with an empty JSON object, not an error payload.
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}

func TestUpdateStatus_EmptyObjectResponse(t *testing.T) {
	r, mockRecord, _ := setupRecordHandler(t)

	mockRecord.EXPECT().UpdateStatus("rec-1", "close").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/records/rec-1",
		strings.NewReader(`{"status":"close"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}

func TestCreateRecord_NoPrimaryGroupEmpty400(t *testing.T) {
	r, _, mockGroup := setupRecordHandler(t)

	mockGroup.EXPECT().GetPrimaryMembership(uint(7)).
		Return(group.GroupMember{}, gorm.ErrRecordNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/records",
		strings.NewReader(`{"title":"x","categoryId":1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Body.String())
}
