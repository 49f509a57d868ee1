package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/records-go/internal/application"
	"github.com/linskybing/records-go/internal/repository"
)

type Handlers struct {
	Session    *SessionHandler
	Record     *RecordHandler
	RecordView *RecordViewHandler
	Comment    *CommentHandler
	File       *FileHandler
	Category   *CategoryHandler
	Audit      *AuditHandler
	Router     *gin.Engine
}

func New(svc *application.Services, repos *repository.Repos, router *gin.Engine) *Handlers {
	h := &Handlers{
		Session:    NewSessionHandler(svc.Session),
		Record:     NewRecordHandler(svc.Record, svc.Audit),
		RecordView: NewRecordViewHandler(svc.RecordView),
		Comment:    NewCommentHandler(svc.Comment, svc.Audit),
		File:       NewFileHandler(svc.File),
		Category:   NewCategoryHandler(svc.Category),
		Audit:      NewAuditHandler(svc.Audit),
		Router:     router,
	}
	return h
}
