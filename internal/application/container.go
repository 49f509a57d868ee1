package application

import (
	"github.com/linskybing/records-go/internal/repository"
	"github.com/linskybing/records-go/internal/storage"
)

type Services struct {
	Session    *SessionService
	Record     *RecordService
	RecordView *RecordViewService
	Comment    *CommentService
	File       *FileService
	Category   *CategoryService
	Audit      *AuditService
}

func New(repos *repository.Repos, store storage.ObjectStore) *Services {
	return &Services{
		Session:    NewSessionService(repos),
		Record:     NewRecordService(repos),
		RecordView: NewRecordViewService(repos),
		Comment:    NewCommentService(repos),
		File:       NewFileService(repos, store),
		Category:   NewCategoryService(),
		Audit:      NewAuditService(repos),
	}
}
