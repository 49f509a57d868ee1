package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Session    SessionRepo
	User       UserRepo
	Group      GroupRepo
	Record     RecordRepo
	RecordView RecordViewRepo
	Comment    CommentRepo
	File       FileRepo
	Audit      AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Session:    NewSessionRepo(db),
		User:       NewUserRepo(db),
		Group:      NewGroupRepo(db),
		Record:     NewRecordRepo(db),
		RecordView: NewRecordViewRepo(db),
		Comment:    NewCommentRepo(db),
		File:       NewFileRepo(db),
		Audit:      NewAuditRepo(db),
		db:         db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Session:    r.Session.WithTx(tx),
		User:       r.User.WithTx(tx),
		Group:      r.Group.WithTx(tx),
		Record:     r.Record.WithTx(tx),
		RecordView: r.RecordView.WithTx(tx),
		Comment:    r.Comment.WithTx(tx),
		File:       r.File.WithTx(tx),
		Audit:      r.Audit.WithTx(tx),
		db:         tx,
	}
}

// ExecTx runs fn against transaction-scoped repositories, committing on nil
// and rolling back otherwise.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
