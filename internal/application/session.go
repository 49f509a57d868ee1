package application

import (
	"errors"

	"github.com/google/uuid"
	"github.com/linskybing/records-go/internal/domain/session"
	"github.com/linskybing/records-go/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SessionService mints and revokes the opaque credentials the middleware
// resolves. Tokens are random values stored server-side; nothing is encoded
// in them.
type SessionService struct {
	Repos *repository.Repos
}

func NewSessionService(repos *repository.Repos) *SessionService {
	return &SessionService{
		Repos: repos,
	}
}

func (s *SessionService) Login(input session.LoginInput) (string, error) {
	usr, err := s.Repos.User.GetUserByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(input.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	err = s.Repos.Session.CreateSession(&session.Session{
		Value:        token,
		LinkedUserID: usr.UserID,
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *SessionService) Logout(token string) error {
	return s.Repos.Session.DeleteByValue(token)
}
