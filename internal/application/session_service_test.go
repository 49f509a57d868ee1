package application

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/records-go/internal/domain/session"
	"github.com/linskybing/records-go/internal/domain/user"
	"github.com/linskybing/records-go/internal/repository"
	"github.com/linskybing/records-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupSessionServiceMocks(t *testing.T) (*SessionService, *mock.MockUserRepo, *mock.MockSessionRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUser := mock.NewMockUserRepo(ctrl)
	mockSession := mock.NewMockSessionRepo(ctrl)
	repos := &repository.Repos{
		User:    mockUser,
		Session: mockSession,
	}
	svc := NewSessionService(repos)
	return svc, mockUser, mockSession
}

func TestLogin_Success(t *testing.T) {
	svc, mockUser, mockSession := setupSessionServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	usr := user.User{UserID: 7, Username: "alice", Password: string(hashed)}

	mockUser.EXPECT().GetUserByUsername("alice").Return(usr, nil)

	var created session.Session
	mockSession.EXPECT().CreateSession(gomock.Any()).DoAndReturn(func(s *session.Session) error {
		created = *s
		return nil
	})

	token, err := svc.Login(session.LoginInput{Username: "alice", Password: "123456"})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, token, created.Value)
	assert.Equal(t, uint(7), created.LinkedUserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockUser, _ := setupSessionServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	usr := user.User{UserID: 7, Username: "alice", Password: string(hashed)}

	mockUser.EXPECT().GetUserByUsername("alice").Return(usr, nil)

	token, err := svc.Login(session.LoginInput{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, mockUser, _ := setupSessionServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("ghost").Return(user.User{}, gorm.ErrRecordNotFound)

	token, err := svc.Login(session.LoginInput{Username: "ghost", Password: "123456"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestLogin_RepoError(t *testing.T) {
	svc, mockUser, _ := setupSessionServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("alice").Return(user.User{}, errors.New("db down"))

	_, err := svc.Login(session.LoginInput{Username: "alice", Password: "123456"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogout(t *testing.T) {
	svc, _, mockSession := setupSessionServiceMocks(t)

	mockSession.EXPECT().DeleteByValue("tok-123").Return(nil)

	assert.NoError(t, svc.Logout("tok-123"))
}
