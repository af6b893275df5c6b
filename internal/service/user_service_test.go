package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "adboard/internal/errors"
	"adboard/internal/model"
)

func TestUserGetNotFound(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users)

	users.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), 9)

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserUpdateSelfPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users)

	stored := &model.User{ID: 3, Name: "leonid", PasswordHash: hashPassword(t, "secret"), Role: model.RoleUser}
	users.On("FindByID", mock.Anything, uint(3)).Return(stored, nil)
	users.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	identity := &model.User{ID: 3, Role: model.RoleUser}
	password := "new-secret"
	user, err := svc.Update(context.Background(), identity, 3, UserUpdate{Password: &password})

	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("new-secret")))
	assert.Equal(t, "leonid", user.Name)
	assert.Equal(t, model.RoleUser, user.Role)
}

func TestUserUpdateEmptyPatch(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users)

	stored := &model.User{ID: 3, Name: "leonid", PasswordHash: "hash", Role: model.RoleUser}
	users.On("FindByID", mock.Anything, uint(3)).Return(stored, nil)
	users.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	identity := &model.User{ID: 3, Role: model.RoleUser}
	user, err := svc.Update(context.Background(), identity, 3, UserUpdate{})

	assert.NoError(t, err)
	assert.Equal(t, stored.Name, user.Name)
	assert.Equal(t, stored.PasswordHash, user.PasswordHash)
}

func TestUserUpdateForbiddenForOther(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users)

	identity := &model.User{ID: 1, Role: model.RoleUser}
	name := "hijack"
	_, err := svc.Update(context.Background(), identity, 3, UserUpdate{Name: &name})

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUserUpdateNameConflict(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users)

	stored := &model.User{ID: 3, Name: "leonid", Role: model.RoleUser}
	users.On("FindByID", mock.Anything, uint(3)).Return(stored, nil)
	users.On("FindByName", mock.Anything, "maria").Return(&model.User{ID: 4, Name: "maria"}, nil)

	identity := &model.User{ID: 3, Role: model.RoleUser}
	name := "maria"
	_, err := svc.Update(context.Background(), identity, 3, UserUpdate{Name: &name})

	assert.ErrorIs(t, err, apperrors.ErrNameTaken)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserDeleteByAdmin(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users)

	users.On("FindByID", mock.Anything, uint(3)).Return(&model.User{ID: 3, Name: "leonid"}, nil)
	users.On("Delete", mock.Anything, uint(3)).Return(nil)

	admin := &model.User{ID: 1, Role: model.RoleAdmin}
	assert.NoError(t, svc.Delete(context.Background(), admin, 3))
	users.AssertExpectations(t)
}

func TestUserDeleteForbiddenForOther(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users)

	identity := &model.User{ID: 1, Role: model.RoleUser}
	err := svc.Delete(context.Background(), identity, 3)

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
