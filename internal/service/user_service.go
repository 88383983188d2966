package service

import (
	"context"
	"errors"

	"go-loyalty-admin/internal/model"
	"go-loyalty-admin/internal/repository"
)

var (
	ErrInvalidUserStatus = errors.New("invalid user status")
	ErrUserBusy          = errors.New("another change for this user is already in progress")
)

type UserService interface {
	Find(filter model.UserFilter) ([]model.User, error)
	UpdateStatus(ctx context.Context, id string, status model.UserStatus) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	userRepo repository.UserRepository
	inflight *repository.Inflight
}

func NewUserService(userRepo repository.UserRepository, inflight *repository.Inflight) UserService {
	return &userService{userRepo: userRepo, inflight: inflight}
}

func (s *userService) Find(filter model.UserFilter) ([]model.User, error) {
	return s.userRepo.Find(filter)
}

func (s *userService) UpdateStatus(ctx context.Context, id string, status model.UserStatus) (*model.User, error) {
	if !model.ValidUserStatus(status) {
		return nil, ErrInvalidUserStatus
	}

	if !s.inflight.Begin(id) {
		return nil, ErrUserBusy
	}
	defer s.inflight.End(id)

	return s.userRepo.UpdateStatus(id, status)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if !s.inflight.Begin(id) {
		return ErrUserBusy
	}
	defer s.inflight.End(id)

	return s.userRepo.Delete(id)
}
