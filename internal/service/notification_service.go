package service

import (
	"go-loyalty-admin/internal/model"
	"go-loyalty-admin/internal/repository"
)

type NotificationService interface {
	List() ([]model.Notification, error)
	MarkRead(id string) error
	MarkAllRead() error
	Dismiss(id string) error
}

type notificationService struct {
	notifRepo repository.NotificationRepository
}

func NewNotificationService(notifRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notifRepo: notifRepo}
}

func (s *notificationService) List() ([]model.Notification, error) {
	return s.notifRepo.FindAll()
}

func (s *notificationService) MarkRead(id string) error {
	return s.notifRepo.MarkRead(id)
}

func (s *notificationService) MarkAllRead() error {
	return s.notifRepo.MarkAllRead()
}

func (s *notificationService) Dismiss(id string) error {
	return s.notifRepo.Dismiss(id)
}
