package services

import (
	"fmt"

	"workzo_backend/internal/logger"
	"workzo_backend/internal/models"
	"workzo_backend/internal/repositories"
	"workzo_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type NotificationService interface {
	// Emit is the raw append. Lifecycle services use the Notify* helpers
	// instead, which log and swallow failures so a missed notification
	// never fails the primary operation.
	Emit(db *gorm.DB, userID, message, notificationType, link string) error

	NotifyNewApplication(db *gorm.DB, job *models.Job, worker *models.User)
	NotifyApplicationAccepted(db *gorm.DB, workerID, jobTitle string)
	NotifyApplicationRejected(db *gorm.DB, workerID, jobTitle string)

	ListForUser(db *gorm.DB, userID string) ([]models.Notification, error)
	UnreadCount(db *gorm.DB, userID string) (int64, error)
	MarkAllRead(db *gorm.DB, userID string) error
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &NotificationServiceImpl{notificationRepo: notificationRepo}
}

func (s *NotificationServiceImpl) Emit(db *gorm.DB, userID, message, notificationType, link string) error {
	notification := &models.Notification{
		UserID:  userID,
		Message: message,
		Type:    notificationType,
		Link:    link,
		Read:    false,
	}
	return s.notificationRepo.Create(db, notification)
}

func (s *NotificationServiceImpl) NotifyNewApplication(db *gorm.DB, job *models.Job, worker *models.User) {
	message := fmt.Sprintf("%s applied for your job %q", worker.Name, job.Title)
	link := fmt.Sprintf("/dashboard/my-jobs/%s/applicants", job.ID)
	s.emitBestEffort(db, job.EmployerID, message, models.NotificationTypeNewApplication, link)
}

func (s *NotificationServiceImpl) NotifyApplicationAccepted(db *gorm.DB, workerID, jobTitle string) {
	message := fmt.Sprintf("You have been accepted for %q", jobTitle)
	s.emitBestEffort(db, workerID, message, models.NotificationTypeJobAccepted, "/dashboard/job-status")
}

func (s *NotificationServiceImpl) NotifyApplicationRejected(db *gorm.DB, workerID, jobTitle string) {
	message := fmt.Sprintf("Your application for %q was rejected", jobTitle)
	s.emitBestEffort(db, workerID, message, models.NotificationTypeJobRejected, "/dashboard/applications")
}

func (s *NotificationServiceImpl) emitBestEffort(db *gorm.DB, userID, message, notificationType, link string) {
	if err := s.Emit(db, userID, message, notificationType, link); err != nil {
		logger.Warn("notification emit failed",
			"user_id", userID,
			"type", notificationType,
			"error", err,
		)
	}
}

func (s *NotificationServiceImpl) ListForUser(db *gorm.DB, userID string) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notifications, nil
}

func (s *NotificationServiceImpl) UnreadCount(db *gorm.DB, userID string) (int64, error) {
	count, err := s.notificationRepo.CountUnread(db, userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *NotificationServiceImpl) MarkAllRead(db *gorm.DB, userID string) error {
	if err := s.notificationRepo.MarkAllRead(db, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
