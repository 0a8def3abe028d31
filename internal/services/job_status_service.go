package services

import (
	"time"

	"workzo_backend/internal/models"
	"workzo_backend/internal/repositories"
	"workzo_backend/internal/services/dto"
	"workzo_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobStatusService interface {
	EnsureCreated(db *gorm.DB, applicationID string) (*models.JobStatus, error)
	ListForUser(db *gorm.DB, userID string, role models.UserRole) ([]models.JobStatus, error)
	Complete(db *gorm.DB, jobStatusID, employerID string, req *dto.CompleteJobRequest) error
}

type JobStatusServiceImpl struct {
	jobStatusRepo   repositories.JobStatusRepository
	applicationRepo repositories.ApplicationRepository
	userRepo        repositories.UserRepository
	reviews         ReviewService
}

func NewJobStatusService(
	jobStatusRepo repositories.JobStatusRepository,
	applicationRepo repositories.ApplicationRepository,
	userRepo repositories.UserRepository,
	reviews ReviewService,
) JobStatusService {
	return &JobStatusServiceImpl{
		jobStatusRepo:   jobStatusRepo,
		applicationRepo: applicationRepo,
		userRepo:        userRepo,
		reviews:         reviews,
	}
}

// EnsureCreated creates the IN_PROGRESS record for an ACCEPTED application,
// or returns the existing one unchanged. Idempotent by (job, worker) lookup.
func (s *JobStatusServiceImpl) EnsureCreated(db *gorm.DB, applicationID string) (*models.JobStatus, error) {
	application, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrInvalidApplication
		}
		return nil, apperrors.InternalError(err)
	}
	if application.Status != models.ApplicationAccepted || application.Job == nil {
		return nil, apperrors.ErrInvalidApplication
	}

	existing, err := s.jobStatusRepo.FindByJobAndWorker(db, application.JobID, application.WorkerID)
	if err == nil {
		return existing, nil
	}
	if !apperrors.Is(err, repositories.ErrJobStatusNotFound) {
		return nil, apperrors.InternalError(err)
	}

	status := &models.JobStatus{
		JobID:      application.JobID,
		EmployerID: application.Job.EmployerID,
		WorkerID:   application.WorkerID,
		Status:     models.WorkInProgress,
	}
	if err := s.jobStatusRepo.Create(db, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return status, nil
}

// ListForUser scopes by role: employers see assignments they own, workers see
// assignments referencing them.
func (s *JobStatusServiceImpl) ListForUser(db *gorm.DB, userID string, role models.UserRole) ([]models.JobStatus, error) {
	var (
		statuses []models.JobStatus
		err      error
	)
	switch role {
	case models.UserRoleEmployer:
		statuses, err = s.jobStatusRepo.FindByEmployer(db, userID)
	case models.UserRoleWorker:
		statuses, err = s.jobStatusRepo.FindByWorker(db, userID)
	default:
		return nil, apperrors.ErrInvalidUserRole
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return statuses, nil
}

// Complete marks the assignment COMPLETED and applies the reputation
// updates in one transaction: a valid rating (1-5) additionally creates a
// Review and recomputes the worker's aggregate; completedJobs is always
// incremented exactly once, rating or not.
func (s *JobStatusServiceImpl) Complete(db *gorm.DB, jobStatusID, employerID string, req *dto.CompleteJobRequest) error {
	status, err := s.jobStatusRepo.FindByID(db, jobStatusID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobStatusNotFound) {
			return apperrors.ErrJobStatusNotFound
		}
		return apperrors.InternalError(err)
	}

	if status.EmployerID != employerID {
		return apperrors.ErrForbidden
	}
	if status.Status == models.WorkCompleted {
		return apperrors.ErrJobAlreadyCompleted
	}

	now := time.Now()
	ratingGiven := req.Rating != nil && *req.Rating >= 1 && *req.Rating <= 5

	err = db.Transaction(func(tx *gorm.DB) error {
		status.Status = models.WorkCompleted
		status.CompletedAt = &now
		if ratingGiven {
			status.Rating = req.Rating
			status.Review = req.Review
		}
		if err := s.jobStatusRepo.Update(tx, status); err != nil {
			return err
		}

		if ratingGiven {
			review := &dto.CreateReviewRequest{
				WorkerID: status.WorkerID,
				Rating:   *req.Rating,
				Comment:  req.Review,
				JobID:    &status.JobID,
			}
			if err := s.createReviewTx(tx, employerID, review); err != nil {
				return err
			}
		}

		return s.userRepo.IncrementCompletedJobs(tx, status.WorkerID)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// createReviewTx writes the completion review inside the caller's
// transaction and refreshes the aggregate, without re-entering the review
// service's own transaction wrapper.
func (s *JobStatusServiceImpl) createReviewTx(tx *gorm.DB, employerID string, req *dto.CreateReviewRequest) error {
	review := &models.Review{
		EmployerID: employerID,
		WorkerID:   req.WorkerID,
		JobID:      req.JobID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := tx.Create(review).Error; err != nil {
		return err
	}
	return s.reviews.RecomputeWorkerRating(tx, req.WorkerID)
}
