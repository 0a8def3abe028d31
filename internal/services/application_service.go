package services

import (
	"workzo_backend/internal/models"
	"workzo_backend/internal/repositories"
	"workzo_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	Apply(db *gorm.DB, jobID, workerID string) (*models.Application, error)
	Accept(db *gorm.DB, applicationID, employerID string) error
	Reject(db *gorm.DB, applicationID, employerID string) error
	ListByWorker(db *gorm.DB, workerID string) ([]models.Application, error)
	ListByJob(db *gorm.DB, jobID, employerID string) ([]models.Application, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	jobStatusRepo   repositories.JobStatusRepository
	userRepo        repositories.UserRepository
	notifications   NotificationService
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	jobStatusRepo repositories.JobStatusRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		jobStatusRepo:   jobStatusRepo,
		userRepo:        userRepo,
		notifications:   notifications,
	}
}

// Apply records a worker's application to an OPEN job and notifies the
// employer. Applying to a missing or non-OPEN job fails; a second
// application to the same job conflicts.
func (s *ApplicationServiceImpl) Apply(db *gorm.DB, jobID, workerID string) (*models.Application, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotAvailable
		}
		return nil, apperrors.InternalError(err)
	}
	if job.Status != models.JobOpen {
		return nil, apperrors.ErrJobNotAvailable
	}

	worker, err := s.userRepo.FindByID(db, workerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	application := &models.Application{
		JobID:    job.ID,
		WorkerID: workerID,
		Status:   models.ApplicationApplied,
	}

	if err := s.applicationRepo.Create(db, application); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationAlreadyExists) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	s.notifications.NotifyNewApplication(db, job, worker)
	return application, nil
}

// Accept moves an APPLIED application to ACCEPTED, creates the IN_PROGRESS
// job status and closes the job once its member limit is reached — all in
// one transaction, so a failed step never leaves an accepted application
// without a job status. The worker notification goes out after commit.
func (s *ApplicationServiceImpl) Accept(db *gorm.DB, applicationID, employerID string) error {
	application, err := s.loadOwned(db, applicationID, employerID)
	if err != nil {
		return err
	}

	if application.Status == models.ApplicationAccepted {
		return apperrors.NewConflictError("Already accepted")
	}
	if application.Terminal() {
		return apperrors.ErrApplicationClosed
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.applicationRepo.UpdateStatus(tx, application.ID, models.ApplicationAccepted); err != nil {
			return err
		}

		status := &models.JobStatus{
			JobID:      application.JobID,
			EmployerID: employerID,
			WorkerID:   application.WorkerID,
			Status:     models.WorkInProgress,
		}
		if err := s.jobStatusRepo.Create(tx, status); err != nil {
			return err
		}

		accepted, err := s.applicationRepo.CountAcceptedByJob(tx, application.JobID)
		if err != nil {
			return err
		}
		if accepted >= int64(application.Job.MemberLimit) {
			if err := s.jobRepo.UpdateStatus(tx, application.JobID, models.JobClosed); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.InternalError(err)
	}

	s.notifications.NotifyApplicationAccepted(db, application.WorkerID, application.Job.Title)
	return nil
}

// Reject moves an APPLIED application to REJECTED and notifies the worker.
// Rejecting an already decided application conflicts.
func (s *ApplicationServiceImpl) Reject(db *gorm.DB, applicationID, employerID string) error {
	application, err := s.loadOwned(db, applicationID, employerID)
	if err != nil {
		return err
	}

	if application.Terminal() {
		return apperrors.ErrApplicationClosed
	}

	if err := s.applicationRepo.UpdateStatus(db, application.ID, models.ApplicationRejected); err != nil {
		return apperrors.InternalError(err)
	}

	s.notifications.NotifyApplicationRejected(db, application.WorkerID, application.Job.Title)
	return nil
}

func (s *ApplicationServiceImpl) ListByWorker(db *gorm.DB, workerID string) ([]models.Application, error) {
	applications, err := s.applicationRepo.FindByWorker(db, workerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

// ListByJob returns a job's applicants, only to the owning employer.
func (s *ApplicationServiceImpl) ListByJob(db *gorm.DB, jobID, employerID string) ([]models.Application, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NotFound("Job")
		}
		return nil, apperrors.InternalError(err)
	}
	if job.EmployerID != employerID {
		return nil, apperrors.ErrForbidden
	}

	applications, err := s.applicationRepo.FindByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

// loadOwned fetches an application and verifies the acting employer owns the
// job before any mutation is applied.
func (s *ApplicationServiceImpl) loadOwned(db *gorm.DB, applicationID, employerID string) (*models.Application, error) {
	application, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if application.Job == nil || application.Job.EmployerID != employerID {
		return nil, apperrors.ErrForbidden
	}
	return application, nil
}
