package repositories

import (
	"errors"

	"workzo_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists for this job")
)

type ApplicationRepository interface {
	Create(db *gorm.DB, application *models.Application) error
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	FindByJobAndWorker(db *gorm.DB, jobID, workerID string) (*models.Application, error)
	FindByWorker(db *gorm.DB, workerID string) ([]models.Application, error)
	FindByJob(db *gorm.DB, jobID string) ([]models.Application, error)
	UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error
	CountAcceptedByJob(db *gorm.DB, jobID string) (int64, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.Application) error {
	var existing models.Application
	err := db.Where("job_id = ? AND worker_id = ?", application.JobID, application.WorkerID).
		First(&existing).Error
	if err == nil {
		return ErrApplicationAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(application).Error
}

// FindByID loads the application with its job and worker, the way every
// accept/reject decision needs them.
func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var application models.Application
	err := db.Preload("Job").Preload("Worker").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByJobAndWorker(db *gorm.DB, jobID, workerID string) (*models.Application, error) {
	var application models.Application
	err := db.Where("job_id = ? AND worker_id = ?", jobID, workerID).First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

// FindByWorker lists a worker's applications with job and employer contact
// fields joined.
func (r *ApplicationRepositoryImpl) FindByWorker(db *gorm.DB, workerID string) ([]models.Application, error) {
	var applications []models.Application
	err := db.Where("worker_id = ?", workerID).
		Preload("Job").
		Preload("Job.Employer").
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

// FindByJob lists a job's applications with worker contact fields joined.
func (r *ApplicationRepositoryImpl) FindByJob(db *gorm.DB, jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := db.Where("job_id = ?", jobID).
		Preload("Worker").
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error {
	return db.Model(&models.Application{}).Where("id = ?", id).Update("status", status).Error
}

func (r *ApplicationRepositoryImpl) CountAcceptedByJob(db *gorm.DB, jobID string) (int64, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("job_id = ? AND status = ?", jobID, models.ApplicationAccepted).
		Count(&count).Error
	return count, err
}
