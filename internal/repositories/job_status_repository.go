package repositories

import (
	"errors"

	"workzo_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobStatusNotFound = errors.New("job status not found")

type JobStatusRepository interface {
	Create(db *gorm.DB, status *models.JobStatus) error
	FindByID(db *gorm.DB, id string) (*models.JobStatus, error)
	FindByJobAndWorker(db *gorm.DB, jobID, workerID string) (*models.JobStatus, error)
	FindByEmployer(db *gorm.DB, employerID string) ([]models.JobStatus, error)
	FindByWorker(db *gorm.DB, workerID string) ([]models.JobStatus, error)
	Update(db *gorm.DB, status *models.JobStatus) error
}

type JobStatusRepositoryImpl struct{}

func NewJobStatusRepository() JobStatusRepository {
	return &JobStatusRepositoryImpl{}
}

func (r *JobStatusRepositoryImpl) Create(db *gorm.DB, status *models.JobStatus) error {
	return db.Create(status).Error
}

func (r *JobStatusRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.JobStatus, error) {
	var status models.JobStatus
	err := db.Preload("Job").Preload("Worker").First(&status, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobStatusNotFound
		}
		return nil, err
	}
	return &status, nil
}

func (r *JobStatusRepositoryImpl) FindByJobAndWorker(db *gorm.DB, jobID, workerID string) (*models.JobStatus, error) {
	var status models.JobStatus
	err := db.Where("job_id = ? AND worker_id = ?", jobID, workerID).First(&status).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobStatusNotFound
		}
		return nil, err
	}
	return &status, nil
}

// listPreloads joins the job summary and both parties; the worker side
// carries the reputation snapshot the employer dashboard shows.
func listPreloads(db *gorm.DB) *gorm.DB {
	return db.Preload("Job").Preload("Worker").Preload("Employer").
		Order("created_at DESC")
}

func (r *JobStatusRepositoryImpl) FindByEmployer(db *gorm.DB, employerID string) ([]models.JobStatus, error) {
	var statuses []models.JobStatus
	err := listPreloads(db).Where("employer_id = ?", employerID).Find(&statuses).Error
	return statuses, err
}

func (r *JobStatusRepositoryImpl) FindByWorker(db *gorm.DB, workerID string) ([]models.JobStatus, error) {
	var statuses []models.JobStatus
	err := listPreloads(db).Where("worker_id = ?", workerID).Find(&statuses).Error
	return statuses, err
}

func (r *JobStatusRepositoryImpl) Update(db *gorm.DB, status *models.JobStatus) error {
	return db.Save(status).Error
}
