package repositories

import (
	"errors"

	"workzo_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	FindOpen(db *gorm.DB) ([]models.Job, error)
	FindByEmployer(db *gorm.DB, employerID string) ([]models.Job, error)
	UpdateStatus(db *gorm.DB, jobID string, status models.JobStatusValue) error
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	if err := db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindOpen lists OPEN jobs with the employer's contact fields preloaded.
func (r *JobRepositoryImpl) FindOpen(db *gorm.DB) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Where("status = ?", models.JobOpen).
		Preload("Employer").
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByEmployer(db *gorm.DB, employerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) UpdateStatus(db *gorm.DB, jobID string, status models.JobStatusValue) error {
	return db.Model(&models.Job{}).Where("id = ?", jobID).Update("status", status).Error
}
