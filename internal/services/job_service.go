package services

import (
	"workzo_backend/internal/models"
	"workzo_backend/internal/repositories"
	"workzo_backend/internal/services/dto"
	"workzo_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	Create(db *gorm.DB, employerID string, req *dto.CreateJobRequest) (*models.Job, error)
	ListOpen(db *gorm.DB) ([]models.Job, error)
	ListByEmployer(db *gorm.DB, employerID string) ([]models.Job, error)
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) Create(db *gorm.DB, employerID string, req *dto.CreateJobRequest) (*models.Job, error) {
	memberLimit := req.MemberLimit
	if memberLimit < 1 {
		memberLimit = 1
	}

	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Budget:      req.Budget,
		MemberLimit: memberLimit,
		Status:      models.JobOpen,
		EmployerID:  employerID,
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) ListOpen(db *gorm.DB) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindOpen(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) ListByEmployer(db *gorm.DB, employerID string) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindByEmployer(db, employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}
