package services

import (
	"math"

	"workzo_backend/internal/models"
	"workzo_backend/internal/repositories"
	"workzo_backend/internal/services/dto"
	"workzo_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ReviewService interface {
	Submit(db *gorm.DB, employerID string, req *dto.CreateReviewRequest) error
	ListForWorker(db *gorm.DB, workerID string) ([]models.Review, error)

	// RecomputeWorkerRating refreshes the worker's aggregate from the full
	// review history. Job completion reuses it after writing its review.
	RecomputeWorkerRating(db *gorm.DB, workerID string) error
}

type ReviewServiceImpl struct {
	reviewRepo repositories.ReviewRepository
	userRepo   repositories.UserRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, userRepo repositories.UserRepository) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
	}
}

// Submit appends a review and recomputes the worker's aggregate, both in one
// transaction so the aggregate never drifts from the review set. Submission
// is intentionally not tied to a completed job.
func (s *ReviewServiceImpl) Submit(db *gorm.DB, employerID string, req *dto.CreateReviewRequest) error {
	if req.WorkerID == "" || req.Rating < 1 || req.Rating > 5 {
		return apperrors.NewBadRequestError("Missing data")
	}

	if _, err := s.userRepo.FindByID(db, req.WorkerID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrWorkerNotFound
		}
		return apperrors.InternalError(err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		review := &models.Review{
			EmployerID: employerID,
			WorkerID:   req.WorkerID,
			JobID:      req.JobID,
			Rating:     req.Rating,
			Comment:    req.Comment,
		}
		if err := s.reviewRepo.Create(tx, review); err != nil {
			return err
		}
		return s.RecomputeWorkerRating(tx, req.WorkerID)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ReviewServiceImpl) ListForWorker(db *gorm.DB, workerID string) ([]models.Review, error) {
	reviews, err := s.reviewRepo.FindByWorker(db, workerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return reviews, nil
}

func (s *ReviewServiceImpl) RecomputeWorkerRating(db *gorm.DB, workerID string) error {
	avg, count, err := s.reviewRepo.AggregateForWorker(db, workerID)
	if err != nil {
		return err
	}
	return s.userRepo.UpdateReputation(db, workerID, RoundRating(avg), int(count))
}

// RoundRating rounds a mean rating to one decimal place, the precision the
// profile shows.
func RoundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}
