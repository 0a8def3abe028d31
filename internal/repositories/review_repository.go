package repositories

import (
	"workzo_backend/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	FindByWorker(db *gorm.DB, workerID string) ([]models.Review, error)
	AggregateForWorker(db *gorm.DB, workerID string) (avg float64, count int64, err error)
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.Review) error {
	return db.Create(review).Error
}

// FindByWorker returns a worker's reviews newest first, with the reviewing
// employer's name joined.
func (r *ReviewRepositoryImpl) FindByWorker(db *gorm.DB, workerID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Where("worker_id = ?", workerID).
		Preload("Employer").
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// AggregateForWorker recomputes the mean rating and count over the worker's
// entire review history. The aggregate on User is always exactly reproducible
// from this query.
func (r *ReviewRepositoryImpl) AggregateForWorker(db *gorm.DB, workerID string) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err := db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("worker_id = ?", workerID).
		Scan(&result).Error
	return result.Avg, result.Count, err
}
