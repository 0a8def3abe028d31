package services

import (
	"workzo_backend/internal/models"
	"workzo_backend/internal/repositories"
	"workzo_backend/internal/services/dto"
	"workzo_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserService interface {
	GetProfile(db *gorm.DB, userID string) (*models.User, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*models.User, error)
	GetWorkerProfile(db *gorm.DB, workerID string) (*models.User, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetProfile(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// UpdateProfile applies the client-writable fields only. Credentials, role,
// verification state and reputation cannot be reached from here.
func (s *UserServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetProfile(db, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Skills != nil {
		user.Skills = datatypes.NewJSONSlice(*req.Skills)
	}
	if req.Categories != nil {
		user.Categories = datatypes.NewJSONSlice(*req.Categories)
	}
	if req.About != nil {
		user.About = *req.About
	}
	if req.Experience != nil {
		user.Experience = *req.Experience
	}
	if req.Age != nil {
		user.Age = req.Age
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// GetWorkerProfile returns a worker's public profile; employers and other
// users resolve applicants through it. Non-worker ids read as not found.
func (s *UserServiceImpl) GetWorkerProfile(db *gorm.DB, workerID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, workerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Role != models.UserRoleWorker {
		return nil, apperrors.ErrWorkerNotFound
	}
	return user, nil
}
