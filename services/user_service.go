package services

import (
	"errors"
	"strings"

	"github.com/Rohit220707/FitTrack-pro/models"
	"github.com/Rohit220707/FitTrack-pro/utils"

	"gorm.io/gorm"
)

// UserService handles profile reads and updates for authenticated users.
type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

func (s *UserService) GetByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ProfileUpdate carries the optional profile fields. Pointer fields
// distinguish "not sent" from an explicit zero (age 0, weight 0).
type ProfileUpdate struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Age         *int     `json:"age"`
	HeightCm    *float64 `json:"heightCm"`
	WeightKg    *float64 `json:"weightKg"`
	FitnessGoal string   `json:"fitnessGoal"`
}

func (s *UserService) UpdateProfile(userID uint, input ProfileUpdate) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = strings.ToLower(strings.TrimSpace(input.Email))
	}
	if input.Age != nil {
		user.Age = *input.Age
	}
	if input.HeightCm != nil {
		user.HeightCm = *input.HeightCm
	}
	if input.WeightKg != nil {
		user.WeightKg = *input.WeightKg
	}
	if input.FitnessGoal != "" {
		user.FitnessGoal = input.FitnessGoal
	}
	if input.Password != "" {
		hashed, err := utils.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// SetAvatar uploads a base64 data-URL image to S3 and stores the public URL.
func (s *UserService) SetAvatar(userID uint, base64Image string) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	url, err := utils.UploadAvatar(base64Image)
	if err != nil {
		return nil, err
	}

	user.ProfilePicture = url
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// ListAll returns every user, for the admin surface.
func (s *UserService) ListAll() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}
