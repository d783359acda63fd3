package repositories

import (
	"context"

	"github.com/dimerryy/careplatform/backend/internal/models"
	"github.com/dimerryy/careplatform/backend/internal/utils"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type CreateUserRequest struct {
	Email              string `json:"email" binding:"required,email"`
	GivenName          string `json:"given_name" binding:"required"`
	Surname            string `json:"surname" binding:"required"`
	City               string `json:"city"`
	PhoneNumber        string `json:"phone_number"`
	ProfileDescription string `json:"profile_description"`
	Password           string `json:"password" binding:"required,min=6"`
}

type UpdateUserRequest struct {
	Email              string `json:"email" binding:"required,email"`
	GivenName          string `json:"given_name" binding:"required"`
	Surname            string `json:"surname" binding:"required"`
	City               string `json:"city"`
	PhoneNumber        string `json:"phone_number"`
	ProfileDescription string `json:"profile_description"`
	Password           string `json:"password"` // empty keeps the current password
}

func (r *UserRepository) Create(ctx context.Context, req *CreateUserRequest) (*models.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, validationError("password cannot be hashed")
	}

	user := models.User{
		Email:              req.Email,
		GivenName:          req.GivenName,
		Surname:            req.Surname,
		City:               req.City,
		PhoneNumber:        req.PhoneNumber,
		ProfileDescription: req.ProfileDescription,
		Password:           hash,
	}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, Translate(err)
	}
	return &user, nil
}

func (r *UserRepository) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "user_id = ?", id).Error; err != nil {
		return nil, Translate(err)
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("user_id ASC").Find(&users).Error; err != nil {
		return nil, Translate(err)
	}
	return users, nil
}

// Update replaces all mutable fields; the primary key never changes. An
// empty password keeps the stored hash.
func (r *UserRepository) Update(ctx context.Context, id uint, req *UpdateUserRequest) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "user_id = ?", id).Error; err != nil {
			return err
		}

		user.Email = req.Email
		user.GivenName = req.GivenName
		user.Surname = req.Surname
		user.City = req.City
		user.PhoneNumber = req.PhoneNumber
		user.ProfileDescription = req.ProfileDescription
		if req.Password != "" {
			hash, err := utils.HashPassword(req.Password)
			if err != nil {
				return validationError("password cannot be hashed")
			}
			user.Password = hash
		}

		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, Translate(err)
	}
	return &user, nil
}

// Delete removes a user and cascades over both subtype chains: the caregiver
// row with its applications and appointments, and the member row with its
// address, jobs (plus their applications) and appointments.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "user_id = ?", id).Error; err != nil {
			return err
		}

		if err := deleteCaregiverCascade(tx, id); err != nil {
			return err
		}
		if err := deleteMemberCascade(tx, id); err != nil {
			return err
		}

		return tx.Delete(&models.User{}, "user_id = ?", id).Error
	})
	return Translate(err)
}
