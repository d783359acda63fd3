package repositories

import (
	"context"

	"github.com/dimerryy/careplatform/backend/internal/models"
	"gorm.io/gorm"
)

type CaregiverRepository struct {
	db *gorm.DB
}

func NewCaregiverRepository(db *gorm.DB) *CaregiverRepository {
	return &CaregiverRepository{db: db}
}

type CreateCaregiverRequest struct {
	CaregiverUserID uint    `json:"caregiver_user_id" binding:"required"`
	Photo           string  `json:"photo"`
	Gender          string  `json:"gender"`
	CaregivingType  string  `json:"caregiving_type" binding:"required"`
	HourlyRate      float64 `json:"hourly_rate"`
}

type UpdateCaregiverRequest struct {
	Photo          string  `json:"photo"`
	Gender         string  `json:"gender"`
	CaregivingType string  `json:"caregiving_type" binding:"required"`
	HourlyRate     float64 `json:"hourly_rate"`
}

// CaregiverRow is a caregiver joined with its user record for listing.
type CaregiverRow struct {
	CaregiverUserID uint    `json:"caregiver_user_id"`
	GivenName       string  `json:"given_name"`
	Surname         string  `json:"surname"`
	Email           string  `json:"email"`
	City            string  `json:"city"`
	PhoneNumber     string  `json:"phone_number"`
	Photo           string  `json:"photo"`
	Gender          string  `json:"gender"`
	CaregivingType  string  `json:"caregiving_type"`
	HourlyRate      float64 `json:"hourly_rate"`
}

func (r *CaregiverRepository) Create(ctx context.Context, req *CreateCaregiverRequest) (*models.Caregiver, error) {
	if req.HourlyRate < 0 {
		return nil, validationError("hourly_rate must be non-negative")
	}

	caregiver := models.Caregiver{
		CaregiverUserID: req.CaregiverUserID,
		Photo:           req.Photo,
		Gender:          req.Gender,
		CaregivingType:  req.CaregivingType,
		HourlyRate:      req.HourlyRate,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireUser(tx, req.CaregiverUserID); err != nil {
			return err
		}
		return tx.Create(&caregiver).Error
	})
	if err != nil {
		return nil, Translate(err)
	}
	return &caregiver, nil
}

func (r *CaregiverRepository) Get(ctx context.Context, id uint) (*models.Caregiver, error) {
	var caregiver models.Caregiver
	if err := r.db.WithContext(ctx).Preload("User").First(&caregiver, "caregiver_user_id = ?", id).Error; err != nil {
		return nil, Translate(err)
	}
	return &caregiver, nil
}

func (r *CaregiverRepository) List(ctx context.Context) ([]CaregiverRow, error) {
	var rows []CaregiverRow
	err := r.db.WithContext(ctx).
		Table("caregivers c").
		Select("c.caregiver_user_id, u.given_name, u.surname, u.email, u.city, u.phone_number, c.photo, c.gender, c.caregiving_type, c.hourly_rate").
		Joins("JOIN users u ON c.caregiver_user_id = u.user_id").
		Order("c.caregiver_user_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, Translate(err)
	}
	return rows, nil
}

func (r *CaregiverRepository) Update(ctx context.Context, id uint, req *UpdateCaregiverRequest) (*models.Caregiver, error) {
	if req.HourlyRate < 0 {
		return nil, validationError("hourly_rate must be non-negative")
	}

	var caregiver models.Caregiver
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&caregiver, "caregiver_user_id = ?", id).Error; err != nil {
			return err
		}
		caregiver.Photo = req.Photo
		caregiver.Gender = req.Gender
		caregiver.CaregivingType = req.CaregivingType
		caregiver.HourlyRate = req.HourlyRate
		return tx.Save(&caregiver).Error
	})
	if err != nil {
		return nil, Translate(err)
	}
	return &caregiver, nil
}

func (r *CaregiverRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var caregiver models.Caregiver
		if err := tx.First(&caregiver, "caregiver_user_id = ?", id).Error; err != nil {
			return err
		}
		return deleteCaregiverCascade(tx, id)
	})
	return Translate(err)
}

// ApplyCommission adjusts every caregiver's hourly rate: rates below 10 gain
// a flat 0.3, rates of 10 and above gain 10%. Returns the number of rows
// updated.
func (r *CaregiverRepository) ApplyCommission(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&models.Caregiver{}).
		Update("hourly_rate", gorm.Expr("CASE WHEN hourly_rate < 10 THEN hourly_rate + 0.3 ELSE hourly_rate * 1.10 END"))
	if result.Error != nil {
		return 0, Translate(result.Error)
	}
	return result.RowsAffected, nil
}

// requireUser checks that the referenced user exists inside the caller's
// transaction, mapping absence to a foreign key violation.
func requireUser(tx *gorm.DB, userID uint) error {
	var count int64
	if err := tx.Model(&models.User{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrForeignKeyViolation
	}
	return nil
}

// requireCaregiver and requireMember are the analogous checks for subtype
// references.
func requireCaregiver(tx *gorm.DB, caregiverID uint) error {
	var count int64
	if err := tx.Model(&models.Caregiver{}).Where("caregiver_user_id = ?", caregiverID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrForeignKeyViolation
	}
	return nil
}

func requireMember(tx *gorm.DB, memberID uint) error {
	var count int64
	if err := tx.Model(&models.Member{}).Where("member_user_id = ?", memberID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrForeignKeyViolation
	}
	return nil
}
