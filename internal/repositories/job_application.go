package repositories

import (
	"context"
	"time"

	"github.com/dimerryy/careplatform/backend/internal/models"
	"gorm.io/gorm"
)

type JobApplicationRepository struct {
	db *gorm.DB
}

func NewJobApplicationRepository(db *gorm.DB) *JobApplicationRepository {
	return &JobApplicationRepository{db: db}
}

type CreateJobApplicationRequest struct {
	CaregiverUserID uint   `json:"caregiver_user_id" binding:"required"`
	JobID           uint   `json:"job_id" binding:"required"`
	DateApplied     string `json:"date_applied"` // 2006-01-02
}

// JobApplicationRow is an application joined with applicant and poster names.
type JobApplicationRow struct {
	CaregiverUserID        uint      `json:"caregiver_user_id"`
	JobID                  uint      `json:"job_id"`
	CaregiverGivenName     string    `json:"caregiver_given_name"`
	CaregiverSurname       string    `json:"caregiver_surname"`
	MemberGivenName        string    `json:"member_given_name"`
	MemberSurname          string    `json:"member_surname"`
	RequiredCaregivingType string    `json:"required_caregiving_type"`
	DateApplied            time.Time `json:"date_applied"`
}

func (r *JobApplicationRepository) Create(ctx context.Context, req *CreateJobApplicationRequest) (*models.JobApplication, error) {
	dateApplied, err := parseDate(req.DateApplied, "date_applied")
	if err != nil {
		return nil, err
	}

	application := models.JobApplication{
		CaregiverUserID: req.CaregiverUserID,
		JobID:           req.JobID,
		DateApplied:     dateApplied,
	}
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireCaregiver(tx, req.CaregiverUserID); err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&models.Job{}).Where("job_id = ?", req.JobID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrForeignKeyViolation
		}
		if err := tx.Model(&models.JobApplication{}).
			Where("caregiver_user_id = ? AND job_id = ?", req.CaregiverUserID, req.JobID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateKey
		}
		return tx.Create(&application).Error
	})
	if err != nil {
		return nil, Translate(err)
	}
	return &application, nil
}

func (r *JobApplicationRepository) Get(ctx context.Context, caregiverID, jobID uint) (*models.JobApplication, error) {
	var application models.JobApplication
	err := r.db.WithContext(ctx).
		First(&application, "caregiver_user_id = ? AND job_id = ?", caregiverID, jobID).Error
	if err != nil {
		return nil, Translate(err)
	}
	return &application, nil
}

func (r *JobApplicationRepository) List(ctx context.Context) ([]JobApplicationRow, error) {
	var rows []JobApplicationRow
	err := r.db.WithContext(ctx).
		Table("job_applications ja").
		Select("ja.caregiver_user_id, ja.job_id, uc.given_name AS caregiver_given_name, uc.surname AS caregiver_surname, um.given_name AS member_given_name, um.surname AS member_surname, j.required_caregiving_type, ja.date_applied").
		Joins("JOIN caregivers c ON ja.caregiver_user_id = c.caregiver_user_id").
		Joins("JOIN users uc ON c.caregiver_user_id = uc.user_id").
		Joins("JOIN jobs j ON ja.job_id = j.job_id").
		Joins("JOIN members m ON j.member_user_id = m.member_user_id").
		Joins("JOIN users um ON m.member_user_id = um.user_id").
		Order("ja.job_id ASC, ja.date_applied ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, Translate(err)
	}
	return rows, nil
}

func (r *JobApplicationRepository) Delete(ctx context.Context, caregiverID, jobID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var application models.JobApplication
		if err := tx.First(&application, "caregiver_user_id = ? AND job_id = ?", caregiverID, jobID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.JobApplication{}, "caregiver_user_id = ? AND job_id = ?", caregiverID, jobID).Error
	})
	return Translate(err)
}
