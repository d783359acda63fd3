package repositories

import (
	"github.com/dimerryy/careplatform/backend/internal/models"
	"gorm.io/gorm"
)

// Cascade deletes run dependents-first inside the caller's transaction so no
// row is ever left referencing a missing key. Deleting zero dependent rows
// is fine; the subtype row itself may be absent when cascading from User.

func deleteCaregiverCascade(tx *gorm.DB, caregiverID uint) error {
	if err := tx.Delete(&models.JobApplication{}, "caregiver_user_id = ?", caregiverID).Error; err != nil {
		return err
	}
	if err := tx.Delete(&models.Appointment{}, "caregiver_user_id = ?", caregiverID).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Caregiver{}, "caregiver_user_id = ?", caregiverID).Error
}

func deleteMemberCascade(tx *gorm.DB, memberID uint) error {
	jobIDs := tx.Model(&models.Job{}).Select("job_id").Where("member_user_id = ?", memberID)
	if err := tx.Delete(&models.JobApplication{}, "job_id IN (?)", jobIDs).Error; err != nil {
		return err
	}
	if err := tx.Delete(&models.Job{}, "member_user_id = ?", memberID).Error; err != nil {
		return err
	}
	if err := tx.Delete(&models.Address{}, "member_user_id = ?", memberID).Error; err != nil {
		return err
	}
	if err := tx.Delete(&models.Appointment{}, "member_user_id = ?", memberID).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Member{}, "member_user_id = ?", memberID).Error
}

func deleteJobCascade(tx *gorm.DB, jobID uint) error {
	if err := tx.Delete(&models.JobApplication{}, "job_id = ?", jobID).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Job{}, "job_id = ?", jobID).Error
}
