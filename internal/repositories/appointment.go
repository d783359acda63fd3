package repositories

import (
	"context"
	"time"

	"github.com/dimerryy/careplatform/backend/internal/models"
	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

type CreateAppointmentRequest struct {
	CaregiverUserID uint    `json:"caregiver_user_id" binding:"required"`
	MemberUserID    uint    `json:"member_user_id" binding:"required"`
	AppointmentDate string  `json:"appointment_date"` // 2006-01-02
	AppointmentTime string  `json:"appointment_time" binding:"required"`
	WorkHours       float64 `json:"work_hours"`
	Status          string  `json:"status" binding:"required"`
}

type UpdateAppointmentRequest struct {
	CaregiverUserID uint    `json:"caregiver_user_id" binding:"required"`
	MemberUserID    uint    `json:"member_user_id" binding:"required"`
	AppointmentDate string  `json:"appointment_date"` // 2006-01-02
	AppointmentTime string  `json:"appointment_time" binding:"required"`
	WorkHours       float64 `json:"work_hours"`
	Status          string  `json:"status" binding:"required"`
}

// AppointmentRow is an appointment joined with both party names.
type AppointmentRow struct {
	AppointmentID      uint      `json:"appointment_id"`
	CaregiverUserID    uint      `json:"caregiver_user_id"`
	MemberUserID       uint      `json:"member_user_id"`
	CaregiverGivenName string    `json:"caregiver_given_name"`
	CaregiverSurname   string    `json:"caregiver_surname"`
	MemberGivenName    string    `json:"member_given_name"`
	MemberSurname      string    `json:"member_surname"`
	AppointmentDate    time.Time `json:"appointment_date"`
	AppointmentTime    string    `json:"appointment_time"`
	WorkHours          float64   `json:"work_hours"`
	Status             string    `json:"status"`
}

func validateAppointmentFields(workHours float64, status string) error {
	if workHours < 0 {
		return validationError("work_hours must be non-negative")
	}
	if !models.ValidStatus(status) {
		return validationError("unknown status %q", status)
	}
	return nil
}

func (r *AppointmentRepository) Create(ctx context.Context, req *CreateAppointmentRequest) (*models.Appointment, error) {
	date, err := parseDate(req.AppointmentDate, "appointment_date")
	if err != nil {
		return nil, err
	}
	if err := validateAppointmentFields(req.WorkHours, req.Status); err != nil {
		return nil, err
	}

	appointment := models.Appointment{
		CaregiverUserID: req.CaregiverUserID,
		MemberUserID:    req.MemberUserID,
		AppointmentDate: date,
		AppointmentTime: req.AppointmentTime,
		WorkHours:       req.WorkHours,
		Status:          req.Status,
	}
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireCaregiver(tx, req.CaregiverUserID); err != nil {
			return err
		}
		if err := requireMember(tx, req.MemberUserID); err != nil {
			return err
		}
		return tx.Create(&appointment).Error
	})
	if err != nil {
		return nil, Translate(err)
	}
	return &appointment, nil
}

func (r *AppointmentRepository) Get(ctx context.Context, id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.WithContext(ctx).First(&appointment, "appointment_id = ?", id).Error; err != nil {
		return nil, Translate(err)
	}
	return &appointment, nil
}

func (r *AppointmentRepository) List(ctx context.Context) ([]AppointmentRow, error) {
	var rows []AppointmentRow
	err := r.db.WithContext(ctx).
		Table("appointments a").
		Select("a.appointment_id, a.caregiver_user_id, a.member_user_id, uc.given_name AS caregiver_given_name, uc.surname AS caregiver_surname, um.given_name AS member_given_name, um.surname AS member_surname, a.appointment_date, a.appointment_time, a.work_hours, a.status").
		Joins("JOIN caregivers c ON a.caregiver_user_id = c.caregiver_user_id").
		Joins("JOIN users uc ON c.caregiver_user_id = uc.user_id").
		Joins("JOIN members m ON a.member_user_id = m.member_user_id").
		Joins("JOIN users um ON m.member_user_id = um.user_id").
		Order("a.appointment_date ASC, a.appointment_time ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, Translate(err)
	}
	return rows, nil
}

// Update replaces the whole record; both referenced parties must still exist
// since the references themselves may change.
func (r *AppointmentRepository) Update(ctx context.Context, id uint, req *UpdateAppointmentRequest) (*models.Appointment, error) {
	date, err := parseDate(req.AppointmentDate, "appointment_date")
	if err != nil {
		return nil, err
	}
	if err := validateAppointmentFields(req.WorkHours, req.Status); err != nil {
		return nil, err
	}

	var appointment models.Appointment
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&appointment, "appointment_id = ?", id).Error; err != nil {
			return err
		}
		if err := requireCaregiver(tx, req.CaregiverUserID); err != nil {
			return err
		}
		if err := requireMember(tx, req.MemberUserID); err != nil {
			return err
		}
		appointment.CaregiverUserID = req.CaregiverUserID
		appointment.MemberUserID = req.MemberUserID
		appointment.AppointmentDate = date
		appointment.AppointmentTime = req.AppointmentTime
		appointment.WorkHours = req.WorkHours
		appointment.Status = req.Status
		return tx.Save(&appointment).Error
	})
	if err != nil {
		return nil, Translate(err)
	}
	return &appointment, nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var appointment models.Appointment
		if err := tx.First(&appointment, "appointment_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Appointment{}, "appointment_id = ?", id).Error
	})
	return Translate(err)
}
