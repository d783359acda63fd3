package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/dimerryy/careplatform/backend/internal/repositories"
	"gorm.io/gorm"
)

// ReportService exposes the read-only cross-entity queries: aggregates over
// appointments and applications, the persisted job_applications_view, and
// the browse/search queries. No method mutates state.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// round2 rounds a display average to 2 decimal places. Summed totals are
// never rounded.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type JobApplicantCount struct {
	JobID                  uint   `json:"job_id"`
	GivenName              string `json:"-"`
	Surname                string `json:"-"`
	MemberName             string `json:"member_name"`
	RequiredCaregivingType string `json:"required_caregiving_type"`
	ApplicantCount         int64  `json:"applicant_count"`
}

// ApplicantCounts returns the number of applicants per job. Jobs without
// applications appear with a count of zero.
func (s *ReportService) ApplicantCounts(ctx context.Context) ([]JobApplicantCount, error) {
	var rows []JobApplicantCount
	err := s.db.WithContext(ctx).
		Table("jobs j").
		Select("j.job_id, u.given_name, u.surname, j.required_caregiving_type, COUNT(ja.caregiver_user_id) AS applicant_count").
		Joins("JOIN members m ON j.member_user_id = m.member_user_id").
		Joins("JOIN users u ON m.member_user_id = u.user_id").
		Joins("LEFT JOIN job_applications ja ON j.job_id = ja.job_id").
		Group("j.job_id, u.given_name, u.surname, j.required_caregiving_type").
		Order("applicant_count DESC, j.job_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, repositories.Translate(err)
	}
	for i := range rows {
		rows[i].MemberName = rows[i].GivenName + " " + rows[i].Surname
	}
	return rows, nil
}

type CaregiverHours struct {
	CaregiverUserID uint    `json:"caregiver_user_id"`
	GivenName       string  `json:"-"`
	Surname         string  `json:"-"`
	CaregiverName   string  `json:"caregiver_name"`
	CaregivingType  string  `json:"caregiving_type"`
	TotalHours      float64 `json:"total_hours"`
}

// CaregiverTotalHours sums confirmed appointment hours per caregiver.
func (s *ReportService) CaregiverTotalHours(ctx context.Context) ([]CaregiverHours, error) {
	var rows []CaregiverHours
	err := s.db.WithContext(ctx).
		Table("appointments a").
		Select("c.caregiver_user_id, u.given_name, u.surname, c.caregiving_type, SUM(a.work_hours) AS total_hours").
		Joins("JOIN caregivers c ON a.caregiver_user_id = c.caregiver_user_id").
		Joins("JOIN users u ON c.caregiver_user_id = u.user_id").
		Where("a.status = ?", "confirmed").
		Group("c.caregiver_user_id, u.given_name, u.surname, c.caregiving_type").
		Order("total_hours DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, repositories.Translate(err)
	}
	for i := range rows {
		rows[i].CaregiverName = rows[i].GivenName + " " + rows[i].Surname
	}
	return rows, nil
}

type CaregiverAveragePay struct {
	CaregiverUserID uint    `json:"caregiver_user_id"`
	GivenName       string  `json:"-"`
	Surname         string  `json:"-"`
	CaregiverName   string  `json:"caregiver_name"`
	CaregivingType  string  `json:"caregiving_type"`
	AveragePay      float64 `json:"average_pay"`
}

// averagePayRows returns unrounded per-caregiver averages of
// hourly_rate * work_hours over confirmed appointments.
func (s *ReportService) averagePayRows(ctx context.Context) ([]CaregiverAveragePay, error) {
	var rows []CaregiverAveragePay
	err := s.db.WithContext(ctx).
		Table("appointments a").
		Select("c.caregiver_user_id, u.given_name, u.surname, c.caregiving_type, AVG(c.hourly_rate * a.work_hours) AS average_pay").
		Joins("JOIN caregivers c ON a.caregiver_user_id = c.caregiver_user_id").
		Joins("JOIN users u ON c.caregiver_user_id = u.user_id").
		Where("a.status = ?", "confirmed").
		Group("c.caregiver_user_id, u.given_name, u.surname, c.caregiving_type").
		Order("average_pay DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, repositories.Translate(err)
	}
	for i := range rows {
		rows[i].CaregiverName = rows[i].GivenName + " " + rows[i].Surname
	}
	return rows, nil
}

// AveragePayPerCaregiver returns per-caregiver average pay per confirmed
// appointment, rounded to 2 decimal places for display.
func (s *ReportService) AveragePayPerCaregiver(ctx context.Context) ([]CaregiverAveragePay, error) {
	rows, err := s.averagePayRows(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].AveragePay = round2(rows[i].AveragePay)
	}
	return rows, nil
}

type AboveAverageEarner struct {
	CaregiverUserID uint    `json:"caregiver_user_id"`
	CaregiverName   string  `json:"caregiver_name"`
	CaregivingType  string  `json:"caregiving_type"`
	AverageEarnings float64 `json:"average_earnings"`
	OverallAverage  float64 `json:"overall_average"`
}

// AboveAverageEarners filters caregivers whose average pay exceeds the
// population average of per-caregiver averages. The second aggregation
// stage runs in Go so the query stays portable across drivers.
func (s *ReportService) AboveAverageEarners(ctx context.Context) ([]AboveAverageEarner, error) {
	rows, err := s.averagePayRows(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []AboveAverageEarner{}, nil
	}

	var sum float64
	for _, row := range rows {
		sum += row.AveragePay
	}
	overall := sum / float64(len(rows))

	earners := []AboveAverageEarner{}
	for _, row := range rows {
		if row.AveragePay > overall {
			earners = append(earners, AboveAverageEarner{
				CaregiverUserID: row.CaregiverUserID,
				CaregiverName:   row.CaregiverName,
				CaregivingType:  row.CaregivingType,
				AverageEarnings: round2(row.AveragePay),
				OverallAverage:  round2(overall),
			})
		}
	}
	return earners, nil
}

// TotalConfirmedCost returns the summed hourly_rate * work_hours over all
// confirmed appointments, 0 when there are none. Not rounded.
func (s *ReportService) TotalConfirmedCost(ctx context.Context) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).
		Table("appointments a").
		Joins("JOIN caregivers c ON a.caregiver_user_id = c.caregiver_user_id").
		Where("a.status = ?", "confirmed").
		Select("COALESCE(SUM(c.hourly_rate * a.work_hours), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, repositories.Translate(err)
	}
	return total, nil
}

type JobApplicationViewRow struct {
	JobID                   uint      `json:"job_id"`
	RequiredCaregivingType  string    `json:"required_caregiving_type"`
	OtherRequirements       string    `json:"other_requirements"`
	DatePosted              time.Time `json:"date_posted"`
	MemberName              string    `json:"member_name"`
	CaregiverUserID         uint      `json:"caregiver_user_id"`
	ApplicantName           string    `json:"applicant_name"`
	ApplicantCaregivingType string    `json:"applicant_caregiving_type"`
	HourlyRate              float64   `json:"hourly_rate"`
	DateApplied             time.Time `json:"date_applied"`
}

// JobApplicationsView reads the persisted view: one row per (job, applicant)
// with poster and applicant names materialized.
func (s *ReportService) JobApplicationsView(ctx context.Context) ([]JobApplicationViewRow, error) {
	var rows []JobApplicationViewRow
	err := s.db.WithContext(ctx).
		Table("job_applications_view").
		Order("job_id ASC, date_applied ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, repositories.Translate(err)
	}
	return rows, nil
}

type ConfirmedAppointment struct {
	CaregiverGivenName string    `json:"-"`
	CaregiverSurname   string    `json:"-"`
	MemberGivenName    string    `json:"-"`
	MemberSurname      string    `json:"-"`
	CaregiverName      string    `json:"caregiver_name"`
	MemberName         string    `json:"member_name"`
	AppointmentDate    time.Time `json:"appointment_date"`
	AppointmentTime    string    `json:"appointment_time"`
	WorkHours          float64   `json:"work_hours"`
}

// ConfirmedAppointments lists both party names for confirmed appointments.
func (s *ReportService) ConfirmedAppointments(ctx context.Context) ([]ConfirmedAppointment, error) {
	var rows []ConfirmedAppointment
	err := s.db.WithContext(ctx).
		Table("appointments a").
		Select("uc.given_name AS caregiver_given_name, uc.surname AS caregiver_surname, um.given_name AS member_given_name, um.surname AS member_surname, a.appointment_date, a.appointment_time, a.work_hours").
		Joins("JOIN caregivers c ON a.caregiver_user_id = c.caregiver_user_id").
		Joins("JOIN users uc ON c.caregiver_user_id = uc.user_id").
		Joins("JOIN members m ON a.member_user_id = m.member_user_id").
		Joins("JOIN users um ON m.member_user_id = um.user_id").
		Where("a.status = ?", "confirmed").
		Order("a.appointment_date ASC, a.appointment_time ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, repositories.Translate(err)
	}
	for i := range rows {
		rows[i].CaregiverName = rows[i].CaregiverGivenName + " " + rows[i].CaregiverSurname
		rows[i].MemberName = rows[i].MemberGivenName + " " + rows[i].MemberSurname
	}
	return rows, nil
}

type JobSearchRow struct {
	JobID                  uint   `json:"job_id"`
	RequiredCaregivingType string `json:"required_caregiving_type"`
	OtherRequirements      string `json:"other_requirements"`
}

// SearchJobsByRequirement finds jobs whose other_requirements contain the
// term, case-insensitively.
func (s *ReportService) SearchJobsByRequirement(ctx context.Context, term string) ([]JobSearchRow, error) {
	var rows []JobSearchRow
	err := s.db.WithContext(ctx).
		Table("jobs").
		Select("job_id, required_caregiving_type, other_requirements").
		Where("LOWER(other_requirements) LIKE ?", "%"+strings.ToLower(term)+"%").
		Order("job_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, repositories.Translate(err)
	}
	return rows, nil
}

type TypedAppointment struct {
	AppointmentID   uint      `json:"appointment_id"`
	GivenName       string    `json:"-"`
	Surname         string    `json:"-"`
	CaregiverName   string    `json:"caregiver_name"`
	AppointmentDate time.Time `json:"appointment_date"`
	WorkHours       float64   `json:"work_hours"`
	Status          string    `json:"status"`
}

// AppointmentsByCaregivingType lists appointments of caregivers of the
// given type, e.g. all babysitter engagements with their work hours.
func (s *ReportService) AppointmentsByCaregivingType(ctx context.Context, caregivingType string) ([]TypedAppointment, error) {
	var rows []TypedAppointment
	err := s.db.WithContext(ctx).
		Table("appointments a").
		Select("a.appointment_id, u.given_name, u.surname, a.appointment_date, a.work_hours, a.status").
		Joins("JOIN caregivers c ON a.caregiver_user_id = c.caregiver_user_id").
		Joins("JOIN users u ON c.caregiver_user_id = u.user_id").
		Where("c.caregiving_type = ?", caregivingType).
		Order("a.appointment_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, repositories.Translate(err)
	}
	for i := range rows {
		rows[i].CaregiverName = rows[i].GivenName + " " + rows[i].Surname
	}
	return rows, nil
}

type MemberSearchRow struct {
	UserID                 uint   `json:"user_id"`
	GivenName              string `json:"-"`
	Surname                string `json:"-"`
	MemberName             string `json:"member_name"`
	City                   string `json:"city"`
	HouseRules             string `json:"house_rules"`
	JobID                  uint   `json:"job_id"`
	RequiredCaregivingType string `json:"required_caregiving_type"`
}

// SearchMembers finds members with a job of the required caregiving type,
// optionally filtered by city and a house-rules substring.
func (s *ReportService) SearchMembers(ctx context.Context, city, requiredType, houseRule string) ([]MemberSearchRow, error) {
	query := s.db.WithContext(ctx).
		Table("members m").
		Select("u.user_id, u.given_name, u.surname, u.city, m.house_rules, j.job_id, j.required_caregiving_type").
		Joins("JOIN users u ON m.member_user_id = u.user_id").
		Joins("JOIN jobs j ON m.member_user_id = j.member_user_id")

	if city != "" {
		query = query.Where("u.city = ?", city)
	}
	if requiredType != "" {
		query = query.Where("j.required_caregiving_type = ?", requiredType)
	}
	if houseRule != "" {
		query = query.Where("LOWER(m.house_rules) LIKE ?", "%"+strings.ToLower(houseRule)+"%")
	}

	var rows []MemberSearchRow
	if err := query.Order("u.surname ASC, u.given_name ASC").Scan(&rows).Error; err != nil {
		return nil, repositories.Translate(err)
	}
	for i := range rows {
		rows[i].MemberName = rows[i].GivenName + " " + rows[i].Surname
	}
	return rows, nil
}
