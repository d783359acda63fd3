package models

import (
	"time"
)

// Appointment status values.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDeclined  = "declined"
	StatusCompleted = "completed"
)

// ValidStatus reports whether s is a known appointment status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDeclined, StatusCompleted:
		return true
	}
	return false
}

// User is the supertype shared by caregivers and members.
type User struct {
	UserID             uint      `gorm:"primaryKey;column:user_id" json:"user_id"`
	Email              string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	GivenName          string    `gorm:"size:100;not null" json:"given_name"`
	Surname            string    `gorm:"size:100;not null" json:"surname"`
	City               string    `gorm:"size:100" json:"city"`
	PhoneNumber        string    `gorm:"size:50" json:"phone_number"`
	ProfileDescription string    `gorm:"type:text" json:"profile_description"`
	Password           string    `gorm:"size:255;not null" json:"-"` // bcrypt hash
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Caregiver is a User subtype offering paid care services.
type Caregiver struct {
	CaregiverUserID uint      `gorm:"primaryKey;column:caregiver_user_id" json:"caregiver_user_id"`
	Photo           string    `gorm:"size:500" json:"photo"`
	Gender          string    `gorm:"size:20" json:"gender"`
	CaregivingType  string    `gorm:"size:100;not null" json:"caregiving_type"` // babysitter, elderly care, playmate for children
	HourlyRate      float64   `gorm:"type:decimal(10,2);not null" json:"hourly_rate"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:CaregiverUserID;references:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// Member is a User subtype seeking care services.
type Member struct {
	MemberUserID         uint      `gorm:"primaryKey;column:member_user_id" json:"member_user_id"`
	HouseRules           string    `gorm:"type:text" json:"house_rules"`
	DependentDescription string    `gorm:"type:text" json:"dependent_description"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:MemberUserID;references:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// Address is the single address of a Member. The member id is the key, so
// at most one address per member holds at the schema level.
type Address struct {
	MemberUserID uint      `gorm:"primaryKey;column:member_user_id" json:"member_user_id"`
	HouseNumber  string    `gorm:"size:20;not null" json:"house_number"`
	Street       string    `gorm:"size:200;not null" json:"street"`
	Town         string    `gorm:"size:100;not null" json:"town"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Member *Member `gorm:"foreignKey:MemberUserID;references:MemberUserID;constraint:OnDelete:CASCADE" json:"member,omitempty"`
}

// Job is a posting by a Member.
type Job struct {
	JobID                  uint      `gorm:"primaryKey;column:job_id" json:"job_id"`
	MemberUserID           uint      `gorm:"index;not null" json:"member_user_id"`
	RequiredCaregivingType string    `gorm:"size:100;not null" json:"required_caregiving_type"`
	OtherRequirements      string    `gorm:"type:text" json:"other_requirements"`
	DatePosted             time.Time `gorm:"type:date;not null" json:"date_posted"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`

	Member *Member `gorm:"foreignKey:MemberUserID;references:MemberUserID;constraint:OnDelete:CASCADE" json:"member,omitempty"`
}

// JobApplication is the N:N association between caregivers and jobs.
type JobApplication struct {
	CaregiverUserID uint      `gorm:"primaryKey;column:caregiver_user_id" json:"caregiver_user_id"`
	JobID           uint      `gorm:"primaryKey;column:job_id" json:"job_id"`
	DateApplied     time.Time `gorm:"type:date;not null" json:"date_applied"`
	CreatedAt       time.Time `json:"created_at"`

	Caregiver *Caregiver `gorm:"foreignKey:CaregiverUserID;references:CaregiverUserID;constraint:OnDelete:CASCADE" json:"caregiver,omitempty"`
	Job       *Job       `gorm:"foreignKey:JobID;references:JobID;constraint:OnDelete:CASCADE" json:"job,omitempty"`
}

// Appointment is a scheduled engagement between a caregiver and a member.
type Appointment struct {
	AppointmentID   uint      `gorm:"primaryKey;column:appointment_id" json:"appointment_id"`
	CaregiverUserID uint      `gorm:"index;not null" json:"caregiver_user_id"`
	MemberUserID    uint      `gorm:"index;not null" json:"member_user_id"`
	AppointmentDate time.Time `gorm:"type:date;not null" json:"appointment_date"`
	AppointmentTime string    `gorm:"size:8;not null" json:"appointment_time"` // HH:MM
	WorkHours       float64   `gorm:"type:decimal(10,2);not null" json:"work_hours"`
	Status          string    `gorm:"size:20;not null;default:pending" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Caregiver *Caregiver `gorm:"foreignKey:CaregiverUserID;references:CaregiverUserID;constraint:OnDelete:CASCADE" json:"caregiver,omitempty"`
	Member    *Member    `gorm:"foreignKey:MemberUserID;references:MemberUserID;constraint:OnDelete:CASCADE" json:"member,omitempty"`
}

// TableName overrides
func (User) TableName() string           { return "users" }
func (Caregiver) TableName() string      { return "caregivers" }
func (Member) TableName() string         { return "members" }
func (Address) TableName() string        { return "addresses" }
func (Job) TableName() string            { return "jobs" }
func (JobApplication) TableName() string { return "job_applications" }
func (Appointment) TableName() string    { return "appointments" }

// FullName joins the user's given name and surname for display.
func (u *User) FullName() string {
	return u.GivenName + " " + u.Surname
}
