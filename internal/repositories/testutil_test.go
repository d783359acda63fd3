package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/dimerryy/careplatform/backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB returns a fresh in-memory database with the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	// A second pool connection would see a different in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("access connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Caregiver{},
		&models.Member{},
		&models.Address{},
		&models.Job{},
		&models.JobApplication{},
		&models.Appointment{},
	); err != nil {
		t.Fatalf("migrate test schema: %v", err)
	}
	if err := models.EnsureJobApplicationsView(db); err != nil {
		t.Fatalf("create view: %v", err)
	}
	return db
}

var seedSeq int

func seedUser(t *testing.T, db *gorm.DB, givenName, surname string) *models.User {
	t.Helper()
	seedSeq++
	user, err := NewUserRepository(db).Create(context.Background(), &CreateUserRequest{
		Email:     fmt.Sprintf("%s.%s.%d@example.com", givenName, surname, seedSeq),
		GivenName: givenName,
		Surname:   surname,
		City:      "Astana",
		Password:  "secret123",
	})
	if err != nil {
		t.Fatalf("seed user %s %s: %v", givenName, surname, err)
	}
	return user
}

func seedCaregiver(t *testing.T, db *gorm.DB, userID uint, caregivingType string, rate float64) *models.Caregiver {
	t.Helper()
	caregiver, err := NewCaregiverRepository(db).Create(context.Background(), &CreateCaregiverRequest{
		CaregiverUserID: userID,
		CaregivingType:  caregivingType,
		Gender:          "female",
		HourlyRate:      rate,
	})
	if err != nil {
		t.Fatalf("seed caregiver %d: %v", userID, err)
	}
	return caregiver
}

func seedMember(t *testing.T, db *gorm.DB, userID uint, houseRules string) *models.Member {
	t.Helper()
	member, err := NewMemberRepository(db).Create(context.Background(), &CreateMemberRequest{
		MemberUserID: userID,
		HouseRules:   houseRules,
	})
	if err != nil {
		t.Fatalf("seed member %d: %v", userID, err)
	}
	return member
}

func seedAddress(t *testing.T, db *gorm.DB, memberID uint, street string) *models.Address {
	t.Helper()
	address, err := NewAddressRepository(db).Create(context.Background(), &CreateAddressRequest{
		MemberUserID: memberID,
		HouseNumber:  "25",
		Street:       street,
		Town:         "Esil",
	})
	if err != nil {
		t.Fatalf("seed address %d: %v", memberID, err)
	}
	return address
}

func seedJob(t *testing.T, db *gorm.DB, memberID uint, caregivingType string) *models.Job {
	t.Helper()
	job, err := NewJobRepository(db).Create(context.Background(), &CreateJobRequest{
		MemberUserID:           memberID,
		RequiredCaregivingType: caregivingType,
		OtherRequirements:      "gentle",
		DatePosted:             "2024-11-02",
	})
	if err != nil {
		t.Fatalf("seed job for member %d: %v", memberID, err)
	}
	return job
}

func seedApplication(t *testing.T, db *gorm.DB, caregiverID, jobID uint) *models.JobApplication {
	t.Helper()
	application, err := NewJobApplicationRepository(db).Create(context.Background(), &CreateJobApplicationRequest{
		CaregiverUserID: caregiverID,
		JobID:           jobID,
		DateApplied:     "2024-11-05",
	})
	if err != nil {
		t.Fatalf("seed application (%d,%d): %v", caregiverID, jobID, err)
	}
	return application
}

func seedAppointment(t *testing.T, db *gorm.DB, caregiverID, memberID uint, hours float64, status string) *models.Appointment {
	t.Helper()
	appointment, err := NewAppointmentRepository(db).Create(context.Background(), &CreateAppointmentRequest{
		CaregiverUserID: caregiverID,
		MemberUserID:    memberID,
		AppointmentDate: "2024-12-01",
		AppointmentTime: "09:00",
		WorkHours:       hours,
		Status:          status,
	})
	if err != nil {
		t.Fatalf("seed appointment (%d,%d): %v", caregiverID, memberID, err)
	}
	return appointment
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}
