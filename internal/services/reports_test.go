package services

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/dimerryy/careplatform/backend/internal/models"
	"github.com/dimerryy/careplatform/backend/internal/repositories"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
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

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("create %T: %v", value, err)
	}
}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return d
}

// seedMarketplace builds a small but complete scenario:
//
//	caregiver Dana Omarova (rate 10), caregiver Aigerim Seit (rate 20)
//	member Serik Aldiyar with two jobs; Dana applies to the first job
//	Dana: confirmed appointments of 3h and 5h, one pending 7h
//	Aigerim: one confirmed appointment of 1h
func seedMarketplace(t *testing.T, db *gorm.DB) (dana, aigerim, serik *models.User) {
	t.Helper()

	dana = &models.User{Email: "dana@example.com", GivenName: "Dana", Surname: "Omarova", City: "Astana", Password: "x"}
	aigerim = &models.User{Email: "aigerim@example.com", GivenName: "Aigerim", Surname: "Seit", City: "Almaty", Password: "x"}
	serik = &models.User{Email: "serik@example.com", GivenName: "Serik", Surname: "Aldiyar", City: "Astana", Password: "x"}
	mustCreate(t, db, dana)
	mustCreate(t, db, aigerim)
	mustCreate(t, db, serik)

	mustCreate(t, db, &models.Caregiver{CaregiverUserID: dana.UserID, CaregivingType: "elderly care", HourlyRate: 10})
	mustCreate(t, db, &models.Caregiver{CaregiverUserID: aigerim.UserID, CaregivingType: "babysitter", HourlyRate: 20})
	mustCreate(t, db, &models.Member{MemberUserID: serik.UserID, HouseRules: "No smoking indoors"})

	job1 := &models.Job{MemberUserID: serik.UserID, RequiredCaregivingType: "elderly care", OtherRequirements: "Must like dogs", DatePosted: date(t, "2024-10-01")}
	job2 := &models.Job{MemberUserID: serik.UserID, RequiredCaregivingType: "babysitter", OtherRequirements: "Evening shifts", DatePosted: date(t, "2024-10-02")}
	mustCreate(t, db, job1)
	mustCreate(t, db, job2)

	mustCreate(t, db, &models.JobApplication{CaregiverUserID: dana.UserID, JobID: job1.JobID, DateApplied: date(t, "2024-10-05")})

	mustCreate(t, db, &models.Appointment{CaregiverUserID: dana.UserID, MemberUserID: serik.UserID, AppointmentDate: date(t, "2024-11-01"), AppointmentTime: "09:00", WorkHours: 3, Status: models.StatusConfirmed})
	mustCreate(t, db, &models.Appointment{CaregiverUserID: dana.UserID, MemberUserID: serik.UserID, AppointmentDate: date(t, "2024-11-08"), AppointmentTime: "09:00", WorkHours: 5, Status: models.StatusConfirmed})
	mustCreate(t, db, &models.Appointment{CaregiverUserID: dana.UserID, MemberUserID: serik.UserID, AppointmentDate: date(t, "2024-11-15"), AppointmentTime: "09:00", WorkHours: 7, Status: models.StatusPending})
	mustCreate(t, db, &models.Appointment{CaregiverUserID: aigerim.UserID, MemberUserID: serik.UserID, AppointmentDate: date(t, "2024-11-20"), AppointmentTime: "18:00", WorkHours: 1, Status: models.StatusConfirmed})
	return dana, aigerim, serik
}

func TestApplicantCounts_IncludesZero(t *testing.T) {
	db := openTestDB(t)
	seedMarketplace(t, db)

	rows, err := NewReportService(db).ApplicantCounts(context.Background())
	if err != nil {
		t.Fatalf("applicant counts: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(rows))
	}
	// Ordered by count descending: the applied-to job first.
	if rows[0].ApplicantCount != 1 {
		t.Errorf("first job count = %d, want 1", rows[0].ApplicantCount)
	}
	if rows[1].ApplicantCount != 0 {
		t.Errorf("second job count = %d, want 0 (jobs without applicants must still appear)", rows[1].ApplicantCount)
	}
	if rows[0].MemberName != "Serik Aldiyar" {
		t.Errorf("member name = %q, want Serik Aldiyar", rows[0].MemberName)
	}

	// The aggregate reads no state it writes: a second run is identical.
	again, err := NewReportService(db).ApplicantCounts(context.Background())
	if err != nil {
		t.Fatalf("applicant counts again: %v", err)
	}
	if !reflect.DeepEqual(rows, again) {
		t.Errorf("second run differs: %+v vs %+v", rows, again)
	}
}

func TestReports_LostConnectionMapsToConnectivity(t *testing.T) {
	db := openTestDB(t)
	seedMarketplace(t, db)

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("access connection pool: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close pool: %v", err)
	}

	_, err = NewReportService(db).ApplicantCounts(context.Background())
	if err == nil {
		t.Fatal("expected an error from a closed pool")
	}
	if !errors.Is(err, repositories.ErrConnectivity) {
		t.Errorf("error %v does not match ErrConnectivity", err)
	}
}

func TestCaregiverTotalHours_ConfirmedOnly(t *testing.T) {
	db := openTestDB(t)
	dana, _, _ := seedMarketplace(t, db)

	rows, err := NewReportService(db).CaregiverTotalHours(context.Background())
	if err != nil {
		t.Fatalf("total hours: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 caregivers, got %d", len(rows))
	}
	// Dana first: 3 + 5 confirmed hours; the pending 7h is excluded.
	if rows[0].CaregiverUserID != dana.UserID || rows[0].TotalHours != 8 {
		t.Errorf("top row = %+v, want Dana with 8 hours", rows[0])
	}
	if rows[1].TotalHours != 1 {
		t.Errorf("second row hours = %v, want 1", rows[1].TotalHours)
	}
}

func TestAveragePayPerCaregiver(t *testing.T) {
	db := openTestDB(t)
	dana, aigerim, _ := seedMarketplace(t, db)

	rows, err := NewReportService(db).AveragePayPerCaregiver(context.Background())
	if err != nil {
		t.Fatalf("average pay: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 caregivers, got %d", len(rows))
	}

	byID := map[uint]float64{}
	for _, row := range rows {
		byID[row.CaregiverUserID] = row.AveragePay
	}
	// Dana: (10*3 + 10*5) / 2 = 40. Aigerim: 20*1 / 1 = 20.
	if math.Abs(byID[dana.UserID]-40) > 1e-9 {
		t.Errorf("dana average = %v, want 40", byID[dana.UserID])
	}
	if math.Abs(byID[aigerim.UserID]-20) > 1e-9 {
		t.Errorf("aigerim average = %v, want 20", byID[aigerim.UserID])
	}
}

func TestAboveAverageEarners(t *testing.T) {
	db := openTestDB(t)
	dana, _, _ := seedMarketplace(t, db)

	earners, err := NewReportService(db).AboveAverageEarners(context.Background())
	if err != nil {
		t.Fatalf("above average: %v", err)
	}
	// Overall average of per-caregiver averages is (40 + 20) / 2 = 30;
	// only Dana (40) exceeds it.
	if len(earners) != 1 {
		t.Fatalf("expected 1 earner, got %d", len(earners))
	}
	if earners[0].CaregiverUserID != dana.UserID {
		t.Errorf("earner = %+v, want Dana", earners[0])
	}
	if math.Abs(earners[0].OverallAverage-30) > 1e-9 {
		t.Errorf("overall average = %v, want 30", earners[0].OverallAverage)
	}
}

func TestAboveAverageEarners_Empty(t *testing.T) {
	db := openTestDB(t)

	earners, err := NewReportService(db).AboveAverageEarners(context.Background())
	if err != nil {
		t.Fatalf("above average: %v", err)
	}
	if len(earners) != 0 {
		t.Errorf("expected no earners on empty data, got %d", len(earners))
	}
}

func TestTotalConfirmedCost(t *testing.T) {
	db := openTestDB(t)
	svc := NewReportService(db)

	// Zero before any data exists.
	total, err := svc.TotalConfirmedCost(context.Background())
	if err != nil {
		t.Fatalf("total cost: %v", err)
	}
	if total != 0 {
		t.Errorf("empty total = %v, want 0", total)
	}

	seedMarketplace(t, db)

	total, err = svc.TotalConfirmedCost(context.Background())
	if err != nil {
		t.Fatalf("total cost: %v", err)
	}
	// 10*3 + 10*5 + 20*1 = 100; the pending appointment contributes nothing.
	if math.Abs(total-100) > 1e-9 {
		t.Errorf("total = %v, want 100", total)
	}

	// Aggregates are read-only: a second run returns the same value.
	again, err := svc.TotalConfirmedCost(context.Background())
	if err != nil {
		t.Fatalf("total cost again: %v", err)
	}
	if again != total {
		t.Errorf("second run = %v, want %v", again, total)
	}
}

func TestJobApplicationsView(t *testing.T) {
	db := openTestDB(t)
	dana, _, _ := seedMarketplace(t, db)

	rows, err := NewReportService(db).JobApplicationsView(context.Background())
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 view row, got %d", len(rows))
	}
	row := rows[0]
	if row.CaregiverUserID != dana.UserID {
		t.Errorf("caregiver id = %d, want %d", row.CaregiverUserID, dana.UserID)
	}
	if row.ApplicantName != "Dana Omarova" || row.MemberName != "Serik Aldiyar" {
		t.Errorf("names = %q / %q, want Dana Omarova / Serik Aldiyar", row.ApplicantName, row.MemberName)
	}
	if row.RequiredCaregivingType != "elderly care" || row.HourlyRate != 10 {
		t.Errorf("unexpected view row %+v", row)
	}
}

func TestConfirmedAppointments(t *testing.T) {
	db := openTestDB(t)
	seedMarketplace(t, db)

	rows, err := NewReportService(db).ConfirmedAppointments(context.Background())
	if err != nil {
		t.Fatalf("confirmed appointments: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 confirmed appointments, got %d", len(rows))
	}
	if rows[0].CaregiverName != "Dana Omarova" || rows[0].MemberName != "Serik Aldiyar" {
		t.Errorf("unexpected first row %+v", rows[0])
	}
	// Ordered by date ascending.
	if rows[0].WorkHours != 3 || rows[2].WorkHours != 1 {
		t.Errorf("rows out of order: %+v", rows)
	}
}

func TestSearchJobsByRequirement_CaseInsensitive(t *testing.T) {
	db := openTestDB(t)
	seedMarketplace(t, db)

	rows, err := NewReportService(db).SearchJobsByRequirement(context.Background(), "DOGS")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 job, got %d", len(rows))
	}
	if rows[0].OtherRequirements != "Must like dogs" {
		t.Errorf("unexpected row %+v", rows[0])
	}
}

func TestAppointmentsByCaregivingType(t *testing.T) {
	db := openTestDB(t)
	seedMarketplace(t, db)

	rows, err := NewReportService(db).AppointmentsByCaregivingType(context.Background(), "babysitter")
	if err != nil {
		t.Fatalf("appointments by type: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(rows))
	}
	if rows[0].CaregiverName != "Aigerim Seit" || rows[0].WorkHours != 1 {
		t.Errorf("unexpected row %+v", rows[0])
	}
}

func TestSearchMembers_Filters(t *testing.T) {
	db := openTestDB(t)
	seedMarketplace(t, db)

	svc := NewReportService(db)

	// City + type + house rule all match.
	rows, err := svc.SearchMembers(context.Background(), "Astana", "elderly care", "smoking")
	if err != nil {
		t.Fatalf("search members: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 member, got %d", len(rows))
	}
	if rows[0].MemberName != "Serik Aldiyar" {
		t.Errorf("unexpected row %+v", rows[0])
	}

	// Wrong city matches nothing.
	rows, err = svc.SearchMembers(context.Background(), "Karaganda", "elderly care", "")
	if err != nil {
		t.Fatalf("search members: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no members in Karaganda, got %d", len(rows))
	}

	// No filters: one row per (member, job).
	rows, err = svc.SearchMembers(context.Background(), "", "", "")
	if err != nil {
		t.Fatalf("search members: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("expected 2 rows without filters, got %d", len(rows))
	}
}
