package models

import (
	"context"
	"fmt"
	"time"

	"github.com/dimerryy/careplatform/backend/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB(cfg *config.DatabaseConfig) error {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	// Bound the first connection so a dead database fails startup fast
	// instead of hanging on the driver's own timeout.
	connTimeout := time.Duration(cfg.ConnTimeout) * time.Second
	if connTimeout <= 0 {
		connTimeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), connTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}

	DB = db
	return nil
}

// AutoMigrate creates the schema if absent. gorm migration is idempotent;
// a conflicting existing definition surfaces as the returned error.
func AutoMigrate() error {
	if err := DB.AutoMigrate(
		&User{},
		&Caregiver{},
		&Member{},
		&Address{},
		&Job{},
		&JobApplication{},
		&Appointment{},
	); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}
	return EnsureJobApplicationsView(DB)
}

// EnsureJobApplicationsView (re)creates the persisted job_applications_view:
// one row per (job, applicant) with poster and applicant names materialized.
func EnsureJobApplicationsView(db *gorm.DB) error {
	concat := func(a, b string) string {
		if db.Dialector.Name() == "mysql" {
			return fmt.Sprintf("CONCAT(%s, ' ', %s)", a, b)
		}
		return fmt.Sprintf("%s || ' ' || %s", a, b)
	}

	stmt := fmt.Sprintf(`CREATE VIEW job_applications_view AS
SELECT
  ja.job_id,
  j.required_caregiving_type,
  j.other_requirements,
  j.date_posted,
  %s AS member_name,
  ja.caregiver_user_id,
  %s AS applicant_name,
  c.caregiving_type AS applicant_caregiving_type,
  c.hourly_rate,
  ja.date_applied
FROM job_applications ja
JOIN jobs j ON ja.job_id = j.job_id
JOIN members m ON j.member_user_id = m.member_user_id
JOIN users um ON m.member_user_id = um.user_id
JOIN caregivers c ON ja.caregiver_user_id = c.caregiver_user_id
JOIN users uc ON c.caregiver_user_id = uc.user_id`,
		concat("um.given_name", "um.surname"),
		concat("uc.given_name", "uc.surname"))

	// sqlite has no CREATE OR REPLACE VIEW, so drop-and-create everywhere.
	if err := db.Exec("DROP VIEW IF EXISTS job_applications_view").Error; err != nil {
		return fmt.Errorf("dropping job_applications_view: %w", err)
	}
	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("creating job_applications_view: %w", err)
	}
	return nil
}

func GetDB() *gorm.DB {
	return DB
}
