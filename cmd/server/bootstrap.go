package main

import (
	"github.com/dimerryy/careplatform/backend/internal/config"
	"github.com/dimerryy/careplatform/backend/internal/handlers"
	"github.com/dimerryy/careplatform/backend/internal/models"
	"github.com/dimerryy/careplatform/backend/internal/repositories"
	"github.com/dimerryy/careplatform/backend/internal/services"
	"github.com/dimerryy/careplatform/backend/pkg/logger"
)

// appServices holds all initialized repositories and handlers needed by the application.
type appServices struct {
	userHandler           *handlers.UserHandler
	caregiverHandler      *handlers.CaregiverHandler
	memberHandler         *handlers.MemberHandler
	addressHandler        *handlers.AddressHandler
	jobHandler            *handlers.JobHandler
	jobApplicationHandler *handlers.JobApplicationHandler
	appointmentHandler    *handlers.AppointmentHandler
	reportHandler         *handlers.ReportHandler
	healthHandler         *handlers.HealthHandler
}

// bootstrap initializes the database, runs migrations and wires up handlers.
func bootstrap(cfg *config.Config) *appServices {
	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	db := models.GetDB()
	defaultDates := cfg.Server.DefaultDatesToToday

	return &appServices{
		userHandler:           handlers.NewUserHandler(repositories.NewUserRepository(db)),
		caregiverHandler:      handlers.NewCaregiverHandler(repositories.NewCaregiverRepository(db)),
		memberHandler:         handlers.NewMemberHandler(repositories.NewMemberRepository(db)),
		addressHandler:        handlers.NewAddressHandler(repositories.NewAddressRepository(db)),
		jobHandler:            handlers.NewJobHandler(repositories.NewJobRepository(db), defaultDates),
		jobApplicationHandler: handlers.NewJobApplicationHandler(repositories.NewJobApplicationRepository(db), defaultDates),
		appointmentHandler:    handlers.NewAppointmentHandler(repositories.NewAppointmentRepository(db), defaultDates),
		reportHandler:         handlers.NewReportHandler(services.NewReportService(db)),
		healthHandler:         handlers.NewHealthHandler(),
	}
}
