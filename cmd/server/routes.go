package main

import (
	"time"

	"github.com/dimerryy/careplatform/backend/internal/config"
	"github.com/dimerryy/careplatform/backend/internal/middleware"
	"github.com/dimerryy/careplatform/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, cfg *config.Config, svc *appServices) {
	// Middleware
	r.Use(middleware.RequestID())
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))
	r.Use(middleware.StatementTimeout(time.Duration(cfg.Database.StatementTimeout) * time.Second))

	// Health check
	r.GET("/health", svc.healthHandler.CheckHealth)

	// API routes
	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.GET("", svc.userHandler.List)
			users.POST("", svc.userHandler.Create)
			users.GET("/:id", svc.userHandler.Get)
			users.PUT("/:id", svc.userHandler.Update)
			users.DELETE("/:id", svc.userHandler.Delete)
		}

		caregivers := api.Group("/caregivers")
		{
			caregivers.GET("", svc.caregiverHandler.List)
			caregivers.POST("", svc.caregiverHandler.Create)
			caregivers.POST("/commission", svc.caregiverHandler.ApplyCommission)
			caregivers.GET("/:id", svc.caregiverHandler.Get)
			caregivers.PUT("/:id", svc.caregiverHandler.Update)
			caregivers.DELETE("/:id", svc.caregiverHandler.Delete)
		}

		members := api.Group("/members")
		{
			members.GET("", svc.memberHandler.List)
			members.POST("", svc.memberHandler.Create)
			members.DELETE("/by-street", svc.memberHandler.DeleteByStreet)
			members.GET("/:id", svc.memberHandler.Get)
			members.PUT("/:id", svc.memberHandler.Update)
			members.DELETE("/:id", svc.memberHandler.Delete)
		}

		addresses := api.Group("/addresses")
		{
			addresses.GET("", svc.addressHandler.List)
			addresses.POST("", svc.addressHandler.Create)
			addresses.GET("/:memberId", svc.addressHandler.Get)
			addresses.PUT("/:memberId", svc.addressHandler.Update)
			addresses.DELETE("/:memberId", svc.addressHandler.Delete)
		}

		jobs := api.Group("/jobs")
		{
			jobs.GET("", svc.jobHandler.List)
			jobs.POST("", svc.jobHandler.Create)
			jobs.DELETE("/by-poster", svc.jobHandler.DeleteByPoster)
			jobs.GET("/:id", svc.jobHandler.Get)
			jobs.PUT("/:id", svc.jobHandler.Update)
			jobs.DELETE("/:id", svc.jobHandler.Delete)
		}

		applications := api.Group("/job-applications")
		{
			applications.GET("", svc.jobApplicationHandler.List)
			applications.POST("", svc.jobApplicationHandler.Create)
			applications.GET("/:caregiverId/:jobId", svc.jobApplicationHandler.Get)
			applications.DELETE("/:caregiverId/:jobId", svc.jobApplicationHandler.Delete)
		}

		appointments := api.Group("/appointments")
		{
			appointments.GET("", svc.appointmentHandler.List)
			appointments.POST("", svc.appointmentHandler.Create)
			appointments.GET("/:id", svc.appointmentHandler.Get)
			appointments.PUT("/:id", svc.appointmentHandler.Update)
			appointments.DELETE("/:id", svc.appointmentHandler.Delete)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/applicant-counts", svc.reportHandler.ApplicantCounts)
			reports.GET("/caregiver-hours", svc.reportHandler.CaregiverTotalHours)
			reports.GET("/average-pay", svc.reportHandler.AveragePayPerCaregiver)
			reports.GET("/above-average-earners", svc.reportHandler.AboveAverageEarners)
			reports.GET("/total-cost", svc.reportHandler.TotalConfirmedCost)
			reports.GET("/job-applications-view", svc.reportHandler.JobApplicationsView)
			reports.GET("/confirmed-appointments", svc.reportHandler.ConfirmedAppointments)
			reports.GET("/job-search", svc.reportHandler.SearchJobsByRequirement)
			reports.GET("/appointments-by-type", svc.reportHandler.AppointmentsByCaregivingType)
			reports.GET("/member-search", svc.reportHandler.SearchMembers)
		}
	}
}
