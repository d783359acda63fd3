package handlers

import (
	"github.com/dimerryy/careplatform/backend/internal/services"
	"github.com/dimerryy/careplatform/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

// ReportHandler exposes the aggregate and search queries.
type ReportHandler struct {
	svc *services.ReportService
}

func NewReportHandler(svc *services.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) ApplicantCounts(c *gin.Context) {
	rows, err := h.svc.ApplicantCounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}

func (h *ReportHandler) CaregiverTotalHours(c *gin.Context) {
	rows, err := h.svc.CaregiverTotalHours(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}

func (h *ReportHandler) AveragePayPerCaregiver(c *gin.Context) {
	rows, err := h.svc.AveragePayPerCaregiver(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}

func (h *ReportHandler) AboveAverageEarners(c *gin.Context) {
	rows, err := h.svc.AboveAverageEarners(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}

func (h *ReportHandler) TotalConfirmedCost(c *gin.Context) {
	total, err := h.svc.TotalConfirmedCost(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"total_cost": total})
}

func (h *ReportHandler) JobApplicationsView(c *gin.Context) {
	rows, err := h.svc.JobApplicationsView(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}

func (h *ReportHandler) ConfirmedAppointments(c *gin.Context) {
	rows, err := h.svc.ConfirmedAppointments(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}

func (h *ReportHandler) SearchJobsByRequirement(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		response.BadRequest(c, "q is required")
		return
	}

	rows, err := h.svc.SearchJobsByRequirement(c.Request.Context(), term)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}

func (h *ReportHandler) AppointmentsByCaregivingType(c *gin.Context) {
	caregivingType := c.Query("caregiving_type")
	if caregivingType == "" {
		response.BadRequest(c, "caregiving_type is required")
		return
	}

	rows, err := h.svc.AppointmentsByCaregivingType(c.Request.Context(), caregivingType)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}

func (h *ReportHandler) SearchMembers(c *gin.Context) {
	rows, err := h.svc.SearchMembers(
		c.Request.Context(),
		c.Query("city"),
		c.Query("required_caregiving_type"),
		c.Query("house_rule"),
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}
