package handlers

import (
	"strconv"

	"github.com/dimerryy/careplatform/backend/internal/repositories"
	"github.com/dimerryy/careplatform/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type JobApplicationHandler struct {
	repo         *repositories.JobApplicationRepository
	defaultDates bool
}

func NewJobApplicationHandler(repo *repositories.JobApplicationRepository, defaultDates bool) *JobApplicationHandler {
	return &JobApplicationHandler{repo: repo, defaultDates: defaultDates}
}

func (h *JobApplicationHandler) List(c *gin.Context) {
	applications, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, applications)
}

func (h *JobApplicationHandler) Create(c *gin.Context) {
	var req repositories.CreateJobApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if h.defaultDates && req.DateApplied == "" {
		req.DateApplied = today()
	}

	application, err := h.repo.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, application)
}

func (h *JobApplicationHandler) Get(c *gin.Context) {
	caregiverID, jobID, ok := h.parseKey(c)
	if !ok {
		return
	}

	application, err := h.repo.Get(c.Request.Context(), caregiverID, jobID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, application)
}

func (h *JobApplicationHandler) Delete(c *gin.Context) {
	caregiverID, jobID, ok := h.parseKey(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), caregiverID, jobID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "application deleted"})
}

func (h *JobApplicationHandler) parseKey(c *gin.Context) (uint, uint, bool) {
	caregiverID, err := strconv.ParseUint(c.Param("caregiverId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid caregiver id")
		return 0, 0, false
	}
	jobID, err := strconv.ParseUint(c.Param("jobId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid job id")
		return 0, 0, false
	}
	return uint(caregiverID), uint(jobID), true
}
