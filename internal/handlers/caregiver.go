package handlers

import (
	"strconv"

	"github.com/dimerryy/careplatform/backend/internal/repositories"
	"github.com/dimerryy/careplatform/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type CaregiverHandler struct {
	repo *repositories.CaregiverRepository
}

func NewCaregiverHandler(repo *repositories.CaregiverRepository) *CaregiverHandler {
	return &CaregiverHandler{repo: repo}
}

func (h *CaregiverHandler) List(c *gin.Context) {
	caregivers, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, caregivers)
}

func (h *CaregiverHandler) Create(c *gin.Context) {
	var req repositories.CreateCaregiverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	caregiver, err := h.repo.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, caregiver)
}

func (h *CaregiverHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid caregiver id")
		return
	}

	caregiver, err := h.repo.Get(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, caregiver)
}

func (h *CaregiverHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid caregiver id")
		return
	}

	var req repositories.UpdateCaregiverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	caregiver, err := h.repo.Update(c.Request.Context(), uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, caregiver)
}

func (h *CaregiverHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid caregiver id")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), uint(id)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "caregiver deleted"})
}

// ApplyCommission adjusts every caregiver's hourly rate by the platform
// commission rule.
func (h *CaregiverHandler) ApplyCommission(c *gin.Context) {
	updated, err := h.repo.ApplyCommission(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"updated": updated})
}
