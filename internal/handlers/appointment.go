package handlers

import (
	"strconv"

	"github.com/dimerryy/careplatform/backend/internal/repositories"
	"github.com/dimerryy/careplatform/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	repo         *repositories.AppointmentRepository
	defaultDates bool
}

func NewAppointmentHandler(repo *repositories.AppointmentRepository, defaultDates bool) *AppointmentHandler {
	return &AppointmentHandler{repo: repo, defaultDates: defaultDates}
}

func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, appointments)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req repositories.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if h.defaultDates && req.AppointmentDate == "" {
		req.AppointmentDate = today()
	}

	appointment, err := h.repo.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, appointment)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid appointment id")
		return
	}

	appointment, err := h.repo.Get(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, appointment)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid appointment id")
		return
	}

	var req repositories.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	appointment, err := h.repo.Update(c.Request.Context(), uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, appointment)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid appointment id")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), uint(id)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "appointment deleted"})
}
