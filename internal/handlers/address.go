package handlers

import (
	"strconv"

	"github.com/dimerryy/careplatform/backend/internal/repositories"
	"github.com/dimerryy/careplatform/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type AddressHandler struct {
	repo *repositories.AddressRepository
}

func NewAddressHandler(repo *repositories.AddressRepository) *AddressHandler {
	return &AddressHandler{repo: repo}
}

func (h *AddressHandler) List(c *gin.Context) {
	addresses, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, addresses)
}

func (h *AddressHandler) Create(c *gin.Context) {
	var req repositories.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	address, err := h.repo.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, address)
}

func (h *AddressHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("memberId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid member id")
		return
	}

	address, err := h.repo.Get(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, address)
}

func (h *AddressHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("memberId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid member id")
		return
	}

	var req repositories.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	address, err := h.repo.Update(c.Request.Context(), uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, address)
}

func (h *AddressHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("memberId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid member id")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), uint(id)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "address deleted"})
}
