package handlers

import (
	"strconv"
	"time"

	"github.com/dimerryy/careplatform/backend/internal/repositories"
	"github.com/dimerryy/careplatform/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	repo *repositories.JobRepository

	// defaultDates fills a missing date_posted with today's date.
	defaultDates bool
}

func NewJobHandler(repo *repositories.JobRepository, defaultDates bool) *JobHandler {
	return &JobHandler{repo: repo, defaultDates: defaultDates}
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, jobs)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req repositories.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if h.defaultDates && req.DatePosted == "" {
		req.DatePosted = today()
	}

	job, err := h.repo.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, job)
}

func (h *JobHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid job id")
		return
	}

	job, err := h.repo.Get(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid job id")
		return
	}

	var req repositories.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	job, err := h.repo.Update(c.Request.Context(), uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid job id")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), uint(id)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "job deleted"})
}

// DeleteByPoster removes all jobs posted by the named member.
func (h *JobHandler) DeleteByPoster(c *gin.Context) {
	givenName := c.Query("given_name")
	surname := c.Query("surname")
	if givenName == "" || surname == "" {
		response.BadRequest(c, "given_name and surname are required")
		return
	}

	removed, err := h.repo.DeleteByPoster(c.Request.Context(), givenName, surname)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": removed})
}
