package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agronhq/agron/internal/domain/model"
	"github.com/agronhq/agron/internal/server/http/dto"
)

// JobHandler manages delivery job endpoints.
type JobHandler struct {
	facade JobFacade
}

// NewJobHandler constructs JobHandler.
func NewJobHandler(facade JobFacade) *JobHandler {
	return &JobHandler{facade: facade}
}

// Available handles GET /api/jobs/available.
func (h *JobHandler) Available(c *gin.Context) {
	jobs, err := h.facade.OpenJobs(c.Request.Context(), CurrentActor(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toJobResponses(jobs))
}

// Mine handles GET /api/jobs/mine.
func (h *JobHandler) Mine(c *gin.Context) {
	jobs, err := h.facade.MyJobs(c.Request.Context(), CurrentActor(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toJobResponses(jobs))
}

// Statistics handles GET /api/jobs/statistics.
func (h *JobHandler) Statistics(c *gin.Context) {
	stats, err := h.facade.JobStatistics(c.Request.Context(), CurrentActor(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJobStatisticsResponse(*stats))
}

// Get handles GET /api/jobs/:id.
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	job, err := h.facade.Job(c.Request.Context(), CurrentActor(c), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(*job))
}

// Accept handles POST /api/jobs/accept.
func (h *JobHandler) Accept(c *gin.Context) {
	var req dto.AcceptJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	job, err := h.facade.AcceptJob(c.Request.Context(), CurrentActor(c), req.JobID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(*job))
}

// Pickup handles PATCH /api/jobs/:id/pickup.
func (h *JobHandler) Pickup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	job, err := h.facade.MarkJobPickedUp(c.Request.Context(), CurrentActor(c), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(*job))
}

// Delivered handles PATCH /api/jobs/:id/delivered.
func (h *JobHandler) Delivered(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	job, err := h.facade.MarkJobDelivered(c.Request.Context(), CurrentActor(c), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(*job))
}

// Cancel handles POST /api/jobs/:id/cancel. The job returns to the open
// board for other transporters.
func (h *JobHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	job, err := h.facade.AbandonJob(c.Request.Context(), CurrentActor(c), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(*job))
}

func toJobResponses(jobs []model.DeliveryJob) []dto.JobResponse {
	response := make([]dto.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		response = append(response, dto.ToJobResponse(job))
	}
	return response
}
