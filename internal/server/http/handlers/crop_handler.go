package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agronhq/agron/internal/domain/model"
	"github.com/agronhq/agron/internal/domain/repository"
	"github.com/agronhq/agron/internal/server/http/dto"
	"github.com/agronhq/agron/internal/usecase"
)

// CropHandler manages catalog endpoints.
type CropHandler struct {
	facade CropFacade
}

// NewCropHandler constructs CropHandler.
func NewCropHandler(facade CropFacade) *CropHandler {
	return &CropHandler{facade: facade}
}

func cropInputFromRequest(req dto.CropRequest) (usecase.CropInput, bool) {
	input := usecase.CropInput{
		Name:        req.Name,
		Type:        req.Type,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Price:       req.Price,
		Currency:    req.Currency,
		Location:    req.Location,
		Description: req.Description,
	}
	if req.AvailabilityDate != "" {
		date, err := time.Parse(dto.DateLayout, req.AvailabilityDate)
		if err != nil {
			return usecase.CropInput{}, false
		}
		input.AvailabilityDate = date
	}
	return input, true
}

// Create handles POST /api/crops.
func (h *CropHandler) Create(c *gin.Context) {
	var req dto.CropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	input, ok := cropInputFromRequest(req)
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid availability date")
		return
	}

	crop, err := h.facade.CreateCrop(c.Request.Context(), CurrentActor(c), input)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCropResponse(*crop))
}

// List handles GET /api/crops.
func (h *CropHandler) List(c *gin.Context) {
	actor := CurrentActor(c)
	filter := repository.CropFilter{
		Type:   c.Query("type"),
		Region: c.Query("region"),
		Status: model.CropStatus(c.Query("status")),
	}
	if c.Query("mine") == "true" {
		filter.FarmerID = actor.ID
	}

	crops, err := h.facade.Crops(c.Request.Context(), filter)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	response := make([]dto.CropResponse, 0, len(crops))
	for _, crop := range crops {
		response = append(response, dto.ToCropResponse(crop))
	}
	c.JSON(http.StatusOK, response)
}

// Types handles GET /api/crops/types.
func (h *CropHandler) Types(c *gin.Context) {
	types, err := h.facade.CropTypes(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if types == nil {
		types = []string{}
	}
	c.JSON(http.StatusOK, types)
}

// Regions handles GET /api/crops/regions.
func (h *CropHandler) Regions(c *gin.Context) {
	regions, err := h.facade.CropRegions(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if regions == nil {
		regions = []string{}
	}
	c.JSON(http.StatusOK, regions)
}

// Get handles GET /api/crops/:id.
func (h *CropHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	crop, err := h.facade.Crop(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCropResponse(*crop))
}

// Update handles PUT /api/crops/:id.
func (h *CropHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.CropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	input, ok := cropInputFromRequest(req)
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid availability date")
		return
	}

	crop, err := h.facade.UpdateCrop(c.Request.Context(), CurrentActor(c), id, input)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCropResponse(*crop))
}

// UpdateStatus handles PATCH /api/crops/:id/status.
func (h *CropHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.CropStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	crop, err := h.facade.UpdateCropStatus(c.Request.Context(), CurrentActor(c), id, req.Status)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCropResponse(*crop))
}

// Delete handles DELETE /api/crops/:id.
func (h *CropHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteCrop(c.Request.Context(), CurrentActor(c), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
