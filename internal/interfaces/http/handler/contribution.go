package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/application/contribution"
	"github.com/ppkgen/backend/internal/interfaces/http/dto"
)

// ContributionHandler handles per-period contribution endpoints
type ContributionHandler struct {
	BaseHandler
	service *contribution.ContributionService
}

// NewContributionHandler creates a new contribution handler
func NewContributionHandler(service *contribution.ContributionService) *ContributionHandler {
	return &ContributionHandler{service: service}
}

// List handles GET /employers/:id/contributions?year=YYYY&month=M
func (h *ContributionHandler) List(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "invalid organization ID")
		return
	}

	var query contribution.PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	records, err := h.service.ListForPeriod(c.Request.Context(), uuid.MustParse(uri.ID), query.Year, query.Month)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, records)
}

// Upsert handles PUT /employers/:id/contributions
func (h *ContributionHandler) Upsert(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "invalid organization ID")
		return
	}

	var req contribution.UpsertContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Upsert(c.Request.Context(), req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Prefill handles POST /employers/:id/contributions/prefill
func (h *ContributionHandler) Prefill(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "invalid organization ID")
		return
	}

	var req contribution.PrefillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Prefill(c.Request.Context(), uuid.MustParse(uri.ID), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Periods handles GET /employers/:id/contributions/periods
func (h *ContributionHandler) Periods(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "invalid organization ID")
		return
	}

	periods, err := h.service.AvailablePeriods(c.Request.Context(), uuid.MustParse(uri.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, periods)
}
