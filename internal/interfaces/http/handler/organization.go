package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/application/employer"
	"github.com/ppkgen/backend/internal/interfaces/http/dto"
)

// OrganizationHandler handles employer organization endpoints
type OrganizationHandler struct {
	BaseHandler
	service *employer.OrganizationService
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service *employer.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// Create handles POST /employers
func (h *OrganizationHandler) Create(c *gin.Context) {
	var req employer.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get handles GET /employers/:id
func (h *OrganizationHandler) Get(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "invalid organization ID")
		return
	}

	resp, err := h.service.Get(c.Request.Context(), uuid.MustParse(uri.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /employers
func (h *OrganizationHandler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update handles PUT /employers/:id
func (h *OrganizationHandler) Update(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "invalid organization ID")
		return
	}

	var req employer.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), uuid.MustParse(uri.ID), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /employers/:id
func (h *OrganizationHandler) Delete(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "invalid organization ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), uuid.MustParse(uri.ID)); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
