package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/application/employer"
	"github.com/ppkgen/backend/internal/interfaces/http/dto"
)

// MemberHandler handles plan member endpoints
type MemberHandler struct {
	BaseHandler
	service *employer.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(service *employer.MemberService) *MemberHandler {
	return &MemberHandler{service: service}
}

// Create handles POST /employers/:id/members
func (h *MemberHandler) Create(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "invalid organization ID")
		return
	}

	var req employer.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), uuid.MustParse(uri.ID), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// List handles GET /employers/:id/members
func (h *MemberHandler) List(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "invalid organization ID")
		return
	}

	resp, err := h.service.List(c.Request.Context(), uuid.MustParse(uri.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Get handles GET /members/:id
func (h *MemberHandler) Get(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "invalid member ID")
		return
	}

	resp, err := h.service.Get(c.Request.Context(), uuid.MustParse(uri.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update handles PUT /members/:id
func (h *MemberHandler) Update(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "invalid member ID")
		return
	}

	var req employer.UpdateMemberRequest
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

// Delete handles DELETE /members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "invalid member ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), uuid.MustParse(uri.ID)); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ValidatePESEL handles POST /identifiers/pesel/validate. An invalid
// identifier is a normal 200 outcome with valid=false, not an error.
func (h *MemberHandler) ValidatePESEL(c *gin.Context) {
	var req employer.ValidatePESELRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	h.Success(c, h.service.ValidatePESEL(req))
}
