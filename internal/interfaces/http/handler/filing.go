package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/application/filing"
	"github.com/ppkgen/backend/internal/interfaces/http/dto"
)

// FilingHandler handles filing generation and archive export endpoints
type FilingHandler struct {
	BaseHandler
	service *filing.FilingService
}

// NewFilingHandler creates a new filing handler
func NewFilingHandler(service *filing.FilingService) *FilingHandler {
	return &FilingHandler{service: service}
}

// Generate handles POST /employers/:id/filings. The response body is the
// zip archive itself, served as a download.
func (h *FilingHandler) Generate(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "invalid organization ID")
		return
	}

	var req filing.GenerateFilingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	archive, err := h.service.Generate(c.Request.Context(), uuid.MustParse(uri.ID), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	serveArchive(c, archive)
}

// List handles GET /employers/:id/filings
func (h *FilingHandler) List(c *gin.Context) {
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

// Get handles GET /filings/:id
func (h *FilingHandler) Get(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "invalid filing ID")
		return
	}

	resp, err := h.service.Get(c.Request.Context(), uuid.MustParse(uri.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Export handles GET /filings/:id/archive. The archive is rebuilt from the
// stored snapshot, so the bytes match the original download exactly.
func (h *FilingHandler) Export(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "invalid filing ID")
		return
	}

	archive, err := h.service.Export(c.Request.Context(), uuid.MustParse(uri.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	serveArchive(c, archive)
}

func serveArchive(c *gin.Context, archive *filing.ArchiveResponse) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", archive.ArchiveName))
	c.Header("X-Generation-ID", archive.GenerationID.String())
	c.Data(http.StatusOK, "application/zip", archive.Bytes)
}
