package handlers

import (
	"io"
	"net/http"
	"strconv"

	"sustainability-portal-backend/internal/auth"
	"sustainability-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EvidenceHandler handles HTTP requests for evidence file operations
type EvidenceHandler struct {
	evidenceService service.EvidenceServiceInterface
}

// NewEvidenceHandler creates a new evidence handler
func NewEvidenceHandler(evidenceService service.EvidenceServiceInterface) *EvidenceHandler {
	return &EvidenceHandler{
		evidenceService: evidenceService,
	}
}

// Upload handles POST /evidence
// @Summary Upload an evidence file for a component version
// @Tags evidence
// @Accept multipart/form-data
// @Produce json
// @Param component_code formData string true "Component code"
// @Param version formData int false "Component version; current version when omitted"
// @Param category formData string false "File category"
// @Param file formData file true "Evidence file"
// @Success 201 {object} models.EvidenceFile
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Security BearerAuth
// @Router /evidence [post]
func (h *EvidenceHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file", "details": err.Error()})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file", "details": err.Error()})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file", "details": err.Error()})
		return
	}

	version, _ := strconv.Atoi(c.DefaultPostForm("version", "0"))
	actor, _ := auth.GetUserEmail(c)
	if actor == "" {
		actor = c.PostForm("actor")
	}

	req := &service.EvidenceUploadRequest{
		ComponentCode: c.PostForm("component_code"),
		Version:       version,
		FileName:      fileHeader.Filename,
		ContentType:   fileHeader.Header.Get("Content-Type"),
		Category:      c.PostForm("category"),
		Data:          data,
		Actor:         actor,
	}

	file, err := h.evidenceService.Upload(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, file)
}

// Delete handles DELETE /evidence/:id
// @Summary Delete an evidence file
// @Tags evidence
// @Produce json
// @Param id path string true "Evidence file ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Evidence file not found"
// @Security BearerAuth
// @Router /evidence/{id} [delete]
func (h *EvidenceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid evidence file ID"})
		return
	}

	actor, _ := auth.GetUserEmail(c)
	if err := h.evidenceService.Delete(c.Request.Context(), id, actor); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
