package handlers

import (
	"io"
	"net/http"
	"strconv"

	"sustainability-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ComponentHandler handles HTTP requests for component lifecycle operations
type ComponentHandler struct {
	componentService service.ComponentServiceInterface
}

// NewComponentHandler creates a new component handler
func NewComponentHandler(componentService service.ComponentServiceInterface) *ComponentHandler {
	return &ComponentHandler{
		componentService: componentService,
	}
}

// AddComponent handles POST /components
// @Summary Add a component
// @Description Create a component (first version) or associate an existing component with a SKU
// @Tags components
// @Accept json
// @Produce json
// @Param request body service.ComponentCreateRequest true "Component payload"
// @Success 201 {object} service.ComponentChangeResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 409 {object} ErrorResponse "Duplicate description"
// @Security BearerAuth
// @Router /components [post]
func (h *ComponentHandler) AddComponent(c *gin.Context) {
	var req service.ComponentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.componentService.AddComponent(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resp)
}

// UpdateComponent handles PUT /components
// @Summary Update a component
// @Description Apply the operation-driven change flow: "update" creates a new mapping version, "replace" amends the current row in place
// @Tags components
// @Accept json
// @Produce json
// @Param request body service.ComponentUpdateRequest true "Update payload"
// @Success 200 {object} service.ComponentChangeResponse
// @Failure 400 {object} ErrorResponse "Invalid operation or validation failed"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Security BearerAuth
// @Router /components [put]
func (h *ComponentHandler) UpdateComponent(c *gin.Context) {
	var req service.ComponentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.componentService.UpdateComponent(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReplaceComponentDetails handles POST /components/details
// @Summary Replace component details
// @Description Apply the action-driven details flow with evidence files: "update" mutates the current row and swaps evidence, "replace" creates a new version row and mapping
// @Tags components
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} service.ComponentChangeResponse
// @Failure 400 {object} ErrorResponse "Invalid action or validation failed"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Security BearerAuth
// @Router /components/details [post]
func (h *ComponentHandler) ReplaceComponentDetails(c *gin.Context) {
	var req service.ComponentDetailsChangeRequest
	payload := c.PostForm("payload")
	if payload == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing payload form field"})
		return
	}
	if err := bindJSONString(payload, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}

	form, err := c.MultipartForm()
	if err == nil && form != nil {
		for _, fileHeader := range form.File["files"] {
			f, err := fileHeader.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file", "details": err.Error()})
				return
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file", "details": err.Error()})
				return
			}
			req.Files = append(req.Files, service.EvidenceUpload{
				FileName:    fileHeader.Filename,
				ContentType: fileHeader.Header.Get("Content-Type"),
				Data:        data,
			})
		}
	}

	resp, err := h.componentService.ReplaceComponentDetails(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetComponent handles GET /components/:code
// @Summary Get a component
// @Description Get a component's current row and full version history
// @Tags components
// @Produce json
// @Param code path string true "Component code"
// @Success 200 {object} service.ComponentVersionsResponse
// @Failure 404 {object} ErrorResponse "Component not found"
// @Security BearerAuth
// @Router /components/{code} [get]
func (h *ComponentHandler) GetComponent(c *gin.Context) {
	resp, err := h.componentService.GetComponent(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListComponents handles GET /components
// @Summary List components
// @Tags components
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(100)
// @Success 200 {object} service.ComponentListResponse
// @Security BearerAuth
// @Router /components [get]
func (h *ComponentHandler) ListComponents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "100"))

	resp, err := h.componentService.ListComponents(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAuditTrail handles GET /components/:code/audit
// @Summary Get a component's audit trail
// @Tags components
// @Produce json
// @Param code path string true "Component code"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(100)
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /components/{code}/audit [get]
func (h *ComponentHandler) GetAuditTrail(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "100"))

	entries, total, err := h.componentService.GetAuditTrail(c.Param("code"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "total": total, "page": page, "page_size": pageSize})
}
