package handlers

import (
	"net/http"
	"strconv"

	"sustainability-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SkuHandler handles HTTP requests for SKU operations
type SkuHandler struct {
	skuService service.SkuServiceInterface
}

// NewSkuHandler creates a new sku handler
func NewSkuHandler(skuService service.SkuServiceInterface) *SkuHandler {
	return &SkuHandler{
		skuService: skuService,
	}
}

// CreateSku handles POST /skus
// @Summary Create a SKU
// @Tags skus
// @Accept json
// @Produce json
// @Param request body service.SkuCreateRequest true "SKU payload"
// @Success 201 {object} models.Sku
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 409 {object} ErrorResponse "SKU already exists for this period"
// @Security BearerAuth
// @Router /skus [post]
func (h *SkuHandler) CreateSku(c *gin.Context) {
	var req service.SkuCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	sku, err := h.skuService.CreateSku(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sku)
}

// UpdateSku handles PUT /skus
// @Summary Update a SKU
// @Description Update SKU attributes and drive the mapping state machine from skutype and the component list
// @Tags skus
// @Accept json
// @Produce json
// @Param request body service.SkuUpdateRequest true "Update payload"
// @Success 200 {object} service.SkuUpdateResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "SKU not found"
// @Security BearerAuth
// @Router /skus [put]
func (h *SkuHandler) UpdateSku(c *gin.Context) {
	var req service.SkuUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.skuService.UpdateSku(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetSku handles GET /skus/:code
// @Summary Get a SKU
// @Tags skus
// @Produce json
// @Param code path string true "SKU code"
// @Param period query string false "Reporting period; latest row when omitted"
// @Success 200 {object} models.Sku
// @Failure 404 {object} ErrorResponse "SKU not found"
// @Security BearerAuth
// @Router /skus/{code} [get]
func (h *SkuHandler) GetSku(c *gin.Context) {
	sku, err := h.skuService.GetSku(c.Param("code"), c.Query("period"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sku)
}

// ListByCM handles GET /cms/:cm_code/skus
// @Summary List a contract manufacturer's SKUs
// @Tags skus
// @Produce json
// @Param cm_code path string true "CM code"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(100)
// @Success 200 {object} service.SkuListResponse
// @Security BearerAuth
// @Router /cms/{cm_code}/skus [get]
func (h *SkuHandler) ListByCM(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "100"))

	resp, err := h.skuService.ListByCM(c.Param("cm_code"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetMappings handles GET /cms/:cm_code/skus/:sku_code/mappings
// @Summary Get a SKU's active component mappings
// @Tags skus
// @Produce json
// @Param cm_code path string true "CM code"
// @Param sku_code path string true "SKU code"
// @Success 200 {array} models.SkuComponentMapping
// @Security BearerAuth
// @Router /cms/{cm_code}/skus/{sku_code}/mappings [get]
func (h *SkuHandler) GetMappings(c *gin.Context) {
	mappings, err := h.skuService.GetMappings(c.Param("cm_code"), c.Param("sku_code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mappings": mappings})
}

// CopyToPeriod handles POST /skus/copy-to-period
// @Summary Copy SKUs into a target reporting period
// @Description Batch copy; each SKU is processed independently and per-item failures are reported in the errors list
// @Tags skus
// @Accept json
// @Produce json
// @Param request body service.CopyToPeriodRequest true "Copy payload"
// @Success 200 {object} service.CopyToPeriodResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Target period not found"
// @Security BearerAuth
// @Router /skus/copy-to-period [post]
func (h *SkuHandler) CopyToPeriod(c *gin.Context) {
	var req service.CopyToPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.skuService.CopySkusToPeriod(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
