package handlers

import (
	"net/http"
	"strconv"

	"sustainability-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ContractorHandler handles HTTP requests for contractor operations
type ContractorHandler struct {
	contractorService service.ContractorServiceInterface
}

// NewContractorHandler creates a new contractor handler
func NewContractorHandler(contractorService service.ContractorServiceInterface) *ContractorHandler {
	return &ContractorHandler{
		contractorService: contractorService,
	}
}

// CreateContractor handles POST /contractors
// @Summary Create a contractor with its contacts
// @Description Contractor and contacts are created in one transaction
// @Tags contractors
// @Accept json
// @Produce json
// @Param request body service.ContractorCreateRequest true "Contractor payload"
// @Success 201 {object} models.Contractor
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 409 {object} ErrorResponse "Contractor already exists"
// @Security BearerAuth
// @Router /contractors [post]
func (h *ContractorHandler) CreateContractor(c *gin.Context) {
	var req service.ContractorCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	contractor, err := h.contractorService.CreateContractor(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contractor)
}

// GetContractor handles GET /contractors/:cm_code
// @Summary Get a contractor with contacts
// @Tags contractors
// @Produce json
// @Param cm_code path string true "CM code"
// @Success 200 {object} models.Contractor
// @Failure 404 {object} ErrorResponse "Contractor not found"
// @Security BearerAuth
// @Router /contractors/{cm_code} [get]
func (h *ContractorHandler) GetContractor(c *gin.Context) {
	contractor, err := h.contractorService.GetContractor(c.Param("cm_code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contractor)
}

// ListContractors handles GET /contractors
// @Summary List contractors
// @Tags contractors
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(100)
// @Success 200 {object} service.ContractorListResponse
// @Security BearerAuth
// @Router /contractors [get]
func (h *ContractorHandler) ListContractors(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "100"))

	resp, err := h.contractorService.ListContractors(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
