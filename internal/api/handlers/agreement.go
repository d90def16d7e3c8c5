package handlers

import (
	"net/http"
	"strconv"

	"sustainability-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AgreementHandler handles HTTP requests for sign-off agreement operations
type AgreementHandler struct {
	agreementService service.AgreementServiceInterface
}

// NewAgreementHandler creates a new agreement handler
func NewAgreementHandler(agreementService service.AgreementServiceInterface) *AgreementHandler {
	return &AgreementHandler{
		agreementService: agreementService,
	}
}

// CreateAgreement handles POST /agreements
// @Summary Create a draft sign-off agreement
// @Tags agreements
// @Accept json
// @Produce json
// @Param request body service.AgreementCreateRequest true "Agreement payload"
// @Success 201 {object} models.SignoffAgreement
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 409 {object} ErrorResponse "Agreement already exists for this CM and period"
// @Security BearerAuth
// @Router /agreements [post]
func (h *AgreementHandler) CreateAgreement(c *gin.Context) {
	var req service.AgreementCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	agreement, err := h.agreementService.CreateAgreement(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, agreement)
}

// SendForSignature handles POST /agreements/:id/send
// @Summary Send a draft agreement for signature
// @Tags agreements
// @Produce json
// @Param id path string true "Agreement ID"
// @Success 200 {object} models.SignoffAgreement
// @Failure 404 {object} ErrorResponse "Agreement not found"
// @Failure 409 {object} ErrorResponse "Agreement is not in draft status"
// @Security BearerAuth
// @Router /agreements/{id}/send [post]
func (h *AgreementHandler) SendForSignature(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agreement ID"})
		return
	}

	agreement, err := h.agreementService.SendForSignature(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, agreement)
}

// UpdateStatus handles POST /agreements/status
// @Summary Apply a signing status callback
// @Description Matched to the agreement by envelope ID; only sent agreements can move to signed or declined
// @Tags agreements
// @Accept json
// @Produce json
// @Param request body service.AgreementStatusRequest true "Status payload"
// @Success 200 {object} models.SignoffAgreement
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Agreement not found"
// @Router /agreements/status [post]
func (h *AgreementHandler) UpdateStatus(c *gin.Context) {
	var req service.AgreementStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	agreement, err := h.agreementService.UpdateStatus(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, agreement)
}

// ListAgreements handles GET /agreements
// @Summary List sign-off agreements
// @Tags agreements
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(100)
// @Success 200 {object} service.AgreementListResponse
// @Security BearerAuth
// @Router /agreements [get]
func (h *AgreementHandler) ListAgreements(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "100"))

	resp, err := h.agreementService.ListAgreements(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
