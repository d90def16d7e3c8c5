package handlers

import (
	"net/http"

	"sustainability-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PeriodHandler handles HTTP requests for reporting period lookups
type PeriodHandler struct {
	periodService service.PeriodServiceInterface
}

// NewPeriodHandler creates a new period handler
func NewPeriodHandler(periodService service.PeriodServiceInterface) *PeriodHandler {
	return &PeriodHandler{
		periodService: periodService,
	}
}

// ActivePeriod handles GET /periods/active
// @Summary Get the active reporting period
// @Tags periods
// @Produce json
// @Success 200 {object} models.ReportingPeriod
// @Failure 400 {object} ErrorResponse "No active reporting period configured"
// @Security BearerAuth
// @Router /periods/active [get]
func (h *PeriodHandler) ActivePeriod(c *gin.Context) {
	period, err := h.periodService.ActivePeriod()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, period)
}

// ListPeriods handles GET /periods
// @Summary List reporting periods
// @Tags periods
// @Produce json
// @Success 200 {array} models.ReportingPeriod
// @Security BearerAuth
// @Router /periods [get]
func (h *PeriodHandler) ListPeriods(c *gin.Context) {
	periods, err := h.periodService.ListPeriods()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"periods": periods})
}
