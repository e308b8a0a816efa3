package handlers

import (
	"net/http"
	"strconv"

	"court-scheduling-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CaseHandler handles HTTP requests for case intake
type CaseHandler struct {
	caseService service.CaseServiceInterface
}

// NewCaseHandler creates a new case handler
func NewCaseHandler(caseService service.CaseServiceInterface) *CaseHandler {
	return &CaseHandler{
		caseService: caseService,
	}
}

// FileCase handles POST /cases
// @Summary File a case
// @Description Record a case filed with a district court. The acting lawyer becomes the case's lawyer.
// @Tags cases
// @Accept json
// @Produce json
// @Param case body service.FileCaseRequest true "Case data"
// @Success 201 {object} service.CaseResponse "Successfully filed case"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Only lawyers may file cases"
// @Failure 409 {object} ErrorResponse "Case number already exists"
// @Failure 503 {object} ErrorResponse "Temporarily unavailable"
// @Security BearerAuth
// @Router /cases [post]
func (h *CaseHandler) FileCase(c *gin.Context) {
	var req service.FileCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.caseService.FileCase(c, principal(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListCases handles GET /cases
// @Summary List cases
// @Description List cases newest first. Clients only see their own cases.
// @Tags cases
// @Accept json
// @Produce json
// @Param district query string false "District"
// @Param status query string false "Case status"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.CaseListResponse "Successfully retrieved cases"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /cases [get]
func (h *CaseHandler) ListCases(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	resp, err := h.caseService.ListCases(c, principal(c), service.CaseListFilter{
		District: c.Query("district"),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCase handles GET /cases/:id
// @Summary Get case by ID
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "Case ID (UUID)"
// @Success 200 {object} service.CaseResponse "Successfully retrieved case"
// @Failure 400 {object} ErrorResponse "Invalid case ID"
// @Failure 403 {object} ErrorResponse "Not the case's client"
// @Failure 404 {object} ErrorResponse "Case not found"
// @Security BearerAuth
// @Router /cases/{id} [get]
func (h *CaseHandler) GetCase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid case ID"})
		return
	}

	resp, err := h.caseService.GetCase(c, principal(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RequestScheduling handles POST /cases/:id/schedule-requests
// @Summary Request a hearing date
// @Description Move a filed case into the scheduling queue. Only the case's lawyer may do this.
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "Case ID (UUID)"
// @Param request body service.RequestSchedulingRequest true "Scheduling preferences"
// @Success 201 {object} service.ScheduleRequestResponse "Case queued for scheduling"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not the case's lawyer"
// @Failure 404 {object} ErrorResponse "Case not found"
// @Failure 409 {object} ErrorResponse "An unscheduled request already exists"
// @Failure 422 {object} ErrorResponse "Case is not filed"
// @Security BearerAuth
// @Router /cases/{id}/schedule-requests [post]
func (h *CaseHandler) RequestScheduling(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid case ID"})
		return
	}

	var req service.RequestSchedulingRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	resp, err := h.caseService.RequestScheduling(c, principal(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
