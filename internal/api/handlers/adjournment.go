package handlers

import (
	"net/http"

	"court-scheduling-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdjournmentHandler handles HTTP requests for adjournment negotiation
type AdjournmentHandler struct {
	adjournmentService service.AdjournmentServiceInterface
}

// NewAdjournmentHandler creates a new adjournment handler
func NewAdjournmentHandler(adjournmentService service.AdjournmentServiceInterface) *AdjournmentHandler {
	return &AdjournmentHandler{
		adjournmentService: adjournmentService,
	}
}

// CreateAdjournment handles POST /adjournments
// @Summary Request an adjournment
// @Description The case's client asks to move a scheduled hearing. One pending request per case.
// @Tags adjournments
// @Accept json
// @Produce json
// @Param request body service.CreateAdjournmentRequest true "Adjournment request"
// @Success 201 {object} service.AdjournmentResponse "Request recorded"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not the case's client"
// @Failure 404 {object} ErrorResponse "Case not found"
// @Failure 409 {object} ErrorResponse "A pending request already exists"
// @Failure 422 {object} ErrorResponse "Case has no scheduled hearing"
// @Security BearerAuth
// @Router /adjournments [post]
func (h *AdjournmentHandler) CreateAdjournment(c *gin.Context) {
	var req service.CreateAdjournmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.adjournmentService.CreateAdjournmentRequest(c, principal(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListAdjournments handles GET /adjournments
// @Summary List adjournment requests
// @Description Newest first. Clients only see their own requests.
// @Tags adjournments
// @Accept json
// @Produce json
// @Param district query string false "District"
// @Param status query string false "pending, accepted or rejected"
// @Param case_id query string false "Case ID"
// @Success 200 {array} service.AdjournmentResponse "Requests"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /adjournments [get]
func (h *AdjournmentHandler) ListAdjournments(c *gin.Context) {
	resp, err := h.adjournmentService.ListAdjournmentRequests(c, principal(c), service.AdjournmentFilter{
		District: c.Query("district"),
		Status:   c.Query("status"),
		CaseID:   c.Query("case_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAdjournment handles GET /adjournments/:id
// @Summary Get adjournment request by ID
// @Tags adjournments
// @Accept json
// @Produce json
// @Param id path string true "Adjournment request ID (UUID)"
// @Success 200 {object} service.AdjournmentResponse "Request"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /adjournments/{id} [get]
func (h *AdjournmentHandler) GetAdjournment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid adjournment request ID"})
		return
	}

	resp, err := h.adjournmentService.GetAdjournmentRequest(c, principal(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AcceptAdjournment handles POST /adjournments/:id/accept
// @Summary Accept an adjournment
// @Description Move the hearing to the scheduler's chosen date. Omitted times keep the original window and an omitted courtroom keeps the original courtroom.
// @Tags adjournments
// @Accept json
// @Produce json
// @Param id path string true "Adjournment request ID (UUID)"
// @Param decision body service.AcceptAdjournmentRequest true "New hearing"
// @Success 200 {object} service.AdjournmentResponse "Accepted, with the new entry"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 409 {object} ErrorResponse "Slot conflict"
// @Failure 422 {object} ErrorResponse "Request already resolved"
// @Failure 503 {object} ErrorResponse "Temporarily unavailable"
// @Security BearerAuth
// @Router /adjournments/{id}/accept [post]
func (h *AdjournmentHandler) AcceptAdjournment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid adjournment request ID"})
		return
	}

	var req service.AcceptAdjournmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.adjournmentService.AcceptAdjournmentRequest(c, principal(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RejectAdjournment handles POST /adjournments/:id/reject
// @Summary Reject an adjournment
// @Tags adjournments
// @Accept json
// @Produce json
// @Param id path string true "Adjournment request ID (UUID)"
// @Param decision body service.RejectAdjournmentRequest false "Scheduler notes"
// @Success 200 {object} service.AdjournmentResponse "Rejected"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 422 {object} ErrorResponse "Request already resolved"
// @Security BearerAuth
// @Router /adjournments/{id}/reject [post]
func (h *AdjournmentHandler) RejectAdjournment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid adjournment request ID"})
		return
	}

	var req service.RejectAdjournmentRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	resp, err := h.adjournmentService.RejectAdjournmentRequest(c, principal(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
