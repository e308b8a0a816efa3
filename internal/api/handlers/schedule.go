package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"court-scheduling-backend/internal/calendar"
	apperrors "court-scheduling-backend/internal/errors"
	"court-scheduling-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScheduleHandler handles the scheduling queue and the district calendar
type ScheduleHandler struct {
	schedulerService service.SchedulerServiceInterface
	calendarService  service.CalendarServiceInterface
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(schedulerService service.SchedulerServiceInterface, calendarService service.CalendarServiceInterface) *ScheduleHandler {
	return &ScheduleHandler{
		schedulerService: schedulerService,
		calendarService:  calendarService,
	}
}

// ConflictCheckResponse reports whether a window is taken
type ConflictCheckResponse struct {
	Conflict   bool                            `json:"conflict"`
	OccupiedBy *service.ScheduledEntryResponse `json:"occupied_by,omitempty"`
}

// ListQueue handles GET /schedule-requests
// @Summary List the scheduling queue
// @Description List schedule requests by priority (high, medium, low), newest first within a priority. Defaults to unscheduled requests.
// @Tags scheduling
// @Accept json
// @Produce json
// @Param district query string false "District"
// @Param is_scheduled query bool false "Scheduled flag" default(false)
// @Success 200 {array} service.ScheduleRequestResponse "Queue"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /schedule-requests [get]
func (h *ScheduleHandler) ListQueue(c *gin.Context) {
	filter := service.QueueFilter{District: c.Query("district")}
	if raw := c.Query("is_scheduled"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid is_scheduled value"})
			return
		}
		filter.IsScheduled = &v
	}

	resp, err := h.calendarService.ScheduleRequestsQueue(c, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ScheduleCase handles POST /schedule-requests/:id/schedule
// @Summary Allocate a hearing
// @Description Book a hearing slot for a schedule request. Fails with 409 when the slot is taken or the request is already scheduled.
// @Tags scheduling
// @Accept json
// @Produce json
// @Param id path string true "Schedule request ID (UUID)"
// @Param allocation body service.ScheduleCaseRequest true "Hearing slot"
// @Success 201 {object} service.ScheduledEntryResponse "Hearing scheduled"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Schedule request not found"
// @Failure 409 {object} ErrorResponse "Slot conflict or already scheduled"
// @Failure 422 {object} ErrorResponse "Case is not awaiting scheduling"
// @Failure 503 {object} ErrorResponse "Temporarily unavailable"
// @Security BearerAuth
// @Router /schedule-requests/{id}/schedule [post]
func (h *ScheduleHandler) ScheduleCase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid schedule request ID"})
		return
	}

	var req service.ScheduleCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.schedulerService.ScheduleCase(c, principal(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListScheduledEntries handles GET /scheduled-entries
// @Summary List calendar entries
// @Description List the current entries of a district between two dates inclusive
// @Tags scheduling
// @Accept json
// @Produce json
// @Param district query string true "District"
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "Last date (YYYY-MM-DD)"
// @Success 200 {array} service.ScheduledEntryResponse "Entries"
// @Failure 400 {object} ErrorResponse "Invalid range"
// @Security BearerAuth
// @Router /scheduled-entries [get]
func (h *ScheduleHandler) ListScheduledEntries(c *gin.Context) {
	resp, err := h.schedulerService.ListScheduledEntries(c, c.Query("district"), c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AvailableSlots handles GET /slots
// @Summary Standard slots of a day
// @Description Flag each standard hearing slot as free or occupied
// @Tags scheduling
// @Accept json
// @Produce json
// @Param district query string true "District"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param courtroom query string false "Courtroom"
// @Success 200 {object} service.AvailableSlotsResponse "Slots"
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Security BearerAuth
// @Router /slots [get]
func (h *ScheduleHandler) AvailableSlots(c *gin.Context) {
	resp, err := h.schedulerService.AvailableSlots(c, c.Query("district"), c.Query("date"), c.Query("courtroom"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CheckConflict handles GET /slots/conflicts
// @Summary Check a window for conflicts
// @Tags scheduling
// @Accept json
// @Produce json
// @Param district query string true "District"
// @Param courtroom query string true "Courtroom"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start_time query string true "Start (HH:MM)"
// @Param end_time query string true "End (HH:MM)"
// @Param exclude query string false "Entry ID to ignore"
// @Success 200 {object} ConflictCheckResponse "Conflict status"
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Security BearerAuth
// @Router /slots/conflicts [get]
func (h *ScheduleHandler) CheckConflict(c *gin.Context) {
	district := strings.TrimSpace(c.Query("district"))
	courtroom := strings.TrimSpace(c.Query("courtroom"))
	if district == "" || courtroom == "" {
		respondError(c, apperrors.NewValidationError("district", "district and courtroom are required"))
		return
	}
	date, err := calendar.ParseDate(c.Query("date"))
	if err != nil {
		respondError(c, apperrors.NewValidationError("date", err.Error()))
		return
	}
	window := calendar.TimeWindow{Start: c.Query("start_time"), End: c.Query("end_time")}
	if err := window.Validate(); err != nil {
		respondError(c, apperrors.NewValidationError("start_time", err.Error()))
		return
	}
	var exclude *uuid.UUID
	if raw := c.Query("exclude"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid exclude ID"})
			return
		}
		exclude = &id
	}

	conflict, hit, err := h.schedulerService.HasConflict(c, district, courtroom, date, window, exclude)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := ConflictCheckResponse{Conflict: conflict}
	if hit != nil {
		resp.OccupiedBy = service.NewScheduledEntryResponse(hit)
	}
	c.JSON(http.StatusOK, resp)
}

// CaseHearings handles GET /cases/:id/hearings
// @Summary Hearing history of a case
// @Description Every calendar entry of a case in sequence order, adjourned ones included
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "Case ID (UUID)"
// @Success 200 {array} service.ScheduledEntryResponse "Entries"
// @Failure 400 {object} ErrorResponse "Invalid case ID"
// @Failure 404 {object} ErrorResponse "Case not found"
// @Security BearerAuth
// @Router /cases/{id}/hearings [get]
func (h *ScheduleHandler) CaseHearings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid case ID"})
		return
	}

	resp, err := h.schedulerService.CaseHearingHistory(c, principal(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MonthCalendar handles GET /calendar/:district/:year/:month
// @Summary Month calendar of a district
// @Description Current hearings of a district month keyed by date
// @Tags calendar
// @Accept json
// @Produce json
// @Param district path string true "District"
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} service.MonthCalendarResponse "Calendar"
// @Failure 400 {object} ErrorResponse "Invalid month"
// @Security BearerAuth
// @Router /calendar/{district}/{year}/{month} [get]
func (h *ScheduleHandler) MonthCalendar(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid month"})
		return
	}

	resp, err := h.calendarService.CalendarForMonth(c, c.Param("district"), year, month)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
