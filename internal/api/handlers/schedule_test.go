package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"court-scheduling-backend/internal/auth"
	"court-scheduling-backend/internal/calendar"
	"court-scheduling-backend/internal/database/models"
	apperrors "court-scheduling-backend/internal/errors"
	"court-scheduling-backend/internal/mocks"
	"court-scheduling-backend/internal/service"
	"court-scheduling-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ScheduleHandlerTestSuite defines the test suite for ScheduleHandler
type ScheduleHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockScheduler *mocks.MockSchedulerServiceInterface
	mockCalendar  *mocks.MockCalendarServiceInterface
	handler       *ScheduleHandler
	httpSuite     *testutils.HTTPTestSuite
	actor         *auth.Principal
}

func (suite *ScheduleHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockScheduler = mocks.NewMockSchedulerServiceInterface(suite.ctrl)
	suite.mockCalendar = mocks.NewMockCalendarServiceInterface(suite.ctrl)
	suite.handler = NewScheduleHandler(suite.mockScheduler, suite.mockCalendar)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.actor = testutils.NewPrincipal(models.UserRoleCourtScheduler)

	v1 := suite.httpSuite.Router.Group("/api/v1", testutils.AsPrincipal(suite.actor))
	{
		v1.GET("/schedule-requests", suite.handler.ListQueue)
		v1.POST("/schedule-requests/:id/schedule", suite.handler.ScheduleCase)
		v1.GET("/scheduled-entries", suite.handler.ListScheduledEntries)
		v1.GET("/slots", suite.handler.AvailableSlots)
		v1.GET("/slots/conflicts", suite.handler.CheckConflict)
		v1.GET("/cases/:id/hearings", suite.handler.CaseHearings)
		v1.GET("/calendar/:district/:year/:month", suite.handler.MonthCalendar)
	}
}

func (suite *ScheduleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ScheduleHandlerTestSuite) TestListQueue() {
	scheduled := true
	suite.mockCalendar.EXPECT().
		ScheduleRequestsQueue(gomock.Any(), service.QueueFilter{District: "Colombo", IsScheduled: &scheduled}).
		Return([]service.ScheduleRequestResponse{{CaseNumber: "CL2025-0001", IsScheduled: true}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/schedule-requests?district=Colombo&is_scheduled=true", nil)

	var resp []service.ScheduleRequestResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	require.Len(suite.T(), resp, 1)
	assert.True(suite.T(), resp[0].IsScheduled)
}

func (suite *ScheduleHandlerTestSuite) TestListQueueInvalidFlag() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/schedule-requests?is_scheduled=maybe", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid is_scheduled value")
}

func (suite *ScheduleHandlerTestSuite) TestScheduleCase() {
	id := uuid.New()
	req := service.ScheduleCaseRequest{HearingDate: "2025-12-15", StartTime: "09:00", EndTime: "10:00", Courtroom: "Court-1"}

	suite.mockScheduler.EXPECT().
		ScheduleCase(gomock.Any(), suite.actor, id, &req).
		Return(&service.ScheduledEntryResponse{ScheduleRequestID: id, Courtroom: "Court-1", HearingDate: "2025-12-15", StartTime: "09:00", EndTime: "10:00", Status: models.EntryStatusScheduled}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/schedule-requests/"+id.String()+"/schedule", req)

	var resp service.ScheduledEntryResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	assert.Equal(suite.T(), models.EntryStatusScheduled, resp.Status)
	assert.Equal(suite.T(), "09:00", resp.StartTime)
}

func (suite *ScheduleHandlerTestSuite) TestScheduleCaseInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/schedule-requests/123/schedule", service.ScheduleCaseRequest{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid schedule request ID")
}

func (suite *ScheduleHandlerTestSuite) TestScheduleCaseErrors() {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "slot taken", err: apperrors.ErrSlotConflict, status: http.StatusConflict, message: "already occupied"},
		{name: "already scheduled", err: apperrors.ErrAlreadyScheduled, status: http.StatusConflict, message: "already scheduled"},
		{name: "missing request", err: apperrors.ErrScheduleRequestNotFound, status: http.StatusNotFound, message: "schedule request not found"},
		{name: "case moved on", err: apperrors.NewInvalidStateError("case", "completed", "schedule hearing"), status: http.StatusUnprocessableEntity, message: "cannot schedule hearing"},
		{name: "bad window", err: apperrors.NewValidationError("start_time", "start must be before end"), status: http.StatusBadRequest, message: "start_time"},
		{name: "timeout", err: fmt.Errorf("schedule case: %w", context.DeadlineExceeded), status: http.StatusServiceUnavailable, message: "temporarily unavailable"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			id := uuid.New()
			suite.mockScheduler.EXPECT().ScheduleCase(gomock.Any(), gomock.Any(), id, gomock.Any()).Return(nil, tt.err)

			recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/schedule-requests/"+id.String()+"/schedule",
				service.ScheduleCaseRequest{HearingDate: "2025-12-15", StartTime: "09:00", EndTime: "10:00"})

			testutils.AssertErrorResponse(suite.T(), recorder, tt.status, tt.message)
		})
	}
}

func (suite *ScheduleHandlerTestSuite) TestListScheduledEntries() {
	suite.mockScheduler.EXPECT().
		ListScheduledEntries(gomock.Any(), "Colombo", "2025-12-01", "2025-12-31").
		Return([]service.ScheduledEntryResponse{{CaseNumber: "CL2025-0001"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/scheduled-entries?district=Colombo&from=2025-12-01&to=2025-12-31", nil)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK)
}

func (suite *ScheduleHandlerTestSuite) TestAvailableSlots() {
	suite.mockScheduler.EXPECT().
		AvailableSlots(gomock.Any(), "Colombo", "2025-12-15", "Court-1").
		Return(&service.AvailableSlotsResponse{
			District:  "Colombo",
			Date:      "2025-12-15",
			Courtroom: "Court-1",
			Slots: []service.SlotAvailability{
				{Start: "09:00", End: "10:00", Available: false, CaseNumber: "CL2025-0001"},
				{Start: "10:00", End: "11:00", Available: true},
			},
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/slots?district=Colombo&date=2025-12-15&courtroom=Court-1", nil)

	var resp service.AvailableSlotsResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	require.Len(suite.T(), resp.Slots, 2)
	assert.False(suite.T(), resp.Slots[0].Available)
}

func (suite *ScheduleHandlerTestSuite) TestAvailableSlotsMissingDistrict() {
	suite.mockScheduler.EXPECT().
		AvailableSlots(gomock.Any(), "", "2025-12-15", "").
		Return(nil, apperrors.NewValidationError("district", "is required"))

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/slots?date=2025-12-15", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "district")
}

func (suite *ScheduleHandlerTestSuite) TestCheckConflict() {
	exclude := uuid.New()
	date := time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC)
	hit := &models.ScheduledEntry{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		District:    "Colombo",
		Courtroom:   "Court-1",
		HearingDate: date,
		StartTime:   "09:00",
		EndTime:     "10:00",
		Status:      models.EntryStatusScheduled,
		CaseNumber:  "CL2025-0001",
	}

	suite.mockScheduler.EXPECT().
		HasConflict(gomock.Any(), "Colombo", "Court-1", date, calendar.TimeWindow{Start: "09:30", End: "10:30"}, &exclude).
		Return(true, hit, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet,
		"/api/v1/slots/conflicts?district=Colombo&courtroom=Court-1&date=2025-12-15&start_time=09:30&end_time=10:30&exclude="+exclude.String(), nil)

	var resp ConflictCheckResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.True(suite.T(), resp.Conflict)
	require.NotNil(suite.T(), resp.OccupiedBy)
	assert.Equal(suite.T(), "CL2025-0001", resp.OccupiedBy.CaseNumber)
}

func (suite *ScheduleHandlerTestSuite) TestCheckConflictFree() {
	suite.mockScheduler.EXPECT().
		HasConflict(gomock.Any(), "Colombo", "Court-1", gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(false, nil, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet,
		"/api/v1/slots/conflicts?district=Colombo&courtroom=Court-1&date=2025-12-15&start_time=10:00&end_time=11:00", nil)

	var resp ConflictCheckResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.False(suite.T(), resp.Conflict)
	assert.Nil(suite.T(), resp.OccupiedBy)
}

func (suite *ScheduleHandlerTestSuite) TestCheckConflictValidation() {
	tests := []struct {
		name    string
		query   string
		message string
	}{
		{name: "missing courtroom", query: "district=Colombo&date=2025-12-15&start_time=09:00&end_time=10:00", message: "district and courtroom are required"},
		{name: "bad date", query: "district=Colombo&courtroom=Court-1&date=15-12-2025&start_time=09:00&end_time=10:00", message: "date"},
		{name: "inverted window", query: "district=Colombo&courtroom=Court-1&date=2025-12-15&start_time=10:00&end_time=09:00", message: "start_time"},
		{name: "bad exclude", query: "district=Colombo&courtroom=Court-1&date=2025-12-15&start_time=09:00&end_time=10:00&exclude=x", message: "invalid exclude ID"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/slots/conflicts?"+tt.query, nil)

			testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, tt.message)
		})
	}
}

func (suite *ScheduleHandlerTestSuite) TestCaseHearings() {
	id := uuid.New()
	suite.mockScheduler.EXPECT().
		CaseHearingHistory(gomock.Any(), suite.actor, id).
		Return([]service.ScheduledEntryResponse{
			{Sequence: 1, Status: models.EntryStatusAdjourned},
			{Sequence: 2, Status: models.EntryStatusScheduled},
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/cases/"+id.String()+"/hearings", nil)

	var resp []service.ScheduledEntryResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	require.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), models.EntryStatusAdjourned, resp[0].Status)
}

func (suite *ScheduleHandlerTestSuite) TestMonthCalendar() {
	suite.mockCalendar.EXPECT().
		CalendarForMonth(gomock.Any(), "Colombo", 2025, 12).
		Return(&service.MonthCalendarResponse{
			District: "Colombo",
			Year:     2025,
			Month:    12,
			Days:     map[string][]service.HearingSummary{"2025-12-15": {{CaseNumber: "CL2025-0001"}}},
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/calendar/Colombo/2025/12", nil)

	var resp service.MonthCalendarResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Len(suite.T(), resp.Days["2025-12-15"], 1)
}

func (suite *ScheduleHandlerTestSuite) TestMonthCalendarInvalidPath() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/calendar/Colombo/2025/dec", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid month")

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/calendar/Colombo/twenty/12", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid year")
}

func (suite *ScheduleHandlerTestSuite) TestMonthCalendarOutOfRange() {
	suite.mockCalendar.EXPECT().
		CalendarForMonth(gomock.Any(), "Colombo", 2025, 13).
		Return(nil, apperrors.NewValidationError("month", "must be between 1 and 12"))

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/calendar/Colombo/2025/13", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "month")
}

func TestScheduleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}
