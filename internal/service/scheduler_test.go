package service_test

import (
	"context"
	"testing"
	"time"

	"court-scheduling-backend/internal/calendar"
	"court-scheduling-backend/internal/database/models"
	apperrors "court-scheduling-backend/internal/errors"
	"court-scheduling-backend/internal/notification"
	"court-scheduling-backend/internal/repository"
	"court-scheduling-backend/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// SchedulerServiceTestSuite defines the test suite for SchedulerService
type SchedulerServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	m         *storeMocks
	publisher *recordingPublisher
	service   *service.SchedulerService
	ctx       context.Context
}

func (suite *SchedulerServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.m = newStoreMocks(suite.ctrl)
	suite.publisher = &recordingPublisher{}
	suite.service = service.NewSchedulerService(suite.m.store, calendar.NewPolicy(calendar.ConflictModeOverlap), suite.publisher, service.NewValidator())
	suite.ctx = context.Background()
}

func (suite *SchedulerServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SchedulerServiceTestSuite) queued() (*models.ScheduleRequest, *models.Case) {
	lawyerID := uuid.New()
	c := &models.Case{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		CaseNumber:      "CL2025-0001",
		Title:           "Perera v. Fernando",
		CaseType:        "civil",
		District:        "Colombo",
		Status:          models.CaseStatusSchedulingRequested,
		ClientID:        uuid.New(),
		ClientName:      "Kamala Perera",
		CurrentLawyerID: &lawyerID,
		LawyerName:      "Nimal Silva",
	}
	sr := &models.ScheduleRequest{
		BaseModel:           models.BaseModel{ID: uuid.New()},
		CaseID:              c.ID,
		District:            "Colombo",
		CourtroomPreference: "Court-1",
		Priority:            models.PriorityHigh,
	}
	return sr, c
}

func (suite *SchedulerServiceTestSuite) booked(courtroom, start, end string) models.ScheduledEntry {
	return models.ScheduledEntry{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		CaseID:      uuid.New(),
		District:    "Colombo",
		Courtroom:   courtroom,
		HearingDate: day(2025, time.December, 15),
		StartTime:   start,
		EndTime:     end,
		Status:      models.EntryStatusScheduled,
		CaseNumber:  "CL2025-0099",
	}
}

func (suite *SchedulerServiceTestSuite) scheduleRequest() *service.ScheduleCaseRequest {
	return &service.ScheduleCaseRequest{HearingDate: "2025-12-15", StartTime: "09:00", EndTime: "10:00"}
}

func (suite *SchedulerServiceTestSuite) TestScheduleCase() {
	actor := schedulerPrincipal()
	sr, c := suite.queued()
	date := day(2025, time.December, 15)
	filingID := uuid.New()

	suite.m.requests.EXPECT().GetByIDForUpdate(gomock.Any(), sr.ID).Return(sr, nil)
	suite.m.store.EXPECT().LockPartition(gomock.Any(), "colombo|court-1|2025-12-15").Return(nil)
	suite.m.entries.EXPECT().FindActive(gomock.Any(), "Colombo", "Court-1", date).
		Return([]models.ScheduledEntry{suite.booked("Court-1", "10:00", "11:00")}, nil)
	suite.m.cases.EXPECT().GetByIDForUpdate(gomock.Any(), c.ID).Return(c, nil)
	suite.m.entries.EXPECT().NextSequence(gomock.Any(), c.ID).Return(1, nil)
	suite.m.entries.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.ScheduledEntry) error {
			e.ID = uuid.New()
			return nil
		})
	suite.m.requests.EXPECT().
		MarkScheduled(gomock.Any(), sr.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, a repository.Allocation) error {
			assert.Equal(suite.T(), "Court-1", a.Courtroom)
			assert.Equal(suite.T(), actor.UserID, a.ScheduledBy)
			return nil
		})
	suite.m.cases.EXPECT().
		UpdateHearing(gomock.Any(), c.ID, models.CaseStatusSchedulingRequested, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ models.CaseStatus, h repository.HearingUpdate) error {
			assert.Equal(suite.T(), models.CaseStatusHearingScheduled, h.Status)
			assert.Equal(suite.T(), c.CurrentLawyerID, h.LawyerID)
			assert.Equal(suite.T(), "09:00", h.Window.Start)
			return nil
		})
	suite.m.filings.EXPECT().GetLatestByCaseID(gomock.Any(), c.ID).
		Return(&models.CourtFiling{BaseModel: models.BaseModel{ID: filingID}}, nil)
	suite.m.filings.EXPECT().UpdateHearing(gomock.Any(), filingID, models.FilingStatusScheduled, date).Return(nil)

	resp, err := suite.service.ScheduleCase(suite.ctx, actor, sr.ID, suite.scheduleRequest())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2025-12-15", resp.HearingDate)
	assert.Equal(suite.T(), "Court-1", resp.Courtroom)
	assert.Equal(suite.T(), 1, resp.Sequence)
	assert.Equal(suite.T(), models.EntryStatusScheduled, resp.Status)
	assert.Equal(suite.T(), "Nimal Silva", resp.LawyerName)

	require.Len(suite.T(), suite.publisher.events, 1)
	assert.Equal(suite.T(), notification.EventScheduleAllocated, suite.publisher.events[0].Type)
	assert.Equal(suite.T(), "Colombo", suite.publisher.events[0].District)
}

func (suite *SchedulerServiceTestSuite) TestScheduleCaseSlotConflict() {
	sr, _ := suite.queued()
	date := day(2025, time.December, 15)

	suite.m.requests.EXPECT().GetByIDForUpdate(gomock.Any(), sr.ID).Return(sr, nil)
	suite.m.store.EXPECT().LockPartition(gomock.Any(), gomock.Any()).Return(nil)
	suite.m.entries.EXPECT().FindActive(gomock.Any(), "Colombo", "Court-1", date).
		Return([]models.ScheduledEntry{suite.booked("Court-1", "09:30", "10:30")}, nil)

	resp, err := suite.service.ScheduleCase(suite.ctx, schedulerPrincipal(), sr.ID, suite.scheduleRequest())

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSlotConflict)
	assert.Empty(suite.T(), suite.publisher.events)
}

func (suite *SchedulerServiceTestSuite) TestScheduleCaseAlreadyScheduled() {
	sr, _ := suite.queued()
	sr.IsScheduled = true
	suite.m.requests.EXPECT().GetByIDForUpdate(gomock.Any(), sr.ID).Return(sr, nil)

	_, err := suite.service.ScheduleCase(suite.ctx, schedulerPrincipal(), sr.ID, suite.scheduleRequest())

	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyScheduled)
}

func (suite *SchedulerServiceTestSuite) TestScheduleCaseRequestNotFound() {
	id := uuid.New()
	suite.m.requests.EXPECT().GetByIDForUpdate(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.ScheduleCase(suite.ctx, schedulerPrincipal(), id, suite.scheduleRequest())

	assert.ErrorIs(suite.T(), err, apperrors.ErrScheduleRequestNotFound)
}

func (suite *SchedulerServiceTestSuite) TestScheduleCaseNeedsCourtroom() {
	sr, _ := suite.queued()
	sr.CourtroomPreference = ""
	suite.m.requests.EXPECT().GetByIDForUpdate(gomock.Any(), sr.ID).Return(sr, nil)

	_, err := suite.service.ScheduleCase(suite.ctx, schedulerPrincipal(), sr.ID, suite.scheduleRequest())

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *SchedulerServiceTestSuite) TestScheduleCaseInvalidWindow() {
	req := suite.scheduleRequest()
	req.StartTime, req.EndTime = "11:00", "10:00"

	_, err := suite.service.ScheduleCase(suite.ctx, schedulerPrincipal(), uuid.New(), req)

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *SchedulerServiceTestSuite) TestScheduleCaseInvalidDate() {
	req := suite.scheduleRequest()
	req.HearingDate = "15/12/2025"

	_, err := suite.service.ScheduleCase(suite.ctx, schedulerPrincipal(), uuid.New(), req)

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *SchedulerServiceTestSuite) TestScheduleCaseLostRaceOnUniqueIndex() {
	sr, c := suite.queued()

	suite.m.requests.EXPECT().GetByIDForUpdate(gomock.Any(), sr.ID).Return(sr, nil)
	suite.m.store.EXPECT().LockPartition(gomock.Any(), gomock.Any()).Return(nil)
	suite.m.entries.EXPECT().FindActive(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	suite.m.cases.EXPECT().GetByIDForUpdate(gomock.Any(), c.ID).Return(c, nil)
	suite.m.entries.EXPECT().NextSequence(gomock.Any(), c.ID).Return(1, nil)
	suite.m.entries.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: repository.ConstraintActiveWindow})

	_, err := suite.service.ScheduleCase(suite.ctx, schedulerPrincipal(), sr.ID, suite.scheduleRequest())

	assert.ErrorIs(suite.T(), err, apperrors.ErrSlotConflict)
}

func (suite *SchedulerServiceTestSuite) TestScheduleCaseWrongCaseStatus() {
	for _, status := range []models.CaseStatus{
		models.CaseStatusFiled,
		models.CaseStatusHearingScheduled,
		models.CaseStatusCompleted,
		models.CaseStatusRejected,
	} {
		suite.Run(string(status), func() {
			sr, c := suite.queued()
			c.Status = status

			suite.m.requests.EXPECT().GetByIDForUpdate(gomock.Any(), sr.ID).Return(sr, nil)
			suite.m.store.EXPECT().LockPartition(gomock.Any(), gomock.Any()).Return(nil)
			suite.m.entries.EXPECT().FindActive(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			suite.m.cases.EXPECT().GetByIDForUpdate(gomock.Any(), c.ID).Return(c, nil)

			_, err := suite.service.ScheduleCase(suite.ctx, schedulerPrincipal(), sr.ID, suite.scheduleRequest())

			var invalid *apperrors.InvalidStateError
			require.ErrorAs(suite.T(), err, &invalid)
			assert.Contains(suite.T(), err.Error(), "schedule hearing")
			assert.Contains(suite.T(), err.Error(), string(status))
		})
	}
}

func (suite *SchedulerServiceTestSuite) TestHasConflictExcludesMovedEntry() {
	existing := suite.booked("Court-1", "09:00", "10:00")
	date := day(2025, time.December, 15)
	window := calendar.TimeWindow{Start: "09:30", End: "10:30"}

	suite.m.entries.EXPECT().FindActive(gomock.Any(), "Colombo", "Court-1", date).
		Return([]models.ScheduledEntry{existing}, nil).Times(2)

	conflict, hit, err := suite.service.HasConflict(suite.ctx, "Colombo", "Court-1", date, window, nil)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), conflict)
	require.NotNil(suite.T(), hit)
	assert.Equal(suite.T(), existing.ID, hit.ID)

	conflict, hit, err = suite.service.HasConflict(suite.ctx, "Colombo", "Court-1", date, window, &existing.ID)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), conflict)
	assert.Nil(suite.T(), hit)
}

func (suite *SchedulerServiceTestSuite) TestHasConflictLegacyModeSpansCourtrooms() {
	legacy := service.NewSchedulerService(suite.m.store, calendar.NewPolicy(calendar.ConflictModeLegacy), suite.publisher, service.NewValidator())
	date := day(2025, time.December, 15)

	suite.m.entries.EXPECT().FindActive(gomock.Any(), "Colombo", "", date).
		Return([]models.ScheduledEntry{suite.booked("Court-2", "09:00", "10:00")}, nil).Times(2)

	conflict, _, err := legacy.HasConflict(suite.ctx, "Colombo", "Court-1", date, calendar.TimeWindow{Start: "09:00", End: "10:00"}, nil)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), conflict)

	// legacy only matches identical windows
	conflict, _, err = legacy.HasConflict(suite.ctx, "Colombo", "Court-1", date, calendar.TimeWindow{Start: "09:30", End: "10:30"}, nil)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), conflict)
}

func (suite *SchedulerServiceTestSuite) TestHasConflictValidatesInput() {
	date := day(2025, time.December, 15)
	window := calendar.TimeWindow{Start: "09:00", End: "10:00"}

	tests := []struct {
		name      string
		district  string
		courtroom string
		window    calendar.TimeWindow
		field     string
	}{
		{name: "missing courtroom", district: "Colombo", courtroom: "  ", window: window, field: "courtroom"},
		{name: "missing district", district: "", courtroom: "Court-1", window: window, field: "district"},
		{name: "signed start", district: "Colombo", courtroom: "Court-1", window: calendar.TimeWindow{Start: "+9:00", End: "10:00"}, field: "start_time"},
		{name: "bad end", district: "Colombo", courtroom: "Court-1", window: calendar.TimeWindow{Start: "09:00", End: "1000"}, field: "end_time"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			conflict, hit, err := suite.service.HasConflict(suite.ctx, tt.district, tt.courtroom, date, tt.window, nil)

			var verr *apperrors.ValidationError
			require.ErrorAs(suite.T(), err, &verr)
			assert.Equal(suite.T(), tt.field, verr.Field)
			assert.False(suite.T(), conflict)
			assert.Nil(suite.T(), hit)
		})
	}
}

func (suite *SchedulerServiceTestSuite) TestHasConflictLegacyModeAllowsAnyCourtroom() {
	legacy := service.NewSchedulerService(suite.m.store, calendar.NewPolicy(calendar.ConflictModeLegacy), suite.publisher, service.NewValidator())
	date := day(2025, time.December, 15)

	suite.m.entries.EXPECT().FindActive(gomock.Any(), "Colombo", "", date).
		Return([]models.ScheduledEntry{suite.booked("Court-2", "09:00", "10:00")}, nil)

	conflict, _, err := legacy.HasConflict(suite.ctx, "Colombo", "", date, calendar.TimeWindow{Start: "09:00", End: "10:00"}, nil)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), conflict)
}

func (suite *SchedulerServiceTestSuite) TestScheduleCaseRejectsNonCanonicalTimes() {
	legacy := service.NewSchedulerService(suite.m.store, calendar.NewPolicy(calendar.ConflictModeLegacy), suite.publisher, service.NewValidator())

	tests := []struct {
		name  string
		start string
		end   string
		field string
	}{
		{name: "signed start", start: "+9:00", end: "10:00", field: "start_time"},
		{name: "negative start", start: "-0:30", end: "10:00", field: "start_time"},
		{name: "unseparated end", start: "09:00", end: "1000", field: "end_time"},
		{name: "reversed", start: "11:00", end: "10:00", field: "end_time"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := suite.scheduleRequest()
			req.StartTime, req.EndTime = tt.start, tt.end

			_, err := legacy.ScheduleCase(suite.ctx, schedulerPrincipal(), uuid.New(), req)

			var verr *apperrors.ValidationError
			require.ErrorAs(suite.T(), err, &verr)
			assert.Equal(suite.T(), tt.field, verr.Field)
		})
	}
}

func (suite *SchedulerServiceTestSuite) TestAvailableSlots() {
	date := day(2025, time.December, 15)
	suite.m.entries.EXPECT().FindActive(gomock.Any(), "Colombo", "Court-1", date).
		Return([]models.ScheduledEntry{suite.booked("Court-1", "09:00", "10:00")}, nil)

	resp, err := suite.service.AvailableSlots(suite.ctx, "Colombo", "2025-12-15", "Court-1")

	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp.Slots, len(calendar.StandardSlots()))
	for _, slot := range resp.Slots {
		if slot.Start == "09:00" {
			assert.False(suite.T(), slot.Available)
			assert.Equal(suite.T(), "CL2025-0099", slot.CaseNumber)
		} else {
			assert.True(suite.T(), slot.Available, slot.Start)
		}
	}
}

func (suite *SchedulerServiceTestSuite) TestAvailableSlotsRequiresDistrict() {
	_, err := suite.service.AvailableSlots(suite.ctx, " ", "2025-12-15", "")

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *SchedulerServiceTestSuite) TestListScheduledEntriesRejectsInvertedRange() {
	_, err := suite.service.ListScheduledEntries(suite.ctx, "Colombo", "2025-12-31", "2025-12-01")

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *SchedulerServiceTestSuite) TestListScheduledEntries() {
	from, to := day(2025, time.December, 1), day(2025, time.December, 31)
	suite.m.entries.EXPECT().
		ListByDistrictAndRange(gomock.Any(), "Colombo", from, to, gomock.Any()).
		Return([]models.ScheduledEntry{suite.booked("Court-1", "09:00", "10:00")}, nil)

	resp, err := suite.service.ListScheduledEntries(suite.ctx, "Colombo", "2025-12-01", "2025-12-31")

	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp, 1)
	assert.Equal(suite.T(), service.NotAssignedLawyer, resp[0].LawyerName)
}

func (suite *SchedulerServiceTestSuite) TestCaseHearingHistoryHidesOtherClients() {
	_, c := suite.queued()
	suite.m.cases.EXPECT().GetByID(gomock.Any(), c.ID).Return(c, nil)

	_, err := suite.service.CaseHearingHistory(suite.ctx, clientPrincipal(), c.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotCaseClient)
}

func TestSchedulerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerServiceTestSuite))
}
