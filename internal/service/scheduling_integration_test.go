//go:build integration
// +build integration

package service_test

import (
	"context"
	"os"
	"sync"
	"testing"

	"court-scheduling-backend/internal/auth"
	"court-scheduling-backend/internal/calendar"
	"court-scheduling-backend/internal/database/models"
	apperrors "court-scheduling-backend/internal/errors"
	"court-scheduling-backend/internal/notification"
	"court-scheduling-backend/internal/repository"
	"court-scheduling-backend/internal/service"
	"court-scheduling-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

// SchedulingFlowTestSuite runs the services against Postgres
type SchedulingFlowTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	ctx           context.Context

	cases       *service.CaseService
	scheduler   *service.SchedulerService
	adjournment *service.AdjournmentService
	calendar    *service.CalendarService

	lawyer *auth.Principal
	client *auth.Principal
	clerk  *auth.Principal
}

func (suite *SchedulingFlowTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.ctx = context.Background()

	store := repository.NewStore(suite.baseTestSuite.DB, 3)
	validate := service.NewValidator()
	publisher := notification.LogPublisher{}

	suite.cases = service.NewCaseService(store, validate)
	suite.scheduler = service.NewSchedulerService(store, calendar.NewPolicy(calendar.ConflictModeOverlap), publisher, validate)
	suite.adjournment = service.NewAdjournmentService(store, suite.scheduler, publisher, validate)
	suite.calendar = service.NewCalendarService(store)

	suite.lawyer = testutils.NewPrincipal(models.UserRoleLawyer)
	suite.client = testutils.NewPrincipal(models.UserRoleClient)
	suite.clerk = testutils.NewPrincipal(models.UserRoleCourtScheduler)
}

func (suite *SchedulingFlowTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *SchedulingFlowTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// queue files a case and puts it in the scheduling queue
func (suite *SchedulingFlowTestSuite) queue(caseNumber string) *service.ScheduleRequestResponse {
	filed, err := suite.cases.FileCase(suite.ctx, suite.lawyer, &service.FileCaseRequest{
		CaseNumber: caseNumber,
		Title:      "Perera v. Silva",
		CaseType:   "civil",
		District:   "Colombo",
		ClientID:   suite.client.UserID.String(),
		ClientName: "Kamala Perera",
	})
	suite.Require().NoError(err)

	req, err := suite.cases.RequestScheduling(suite.ctx, suite.lawyer, filed.ID, &service.RequestSchedulingRequest{
		Priority:            "high",
		CourtroomPreference: "Court-1",
	})
	suite.Require().NoError(err)
	return req
}

func (suite *SchedulingFlowTestSuite) TestConcurrentBookingsOfOneSlot() {
	first := suite.queue("CL2025-0001")
	second := suite.queue("CL2025-0002")
	slot := service.ScheduleCaseRequest{HearingDate: "2025-12-15", StartTime: "09:00", EndTime: "10:00", Courtroom: "Court-1"}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []uuid.UUID{first.ID, second.ID} {
		wg.Add(1)
		go func(i int, id uuid.UUID) {
			defer wg.Done()
			req := slot
			_, errs[i] = suite.scheduler.ScheduleCase(suite.ctx, suite.clerk, id, &req)
		}(i, id)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		suite.ErrorIs(err, apperrors.ErrSlotConflict)
	}
	suite.Equal(1, succeeded)

	entries, err := suite.scheduler.ListScheduledEntries(suite.ctx, "Colombo", "2025-12-15", "2025-12-15")
	suite.Require().NoError(err)
	suite.Len(entries, 1)

	slots, err := suite.scheduler.AvailableSlots(suite.ctx, "Colombo", "2025-12-15", "Court-1")
	suite.Require().NoError(err)
	suite.False(slots.Slots[0].Available)
	suite.True(slots.Slots[1].Available)
}

func (suite *SchedulingFlowTestSuite) TestScheduleTwiceIsRejected() {
	req := suite.queue("CL2025-0003")
	slot := &service.ScheduleCaseRequest{HearingDate: "2025-12-15", StartTime: "10:00", EndTime: "11:00", Courtroom: "Court-1"}

	_, err := suite.scheduler.ScheduleCase(suite.ctx, suite.clerk, req.ID, slot)
	suite.Require().NoError(err)

	slot.StartTime, slot.EndTime = "11:00", "12:00"
	_, err = suite.scheduler.ScheduleCase(suite.ctx, suite.clerk, req.ID, slot)
	suite.ErrorIs(err, apperrors.ErrAlreadyScheduled)
}

func (suite *SchedulingFlowTestSuite) TestAdjournmentMovesHearing() {
	req := suite.queue("CL2025-0004")
	original, err := suite.scheduler.ScheduleCase(suite.ctx, suite.clerk, req.ID,
		&service.ScheduleCaseRequest{HearingDate: "2025-12-15", StartTime: "09:00", EndTime: "10:00", Courtroom: "Court-1"})
	suite.Require().NoError(err)

	pending, err := suite.adjournment.CreateAdjournmentRequest(suite.ctx, suite.client, &service.CreateAdjournmentRequest{
		CaseID:        req.CaseID.String(),
		PreferredDate: "2026-01-20",
		Reason:        "Lead counsel is abroad",
	})
	suite.Require().NoError(err)
	suite.Equal(models.AdjournmentStatusPending, pending.Status)
	suite.Equal("2025-12-15", pending.OriginalHearingDate)

	_, err = suite.adjournment.CreateAdjournmentRequest(suite.ctx, suite.client, &service.CreateAdjournmentRequest{
		CaseID:        req.CaseID.String(),
		PreferredDate: "2026-01-21",
		Reason:        "Second attempt",
	})
	suite.ErrorIs(err, apperrors.ErrDuplicatePendingRequest)

	accepted, err := suite.adjournment.AcceptAdjournmentRequest(suite.ctx, suite.clerk, pending.ID, &service.AcceptAdjournmentRequest{
		NewHearingDate: "2026-01-22",
		NewStartTime:   "10:00",
		NewEndTime:     "11:00",
		Courtroom:      "Court-2",
	})
	suite.Require().NoError(err)
	suite.Equal(models.AdjournmentStatusAccepted, accepted.Status)

	history, err := suite.scheduler.CaseHearingHistory(suite.ctx, suite.lawyer, req.CaseID)
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal(original.ID, history[0].ID)
	suite.Equal(models.EntryStatusAdjourned, history[0].Status)
	suite.Equal(2, history[1].Sequence)
	suite.Equal("2026-01-22", history[1].HearingDate)

	c, err := suite.cases.GetCase(suite.ctx, suite.client, req.CaseID)
	suite.Require().NoError(err)
	suite.Equal("2026-01-22", c.HearingDate)
	suite.Equal("Court-2", c.Courtroom)

	_, err = suite.adjournment.RejectAdjournmentRequest(suite.ctx, suite.clerk, pending.ID, &service.RejectAdjournmentRequest{})
	suite.True(apperrors.IsInvalidState(err))

	month, err := suite.calendar.CalendarForMonth(suite.ctx, "Colombo", 2025, 12)
	suite.Require().NoError(err)
	suite.Empty(month.Days)
}

func TestSchedulingFlowTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulingFlowTestSuite))
}
