//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"court-scheduling-backend/internal/calendar"
	"court-scheduling-backend/internal/database/models"
	"court-scheduling-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SchedulingRepositoryTestSuite exercises the scheduling repositories and the
// unique indexes that back the calendar invariants
type SchedulingRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	store         *Store
	ctx           context.Context

	cases        *testutils.CaseFactory
	requests     *testutils.ScheduleRequestFactory
	entries      *testutils.ScheduledEntryFactory
	adjournments *testutils.AdjournmentRequestFactory
	filings      *testutils.CourtFilingFactory
}

// SetupSuite runs before all tests in the suite
func (suite *SchedulingRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.store = NewStore(suite.baseTestSuite.DB, 3)
	suite.ctx = context.Background()

	suite.cases = testutils.NewCaseFactory()
	suite.requests = testutils.NewScheduleRequestFactory()
	suite.entries = testutils.NewScheduledEntryFactory()
	suite.adjournments = testutils.NewAdjournmentRequestFactory()
	suite.filings = testutils.NewCourtFilingFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *SchedulingRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SchedulingRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *SchedulingRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *SchedulingRepositoryTestSuite) createCase(c *models.Case) *models.Case {
	suite.Require().NoError(suite.store.Cases().Create(suite.ctx, c))
	return c
}

func (suite *SchedulingRepositoryTestSuite) createRequest(c *models.Case) *models.ScheduleRequest {
	r := suite.requests.ForCase(c)
	suite.Require().NoError(suite.store.ScheduleRequests().Create(suite.ctx, r))
	return r
}

func (suite *SchedulingRepositoryTestSuite) requireConstraint(err error, constraint string) {
	suite.Require().Error(err)
	name, ok := UniqueViolation(err)
	suite.Require().True(ok, "expected unique violation, got %v", err)
	suite.Equal(constraint, name)
}

func (suite *SchedulingRepositoryTestSuite) TestCaseNumberIsUnique() {
	first := suite.createCase(suite.cases.Create())

	dup := suite.cases.Create()
	dup.CaseNumber = first.CaseNumber
	err := suite.store.Cases().Create(suite.ctx, dup)

	suite.requireConstraint(err, ConstraintCaseNumber)
}

func (suite *SchedulingRepositoryTestSuite) TestGetByCaseNumber() {
	c := suite.createCase(suite.cases.Create())

	found, err := suite.store.Cases().GetByCaseNumber(suite.ctx, c.CaseNumber)
	suite.Require().NoError(err)
	suite.Equal(c.ID, found.ID)

	_, err = suite.store.Cases().GetByCaseNumber(suite.ctx, "CL1999-0000")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *SchedulingRepositoryTestSuite) TestListCasesFilters() {
	colombo := suite.createCase(suite.cases.WithDistrict("Colombo"))
	suite.createCase(suite.cases.WithDistrict("Kandy"))

	cases, total, err := suite.store.Cases().List(suite.ctx, CaseFilter{District: "colombo"}, 20, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(cases, 1)
	suite.Equal(colombo.ID, cases[0].ID)

	cases, total, err = suite.store.Cases().List(suite.ctx, CaseFilter{ClientID: &colombo.ClientID}, 20, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(cases, 1)
}

func (suite *SchedulingRepositoryTestSuite) TestTransitionStatusGuards() {
	c := suite.createCase(suite.cases.Create())

	err := suite.store.Cases().TransitionStatus(suite.ctx, c.ID, models.CaseStatusHearingScheduled, models.CaseStatusCompleted, c.CurrentLawyerID)
	suite.ErrorIs(err, ErrConditionNotMet)

	other := uuid.New()
	err = suite.store.Cases().TransitionStatus(suite.ctx, c.ID, models.CaseStatusFiled, models.CaseStatusSchedulingRequested, &other)
	suite.ErrorIs(err, ErrConditionNotMet)

	err = suite.store.Cases().TransitionStatus(suite.ctx, c.ID, models.CaseStatusFiled, models.CaseStatusSchedulingRequested, c.CurrentLawyerID)
	suite.Require().NoError(err)

	found, err := suite.store.Cases().GetByID(suite.ctx, c.ID)
	suite.Require().NoError(err)
	suite.Equal(models.CaseStatusSchedulingRequested, found.Status)
	suite.Equal(c.CurrentLawyerID, found.CurrentLawyerID)
}

func (suite *SchedulingRepositoryTestSuite) TestUpdateHearing() {
	c := suite.createCase(suite.cases.WithStatus(models.CaseStatusSchedulingRequested))
	date := testutils.Date(2025, time.December, 15)

	err := suite.store.Cases().UpdateHearing(suite.ctx, c.ID, models.CaseStatusSchedulingRequested, HearingUpdate{
		Status:    models.CaseStatusHearingScheduled,
		LawyerID:  c.CurrentLawyerID,
		Date:      date,
		Window:    calendar.TimeWindow{Start: "09:00", End: "10:00"},
		Courtroom: "Court-1",
		UpdatedBy: "registrar",
	})
	suite.Require().NoError(err)

	found, err := suite.store.Cases().GetByID(suite.ctx, c.ID)
	suite.Require().NoError(err)
	suite.Equal(models.CaseStatusHearingScheduled, found.Status)
	suite.Require().NotNil(found.HearingDate)
	suite.Equal("2025-12-15", calendar.FormatDate(*found.HearingDate))
	suite.Equal("09:00", found.HearingStartTime)
	suite.Equal("Court-1", found.Courtroom)
}

func (suite *SchedulingRepositoryTestSuite) TestOneOpenScheduleRequestPerCase() {
	c := suite.createCase(suite.cases.Create())
	suite.createRequest(c)

	err := suite.store.ScheduleRequests().Create(suite.ctx, suite.requests.ForCase(c))

	suite.requireConstraint(err, ConstraintOpenRequestPerCase)
}

func (suite *SchedulingRepositoryTestSuite) TestMarkScheduledOnlyOnce() {
	c := suite.createCase(suite.cases.Create())
	r := suite.createRequest(c)
	allocation := Allocation{
		Date:        testutils.Date(2025, time.December, 15),
		Window:      calendar.TimeWindow{Start: "09:00", End: "10:00"},
		Courtroom:   "Court-1",
		ScheduledBy: uuid.New(),
		ScheduledAt: time.Now(),
	}

	suite.Require().NoError(suite.store.ScheduleRequests().MarkScheduled(suite.ctx, r.ID, allocation))
	suite.ErrorIs(suite.store.ScheduleRequests().MarkScheduled(suite.ctx, r.ID, allocation), ErrConditionNotMet)

	open, err := suite.store.ScheduleRequests().GetOpenByCaseID(suite.ctx, c.ID)
	suite.Nil(open)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	latest, err := suite.store.ScheduleRequests().GetLatestByCaseID(suite.ctx, c.ID)
	suite.Require().NoError(err)
	suite.True(latest.IsScheduled)
	suite.Equal("09:00", latest.ScheduledStartTime)
}

func (suite *SchedulingRepositoryTestSuite) TestListQueueOrdersByPriority() {
	low := suite.requests.WithPriority(suite.createCase(suite.cases.Create()), models.PriorityLow)
	high := suite.requests.WithPriority(suite.createCase(suite.cases.Create()), models.PriorityHigh)
	medium := suite.requests.WithPriority(suite.createCase(suite.cases.Create()), models.PriorityMedium)
	for _, r := range []*models.ScheduleRequest{low, high, medium} {
		suite.Require().NoError(suite.store.ScheduleRequests().Create(suite.ctx, r))
	}

	unscheduled := false
	queue, err := suite.store.ScheduleRequests().ListQueue(suite.ctx, QueueFilter{District: "COLOMBO", IsScheduled: &unscheduled})

	suite.Require().NoError(err)
	suite.Require().Len(queue, 3)
	suite.Equal(high.ID, queue[0].ID)
	suite.Equal(medium.ID, queue[1].ID)
	suite.Equal(low.ID, queue[2].ID)
}

func (suite *SchedulingRepositoryTestSuite) TestActiveWindowIsUniqueIgnoringCase() {
	date := testutils.Date(2025, time.December, 15)
	first := suite.createRequest(suite.createCase(suite.cases.Create()))
	suite.Require().NoError(suite.store.ScheduledEntries().Create(suite.ctx, suite.entries.ForRequest(first, date, "09:00", "10:00", "Court-1")))

	second := suite.createRequest(suite.createCase(suite.cases.Create()))
	clash := suite.entries.ForRequest(second, date, "09:00", "10:00", "court-1")
	clash.District = "COLOMBO"
	err := suite.store.ScheduledEntries().Create(suite.ctx, clash)

	suite.requireConstraint(err, ConstraintActiveWindow)
}

func (suite *SchedulingRepositoryTestSuite) TestAdjournedEntryFreesItsWindow() {
	date := testutils.Date(2025, time.December, 15)
	r := suite.createRequest(suite.createCase(suite.cases.Create()))
	original := suite.entries.ForRequest(r, date, "09:00", "10:00", "Court-1")
	suite.Require().NoError(suite.store.ScheduledEntries().Create(suite.ctx, original))

	successor := suite.entries.ForRequest(r, testutils.Date(2026, time.January, 22), "10:00", "11:00", "Court-2")
	successor.Sequence = 2

	err := suite.store.Transaction(suite.ctx, func(tx StoreInterface) error {
		if err := tx.ScheduledEntries().Supersede(suite.ctx, original.ID, successor.ID); err != nil {
			return err
		}
		return tx.ScheduledEntries().Create(suite.ctx, successor)
	})
	suite.Require().NoError(err)

	other := suite.createRequest(suite.createCase(suite.cases.Create()))
	suite.NoError(suite.store.ScheduledEntries().Create(suite.ctx, suite.entries.ForRequest(other, date, "09:00", "10:00", "Court-1")))

	history, err := suite.store.ScheduledEntries().ListByCaseID(suite.ctx, r.CaseID)
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal(models.EntryStatusAdjourned, history[0].Status)
	suite.Require().NotNil(history[0].SupersededByID)
	suite.Equal(successor.ID, *history[0].SupersededByID)
	suite.Equal(models.EntryStatusScheduled, history[1].Status)

	active, err := suite.store.ScheduledEntries().GetActiveByCaseID(suite.ctx, r.CaseID)
	suite.Require().NoError(err)
	suite.Equal(successor.ID, active.ID)

	next, err := suite.store.ScheduledEntries().NextSequence(suite.ctx, r.CaseID)
	suite.Require().NoError(err)
	suite.Equal(3, next)

	suite.ErrorIs(suite.store.ScheduledEntries().Supersede(suite.ctx, original.ID, uuid.New()), ErrConditionNotMet)
}

func (suite *SchedulingRepositoryTestSuite) TestOneActiveEntryPerCase() {
	r := suite.createRequest(suite.createCase(suite.cases.Create()))
	suite.Require().NoError(suite.store.ScheduledEntries().Create(suite.ctx,
		suite.entries.ForRequest(r, testutils.Date(2025, time.December, 15), "09:00", "10:00", "Court-1")))

	second := suite.entries.ForRequest(r, testutils.Date(2025, time.December, 16), "09:00", "10:00", "Court-1")
	second.Sequence = 2
	err := suite.store.ScheduledEntries().Create(suite.ctx, second)

	suite.requireConstraint(err, ConstraintActivePerCase)
}

func (suite *SchedulingRepositoryTestSuite) TestCaseSequenceIsUnique() {
	r := suite.createRequest(suite.createCase(suite.cases.Create()))
	first := suite.entries.ForRequest(r, testutils.Date(2025, time.December, 15), "09:00", "10:00", "Court-1")
	first.Status = models.EntryStatusCompleted
	suite.Require().NoError(suite.store.ScheduledEntries().Create(suite.ctx, first))

	err := suite.store.ScheduledEntries().Create(suite.ctx,
		suite.entries.ForRequest(r, testutils.Date(2025, time.December, 16), "09:00", "10:00", "Court-1"))

	suite.requireConstraint(err, ConstraintCaseSequence)
}

func (suite *SchedulingRepositoryTestSuite) TestFindActiveAndRange() {
	date := testutils.Date(2025, time.December, 15)
	a := suite.createRequest(suite.createCase(suite.cases.Create()))
	b := suite.createRequest(suite.createCase(suite.cases.Create()))
	c := suite.createRequest(suite.createCase(suite.cases.Create()))
	suite.Require().NoError(suite.store.ScheduledEntries().Create(suite.ctx, suite.entries.ForRequest(a, date, "09:00", "10:00", "Court-1")))
	suite.Require().NoError(suite.store.ScheduledEntries().Create(suite.ctx, suite.entries.ForRequest(b, date, "10:00", "11:00", "Court-2")))
	cancelled := suite.entries.ForRequest(c, date, "11:00", "12:00", "Court-1")
	cancelled.Status = models.EntryStatusCancelled
	suite.Require().NoError(suite.store.ScheduledEntries().Create(suite.ctx, cancelled))

	inCourt1, err := suite.store.ScheduledEntries().FindActive(suite.ctx, "colombo", "COURT-1", date)
	suite.Require().NoError(err)
	suite.Len(inCourt1, 1)

	wholeDistrict, err := suite.store.ScheduledEntries().FindActive(suite.ctx, "Colombo", "", date)
	suite.Require().NoError(err)
	suite.Len(wholeDistrict, 2)

	month, err := suite.store.ScheduledEntries().ListByDistrictAndRange(suite.ctx, "Colombo",
		testutils.Date(2025, time.December, 1), testutils.Date(2025, time.December, 31), models.ActiveEntryStatuses())
	suite.Require().NoError(err)
	suite.Len(month, 2)
}

func (suite *SchedulingRepositoryTestSuite) TestOnePendingAdjournmentPerCase() {
	c := suite.createCase(suite.cases.WithHearing(testutils.Date(2025, time.December, 15), "09:00", "10:00", "Court-1"))
	preferred := testutils.Date(2026, time.January, 20)
	first := suite.adjournments.ForCase(c, preferred)
	suite.Require().NoError(suite.store.Adjournments().Create(suite.ctx, first))

	err := suite.store.Adjournments().Create(suite.ctx, suite.adjournments.ForCase(c, preferred))
	suite.requireConstraint(err, ConstraintPendingAdjournment)

	suite.Require().NoError(suite.store.Adjournments().Resolve(suite.ctx, first.ID, Resolution{
		Status:     models.AdjournmentStatusRejected,
		ResolvedBy: uuid.New(),
		ResolvedAt: time.Now(),
		Notes:      "no free slot",
	}))
	suite.ErrorIs(suite.store.Adjournments().Resolve(suite.ctx, first.ID, Resolution{Status: models.AdjournmentStatusAccepted, ResolvedBy: uuid.New(), ResolvedAt: time.Now()}), ErrConditionNotMet)

	suite.NoError(suite.store.Adjournments().Create(suite.ctx, suite.adjournments.ForCase(c, preferred)))

	pending, err := suite.store.Adjournments().List(suite.ctx, AdjournmentFilter{Status: models.AdjournmentStatusPending, CaseID: &c.ID})
	suite.Require().NoError(err)
	suite.Len(pending, 1)

	resolved, err := suite.store.Adjournments().GetByID(suite.ctx, first.ID)
	suite.Require().NoError(err)
	suite.Equal(models.AdjournmentStatusRejected, resolved.Status)
	suite.Equal("no free slot", resolved.SchedulerNotes)
}

func (suite *SchedulingRepositoryTestSuite) TestCourtFilingHearing() {
	c := suite.createCase(suite.cases.Create())
	filing := suite.filings.ForCase(c)
	suite.Require().NoError(suite.store.CourtFilings().Create(suite.ctx, filing))

	suite.Require().NoError(suite.store.CourtFilings().UpdateHearing(suite.ctx, filing.ID, models.FilingStatusScheduled, testutils.Date(2025, time.December, 15)))

	latest, err := suite.store.CourtFilings().GetLatestByCaseID(suite.ctx, c.ID)
	suite.Require().NoError(err)
	suite.Equal(models.FilingStatusScheduled, latest.Status)
}

func (suite *SchedulingRepositoryTestSuite) TestTransactionRollsBack() {
	c := suite.cases.Create()
	boom := errors.New("boom")

	err := suite.store.Transaction(suite.ctx, func(tx StoreInterface) error {
		if err := tx.Cases().Create(suite.ctx, c); err != nil {
			return err
		}
		return boom
	})
	suite.ErrorIs(err, boom)

	_, err = suite.store.Cases().GetByID(suite.ctx, c.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *SchedulingRepositoryTestSuite) TestLockPartitionSerializes() {
	key := "colombo|court-1|2025-12-15"
	acquired := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		_ = suite.store.Transaction(suite.ctx, func(tx StoreInterface) error {
			if err := tx.LockPartition(suite.ctx, key); err != nil {
				return err
			}
			close(acquired)
			<-release
			return nil
		})
	}()
	<-acquired

	ctx, cancel := context.WithTimeout(suite.ctx, 200*time.Millisecond)
	defer cancel()
	err := suite.store.Transaction(ctx, func(tx StoreInterface) error {
		return tx.LockPartition(ctx, key)
	})
	suite.Error(err, "second holder must wait for the first")

	close(release)
	<-done

	suite.NoError(suite.store.Transaction(suite.ctx, func(tx StoreInterface) error {
		return tx.LockPartition(suite.ctx, key)
	}))
}

// TestSchedulingRepositoryTestSuite runs the test suite
func TestSchedulingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulingRepositoryTestSuite))
}
