package service_test

import (
	"context"
	"time"

	"court-scheduling-backend/internal/auth"
	"court-scheduling-backend/internal/database/models"
	"court-scheduling-backend/internal/mocks"
	"court-scheduling-backend/internal/notification"
	"court-scheduling-backend/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// storeMocks wires one mock repository per accessor. Transaction runs the
// callback against the same store so expectations apply inside and outside.
type storeMocks struct {
	store        *mocks.MockStoreInterface
	cases        *mocks.MockCaseRepositoryInterface
	requests     *mocks.MockScheduleRequestRepositoryInterface
	entries      *mocks.MockScheduledEntryRepositoryInterface
	adjournments *mocks.MockAdjournmentRequestRepositoryInterface
	filings      *mocks.MockCourtFilingRepositoryInterface
}

func newStoreMocks(ctrl *gomock.Controller) *storeMocks {
	m := &storeMocks{
		store:        mocks.NewMockStoreInterface(ctrl),
		cases:        mocks.NewMockCaseRepositoryInterface(ctrl),
		requests:     mocks.NewMockScheduleRequestRepositoryInterface(ctrl),
		entries:      mocks.NewMockScheduledEntryRepositoryInterface(ctrl),
		adjournments: mocks.NewMockAdjournmentRequestRepositoryInterface(ctrl),
		filings:      mocks.NewMockCourtFilingRepositoryInterface(ctrl),
	}

	m.store.EXPECT().Cases().Return(m.cases).AnyTimes()
	m.store.EXPECT().ScheduleRequests().Return(m.requests).AnyTimes()
	m.store.EXPECT().ScheduledEntries().Return(m.entries).AnyTimes()
	m.store.EXPECT().Adjournments().Return(m.adjournments).AnyTimes()
	m.store.EXPECT().CourtFilings().Return(m.filings).AnyTimes()
	m.store.EXPECT().
		Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx repository.StoreInterface) error) error {
			return fn(m.store)
		}).
		AnyTimes()

	return m
}

// recordingPublisher keeps every published event
type recordingPublisher struct {
	events []notification.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event notification.Event) error {
	p.events = append(p.events, event)
	return nil
}

func lawyerPrincipal() *auth.Principal {
	return &auth.Principal{UserID: uuid.New(), Role: models.UserRoleLawyer, Name: "Nimal Silva"}
}

func clientPrincipal() *auth.Principal {
	return &auth.Principal{UserID: uuid.New(), Role: models.UserRoleClient, Name: "Kamala Perera"}
}

func schedulerPrincipal() *auth.Principal {
	return &auth.Principal{UserID: uuid.New(), Role: models.UserRoleCourtScheduler, Name: "Registrar"}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
