package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/prayer-times-bot/internal/domain"
	"github.com/diegoclair/prayer-times-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestScheduler(t *testing.T, m allMocks, now time.Time) *scheduler {
	t.Helper()
	clock := fixedClock{now: now}
	s := newScheduler(m.mockDataManager, newTestSchedule(t, m, clock), m.mockDeliverer, clock, testLocation, 0, time.Second)
	require.NotNil(t, s)
	return s
}

// sentTexts records deliveries so assertions can run after the dispatcher drains.
type sentTexts struct {
	mu    sync.Mutex
	texts map[string][]string
}

func (s *sentTexts) record(_ context.Context, r *entity.Recipient, text string) entity.DeliveryStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.texts == nil {
		s.texts = map[string][]string{}
	}
	s.texts[r.SlackChannelID] = append(s.texts[r.SlackChannelID], text)
	return entity.Delivered
}

func Test_newScheduler(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestScheduler(t, m, at("2026-03-18 07:00"))

	assert.Equal(t, m.mockDataManager, s.dm)
	assert.Equal(t, m.mockDeliverer, s.deliverer)
	assert.NotNil(t, s.cron)
	assert.NotNil(t, s.limiter)
	assert.False(t, s.running)
}

func Test_scheduler_tickDigest(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	m.withDays(march18, march19)

	today := testRecipient()
	today.SlackChannelID = "C-TODAY"
	today.DailyDigestTime = "07:00"

	tomorrow := testRecipient()
	tomorrow.SlackChannelID = "C-TOMORROW"
	tomorrow.DailyDigestTime = "07:00"
	tomorrow.DigestDay = domain.DigestTomorrow

	later := testRecipient()
	later.SlackChannelID = "C-LATER"
	later.DailyDigestTime = "07:01"

	m.mockRecipientRepo.EXPECT().GetWithDailyDigest().Return([]*entity.Recipient{today, tomorrow, later}, nil).Times(1)
	m.mockRecipientRepo.EXPECT().GetWithReminders().Return(nil, nil).Times(1)

	sent := &sentTexts{}
	m.mockDeliverer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(sent.record).Times(2)

	s := newTestScheduler(t, m, at("2026-03-18 07:00"))
	s.tick(at("2026-03-18 07:00").Add(25 * time.Second))
	s.inflight.Wait()

	require.Len(t, sent.texts["C-TODAY"], 1)
	assert.Equal(t, s.schedule.FormatSchedule(at("2026-03-18 00:00"), today), sent.texts["C-TODAY"][0])
	require.Len(t, sent.texts["C-TOMORROW"], 1)
	assert.Equal(t, s.schedule.FormatSchedule(at("2026-03-19 00:00"), tomorrow), sent.texts["C-TOMORROW"][0])
	assert.Empty(t, sent.texts["C-LATER"])
}

func Test_scheduler_tickDigestMissingDate(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	m.withDays()

	r := testRecipient()
	r.DailyDigestTime = "07:00"

	m.mockRecipientRepo.EXPECT().GetWithDailyDigest().Return([]*entity.Recipient{r}, nil)
	m.mockRecipientRepo.EXPECT().GetWithReminders().Return(nil, nil)
	m.mockDeliverer.EXPECT().Send(gomock.Any(), r, "❌ No schedule found for this date").Return(entity.Delivered)

	s := newTestScheduler(t, m, at("2026-03-18 07:00"))
	s.tick(at("2026-03-18 07:00"))
	s.inflight.Wait()
}

func Test_scheduler_tickReminder(t *testing.T) {
	tests := []struct {
		name     string
		now      string
		wantSent bool
	}{
		{name: "Should fire minutesBefore ahead of the prayer", now: "2026-03-18 12:20", wantSent: true},
		{name: "Should not fire a minute early", now: "2026-03-18 12:19"},
		{name: "Should not fire a minute late", now: "2026-03-18 12:21"},
		{name: "Should not fire at the prayer time", now: "2026-03-18 12:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()
			m.withDays(march18)

			r := testRecipient()
			r.Reminders = map[domain.PrayerKey]int{domain.Dhuhr: 10}

			m.mockRecipientRepo.EXPECT().GetWithDailyDigest().Return(nil, nil)
			m.mockRecipientRepo.EXPECT().GetWithReminders().Return([]*entity.Recipient{r}, nil)

			s := newTestScheduler(t, m, at(tt.now))
			if tt.wantSent {
				want := s.schedule.FormatReminder(r, domain.Dhuhr, entity.NewClockTime(12, 30), 10)
				m.mockDeliverer.EXPECT().Send(gomock.Any(), r, want).Return(entity.Delivered).Times(1)
			}

			s.tick(at(tt.now))
			s.inflight.Wait()
		})
	}
}

func Test_scheduler_tickReminderUsesAdjustedTime(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	m.withDays(march18)

	r := testRecipient()
	r.GeneralOffset = 5
	r.PrayerOffsets = map[domain.PrayerKey]int{domain.Fajr: -2}
	r.Reminders = map[domain.PrayerKey]int{domain.Fajr: 3}

	m.mockRecipientRepo.EXPECT().GetWithDailyDigest().Return(nil, nil)
	m.mockRecipientRepo.EXPECT().GetWithReminders().Return([]*entity.Recipient{r}, nil)

	s := newTestScheduler(t, m, at("2026-03-18 04:10"))
	want := s.schedule.FormatReminder(r, domain.Fajr, entity.NewClockTime(4, 13), 3)
	m.mockDeliverer.EXPECT().Send(gomock.Any(), r, want).Return(entity.Delivered)

	s.tick(at("2026-03-18 04:10"))
	s.inflight.Wait()
}

func Test_scheduler_tickSkipsDuplicateMinute(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	m.withDays(march18)

	r := testRecipient()
	r.Reminders = map[domain.PrayerKey]int{domain.Dhuhr: 10}

	m.mockRecipientRepo.EXPECT().GetWithDailyDigest().Return(nil, nil).Times(1)
	m.mockRecipientRepo.EXPECT().GetWithReminders().Return([]*entity.Recipient{r}, nil).Times(1)
	m.mockDeliverer.EXPECT().Send(gomock.Any(), r, gomock.Any()).Return(entity.Delivered).Times(1)

	s := newTestScheduler(t, m, at("2026-03-18 12:20"))
	s.tick(at("2026-03-18 12:20"))
	s.tick(at("2026-03-18 12:20").Add(40 * time.Second))
	s.inflight.Wait()
}

func Test_scheduler_tickListFailure(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	m.withDays(march18)

	r := testRecipient()
	r.Reminders = map[domain.PrayerKey]int{domain.Dhuhr: 10}

	m.mockRecipientRepo.EXPECT().GetWithDailyDigest().Return(nil, errors.New("database is locked"))
	m.mockRecipientRepo.EXPECT().GetWithReminders().Return([]*entity.Recipient{r}, nil)
	m.mockDeliverer.EXPECT().Send(gomock.Any(), r, gomock.Any()).Return(entity.Delivered).Times(1)

	s := newTestScheduler(t, m, at("2026-03-18 12:20"))
	s.tick(at("2026-03-18 12:20"))
	s.inflight.Wait()
}

func Test_scheduler_tickMissingScheduleSkipsRecipient(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	m.withDays()

	r := testRecipient()
	r.Reminders = map[domain.PrayerKey]int{domain.Dhuhr: 10}

	m.mockRecipientRepo.EXPECT().GetWithDailyDigest().Return(nil, nil)
	m.mockRecipientRepo.EXPECT().GetWithReminders().Return([]*entity.Recipient{r}, nil)

	s := newTestScheduler(t, m, at("2026-03-18 12:20"))
	s.tick(at("2026-03-18 12:20"))
	s.inflight.Wait()
}

func Test_scheduler_StartStop(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	// The cron runner may fire on a real minute boundary while the test runs.
	m.mockRecipientRepo.EXPECT().GetWithDailyDigest().Return(nil, nil).AnyTimes()
	m.mockRecipientRepo.EXPECT().GetWithReminders().Return(nil, nil).AnyTimes()

	s := newTestScheduler(t, m, at("2026-03-18 03:00"))

	s.Stop() // no-op before Start

	require.NoError(t, s.Start())
	require.NoError(t, s.Start())
	assert.True(t, s.running)
	assert.Len(t, s.cron.Entries(), 1)

	s.Stop()
	s.Stop()
	assert.False(t, s.running)

	require.NoError(t, s.Start())
	assert.Len(t, s.cron.Entries(), 1, "restarting must not register a second tick")
	s.Stop()
}

func Test_scheduler_StopCancelsAfterDrainTimeout(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	m.withDays(march18)

	r := testRecipient()
	r.DailyDigestTime = "07:00"

	m.mockRecipientRepo.EXPECT().GetWithDailyDigest().Return([]*entity.Recipient{r}, nil).AnyTimes()
	m.mockRecipientRepo.EXPECT().GetWithReminders().Return(nil, nil).AnyTimes()

	started := make(chan struct{})
	var cancelled error
	m.mockDeliverer.EXPECT().Send(gomock.Any(), r, gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ *entity.Recipient, _ string) entity.DeliveryStatus {
			close(started)
			<-ctx.Done()
			cancelled = ctx.Err()
			return entity.Suppressed
		},
	).Times(1)

	s := newTestScheduler(t, m, at("2026-03-18 07:00"))
	s.drainTimeout = 50 * time.Millisecond

	require.NoError(t, s.Start())
	s.tick(at("2026-03-18 07:00"))
	<-started

	s.Stop()
	assert.ErrorIs(t, cancelled, context.Canceled)
}

func Test_scheduler_tickSlowDeliveryDoesNotBlock(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	m.withDays(march18)

	slow := testRecipient()
	slow.SlackChannelID = "C-SLOW"
	slow.DailyDigestTime = "07:00"

	fast := testRecipient()
	fast.SlackChannelID = "C-FAST"
	fast.DailyDigestTime = "07:00"

	m.mockRecipientRepo.EXPECT().GetWithDailyDigest().Return([]*entity.Recipient{slow, fast}, nil).Times(2)
	m.mockRecipientRepo.EXPECT().GetWithReminders().Return(nil, nil).Times(2)

	release := make(chan struct{})
	slowStarted := make(chan struct{})
	fastDone := make(chan struct{})

	// The slow recipient stands in for a Send sleeping through a retry backoff.
	m.mockDeliverer.EXPECT().Send(gomock.Any(), slow, gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ *entity.Recipient, _ string) entity.DeliveryStatus {
			close(slowStarted)
			select {
			case <-release:
			case <-ctx.Done():
			}
			return entity.Delivered
		},
	).Times(1)
	m.mockDeliverer.EXPECT().Send(gomock.Any(), fast, gomock.Any()).DoAndReturn(
		func(context.Context, *entity.Recipient, string) entity.DeliveryStatus {
			close(fastDone)
			return entity.Delivered
		},
	).Times(1)

	s := newTestScheduler(t, m, at("2026-03-18 07:00"))
	defer func() {
		close(release)
		s.inflight.Wait()
	}()

	s.tick(at("2026-03-18 07:00"))

	waitClosed(t, slowStarted, "slow delivery never started")
	waitClosed(t, fastDone, "sibling delivery blocked behind the slow one")

	nextTick := make(chan struct{})
	go func() {
		s.tick(at("2026-03-18 07:01"))
		close(nextTick)
	}()
	waitClosed(t, nextTick, "next tick blocked behind the slow delivery")
}

func waitClosed(t *testing.T, ch <-chan struct{}, msg string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		require.FailNow(t, msg)
	}
}
