package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/prayer-times-bot/internal/domain"
	"github.com/diegoclair/prayer-times-bot/internal/domain/contract"
	"github.com/diegoclair/prayer-times-bot/internal/domain/entity"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const tickSpec = "* * * * *"

type jobKind string

const (
	jobDigest   jobKind = "digest"
	jobReminder jobKind = "reminder"
)

// notificationJob is one message due this minute. The text is rendered by
// the dispatch goroutine, not during enumeration.
type notificationJob struct {
	kind      jobKind
	recipient *entity.Recipient
	prayer    domain.PrayerKey
	format    func() string
}

type scheduler struct {
	dm           contract.DataManager
	schedule     *scheduleService
	deliverer    contract.Deliverer
	clock        Clock
	loc          *time.Location
	limiter      *rate.Limiter
	drainTimeout time.Duration

	cron    *cron.Cron
	entryID cron.EntryID

	mu      sync.Mutex
	running bool

	// ctxMu is separate from mu so a tick never blocks on a Stop waiting for that tick.
	ctxMu  sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc

	tickMu     sync.Mutex
	lastMinute time.Time

	inflight sync.WaitGroup
}

func newScheduler(dm contract.DataManager, schedule *scheduleService, deliverer contract.Deliverer, clock Clock, loc *time.Location, dispatchInterval, drainTimeout time.Duration) *scheduler {
	limit := rate.Inf
	if dispatchInterval > 0 {
		limit = rate.Every(dispatchInterval)
	}

	logger := cronLogger{}
	return &scheduler{
		dm:           dm,
		schedule:     schedule,
		deliverer:    deliverer,
		clock:        clock,
		loc:          loc,
		limiter:      rate.NewLimiter(limit, 1),
		drainTimeout: drainTimeout,
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.DelayIfStillRunning(logger)),
		),
		ctx:    context.Background(),
		cancel: func() {},
	}
}

// Start registers the minute tick and starts the cron runner. Calling it on a running scheduler does nothing.
func (s *scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	if s.entryID == 0 {
		id, err := s.cron.AddFunc(tickSpec, s.run)
		if err != nil {
			return fmt.Errorf("failed to register scheduler tick: %w", err)
		}
		s.entryID = id
	}

	s.ctxMu.Lock()
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.ctxMu.Unlock()

	s.cron.Start()
	s.running = true

	log.Info().Str("location", s.loc.String()).Msg("scheduler started")
	return nil
}

// Stop waits for the running tick, gives in-flight deliveries up to the drain
// timeout, then cancels them. Calling it on a stopped scheduler does nothing.
func (s *scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false

	log.Info().Msg("scheduler stopping...")
	<-s.cron.Stop().Done()

	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	timer := time.NewTimer(s.drainTimeout)
	defer timer.Stop()

	s.ctxMu.Lock()
	cancel := s.cancel
	s.ctxMu.Unlock()

	select {
	case <-done:
	case <-timer.C:
		log.Warn().Dur("drain_timeout", s.drainTimeout).Msg("deliveries still in flight, cancelling")
		cancel()
		<-done
	}
	cancel()

	log.Info().Msg("scheduler stopped")
}

func (s *scheduler) run() {
	s.tick(s.clock.Now())
}

// tick enumerates the notifications due at now's minute and hands them to a dispatcher.
func (s *scheduler) tick(now time.Time) {
	now = now.In(s.loc).Truncate(time.Minute)

	s.tickMu.Lock()
	if now.Equal(s.lastMinute) {
		s.tickMu.Unlock()
		log.Debug().Time("minute", now).Msg("minute already evaluated, skipping tick")
		return
	}
	s.lastMinute = now
	s.tickMu.Unlock()

	jobs := append(s.digestJobs(now), s.reminderJobs(now)...)
	if len(jobs) == 0 {
		return
	}

	log.Info().Time("minute", now).Int("jobs", len(jobs)).Msg("dispatching notifications")

	s.ctxMu.Lock()
	ctx := s.ctx
	s.ctxMu.Unlock()

	s.inflight.Add(1)
	go s.dispatch(ctx, jobs)
}

func (s *scheduler) digestJobs(now time.Time) []notificationJob {
	recipients, err := s.dm.Recipient().GetWithDailyDigest()
	if err != nil {
		log.Error().Err(err).Msg("failed to list recipients with daily digest")
		return nil
	}

	current := entity.NewClockTime(now.Hour(), now.Minute())

	var jobs []notificationJob
	for _, r := range recipients {
		at, err := entity.ParseClockTime(r.DailyDigestTime)
		if err != nil {
			log.Warn().Err(err).Str("channel_id", r.SlackChannelID).Msg("invalid daily digest time")
			continue
		}
		if at != current {
			continue
		}

		date := dateOf(now)
		if r.DigestDay == domain.DigestTomorrow {
			date = date.AddDate(0, 0, 1)
		}

		recipient := r
		jobs = append(jobs, notificationJob{
			kind:      jobDigest,
			recipient: recipient,
			format: func() string {
				return s.schedule.FormatSchedule(date, recipient)
			},
		})
	}
	return jobs
}

func (s *scheduler) reminderJobs(now time.Time) []notificationJob {
	recipients, err := s.dm.Recipient().GetWithReminders()
	if err != nil {
		log.Error().Err(err).Msg("failed to list recipients with reminders")
		return nil
	}

	current := entity.NewClockTime(now.Hour(), now.Minute())

	var jobs []notificationJob
	for _, r := range recipients {
		times, ok := s.schedule.AdjustedTimes(now, r.GeneralOffset, r.PrayerOffsets)
		if !ok {
			log.Warn().Str("channel_id", r.SlackChannelID).Str("date", now.Format(domain.DateLayout)).Msg("no schedule for reminders")
			continue
		}

		for _, key := range domain.PrayerKeys {
			minutes := r.Reminders[key]
			if minutes <= 0 {
				continue
			}
			at := times[key]
			if at.Add(-minutes) != current {
				continue
			}

			recipient, prayer := r, key
			jobs = append(jobs, notificationJob{
				kind:      jobReminder,
				recipient: recipient,
				prayer:    prayer,
				format: func() string {
					return s.schedule.FormatReminder(recipient, prayer, at, minutes)
				},
			})
		}
	}
	return jobs
}

// dispatch launches one delivery per job, paced by the shared limiter.
func (s *scheduler) dispatch(ctx context.Context, jobs []notificationJob) {
	defer s.inflight.Done()

	for _, job := range jobs {
		if err := s.limiter.Wait(ctx); err != nil {
			log.Warn().Err(err).Msg("dispatch cancelled, remaining jobs dropped")
			return
		}

		s.inflight.Add(1)
		go func(job notificationJob) {
			defer s.inflight.Done()

			status := s.deliverer.Send(ctx, job.recipient, job.format())
			log.Debug().
				Str("channel_id", job.recipient.SlackChannelID).
				Str("kind", string(job.kind)).
				Str("prayer", string(job.prayer)).
				Str("status", string(status)).
				Msg("notification processed")
		}(job)
	}
}

// cronLogger routes cron's internal logging to zerolog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	log.Debug().Fields(keysAndValues).Msg(msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
